package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/nmorrow/spectra/internal/db"
	"github.com/nmorrow/spectra/internal/domain"
)

// SQLiteSnapshotRepo implements SnapshotRepo on a SQLite database.
type SQLiteSnapshotRepo struct {
	db db.DBTX
}

// NewSQLiteSnapshotRepo creates a new SQLiteSnapshotRepo.
func NewSQLiteSnapshotRepo(conn db.DBTX) *SQLiteSnapshotRepo {
	return &SQLiteSnapshotRepo{db: conn}
}

const snapshotColumns = `id, name, focus, social, sensory, motor, routine, emotional, created_at`

func (r *SQLiteSnapshotRepo) Save(ctx context.Context, s *domain.Snapshot) error {
	query := `INSERT OR REPLACE INTO snapshots (` + snapshotColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	p := s.Profile.Normalize()
	_, err := r.db.ExecContext(ctx, query,
		s.ID,
		s.Name,
		p[domain.MetricFocus],
		p[domain.MetricSocial],
		p[domain.MetricSensory],
		p[domain.MetricMotor],
		p[domain.MetricRoutine],
		p[domain.MetricEmotional],
		s.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("saving snapshot: %w", err)
	}
	return nil
}

func (r *SQLiteSnapshotRepo) GetByID(ctx context.Context, id string) (*domain.Snapshot, error) {
	query := `SELECT ` + snapshotColumns + ` FROM snapshots WHERE id = ?`
	return scanSnapshot(r.db.QueryRowContext(ctx, query, id))
}

func (r *SQLiteSnapshotRepo) GetByName(ctx context.Context, name string) (*domain.Snapshot, error) {
	query := `SELECT ` + snapshotColumns + ` FROM snapshots WHERE name = ?
		ORDER BY created_at DESC LIMIT 1`
	return scanSnapshot(r.db.QueryRowContext(ctx, query, name))
}

func (r *SQLiteSnapshotRepo) List(ctx context.Context) ([]*domain.Snapshot, error) {
	query := `SELECT ` + snapshotColumns + ` FROM snapshots ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing snapshots: %w", err)
	}
	defer rows.Close()

	var snapshots []*domain.Snapshot
	for rows.Next() {
		s, err := scanSnapshot(rows)
		if err != nil {
			return nil, err
		}
		snapshots = append(snapshots, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating snapshots: %w", err)
	}
	return snapshots, nil
}

func (r *SQLiteSnapshotRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM snapshots WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting snapshot: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking delete result: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("snapshot %s: %w", id, ErrNotFound)
	}
	return nil
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanSnapshot(row scanner) (*domain.Snapshot, error) {
	var (
		s         domain.Snapshot
		scores    [6]int
		createdAt string
	)
	err := row.Scan(&s.ID, &s.Name,
		&scores[0], &scores[1], &scores[2], &scores[3], &scores[4], &scores[5],
		&createdAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("snapshot: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning snapshot: %w", err)
	}

	s.Profile = domain.Profile{}
	for i, m := range domain.Metrics {
		s.Profile[m] = scores[i]
	}
	if ts, err := time.Parse(time.RFC3339, createdAt); err == nil {
		s.CreatedAt = ts
	}
	return &s, nil
}
