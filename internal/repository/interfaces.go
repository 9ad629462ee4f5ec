package repository

import (
	"context"
	"errors"

	"github.com/nmorrow/spectra/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

// SnapshotRepo persists saved profile snapshots.
type SnapshotRepo interface {
	Save(ctx context.Context, s *domain.Snapshot) error
	GetByID(ctx context.Context, id string) (*domain.Snapshot, error)
	GetByName(ctx context.Context, name string) (*domain.Snapshot, error)
	List(ctx context.Context) ([]*domain.Snapshot, error)
	Delete(ctx context.Context, id string) error
}
