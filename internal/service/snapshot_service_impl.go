package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/nmorrow/spectra/internal/domain"
	"github.com/nmorrow/spectra/internal/repository"
)

type snapshotService struct {
	snapshots repository.SnapshotRepo
	now       func() time.Time
}

// NewSnapshotService creates a SnapshotService backed by the given repo.
func NewSnapshotService(snapshots repository.SnapshotRepo) SnapshotService {
	return &snapshotService{snapshots: snapshots, now: time.Now}
}

func (s *snapshotService) Save(ctx context.Context, name string, profile domain.Profile) (*domain.Snapshot, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("snapshot name is required")
	}

	snap := &domain.Snapshot{
		ID:        uuid.NewString(),
		Name:      name,
		Profile:   profile.Normalize(),
		CreatedAt: s.now(),
	}
	if err := s.snapshots.Save(ctx, snap); err != nil {
		return nil, err
	}
	return snap, nil
}

// Get resolves ref as an ID first, then as a name.
func (s *snapshotService) Get(ctx context.Context, ref string) (*domain.Snapshot, error) {
	snap, err := s.snapshots.GetByID(ctx, ref)
	if err == nil {
		return snap, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	return s.snapshots.GetByName(ctx, ref)
}

func (s *snapshotService) List(ctx context.Context) ([]*domain.Snapshot, error) {
	return s.snapshots.List(ctx)
}

func (s *snapshotService) Delete(ctx context.Context, ref string) error {
	snap, err := s.Get(ctx, ref)
	if err != nil {
		return err
	}
	return s.snapshots.Delete(ctx, snap.ID)
}
