package service

import (
	"context"

	"github.com/nmorrow/spectra/internal/domain"
)

// SnapshotService manages the local saved-profile store. Lookups accept
// either a snapshot ID or a snapshot name.
type SnapshotService interface {
	Save(ctx context.Context, name string, profile domain.Profile) (*domain.Snapshot, error)
	Get(ctx context.Context, ref string) (*domain.Snapshot, error)
	List(ctx context.Context) ([]*domain.Snapshot, error)
	Delete(ctx context.Context, ref string) error
}
