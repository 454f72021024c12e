package ports

import "github.com/aphrodite-os/forge/internal/core/domain"

// BuildInfoStore persists one record per successfully compiled target.
//
//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type BuildInfoStore interface {
	// Get retrieves the build record for a target.
	// Returns nil, nil if not found.
	Get(root, target string) (*domain.BuildRecord, error)

	// Put stores the build record.
	Put(root string, rec domain.BuildRecord) error
}
