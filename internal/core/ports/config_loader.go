package ports

import "github.com/aphrodite-os/forge/internal/core/domain"

// ConfigLoader defines the interface for loading the run configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the two configuration documents under root, expands
	// variables, merges the results and returns the validated configuration.
	// Missing documents contribute zero key/value pairs.
	Load(root string) (*domain.Config, error)
}
