package ports

import "context"

// Toolchain is the external compiler toolchain the orchestrator drives.
// Invocations block until the tool exits; no timeout is imposed.
//
//go:generate mockgen -source=toolchain.go -destination=mocks/mock_toolchain.go -package=mocks
type Toolchain interface {
	// Check runs the toolchain in check-only mode against the given platform
	// identifier. No artifact is produced.
	Check(ctx context.Context, platform string) error

	// Build runs a full build against the given platform identifier and
	// returns the path of the produced artifact.
	Build(ctx context.Context, platform string) (string, error)

	// Format runs the formatter across the whole source tree.
	Format(ctx context.Context) error
}
