package cargo

import (
	"context"

	"github.com/aphrodite-os/forge/internal/adapters/logger"
	"github.com/aphrodite-os/forge/internal/core/ports"
	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the toolchain Graft node.
const NodeID graft.ID = "adapter.toolchain"

func init() {
	graft.Register(graft.Node[ports.Toolchain]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.Toolchain, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewToolchain(log), nil
		},
	})
}
