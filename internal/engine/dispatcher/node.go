package dispatcher

import (
	"context"

	"github.com/aphrodite-os/forge/internal/adapters/buildinfo"
	"github.com/aphrodite-os/forge/internal/adapters/cargo"
	"github.com/aphrodite-os/forge/internal/adapters/logger"
	"github.com/aphrodite-os/forge/internal/core/ports"
	"github.com/aphrodite-os/forge/internal/engine/packager"
	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the dispatcher Graft node.
const NodeID graft.ID = "engine.dispatcher"

func init() {
	graft.Register(graft.Node[*Dispatcher]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{cargo.NodeID, buildinfo.NodeID, packager.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (*Dispatcher, error) {
			toolchain, err := graft.Dep[ports.Toolchain](ctx)
			if err != nil {
				return nil, err
			}
			store, err := graft.Dep[ports.BuildInfoStore](ctx)
			if err != nil {
				return nil, err
			}
			pkg, err := graft.Dep[*packager.Packager](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(toolchain, store, pkg, log), nil
		},
	})
}
