package packager

import (
	"context"

	"github.com/aphrodite-os/forge/internal/adapters/grub"
	"github.com/aphrodite-os/forge/internal/adapters/logger"
	"github.com/aphrodite-os/forge/internal/core/ports"
	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the packager Graft node.
const NodeID graft.ID = "engine.packager"

func init() {
	graft.Register(graft.Node[*Packager]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{grub.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (*Packager, error) {
			imager, err := graft.Dep[ports.ImageAuthor](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(imager, log), nil
		},
	})
}
