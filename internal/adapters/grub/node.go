package grub

import (
	"context"

	"github.com/aphrodite-os/forge/internal/adapters/logger"
	"github.com/aphrodite-os/forge/internal/core/ports"
	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the image author Graft node.
const NodeID graft.ID = "adapter.image_author"

func init() {
	graft.Register(graft.Node[ports.ImageAuthor]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.ImageAuthor, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewImageAuthor(log), nil
		},
	})
}
