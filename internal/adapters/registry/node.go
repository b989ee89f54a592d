package registry

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pkgup/internal/adapters/config"
	"go.trai.ch/pkgup/internal/core/ports"
)

// NodeID is the unique identifier for the registry Graft node.
const NodeID graft.ID = "adapter.registry"

func init() {
	graft.Register(graft.Node[ports.Registry]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID},
		Run: func(ctx context.Context) (ports.Registry, error) {
			cfg, err := graft.Dep[*config.Config](ctx)
			if err != nil {
				return nil, err
			}
			return NewClient(cfg.Registry), nil
		},
	})
}
