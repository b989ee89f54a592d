package config

import (
	"context"

	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the config Graft node.
const NodeID graft.ID = "adapter.config"

func init() {
	graft.Register(graft.Node[*Config]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Config, error) {
			return Load(".")
		},
	})
}
