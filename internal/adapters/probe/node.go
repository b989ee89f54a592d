package probe

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pkgup/internal/core/ports"
)

// NodeID is the unique identifier for the installed probe Graft node.
const NodeID graft.ID = "adapter.probe"

func init() {
	graft.Register(graft.Node[ports.InstalledProbe]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.InstalledProbe, error) {
			return NewProbe(), nil
		},
	})
}
