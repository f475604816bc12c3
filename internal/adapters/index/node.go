package index

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/dpms/internal/core/ports"
)

// NodeID is the unique identifier for the index reader factory Graft node.
const NodeID graft.ID = "adapter.index"

func init() {
	graft.Register(graft.Node[ports.IndexReaderFactory]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.IndexReaderFactory, error) {
			return NewFactory(), nil
		},
	})
}
