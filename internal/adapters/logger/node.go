package logger

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/dpms/internal/core/ports"
)

const (
	// NodeID is the unique identifier for the logger Graft node.
	NodeID graft.ID = "adapter.logger"
	// ReporterNodeID is the unique identifier for the error reporter Graft node.
	ReporterNodeID graft.ID = "adapter.logger.reporter"
)

func init() {
	graft.Register(graft.Node[*Logger]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Logger, error) {
			return New(), nil
		},
	})

	// The reporter shares the logger instance so format changes apply to both.
	graft.Register(graft.Node[ports.ErrorReporter]{
		ID:        ReporterNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{NodeID},
		Run: func(ctx context.Context) (ports.ErrorReporter, error) {
			log, err := graft.Dep[*Logger](ctx)
			if err != nil {
				return nil, err
			}
			return log, nil
		},
	})
}
