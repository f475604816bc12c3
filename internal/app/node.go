package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/dpms/internal/adapters/config" //nolint:depguard // Wired in app layer
	"go.trai.ch/dpms/internal/adapters/fs"     //nolint:depguard // Wired in app layer
	"go.trai.ch/dpms/internal/adapters/index"  //nolint:depguard // Wired in app layer
	"go.trai.ch/dpms/internal/adapters/logger" //nolint:depguard // Wired in app layer
	"go.trai.ch/dpms/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			index.NodeID,
			fs.HasherNodeID,
			logger.NodeID,
			logger.ReporterNodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			a, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[*logger.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewComponents(a, log), nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	readers, err := graft.Dep[ports.IndexReaderFactory](ctx)
	if err != nil {
		return nil, err
	}

	hasher, err := graft.Dep[ports.Hasher](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[*logger.Logger](ctx)
	if err != nil {
		return nil, err
	}

	reporter, err := graft.Dep[ports.ErrorReporter](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, readers, hasher, log, reporter), nil
}
