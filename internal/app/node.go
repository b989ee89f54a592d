package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pkgup/internal/adapters/config"
	"go.trai.ch/pkgup/internal/adapters/logger"
	"go.trai.ch/pkgup/internal/adapters/manifest"
	"go.trai.ch/pkgup/internal/adapters/probe"
	"go.trai.ch/pkgup/internal/adapters/registry"
	"go.trai.ch/pkgup/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components bundles what the CLI entry point needs: the application and the
// concrete logger so verbosity and output format can be adjusted from flags.
type Components struct {
	App    *App
	Logger *logger.Logger
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			manifest.NodeID,
			registry.NodeID,
			probe.NodeID,
			logger.PortNodeID,
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
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	cfg, err := graft.Dep[*config.Config](ctx)
	if err != nil {
		return nil, err
	}

	store, err := graft.Dep[ports.ManifestStore](ctx)
	if err != nil {
		return nil, err
	}

	reg, err := graft.Dep[ports.Registry](ctx)
	if err != nil {
		return nil, err
	}

	installed, err := graft.Dep[ports.InstalledProbe](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(store, reg, installed, log, cfg), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	application, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[*logger.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:    application,
		Logger: log,
	}, nil
}
