// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/pkgup/internal/adapters/config"
	_ "go.trai.ch/pkgup/internal/adapters/logger"
	_ "go.trai.ch/pkgup/internal/adapters/manifest"
	_ "go.trai.ch/pkgup/internal/adapters/probe"
	_ "go.trai.ch/pkgup/internal/adapters/registry"
	// Register app nodes.
	_ "go.trai.ch/pkgup/internal/app"
)
