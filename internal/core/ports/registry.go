// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/pkgup/internal/core/domain"
)

// Registry defines the interface for fetching package metadata from a
// package registry.
//
//go:generate mockgen -source=registry.go -destination=mocks/mock_registry.go -package=mocks
type Registry interface {
	// Fetch retrieves the registry snapshot for a package name.
	// It returns domain.ErrPackageNotFound when the registry has no
	// metadata for the name.
	Fetch(ctx context.Context, name string) (*domain.RegistrySnapshot, error)
}
