package ports

import "go.trai.ch/pkgup/internal/core/domain"

// ManifestStore defines the interface for reading and writing the project
// manifest. Writes always receive fully rendered content so that a plan is
// computed entirely in memory before anything touches the disk.
//
//go:generate mockgen -source=manifest_store.go -destination=mocks/mock_manifest_store.go -package=mocks
type ManifestStore interface {
	// Read loads and parses the project manifest from the given directory.
	Read(dir string) (*domain.ProjectManifest, error)

	// Write replaces the project manifest in the given directory with the
	// rendered content.
	Write(dir string, content []byte) error
}
