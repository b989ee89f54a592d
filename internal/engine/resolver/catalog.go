package resolver

import (
	"go.trai.ch/pkgup/internal/core/domain"
)

// Catalog is the read-only view of the dependency ranges the project manifest
// declares, consulted in the fixed section priority order.
type Catalog struct {
	manifest *domain.ProjectManifest
}

// NewCatalog builds a catalog over a parsed project manifest.
func NewCatalog(manifest *domain.ProjectManifest) *Catalog {
	return &Catalog{manifest: manifest}
}

// Range returns the declared range for a package name.
func (c *Catalog) Range(name string) (string, bool) {
	return c.manifest.Range(name)
}

// Has reports whether the package is declared anywhere in the manifest.
func (c *Catalog) Has(name string) bool {
	_, ok := c.manifest.Range(name)
	return ok
}

// Names returns every declared package name in sorted order.
func (c *Catalog) Names() []string {
	return c.manifest.Names()
}
