// Package probe implements the InstalledProbe port by inspecting the local
// install tree.
package probe

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/Masterminds/semver/v3"
	"go.trai.ch/pkgup/internal/core/domain"
)

// Probe implements ports.InstalledProbe against node_modules.
type Probe struct{}

// NewProbe creates a new installed-version probe.
func NewProbe() *Probe {
	return &Probe{}
}

// InstalledVersion reads the version of an installed package from its own
// manifest under the install directory. Any failure simply reports the
// package as not installed; the resolver falls back to the declared range.
func (p *Probe) InstalledVersion(dir, name string) (*semver.Version, bool) {
	path := filepath.Join(dir, domain.InstallDirName, filepath.FromSlash(name), domain.ManifestFileName)

	// #nosec G304 -- path is constructed from the project directory
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, false
	}

	var manifest struct {
		Version string `json:"version"`
	}
	if err := json.Unmarshal(data, &manifest); err != nil {
		return nil, false
	}

	version, err := semver.NewVersion(manifest.Version)
	if err != nil {
		return nil, false
	}
	return version, true
}
