package domain

import (
	"github.com/Masterminds/semver/v3"
)

// RegistrySnapshot is the registry metadata for one package name: its
// dist-tags and every published manifest version. It is immutable once the
// fetch phase has joined all snapshots into the resolution map.
type RegistrySnapshot struct {
	Name     string                      `json:"name"`
	DistTags map[string]string           `json:"dist-tags"`
	Versions map[string]ManifestSnapshot `json:"versions"`
}

// ResolveTag looks up a dist-tag and returns the version it aliases.
func (s *RegistrySnapshot) ResolveTag(tag string) (string, bool) {
	version, ok := s.DistTags[tag]
	return version, ok
}

// Manifest returns the manifest snapshot for an exact published version.
func (s *RegistrySnapshot) Manifest(version string) (ManifestSnapshot, bool) {
	manifest, ok := s.Versions[version]
	return manifest, ok
}

// MaxSatisfying returns the greatest published version satisfying the
// constraint. Published versions that do not parse as semver are skipped.
func (s *RegistrySnapshot) MaxSatisfying(c *semver.Constraints) (*semver.Version, bool) {
	var max *semver.Version
	for raw := range s.Versions {
		version, err := semver.NewVersion(raw)
		if err != nil {
			continue
		}
		if !c.Check(version) {
			continue
		}
		if max == nil || version.GreaterThan(max) {
			max = version
		}
	}
	return max, max != nil
}
