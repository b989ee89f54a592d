package domain

import (
	"github.com/Masterminds/semver/v3"
)

// InstalledState describes the version of a package currently present in the
// project, together with its registry manifest and upgrade metadata.
type InstalledState struct {
	Version  *semver.Version
	Manifest ManifestSnapshot
	Upgrade  UpgradeMetadata
}

// TargetState describes the version a package would move to. Its version is
// always strictly greater than the installed one; resolution discards any
// candidate that is not.
type TargetState struct {
	Version  *semver.Version
	Manifest ManifestSnapshot
	Upgrade  UpgradeMetadata
}

// PackageInfo is the fully resolved state of one package involved in an
// update: installed state, optional target state, and the range the project
// manifest declares for it. A nil Target means no change is planned.
type PackageInfo struct {
	Name          string
	Installed     InstalledState
	Target        *TargetState
	DeclaredRange string
}

// HasTarget reports whether an upgrade is planned for this package.
func (p *PackageInfo) HasTarget() bool {
	return p.Target != nil
}

// EffectiveVersion is the version the package will have after the update:
// the target version when one is planned, the installed version otherwise.
func (p *PackageInfo) EffectiveVersion() *semver.Version {
	if p.Target != nil {
		return p.Target.Version
	}
	return p.Installed.Version
}

// EffectiveManifest is the manifest matching EffectiveVersion.
func (p *PackageInfo) EffectiveManifest() ManifestSnapshot {
	if p.Target != nil {
		return p.Target.Manifest
	}
	return p.Installed.Manifest
}
