package resolver

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
	"go.trai.ch/pkgup/internal/core/domain"
	"go.trai.ch/zerr"
)

// ResolveInfos builds the immutable package-info map for every requested
// package: installed state, optional target state, and the declared range.
// The map is the sole input to validation and planning.
func (r *Resolver) ResolveInfos(
	dir string,
	requests *domain.RequestSet,
	snapshots map[string]*domain.RegistrySnapshot,
	catalog *Catalog,
) (map[string]*domain.PackageInfo, error) {
	infos := make(map[string]*domain.PackageInfo, requests.Len())

	for _, name := range requests.Names() {
		snapshot, ok := snapshots[name]
		if !ok {
			// Peer-injected names without a catalog entry, or packages
			// dropped during the fetch phase.
			r.logger.Debug(fmt.Sprintf("skipping %s: no registry metadata available", name))
			continue
		}

		token, _ := requests.Token(name)
		info, err := r.resolveInfo(dir, name, token, snapshot, catalog)
		if err != nil {
			return nil, err
		}
		if info == nil {
			continue
		}
		infos[name] = info
	}

	return infos, nil
}

func (r *Resolver) resolveInfo(
	dir, name string,
	token domain.VersionToken,
	snapshot *domain.RegistrySnapshot,
	catalog *Catalog,
) (*domain.PackageInfo, error) {
	declaredRange, declared := catalog.Range(name)

	installed, err := r.installedVersion(dir, name, declaredRange, declared, snapshot)
	if err != nil {
		return nil, err
	}
	if installed == nil {
		// Not installed and not declared; nothing to resolve against.
		r.logger.Debug(fmt.Sprintf("skipping %s: not installed", name))
		return nil, nil
	}

	info := &domain.PackageInfo{
		Name:          name,
		DeclaredRange: declaredRange,
		Installed:     domain.InstalledState{Version: installed},
	}
	if manifest, ok := snapshot.Manifest(installed.String()); ok {
		info.Installed.Manifest = manifest
		info.Installed.Upgrade = r.parseUpgrade(name, manifest)
	}

	target := r.targetVersion(name, token, snapshot)
	if target == nil {
		return info, nil
	}
	if !target.GreaterThan(installed) {
		// Discarding a target at or below the installed version keeps the
		// invariant target > installed without failing the update.
		r.logger.Debug(fmt.Sprintf("%s is already at %s, nothing to do", name, installed))
		return info, nil
	}

	info.Target = &domain.TargetState{Version: target}
	if manifest, ok := snapshot.Manifest(target.String()); ok {
		info.Target.Manifest = manifest
		info.Target.Upgrade = r.parseUpgrade(name, manifest)
	}
	return info, nil
}

// installedVersion determines the version currently present: the probe result
// when the package is physically installed, otherwise the greatest published
// version satisfying the declared range. A declared range no published
// version satisfies is fatal.
func (r *Resolver) installedVersion(
	dir, name, declaredRange string,
	declared bool,
	snapshot *domain.RegistrySnapshot,
) (*semver.Version, error) {
	if version, ok := r.probe.InstalledVersion(dir, name); ok {
		return version, nil
	}
	if !declared {
		return nil, nil
	}

	constraint, err := semver.NewConstraint(declaredRange)
	if err != nil {
		wrapped := zerr.Wrap(err, domain.ErrInvalidRange.Error())
		wrapped = zerr.With(wrapped, "package", name)
		return nil, zerr.With(wrapped, "range", declaredRange)
	}

	version, ok := snapshot.MaxSatisfying(constraint)
	if !ok {
		err := zerr.With(domain.ErrUnresolvableRange, "package", name)
		return nil, zerr.With(err, "range", declaredRange)
	}
	return version, nil
}

// targetVersion resolves the request token to a concrete upgrade candidate:
// a dist-tag lookup when the token names one, otherwise the greatest
// published version satisfying the token taken as a range. Returns nil when
// the token selects nothing.
func (r *Resolver) targetVersion(
	name string,
	token domain.VersionToken,
	snapshot *domain.RegistrySnapshot,
) *semver.Version {
	raw := token.Value
	if token.Kind == domain.TokenTag {
		resolved, ok := snapshot.ResolveTag(token.Value)
		if !ok {
			r.logger.Warn(fmt.Sprintf("%s: dist-tag %q does not exist, skipping", name, token.Value))
			return nil
		}
		raw = resolved
	}

	constraint, err := semver.NewConstraint(raw)
	if err != nil {
		r.logger.Warn(fmt.Sprintf("%s: %q is not a valid version or range, skipping", name, raw))
		return nil
	}

	version, ok := snapshot.MaxSatisfying(constraint)
	if !ok {
		r.logger.Warn(fmt.Sprintf("%s: no published version matches %q, skipping", name, token.Value))
		return nil
	}
	return version
}

func (r *Resolver) parseUpgrade(name string, manifest domain.ManifestSnapshot) domain.UpgradeMetadata {
	meta, warnings := domain.ParseUpgradeMetadata(manifest.UpgradeRaw)
	for _, w := range warnings {
		r.logger.Warn(fmt.Sprintf("%s@%s: %s", name, manifest.Version, w))
	}
	return meta
}
