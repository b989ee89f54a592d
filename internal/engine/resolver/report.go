package resolver

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
	"go.trai.ch/pkgup/internal/core/domain"
)

// BuildReport produces the read-only update report: every catalog package
// whose channel-resolved version is strictly newer than the installed one and
// that publishes upgrade metadata, sorted by name. Nothing is validated and
// nothing is mutated; packages the report cannot resolve are skipped.
func (r *Resolver) BuildReport(
	dir string,
	catalog *Catalog,
	snapshots map[string]*domain.RegistrySnapshot,
	channel Channel,
) []domain.ReportEntry {
	var entries []domain.ReportEntry

	for _, name := range catalog.Names() {
		snapshot, ok := snapshots[name]
		if !ok {
			continue
		}

		installed := r.reportInstalled(dir, name, catalog, snapshot)
		if installed == nil {
			continue
		}

		tagged, ok := snapshot.ResolveTag(channel.DefaultTag())
		if !ok {
			continue
		}
		available, err := semver.NewVersion(tagged)
		if err != nil {
			r.logger.Debug(fmt.Sprintf("%s: dist-tag %s points at invalid version %q", name, channel.DefaultTag(), tagged))
			continue
		}
		if !available.GreaterThan(installed) {
			continue
		}

		manifest, ok := snapshot.Manifest(available.String())
		if !ok || len(manifest.UpgradeRaw) == 0 {
			continue
		}
		meta := r.parseUpgrade(name, manifest)

		entries = append(entries, domain.ReportEntry{
			Name:          name,
			Installed:     installed,
			Available:     available,
			HasMigrations: meta.HasMigrations(),
		})
	}

	return entries
}

// reportInstalled is the lenient variant of installedVersion used by the
// report: failures skip the package instead of aborting the listing.
func (r *Resolver) reportInstalled(
	dir, name string,
	catalog *Catalog,
	snapshot *domain.RegistrySnapshot,
) *semver.Version {
	if version, ok := r.probe.InstalledVersion(dir, name); ok {
		return version
	}

	rng, ok := catalog.Range(name)
	if !ok {
		return nil
	}
	constraint, err := semver.NewConstraint(rng)
	if err != nil {
		return nil
	}
	version, ok := snapshot.MaxSatisfying(constraint)
	if !ok {
		return nil
	}
	return version
}
