package resolver

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/pkgup/internal/core/domain"
	"go.trai.ch/zerr"
)

// BuildPlan computes the update plan for the resolved set: the manifest diff
// plus the ordered migration task descriptors. The manifest mutation follows
// the section rule table in domain.SectionOrder; a target package declared in
// no section is warned about and left alone, which is the expected outcome
// for purely peer-injected names.
func (r *Resolver) BuildPlan(
	infos map[string]*domain.PackageInfo,
	manifest *domain.ProjectManifest,
) (*domain.UpdatePlan, error) {
	names := slices.Collect(maps.Keys(infos))
	slices.Sort(names)

	updated := manifest.Clone()
	for _, name := range names {
		info := infos[name]
		if !info.HasTarget() {
			continue
		}
		section, ok := updated.SetVersion(name, info.Target.Version.String())
		if !ok {
			r.logger.Warn(fmt.Sprintf("%s is not declared in the project manifest, leaving it unchanged", name))
			continue
		}
		r.logger.Debug(fmt.Sprintf("updating %s to %s in %s", name, info.Target.Version, section))
	}

	plan := &domain.UpdatePlan{}

	original, err := manifest.Render()
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrManifestWriteFailed.Error())
	}
	rendered, err := updated.Render()
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrManifestWriteFailed.Error())
	}
	if xxhash.Sum64(rendered) != xxhash.Sum64(original) {
		plan.Manifest = rendered
	}

	for _, name := range names {
		info := infos[name]
		if !info.HasTarget() || !info.Target.Upgrade.HasMigrations() {
			continue
		}
		plan.Tasks = append(plan.Tasks, domain.MigrationTask{
			Package:    name,
			Collection: collectionPath(name, info.Target.Upgrade.Migrations),
			From:       info.Installed.Version,
			To:         info.Target.Version,
		})
	}

	return plan, nil
}

// collectionPath locates a migration collection. A bare value is resolved
// relative to the package; an explicit path is kept as given.
func collectionPath(pkg, path string) string {
	if strings.HasPrefix(path, "./") ||
		strings.HasPrefix(path, "../") ||
		strings.HasPrefix(path, "/") {
		return path
	}
	return pkg + "/" + path
}
