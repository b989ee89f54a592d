package resolver

import (
	"context"

	"github.com/Masterminds/semver/v3"
	"go.trai.ch/pkgup/internal/core/domain"
	"go.trai.ch/zerr"
)

// ErrNoMigrations is returned when migrate-only mode targets a version that
// does not ship a migration collection.
var ErrNoMigrations = zerr.New("package does not ship migrations")

// MigrateOnly builds the plan for the single-package migrate-only mode. It
// bypasses request expansion, resolution and validation entirely: the result
// is exactly one migration task and no manifest change.
//
// The from version is mandatory; to defaults to the version currently
// installed (probe result, else the greatest version satisfying the declared
// range).
func (r *Resolver) MigrateOnly(
	ctx context.Context,
	dir, name string,
	from *semver.Version,
	to *semver.Version,
	catalog *Catalog,
) (*domain.UpdatePlan, error) {
	snapshot, err := r.registry.Fetch(ctx, name)
	if err != nil {
		return nil, zerr.With(err, "package", name)
	}

	if to == nil {
		declaredRange, declared := catalog.Range(name)
		to, err = r.installedVersion(dir, name, declaredRange, declared, snapshot)
		if err != nil {
			return nil, err
		}
		if to == nil {
			return nil, zerr.With(domain.ErrNotInstalled, "package", name)
		}
	}

	manifest, ok := snapshot.Manifest(to.String())
	if !ok {
		err := zerr.With(domain.ErrPackageNotFound, "package", name)
		return nil, zerr.With(err, "version", to.String())
	}
	meta := r.parseUpgrade(name, manifest)
	if !meta.HasMigrations() {
		err := zerr.With(ErrNoMigrations, "package", name)
		return nil, zerr.With(err, "version", to.String())
	}

	return &domain.UpdatePlan{
		Tasks: []domain.MigrationTask{{
			Package:    name,
			Collection: collectionPath(name, meta.Migrations),
			From:       from,
			To:         to,
		}},
	}, nil
}
