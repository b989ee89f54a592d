// Package app implements the application layer for pkgup.
package app

import (
	"context"

	"github.com/Masterminds/semver/v3"
	"go.opentelemetry.io/otel"
	"go.trai.ch/pkgup/internal/adapters/config"
	"go.trai.ch/pkgup/internal/adapters/registry"
	"go.trai.ch/pkgup/internal/adapters/telemetry"
	"go.trai.ch/pkgup/internal/core/domain"
	"go.trai.ch/pkgup/internal/core/ports"
	"go.trai.ch/pkgup/internal/engine/resolver"
	"go.trai.ch/zerr"
)

const tracerName = "pkgup"

// App represents the main application logic.
type App struct {
	store    ports.ManifestStore
	registry ports.Registry
	probe    ports.InstalledProbe
	logger   ports.Logger
	cfg      *config.Config
}

// New creates a new App instance.
func New(
	store ports.ManifestStore,
	reg ports.Registry,
	probe ports.InstalledProbe,
	log ports.Logger,
	cfg *config.Config,
) *App {
	return &App{
		store:    store,
		registry: reg,
		probe:    probe,
		logger:   log,
		cfg:      cfg,
	}
}

// UpdateOptions configuration for the Update method.
type UpdateOptions struct {
	// Packages are the explicit selectors, "name" or "name@token".
	Packages []string
	// All requests every updatable package declared in the manifest.
	All bool
	// Next targets the "next" dist-tag instead of "latest".
	Next bool
	// Force proceeds despite peer compatibility violations.
	Force bool
	// DryRun computes and prints the plan without writing the manifest.
	DryRun bool
	// MigrateOnly emits a single migration task without touching anything.
	MigrateOnly bool
	// From is the migration start version (migrate-only mode).
	From string
	// To is the migration end version (migrate-only mode, optional).
	To string
	// Registry overrides the configured registry endpoint.
	Registry string
}

// Update runs the update pipeline for the given project directory: request
// building, registry fetch, expansion, resolution, validation and planning.
// With no requested packages it degrades to the read-only update report.
func (a *App) Update(ctx context.Context, dir string, opts UpdateOptions) error {
	shutdown := telemetry.Setup(a.logger)
	defer func() {
		_ = shutdown(context.WithoutCancel(ctx))
	}()

	res := a.newResolver(opts)

	manifest, err := a.store.Read(dir)
	if err != nil {
		return err
	}
	catalog := resolver.NewCatalog(manifest)

	if opts.MigrateOnly {
		return a.migrateOnly(ctx, dir, res, catalog, opts)
	}

	channel := a.channel(opts)
	requests := res.BuildRequests(opts.Packages, opts.All, channel, catalog)

	tracer := otel.Tracer(tracerName)

	ctx, span := tracer.Start(ctx, "registry fetch")
	snapshots, err := res.FetchSnapshots(ctx, catalog, requests)
	span.End()
	if err != nil {
		return err
	}

	// An empty request set means report mode: list what could be updated
	// and change nothing.
	if requests.Len() == 0 {
		_, span = tracer.Start(ctx, "report")
		entries := res.BuildReport(dir, catalog, snapshots, channel)
		span.End()
		a.printReport(entries)
		return nil
	}

	_, span = tracer.Start(ctx, "resolve")
	res.ExpandRequests(requests, snapshots, catalog)
	infos, err := res.ResolveInfos(dir, requests, snapshots, catalog)
	span.End()
	if err != nil {
		return err
	}

	_, span = tracer.Start(ctx, "validate")
	err = res.ValidatePeers(infos, opts.Force)
	span.End()
	if err != nil {
		return err
	}

	_, span = tracer.Start(ctx, "plan")
	plan, err := res.BuildPlan(infos, manifest)
	span.End()
	if err != nil {
		return err
	}

	return a.applyPlan(dir, plan, opts.DryRun)
}

// migrateOnly handles the single-package migrate-only mode.
func (a *App) migrateOnly(
	ctx context.Context,
	dir string,
	res *resolver.Resolver,
	catalog *resolver.Catalog,
	opts UpdateOptions,
) error {
	if len(opts.Packages) != 1 {
		return domain.ErrMigrateSinglePackage
	}
	if opts.From == "" {
		return domain.ErrMissingMigrateFrom
	}

	from, err := semver.NewVersion(opts.From)
	if err != nil {
		wrapped := zerr.Wrap(err, domain.ErrInvalidVersion.Error())
		return zerr.With(wrapped, "from", opts.From)
	}

	var to *semver.Version
	if opts.To != "" {
		to, err = semver.NewVersion(opts.To)
		if err != nil {
			wrapped := zerr.Wrap(err, domain.ErrInvalidVersion.Error())
			return zerr.With(wrapped, "to", opts.To)
		}
	}

	plan, err := res.MigrateOnly(ctx, dir, opts.Packages[0], from, to, catalog)
	if err != nil {
		return err
	}
	a.printTasks(plan.Tasks)
	return nil
}

// applyPlan writes the manifest diff (unless dry-run) and prints the
// migration tasks the external executor should run.
func (a *App) applyPlan(dir string, plan *domain.UpdatePlan, dryRun bool) error {
	if plan.IsEmpty() {
		a.logger.Info("everything is already up to date")
		return nil
	}

	if plan.HasManifestChange() {
		if dryRun {
			a.logger.Info("dry run: not writing " + domain.ManifestFileName)
		} else {
			if err := a.store.Write(dir, plan.Manifest); err != nil {
				return err
			}
			a.logger.Info("updated " + domain.ManifestFileName + ", run your package manager to install")
		}
	}

	a.printTasks(plan.Tasks)
	return nil
}

func (a *App) printTasks(tasks []domain.MigrationTask) {
	for _, task := range tasks {
		a.logger.Info(renderTask(task))
	}
}

func (a *App) printReport(entries []domain.ReportEntry) {
	if len(entries) == 0 {
		a.logger.Info("all packages are up to date")
		return
	}
	a.logger.Info(renderReport(entries))
}

// newResolver builds the pipeline, honoring the registry override flag and
// the configured fetch concurrency.
func (a *App) newResolver(opts UpdateOptions) *resolver.Resolver {
	reg := a.registry
	if opts.Registry != "" {
		reg = registry.NewClient(opts.Registry)
	}
	res := resolver.NewResolver(reg, a.probe, a.logger)
	if a.cfg != nil && a.cfg.FetchConcurrency > 0 {
		res = res.WithConcurrency(a.cfg.FetchConcurrency)
	}
	return res
}

func (a *App) channel(opts UpdateOptions) resolver.Channel {
	if opts.Next {
		return resolver.ChannelNext
	}
	if a.cfg != nil && a.cfg.Channel == string(resolver.ChannelNext) {
		return resolver.ChannelNext
	}
	return resolver.ChannelLatest
}
