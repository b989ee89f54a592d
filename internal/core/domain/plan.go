package domain

import (
	"github.com/Masterminds/semver/v3"
)

// MigrationTask is one deferred unit of migration work for a package moving
// between two versions. Tasks are scheduled by an external executor; every
// task logically depends on the manifest-install step of its plan.
type MigrationTask struct {
	// Package is the name of the package being migrated.
	Package string

	// Collection locates the migration collection, relative to the package
	// unless it is an explicit path.
	Collection string

	// From is the version the migration starts at.
	From *semver.Version

	// To is the version the migration ends at.
	To *semver.Version
}

// UpdatePlan is the output of the resolution pipeline: the rewritten manifest
// (when anything changed) and the ordered migration tasks to run after the
// install step.
type UpdatePlan struct {
	// Manifest is the rendered content of the updated manifest. It is nil
	// when the update changes nothing, in which case no install step is
	// scheduled either.
	Manifest []byte

	// Tasks are the migration task descriptors in deterministic order.
	Tasks []MigrationTask
}

// HasManifestChange reports whether the plan rewrites the manifest.
func (p *UpdatePlan) HasManifestChange() bool {
	return p.Manifest != nil
}

// IsEmpty reports whether the plan requires no work at all.
func (p *UpdatePlan) IsEmpty() bool {
	return p.Manifest == nil && len(p.Tasks) == 0
}

// ReportEntry is one row of the read-only update report: a catalog package
// whose channel-resolved version is newer than the installed one and that
// carries upgrade metadata.
type ReportEntry struct {
	Name      string
	Installed *semver.Version
	Available *semver.Version

	// HasMigrations reports whether the available version ships migrations,
	// which decides the suggested command.
	HasMigrations bool
}

// SuggestedCommand returns the command a user should run to apply the entry.
func (e ReportEntry) SuggestedCommand() string {
	if e.HasMigrations {
		return "pkgup update " + e.Name
	}
	return "npm install " + e.Name + "@" + e.Available.String()
}
