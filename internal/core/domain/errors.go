package domain

import "go.trai.ch/zerr"

var (
	// ErrManifestNotFound is returned when the project manifest cannot be found.
	ErrManifestNotFound = zerr.New("could not find package manifest")

	// ErrManifestReadFailed is returned when the project manifest cannot be read.
	ErrManifestReadFailed = zerr.New("failed to read package manifest")

	// ErrManifestParseFailed is returned when the project manifest cannot be parsed.
	ErrManifestParseFailed = zerr.New("failed to parse package manifest")

	// ErrManifestWriteFailed is returned when the updated manifest cannot be written.
	ErrManifestWriteFailed = zerr.New("failed to write package manifest")

	// ErrInvalidSelector is returned when a package selector does not parse as name or name@token.
	ErrInvalidSelector = zerr.New("invalid package selector")

	// ErrUnresolvableRange is returned when no registry-known version satisfies a declared range.
	ErrUnresolvableRange = zerr.New("no published version satisfies the declared range")

	// ErrInvalidRange is returned when a declared range does not parse as a semver constraint.
	ErrInvalidRange = zerr.New("invalid semver range")

	// ErrRegistryFetchFailed is returned when a registry metadata request fails.
	ErrRegistryFetchFailed = zerr.New("failed to fetch registry metadata")

	// ErrRegistryParseFailed is returned when a registry metadata response cannot be parsed.
	ErrRegistryParseFailed = zerr.New("failed to parse registry metadata")

	// ErrPackageNotFound is returned when the registry has no metadata for a package.
	ErrPackageNotFound = zerr.New("package not found in registry")

	// ErrMissingPeerDependency is returned when a target version declares a peer that is not installed.
	ErrMissingPeerDependency = zerr.New("missing peer dependency")

	// ErrIncompatiblePeerDependency is returned when a peer range is not satisfied by the effective version.
	ErrIncompatiblePeerDependency = zerr.New("incompatible peer dependency")

	// ErrPeerCompatibility is the aggregate returned after all peer violations have been reported.
	ErrPeerCompatibility = zerr.New("incompatible peer dependencies found, pass --force to proceed anyway")

	// ErrMissingMigrateFrom is returned when migrate-only mode is requested without a from version.
	ErrMissingMigrateFrom = zerr.New("migrate-only mode requires --from")

	// ErrMigrateSinglePackage is returned when migrate-only mode is requested for zero or multiple packages.
	ErrMigrateSinglePackage = zerr.New("migrate-only mode requires exactly one package")

	// ErrInvalidVersion is returned when a version string does not parse as semver.
	ErrInvalidVersion = zerr.New("invalid semver version")

	// ErrNotInstalled is returned when the installed version of a package cannot be determined.
	ErrNotInstalled = zerr.New("package does not appear to be installed")

	// ErrConfigReadFailed is returned when the tool config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the tool config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")
)
