package ports

import "github.com/Masterminds/semver/v3"

// InstalledProbe defines the interface for looking up the version of a
// package actually present in the local install tree.
//
//go:generate mockgen -source=probe.go -destination=mocks/mock_probe.go -package=mocks
type InstalledProbe interface {
	// InstalledVersion returns the locally installed version of a package,
	// or false when the package is not installed or its version cannot be
	// determined.
	InstalledVersion(dir, name string) (*semver.Version, bool)
}
