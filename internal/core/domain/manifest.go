package domain

import (
	"encoding/json"
)

// UpgradeMetadataKey is the manifest field under which a package publishes
// its upgrade metadata (package group, peer requirements, migration schematics).
const UpgradeMetadataKey = "upgrade"

// UpgradeMetadata is the validated upgrade block of a registry-resolved
// manifest version. Every field is optional; malformed fields degrade to
// their zero value instead of failing the resolution.
type UpgradeMetadata struct {
	// PackageGroup lists package names that should be upgraded together
	// whenever any member of the group is upgraded.
	PackageGroup []string

	// Requirements maps package names to ranges this version requires.
	Requirements map[string]string

	// Migrations is the path to the migration collection shipped with the
	// package, empty when the package has none.
	Migrations string
}

// HasMigrations reports whether this version ships a migration collection.
func (m UpgradeMetadata) HasMigrations() bool {
	return m.Migrations != ""
}

// ParseUpgradeMetadata decodes the raw upgrade block of a manifest version.
// Each field is validated independently: a malformed field is reported as a
// warning and replaced with its zero value, it never fails the parse.
func ParseUpgradeMetadata(raw json.RawMessage) (UpgradeMetadata, []string) {
	var meta UpgradeMetadata
	if len(raw) == 0 {
		return meta, nil
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return meta, []string{"upgrade metadata is not an object, ignoring it"}
	}

	var warnings []string
	if f, ok := fields["packageGroup"]; ok {
		if err := json.Unmarshal(f, &meta.PackageGroup); err != nil {
			meta.PackageGroup = nil
			warnings = append(warnings, "packageGroup is not an array of package names, ignoring it")
		}
	}
	if f, ok := fields["requirements"]; ok {
		if err := json.Unmarshal(f, &meta.Requirements); err != nil {
			meta.Requirements = nil
			warnings = append(warnings, "requirements is not a map of package names to ranges, ignoring it")
		}
	}
	if f, ok := fields["migrations"]; ok {
		if err := json.Unmarshal(f, &meta.Migrations); err != nil {
			meta.Migrations = ""
			warnings = append(warnings, "migrations is not a path string, ignoring it")
		}
	}
	return meta, warnings
}

// ManifestSnapshot is one registry-resolved manifest version of a package:
// its declared dependencies plus the raw upgrade metadata block.
type ManifestSnapshot struct {
	Name             string            `json:"name"`
	Version          string            `json:"version"`
	Dependencies     map[string]string `json:"dependencies,omitempty"`
	DevDependencies  map[string]string `json:"devDependencies,omitempty"`
	PeerDependencies map[string]string `json:"peerDependencies,omitempty"`

	// UpgradeRaw carries the undecoded upgrade block. It is validated
	// field by field via ParseUpgradeMetadata when the package is resolved.
	UpgradeRaw json.RawMessage `json:"upgrade,omitempty"`
}
