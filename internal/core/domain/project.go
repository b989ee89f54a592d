package domain

import (
	"encoding/json"
	"maps"
	"slices"

	"go.trai.ch/zerr"
)

// Section identifies one of the dependency sections of the project manifest.
type Section string

const (
	// SectionDependencies is the runtime dependency section.
	SectionDependencies Section = "dependencies"
	// SectionDevDependencies is the development dependency section.
	SectionDevDependencies Section = "devDependencies"
	// SectionPeerDependencies is the peer dependency section.
	SectionPeerDependencies Section = "peerDependencies"
)

// SectionOrder is the fixed priority in which sections are consulted when a
// package version is updated: the first section containing the name wins.
var SectionOrder = []Section{
	SectionDependencies,
	SectionDevDependencies,
	SectionPeerDependencies,
}

// sectionEvictions maps the section that receives an update to the weaker
// sections a duplicate entry is removed from. Together with SectionOrder this
// is the complete rule table for manifest mutations: an update always lands
// in the strongest declaring section and deletes the name from weaker ones.
var sectionEvictions = map[Section][]Section{
	SectionDependencies:     {SectionDevDependencies, SectionPeerDependencies},
	SectionDevDependencies:  {SectionPeerDependencies},
	SectionPeerDependencies: {},
}

// ProjectManifest is the editable project dependency declaration document.
// Unknown fields are carried through Raw so that a rewrite only ever touches
// the dependency sections.
type ProjectManifest struct {
	Dependencies     map[string]string
	DevDependencies  map[string]string
	PeerDependencies map[string]string

	// Raw holds the original top-level JSON fields for round-tripping.
	Raw map[string]json.RawMessage
}

// UnmarshalJSON decodes the manifest, keeping unknown fields in Raw.
func (m *ProjectManifest) UnmarshalJSON(data []byte) error {
	if err := json.Unmarshal(data, &m.Raw); err != nil {
		return zerr.Wrap(err, ErrManifestParseFailed.Error())
	}
	for _, sec := range SectionOrder {
		raw, ok := m.Raw[string(sec)]
		if !ok {
			continue
		}
		target := m.sectionRef(sec)
		if err := json.Unmarshal(raw, target); err != nil {
			err = zerr.Wrap(err, ErrManifestParseFailed.Error())
			return zerr.With(err, "section", string(sec))
		}
	}
	return nil
}

// MarshalJSON re-encodes the manifest, overriding only the dependency
// sections and preserving every other original field.
func (m ProjectManifest) MarshalJSON() ([]byte, error) {
	out := maps.Clone(m.Raw)
	if out == nil {
		out = make(map[string]json.RawMessage)
	}
	for _, sec := range SectionOrder {
		deps := m.Section(sec)
		if deps == nil {
			delete(out, string(sec))
			continue
		}
		encoded, err := json.Marshal(deps)
		if err != nil {
			return nil, zerr.Wrap(err, "failed to marshal manifest section "+string(sec))
		}
		out[string(sec)] = encoded
	}
	return json.Marshal(out)
}

// Render serializes the manifest the way it is written to disk:
// two-space indentation and a trailing newline.
func (m *ProjectManifest) Render() ([]byte, error) {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// Clone returns a deep copy of the manifest.
func (m *ProjectManifest) Clone() *ProjectManifest {
	clone := &ProjectManifest{
		Dependencies:     maps.Clone(m.Dependencies),
		DevDependencies:  maps.Clone(m.DevDependencies),
		PeerDependencies: maps.Clone(m.PeerDependencies),
		Raw:              maps.Clone(m.Raw),
	}
	return clone
}

// Section returns the named dependency section, nil when the manifest does
// not declare it.
func (m *ProjectManifest) Section(sec Section) map[string]string {
	return *m.sectionRef(sec)
}

func (m *ProjectManifest) sectionRef(sec Section) *map[string]string {
	switch sec {
	case SectionDependencies:
		return &m.Dependencies
	case SectionDevDependencies:
		return &m.DevDependencies
	case SectionPeerDependencies:
		return &m.PeerDependencies
	default:
		panic("unknown manifest section: " + string(sec))
	}
}

// Range returns the declared range for a package, consulting the sections in
// priority order.
func (m *ProjectManifest) Range(name string) (string, bool) {
	for _, sec := range SectionOrder {
		if rng, ok := m.Section(sec)[name]; ok {
			return rng, true
		}
	}
	return "", false
}

// Names returns the sorted union of all declared package names.
func (m *ProjectManifest) Names() []string {
	seen := make(map[string]struct{})
	for _, sec := range SectionOrder {
		for name := range m.Section(sec) {
			seen[name] = struct{}{}
		}
	}
	names := slices.Collect(maps.Keys(seen))
	slices.Sort(names)
	return names
}

// SetVersion updates the declared range of a package to the given version,
// applying the section rule table: the first section in SectionOrder that
// declares the name receives the update and the name is evicted from the
// weaker sections. It reports the section updated, or false when the name is
// declared nowhere.
func (m *ProjectManifest) SetVersion(name, version string) (Section, bool) {
	for _, sec := range SectionOrder {
		deps := m.Section(sec)
		if _, ok := deps[name]; !ok {
			continue
		}
		deps[name] = version
		for _, weaker := range sectionEvictions[sec] {
			delete(m.Section(weaker), name)
		}
		return sec, true
	}
	return "", false
}
