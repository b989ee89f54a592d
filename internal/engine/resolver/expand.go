package resolver

import (
	"fmt"
	"maps"
	"slices"

	"go.trai.ch/pkgup/internal/core/domain"
)

// ExpandRequests grows the request set using each requested package's
// package-group and peer-dependency metadata.
//
// The expansion is a single pass over the fetched snapshots in sorted name
// order. It is deliberately not transitive: a package added during the pass
// only has its own group and peers expanded if its name happens to be visited
// later in the same pass. Making this transitive would change which packages
// an update pulls in, so the single-pass behavior is preserved exactly.
func (r *Resolver) ExpandRequests(
	requests *domain.RequestSet,
	snapshots map[string]*domain.RegistrySnapshot,
	catalog *Catalog,
) {
	names := slices.Collect(maps.Keys(snapshots))
	slices.Sort(names)

	for _, name := range names {
		token, ok := requests.Token(name)
		if !ok {
			continue
		}
		manifest, ok := chosenManifest(snapshots[name], token)
		if !ok {
			continue
		}

		r.expandGroup(requests, catalog, name, token, manifest)
		r.injectPeers(requests, name, manifest)
	}
}

// expandGroup adds every catalog-declared member of the package's group to
// the request set, carrying over the originating package's token.
func (r *Resolver) expandGroup(
	requests *domain.RequestSet,
	catalog *Catalog,
	name string,
	token domain.VersionToken,
	manifest domain.ManifestSnapshot,
) {
	meta, warnings := domain.ParseUpgradeMetadata(manifest.UpgradeRaw)
	for _, w := range warnings {
		r.logger.Warn(fmt.Sprintf("%s@%s: %s", name, manifest.Version, w))
	}

	for _, member := range meta.PackageGroup {
		if member == name || !catalog.Has(member) {
			continue
		}
		if requests.Add(member, token) {
			r.logger.Debug(fmt.Sprintf("adding %s to the update: part of the %s package group", member, name))
		}
	}
}

// injectPeers adds every peer the chosen version declares, as a range token
// equal to the declared peer range. This only grows the candidate set; peer
// compatibility is checked later by the validator.
func (r *Resolver) injectPeers(
	requests *domain.RequestSet,
	name string,
	manifest domain.ManifestSnapshot,
) {
	peers := slices.Collect(maps.Keys(manifest.PeerDependencies))
	slices.Sort(peers)

	for _, peer := range peers {
		rng := manifest.PeerDependencies[peer]
		if requests.Add(peer, domain.RangeToken(rng)) {
			r.logger.Debug(fmt.Sprintf("adding %s@%s to the update: peer dependency of %s", peer, rng, name))
		}
	}
}

// chosenManifest resolves the manifest version a token selects for expansion
// purposes: a dist-tag lookup for tag tokens, otherwise the token value taken
// as a literal published version.
func chosenManifest(snapshot *domain.RegistrySnapshot, token domain.VersionToken) (domain.ManifestSnapshot, bool) {
	version := token.Value
	if token.Kind == domain.TokenTag {
		resolved, ok := snapshot.ResolveTag(token.Value)
		if !ok {
			return domain.ManifestSnapshot{}, false
		}
		version = resolved
	}
	return snapshot.Manifest(version)
}
