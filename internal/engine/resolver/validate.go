package resolver

import (
	"fmt"
	"maps"
	"slices"

	"github.com/Masterminds/semver/v3"
	"go.trai.ch/pkgup/internal/core/domain"
)

// ValidatePeers checks peer-dependency compatibility across the resolved set.
// Both directions run for every candidate so that a single invocation surfaces
// every violation: the forward pass checks that each upgraded package's own
// peers exist and satisfy, the reverse pass checks that every other package
// still accepts the upgraded version.
//
// Violations are logged individually; when any exist and force is unset, the
// aggregate ErrPeerCompatibility is returned after the full sweep.
func (r *Resolver) ValidatePeers(infos map[string]*domain.PackageInfo, force bool) error {
	names := slices.Collect(maps.Keys(infos))
	slices.Sort(names)

	violated := false
	for _, name := range names {
		info := infos[name]
		if !info.HasTarget() {
			continue
		}
		violated = r.checkForwardPeers(info, infos) || violated
		violated = r.checkReversePeers(info, infos, names) || violated
	}

	if !violated {
		return nil
	}
	if force {
		r.logger.Warn("proceeding despite incompatible peer dependencies (--force)")
		return nil
	}
	return domain.ErrPeerCompatibility
}

// checkForwardPeers verifies the peers the target manifest declares. The
// check stops at the first violation for this package; the caller still
// continues with the remaining packages.
func (r *Resolver) checkForwardPeers(info *domain.PackageInfo, infos map[string]*domain.PackageInfo) bool {
	peers := info.Target.Manifest.PeerDependencies
	for _, peer := range sortedKeys(peers) {
		rng := peers[peer]

		peerInfo, ok := infos[peer]
		if !ok {
			r.logger.Error(fmt.Errorf(
				"%w: %s@%s requires %s@%s, which is not installed",
				domain.ErrMissingPeerDependency, info.Name, info.Target.Version, peer, rng,
			))
			return true
		}

		constraint, err := semver.NewConstraint(rng)
		if err != nil {
			r.logger.Warn(fmt.Sprintf("%s@%s declares an invalid peer range %q for %s, skipping the check",
				info.Name, info.Target.Version, rng, peer))
			continue
		}

		if effective := peerInfo.EffectiveVersion(); !constraint.Check(effective) {
			r.logger.Error(fmt.Errorf(
				"%w: %s@%s requires %s@%s, but %s would be installed",
				domain.ErrIncompatiblePeerDependency, info.Name, info.Target.Version, peer, rng, effective,
			))
			return true
		}
	}
	return false
}

// checkReversePeers verifies that every other package's effective manifest
// still accepts this package at its new version.
func (r *Resolver) checkReversePeers(
	info *domain.PackageInfo,
	infos map[string]*domain.PackageInfo,
	names []string,
) bool {
	violated := false
	for _, other := range names {
		if other == info.Name {
			continue
		}

		peers := infos[other].EffectiveManifest().PeerDependencies
		rng, ok := peers[info.Name]
		if !ok {
			continue
		}

		constraint, err := semver.NewConstraint(rng)
		if err != nil {
			r.logger.Warn(fmt.Sprintf("%s declares an invalid peer range %q for %s, skipping the check",
				other, rng, info.Name))
			continue
		}

		if !constraint.Check(info.Target.Version) {
			r.logger.Error(fmt.Errorf(
				"%w: %s requires %s@%s, but %s would be installed",
				domain.ErrIncompatiblePeerDependency, other, info.Name, rng, info.Target.Version,
			))
			violated = true
		}
	}
	return violated
}

func sortedKeys(m map[string]string) []string {
	keys := slices.Collect(maps.Keys(m))
	slices.Sort(keys)
	return keys
}
