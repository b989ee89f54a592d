package domain_test

import (
	"testing"

	"github.com/Masterminds/semver/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pkgup/internal/core/domain"
)

func snapshotWithVersions(versions ...string) *domain.RegistrySnapshot {
	s := &domain.RegistrySnapshot{
		Name:     "pkg",
		Versions: make(map[string]domain.ManifestSnapshot, len(versions)),
	}
	for _, v := range versions {
		s.Versions[v] = domain.ManifestSnapshot{Name: "pkg", Version: v}
	}
	return s
}

func TestRegistrySnapshot_MaxSatisfying(t *testing.T) {
	snapshot := snapshotWithVersions("1.0.0", "1.2.0", "1.9.3", "2.0.0")

	constraint, err := semver.NewConstraint("^1.0.0")
	require.NoError(t, err)

	version, ok := snapshot.MaxSatisfying(constraint)
	require.True(t, ok)
	assert.Equal(t, "1.9.3", version.String())
}

func TestRegistrySnapshot_MaxSatisfyingSkipsUnparseable(t *testing.T) {
	snapshot := snapshotWithVersions("1.0.0", "not-a-version")

	constraint, err := semver.NewConstraint(">=0.0.1")
	require.NoError(t, err)

	version, ok := snapshot.MaxSatisfying(constraint)
	require.True(t, ok)
	assert.Equal(t, "1.0.0", version.String())
}

func TestRegistrySnapshot_MaxSatisfyingNoMatch(t *testing.T) {
	snapshot := snapshotWithVersions("1.0.0")

	constraint, err := semver.NewConstraint("^3.0.0")
	require.NoError(t, err)

	_, ok := snapshot.MaxSatisfying(constraint)
	assert.False(t, ok)
}

func TestRegistrySnapshot_ResolveTag(t *testing.T) {
	snapshot := snapshotWithVersions("1.0.0", "2.0.0-rc.1")
	snapshot.DistTags = map[string]string{"latest": "1.0.0", "next": "2.0.0-rc.1"}

	version, ok := snapshot.ResolveTag("next")
	require.True(t, ok)
	assert.Equal(t, "2.0.0-rc.1", version)

	_, ok = snapshot.ResolveTag("beta")
	assert.False(t, ok)
}
