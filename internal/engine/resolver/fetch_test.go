package resolver_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pkgup/internal/core/domain"
	"go.trai.ch/pkgup/internal/engine/resolver"
	"go.uber.org/mock/gomock"
)

func TestFetchSnapshots_FetchesEveryCatalogPackage(t *testing.T) {
	ctrl := gomock.NewController(t)

	snaps := map[string]*domain.RegistrySnapshot{
		"a": newSnapshot("a", nil, domain.ManifestSnapshot{Version: "1.0.0"}),
		"b": newSnapshot("b", nil, domain.ManifestSnapshot{Version: "2.0.0"}),
	}
	r := resolver.NewResolver(registryOf(ctrl, snaps), nil, relaxedLogger(ctrl))

	catalog := catalogOf(map[string]string{"a": "^1.0.0", "b": "^2.0.0"})
	requests := domain.NewRequestSet()
	requests.AddExplicit("a", domain.TagToken("latest"))

	got, err := r.FetchSnapshots(t.Context(), catalog, requests)
	require.NoError(t, err)

	assert.Len(t, got, 2)
	assert.Equal(t, snaps["a"], got["a"])
	assert.Equal(t, snaps["b"], got["b"])
}

func TestFetchSnapshots_DropsMissingSpeculativePackage(t *testing.T) {
	ctrl := gomock.NewController(t)

	snaps := map[string]*domain.RegistrySnapshot{
		"a": newSnapshot("a", nil, domain.ManifestSnapshot{Version: "1.0.0"}),
	}
	r := resolver.NewResolver(registryOf(ctrl, snaps), nil, relaxedLogger(ctrl))

	catalog := catalogOf(map[string]string{"a": "^1.0.0", "gone": "^1.0.0"})
	requests := domain.NewRequestSet()
	requests.Add("gone", domain.TagToken("latest"))

	got, err := r.FetchSnapshots(t.Context(), catalog, requests)
	require.NoError(t, err)

	assert.Len(t, got, 1)
	assert.NotContains(t, got, "gone")
}

func TestFetchSnapshots_MissingExplicitPackageIsFatal(t *testing.T) {
	ctrl := gomock.NewController(t)

	r := resolver.NewResolver(registryOf(ctrl, nil), nil, relaxedLogger(ctrl))

	catalog := catalogOf(map[string]string{"gone": "^1.0.0"})
	requests := domain.NewRequestSet()
	requests.AddExplicit("gone", domain.TagToken("latest"))

	_, err := r.FetchSnapshots(t.Context(), catalog, requests)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrPackageNotFound)
}
