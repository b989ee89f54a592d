package manifest_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pkgup/internal/adapters/manifest"
	"go.trai.ch/pkgup/internal/core/domain"
)

const sampleManifest = `{
  "name": "demo-app",
  "version": "0.1.0",
  "private": true,
  "scripts": {
    "build": "tsc -p ."
  },
  "dependencies": {
    "pkg-cli": "^1.0.0",
    "pkg-core": "^1.0.0"
  },
  "devDependencies": {
    "pkg-devkit": "~2.3.0"
  }
}
`

func writeManifest(t *testing.T, dir, content string) {
	t.Helper()
	path := filepath.Join(dir, domain.ManifestFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestStore_Read(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, sampleManifest)

	m, err := manifest.NewStore().Read(dir)
	require.NoError(t, err)

	assert.Equal(t, map[string]string{
		"pkg-cli":  "^1.0.0",
		"pkg-core": "^1.0.0",
	}, m.Dependencies)
	assert.Equal(t, map[string]string{"pkg-devkit": "~2.3.0"}, m.DevDependencies)
	assert.Contains(t, m.Raw, "scripts")
}

func TestStore_ReadMissingFile(t *testing.T) {
	_, err := manifest.NewStore().Read(t.TempDir())
	assert.ErrorIs(t, err, domain.ErrManifestNotFound)
}

func TestStore_ReadMalformedFile(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, "{not json")

	_, err := manifest.NewStore().Read(dir)
	assert.ErrorIs(t, err, domain.ErrManifestParseFailed)
}

func TestStore_RoundTripPreservesUnknownFields(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, sampleManifest)
	store := manifest.NewStore()

	m, err := store.Read(dir)
	require.NoError(t, err)

	_, ok := m.SetVersion("pkg-core", "2.0.0")
	require.True(t, ok)

	rendered, err := m.Render()
	require.NoError(t, err)
	require.NoError(t, store.Write(dir, rendered))

	written, err := os.ReadFile(filepath.Join(dir, domain.ManifestFileName))
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, "updated_manifest", written)
}
