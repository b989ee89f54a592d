package probe_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pkgup/internal/adapters/probe"
	"go.trai.ch/pkgup/internal/core/domain"
)

func installPackage(t *testing.T, dir, name, manifest string) {
	t.Helper()
	pkgDir := filepath.Join(dir, domain.InstallDirName, name)
	require.NoError(t, os.MkdirAll(pkgDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(pkgDir, domain.ManifestFileName), []byte(manifest), 0o644))
}

func TestProbe_InstalledVersion(t *testing.T) {
	dir := t.TempDir()
	installPackage(t, dir, "pkg-core", `{"name": "pkg-core", "version": "1.2.3"}`)
	installPackage(t, dir, "@scope/tool", `{"name": "@scope/tool", "version": "4.5.6"}`)

	p := probe.NewProbe()

	version, ok := p.InstalledVersion(dir, "pkg-core")
	require.True(t, ok)
	assert.Equal(t, "1.2.3", version.String())

	version, ok = p.InstalledVersion(dir, "@scope/tool")
	require.True(t, ok)
	assert.Equal(t, "4.5.6", version.String())
}

func TestProbe_NotInstalled(t *testing.T) {
	p := probe.NewProbe()
	_, ok := p.InstalledVersion(t.TempDir(), "pkg-core")
	assert.False(t, ok)
}

func TestProbe_MalformedManifest(t *testing.T) {
	dir := t.TempDir()
	installPackage(t, dir, "broken-json", "{")
	installPackage(t, dir, "broken-version", `{"version": "not-semver"}`)

	p := probe.NewProbe()

	_, ok := p.InstalledVersion(dir, "broken-json")
	assert.False(t, ok)

	_, ok = p.InstalledVersion(dir, "broken-version")
	assert.False(t, ok)
}
