// Package manifest implements the ManifestStore port over a package.json
// file on disk.
package manifest

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/pkgup/internal/core/domain"
	"go.trai.ch/zerr"
)

// Store implements ports.ManifestStore on the local filesystem.
type Store struct{}

// NewStore creates a new manifest store.
func NewStore() *Store {
	return &Store{}
}

// Read loads and parses the project manifest from the given directory.
func (s *Store) Read(dir string) (*domain.ProjectManifest, error) {
	path := filepath.Join(dir, domain.ManifestFileName)

	// #nosec G304 -- path is constructed from the project directory
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, zerr.With(domain.ErrManifestNotFound, "path", path)
		}
		wrapped := zerr.Wrap(err, domain.ErrManifestReadFailed.Error())
		return nil, zerr.With(wrapped, "path", path)
	}

	var m domain.ProjectManifest
	if err := json.Unmarshal(data, &m); err != nil {
		wrapped := zerr.Wrap(err, domain.ErrManifestParseFailed.Error())
		return nil, zerr.With(wrapped, "path", path)
	}
	return &m, nil
}

// Write atomically replaces the project manifest with the rendered content.
func (s *Store) Write(dir string, content []byte) error {
	path := filepath.Join(dir, domain.ManifestFileName)
	if err := atomicWriteFile(path, content); err != nil {
		wrapped := zerr.Wrap(err, domain.ErrManifestWriteFailed.Error())
		return zerr.With(wrapped, "path", path)
	}
	return nil
}

// atomicWriteFile writes data to a file atomically by writing to a temp file
// and renaming it.
func atomicWriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)

	tmpFile, err := os.CreateTemp(dir, "manifest-*.json")
	if err != nil {
		return err
	}
	tmpName := tmpFile.Name()

	// Clean up temp file on error
	defer func() {
		if _, statErr := os.Stat(tmpName); statErr == nil {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		_ = tmpFile.Close()
		return err
	}
	if err := tmpFile.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpName, domain.FilePerm); err != nil {
		return err
	}

	return os.Rename(tmpName, path)
}
