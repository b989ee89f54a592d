// Package config loads the optional tool configuration for pkgup.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/pkgup/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// FileName is the optional per-project configuration file.
const FileName = "pkgup.yaml"

// Config carries the tool settings a project can pin in pkgup.yaml.
// Command-line flags override every field.
type Config struct {
	// Registry is the registry endpoint to fetch metadata from.
	Registry string `yaml:"registry"`

	// Channel is the default release channel, "latest" or "next".
	Channel string `yaml:"channel"`

	// FetchConcurrency bounds parallel registry requests.
	FetchConcurrency int `yaml:"fetchConcurrency"`
}

// Load reads the configuration from the given directory. A missing file is
// not an error; it yields the zero config and flags or defaults take over.
func Load(dir string) (*Config, error) {
	data, err := os.ReadFile(filepath.Join(dir, FileName))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, zerr.Wrap(err, domain.ErrConfigParseFailed.Error())
	}
	return &cfg, nil
}
