// Package resolver implements the update resolution pipeline: it turns a set
// of requested package upgrades into a validated update plan against the
// project manifest and the package registry.
package resolver

import (
	"go.trai.ch/pkgup/internal/core/ports"
)

// defaultFetchConcurrency bounds the number of registry requests in flight.
const defaultFetchConcurrency = 8

// Channel selects which dist-tag an update targets by default.
type Channel string

const (
	// ChannelLatest targets the stable "latest" dist-tag.
	ChannelLatest Channel = "latest"
	// ChannelNext targets the prerelease "next" dist-tag.
	ChannelNext Channel = "next"
)

// DefaultTag returns the dist-tag name a channel resolves to.
func (c Channel) DefaultTag() string {
	if c == ChannelNext {
		return string(ChannelNext)
	}
	return string(ChannelLatest)
}

// Resolver runs the stages of the update pipeline. All stages after the
// registry fetch operate single-threaded over immutable inputs, so a Resolver
// is safe to reuse across invocations.
type Resolver struct {
	registry    ports.Registry
	probe       ports.InstalledProbe
	logger      ports.Logger
	concurrency int
}

// NewResolver creates a Resolver with the given dependencies.
func NewResolver(registry ports.Registry, probe ports.InstalledProbe, logger ports.Logger) *Resolver {
	return &Resolver{
		registry:    registry,
		probe:       probe,
		logger:      logger,
		concurrency: defaultFetchConcurrency,
	}
}

// WithConcurrency overrides the registry fetch concurrency.
func (r *Resolver) WithConcurrency(n int) *Resolver {
	if n > 0 {
		r.concurrency = n
	}
	return r
}
