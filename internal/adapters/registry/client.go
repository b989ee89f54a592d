// Package registry implements the Registry port against an npm-compatible
// package registry over HTTP.
package registry

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"go.trai.ch/pkgup/internal/core/domain"
	"go.trai.ch/zerr"
)

const (
	// DefaultEndpoint is the public npm registry.
	DefaultEndpoint = "https://registry.npmjs.org"

	httpClientTimeout = 30 * time.Second
)

// Client implements ports.Registry using an npm-compatible HTTP registry.
// Responses are memoized for the lifetime of the client, so every resolution
// stage within one invocation observes the same frozen snapshot per package.
type Client struct {
	endpoint   string
	httpClient *http.Client

	mu    sync.Mutex
	cache map[string]*domain.RegistrySnapshot
}

// NewClient creates a registry client for the given endpoint. An empty
// endpoint selects the public npm registry.
func NewClient(endpoint string) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	return &Client{
		endpoint: strings.TrimRight(endpoint, "/"),
		httpClient: &http.Client{
			Timeout: httpClientTimeout,
		},
		cache: make(map[string]*domain.RegistrySnapshot),
	}
}

// newClientWithHTTP creates a Client with a custom http client (used for testing).
func newClientWithHTTP(endpoint string, client *http.Client) *Client {
	c := NewClient(endpoint)
	c.httpClient = client
	return c
}

// Fetch retrieves the registry snapshot for a package name, serving repeated
// requests for the same name from the in-memory cache.
func (c *Client) Fetch(ctx context.Context, name string) (*domain.RegistrySnapshot, error) {
	c.mu.Lock()
	if snapshot, ok := c.cache[name]; ok {
		c.mu.Unlock()
		return snapshot, nil
	}
	c.mu.Unlock()

	snapshot, err := c.fetch(ctx, name)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.cache[name] = snapshot
	c.mu.Unlock()
	return snapshot, nil
}

func (c *Client) fetch(ctx context.Context, name string) (*domain.RegistrySnapshot, error) {
	// Scoped names keep their "@" but escape the scope separator.
	endpoint := c.endpoint + "/" + url.PathEscape(name)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, http.NoBody)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrRegistryFetchFailed.Error())
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrRegistryFetchFailed.Error())
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode == http.StatusNotFound {
		return nil, zerr.With(domain.ErrPackageNotFound, "package", name)
	}
	if resp.StatusCode != http.StatusOK {
		fetchErr := zerr.With(domain.ErrRegistryFetchFailed, "status_code", resp.StatusCode)
		return nil, zerr.With(fetchErr, "package", name)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrRegistryFetchFailed.Error())
	}

	var snapshot domain.RegistrySnapshot
	if err := json.Unmarshal(body, &snapshot); err != nil {
		return nil, zerr.Wrap(err, domain.ErrRegistryParseFailed.Error())
	}
	if snapshot.Name == "" {
		snapshot.Name = name
	}

	return &snapshot, nil
}
