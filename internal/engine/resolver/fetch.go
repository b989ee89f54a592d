package resolver

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.trai.ch/pkgup/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// FetchSnapshots retrieves registry metadata for every package the catalog
// declares, concurrently and with bounded parallelism. The returned map is a
// full barrier: resolution only ever sees it completely populated.
//
// A missing package is fatal when it was selected explicitly; a package that
// was only pulled in speculatively (bulk mode, expansion candidates) is
// dropped with a warning instead.
func (r *Resolver) FetchSnapshots(
	ctx context.Context,
	catalog *Catalog,
	requests *domain.RequestSet,
) (map[string]*domain.RegistrySnapshot, error) {
	names := catalog.Names()
	snapshots := make(map[string]*domain.RegistrySnapshot, len(names))

	var mu sync.Mutex
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.concurrency)

	for _, name := range names {
		g.Go(func() error {
			snapshot, err := r.registry.Fetch(ctx, name)
			if err != nil {
				if errors.Is(err, domain.ErrPackageNotFound) && !requests.Explicit(name) {
					r.logger.Warn(fmt.Sprintf("dropping %s: not found in registry", name))
					return nil
				}
				return zerr.With(err, "package", name)
			}

			mu.Lock()
			snapshots[name] = snapshot
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return snapshots, nil
}
