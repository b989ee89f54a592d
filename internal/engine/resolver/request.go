package resolver

import (
	"fmt"
	"strings"

	"go.trai.ch/pkgup/internal/core/domain"
)

// BuildRequests turns the CLI selectors (or the bulk flag) into the initial
// request set. Malformed selectors and names missing from the catalog are
// skipped with a warning; they never abort the invocation.
func (r *Resolver) BuildRequests(selectors []string, all bool, channel Channel, catalog *Catalog) *domain.RequestSet {
	requests := domain.NewRequestSet()

	if all {
		for _, name := range catalog.Names() {
			rng, _ := catalog.Range(name)
			if isNonSemanticLocator(rng) {
				r.logger.Debug(fmt.Sprintf("skipping %s: %q is not a semver range", name, rng))
				continue
			}
			requests.Add(name, domain.TagToken(channel.DefaultTag()))
		}
	}

	for _, selector := range selectors {
		name, token, err := parseSelector(selector, channel)
		if err != nil {
			r.logger.Warn(fmt.Sprintf("ignoring invalid selector %q", selector))
			continue
		}
		if !catalog.Has(name) {
			r.logger.Warn(fmt.Sprintf("ignoring %s: not declared in the project manifest", name))
			continue
		}
		// Explicit selectors bypass the locator guard and override any
		// token bulk mode chose for the same name.
		requests.AddExplicit(name, token)
	}

	return requests
}

// parseSelector splits a selector of the form "name" or "name@token". Scoped
// names keep their leading "@scope/" segment.
func parseSelector(selector string, channel Channel) (string, domain.VersionToken, error) {
	if selector == "" || strings.ContainsAny(selector, " \t") {
		return "", domain.VersionToken{}, domain.ErrInvalidSelector
	}

	rest := selector
	scope := ""
	if strings.HasPrefix(selector, "@") {
		slash := strings.Index(selector, "/")
		if slash < 0 {
			return "", domain.VersionToken{}, domain.ErrInvalidSelector
		}
		scope = selector[:slash+1]
		rest = selector[slash+1:]
	}

	name, raw, found := strings.Cut(rest, "@")
	if name == "" {
		return "", domain.VersionToken{}, domain.ErrInvalidSelector
	}
	if !found {
		return scope + name, domain.TagToken(channel.DefaultTag()), nil
	}
	if raw == "" {
		return "", domain.VersionToken{}, domain.ErrInvalidSelector
	}
	return scope + name, domain.ParseToken(raw), nil
}

// isNonSemanticLocator reports whether a declared range points somewhere
// other than the registry: a URL, a local path, a git reference, or the
// "user/repo" hosting shorthand. Bulk mode skips such packages; explicit
// selectors override the guard.
func isNonSemanticLocator(rng string) bool {
	switch {
	case strings.Contains(rng, "://"),
		strings.HasPrefix(rng, "file:"),
		strings.HasPrefix(rng, "git+"),
		strings.HasPrefix(rng, "github:"):
		return true
	case strings.HasPrefix(rng, "./"),
		strings.HasPrefix(rng, "../"),
		strings.HasPrefix(rng, "/"),
		strings.HasPrefix(rng, "~/"):
		return true
	}
	// "user/repo" shorthand. Registry ranges never contain a slash.
	return strings.Contains(rng, "/")
}
