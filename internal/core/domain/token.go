package domain

import (
	"github.com/Masterminds/semver/v3"
)

// TokenKind discriminates the three shapes a version token can take.
type TokenKind int

const (
	// TokenTag is a registry dist-tag name such as "latest" or "next".
	TokenTag TokenKind = iota
	// TokenExact is a concrete semver version such as "1.2.3".
	TokenExact
	// TokenRange is a semver constraint such as "^1.2.0".
	TokenRange
)

// String returns the string representation of the token kind.
func (k TokenKind) String() string {
	switch k {
	case TokenTag:
		return "tag"
	case TokenExact:
		return "exact"
	case TokenRange:
		return "range"
	default:
		return "unknown"
	}
}

// VersionToken is a tagged union of the version selectors a user or manifest
// can supply: an exact version, a semver range, or a dist-tag name. The kind
// is decided once at construction time so that no call site has to guess what
// the string means against the registry.
type VersionToken struct {
	Kind  TokenKind
	Value string
}

// TagToken builds a dist-tag token.
func TagToken(tag string) VersionToken {
	return VersionToken{Kind: TokenTag, Value: tag}
}

// ExactToken builds an exact-version token.
func ExactToken(version string) VersionToken {
	return VersionToken{Kind: TokenExact, Value: version}
}

// RangeToken builds a semver-range token.
func RangeToken(rng string) VersionToken {
	return VersionToken{Kind: TokenRange, Value: rng}
}

// ParseToken classifies a raw token string. A string that parses as a strict
// semver version is exact, a string that parses as a semver constraint is a
// range, anything else is treated as a dist-tag name.
func ParseToken(raw string) VersionToken {
	if _, err := semver.StrictNewVersion(raw); err == nil {
		return ExactToken(raw)
	}
	if _, err := semver.NewConstraint(raw); err == nil {
		return RangeToken(raw)
	}
	return TagToken(raw)
}

// String returns the raw token value.
func (t VersionToken) String() string {
	return t.Value
}
