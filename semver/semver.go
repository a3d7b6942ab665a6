// Package semver provides semantic version parsing and comparison glue
// over github.com/Masterminds/semver, with the bundle's sentinel-error
// conventions.
package semver

import (
	"errors"
	"fmt"
	"sort"

	"github.com/Masterminds/semver/v3"
)

// Sentinel errors for programmatic error handling.
var (
	// ErrInvalidVersion indicates a string that is not a semantic version.
	ErrInvalidVersion = errors.New("invalid semantic version")

	// ErrInvalidConstraint indicates a constraint expression that could
	// not be parsed.
	ErrInvalidConstraint = errors.New("invalid version constraint")
)

// Version is a parsed semantic version.
type Version = semver.Version

// Parse parses a strict semantic version ("1.2.3", "2.0.0-rc.1+meta").
// Failures wrap ErrInvalidVersion.
func Parse(s string) (*Version, error) {
	v, err := semver.StrictNewVersion(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidVersion, s, err)
	}
	return v, nil
}

// MustParse parses a version and panics on failure. Intended for
// package-level constants and tests.
func MustParse(s string) *Version {
	v, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return v
}

// Compare returns -1, 0, or 1 when a is lower than, equal to, or
// higher than b, following semver 2.0 precedence (build metadata is
// ignored).
func Compare(a, b *Version) int {
	return a.Compare(b)
}

// Sort orders versions in place, lowest first.
func Sort(versions []*Version) {
	sort.Slice(versions, func(i, j int) bool {
		return versions[i].LessThan(versions[j])
	})
}

// Satisfies reports whether v matches the constraint expression
// (e.g. ">=1.2.0, <2.0.0" or "~1.2"). Constraint parse failures wrap
// ErrInvalidConstraint.
func Satisfies(v *Version, constraint string) (bool, error) {
	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return false, fmt.Errorf("%w: %q: %v", ErrInvalidConstraint, constraint, err)
	}
	return c.Check(v), nil
}
