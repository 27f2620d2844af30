// Package version parses release tags of the form MAJOR.MINOR.PATCH[-BUILD]
// and selects the tag a release should be compared against.
package version

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/Masterminds/semver/v3"
)

var (
	// ErrComparisonUnavailable is returned when no known tag satisfies the
	// range predicate for the requested level.
	ErrComparisonUnavailable = errors.New("comparison tag unavailable")

	// ErrInvalidVersion is returned for strings that are not release tags.
	ErrInvalidVersion = errors.New("invalid version")
)

// Pattern matches a release tag anywhere in a larger text.
const Pattern = `([0-9]+)\.([0-9]+)\.([0-9]+)(?:-([0-9]+))?`

var tagRegex = regexp.MustCompile(`^` + Pattern + `$`)

// Level is the granularity at which a previous tag is selected.
type Level int

const (
	Major Level = iota
	Minor
	Patch
	Build
)

func (l Level) String() string {
	switch l {
	case Major:
		return "major"
	case Minor:
		return "minor"
	case Patch:
		return "patch"
	case Build:
		return "build"
	default:
		return fmt.Sprintf("Level(%d)", int(l))
	}
}

// ParseLevel accepts major, minor, patch or build in any case.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "major":
		return Major, nil
	case "minor":
		return Minor, nil
	case "patch":
		return Patch, nil
	case "build":
		return Build, nil
	default:
		return 0, fmt.Errorf("invalid level %q (must be major, minor, patch or build)", s)
	}
}

// Version is a parsed release tag. The optional build suffix is kept as a
// fourth ordinal rather than a semver pre-release.
type Version struct {
	raw   string
	base  *semver.Version
	build int
}

// Parse parses MAJOR.MINOR.PATCH[-BUILD]. A missing build counts as 0.
func Parse(s string) (Version, error) {
	m := tagRegex.FindStringSubmatch(s)
	if m == nil {
		return Version{}, fmt.Errorf("%w: %q", ErrInvalidVersion, s)
	}
	base, err := semver.NewVersion(fmt.Sprintf("%s.%s.%s", m[1], m[2], m[3]))
	if err != nil {
		return Version{}, fmt.Errorf("%w: %q: %v", ErrInvalidVersion, s, err)
	}
	build := 0
	if m[4] != "" {
		build, err = strconv.Atoi(m[4])
		if err != nil {
			return Version{}, fmt.Errorf("%w: %q: %v", ErrInvalidVersion, s, err)
		}
	}
	return Version{raw: s, base: base, build: build}, nil
}

func (v Version) String() string { return v.raw }

// Base returns MAJOR.MINOR.PATCH without the build suffix.
func (v Version) Base() *semver.Version { return v.base }

func (v Version) BuildNumber() int { return v.build }

// Compare orders by MAJOR.MINOR.PATCH and then by build.
func (v Version) Compare(o Version) int {
	if c := v.base.Compare(o.base); c != 0 {
		return c
	}
	switch {
	case v.build < o.build:
		return -1
	case v.build > o.build:
		return 1
	}
	return 0
}

// SelectComparisonTag returns the first tag in knownTags, in listing order,
// that satisfies the range predicate for level relative to anchor. The
// first match wins even when a closer match appears later in the list.
func SelectComparisonTag(knownTags []string, anchor string, level Level) (string, error) {
	a, err := Parse(anchor)
	if err != nil {
		return "", err
	}
	match, err := predicate(a, level)
	if err != nil {
		return "", err
	}
	for _, tag := range knownTags {
		v, err := Parse(tag)
		if err != nil {
			continue
		}
		if match(v) {
			return tag, nil
		}
	}
	return "", fmt.Errorf("%w: no %s-level tag before %s among %d tags", ErrComparisonUnavailable, level, anchor, len(knownTags))
}

func predicate(a Version, level Level) (func(Version) bool, error) {
	b := a.base
	var expr string
	switch level {
	case Major:
		expr = fmt.Sprintf("<%d", b.Major())
	case Minor:
		expr = fmt.Sprintf("<%d.%d.x", b.Major(), b.Minor())
	case Patch:
		expr = fmt.Sprintf("<%d.%d.%d", b.Major(), b.Minor(), b.Patch())
	case Build:
		expr = fmt.Sprintf("<=%d.%d.%d", b.Major(), b.Minor(), b.Patch())
	default:
		return nil, fmt.Errorf("unknown level %v", level)
	}
	c, err := semver.NewConstraint(expr)
	if err != nil {
		return nil, fmt.Errorf("failed to build constraint %q: %w", expr, err)
	}

	if level != Build {
		return func(v Version) bool { return c.Check(v.base) }, nil
	}
	// Same release: only an earlier build qualifies.
	return func(v Version) bool {
		if v.raw == a.raw || !c.Check(v.base) {
			return false
		}
		return v.base.LessThan(b) || v.build < a.build
	}, nil
}

// CompareURL builds the GitHub compare link between two tags.
func CompareURL(host, owner, repo, previous, tag string) string {
	if host == "" {
		host = "github.com"
	}
	return fmt.Sprintf("https://%s/%s/%s/compare/%s...%s", host, owner, repo, previous, tag)
}
