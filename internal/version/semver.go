package version

import (
	"fmt"
	"strconv"
	"strings"
)

// SemVer is a parsed dotted version with an optional pre-release label.
// Components counts how many numeric parts were written ("1.0" has 2).
type SemVer struct {
	Major      int
	Minor      int
	Patch      int
	Pre        string
	Components int
}

// String returns the version as "major.minor.patch[-pre]".
func (v SemVer) String() string {
	s := fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
	if v.Pre != "" {
		s += "-" + v.Pre
	}
	return s
}

// ParseSemVer parses versions like "1.2.3", "v1.2", "2.1.0-alpha01" or "1.0+build.7".
// Missing minor and patch parts default to zero; build metadata is dropped.
func ParseSemVer(s string) (SemVer, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "v")

	if s == "" {
		return SemVer{}, fmt.Errorf("empty version string")
	}

	if idx := strings.Index(s, "+"); idx != -1 {
		s = s[:idx]
	}

	var v SemVer
	if idx := strings.Index(s, "-"); idx != -1 {
		v.Pre = s[idx+1:]
		s = s[:idx]
		if v.Pre == "" {
			return SemVer{}, fmt.Errorf("empty pre-release label")
		}
	}

	parts := strings.Split(s, ".")
	if len(parts) > 3 {
		return SemVer{}, fmt.Errorf("too many version components in %q", s)
	}
	v.Components = len(parts)

	dst := []*int{&v.Major, &v.Minor, &v.Patch}
	names := []string{"major", "minor", "patch"}
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return SemVer{}, fmt.Errorf("invalid %s version %q", names[i], p)
		}
		*dst[i] = n
	}

	return v, nil
}

// Compare compares two SemVer values.
// Returns -1 if a < b, 0 if a == b, 1 if a > b. A pre-release sorts before its release.
func Compare(a, b SemVer) int {
	for _, pair := range [][2]int{{a.Major, b.Major}, {a.Minor, b.Minor}, {a.Patch, b.Patch}} {
		if pair[0] != pair[1] {
			if pair[0] < pair[1] {
				return -1
			}
			return 1
		}
	}
	switch {
	case a.Pre == b.Pre:
		return 0
	case a.Pre == "":
		return 1
	case b.Pre == "":
		return -1
	case a.Pre < b.Pre:
		return -1
	}
	return 1
}

// IsOlderThan returns true if v is strictly older than b.
func (v SemVer) IsOlderThan(b SemVer) bool {
	return Compare(v, b) < 0
}

// IsPreRelease reports whether the version carries a pre-release label.
func (v SemVer) IsPreRelease() bool {
	return v.Pre != ""
}
