// Package validation provides reusable validators for Android build identifiers.
// They check the conventional shape of values the settings loader accepts as free-form
// strings, so callers can report advisory problems without rejecting a document.
package validation

import (
	"fmt"
	"regexp"
	"strings"
)

// maxApplicationIDLength is the longest application id the platform tooling accepts.
const maxApplicationIDLength = 255

// applicationIDSegmentRegexp matches one dot-separated segment of an application id:
// a letter followed by letters, digits or underscores.
var applicationIDSegmentRegexp = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9_]*$`)

// coordinatePartRegexp matches the group and artifact parts of a Maven coordinate.
var coordinatePartRegexp = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9._\-]*$`)

// coordinateVersionRegexp matches a Maven version: starts with a digit, no whitespace.
var coordinateVersionRegexp = regexp.MustCompile(`^[0-9][a-zA-Z0-9.+_\-]*$`)

// ndkRevisionRegexp matches NDK revisions such as 27.0.12077973 or 26.1.10909125-beta1.
var ndkRevisionRegexp = regexp.MustCompile(`^[0-9]+\.[0-9]+\.[0-9]+(-(beta|rc)[0-9]+)?$`)

// javaKeywords cannot appear as application id segments.
var javaKeywords = map[string]bool{
	"abstract": true, "assert": true, "boolean": true, "break": true, "byte": true,
	"case": true, "catch": true, "char": true, "class": true, "const": true,
	"continue": true, "default": true, "do": true, "double": true, "else": true,
	"enum": true, "extends": true, "final": true, "finally": true, "float": true,
	"for": true, "goto": true, "if": true, "implements": true, "import": true,
	"instanceof": true, "int": true, "interface": true, "long": true, "native": true,
	"new": true, "package": true, "private": true, "protected": true, "public": true,
	"return": true, "short": true, "static": true, "strictfp": true, "super": true,
	"switch": true, "synchronized": true, "this": true, "throw": true, "throws": true,
	"transient": true, "try": true, "void": true, "volatile": true, "while": true,
	"true": true, "false": true, "null": true,
}

// Coordinate is a parsed group:artifact:version dependency notation.
type Coordinate struct {
	Group    string
	Artifact string
	Version  string
}

// String returns the coordinate in group:artifact:version form.
func (c Coordinate) String() string {
	return c.Group + ":" + c.Artifact + ":" + c.Version
}

// Module returns the coordinate without its version.
func (c Coordinate) Module() string {
	return c.Group + ":" + c.Artifact
}

// ValidateApplicationID checks the reverse-domain form of an application id.
// It requires at least two segments, each starting with a letter and containing
// only letters, digits and underscores, none of them a Java keyword.
func ValidateApplicationID(id string) error {
	if id == "" {
		return fmt.Errorf("application id must not be empty")
	}

	if len(id) > maxApplicationIDLength {
		return fmt.Errorf("application id exceeds maximum length of %d characters", maxApplicationIDLength)
	}

	segments := strings.Split(id, ".")
	if len(segments) < 2 {
		return fmt.Errorf("application id must have at least two segments: %q", id)
	}

	for _, seg := range segments {
		if !applicationIDSegmentRegexp.MatchString(seg) {
			return fmt.Errorf("application id segment %q must start with a letter and contain only letters, digits and underscores", seg)
		}
		if javaKeywords[seg] {
			return fmt.Errorf("application id segment %q is a reserved Java keyword", seg)
		}
	}

	return nil
}

// ParseCoordinate splits a group:artifact:version dependency notation.
func ParseCoordinate(s string) (Coordinate, error) {
	if s == "" {
		return Coordinate{}, fmt.Errorf("coordinate must not be empty")
	}

	if strings.ContainsAny(s, " \t\n\r") {
		return Coordinate{}, fmt.Errorf("coordinate must not contain whitespace: %q", s)
	}

	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return Coordinate{}, fmt.Errorf("coordinate must have the form group:artifact:version: %q", s)
	}

	c := Coordinate{Group: parts[0], Artifact: parts[1], Version: parts[2]}
	if !coordinatePartRegexp.MatchString(c.Group) {
		return Coordinate{}, fmt.Errorf("coordinate group contains invalid characters: %q", c.Group)
	}
	if !coordinatePartRegexp.MatchString(c.Artifact) {
		return Coordinate{}, fmt.Errorf("coordinate artifact contains invalid characters: %q", c.Artifact)
	}
	if !coordinateVersionRegexp.MatchString(c.Version) {
		return Coordinate{}, fmt.Errorf("coordinate version must start with a digit: %q", c.Version)
	}

	return c, nil
}

// ValidateNDKRevision checks that a toolchain version looks like an NDK revision
// (major.minor.build with an optional -betaN or -rcN suffix).
func ValidateNDKRevision(rev string) error {
	if rev == "" {
		return fmt.Errorf("NDK revision must not be empty")
	}
	if !ndkRevisionRegexp.MatchString(rev) {
		return fmt.Errorf("NDK revision must look like major.minor.build: %q", rev)
	}
	return nil
}
