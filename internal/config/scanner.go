package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

var ErrGradleNotFound = errors.New("gradle build file not found")

// gradleBuildFiles lists candidate build scripts in order of preference.
var gradleBuildFiles = []string{
	"build.gradle.kts",
	"build.gradle",
}

// gradleModuleDirs are the directories searched below root; "" is root itself.
var gradleModuleDirs = []string{
	"app",
	"",
	"android",
	filepath.Join("android", "app"),
}

// FindGradleBuildFile looks for an application module build script under root.
// Scripts declaring an applicationId win over ones that do not.
func FindGradleBuildFile(root string) (string, error) {
	var fallback string
	for _, dir := range gradleModuleDirs {
		for _, name := range gradleBuildFiles {
			path := filepath.Join(root, dir, name)
			data, err := os.ReadFile(path)
			if err != nil {
				continue
			}
			if strings.Contains(string(data), "applicationId") {
				return path, nil
			}
			if fallback == "" {
				fallback = path
			}
		}
	}
	if fallback != "" {
		return fallback, nil
	}
	return "", fmt.Errorf("%w in %s", ErrGradleNotFound, root)
}

// packageSegment turns a directory name into a valid application id segment.
func packageSegment(s string) string {
	s = strings.ToLower(s)
	reg := regexp.MustCompile("[^a-z0-9_]+")
	s = reg.ReplaceAllString(s, "")
	s = strings.TrimLeft(s, "0123456789_")
	if s == "" {
		return "app"
	}
	return s
}
