package config

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

var (
	gradleAssignRegexp = regexp.MustCompile(`^([A-Za-z][A-Za-z0-9]*)\s*=\s*(.+)$`)
	gradleCallRegexp   = regexp.MustCompile(`^([A-Za-z][A-Za-z0-9]*)\s*\(\s*(.+?)\s*\)$`)
	gradleSpaceRegexp  = regexp.MustCompile(`^([A-Za-z][A-Za-z0-9]*)\s+(.+)$`)
)

// ImportGradle reads the android block settings of a build.gradle(.kts) file.
// Only literal values are taken; keys assigned from variables or version catalogs
// are left absent so the loader reports them as missing.
func ImportGradle(r io.Reader) (Document, error) {
	var doc Document
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := stripGradleComment(scanner.Text())
		if line == "" {
			continue
		}
		key, value, ok := splitGradleStatement(line)
		if !ok {
			continue
		}
		if err := applyGradleSetting(&doc, key, value); err != nil {
			return Document{}, fmt.Errorf("line %d: %w", lineNo, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return Document{}, fmt.Errorf("failed to read gradle file: %w", err)
	}
	return doc, nil
}

func stripGradleComment(line string) string {
	inString := false
	for i := 0; i+1 < len(line); i++ {
		switch {
		case inString && line[i] == '\\':
			i++
		case line[i] == '"':
			inString = !inString
		case !inString && line[i] == '/' && line[i+1] == '/':
			line = line[:i]
		}
	}
	return strings.TrimSpace(line)
}

func splitGradleStatement(line string) (string, string, bool) {
	for _, re := range []*regexp.Regexp{gradleAssignRegexp, gradleCallRegexp, gradleSpaceRegexp} {
		if m := re.FindStringSubmatch(line); m != nil {
			return m[1], strings.TrimSpace(m[2]), true
		}
	}
	return "", "", false
}

// gradleLiteral unquotes a string literal. ok is false for expressions.
func gradleLiteral(value string) (string, bool) {
	if strings.HasPrefix(value, `"`) {
		return unquoteKotlin(value)
	}
	if strings.HasPrefix(value, "'") && strings.HasSuffix(value, "'") && len(value) >= 2 {
		return value[1 : len(value)-1], true
	}
	if _, err := strconv.Atoi(value); err == nil {
		return value, true
	}
	switch value {
	case "true", "false":
		return value, true
	}
	if strings.HasPrefix(value, "JavaVersion.") {
		return value, true
	}
	return "", false
}

func applyGradleSetting(doc *Document, key, raw string) error {
	value, ok := gradleLiteral(raw)
	if !ok {
		return nil
	}

	setInt := func(dst *int) error {
		n, err := ParseAPILevel(value)
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		*dst = n
		return nil
	}

	switch key {
	case "applicationId":
		doc.Application.ApplicationID = value
	case "compileSdk", "compileSdkVersion":
		return setInt(&doc.SDK.CompileAPILevel)
	case "minSdk", "minSdkVersion":
		return setInt(&doc.SDK.MinAPILevel)
	case "targetSdk", "targetSdkVersion":
		return setInt(&doc.SDK.TargetAPILevel)
	case "versionCode":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("versionCode: invalid integer %q", value)
		}
		doc.Versioning.VersionCode = n
	case "versionName":
		doc.Versioning.VersionName = value
	case "ndkVersion":
		doc.Toolchain = &ToolchainSection{ToolchainVersion: value}
	case "sourceCompatibility":
		doc.Compatibility.SourceCompatibilityLevel = normalizedLevel(value)
	case "targetCompatibility":
		doc.Compatibility.TargetCompatibilityLevel = normalizedLevel(value)
	case "isCoreLibraryDesugaringEnabled", "coreLibraryDesugaringEnabled":
		doc.Compatibility.DesugaringEnabled = value == "true"
	case "coreLibraryDesugaring":
		doc.Dependencies = &DependenciesSection{DesugaringLibraryDependency: value}
	}
	return nil
}

func normalizedLevel(value string) string {
	if l, err := ParseLanguageLevel(value); err == nil {
		return string(l)
	}
	return value
}

// unquoteKotlin decodes a double-quoted Kotlin or Groovy string literal.
// Strings with templates ("$x", "${x}") are expressions, so ok is false.
func unquoteKotlin(value string) (string, bool) {
	if len(value) < 2 || value[0] != '"' || value[len(value)-1] != '"' {
		return "", false
	}
	body := []rune(value[1 : len(value)-1])

	var sb strings.Builder
	for i := 0; i < len(body); i++ {
		r := body[i]
		switch r {
		case '"':
			return "", false
		case '$':
			if i+1 < len(body) && (body[i+1] == '{' || body[i+1] == '_' || unicode.IsLetter(body[i+1])) {
				return "", false
			}
			sb.WriteRune(r)
		case '\\':
			i++
			if i >= len(body) {
				return "", false
			}
			switch body[i] {
			case 'n':
				sb.WriteRune('\n')
			case 'r':
				sb.WriteRune('\r')
			case 't':
				sb.WriteRune('\t')
			case 'b':
				sb.WriteRune('\b')
			case '"', '\'', '\\', '$':
				sb.WriteRune(body[i])
			case 'u':
				if i+4 >= len(body) {
					return "", false
				}
				n, err := strconv.ParseUint(string(body[i+1:i+5]), 16, 32)
				if err != nil {
					return "", false
				}
				sb.WriteRune(rune(n))
				i += 4
			default:
				return "", false
			}
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String(), true
}
