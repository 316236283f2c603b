package config

import (
	"fmt"
	"io"
	"strings"
)

// ExportGradle writes settings as the android and dependencies blocks of a
// build.gradle.kts file. ImportGradle reads the output back to the same settings.
func ExportGradle(w io.Writer, s BuildSettings) error {
	var sb strings.Builder

	sb.WriteString("android {\n")
	fmt.Fprintf(&sb, "    compileSdk = %d\n\n", s.CompileAPILevel)
	sb.WriteString("    defaultConfig {\n")
	fmt.Fprintf(&sb, "        applicationId = %s\n", kotlinString(s.ApplicationID))
	fmt.Fprintf(&sb, "        minSdk = %d\n", s.MinAPILevel)
	fmt.Fprintf(&sb, "        targetSdk = %d\n", s.TargetAPILevel)
	fmt.Fprintf(&sb, "        versionCode = %d\n", s.VersionCode)
	fmt.Fprintf(&sb, "        versionName = %s\n", kotlinString(s.VersionName))
	sb.WriteString("    }\n")
	if s.ToolchainVersion != "" {
		fmt.Fprintf(&sb, "\n    ndkVersion = %s\n", kotlinString(s.ToolchainVersion))
	}
	sb.WriteString("\n    compileOptions {\n")
	fmt.Fprintf(&sb, "        sourceCompatibility = JavaVersion.%s\n", s.SourceCompatibility.GradleName())
	fmt.Fprintf(&sb, "        targetCompatibility = JavaVersion.%s\n", s.TargetCompatibility.GradleName())
	if s.DesugaringEnabled {
		sb.WriteString("        isCoreLibraryDesugaringEnabled = true\n")
	}
	sb.WriteString("    }\n")
	sb.WriteString("}\n")

	if s.DesugaringLibrary != "" {
		sb.WriteString("\ndependencies {\n")
		fmt.Fprintf(&sb, "    coreLibraryDesugaring(%s)\n", kotlinString(s.DesugaringLibrary))
		sb.WriteString("}\n")
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

// kotlinString quotes s as a Kotlin string literal. "$" is escaped so the value
// is never read as a string template.
func kotlinString(s string) string {
	var sb strings.Builder
	sb.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"', '\\', '$':
			sb.WriteByte('\\')
			sb.WriteRune(r)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		case '\b':
			sb.WriteString(`\b`)
		default:
			if r < 0x20 || r == 0x7f {
				fmt.Fprintf(&sb, `\u%04x`, r)
				continue
			}
			sb.WriteRune(r)
		}
	}
	sb.WriteByte('"')
	return sb.String()
}
