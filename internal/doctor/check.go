package doctor

import (
	"fmt"

	"github.com/nvandessel/droidconf/internal/config"
	"github.com/nvandessel/droidconf/internal/validation"
	"github.com/nvandessel/droidconf/internal/version"
)

// CheckStatus represents the status of a settings check
type CheckStatus string

const (
	StatusOK      CheckStatus = "ok"
	StatusWarning CheckStatus = "warning"
	StatusError   CheckStatus = "error"
	StatusSkipped CheckStatus = "skipped"
)

// nativeJavaTimeAPILevel is the first API level shipping java.time without desugaring.
const nativeJavaTimeAPILevel = 26

// desugarGroup and desugarArtifacts name the published core library desugaring artifacts.
const desugarGroup = "com.android.tools"

var desugarArtifacts = map[string]bool{
	"desugar_jdk_libs":         true,
	"desugar_jdk_libs_nio":     true,
	"desugar_jdk_libs_minimal": true,
}

// minDesugarVersion is the oldest desugar_jdk_libs line still receiving fixes.
var minDesugarVersion = version.SemVer{Major: 2, Components: 3}

// Check represents a single check result
type Check struct {
	Name        string
	Description string
	Status      CheckStatus
	Message     string
	Fix         string // Suggested change to the settings document
}

// CheckResult contains all check results for one settings document
type CheckResult struct {
	Settings config.BuildSettings
	Checks   []Check
}

// CheckOptions configures the check run
type CheckOptions struct {
	ProgressFunc func(current, total int, msg string)
}

type checkFunc func(config.BuildSettings) Check

var checks = []struct {
	progress string
	run      checkFunc
}{
	{"Checking API levels...", checkAPILevels},
	{"Checking application id...", checkApplicationID},
	{"Checking version name...", checkVersionName},
	{"Checking NDK toolchain...", checkToolchain},
	{"Checking language levels...", checkLanguageLevels},
	{"Checking desugaring...", checkDesugaring},
}

// RunChecks performs all advisory checks over loaded settings.
// Checks never fail the load; they flag conventions the loader does not enforce.
func RunChecks(s config.BuildSettings, opts CheckOptions) *CheckResult {
	result := &CheckResult{Settings: s}
	for i, c := range checks {
		progress(opts, i+1, len(checks), c.progress)
		result.Checks = append(result.Checks, c.run(s))
	}
	return result
}

func checkAPILevels(s config.BuildSettings) Check {
	check := Check{
		Name:        "API Levels",
		Description: "minApiLevel <= targetApiLevel <= compileApiLevel",
	}

	switch {
	case s.TargetAPILevel > s.CompileAPILevel:
		check.Status = StatusWarning
		check.Message = fmt.Sprintf("targetApiLevel %d is above compileApiLevel %d", s.TargetAPILevel, s.CompileAPILevel)
		check.Fix = fmt.Sprintf("Set sdk.compileApiLevel to at least %d", s.TargetAPILevel)
	case s.MinAPILevel > s.CompileAPILevel:
		check.Status = StatusWarning
		check.Message = fmt.Sprintf("minApiLevel %d is above compileApiLevel %d", s.MinAPILevel, s.CompileAPILevel)
		check.Fix = fmt.Sprintf("Set sdk.compileApiLevel to at least %d", s.MinAPILevel)
	default:
		check.Status = StatusOK
		check.Message = fmt.Sprintf("min %d, target %d, compile %d", s.MinAPILevel, s.TargetAPILevel, s.CompileAPILevel)
	}
	return check
}

func checkApplicationID(s config.BuildSettings) Check {
	check := Check{
		Name:        "Application ID",
		Description: "Reverse-domain application identifier",
	}
	if err := validation.ValidateApplicationID(s.ApplicationID); err != nil {
		check.Status = StatusWarning
		check.Message = err.Error()
		check.Fix = "Use a reverse-domain id such as com.example.app"
		return check
	}
	check.Status = StatusOK
	check.Message = s.ApplicationID
	return check
}

func checkVersionName(s config.BuildSettings) Check {
	check := Check{
		Name:        "Version Name",
		Description: "Display version follows major.minor[.patch]",
	}
	v, err := version.ParseSemVer(s.VersionName)
	if err != nil {
		check.Status = StatusWarning
		check.Message = fmt.Sprintf("%q is not a dotted version: %v", s.VersionName, err)
		check.Fix = "Use a version name like 1.0 or 1.2.3"
		return check
	}
	check.Status = StatusOK
	check.Message = fmt.Sprintf("%s (versionCode %d)", s.VersionName, s.VersionCode)
	if v.IsPreRelease() {
		check.Message += ", pre-release"
	}
	return check
}

func checkToolchain(s config.BuildSettings) Check {
	check := Check{
		Name:        "NDK Toolchain",
		Description: "Native toolchain revision",
	}
	if s.ToolchainVersion == "" {
		check.Status = StatusSkipped
		check.Message = "No toolchain version declared"
		return check
	}
	if err := validation.ValidateNDKRevision(s.ToolchainVersion); err != nil {
		check.Status = StatusWarning
		check.Message = err.Error()
		check.Fix = "Use the full revision from source.properties, e.g. 27.0.12077973"
		return check
	}
	check.Status = StatusOK
	check.Message = s.ToolchainVersion
	return check
}

func checkLanguageLevels(s config.BuildSettings) Check {
	check := Check{
		Name:        "Language Levels",
		Description: "Target compatibility is not below source compatibility",
	}
	if s.TargetCompatibility.Rank() < s.SourceCompatibility.Rank() {
		check.Status = StatusError
		check.Message = fmt.Sprintf("target %s is older than source %s", s.TargetCompatibility, s.SourceCompatibility)
		check.Fix = fmt.Sprintf("Set compatibility.targetCompatibilityLevel to %s", s.SourceCompatibility)
		return check
	}
	check.Status = StatusOK
	check.Message = fmt.Sprintf("source %s, target %s", s.SourceCompatibility, s.TargetCompatibility)
	return check
}

func checkDesugaring(s config.BuildSettings) Check {
	check := Check{
		Name:        "Desugaring",
		Description: "Core library desugaring dependency",
	}

	if !s.DesugaringEnabled {
		if s.DesugaringLibrary != "" {
			check.Status = StatusWarning
			check.Message = fmt.Sprintf("%s is declared but desugaring is disabled", s.DesugaringLibrary)
			check.Fix = "Enable compatibility.desugaringEnabled or remove the dependency"
			return check
		}
		check.Status = StatusSkipped
		check.Message = "Desugaring disabled"
		return check
	}

	coord, err := validation.ParseCoordinate(s.DesugaringLibrary)
	if err != nil {
		check.Status = StatusError
		check.Message = err.Error()
		check.Fix = "Use group:artifact:version, e.g. com.android.tools:desugar_jdk_libs:2.0.3"
		return check
	}

	if coord.Group != desugarGroup || !desugarArtifacts[coord.Artifact] {
		check.Status = StatusWarning
		check.Message = fmt.Sprintf("%s is not a known desugaring library", coord.Module())
		check.Fix = "Use com.android.tools:desugar_jdk_libs"
		return check
	}

	if v, err := version.ParseSemVer(coord.Version); err == nil && v.IsOlderThan(minDesugarVersion) {
		check.Status = StatusWarning
		check.Message = fmt.Sprintf("%s %s is older than %s", coord.Artifact, coord.Version, minDesugarVersion)
		check.Fix = fmt.Sprintf("Upgrade to %s:%s", coord.Module(), minDesugarVersion)
		return check
	}

	if s.MinAPILevel >= nativeJavaTimeAPILevel {
		check.Status = StatusWarning
		check.Message = fmt.Sprintf("minApiLevel %d already ships java.time; desugaring may be unnecessary", s.MinAPILevel)
		check.Fix = "Disable compatibility.desugaringEnabled unless other backported APIs are used"
		return check
	}

	check.Status = StatusOK
	check.Message = coord.String()
	return check
}

// IsHealthy returns true if all checks passed without errors
func (r *CheckResult) IsHealthy() bool {
	for _, check := range r.Checks {
		if check.Status == StatusError {
			return false
		}
	}
	return true
}

// HasWarnings returns true if any checks have warnings
func (r *CheckResult) HasWarnings() bool {
	for _, check := range r.Checks {
		if check.Status == StatusWarning {
			return true
		}
	}
	return false
}

// CountByStatus returns the count of checks by status
func (r *CheckResult) CountByStatus() (ok, warnings, errors, skipped int) {
	for _, check := range r.Checks {
		switch check.Status {
		case StatusOK:
			ok++
		case StatusWarning:
			warnings++
		case StatusError:
			errors++
		case StatusSkipped:
			skipped++
		}
	}
	return
}

// progress sends a progress message if the callback is set
func progress(opts CheckOptions, current, total int, msg string) {
	if opts.ProgressFunc != nil {
		opts.ProgressFunc(current, total, msg)
	}
}
