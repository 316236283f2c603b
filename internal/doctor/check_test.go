package doctor

import (
	"testing"

	"github.com/nvandessel/droidconf/internal/config"
)

func fazli() config.BuildSettings {
	return config.BuildSettings{
		ApplicationID:       "com.pezshkyar.fazli",
		CompileAPILevel:     33,
		MinAPILevel:         21,
		TargetAPILevel:      33,
		VersionCode:         1,
		VersionName:         "1.0",
		ToolchainVersion:    "27.0.12077973",
		SourceCompatibility: config.Java8,
		TargetCompatibility: config.Java8,
		DesugaringEnabled:   true,
		DesugaringLibrary:   "com.android.tools:desugar_jdk_libs:2.0.3",
	}
}

func findCheck(t *testing.T, r *CheckResult, name string) Check {
	t.Helper()
	for _, c := range r.Checks {
		if c.Name == name {
			return c
		}
	}
	t.Fatalf("no check named %q", name)
	return Check{}
}

func TestRunChecksHealthy(t *testing.T) {
	var calls int
	result := RunChecks(fazli(), CheckOptions{
		ProgressFunc: func(current, total int, msg string) {
			calls++
			if total != len(checks) {
				t.Errorf("progress total = %d, want %d", total, len(checks))
			}
		},
	})

	if calls != len(checks) {
		t.Errorf("progress called %d times, want %d", calls, len(checks))
	}
	if !result.IsHealthy() {
		t.Error("IsHealthy() = false, want true")
	}
	if result.HasWarnings() {
		t.Error("HasWarnings() = true, want false")
	}

	ok, warnings, errors, skipped := result.CountByStatus()
	if ok != 6 || warnings != 0 || errors != 0 || skipped != 0 {
		t.Errorf("CountByStatus() = %d/%d/%d/%d, want 6/0/0/0", ok, warnings, errors, skipped)
	}
}

func TestRunChecks(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.BuildSettings)
		check  string
		want   CheckStatus
	}{
		{"target above compile", func(s *config.BuildSettings) { s.TargetAPILevel = 34 }, "API Levels", StatusWarning},
		{"min above compile", func(s *config.BuildSettings) { s.MinAPILevel = 34; s.TargetAPILevel = 34; s.CompileAPILevel = 30 }, "API Levels", StatusWarning},
		{"single segment id", func(s *config.BuildSettings) { s.ApplicationID = "fazli" }, "Application ID", StatusWarning},
		{"marketing version name", func(s *config.BuildSettings) { s.VersionName = "Autumn" }, "Version Name", StatusWarning},
		{"pre-release version name", func(s *config.BuildSettings) { s.VersionName = "2.0.0-beta1" }, "Version Name", StatusOK},
		{"no toolchain", func(s *config.BuildSettings) { s.ToolchainVersion = "" }, "NDK Toolchain", StatusSkipped},
		{"short toolchain", func(s *config.BuildSettings) { s.ToolchainVersion = "r27" }, "NDK Toolchain", StatusWarning},
		{"target below source", func(s *config.BuildSettings) { s.SourceCompatibility = config.Java11 }, "Language Levels", StatusError},
		{"desugaring disabled", func(s *config.BuildSettings) { s.DesugaringEnabled = false; s.DesugaringLibrary = "" }, "Desugaring", StatusSkipped},
		{"library without desugaring", func(s *config.BuildSettings) { s.DesugaringEnabled = false }, "Desugaring", StatusWarning},
		{"bad coordinate", func(s *config.BuildSettings) { s.DesugaringLibrary = "desugar_jdk_libs" }, "Desugaring", StatusError},
		{"unknown artifact", func(s *config.BuildSettings) { s.DesugaringLibrary = "org.example:backport:1.0.0" }, "Desugaring", StatusWarning},
		{"old desugar line", func(s *config.BuildSettings) { s.DesugaringLibrary = "com.android.tools:desugar_jdk_libs:1.1.5" }, "Desugaring", StatusWarning},
		{"java.time native", func(s *config.BuildSettings) { s.MinAPILevel = 26 }, "Desugaring", StatusWarning},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := fazli()
			tt.mutate(&s)
			c := findCheck(t, RunChecks(s, CheckOptions{}), tt.check)
			if c.Status != tt.want {
				t.Errorf("%s status = %v, want %v (%s)", tt.check, c.Status, tt.want, c.Message)
			}
			if (tt.want == StatusWarning || tt.want == StatusError) && c.Fix == "" {
				t.Errorf("%s has no suggested fix", tt.check)
			}
		})
	}
}

func TestLoadedDocumentWithLooseLevelsWarns(t *testing.T) {
	doc := fazli().Document()
	doc.SDK.TargetAPILevel = 34

	s, err := doc.Settings()
	if err != nil {
		t.Fatalf("Settings() failed: %v", err)
	}

	result := RunChecks(s, CheckOptions{})
	if !result.IsHealthy() || !result.HasWarnings() {
		t.Errorf("IsHealthy/HasWarnings = %v/%v, want true/true", result.IsHealthy(), result.HasWarnings())
	}
	if c := findCheck(t, result, "API Levels"); c.Status != StatusWarning {
		t.Errorf("API Levels status = %v, want warning", c.Status)
	}
}
