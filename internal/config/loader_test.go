package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

var fazliSettings = BuildSettings{
	ApplicationID:       "com.pezshkyar.fazli",
	CompileAPILevel:     33,
	MinAPILevel:         21,
	TargetAPILevel:      33,
	VersionCode:         1,
	VersionName:         "1.0",
	ToolchainVersion:    "27.0.12077973",
	SourceCompatibility: Java8,
	TargetCompatibility: Java8,
	DesugaringEnabled:   true,
	DesugaringLibrary:   "com.android.tools:desugar_jdk_libs:2.0.3",
}

const minimalDocument = `application:
  applicationId: com.example.app
sdk:
  compileApiLevel: 34
  minApiLevel: 24
  targetApiLevel: 34
versioning:
  versionCode: 7
  versionName: "2.1.0"
compatibility:
  sourceCompatibilityLevel: "17"
  targetCompatibilityLevel: "17"
`

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ConfigFileName)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	s, err := Load("testdata/valid.yaml")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if s != fazliSettings {
		t.Errorf("Load() = %+v, want %+v", s, fazliSettings)
	}
}

func TestLoadMissingDesugaringDependency(t *testing.T) {
	data, err := os.ReadFile("testdata/valid.yaml")
	if err != nil {
		t.Fatal(err)
	}
	content := strings.Split(string(data), "dependencies:")[0]

	_, err = Parse([]byte(content))
	if !errors.Is(err, ErrMissingDependency) {
		t.Fatalf("Parse() error = %v, want ErrMissingDependency", err)
	}
	if errors.Is(err, ErrMalformedDocument) || errors.Is(err, ErrInvalidRange) {
		t.Errorf("Parse() error = %v, want only ErrMissingDependency", err)
	}
}

func TestLoadNonExistent(t *testing.T) {
	_, err := Load("/path/that/does/not/exist/.droidconf.yaml")
	if err == nil {
		t.Error("Load() should fail for non-existent file")
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	path := writeTemp(t, "invalid: yaml: content:\n  - this is\n wrong")

	_, err := Load(path)
	if !errors.Is(err, ErrMalformedDocument) {
		t.Errorf("Load() error = %v, want ErrMalformedDocument", err)
	}
}

func TestParseRoundTripsFields(t *testing.T) {
	s, err := Parse([]byte(minimalDocument))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}

	want := BuildSettings{
		ApplicationID:       "com.example.app",
		CompileAPILevel:     34,
		MinAPILevel:         24,
		TargetAPILevel:      34,
		VersionCode:         7,
		VersionName:         "2.1.0",
		SourceCompatibility: Java17,
		TargetCompatibility: Java17,
	}
	if s != want {
		t.Errorf("Parse() = %+v, want %+v", s, want)
	}
}

func TestParseIsIdempotent(t *testing.T) {
	data, err := os.ReadFile("testdata/valid.yaml")
	if err != nil {
		t.Fatal(err)
	}

	first, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	second, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if first != second {
		t.Errorf("Parse() not idempotent: %+v != %+v", first, second)
	}
}

func TestParseErrorKinds(t *testing.T) {
	tests := []struct {
		name    string
		replace [2]string
		want    error
	}{
		{"zero compile level", [2]string{"compileApiLevel: 34", "compileApiLevel: 0"}, ErrInvalidRange},
		{"negative min level", [2]string{"minApiLevel: 24", "minApiLevel: -1"}, ErrInvalidRange},
		{"zero version code", [2]string{"versionCode: 7", "versionCode: 0"}, ErrInvalidRange},
		{"version code above store limit", [2]string{"versionCode: 7", "versionCode: 2100000001"}, ErrInvalidRange},
		{"min above target", [2]string{"minApiLevel: 24", "minApiLevel: 35"}, ErrInvalidRange},
		{"non numeric level", [2]string{"compileApiLevel: 34", "compileApiLevel: latest"}, ErrMalformedDocument},
		{"fractional level", [2]string{"compileApiLevel: 34", "compileApiLevel: 34.5"}, ErrMalformedDocument},
		{"boolean version code", [2]string{"versionCode: 7", "versionCode: true"}, ErrMalformedDocument},
		{"missing version name", [2]string{`  versionName: "2.1.0"`, ""}, ErrMalformedDocument},
		{"empty application id", [2]string{"applicationId: com.example.app", `applicationId: ""`}, ErrMalformedDocument},
		{"unsupported language level", [2]string{`sourceCompatibilityLevel: "17"`, `sourceCompatibilityLevel: "1.5"`}, ErrMalformedDocument},
		{"missing sdk section", [2]string{"sdk:", "sdkz:"}, ErrMalformedDocument},
		{"quoted desugaring flag", [2]string{`targetCompatibilityLevel: "17"`, "targetCompatibilityLevel: \"17\"\n  desugaringEnabled: \"true\""}, ErrMalformedDocument},
		{"desugaring without library", [2]string{`targetCompatibilityLevel: "17"`, "targetCompatibilityLevel: \"17\"\n  desugaringEnabled: true"}, ErrMissingDependency},
		{"desugaring with empty library", [2]string{`targetCompatibilityLevel: "17"`, "targetCompatibilityLevel: \"17\"\n  desugaringEnabled: true\ndependencies:\n  desugaringLibraryDependency: \"\""}, ErrMissingDependency},
		{"desugaring with blank library", [2]string{`targetCompatibilityLevel: "17"`, "targetCompatibilityLevel: \"17\"\n  desugaringEnabled: true\ndependencies:\n  desugaringLibraryDependency: \"   \""}, ErrMissingDependency},
		{"exponent level beyond int range", [2]string{"compileApiLevel: 34", "compileApiLevel: 1e19"}, ErrMalformedDocument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := strings.Replace(minimalDocument, tt.replace[0], tt.replace[1], 1)
			if doc == minimalDocument {
				t.Fatalf("replacement %q did not apply", tt.replace[0])
			}
			_, err := Parse([]byte(doc))
			if !errors.Is(err, tt.want) {
				t.Errorf("Parse() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestParseNotAMapping(t *testing.T) {
	laughs := "a: &a [x, x, x, x, x, x, x, x, x, x]\n"
	for _, name := range []string{"b", "c", "d", "e", "f", "g", "h"} {
		prev := string(rune(name[0] - 1))
		laughs += name + ": &" + name + " [*" + prev + ", *" + prev + ", *" + prev + ", *" + prev + ", *" + prev +
			", *" + prev + ", *" + prev + ", *" + prev + ", *" + prev + ", *" + prev + "]\n"
	}

	for _, doc := range []string{
		"",
		"- a\n- b\n",
		"just a string",
		"application: &a\n  applicationId: com.example.app\n  self: *a\n",
		laughs,
	} {
		if _, err := Parse([]byte(doc)); !errors.Is(err, ErrMalformedDocument) {
			t.Errorf("Parse(%q) error = %v, want ErrMalformedDocument", doc, err)
		}
	}
}

func TestParseOutOfRangeLevelMessage(t *testing.T) {
	doc := strings.Replace(minimalDocument, "compileApiLevel: 34", "compileApiLevel: 1e19", 1)
	_, err := Parse([]byte(doc))
	if !errors.Is(err, ErrMalformedDocument) {
		t.Fatalf("Parse() error = %v, want ErrMalformedDocument", err)
	}
	if !strings.Contains(err.Error(), "sdk.compileApiLevel: 1e19 is out of range") {
		t.Errorf("Parse() error = %q, want the source value in the message", err)
	}
}

func TestParseMergeKeys(t *testing.T) {
	doc := `defaults: &levels
  compileApiLevel: 34
  minApiLevel: 24
  targetApiLevel: 34
application:
  applicationId: com.example.app
sdk:
  <<: *levels
  minApiLevel: 26
versioning:
  versionCode: 7
  versionName: "2.1.0"
compatibility:
  sourceCompatibilityLevel: "17"
  targetCompatibilityLevel: "17"
`
	s, err := Parse([]byte(doc))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if s.CompileAPILevel != 34 || s.MinAPILevel != 26 || s.TargetAPILevel != 34 {
		t.Errorf("API levels = %d/%d/%d, want 34/26/34", s.CompileAPILevel, s.MinAPILevel, s.TargetAPILevel)
	}
}

func TestParseAcceptedSpellings(t *testing.T) {
	doc := `application:
  applicationId: com.example.app
sdk:
  compileApiLevel: Tiramisu
  minApiLevel: L
  targetApiLevel: "33"
versioning:
  versionCode: "12"
  versionName: 1.0
toolchain:
  toolchainVersion: 25.2
compatibility:
  sourceCompatibilityLevel: 1.8
  targetCompatibilityLevel: VERSION_11
`
	s, err := Parse([]byte(doc))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}

	if s.CompileAPILevel != 33 || s.MinAPILevel != 21 || s.TargetAPILevel != 33 {
		t.Errorf("API levels = %d/%d/%d, want 33/21/33", s.CompileAPILevel, s.MinAPILevel, s.TargetAPILevel)
	}
	if s.VersionCode != 12 {
		t.Errorf("VersionCode = %d, want 12", s.VersionCode)
	}
	if s.VersionName != "1.0" {
		t.Errorf("VersionName = %q, want 1.0", s.VersionName)
	}
	if s.ToolchainVersion != "25.2" {
		t.Errorf("ToolchainVersion = %q, want 25.2", s.ToolchainVersion)
	}
	if s.SourceCompatibility != Java8 || s.TargetCompatibility != Java11 {
		t.Errorf("compatibility = %s/%s, want 1.8/11", s.SourceCompatibility, s.TargetCompatibility)
	}
}

func TestParseJSON(t *testing.T) {
	doc := `{
  "application": {"applicationId": "com.example.app"},
  "sdk": {"compileApiLevel": 34, "minApiLevel": 26, "targetApiLevel": 34},
  "versioning": {"versionCode": 3, "versionName": "1.2"},
  "compatibility": {"sourceCompatibilityLevel": "11", "targetCompatibilityLevel": "11", "desugaringEnabled": false}
}`
	s, err := Parse([]byte(doc))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if s.MinAPILevel != 26 || s.VersionName != "1.2" {
		t.Errorf("Parse() = %+v", s)
	}
}

func TestDecode(t *testing.T) {
	doc := map[string]interface{}{
		"application": map[string]string{"applicationId": "com.pezshkyar.fazli"},
		"sdk": map[string]int{
			"compileApiLevel": 33,
			"minApiLevel":     21,
			"targetApiLevel":  33,
		},
		"versioning": map[string]interface{}{"versionCode": 1, "versionName": "1.0"},
		"toolchain":  map[string]interface{}{"toolchainVersion": "27.0.12077973"},
		"compatibility": map[string]interface{}{
			"sourceCompatibilityLevel": "1.8",
			"targetCompatibilityLevel": "1.8",
			"desugaringEnabled":        true,
		},
		"dependencies": map[string]interface{}{
			"desugaringLibraryDependency": "com.android.tools:desugar_jdk_libs:2.0.3",
		},
	}

	s, err := Decode(doc)
	if err != nil {
		t.Fatalf("Decode() failed: %v", err)
	}
	if s != fazliSettings {
		t.Errorf("Decode() = %+v, want %+v", s, fazliSettings)
	}

	delete(doc, "dependencies")
	if _, err := Decode(doc); !errors.Is(err, ErrMissingDependency) {
		t.Errorf("Decode() without dependency error = %v, want ErrMissingDependency", err)
	}

	if _, err := Decode(nil); !errors.Is(err, ErrMalformedDocument) {
		t.Errorf("Decode(nil) error = %v, want ErrMalformedDocument", err)
	}
}

func TestStrictLevels(t *testing.T) {
	doc := strings.Replace(minimalDocument, "targetApiLevel: 34", "targetApiLevel: 35", 1)

	if _, err := Parse([]byte(doc)); err != nil {
		t.Errorf("Parse() default loader error = %v, want nil", err)
	}

	_, err := NewLoader(WithStrictLevels(true)).Parse([]byte(doc))
	if !errors.Is(err, ErrInvalidRange) {
		t.Errorf("strict Parse() error = %v, want ErrInvalidRange", err)
	}
}

func TestValidationErrorsCollectKinds(t *testing.T) {
	s := BuildSettings{
		CompileAPILevel:   33,
		MinAPILevel:       0,
		TargetAPILevel:    33,
		VersionCode:       1,
		DesugaringEnabled: true,
	}

	err := s.Validate(false)
	var verrs ValidationErrors
	if !errors.As(err, &verrs) {
		t.Fatalf("Validate() error = %v, want ValidationErrors", err)
	}
	kinds := verrs.Kinds()
	if len(kinds) != 2 || kinds[0] != ErrInvalidRange || kinds[1] != ErrMissingDependency {
		t.Errorf("Kinds() = %v, want [invalid range, missing dependency]", kinds)
	}
	if !strings.Contains(err.Error(), "sdk.minApiLevel") {
		t.Errorf("Error() = %q, want it to name sdk.minApiLevel", err.Error())
	}
}

func TestSchemaErrorNamesField(t *testing.T) {
	doc := strings.Replace(minimalDocument, "  minApiLevel: 24\n", "", 1)
	_, err := Parse([]byte(doc))
	if err == nil || !strings.Contains(err.Error(), "sdk.minApiLevel") {
		t.Errorf("Parse() error = %v, want it to name sdk.minApiLevel", err)
	}
}

func TestLoaderLogsLoadedSettings(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	loader := NewLoader(WithLogger(zap.New(core)))

	if _, err := loader.Load("testdata/valid.yaml"); err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	entries := logs.FilterMessage("build settings loaded").All()
	if len(entries) != 1 {
		t.Fatalf("got %d 'build settings loaded' entries, want 1", len(entries))
	}
	if got := entries[0].ContextMap()["application_id"]; got != "com.pezshkyar.fazli" {
		t.Errorf("application_id = %v, want com.pezshkyar.fazli", got)
	}
}

func TestLoadFromPath(t *testing.T) {
	path := writeTemp(t, minimalDocument)

	s, err := LoadFromPath(filepath.Dir(path))
	if err != nil {
		t.Fatalf("LoadFromPath() with directory failed: %v", err)
	}
	if s.ApplicationID != "com.example.app" {
		t.Errorf("ApplicationID = %s, want com.example.app", s.ApplicationID)
	}

	s, err = NewConfigLoader().Load(path)
	if err != nil {
		t.Fatalf("ConfigLoader.Load() with file failed: %v", err)
	}
	if s.ApplicationID != "com.example.app" {
		t.Errorf("ApplicationID = %s, want com.example.app", s.ApplicationID)
	}

	if _, err := LoadFromPath(filepath.Join(filepath.Dir(path), "missing")); err == nil {
		t.Error("LoadFromPath() should fail for a missing path")
	}
}

func TestFindConfig(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "android"), 0755); err != nil {
		t.Fatal(err)
	}
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })

	if _, err := FindConfig(); !IsNotFound(err) {
		t.Errorf("FindConfig() error = %v, want not found", err)
	}

	if err := os.WriteFile(filepath.Join(dir, "android", ConfigFileName), []byte(minimalDocument), 0644); err != nil {
		t.Fatal(err)
	}
	s, path, err := LoadFromDiscovery()
	if err != nil {
		t.Fatalf("LoadFromDiscovery() failed: %v", err)
	}
	if filepath.Base(filepath.Dir(path)) != "android" {
		t.Errorf("path = %s, want it under android/", path)
	}
	if s.TargetAPILevel != 34 {
		t.Errorf("TargetAPILevel = %d, want 34", s.TargetAPILevel)
	}
}

func TestDocumentRoundTrip(t *testing.T) {
	s, err := fazliSettings.Document().Settings()
	if err != nil {
		t.Fatalf("Settings() failed: %v", err)
	}
	if s != fazliSettings {
		t.Errorf("Settings() = %+v, want %+v", s, fazliSettings)
	}
}
