package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPackageSegment(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Hello World", "helloworld"},
		{"my-app", "myapp"},
		{"  Trim Spaces  ", "trimspaces"},
		{"123start", "start"},
		{"snake_case", "snake_case"},
		{"@@@", "app"},
	}

	for _, tt := range tests {
		result := packageSegment(tt.input)
		if result != tt.expected {
			t.Errorf("packageSegment(%q) = %q, want %q", tt.input, result, tt.expected)
		}
	}
}

func TestInitConfigDefaults(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "Weather App")
	require.NoError(t, os.MkdirAll(dir, 0755))

	var out bytes.Buffer
	path, err := InitConfig(dir, InitOptions{Out: &out})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Created")

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "com.example.weatherapp", s.ApplicationID)
	assert.Equal(t, Java17, s.SourceCompatibility)
	assert.False(t, s.DesugaringEnabled)
}

func TestInitConfigFromGradle(t *testing.T) {
	dir := t.TempDir()

	path, err := InitConfig(dir, InitOptions{FromGradle: "testdata/build.gradle.kts"})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "# Generated by droidconf")

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, fazliSettings, s)
}

func TestInitConfigRefusesOverwrite(t *testing.T) {
	dir := t.TempDir()
	_, err := InitConfig(dir, InitOptions{})
	require.NoError(t, err)

	_, err = InitConfig(dir, InitOptions{})
	assert.ErrorIs(t, err, ErrConfigExists)

	_, err = InitConfig(dir, InitOptions{Force: true, FromGradle: "testdata/build.gradle.kts"})
	require.NoError(t, err)
}

func TestInitConfigRejectsIncompleteImport(t *testing.T) {
	dir := t.TempDir()
	script := filepath.Join(dir, "build.gradle.kts")
	require.NoError(t, os.WriteFile(script, []byte("android {\n    compileSdk = 34\n}\n"), 0644))

	_, err := InitConfig(dir, InitOptions{})
	assert.ErrorIs(t, err, ErrMalformedDocument)
	_, statErr := os.Stat(filepath.Join(dir, ConfigFileName))
	assert.True(t, os.IsNotExist(statErr))
}
