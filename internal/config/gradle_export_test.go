package config

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportGradleMatchesFixture(t *testing.T) {
	want, err := os.ReadFile("testdata/build.gradle.kts")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, ExportGradle(&buf, fazliSettings))
	assert.Equal(t, string(want), buf.String())
}

func TestExportGradleRoundTrip(t *testing.T) {
	s := BuildSettings{
		ApplicationID:       "org.example.notes",
		CompileAPILevel:     35,
		MinAPILevel:         26,
		TargetAPILevel:      34,
		VersionCode:         42,
		VersionName:         "3.0.1",
		SourceCompatibility: Java17,
		TargetCompatibility: Java17,
	}

	var buf bytes.Buffer
	require.NoError(t, ExportGradle(&buf, s))
	assert.NotContains(t, buf.String(), "ndkVersion")
	assert.NotContains(t, buf.String(), "dependencies")

	doc, err := ImportGradle(&buf)
	require.NoError(t, err)
	got, err := doc.Settings()
	require.NoError(t, err)
	assert.Equal(t, s, got)
}

func TestExportGradleEscapesKotlinStrings(t *testing.T) {
	s := fazliSettings
	s.VersionName = "1.0-$beta \"rc\"\\\t\x01"

	var buf bytes.Buffer
	require.NoError(t, ExportGradle(&buf, s))
	assert.Contains(t, buf.String(), `versionName = "1.0-\$beta \"rc\"\\\t\u0001"`)

	doc, err := ImportGradle(&buf)
	require.NoError(t, err)
	assert.Equal(t, s.VersionName, doc.Versioning.VersionName)
}

func TestUnquoteKotlin(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{`"1.0"`, "1.0", true},
		{`"cost \$5"`, "cost $5", true},
		{`"price $ 5"`, "price $ 5", true},
		{`"App"`, "App", true},
		{`"${versionMajor}.0"`, "", false},
		{`"$versionName"`, "", false},
		{`"a" + "b"`, "", false},
		{`"bad \x41"`, "", false},
		{`"open`, "", false},
	}

	for _, tt := range tests {
		got, ok := unquoteKotlin(tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}
