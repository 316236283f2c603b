package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

var (
	subtle = lipgloss.NewStyle().Foreground(lipgloss.Color("#626262"))
)

var ErrConfigExists = errors.New("config already exists")

const documentHeader = "# Generated by droidconf\n# Android build settings; validate with 'dcf validate'\n\n"

// InitOptions controls how InitConfig builds the new document
type InitOptions struct {
	// FromGradle imports values from this build script instead of searching dir.
	FromGradle string
	// Force overwrites an existing file without asking.
	Force bool
	// Interactive prompts for every value, prefilled with the imported or default ones.
	Interactive bool
	In          io.Reader
	Out         io.Writer
}

// InitConfig writes a new settings document into dir and returns its path.
// The document is only written once it loads cleanly.
func InitConfig(dir string, opts InitOptions) (string, error) {
	if opts.In == nil {
		opts.In = os.Stdin
	}
	if opts.Out == nil {
		opts.Out = io.Discard
	}

	absPath, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("failed to resolve path: %w", err)
	}

	configFile := filepath.Join(absPath, ConfigFileName)
	if _, err := os.Stat(configFile); err == nil && !opts.Force {
		if !opts.Interactive {
			return "", fmt.Errorf("%w: %s (use --force to overwrite)", ErrConfigExists, configFile)
		}
		var overwrite bool
		err := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title(fmt.Sprintf("%s already exists. Overwrite?", ConfigFileName)).
					Value(&overwrite),
			),
		).WithInput(opts.In).WithOutput(opts.Out).Run()
		if err != nil {
			return "", err
		}
		if !overwrite {
			fmt.Fprintln(opts.Out, "Aborted.")
			return "", nil
		}
	}

	doc, err := initialDocument(absPath, opts)
	if err != nil {
		return "", err
	}

	if opts.Interactive {
		if doc, err = promptDocument(doc, opts.In, opts.Out); err != nil {
			return "", err
		}
	}

	if _, err := doc.Settings(); err != nil {
		return "", fmt.Errorf("generated document is not valid: %w", err)
	}

	data, err := marshalDocument(doc)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(configFile, append([]byte(documentHeader), data...), 0644); err != nil {
		return "", fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Fprintf(opts.Out, "Created %s\n", configFile)
	return configFile, nil
}

func initialDocument(root string, opts InitOptions) (Document, error) {
	gradlePath := opts.FromGradle
	if gradlePath == "" {
		found, err := FindGradleBuildFile(root)
		if err != nil {
			if errors.Is(err, ErrGradleNotFound) {
				return DefaultDocument(filepath.Base(root)), nil
			}
			return Document{}, err
		}
		gradlePath = found
	}

	f, err := os.Open(gradlePath)
	if err != nil {
		return Document{}, fmt.Errorf("failed to open gradle file: %w", err)
	}
	defer func() { _ = f.Close() }()

	fmt.Fprintf(opts.Out, "Importing %s\n", gradlePath)
	return ImportGradle(f)
}

// DefaultDocument returns a valid starting document for a project directory name.
func DefaultDocument(projectName string) Document {
	return Document{
		Application: ApplicationSection{ApplicationID: "com.example." + packageSegment(projectName)},
		SDK: SDKSection{
			CompileAPILevel: 35,
			MinAPILevel:     24,
			TargetAPILevel:  35,
		},
		Versioning: VersioningSection{VersionCode: 1, VersionName: "1.0"},
		Compatibility: CompatibilitySection{
			SourceCompatibilityLevel: string(Java17),
			TargetCompatibilityLevel: string(Java17),
		},
	}
}

func marshalDocument(doc Document) ([]byte, error) {
	data, err := yaml.Marshal(&doc)
	if err != nil {
		return nil, fmt.Errorf("failed to generate YAML: %w", err)
	}
	return data, nil
}

func promptDocument(doc Document, in io.Reader, out io.Writer) (Document, error) {
	compile := intString(doc.SDK.CompileAPILevel)
	minLevel := intString(doc.SDK.MinAPILevel)
	target := intString(doc.SDK.TargetAPILevel)
	code := intString(doc.Versioning.VersionCode)
	toolchain := ""
	if doc.Toolchain != nil {
		toolchain = doc.Toolchain.ToolchainVersion
	}
	library := ""
	if doc.Dependencies != nil {
		library = doc.Dependencies.DesugaringLibraryDependency
	}

	var levelOptions []huh.Option[string]
	for _, l := range supportedLanguageLevels {
		levelOptions = append(levelOptions, huh.NewOption(string(l), string(l)))
	}
	if doc.Compatibility.SourceCompatibilityLevel == "" {
		doc.Compatibility.SourceCompatibilityLevel = string(Java17)
	}
	if doc.Compatibility.TargetCompatibilityLevel == "" {
		doc.Compatibility.TargetCompatibilityLevel = doc.Compatibility.SourceCompatibilityLevel
	}

	apiLevel := func(s string) error {
		_, err := ParseAPILevel(s)
		return err
	}

	err := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Application ID").
				Description(subtle.Render("Reverse-domain identifier, e.g. com.example.app")).
				Value(&doc.Application.ApplicationID),
			huh.NewInput().Title("Compile API level").Value(&compile).Validate(apiLevel),
			huh.NewInput().Title("Minimum API level").Value(&minLevel).Validate(apiLevel),
			huh.NewInput().Title("Target API level").Value(&target).Validate(apiLevel),
		),
		huh.NewGroup(
			huh.NewInput().Title("Version code").Value(&code).Validate(func(s string) error {
				_, err := parseDecimal(s)
				return err
			}),
			huh.NewInput().Title("Version name").Value(&doc.Versioning.VersionName),
			huh.NewInput().
				Title("NDK version").
				Description(subtle.Render("Leave empty when no native code is built")).
				Value(&toolchain),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Source compatibility").
				Options(levelOptions...).
				Value(&doc.Compatibility.SourceCompatibilityLevel),
			huh.NewSelect[string]().
				Title("Target compatibility").
				Options(levelOptions...).
				Value(&doc.Compatibility.TargetCompatibilityLevel),
			huh.NewConfirm().
				Title("Enable core library desugaring?").
				Value(&doc.Compatibility.DesugaringEnabled),
			huh.NewInput().
				Title("Desugaring library").
				Placeholder("com.android.tools:desugar_jdk_libs:2.0.3").
				Value(&library),
		),
	).WithInput(in).WithOutput(out).Run()
	if err != nil {
		return Document{}, err
	}

	doc.SDK.CompileAPILevel, _ = ParseAPILevel(compile)
	doc.SDK.MinAPILevel, _ = ParseAPILevel(minLevel)
	doc.SDK.TargetAPILevel, _ = ParseAPILevel(target)
	doc.Versioning.VersionCode, _ = parseDecimal(code)
	doc.Toolchain = nil
	if toolchain != "" {
		doc.Toolchain = &ToolchainSection{ToolchainVersion: toolchain}
	}
	doc.Dependencies = nil
	if library != "" {
		doc.Dependencies = &DependenciesSection{DesugaringLibraryDependency: library}
	}
	return doc, nil
}

func intString(n int) string {
	if n == 0 {
		return ""
	}
	return strconv.Itoa(n)
}
