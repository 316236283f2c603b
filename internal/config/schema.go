package config

// BuildSettings is the validated, typed view of a settings document.
// Values are returned by copy and are comparable with ==.
type BuildSettings struct {
	ApplicationID string

	CompileAPILevel int
	MinAPILevel     int
	TargetAPILevel  int

	VersionCode int
	VersionName string

	// ToolchainVersion is the native (NDK) toolchain revision; empty when not declared.
	ToolchainVersion string

	SourceCompatibility LanguageLevel
	TargetCompatibility LanguageLevel

	DesugaringEnabled bool
	DesugaringLibrary string
}

// Document mirrors the on-disk layout of a .droidconf.yaml file.
// Every field is optional so partially known documents (e.g. a gradle import) can be written
// out; the loader decides what is required.
type Document struct {
	Application   ApplicationSection   `yaml:"application,omitempty"`
	SDK           SDKSection           `yaml:"sdk,omitempty"`
	Versioning    VersioningSection    `yaml:"versioning,omitempty"`
	Toolchain     *ToolchainSection    `yaml:"toolchain,omitempty"`
	Compatibility CompatibilitySection `yaml:"compatibility,omitempty"`
	Dependencies  *DependenciesSection `yaml:"dependencies,omitempty"`
}

// ApplicationSection holds application identity
type ApplicationSection struct {
	ApplicationID string `yaml:"applicationId,omitempty"`
}

// SDKSection holds platform API levels
type SDKSection struct {
	CompileAPILevel int `yaml:"compileApiLevel,omitempty"`
	MinAPILevel     int `yaml:"minApiLevel,omitempty"`
	TargetAPILevel  int `yaml:"targetApiLevel,omitempty"`
}

// VersioningSection holds release versioning
type VersioningSection struct {
	VersionCode int    `yaml:"versionCode,omitempty"`
	VersionName string `yaml:"versionName,omitempty"`
}

// ToolchainSection holds the native toolchain revision
type ToolchainSection struct {
	ToolchainVersion string `yaml:"toolchainVersion,omitempty"`
}

// CompatibilitySection holds language levels and the desugaring switch
type CompatibilitySection struct {
	SourceCompatibilityLevel string `yaml:"sourceCompatibilityLevel,omitempty"`
	TargetCompatibilityLevel string `yaml:"targetCompatibilityLevel,omitempty"`
	DesugaringEnabled        bool   `yaml:"desugaringEnabled,omitempty"`
}

// DependenciesSection holds dependency declarations
type DependenciesSection struct {
	DesugaringLibraryDependency string `yaml:"desugaringLibraryDependency,omitempty"`
}

// Document converts settings back to their canonical document form.
func (s BuildSettings) Document() Document {
	doc := Document{
		Application: ApplicationSection{ApplicationID: s.ApplicationID},
		SDK: SDKSection{
			CompileAPILevel: s.CompileAPILevel,
			MinAPILevel:     s.MinAPILevel,
			TargetAPILevel:  s.TargetAPILevel,
		},
		Versioning: VersioningSection{
			VersionCode: s.VersionCode,
			VersionName: s.VersionName,
		},
		Compatibility: CompatibilitySection{
			SourceCompatibilityLevel: string(s.SourceCompatibility),
			TargetCompatibilityLevel: string(s.TargetCompatibility),
			DesugaringEnabled:        s.DesugaringEnabled,
		},
	}
	if s.ToolchainVersion != "" {
		doc.Toolchain = &ToolchainSection{ToolchainVersion: s.ToolchainVersion}
	}
	if s.DesugaringLibrary != "" {
		doc.Dependencies = &DependenciesSection{DesugaringLibraryDependency: s.DesugaringLibrary}
	}
	return doc
}
