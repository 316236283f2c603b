package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

const (
	ConfigFileName = ".droidconf.yaml"
)

var ErrConfigNotFound = errors.New("config not found")

func IsNotFound(err error) bool {
	return errors.Is(err, ErrConfigNotFound)
}

// Loader turns settings documents into BuildSettings.
// A Loader only holds options and can be shared.
type Loader struct {
	logger       *zap.Logger
	strictLevels bool
}

// Option configures a Loader
type Option func(*Loader)

// WithLogger sets the logger used for debug output.
func WithLogger(l *zap.Logger) Option {
	return func(ld *Loader) {
		if l != nil {
			ld.logger = l
		}
	}
}

// WithStrictLevels also rejects targetApiLevel or minApiLevel above compileApiLevel.
func WithStrictLevels(strict bool) Option {
	return func(ld *Loader) {
		ld.strictLevels = strict
	}
}

// NewLoader creates a Loader. Without options it logs nothing and checks only min <= target.
func NewLoader(opts ...Option) *Loader {
	l := &Loader{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

var defaultLoader = NewLoader()

// Decode validates a structured document and returns its settings.
// Nested sections may be any JSON-marshalable value.
func (l *Loader) Decode(doc map[string]interface{}) (BuildSettings, error) {
	normalized, err := normalize(doc)
	if err != nil {
		return BuildSettings{}, err
	}
	return l.decode(normalized)
}

// Parse reads a YAML or JSON document.
func (l *Loader) Parse(data []byte) (BuildSettings, error) {
	doc, err := parseDocument(data)
	if err != nil {
		l.logger.Debug("document rejected", zap.Error(err))
		return BuildSettings{}, err
	}
	return l.decode(doc)
}

// Load reads and parses a settings file
func (l *Loader) Load(path string) (BuildSettings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return BuildSettings{}, fmt.Errorf("failed to read config file: %w", err)
	}
	l.logger.Debug("read settings document", zap.String("path", path), zap.Int("bytes", len(data)))

	s, err := l.Parse(data)
	if err != nil {
		return BuildSettings{}, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

func (l *Loader) decode(doc map[string]interface{}) (BuildSettings, error) {
	if err := checkShape(doc); err != nil {
		l.logger.Debug("document rejected", zap.Error(err))
		return BuildSettings{}, err
	}

	s, err := decodeSettings(doc)
	if err != nil {
		l.logger.Debug("document rejected", zap.Error(err))
		return BuildSettings{}, err
	}

	if err := s.Validate(l.strictLevels); err != nil {
		l.logger.Debug("settings rejected", zap.Error(err))
		return BuildSettings{}, err
	}

	l.logger.Debug("build settings loaded",
		zap.String("application_id", s.ApplicationID),
		zap.Int("compile_api_level", s.CompileAPILevel),
		zap.Int("min_api_level", s.MinAPILevel),
		zap.Int("target_api_level", s.TargetAPILevel),
		zap.Bool("desugaring", s.DesugaringEnabled),
	)
	return s, nil
}

// normalize round-trips a caller supplied document through JSON so every
// section is a map[string]interface{} and every number a json.Number.
func normalize(doc map[string]interface{}) (map[string]interface{}, error) {
	if doc == nil {
		return nil, ValidationErrors{malformed("", "document is empty")}
	}
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, ValidationErrors{malformed("", "document is not serializable: %v", err)}
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var out map[string]interface{}
	if err := dec.Decode(&out); err != nil {
		return nil, ValidationErrors{malformed("", "%v", err)}
	}
	return out, nil
}

// Decode validates a structured document with the default loader.
func Decode(doc map[string]interface{}) (BuildSettings, error) {
	return defaultLoader.Decode(doc)
}

// Parse reads a YAML or JSON document with the default loader.
func Parse(data []byte) (BuildSettings, error) {
	return defaultLoader.Parse(data)
}

// Load reads and parses a .droidconf.yaml file
func Load(path string) (BuildSettings, error) {
	return defaultLoader.Load(path)
}

// Settings validates a Document value, e.g. one produced by ImportGradle.
func (d Document) Settings(opts ...Option) (BuildSettings, error) {
	data, err := marshalDocument(d)
	if err != nil {
		return BuildSettings{}, err
	}
	return NewLoader(opts...).Parse(data)
}

// FindConfig searches for .droidconf.yaml in common locations
func FindConfig() (string, error) {
	searchPaths := []string{
		".",
		"android",
		"app",
	}

	for _, basePath := range searchPaths {
		configPath := filepath.Join(basePath, ConfigFileName)
		if _, err := os.Stat(configPath); err == nil {
			absPath, err := filepath.Abs(configPath)
			if err != nil {
				return configPath, nil
			}
			return absPath, nil
		}
	}

	return "", fmt.Errorf("%w: could not find %s in any standard location", ErrConfigNotFound, ConfigFileName)
}

// LoadFromDiscovery finds and loads the config file
func (l *Loader) LoadFromDiscovery() (BuildSettings, string, error) {
	configPath, err := FindConfig()
	if err != nil {
		return BuildSettings{}, "", err
	}

	s, err := l.Load(configPath)
	if err != nil {
		return BuildSettings{}, configPath, err
	}
	return s, configPath, nil
}

// LoadFromPath loads config from a file or from ConfigFileName inside a directory.
func (l *Loader) LoadFromPath(path string) (BuildSettings, error) {
	stat, err := os.Stat(path)
	if err != nil {
		return BuildSettings{}, fmt.Errorf("path does not exist: %w", err)
	}

	if stat.IsDir() {
		path = filepath.Join(path, ConfigFileName)
	}

	return l.Load(path)
}

// LoadFromDiscovery finds and loads the config file with the default loader.
func LoadFromDiscovery() (BuildSettings, string, error) {
	return defaultLoader.LoadFromDiscovery()
}

// LoadFromPath loads config from a specific path with the default loader.
func LoadFromPath(path string) (BuildSettings, error) {
	return defaultLoader.LoadFromPath(path)
}

// ResolvePath returns the settings file a path refers to.
func ResolvePath(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	stat, err := os.Stat(absPath)
	if err != nil {
		return "", err
	}
	if stat.IsDir() {
		return filepath.Join(absPath, ConfigFileName), nil
	}
	return absPath, nil
}
