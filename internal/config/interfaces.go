package config

// ConfigLoader defines the interface for loading settings documents.
// This interface allows for easier testing by providing a mockable contract.
type ConfigLoader interface {
	// Load reads and validates a settings file or a directory containing one.
	Load(path string) (BuildSettings, error)

	// Discover searches for a settings file in standard locations and returns its path.
	Discover() (string, error)
}

// DefaultConfigLoader is the production implementation of ConfigLoader.
type DefaultConfigLoader struct {
	loader *Loader
}

// Load reads and validates a settings file or a directory containing one.
func (l *DefaultConfigLoader) Load(path string) (BuildSettings, error) {
	return l.loader.LoadFromPath(path)
}

// Discover searches for a settings file in standard locations and returns its path.
func (l *DefaultConfigLoader) Discover() (string, error) {
	return FindConfig()
}

// NewConfigLoader creates a new DefaultConfigLoader.
func NewConfigLoader(opts ...Option) ConfigLoader {
	return &DefaultConfigLoader{loader: NewLoader(opts...)}
}
