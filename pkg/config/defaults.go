package config

// Default values for configuration.
const (
	DefaultFormat = "text"
)

// DefaultExtensions are the extensions applied when none are configured.
var DefaultExtensions = []string{".js"}

// Environment variable names.
const (
	EnvExtensions = "LINTPATH_EXTENSIONS"
	EnvIgnorePath = "LINTPATH_IGNORE_PATH"
)

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Extensions: append([]string(nil), DefaultExtensions...),
		Ignore:     true,
		Format:     DefaultFormat,
	}
}
