// Package config provides configuration loading and validation for lintpath.
package config

// Config is the root configuration structure loaded from YAML.
type Config struct {
	// Extensions are the file extensions used when directories are
	// expanded into glob patterns.
	Extensions []string `yaml:"extensions,omitempty"`

	// Ignore enables ignore-rule handling.
	Ignore bool `yaml:"ignore"`

	// IgnorePath is an explicit ignore file path. Empty means the
	// discoverable ignore file in the working directory, if any.
	IgnorePath string `yaml:"ignore_path,omitempty"`

	// IgnorePattern is an inline ignore rule.
	IgnorePattern string `yaml:"ignore_pattern,omitempty"`

	// Dotfiles forces dotfile matching on or off for glob expansion.
	// Unset derives it per pattern.
	Dotfiles *bool `yaml:"dotfiles,omitempty"`

	// Format is the output format for the list command (text or json).
	Format string `yaml:"format,omitempty"`
}
