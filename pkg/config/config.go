package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/suuzee/lintpath/pkg/discovery"
)

// Load reads and validates a configuration file.
func Load(_ context.Context, path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- user-provided config path is expected
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	cfg.applyEnvironmentOverrides()

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// Validate checks a configuration for errors.
func Validate(cfg *Config) error {
	for i, ext := range cfg.Extensions {
		if strings.TrimSpace(ext) == "" {
			return fmt.Errorf("extensions[%d]: extension must not be empty", i)
		}
		if strings.ContainsAny(ext, "/\\") {
			return fmt.Errorf("extensions[%d]: invalid extension %q", i, ext)
		}
	}

	switch cfg.Format {
	case "", "text", "json":
	default:
		return fmt.Errorf("format: invalid format %q (must be text or json)", cfg.Format)
	}

	return nil
}

// FromFlags updates the Config fields from a parsed FlagSet. Only flags
// the user actually set override the loaded configuration.
func (c *Config) FromFlags(fs *pflag.FlagSet) error {
	if fs.Changed("ext") {
		exts, err := fs.GetStringSlice("ext")
		if err != nil {
			return err
		}
		c.Extensions = exts
	}

	if fs.Changed("no-ignore") {
		noIgnore, err := fs.GetBool("no-ignore")
		if err != nil {
			return err
		}
		c.Ignore = !noIgnore
	}

	if fs.Changed("ignore-path") {
		path, err := fs.GetString("ignore-path")
		if err != nil {
			return err
		}
		c.IgnorePath = path
	}

	if fs.Changed("ignore-pattern") {
		pattern, err := fs.GetString("ignore-pattern")
		if err != nil {
			return err
		}
		c.IgnorePattern = pattern
	}

	if fs.Changed("dotfiles") {
		dotfiles, err := fs.GetBool("dotfiles")
		if err != nil {
			return err
		}
		c.Dotfiles = &dotfiles
	}

	if fs.Changed("output") {
		format, err := fs.GetString("output")
		if err != nil {
			return err
		}
		c.Format = format
	}

	return Validate(c)
}

// DiscoveryOptions converts the configuration into discovery options
// rooted at cwd.
func (c *Config) DiscoveryOptions(cwd string) discovery.Options {
	return discovery.Options{
		Cwd:            cwd,
		Extensions:     c.Extensions,
		Ignore:         c.Ignore,
		IgnoreFilePath: c.IgnorePath,
		IgnorePattern:  c.IgnorePattern,
		Dotfiles:       c.Dotfiles,
	}
}

// applyEnvironmentOverrides applies environment variable overrides to the config.
func (c *Config) applyEnvironmentOverrides() {
	if exts := os.Getenv(EnvExtensions); exts != "" {
		parts := strings.Split(exts, ",")
		cleaned := make([]string, 0, len(parts))
		for _, part := range parts {
			if part = strings.TrimSpace(part); part != "" {
				cleaned = append(cleaned, part)
			}
		}
		if len(cleaned) > 0 {
			c.Extensions = cleaned
		}
	}

	if path := os.Getenv(EnvIgnorePath); path != "" {
		c.IgnorePath = path
	}
}
