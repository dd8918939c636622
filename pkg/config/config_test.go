package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
)

func newFlagSet(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.StringSlice("ext", nil, "")
	fs.Bool("no-ignore", false, "")
	fs.String("ignore-path", "", "")
	fs.String("ignore-pattern", "", "")
	fs.Bool("dotfiles", false, "")
	fs.String("output", "", "")
	if err := fs.Parse(args); err != nil {
		t.Fatal(err)
	}
	return fs
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if !cfg.Ignore {
		t.Error("default config should enable ignore handling")
	}
	if len(cfg.Extensions) != 1 || cfg.Extensions[0] != ".js" {
		t.Errorf("default extensions = %v, want [.js]", cfg.Extensions)
	}
	if cfg.Format != "text" {
		t.Errorf("default format = %q, want text", cfg.Format)
	}
	if cfg.Dotfiles != nil {
		t.Error("default config should leave dotfiles unset")
	}
}

func TestLoad_Valid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	content := `
extensions: [".js", ".ts"]
ignore: false
ignore_pattern: "*.min.js"
format: json
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(context.Background(), path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Ignore {
		t.Error("ignore should be disabled by the config file")
	}
	if len(cfg.Extensions) != 2 {
		t.Errorf("extensions = %v, want 2 entries", cfg.Extensions)
	}
	if cfg.IgnorePattern != "*.min.js" {
		t.Errorf("ignore_pattern = %q", cfg.IgnorePattern)
	}
	if cfg.Format != "json" {
		t.Errorf("format = %q, want json", cfg.Format)
	}
}

func TestLoad_DefaultsPreserved(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	if err := os.WriteFile(path, []byte("ignore_pattern: dist/\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(context.Background(), path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !cfg.Ignore {
		t.Error("ignore should stay enabled when the config file omits it")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(context.Background(), filepath.Join(t.TempDir(), "nope.yml")); err == nil {
		t.Error("Load() expected error for missing file")
	}
}

func TestLoad_InvalidFormat(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	if err := os.WriteFile(path, []byte("format: xml\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(context.Background(), path); err == nil {
		t.Error("Load() expected error for invalid format")
	}
}

func TestValidate_EmptyExtension(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Extensions = []string{".js", " "}

	if err := Validate(cfg); err == nil {
		t.Error("Validate() expected error for empty extension")
	}
}

func TestEnvironmentOverrides(t *testing.T) {
	t.Setenv(EnvExtensions, ".go, .mod")
	t.Setenv(EnvIgnorePath, "/etc/lintpath/ignore")

	cfg := DefaultConfig()
	cfg.applyEnvironmentOverrides()

	if len(cfg.Extensions) != 2 || cfg.Extensions[0] != ".go" || cfg.Extensions[1] != ".mod" {
		t.Errorf("extensions = %v, want [.go .mod]", cfg.Extensions)
	}
	if cfg.IgnorePath != "/etc/lintpath/ignore" {
		t.Errorf("ignore path = %q", cfg.IgnorePath)
	}
}

func TestFromFlags(t *testing.T) {
	fs := newFlagSet(t, "--ext=.ts", "--no-ignore", "--dotfiles", "--output=json")

	cfg := DefaultConfig()
	if err := cfg.FromFlags(fs); err != nil {
		t.Fatalf("FromFlags() error = %v", err)
	}

	if len(cfg.Extensions) != 1 || cfg.Extensions[0] != ".ts" {
		t.Errorf("extensions = %v, want [.ts]", cfg.Extensions)
	}
	if cfg.Ignore {
		t.Error("--no-ignore should disable ignore handling")
	}
	if cfg.Dotfiles == nil || !*cfg.Dotfiles {
		t.Error("--dotfiles should force dotfile matching on")
	}
	if cfg.Format != "json" {
		t.Errorf("format = %q, want json", cfg.Format)
	}
}

func TestFromFlags_UnsetFlagsKeepConfig(t *testing.T) {
	fs := newFlagSet(t)

	cfg := DefaultConfig()
	cfg.Extensions = []string{".go"}
	if err := cfg.FromFlags(fs); err != nil {
		t.Fatalf("FromFlags() error = %v", err)
	}

	if len(cfg.Extensions) != 1 || cfg.Extensions[0] != ".go" {
		t.Errorf("extensions = %v, want config value preserved", cfg.Extensions)
	}
	if !cfg.Ignore {
		t.Error("ignore should stay enabled when --no-ignore is not set")
	}
	if cfg.Dotfiles != nil {
		t.Error("dotfiles should stay unset when --dotfiles is not set")
	}
}

func TestDiscoveryOptions(t *testing.T) {
	dotfiles := true
	cfg := &Config{
		Extensions:    []string{".ts"},
		Ignore:        true,
		IgnorePath:    "rules.txt",
		IgnorePattern: "dist/",
		Dotfiles:      &dotfiles,
	}

	opts := cfg.DiscoveryOptions("/work")

	if opts.Cwd != "/work" {
		t.Errorf("Cwd = %q", opts.Cwd)
	}
	if !opts.Ignore || opts.IgnoreFilePath != "rules.txt" || opts.IgnorePattern != "dist/" {
		t.Errorf("options = %+v", opts)
	}
	if opts.Dotfiles == nil || !*opts.Dotfiles {
		t.Error("dotfiles should carry through")
	}
}
