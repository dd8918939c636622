package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/suuzee/lintpath/pkg/config"
	"github.com/suuzee/lintpath/pkg/discovery"
	"github.com/suuzee/lintpath/pkg/output"
)

// ExitCode is set by commands to indicate the result
var ExitCode = 0

// ListOptions holds command-line options for the list command.
type ListOptions struct {
	Config  string
	Verbose bool
	Quiet   bool
}

// NewListCommand creates the list command.
func NewListCommand() *cobra.Command {
	opts := &ListOptions{}

	cmd := &cobra.Command{
		Use:   "list <pattern>...",
		Short: "List the files matching the given patterns",
		Long: `Expand path and glob patterns into the deduplicated, ordered list of
files a downstream tool should process.

Directories are expanded into extension-filtered globs. Files named
directly are always reported, marked "(ignored)" when an ignore rule
matches them. Glob-discovered files matching ignore rules are dropped.

Exit codes:
  0 - Files found
  1 - No files matched
  2 - Configuration or runtime error`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Config, "config", "c", "", "Path to a YAML config file")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "Print a summary after the file list")
	cmd.Flags().BoolVarP(&opts.Quiet, "quiet", "q", false, "Print only the summary")
	addDiscoveryFlags(cmd)

	return cmd
}

func runList(cmd *cobra.Command, args []string, opts *ListOptions) error {
	cfg, err := loadConfig(cmd, opts.Config)
	if err != nil {
		return err
	}

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("resolving working directory: %w", err)
	}

	discoveryOpts := cfg.DiscoveryOptions(cwd)
	patterns := discovery.ResolvePatterns(args, discoveryOpts)

	files, err := discovery.ListFiles(patterns, discoveryOpts)
	if err != nil {
		return err
	}

	formatter := output.New(cfg.Format, output.FormatOptions{
		Verbose: opts.Verbose,
		Quiet:   opts.Quiet,
	})
	if formatter == nil {
		return fmt.Errorf("unknown output format %q", cfg.Format)
	}

	report := output.NewReport(files, cwd, patterns)
	if err := formatter.Format(cmd.Context(), report, cmd.OutOrStdout()); err != nil {
		return fmt.Errorf("formatting output: %w", err)
	}

	if !report.HasFiles() {
		ExitCode = 1
	} else {
		ExitCode = 0
	}

	return nil
}

// addDiscoveryFlags registers the flags shared by list and resolve.
func addDiscoveryFlags(cmd *cobra.Command) {
	cmd.Flags().StringSliceP("ext", "e", nil, "File extensions used when expanding directories")
	cmd.Flags().Bool("no-ignore", false, "Disable ignore rules")
	cmd.Flags().String("ignore-path", "", "Path to an ignore file")
	cmd.Flags().String("ignore-pattern", "", "Inline ignore rule")
	cmd.Flags().Bool("dotfiles", false, "Force dotfile matching for glob expansion")
	cmd.Flags().StringP("output", "o", "", "Output format (text|json)")
}

// loadConfig loads the config file (or defaults) and applies flag overrides.
func loadConfig(cmd *cobra.Command, path string) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if path != "" {
		loaded, err := config.Load(cmd.Context(), path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if err := cfg.FromFlags(cmd.Flags()); err != nil {
		return nil, err
	}

	return cfg, nil
}
