package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/suuzee/lintpath/pkg/discovery"
)

// ResolveOptions holds command-line options for the resolve command.
type ResolveOptions struct {
	Config string
}

// NewResolveCommand creates the resolve command.
func NewResolveCommand() *cobra.Command {
	opts := &ResolveOptions{}

	cmd := &cobra.Command{
		Use:   "resolve <pattern>...",
		Short: "Print the normalized glob patterns without expanding them",
		Long: `Normalize path patterns the way the list command does, without touching
the matched files: empty patterns are dropped and directories are
rewritten into extension-filtered globs.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResolve(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Config, "config", "c", "", "Path to a YAML config file")
	addDiscoveryFlags(cmd)

	return cmd
}

func runResolve(cmd *cobra.Command, args []string, opts *ResolveOptions) error {
	cfg, err := loadConfig(cmd, opts.Config)
	if err != nil {
		return err
	}

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("resolving working directory: %w", err)
	}

	for _, pattern := range discovery.ResolvePatterns(args, cfg.DiscoveryOptions(cwd)) {
		fmt.Fprintln(cmd.OutOrStdout(), pattern)
	}

	ExitCode = 0
	return nil
}
