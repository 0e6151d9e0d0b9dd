package commands

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-swgen"
	"github.com/goliatone/go-swgen/pkg/logging"
	"github.com/goliatone/go-swgen/pkg/manifest"
	"github.com/goliatone/go-swgen/pkg/orchestrator"
	"github.com/goliatone/go-swgen/pkg/plugins"
)

// rootOptions holds the persistent flags shared by every subcommand.
type rootOptions struct {
	logLevel  string
	logFormat string
	registry  string
	tool      string
}

// Execute runs the root command.
func Execute(ctx context.Context, version, commit string) error {
	return NewRootCommand(version, commit).ExecuteContext(ctx)
}

// NewRootCommand assembles the swgen command tree.
func NewRootCommand(version, commit string) *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "swgen",
		Short: "Generate service worker scripts from site manifests",
		Long: `swgen reads the serviceWorker section of a site manifest and writes a
sw.js that imports the service worker runtime and plugins, registers content
origins and primes the static cache.`,
		Version:       fmt.Sprintf("%s (commit: %s)", version, commit),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return logging.Setup(logging.Config{
				Level:  opts.logLevel,
				Format: opts.logFormat,
				Output: cmd.ErrOrStderr(),
			})
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", logging.LevelFromEnv("info"), "log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&opts.logFormat, "log-format", "console", "log format (console, json)")
	rootCmd.PersistentFlags().StringVarP(&opts.registry, "registry", "r", "", "plugin registry file (YAML or JSON)")
	rootCmd.PersistentFlags().StringVar(&opts.tool, "tool", orchestrator.DefaultTool, "tool name written into the generated header")

	rootCmd.AddCommand(newBuildCommand(opts))
	rootCmd.AddCommand(newWatchCommand(opts))
	rootCmd.AddCommand(newInitCommand(opts))
	rootCmd.AddCommand(newPluginsCommand(opts))
	rootCmd.AddCommand(newServeCommand(opts))

	return rootCmd
}

func (o *rootOptions) loadRegistry() (*plugins.Registry, error) {
	if o.registry == "" {
		return plugins.NewRegistry(), nil
	}
	return plugins.LoadFile(o.registry)
}

// newGenerator builds an orchestrator for the current flags. The registry is
// read on every call so watch mode picks up registry edits.
func (o *rootOptions) newGenerator() (*orchestrator.Orchestrator, error) {
	registry, err := o.loadRegistry()
	if err != nil {
		return nil, err
	}
	return orchestrator.New(
		orchestrator.WithLoader(swgen.NewLoader(manifest.WithHTTPFallback(swgen.DefaultRequestTimeout))),
		orchestrator.WithRegistry(registry),
		orchestrator.WithTool(o.tool),
		orchestrator.WithLogger(log.Logger),
	), nil
}
