package commands

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-swgen/pkg/watch"
)

func newWatchCommand(root *rootOptions) *cobra.Command {
	opts := &buildOptions{}

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Regenerate sw.js whenever the manifest or registry changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			rebuild := func(ctx context.Context) error {
				return runBuild(ctx, root, opts, io.Discard)
			}
			if err := rebuild(ctx); err != nil {
				log.Error().Err(err).Msg("Initial build failed")
			}

			paths := []string{opts.source}
			if root.registry != "" {
				paths = append(paths, root.registry)
			}
			for _, p := range paths {
				if _, err := os.Stat(p); err != nil {
					return fmt.Errorf("watch mode needs local paths: %w", err)
				}
			}

			w, err := watch.New(watch.Config{Paths: paths, Logger: log.Logger})
			if err != nil {
				return err
			}
			log.Info().Strs("paths", paths).Msg("Watching for changes")
			return w.Run(ctx, rebuild)
		},
	}

	opts.bind(cmd)
	return cmd
}
