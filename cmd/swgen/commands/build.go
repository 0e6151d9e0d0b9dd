package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-swgen"
	"github.com/goliatone/go-swgen/pkg/orchestrator"
)

type buildOptions struct {
	source   string
	target   string
	manifest string
	stdout   bool
}

func (b *buildOptions) bind(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&b.source, "source", "s", ".", "build source directory, manifest file or URL")
	cmd.Flags().StringVarP(&b.target, "target", "t", ".", "build target directory receiving sw.js")
	cmd.Flags().StringVarP(&b.manifest, "manifest", "m", "", "manifest file name inside the source directory")
}

func (b *buildOptions) request(save bool) (orchestrator.Request, error) {
	src := swgen.ParseSource(b.source)
	if src == nil {
		return orchestrator.Request{}, fmt.Errorf("invalid source: %q", b.source)
	}
	return orchestrator.Request{
		Source:  src,
		Options: orchestrator.BuildOptions{ManifestName: b.manifest},
		Target:  b.target,
		Save:    save,
	}, nil
}

func newBuildCommand(root *rootOptions) *cobra.Command {
	opts := &buildOptions{}

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Generate sw.js from the manifest",
		Example: `  # Generate ./public/sw.js from ./site/manifest.json
  swgen build --source ./site --target ./public

  # Print the script instead of writing it
  swgen build --source ./site --stdout`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(cmd.Context(), root, opts, cmd.OutOrStdout())
		},
	}

	opts.bind(cmd)
	cmd.Flags().BoolVar(&opts.stdout, "stdout", false, "print the script instead of writing it")

	return cmd
}

func runBuild(ctx context.Context, root *rootOptions, opts *buildOptions, out io.Writer) error {
	gen, err := root.newGenerator()
	if err != nil {
		return err
	}
	req, err := opts.request(!opts.stdout)
	if err != nil {
		return err
	}

	result, err := gen.Generate(ctx, req)
	if err != nil {
		return err
	}
	if !result.Generated() {
		log.Warn().Str("source", opts.source).Msg("No service worker configuration")
		return nil
	}

	if opts.stdout {
		_, err := io.WriteString(out, result.Script)
		return err
	}
	log.Info().Str("path", result.Path).Msg("Service worker generated")
	return nil
}
