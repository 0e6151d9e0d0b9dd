package commands

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-swgen/pkg/scaffold"
)

func newInitCommand(root *rootOptions) *cobra.Command {
	var (
		dir   string
		force bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Interactively create a manifest with a serviceWorker section",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			registry, err := root.loadRegistry()
			if err != nil {
				return err
			}
			section, err := scaffold.Ask(cmd.Context(), scaffold.NewSurveyDriver(), registry)
			if err != nil {
				return err
			}
			path, err := scaffold.Write(dir, section, force)
			if err != nil {
				return err
			}
			log.Info().Str("path", path).Msg("Manifest written")
			return nil
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "d", ".", "directory or file path for the new manifest")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing manifest")

	return cmd
}
