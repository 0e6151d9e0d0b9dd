package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-swgen/pkg/manifest"
	"github.com/goliatone/go-swgen/pkg/plugins"
)

func newPluginsCommand(root *rootOptions) *cobra.Command {
	var version string

	cmd := &cobra.Command{
		Use:   "plugins",
		Short: "List registered plugins and the URLs they resolve to",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			registry, err := root.loadRegistry()
			if err != nil {
				return err
			}
			names := registry.List()
			urls, err := plugins.NewResolver(registry).Resolve(names, version)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			rows := append([]string{plugins.RuntimeName}, names...)
			for idx, name := range rows {
				if _, err := fmt.Fprintf(out, "%-20s %s\n", name, urls[idx]); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&version, "version", manifest.CurrentVersion, "service worker version used to build URLs")
	return cmd
}
