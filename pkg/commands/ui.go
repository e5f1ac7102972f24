package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/cosmic/pkg/apod"
	"tableflip.dev/cosmic/pkg/commands/options"
	"tableflip.dev/cosmic/pkg/runner/ui"
	"tableflip.dev/cosmic/pkg/tui/app"
	"tableflip.dev/cosmic/pkg/tui/theme"
)

func addUI(topLevel *cobra.Command) {
	ro := &options.RouteOptions{}

	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the text-based user interface",
		Example: `
cosmic ui
cosmic ui --route /gallery
`,
		Args: cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return ro.Validate()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUI(cmd, ro)
		},
	}

	options.AddRouteArgs(cmd, ro)

	topLevel.AddCommand(cmd)
}

func runUI(cmd *cobra.Command, ro *options.RouteOptions) error {
	env, err := loadEnv(true)
	if err != nil {
		return err
	}
	defer env.Close()

	env.log.Info("starting ui", "route", ro.Route, "endpoint", env.client.Endpoint())
	i := ui.UI{Options: app.Options{
		Service:    env.client,
		Sampler:    apod.NewSampler(),
		Logger:     env.log,
		Theme:      theme.Default(),
		Route:      ro.Route,
		Hyperlinks: true,
	}}
	return i.Do(cmd.Context())
}
