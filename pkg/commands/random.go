package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/cosmic/pkg/apod"
	"tableflip.dev/cosmic/pkg/commands/options"
	"tableflip.dev/cosmic/pkg/runner/random"
)

func addRandom(topLevel *cobra.Command) {
	oo := &options.OutputOptions{}
	wo := &options.WrapOptions{}

	cmd := &cobra.Command{
		Use:   "random",
		Short: "Print the picture of a random day since 2000-01-01.",
		Example: `
cosmic random
cosmic random --json
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			oo.Out = cmd.OutOrStdout()
			env, err := loadEnv(false)
			if err != nil {
				return oo.HandleError(err)
			}
			defer env.Close()

			r := random.Random{
				Fetcher: env.client,
				Sampler: apod.NewSampler(),
				Log:     env.log,
				JSON:    oo.JSON,
				Out:     oo.Writer(),
				Width:   wo.Width,
				Links:   interactive(),
			}
			return oo.HandleError(r.Do(cmd.Context()))
		},
	}

	options.AddOutputArg(cmd, oo)
	options.AddWrapArgs(cmd, wo)

	topLevel.AddCommand(cmd)
}
