package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/cosmic/pkg/commands/options"
	"tableflip.dev/cosmic/pkg/prompt"
	"tableflip.dev/cosmic/pkg/runner/show"
)

func addAPOD(topLevel *cobra.Command) {
	do := &options.DateOptions{}
	oo := &options.OutputOptions{}
	wo := &options.WrapOptions{}

	cmd := &cobra.Command{
		Use:     "apod",
		Aliases: []string{"show", "today"},
		Short:   "Print the Astronomy Picture of the Day.",
		Example: `
cosmic apod
cosmic apod --date 2021-12-25
cosmic apod --date 12/25 --json
cosmic apod --ask
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd, do, oo, wo)
		},
	}

	options.AddDateArgs(cmd, do)
	options.AddOutputArg(cmd, oo)
	options.AddWrapArgs(cmd, wo)

	topLevel.AddCommand(cmd)
}

func runShow(cmd *cobra.Command, do *options.DateOptions, oo *options.OutputOptions, wo *options.WrapOptions) error {
	oo.Out = cmd.OutOrStdout()
	if do.Ask && do.DateString == "" {
		answer, err := prompt.Date(cmd.InOrStdin(), cmd.ErrOrStderr(), do.Check)
		if err != nil {
			return oo.HandleError(err)
		}
		do.DateString = answer
	}
	date, err := do.GetDate()
	if err != nil {
		return oo.HandleError(err)
	}
	env, err := loadEnv(false)
	if err != nil {
		return oo.HandleError(err)
	}
	defer env.Close()

	s := show.Show{
		Fetcher: env.client,
		Date:    date,
		JSON:    oo.JSON,
		Out:     oo.Writer(),
		Width:   wo.Width,
		Links:   interactive(),
	}
	return oo.HandleError(s.Do(cmd.Context()))
}
