package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/cosmic/pkg/apod"
	"tableflip.dev/cosmic/pkg/commands/options"
	"tableflip.dev/cosmic/pkg/prompt"
	"tableflip.dev/cosmic/pkg/runner/gallery"
)

func addGallery(topLevel *cobra.Command) {
	gop := &options.GalleryOptions{}
	oo := &options.OutputOptions{}
	wo := &options.WrapOptions{}
	pick := false

	cmd := &cobra.Command{
		Use:   "gallery",
		Short: "List the image pictures of the last days.",
		Long: `List the image pictures of the last days, most recent first.
Videos are skipped. Days that fail to load are skipped too; the command only
fails when every day failed.`,
		Example: `
cosmic gallery
cosmic gallery --days 30 --json
cosmic gallery --pick
`,
		Args: cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return gop.Validate()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			oo.Out = cmd.OutOrStdout()
			env, err := loadEnv(false)
			if err != nil {
				return oo.HandleError(err)
			}
			defer env.Close()

			g := gallery.Gallery{
				Source: env.client,
				Days:   gop.Days,
				JSON:   oo.JSON,
				Out:    oo.Writer(),
				Width:  wo.Width,
				Links:  interactive(),
			}
			if pick {
				g.Pick = func(pics []apod.Picture) (int, error) {
					return prompt.Picture(cmd.InOrStdin(), cmd.ErrOrStderr(), pics)
				}
			}
			return oo.HandleError(g.Do(cmd.Context()))
		},
	}

	cmd.Flags().BoolVar(&pick, "pick", false, "Choose one picture from the gallery and print it.")
	options.AddGalleryArgs(cmd, gop)
	options.AddOutputArg(cmd, oo)
	options.AddWrapArgs(cmd, wo)

	topLevel.AddCommand(cmd)
}
