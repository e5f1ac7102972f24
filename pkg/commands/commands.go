package commands

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/cosmic/pkg/commands/options"
)

func New() *cobra.Command {
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "cosmic",
		Short: base.Wrap80("Explore NASA's Astronomy Picture of the Day from the terminal."),
		Long: base.Wrap80("With no subcommand cosmic opens the terminal UI when stdout is a " +
			"terminal, and prints today's picture otherwise. Set COSMIC_API_KEY (or " +
			"NASA_API_KEY) or api_key in ~/.cosmic.yaml to use your own API key."),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if interactive() {
				return runUI(cmd, &options.RouteOptions{Route: "/"})
			}
			return runShow(cmd, &options.DateOptions{}, oo, &options.WrapOptions{Width: 80})
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addUI(topLevel)
	addAPOD(topLevel)
	addRandom(topLevel)
	addGallery(topLevel)
	addMCP(topLevel)
	addVersion(topLevel)
	addCompletions(topLevel)
}

func interactive() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
