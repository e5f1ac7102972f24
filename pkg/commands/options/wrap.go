package options

import "github.com/spf13/cobra"

// WrapOptions controls text wrapping of printed explanations.
type WrapOptions struct {
	Width int
}

func AddWrapArgs(cmd *cobra.Command, o *WrapOptions) {
	cmd.Flags().IntVarP(&o.Width, "width", "w", 80,
		"Wrap explanations at this many columns.")
}
