package options

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Routes accepted by --route.
var Routes = []string{"/", "/apod", "/gallery"}

// RouteOptions picks the first page of the terminal UI.
type RouteOptions struct {
	Route string
}

func AddRouteArgs(cmd *cobra.Command, o *RouteOptions) {
	cmd.Flags().StringVar(&o.Route, "route", "/",
		`Page to open first, one of "/", "/apod" or "/gallery".`)
	_ = cmd.RegisterFlagCompletionFunc("route", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return Routes, cobra.ShellCompDirectiveNoFileComp
	})
}

func (o *RouteOptions) Validate() error {
	for _, r := range Routes {
		if o.Route == r {
			return nil
		}
	}
	return fmt.Errorf("unknown --route %q", o.Route)
}
