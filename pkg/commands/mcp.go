package commands

import (
	"fmt"
	"net"

	"github.com/spf13/cobra"

	"tableflip.dev/cosmic/pkg/apod"
	"tableflip.dev/cosmic/pkg/commands/options"
	"tableflip.dev/cosmic/pkg/runner/mcp"
)

func addMCP(topLevel *cobra.Command) {
	mo := &options.MCPOptions{}

	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "start the Model Context Protocol server",
		Long: `Launch an MCP server that exposes the picture of a day, a random day and
the recent gallery as tools, and the latest picture as a resource.`,
		Example: `
cosmic mcp
cosmic mcp --transport http --http-port 0
`,
		Args: cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return mo.Validate()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := loadEnv(false)
			if err != nil {
				return err
			}
			defer env.Close()

			runner := mcp.Runner{
				Client:           env.client,
				Sampler:          apod.NewSampler(),
				Log:              env.log,
				Name:             "cosmic",
				Version:          version,
				Transport:        mcp.Transport(mo.Transport),
				HTTPListenAddr:   mo.Addr(),
				HTTPEndpointPath: mo.Path,
				Stdin:            cmd.InOrStdin(),
				Stdout:           cmd.OutOrStdout(),
			}
			if runner.Transport == mcp.TransportHTTP {
				runner.OnHTTPListening = func(a net.Addr) {
					_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "MCP HTTP server listening on http://%s%s\n", a, mo.Path)
				}
			}
			return runner.Do(cmd.Context())
		},
	}

	options.AddMCPArgs(cmd, mo)

	topLevel.AddCommand(cmd)
}
