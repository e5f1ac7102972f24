package options

import (
	"fmt"
	"net"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

// MCPOptions selects how the MCP server is exposed.
type MCPOptions struct {
	Transport string
	Host      string
	Port      int
	Path      string
}

func AddMCPArgs(cmd *cobra.Command, o *MCPOptions) {
	cmd.Flags().StringVar(&o.Transport, "transport", "stdio", "transport to use: stdio or http")
	cmd.Flags().StringVar(&o.Host, "http-host", "127.0.0.1", "host/interface for HTTP transport")
	cmd.Flags().IntVar(&o.Port, "http-port", 8080, "port for HTTP transport (use 0 for random)")
	cmd.Flags().StringVar(&o.Path, "http-path", "/mcp", "HTTP endpoint path")

	_ = cmd.RegisterFlagCompletionFunc("transport", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return []string{"stdio", "http"}, cobra.ShellCompDirectiveNoFileComp
	})
}

// Validate normalizes the flags.
func (o *MCPOptions) Validate() error {
	o.Transport = strings.ToLower(strings.TrimSpace(o.Transport))
	switch o.Transport {
	case "", "stdio", "http":
	default:
		return fmt.Errorf("unsupported transport %q (expected stdio or http)", o.Transport)
	}
	if o.Port < 0 || o.Port > 65535 {
		return fmt.Errorf("invalid http-port %d", o.Port)
	}
	o.Path = strings.TrimSpace(o.Path)
	if o.Path == "" {
		o.Path = "/mcp"
	}
	if !strings.HasPrefix(o.Path, "/") {
		o.Path = "/" + o.Path
	}
	return nil
}

// Addr is the HTTP listen address.
func (o *MCPOptions) Addr() string {
	host := strings.TrimSpace(o.Host)
	if host == "" {
		host = "127.0.0.1"
	}
	return net.JoinHostPort(host, strconv.Itoa(o.Port))
}
