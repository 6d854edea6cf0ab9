// Package cli is the command-line entrypoint of solsweep.
package cli

import (
	"context"
	"os"

	"github.com/gabapcia/solsweep/internal/handlers/httpapi"
	"github.com/gabapcia/solsweep/internal/monitor"

	"github.com/urfave/cli/v3"
)

// Run registers the available commands and executes the CLI application.
func Run(ctx context.Context, srv *httpapi.Server, mon monitor.Service) error {
	app := &cli.Command{
		EnableShellCompletion: true,
		Name:                  "solsweep",
		Description:           "Command-line interface for the solsweep auto-sweep service.",
		Usage:                 "solsweep [command] [flags]",
		Commands: []*cli.Command{
			serveCommand(srv, mon),
		},
	}

	return app.Run(ctx, os.Args)
}
