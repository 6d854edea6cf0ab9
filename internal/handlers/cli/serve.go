package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gabapcia/solsweep/internal/handlers/httpapi"
	"github.com/gabapcia/solsweep/internal/monitor"
	"github.com/gabapcia/solsweep/internal/pkg/logger"

	"github.com/urfave/cli/v3"
)

const shutdownTimeout = 10 * time.Second

// serveCommand returns the CLI command that runs the HTTP API and the sweep
// pipeline until an interrupt arrives.
//
// Usage example:
//
//	solsweep serve
//
// The process runs indefinitely until it receives an interrupt (SIGINT or
// SIGTERM), then drains in-flight requests and stops all active watches.
func serveCommand(srv *httpapi.Server, mon monitor.Service) *cli.Command {
	return &cli.Command{
		Name:        "serve",
		Description: "Starts the HTTP API and the account monitoring pipeline.",
		Usage:       "Serves until Ctrl+C or a termination signal, then shuts down gracefully.",
		Action: func(ctx context.Context, c *cli.Command) error {
			quit := make(chan os.Signal, 1)
			defer close(quit)

			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

			serveErr := make(chan error, 1)
			go func() {
				serveErr <- srv.Start()
			}()
			defer mon.Close()

			select {
			case err := <-serveErr:
				return err
			case sig := <-quit:
				logger.Info(ctx, "shutting down", "signal", sig.String())
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()

			return srv.Shutdown(shutdownCtx)
		},
	}
}
