package main

import (
	"context"
	"os"

	"github.com/gabapcia/solsweep/internal/config"
	"github.com/gabapcia/solsweep/internal/handlers/cli"
	"github.com/gabapcia/solsweep/internal/handlers/httpapi"
	"github.com/gabapcia/solsweep/internal/infra/blockchain/solana"
	"github.com/gabapcia/solsweep/internal/monitor"
	"github.com/gabapcia/solsweep/internal/pkg/logger"
	"github.com/gabapcia/solsweep/internal/pkg/resilience/retry"
	"github.com/gabapcia/solsweep/internal/pkg/telemetry"
	"github.com/gabapcia/solsweep/internal/pkg/validator"
	"github.com/gabapcia/solsweep/internal/sweep"
	"github.com/gabapcia/solsweep/internal/txledger"
)

func main() {
	ctx := context.Background()

	validator.Init()

	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("loading configuration: " + err.Error() + "\n")
		os.Exit(1)
	}

	if cfg.TelemetryEnabled {
		shutdown, err := telemetry.Init(ctx, cfg.ServiceName)
		if err != nil {
			os.Stderr.WriteString("initializing telemetry: " + err.Error() + "\n")
			os.Exit(1)
		}
		defer shutdown(ctx)
	}

	if err := logger.Init(logger.WithLevel(cfg.LogLevel)); err != nil {
		os.Stderr.WriteString("initializing logger: " + err.Error() + "\n")
		os.Exit(1)
	}
	defer logger.Sync()

	networks, closeNetworks, err := buildGateways(ctx, cfg)
	if err != nil {
		logger.Fatal(ctx, "connecting to solana clusters", "error", err)
	}
	defer closeNetworks()

	hub := httpapi.NewHub()
	ledger := txledger.New(txledger.WithBroadcaster(hub))

	sweeper := sweep.New(networks, ledger,
		sweep.WithFeeReserve(cfg.FeeReserveLamports),
		sweep.WithConfirmTimeout(cfg.ConfirmationTimeout),
		sweep.WithRetry(retry.New(retry.WithAttempts(cfg.ConfirmationAttempts))),
	)

	mon := monitor.New(networks, sweeper)

	srv := httpapi.NewServer(cfg.HTTPAddress, mon, ledger, hub)

	if err := cli.Run(ctx, srv, mon); err != nil {
		logger.Fatal(ctx, "running solsweep", "error", err)
	}
}

// buildGateways connects one gateway per configured network. Endpoint
// overrides replace the cluster's public endpoints.
func buildGateways(ctx context.Context, cfg config.Config) (map[string]sweep.Gateway, func(), error) {
	clients := make([]interface{ Close() }, 0, len(cfg.Networks))
	closeAll := func() {
		for _, c := range clients {
			c.Close()
		}
	}

	networks := make(map[string]sweep.Gateway, len(cfg.Networks))
	for _, network := range cfg.Networks {
		var (
			client *solana.Client
			err    error
		)

		if cfg.RPCEndpoint != "" {
			client, err = solana.NewClient(ctx, cfg.RPCEndpoint, cfg.WSEndpoint)
		} else {
			client, err = solana.NewClientForCluster(ctx, network)
		}
		if err != nil {
			closeAll()
			return nil, nil, err
		}

		clients = append(clients, client)
		networks[network] = client
	}

	return networks, closeAll, nil
}
