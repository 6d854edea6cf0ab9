// Package solana implements the sweep.Gateway interface on top of the
// solana-go SDK: balance subscriptions over the websocket API, transaction
// submission and confirmation polling over JSON-RPC, and associated token
// account resolution.
package solana

import (
	"context"
	"errors"
	"time"

	"github.com/gabapcia/solsweep/internal/sweep"

	"github.com/gagliardetto/solana-go/rpc"
	"github.com/gagliardetto/solana-go/rpc/jsonrpc"
	"github.com/gagliardetto/solana-go/rpc/ws"
	retryablehttp "github.com/hashicorp/go-retryablehttp"
)

// ErrUnknownCluster is returned when a cluster name has no known public
// endpoints.
var ErrUnknownCluster = errors.New("unknown cluster")

// defaultConfirmPollInterval spaces out consecutive signature status polls.
const defaultConfirmPollInterval = 2 * time.Second

// Client implements sweep.Gateway for one Solana cluster.
type Client struct {
	rpc *rpc.Client
	ws  *ws.Client

	commitment   rpc.CommitmentType
	pollInterval time.Duration
}

var _ sweep.Gateway = (*Client)(nil)

// ClusterEndpoints returns the public RPC and websocket endpoints of a named
// cluster.
func ClusterEndpoints(cluster string) (string, string, error) {
	switch cluster {
	case "mainnet-beta":
		return rpc.MainNetBeta_RPC, rpc.MainNetBeta_WS, nil
	case "devnet":
		return rpc.DevNet_RPC, rpc.DevNet_WS, nil
	case "testnet":
		return rpc.TestNet_RPC, rpc.TestNet_WS, nil
	case "localnet":
		return rpc.LocalNet_RPC, rpc.LocalNet_WS, nil
	default:
		return "", "", ErrUnknownCluster
	}
}

// NewClient connects to the given RPC and websocket endpoints. The RPC
// transport retries transient HTTP failures; the websocket connection is
// established eagerly so wiring fails fast on a bad endpoint.
func NewClient(ctx context.Context, rpcEndpoint, wsEndpoint string) (*Client, error) {
	httpClient := retryablehttp.NewClient()
	httpClient.Logger = nil

	rpcClient := rpc.NewWithCustomRPCClient(jsonrpc.NewClientWithOpts(rpcEndpoint, &jsonrpc.RPCClientOpts{
		HTTPClient: httpClient.StandardClient(),
	}))

	wsClient, err := ws.Connect(ctx, wsEndpoint)
	if err != nil {
		return nil, err
	}

	return &Client{
		rpc:          rpcClient,
		ws:           wsClient,
		commitment:   rpc.CommitmentConfirmed,
		pollInterval: defaultConfirmPollInterval,
	}, nil
}

// NewClientForCluster connects to the public endpoints of a named cluster.
func NewClientForCluster(ctx context.Context, cluster string) (*Client, error) {
	rpcEndpoint, wsEndpoint, err := ClusterEndpoints(cluster)
	if err != nil {
		return nil, err
	}

	return NewClient(ctx, rpcEndpoint, wsEndpoint)
}

// Close tears down the websocket connection.
func (c *Client) Close() {
	c.ws.Close()
}
