package solana

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"github.com/gabapcia/solsweep/internal/pkg/logger"
	"github.com/gabapcia/solsweep/internal/pkg/x/chflow"
	"github.com/gabapcia/solsweep/internal/sweep"

	solanago "github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc/ws"
)

// balanceChangeBufferSize absorbs notification bursts while the consumer is
// busy sweeping.
const balanceChangeBufferSize = 10

// SubscribeBalance watches the native lamport balance of an account. Every
// account notification is forwarded as a balance change carrying the new
// lamport total.
func (c *Client) SubscribeBalance(ctx context.Context, address string) (<-chan sweep.BalanceChange, sweep.UnsubscribeFunc, error) {
	account, err := solanago.PublicKeyFromBase58(address)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid account address: %w", err)
	}

	return c.subscribeAccount(ctx, account, func(ctx context.Context, result *ws.AccountResult) (sweep.BalanceChange, error) {
		return sweep.BalanceChange{
			Amount:   result.Value.Lamports,
			Decimals: sweep.NativeDecimals,
		}, nil
	})
}

// SubscribeTokenBalance watches the associated token account of an owner for
// a given mint. The websocket notification does not carry the parsed token
// amount, so each one triggers a balance fetch at the same commitment.
func (c *Client) SubscribeTokenBalance(ctx context.Context, ownerAddress, mintAddress string) (<-chan sweep.BalanceChange, sweep.UnsubscribeFunc, error) {
	owner, err := solanago.PublicKeyFromBase58(ownerAddress)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid owner address: %w", err)
	}

	mint, err := solanago.PublicKeyFromBase58(mintAddress)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid mint address: %w", err)
	}

	tokenAccount, _, err := solanago.FindAssociatedTokenAddress(owner, mint)
	if err != nil {
		return nil, nil, fmt.Errorf("deriving associated token account: %w", err)
	}

	return c.subscribeAccount(ctx, tokenAccount, func(ctx context.Context, _ *ws.AccountResult) (sweep.BalanceChange, error) {
		return c.fetchTokenBalance(ctx, tokenAccount)
	})
}

// subscribeAccount opens an account subscription and pumps its notifications
// through the translate function into a buffered channel. The channel is
// closed when the subscription ends, whether by unsubscribe, context
// cancellation or a websocket failure.
func (c *Client) subscribeAccount(ctx context.Context, account solanago.PublicKey, translate func(context.Context, *ws.AccountResult) (sweep.BalanceChange, error)) (<-chan sweep.BalanceChange, sweep.UnsubscribeFunc, error) {
	sub, err := c.ws.AccountSubscribe(account, c.commitment)
	if err != nil {
		return nil, nil, fmt.Errorf("subscribing to account %s: %w", account, err)
	}

	watchCtx, cancel := context.WithCancel(ctx)
	changes := make(chan sweep.BalanceChange, balanceChangeBufferSize)

	go func() {
		defer close(changes)
		defer sub.Unsubscribe()

		for {
			result, err := sub.Recv(watchCtx)
			if err != nil {
				if watchCtx.Err() == nil {
					logger.Error(watchCtx, "account subscription closed", "account", account.String(), "error", err)
				}
				return
			}

			change, err := translate(watchCtx, result)
			if err != nil {
				logger.Error(watchCtx, "translating account notification", "account", account.String(), "error", err)
				continue
			}

			if !chflow.Send(watchCtx, changes, change) {
				return
			}
		}
	}()

	var once sync.Once
	unsubscribe := func() {
		once.Do(cancel)
	}

	return changes, unsubscribe, nil
}

// fetchTokenBalance reads the current raw token amount and decimals of a
// token account.
func (c *Client) fetchTokenBalance(ctx context.Context, tokenAccount solanago.PublicKey) (sweep.BalanceChange, error) {
	balance, err := c.rpc.GetTokenAccountBalance(ctx, tokenAccount, c.commitment)
	if err != nil {
		return sweep.BalanceChange{}, fmt.Errorf("fetching token balance for %s: %w", tokenAccount, err)
	}

	amount, err := strconv.ParseUint(balance.Value.Amount, 10, 64)
	if err != nil {
		return sweep.BalanceChange{}, fmt.Errorf("parsing token amount %q: %w", balance.Value.Amount, err)
	}

	return sweep.BalanceChange{
		Amount:   amount,
		Decimals: balance.Value.Decimals,
	}, nil
}
