package monitor

import (
	"context"

	"github.com/gabapcia/solsweep/internal/pkg/logger"
	"github.com/gabapcia/solsweep/internal/pkg/validator"
	"github.com/gabapcia/solsweep/internal/pkg/x/chflow"
	"github.com/gabapcia/solsweep/internal/sweep"
)

// Start registers the account and opens its balance subscription. The watch
// lives until Stop or Close; its lifetime is independent of the ctx used for
// the start request itself.
func (s *service) Start(ctx context.Context, account sweep.Account) (string, error) {
	if err := validator.Validate(account); err != nil {
		return "", err
	}

	gateway, ok := s.networks[account.Network]
	if !ok {
		return "", ErrNetworkNotRegistered
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.accounts[account.Address]; exists {
		return "", ErrAlreadyMonitored
	}

	watchCtx, cancel := context.WithCancel(context.Background())

	changesCh, unsubscribe, err := s.subscribe(watchCtx, gateway, account)
	if err != nil {
		cancel()
		return "", err
	}

	s.accounts[account.Address] = &watchedAccount{
		account:     account,
		unsubscribe: unsubscribe,
		cancel:      cancel,
	}

	go s.consume(watchCtx, account, changesCh)

	logger.Info(ctx, "monitoring started",
		"account.address", account.Address,
		"account.asset", account.Asset,
		"account.network", account.Network,
	)
	return account.Address, nil
}

// subscribe opens the subscription matching the account's asset kind. The
// returned unsubscribe func is bound to the same subscription type, so a
// later Stop always uses the matching removal call.
func (s *service) subscribe(ctx context.Context, gateway sweep.Gateway, account sweep.Account) (<-chan sweep.BalanceChange, sweep.UnsubscribeFunc, error) {
	if account.Asset == sweep.AssetToken {
		return gateway.SubscribeTokenBalance(ctx, account.Address, account.TokenMint)
	}
	return gateway.SubscribeBalance(ctx, account.Address)
}

// consume is the single consumer of one account's notification channel.
// Sweeps therefore run strictly one at a time per account: a notification
// arriving mid-sweep waits on the channel until the current pipeline reaches
// a terminal state.
//
// Sweep pipelines run on a context detached from the watch context, so
// stopping the watch cancels future notifications but lets an in-flight
// sweep finish. Pipeline errors are logged and never terminate the loop.
func (s *service) consume(ctx context.Context, account sweep.Account, changesCh <-chan sweep.BalanceChange) {
	sweepCtx := context.WithoutCancel(ctx)

	for {
		change, ok := chflow.Receive(ctx, changesCh)
		if !ok {
			return
		}

		if change.Amount == 0 {
			continue
		}

		if err := s.sweeper.HandleBalanceChange(sweepCtx, account, change); err != nil {
			logger.Error(ctx, "sweep pipeline failed",
				"account.address", account.Address,
				"account.asset", account.Asset,
				"error", err,
			)
		}
	}
}

// Stop removes the account from the registry and tears down its
// subscription.
func (s *service) Stop(ctx context.Context, address string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	watched, ok := s.accounts[address]
	if !ok {
		return ErrNotMonitored
	}

	watched.unsubscribe()
	watched.cancel()
	delete(s.accounts, address)

	logger.Info(ctx, "monitoring stopped", "account.address", address)
	return nil
}

// Addresses returns the addresses currently under watch.
func (s *service) Addresses() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	addresses := make([]string, 0, len(s.accounts))
	for address := range s.accounts {
		addresses = append(addresses, address)
	}
	return addresses
}

// Close tears down every active watch.
func (s *service) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for address, watched := range s.accounts {
		watched.unsubscribe()
		watched.cancel()
		delete(s.accounts, address)
	}
}
