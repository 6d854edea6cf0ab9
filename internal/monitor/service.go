// Package monitor owns the per-account monitoring lifecycle: it keeps the
// registry of watched accounts, opens one balance subscription per account
// through the configured gateway, and feeds every notification into the
// sweep pipeline. Starting and stopping a watch is idempotent at the level
// the registry can observe: a duplicate start is rejected, a stop on an
// unknown address reports ErrNotMonitored.
package monitor

import (
	"context"
	"errors"
	"sync"

	"github.com/gabapcia/solsweep/internal/sweep"
)

var (
	// ErrAlreadyMonitored is returned by Start when an active watch exists
	// for the address. The caller must stop the existing watch first;
	// silently replacing it would leak the live subscription.
	ErrAlreadyMonitored = errors.New("address is already being monitored")

	// ErrNotMonitored is returned by Stop when no active watch exists for
	// the address.
	ErrNotMonitored = errors.New("no active monitoring for address")

	// ErrNetworkNotRegistered is returned by Start when the account's
	// network has no configured gateway.
	ErrNetworkNotRegistered = errors.New("network not registered")
)

// Service manages the set of actively watched accounts.
type Service interface {
	// Start opens a balance subscription for the account and begins feeding
	// its notifications into the sweep pipeline. It returns the watched
	// address on success, ErrAlreadyMonitored when a watch already exists,
	// or ErrNetworkNotRegistered for an unknown network.
	Start(ctx context.Context, account sweep.Account) (string, error)

	// Stop tears down the subscription for the address and removes it from
	// the registry. A sweep already in flight for a previously delivered
	// notification runs to completion. Returns ErrNotMonitored when no
	// watch exists.
	Stop(ctx context.Context, address string) error

	// Addresses returns the addresses currently under watch.
	Addresses() []string

	// Close stops every active watch. It is safe to call more than once.
	Close()
}

// watchedAccount pairs an account with its live subscription handle.
type watchedAccount struct {
	account     sweep.Account
	unsubscribe sweep.UnsubscribeFunc
	cancel      context.CancelFunc
}

// service is the concrete registry implementation.
type service struct {
	mu       sync.Mutex
	accounts map[string]*watchedAccount

	networks map[string]sweep.Gateway
	sweeper  sweep.Service
}

var _ Service = (*service)(nil)

// New creates the monitoring registry. networks maps cluster identifiers to
// their gateways; sweeper processes every delivered balance change.
func New(networks map[string]sweep.Gateway, sweeper sweep.Service) *service {
	return &service{
		accounts: make(map[string]*watchedAccount),
		networks: networks,
		sweeper:  sweeper,
	}
}
