// Package sweep implements the reactive core of the auto-sweeper: it turns a
// detected balance change on a watched account into one signed transaction
// forwarding the funds to the account's secure destination, drives that
// transaction to a terminal confirmation state, and records the outcome in
// the transaction ledger.
package sweep

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gabapcia/solsweep/internal/pkg/logger"
	"github.com/gabapcia/solsweep/internal/pkg/resilience/retry"

	"github.com/shopspring/decimal"
)

// ErrNetworkNotRegistered is returned when a balance change references a
// network no gateway was configured for.
var ErrNetworkNotRegistered = errors.New("network not registered")

const (
	// defaultFeeReserveLamports is the conservative network fee estimate
	// held back on native sweeps.
	defaultFeeReserveLamports uint64 = 5_000

	// defaultConfirmTimeout bounds a single confirmation poll.
	defaultConfirmTimeout = 60 * time.Second

	// defaultConfirmAttempts is the total number of confirmation polls
	// before the sweep is abandoned.
	defaultConfirmAttempts uint = 3
)

// Service is the sweep pipeline entrypoint. Implementations run one full
// sweep cycle per invocation: build, submit, confirm, record.
type Service interface {
	// HandleBalanceChange processes one balance change notification for the
	// given account. It never panics and never disturbs the account's
	// subscription; errors are returned for the caller to log.
	//
	// A terminal ledger entry is recorded for every submitted sweep
	// (confirmed or failed). Build failures such as an insufficient balance
	// produce no entry: nothing was submitted.
	HandleBalanceChange(ctx context.Context, account Account, change BalanceChange) error
}

// service is the concrete Service implementation.
type service struct {
	networks map[string]Gateway
	recorder AttemptRecorder

	retry          retry.Retry
	feeReserve     uint64
	confirmTimeout time.Duration
}

var _ Service = (*service)(nil)

// config holds the optional sweep settings.
type config struct {
	retry          retry.Retry
	feeReserve     uint64
	confirmTimeout time.Duration
}

// Option adjusts the sweep service configuration.
type Option func(*config)

// WithFeeReserve overrides the lamports held back on native sweeps to cover
// the network fee.
func WithFeeReserve(lamports uint64) Option {
	return func(c *config) {
		c.feeReserve = lamports
	}
}

// WithConfirmTimeout overrides the per-attempt confirmation poll timeout.
func WithConfirmTimeout(d time.Duration) Option {
	return func(c *config) {
		c.confirmTimeout = d
	}
}

// WithRetry overrides the retry policy used for confirmation polling.
func WithRetry(r retry.Retry) Option {
	return func(c *config) {
		c.retry = r
	}
}

// New creates the sweep service. networks maps cluster identifiers to their
// gateways; recorder receives every terminal sweep attempt.
func New(networks map[string]Gateway, recorder AttemptRecorder, opts ...Option) *service {
	cfg := config{
		retry:          retry.New(retry.WithAttempts(defaultConfirmAttempts)),
		feeReserve:     defaultFeeReserveLamports,
		confirmTimeout: defaultConfirmTimeout,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &service{
		networks:       networks,
		recorder:       recorder,
		retry:          cfg.retry,
		feeReserve:     cfg.feeReserve,
		confirmTimeout: cfg.confirmTimeout,
	}
}

// HandleBalanceChange routes the notification to the native or token sweep
// path depending on the account's asset kind.
func (s *service) HandleBalanceChange(ctx context.Context, account Account, change BalanceChange) error {
	gateway, ok := s.networks[account.Network]
	if !ok {
		return ErrNetworkNotRegistered
	}

	if account.Asset == AssetToken {
		return s.sweepToken(ctx, gateway, account, change)
	}
	return s.sweepNative(ctx, gateway, account, change)
}

// sweepNative builds and submits a native transfer of the observed balance
// minus the fee reserve. A balance below the reserve is a terminal outcome
// for this notification: it is logged and dropped, not retried.
func (s *service) sweepNative(ctx context.Context, gateway Gateway, account Account, change BalanceChange) error {
	op, err := buildNativeSweep(account, change.Amount, s.feeReserve)
	if err != nil {
		if errors.Is(err, ErrInsufficientFunds) {
			logger.Info(ctx, "balance below fee reserve, sweep skipped",
				"account.address", account.Address,
				"balance.lamports", change.Amount,
				"fee.reserve", s.feeReserve,
			)
			return nil
		}
		return err
	}

	amount := naturalAmount(op.Amount, change.Decimals)
	return s.submitAndConfirm(ctx, gateway, account, []Operation{op}, amount)
}

// sweepToken builds and submits the ensure-account/transfer operation pair
// for the full observed token amount.
func (s *service) sweepToken(ctx context.Context, gateway Gateway, account Account, change BalanceChange) error {
	ops, err := s.buildTokenSweep(ctx, gateway, account, change.Amount)
	if err != nil {
		return err
	}

	amount := naturalAmount(change.Amount, change.Decimals)
	return s.submitAndConfirm(ctx, gateway, account, ops, amount)
}

// submitAndConfirm is the shared tail of both sweep paths: submit the
// operations as one transaction, drive it to a terminal confirmation state,
// and record the outcome.
func (s *service) submitAndConfirm(ctx context.Context, gateway Gateway, account Account, ops []Operation, amount decimal.Decimal) error {
	signature, err := gateway.SubmitTransaction(ctx, ops, account.Signer)
	if err != nil {
		s.record(ctx, newAttempt(account, amount, "", StatusFailed, err.Error()))
		return fmt.Errorf("submitting sweep transaction: %w", err)
	}

	logger.Info(ctx, "sweep transaction submitted",
		"account.address", account.Address,
		"account.asset", account.Asset,
		"tx.signature", signature,
	)

	result, err := s.confirmWithRetries(ctx, gateway, signature)
	if err != nil {
		s.record(ctx, newAttempt(account, amount, signature, StatusFailed, err.Error()))
		return fmt.Errorf("confirming sweep transaction: %w", err)
	}

	if result.Failed() {
		logger.Warn(ctx, "sweep transaction failed on chain",
			"account.address", account.Address,
			"tx.signature", signature,
			"tx.error", result.TxErr,
		)
		s.record(ctx, newAttempt(account, amount, signature, StatusFailed, result.TxErr))
		return nil
	}

	logger.Info(ctx, "sweep confirmed",
		"account.address", account.Address,
		"tx.signature", signature,
		"amount", amount,
	)
	s.record(ctx, newAttempt(account, amount, signature, StatusConfirmed, ""))
	return nil
}

// record appends the attempt to the ledger. Recording failures are logged
// but never abort the pipeline; the sweep outcome on chain is already final.
func (s *service) record(ctx context.Context, attempt SweepAttempt) {
	if err := s.recorder.RecordAttempt(ctx, attempt); err != nil {
		logger.Error(ctx, "error recording sweep attempt",
			"attempt.id", attempt.ID,
			"attempt.status", attempt.Status,
			"error", err,
		)
	}
}
