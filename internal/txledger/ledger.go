// Package txledger keeps the append-only, in-memory record of sweep
// attempts. Entries live for the lifetime of the process, preserve insertion
// order, and are never mutated or removed once appended. Reads return
// point-in-time snapshots so callers never observe a partially appended
// state.
package txledger

import (
	"context"
	"slices"
	"sync"

	"github.com/gabapcia/solsweep/internal/pkg/logger"
	"github.com/gabapcia/solsweep/internal/sweep"
)

// Broadcaster pushes the full ledger snapshot to connected streaming clients
// whenever a new attempt is appended.
type Broadcaster interface {
	// BroadcastLedger delivers the snapshot to every connected client.
	// Delivery failures to individual clients must not affect the ledger.
	BroadcastLedger(ctx context.Context, attempts []sweep.SweepAttempt)
}

// Service is the transaction ledger: an ordered, append-only sequence of
// sweep attempts.
type Service interface {
	// RecordAttempt appends the attempt to the ledger. Appends are
	// unconditional; no deduplication is applied.
	RecordAttempt(ctx context.Context, attempt sweep.SweepAttempt) error

	// List returns a snapshot of the full ledger as of the call. Entries
	// appended before the call are always included, in append order.
	List(ctx context.Context) []sweep.SweepAttempt
}

// service is the concrete in-memory ledger.
type service struct {
	mu       sync.RWMutex
	attempts []sweep.SweepAttempt

	broadcaster Broadcaster
}

var (
	_ Service               = (*service)(nil)
	_ sweep.AttemptRecorder = (*service)(nil)
)

// config holds optional ledger settings.
type config struct {
	broadcaster Broadcaster
}

// Option adjusts the ledger configuration.
type Option func(*config)

// WithBroadcaster attaches a push channel notified with the full snapshot on
// every append.
func WithBroadcaster(b Broadcaster) Option {
	return func(c *config) {
		c.broadcaster = b
	}
}

// New creates an empty in-memory transaction ledger.
func New(opts ...Option) *service {
	cfg := config{}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &service{
		broadcaster: cfg.broadcaster,
	}
}

// RecordAttempt appends the attempt and, when a broadcaster is configured,
// pushes the resulting snapshot to all streaming clients.
func (s *service) RecordAttempt(ctx context.Context, attempt sweep.SweepAttempt) error {
	s.mu.Lock()
	s.attempts = append(s.attempts, attempt)
	snapshot := slices.Clone(s.attempts)
	s.mu.Unlock()

	logger.Debug(ctx, "sweep attempt recorded",
		"attempt.id", attempt.ID,
		"attempt.status", attempt.Status,
		"ledger.size", len(snapshot),
	)

	if s.broadcaster != nil {
		s.broadcaster.BroadcastLedger(ctx, snapshot)
	}

	return nil
}

// List returns a copy of the ledger as of the call.
func (s *service) List(ctx context.Context) []sweep.SweepAttempt {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.attempts)
}
