package txledger

import (
	"context"
	"sync"
	"testing"

	"github.com/gabapcia/solsweep/internal/pkg/logger"
	"github.com/gabapcia/solsweep/internal/sweep"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	// Initialize logger for tests to prevent nil pointer dereference
	_ = logger.Init(logger.WithLevel("error"))
}

// broadcasterFunc adapts a function to the Broadcaster interface.
type broadcasterFunc func(ctx context.Context, attempts []sweep.SweepAttempt)

func (f broadcasterFunc) BroadcastLedger(ctx context.Context, attempts []sweep.SweepAttempt) {
	f(ctx, attempts)
}

func newAttempt(id string, status sweep.SweepStatus) sweep.SweepAttempt {
	return sweep.SweepAttempt{
		ID:          id,
		Source:      "source-address",
		Destination: "destination-address",
		Network:     "devnet",
		Asset:       sweep.AssetNative,
		Status:      status,
	}
}

func TestService_RecordAttempt(t *testing.T) {
	t.Run("should append attempts in insertion order", func(t *testing.T) {
		ctx := t.Context()
		s := New()

		require.NoError(t, s.RecordAttempt(ctx, newAttempt("a", sweep.StatusConfirmed)))
		require.NoError(t, s.RecordAttempt(ctx, newAttempt("b", sweep.StatusFailed)))
		require.NoError(t, s.RecordAttempt(ctx, newAttempt("c", sweep.StatusConfirmed)))

		attempts := s.List(ctx)
		require.Len(t, attempts, 3)
		assert.Equal(t, "a", attempts[0].ID)
		assert.Equal(t, "b", attempts[1].ID)
		assert.Equal(t, "c", attempts[2].ID)
	})

	t.Run("should not deduplicate identical attempts", func(t *testing.T) {
		ctx := t.Context()
		s := New()

		attempt := newAttempt("a", sweep.StatusConfirmed)
		require.NoError(t, s.RecordAttempt(ctx, attempt))
		require.NoError(t, s.RecordAttempt(ctx, attempt))

		assert.Len(t, s.List(ctx), 2)
	})

	t.Run("should broadcast the full snapshot on every append", func(t *testing.T) {
		ctx := t.Context()

		var broadcasts [][]sweep.SweepAttempt
		s := New(WithBroadcaster(broadcasterFunc(func(_ context.Context, attempts []sweep.SweepAttempt) {
			broadcasts = append(broadcasts, attempts)
		})))

		require.NoError(t, s.RecordAttempt(ctx, newAttempt("a", sweep.StatusConfirmed)))
		require.NoError(t, s.RecordAttempt(ctx, newAttempt("b", sweep.StatusConfirmed)))

		require.Len(t, broadcasts, 2)
		assert.Len(t, broadcasts[0], 1)
		assert.Len(t, broadcasts[1], 2)
	})
}

func TestService_List(t *testing.T) {
	t.Run("should return an empty snapshot for a fresh ledger", func(t *testing.T) {
		s := New()
		assert.Empty(t, s.List(t.Context()))
	})

	t.Run("should return a copy unaffected by later appends", func(t *testing.T) {
		ctx := t.Context()
		s := New()

		require.NoError(t, s.RecordAttempt(ctx, newAttempt("a", sweep.StatusConfirmed)))
		snapshot := s.List(ctx)

		require.NoError(t, s.RecordAttempt(ctx, newAttempt("b", sweep.StatusConfirmed)))

		assert.Len(t, snapshot, 1)
		assert.Len(t, s.List(ctx), 2)
	})

	t.Run("should keep earlier snapshots as a prefix of later ones", func(t *testing.T) {
		ctx := t.Context()
		s := New()

		require.NoError(t, s.RecordAttempt(ctx, newAttempt("a", sweep.StatusConfirmed)))
		require.NoError(t, s.RecordAttempt(ctx, newAttempt("b", sweep.StatusFailed)))
		first := s.List(ctx)

		require.NoError(t, s.RecordAttempt(ctx, newAttempt("c", sweep.StatusConfirmed)))
		second := s.List(ctx)

		require.GreaterOrEqual(t, len(second), len(first))
		assert.Equal(t, first, second[:len(first)])
	})

	t.Run("should tolerate concurrent appends without losing entries", func(t *testing.T) {
		ctx := t.Context()
		s := New()

		const writers = 16

		var wg sync.WaitGroup
		wg.Add(writers)
		for range writers {
			go func() {
				defer wg.Done()
				_ = s.RecordAttempt(ctx, newAttempt("x", sweep.StatusConfirmed))
			}()
		}
		wg.Wait()

		assert.Len(t, s.List(ctx), writers)
	})
}
