package sweep

import (
	"context"
	"math/big"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SweepStatus is the terminal (or last known) state of a sweep attempt.
type SweepStatus string

const (
	// StatusSubmitted means the transaction was accepted by the gateway but
	// its confirmation outcome is not yet known.
	StatusSubmitted SweepStatus = "submitted"

	// StatusConfirmed means the transaction reached the "confirmed"
	// commitment level and succeeded on chain.
	StatusConfirmed SweepStatus = "confirmed"

	// StatusFailed means the sweep was abandoned: the submission was
	// rejected, confirmation polling was exhausted, or the transaction
	// failed on chain. Reason carries the cause.
	StatusFailed SweepStatus = "failed"
)

// SweepAttempt is one observed-balance-change to transfer-submission cycle.
// Attempts are immutable once recorded; status transitions happen before the
// record is appended, never after.
type SweepAttempt struct {
	ID          string          `json:"id"`
	Source      string          `json:"sourceAddress"`
	Destination string          `json:"destinationAddress"`
	Network     string          `json:"network"`
	Asset       AssetKind       `json:"assetKind"`
	TokenMint   string          `json:"tokenMintAddress,omitempty"`
	Amount      decimal.Decimal `json:"amount"` // natural unit (SOL or token units)
	Signature   string          `json:"signature,omitempty"`
	Status      SweepStatus     `json:"status"`
	Reason      string          `json:"reason,omitempty"` // failure cause, failed attempts only
	Timestamp   time.Time       `json:"timestamp"`
}

// AttemptRecorder receives every terminal sweep attempt for the append-only
// transaction ledger.
type AttemptRecorder interface {
	// RecordAttempt appends the attempt to the ledger. Implementations must
	// preserve insertion order and never drop a recorded attempt.
	RecordAttempt(ctx context.Context, attempt SweepAttempt) error
}

// naturalAmount converts a smallest-unit amount into the asset's natural
// unit using the given decimal count.
func naturalAmount(raw uint64, decimals uint8) decimal.Decimal {
	return decimal.NewFromBigInt(new(big.Int).SetUint64(raw), -int32(decimals))
}

// newAttempt builds a SweepAttempt snapshot for the given account and
// outcome, stamped with a fresh ID and the current time.
func newAttempt(account Account, amount decimal.Decimal, signature string, status SweepStatus, reason string) SweepAttempt {
	return SweepAttempt{
		ID:          uuid.NewString(),
		Source:      account.Address,
		Destination: account.Destination,
		Network:     account.Network,
		Asset:       account.Asset,
		TokenMint:   account.TokenMint,
		Amount:      amount,
		Signature:   signature,
		Status:      status,
		Reason:      reason,
		Timestamp:   time.Now().UTC(),
	}
}
