package sweep

import "context"

// NativeDecimals is the decimal count of the native asset (lamports per SOL).
const NativeDecimals uint8 = 9

// BalanceChange is one notification delivered by a balance subscription. It
// carries the full observed balance after the change, in the asset's
// smallest unit, together with the decimal count needed to express it in the
// asset's natural unit.
type BalanceChange struct {
	Amount   uint64 // observed balance, smallest unit (lamports or raw token amount)
	Decimals uint8  // decimals of the asset (9 for SOL, mint decimals for tokens)
}

// UnsubscribeFunc tears down a live balance subscription. It is safe to call
// once; the subscription's notification channel is closed afterwards.
type UnsubscribeFunc func()

// OperationKind discriminates the ledger operations a sweep may submit.
type OperationKind string

const (
	// OpNativeTransfer moves lamports from the watched account to the
	// destination wallet.
	OpNativeTransfer OperationKind = "native-transfer"

	// OpEnsureTokenAccount creates the destination's associated token
	// account for a mint. It is a no-op when the account already exists.
	OpEnsureTokenAccount OperationKind = "ensure-token-account"

	// OpTokenTransfer moves a raw token amount between the source and
	// destination associated token accounts of a mint.
	OpTokenTransfer OperationKind = "token-transfer"
)

// Operation is one ledger operation ready for submission. Source and
// Destination are owner addresses; gateway implementations derive the
// concrete token accounts for token operations from the mint.
type Operation struct {
	Kind        OperationKind
	Source      string // owner address funds move from
	Destination string // owner address funds move to
	Mint        string // token mint, empty on the native path
	Amount      uint64 // smallest-unit amount, zero for ensure operations
}

// TokenAccount is the result of resolving an owner's associated token
// account for a mint. The address is deterministic and valid even when the
// account has not been created yet.
type TokenAccount struct {
	Address string
	Exists  bool
}

// ConfirmationResult is the gateway's answer to a confirmation poll. A
// non-empty TxErr means the transaction reached a terminal state but failed
// on chain; that is an answer, not a transport failure.
type ConfirmationResult struct {
	TxErr string
}

// Failed reports whether the confirmed transaction failed on chain.
func (r ConfirmationResult) Failed() bool {
	return r.TxErr != ""
}

// Gateway abstracts the blockchain client consumed by the sweep pipeline:
// balance subscriptions, transaction submission and confirmation polling.
type Gateway interface {
	// SubscribeBalance opens a native balance subscription for address. Each
	// change notification carries the new total balance in lamports. The
	// returned channel is closed when ctx is canceled or the subscription is
	// torn down via the UnsubscribeFunc.
	SubscribeBalance(ctx context.Context, address string) (<-chan BalanceChange, UnsubscribeFunc, error)

	// SubscribeTokenBalance opens a token balance subscription for the
	// owner's associated token account of mint. Notifications carry the raw
	// token amount and the mint's decimals.
	SubscribeTokenBalance(ctx context.Context, owner, mint string) (<-chan BalanceChange, UnsubscribeFunc, error)

	// ResolveTokenAccount resolves the owner's associated token account for
	// mint and reports whether it exists on chain yet.
	ResolveTokenAccount(ctx context.Context, owner, mint string) (TokenAccount, error)

	// SubmitTransaction bundles the given operations into a single
	// transaction signed by signer, submits it, and returns the transaction
	// signature. All operations are applied atomically or not at all.
	SubmitTransaction(ctx context.Context, ops []Operation, signer Keypair) (string, error)

	// ConfirmTransaction polls the signature's confirmation status at the
	// "confirmed" commitment level until it reaches a terminal state or ctx
	// expires. Transport and timeout failures are returned as errors and may
	// be retried by the caller.
	ConfirmTransaction(ctx context.Context, signature string) (ConfirmationResult, error)
}
