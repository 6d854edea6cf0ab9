package sweep

import (
	"context"
	"errors"
	"fmt"
)

// ErrInsufficientFunds is returned by the native builder when the observed
// balance does not cover the fee reserve. The notification is dropped; there
// is nothing worth sweeping and no transaction is submitted.
var ErrInsufficientFunds = errors.New("observed balance does not cover the fee reserve")

// buildNativeSweep constructs the single transfer operation for a native
// balance sweep. The fee reserve is held back so the watched account can pay
// the network fee; if nothing remains after the deduction, the sweep is
// rejected with ErrInsufficientFunds.
func buildNativeSweep(account Account, observedBalance, feeReserve uint64) (Operation, error) {
	if observedBalance <= feeReserve {
		return Operation{}, ErrInsufficientFunds
	}

	op := Operation{
		Kind:        OpNativeTransfer,
		Source:      account.Address,
		Destination: account.Destination,
		Amount:      observedBalance - feeReserve,
	}
	return op, nil
}

// buildTokenSweep constructs the ordered operation list for a token sweep:
// an ensure-associated-account operation when the destination's token
// account does not exist yet, followed by the transfer of the full observed
// amount. Both operations are submitted atomically in one transaction, so a
// created account without a completed transfer cannot occur.
//
// Token sweeps apply no minimum threshold: the transferred amount carries no
// destination-side fee deduction, so any positive amount is swept.
func (s *service) buildTokenSweep(ctx context.Context, gateway Gateway, account Account, observedAmount uint64) ([]Operation, error) {
	tokenAccount, err := gateway.ResolveTokenAccount(ctx, account.Destination, account.TokenMint)
	if err != nil {
		return nil, fmt.Errorf("resolving destination token account: %w", err)
	}

	ops := make([]Operation, 0, 2)
	if !tokenAccount.Exists {
		ops = append(ops, Operation{
			Kind:        OpEnsureTokenAccount,
			Source:      account.Address,
			Destination: account.Destination,
			Mint:        account.TokenMint,
		})
	}

	ops = append(ops, Operation{
		Kind:        OpTokenTransfer,
		Source:      account.Address,
		Destination: account.Destination,
		Mint:        account.TokenMint,
		Amount:      observedAmount,
	})

	return ops, nil
}
