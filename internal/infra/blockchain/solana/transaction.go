package solana

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/gabapcia/solsweep/internal/sweep"

	solanago "github.com/gagliardetto/solana-go"
	associatedtokenaccount "github.com/gagliardetto/solana-go/programs/associated-token-account"
	"github.com/gagliardetto/solana-go/programs/system"
	"github.com/gagliardetto/solana-go/programs/token"
	"github.com/gagliardetto/solana-go/rpc"
)

// ResolveTokenAccount derives the owner's associated token account for mint
// and checks whether it has been created on chain yet.
func (c *Client) ResolveTokenAccount(ctx context.Context, ownerAddress, mintAddress string) (sweep.TokenAccount, error) {
	owner, err := solanago.PublicKeyFromBase58(ownerAddress)
	if err != nil {
		return sweep.TokenAccount{}, fmt.Errorf("invalid owner address: %w", err)
	}

	mint, err := solanago.PublicKeyFromBase58(mintAddress)
	if err != nil {
		return sweep.TokenAccount{}, fmt.Errorf("invalid mint address: %w", err)
	}

	tokenAccount, _, err := solanago.FindAssociatedTokenAddress(owner, mint)
	if err != nil {
		return sweep.TokenAccount{}, fmt.Errorf("deriving associated token account: %w", err)
	}

	_, err = c.rpc.GetAccountInfo(ctx, tokenAccount)
	switch {
	case errors.Is(err, rpc.ErrNotFound):
		return sweep.TokenAccount{Address: tokenAccount.String(), Exists: false}, nil
	case err != nil:
		return sweep.TokenAccount{}, fmt.Errorf("fetching token account %s: %w", tokenAccount, err)
	}

	return sweep.TokenAccount{Address: tokenAccount.String(), Exists: true}, nil
}

// SubmitTransaction maps the operations to program instructions, signs the
// resulting transaction with the signer key and submits it. The signer is
// also the fee payer.
func (c *Client) SubmitTransaction(ctx context.Context, ops []sweep.Operation, signer sweep.Keypair) (string, error) {
	payer, err := solanago.PublicKeyFromBase58(signer.PublicKey)
	if err != nil {
		return "", fmt.Errorf("invalid signer public key: %w", err)
	}

	instructions := make([]solanago.Instruction, 0, len(ops))
	for _, op := range ops {
		instruction, err := buildInstruction(op, payer)
		if err != nil {
			return "", err
		}

		instructions = append(instructions, instruction)
	}

	blockhash, err := c.rpc.GetLatestBlockhash(ctx, c.commitment)
	if err != nil {
		return "", fmt.Errorf("fetching latest blockhash: %w", err)
	}

	tx, err := solanago.NewTransaction(instructions, blockhash.Value.Blockhash, solanago.TransactionPayer(payer))
	if err != nil {
		return "", fmt.Errorf("building transaction: %w", err)
	}

	privateKey := solanago.PrivateKey(signer.Secret)
	if _, err := tx.Sign(func(key solanago.PublicKey) *solanago.PrivateKey {
		if key.Equals(payer) {
			return &privateKey
		}
		return nil
	}); err != nil {
		return "", fmt.Errorf("signing transaction: %w", err)
	}

	signature, err := c.rpc.SendTransactionWithOpts(ctx, tx, rpc.TransactionOpts{
		PreflightCommitment: c.commitment,
	})
	if err != nil {
		return "", fmt.Errorf("sending transaction: %w", err)
	}

	return signature.String(), nil
}

// buildInstruction translates one sweep operation into its program
// instruction. Token operations move between the associated token accounts
// derived from the owner addresses and the mint.
func buildInstruction(op sweep.Operation, payer solanago.PublicKey) (solanago.Instruction, error) {
	switch op.Kind {
	case sweep.OpNativeTransfer:
		source, err := solanago.PublicKeyFromBase58(op.Source)
		if err != nil {
			return nil, fmt.Errorf("invalid source address: %w", err)
		}

		destination, err := solanago.PublicKeyFromBase58(op.Destination)
		if err != nil {
			return nil, fmt.Errorf("invalid destination address: %w", err)
		}

		return system.NewTransferInstruction(op.Amount, source, destination).Build(), nil

	case sweep.OpEnsureTokenAccount:
		destination, err := solanago.PublicKeyFromBase58(op.Destination)
		if err != nil {
			return nil, fmt.Errorf("invalid destination address: %w", err)
		}

		mint, err := solanago.PublicKeyFromBase58(op.Mint)
		if err != nil {
			return nil, fmt.Errorf("invalid mint address: %w", err)
		}

		return associatedtokenaccount.NewCreateInstruction(payer, destination, mint).Build(), nil

	case sweep.OpTokenTransfer:
		source, err := solanago.PublicKeyFromBase58(op.Source)
		if err != nil {
			return nil, fmt.Errorf("invalid source address: %w", err)
		}

		destination, err := solanago.PublicKeyFromBase58(op.Destination)
		if err != nil {
			return nil, fmt.Errorf("invalid destination address: %w", err)
		}

		mint, err := solanago.PublicKeyFromBase58(op.Mint)
		if err != nil {
			return nil, fmt.Errorf("invalid mint address: %w", err)
		}

		sourceTokenAccount, _, err := solanago.FindAssociatedTokenAddress(source, mint)
		if err != nil {
			return nil, fmt.Errorf("deriving source token account: %w", err)
		}

		destinationTokenAccount, _, err := solanago.FindAssociatedTokenAddress(destination, mint)
		if err != nil {
			return nil, fmt.Errorf("deriving destination token account: %w", err)
		}

		return token.NewTransferInstruction(op.Amount, sourceTokenAccount, destinationTokenAccount, source, nil).Build(), nil

	default:
		return nil, fmt.Errorf("unsupported operation kind %q", op.Kind)
	}
}

// ConfirmTransaction polls the signature status until the transaction reaches
// the configured commitment or ctx expires. An on-chain execution error is a
// terminal answer and is reported in the result rather than as an error.
func (c *Client) ConfirmTransaction(ctx context.Context, signature string) (sweep.ConfirmationResult, error) {
	sig, err := solanago.SignatureFromBase58(signature)
	if err != nil {
		return sweep.ConfirmationResult{}, fmt.Errorf("invalid transaction signature: %w", err)
	}

	ticker := time.NewTicker(c.pollInterval)
	defer ticker.Stop()

	for {
		statuses, err := c.rpc.GetSignatureStatuses(ctx, true, sig)
		if err != nil {
			return sweep.ConfirmationResult{}, fmt.Errorf("fetching signature status: %w", err)
		}

		if len(statuses.Value) > 0 && statuses.Value[0] != nil {
			status := statuses.Value[0]

			if status.Err != nil {
				return sweep.ConfirmationResult{TxErr: formatTxErr(status.Err)}, nil
			}

			switch status.ConfirmationStatus {
			case rpc.ConfirmationStatusConfirmed, rpc.ConfirmationStatusFinalized:
				return sweep.ConfirmationResult{}, nil
			}
		}

		select {
		case <-ctx.Done():
			return sweep.ConfirmationResult{}, ctx.Err()
		case <-ticker.C:
		}
	}
}

// formatTxErr renders the RPC's structured transaction error as a string for
// the sweep record.
func formatTxErr(txErr any) string {
	raw, err := json.Marshal(txErr)
	if err != nil {
		return fmt.Sprintf("%v", txErr)
	}

	return string(raw)
}
