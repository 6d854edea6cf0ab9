package sweep

import (
	"crypto/ed25519"

	"github.com/gabapcia/solsweep/internal/pkg/validator"
)

// AssetKind identifies which asset of a watched account is swept.
type AssetKind string

const (
	// AssetNative sweeps the chain's base currency (SOL).
	AssetNative AssetKind = "native"

	// AssetToken sweeps a specific SPL token balance.
	AssetToken AssetKind = "token"
)

// Keypair is the signing identity of a watched account. The secret key is
// derived externally (see the keyring package) and never leaves the process.
type Keypair struct {
	PublicKey string             // base58-encoded public key
	Secret    ed25519.PrivateKey // ed25519 private key used to sign sweeps
}

// Account describes one address under active surveillance: where detected
// deposits are forwarded, on which network, and for which asset kind.
//
// TokenMint is required exactly when Asset is AssetToken. All fields are
// immutable for the lifetime of the watch.
type Account struct {
	Address     string    `validate:"required"`                   // watched address (source of sweeps)
	Destination string    `validate:"required"`                   // secure wallet receiving swept funds
	Network     string    `validate:"required"`                   // cluster identifier (e.g. "devnet")
	Asset       AssetKind `validate:"required,oneof=native token"`
	TokenMint   string    `validate:"required_if=Asset token"`    // SPL token mint, token asset only
	Signer      Keypair   `validate:"-"`
}

// BuildAccount constructs and validates an Account. The signer's public key
// is used as the watched address.
func BuildAccount(signer Keypair, destination, network string, tokenMint string) (Account, error) {
	asset := AssetNative
	if tokenMint != "" {
		asset = AssetToken
	}

	account := Account{
		Address:     signer.PublicKey,
		Destination: destination,
		Network:     network,
		Asset:       asset,
		TokenMint:   tokenMint,
		Signer:      signer,
	}

	return account, validator.Validate(account)
}
