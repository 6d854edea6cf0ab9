// Package keyring derives the signing keypair of a watched account from its
// recovery phrase. Derivation is deterministic: the same phrase always
// yields the same keypair.
package keyring

import (
	"crypto/ed25519"
	"errors"
	"strings"

	"github.com/gabapcia/solsweep/internal/sweep"

	solanago "github.com/gagliardetto/solana-go"
	bip39 "github.com/tyler-smith/go-bip39"
)

// ErrInvalidSeedPhrase is returned when the recovery phrase is empty or not
// a valid BIP-39 mnemonic.
var ErrInvalidSeedPhrase = errors.New("invalid recovery phrase")

// FromSeedPhrase derives an ed25519 signing keypair from a BIP-39 recovery
// phrase given as its word list. The mnemonic is expanded into a seed with
// an empty passphrase and the first 32 bytes seed the ed25519 key.
func FromSeedPhrase(words []string) (sweep.Keypair, error) {
	mnemonic := strings.ToLower(strings.TrimSpace(strings.Join(words, " ")))
	if !bip39.IsMnemonicValid(mnemonic) {
		return sweep.Keypair{}, ErrInvalidSeedPhrase
	}

	seed := bip39.NewSeed(mnemonic, "")
	secret := ed25519.NewKeyFromSeed(seed[:ed25519.SeedSize])

	publicKey := solanago.PublicKeyFromBytes(secret.Public().(ed25519.PublicKey))

	return sweep.Keypair{
		PublicKey: publicKey.String(),
		Secret:    secret,
	}, nil
}
