package keyring

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testMnemonic is the well-known BIP-39 test vector phrase.
var testMnemonic = strings.Fields("abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about")

func TestFromSeedPhrase(t *testing.T) {
	t.Run("should derive a keypair from a valid phrase", func(t *testing.T) {
		keypair, err := FromSeedPhrase(testMnemonic)
		require.NoError(t, err)

		assert.NotEmpty(t, keypair.PublicKey)
		assert.Len(t, keypair.Secret, 64)
	})

	t.Run("should be deterministic", func(t *testing.T) {
		first, err := FromSeedPhrase(testMnemonic)
		require.NoError(t, err)

		second, err := FromSeedPhrase(testMnemonic)
		require.NoError(t, err)

		assert.Equal(t, first.PublicKey, second.PublicKey)
		assert.Equal(t, first.Secret, second.Secret)
	})

	t.Run("should normalize casing and surrounding whitespace", func(t *testing.T) {
		upper := make([]string, len(testMnemonic))
		for i, word := range testMnemonic {
			upper[i] = strings.ToUpper(word)
		}
		upper[0] = "  " + upper[0]

		first, err := FromSeedPhrase(testMnemonic)
		require.NoError(t, err)

		second, err := FromSeedPhrase(upper)
		require.NoError(t, err)

		assert.Equal(t, first.PublicKey, second.PublicKey)
	})

	t.Run("should reject an empty phrase", func(t *testing.T) {
		_, err := FromSeedPhrase(nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidSeedPhrase)
	})

	t.Run("should reject a phrase with an invalid checksum", func(t *testing.T) {
		invalid := append([]string(nil), testMnemonic...)
		invalid[len(invalid)-1] = "abandon"

		_, err := FromSeedPhrase(invalid)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidSeedPhrase)
	})
}
