package config

import (
	"testing"
	"time"

	"github.com/gabapcia/solsweep/internal/pkg/validator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	validator.Init()
}

func TestLoad(t *testing.T) {
	t.Run("should apply defaults when the environment is empty", func(t *testing.T) {
		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, ":8080", cfg.HTTPAddress)
		assert.Equal(t, []string{"devnet"}, cfg.Networks)
		assert.Equal(t, uint64(5_000), cfg.FeeReserveLamports)
		assert.Equal(t, uint(3), cfg.ConfirmationAttempts)
		assert.Equal(t, 60*time.Second, cfg.ConfirmationTimeout)
		assert.Equal(t, "info", cfg.LogLevel)
		assert.False(t, cfg.TelemetryEnabled)
	})

	t.Run("should read overrides from the environment", func(t *testing.T) {
		t.Setenv("SOLSWEEP_HTTP_ADDRESS", ":9090")
		t.Setenv("SOLSWEEP_NETWORKS", "mainnet-beta")
		t.Setenv("SOLSWEEP_FEE_RESERVE_LAMPORTS", "10000")
		t.Setenv("SOLSWEEP_CONFIRMATION_ATTEMPTS", "5")
		t.Setenv("SOLSWEEP_CONFIRMATION_TIMEOUT", "30s")
		t.Setenv("SOLSWEEP_LOG_LEVEL", "debug")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, ":9090", cfg.HTTPAddress)
		assert.Equal(t, []string{"mainnet-beta"}, cfg.Networks)
		assert.Equal(t, uint64(10_000), cfg.FeeReserveLamports)
		assert.Equal(t, uint(5), cfg.ConfirmationAttempts)
		assert.Equal(t, 30*time.Second, cfg.ConfirmationTimeout)
		assert.Equal(t, "debug", cfg.LogLevel)
	})

	t.Run("should reject an unknown log level", func(t *testing.T) {
		t.Setenv("SOLSWEEP_LOG_LEVEL", "verbose")

		_, err := Load()
		assert.ErrorIs(t, err, validator.ErrValidation)
	})

	t.Run("should reject a confirmation timeout below one second", func(t *testing.T) {
		t.Setenv("SOLSWEEP_CONFIRMATION_TIMEOUT", "100ms")

		_, err := Load()
		assert.ErrorIs(t, err, validator.ErrValidation)
	})

	t.Run("should reject an rpc override without the websocket counterpart", func(t *testing.T) {
		t.Setenv("SOLSWEEP_RPC_ENDPOINT", "http://localhost:8899")

		_, err := Load()
		assert.ErrorIs(t, err, validator.ErrValidation)
	})

	t.Run("should reject endpoint overrides spanning multiple networks", func(t *testing.T) {
		t.Setenv("SOLSWEEP_NETWORKS", "devnet,testnet")
		t.Setenv("SOLSWEEP_RPC_ENDPOINT", "http://localhost:8899")
		t.Setenv("SOLSWEEP_WS_ENDPOINT", "ws://localhost:8900")

		_, err := Load()
		assert.Error(t, err)
	})
}
