package sweep

import (
	"errors"
	"testing"

	"github.com/gabapcia/solsweep/internal/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func init() {
	// Initialize logger for tests to prevent nil pointer dereference
	_ = logger.Init(logger.WithLevel("error"))
}

func TestBuildNativeSweep(t *testing.T) {
	account := Account{
		Address:     "source-address",
		Destination: "destination-address",
		Network:     "devnet",
		Asset:       AssetNative,
	}

	t.Run("should transfer the observed balance minus the fee reserve", func(t *testing.T) {
		op, err := buildNativeSweep(account, 1_000_000, 5_000)
		require.NoError(t, err)

		assert.Equal(t, OpNativeTransfer, op.Kind)
		assert.Equal(t, "source-address", op.Source)
		assert.Equal(t, "destination-address", op.Destination)
		assert.Equal(t, uint64(995_000), op.Amount)
		assert.Empty(t, op.Mint)
	})

	t.Run("should reject a balance below the fee reserve", func(t *testing.T) {
		_, err := buildNativeSweep(account, 4_000, 5_000)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInsufficientFunds)
	})

	t.Run("should reject a balance exactly equal to the fee reserve", func(t *testing.T) {
		_, err := buildNativeSweep(account, 5_000, 5_000)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInsufficientFunds)
	})
}

func TestService_BuildTokenSweep(t *testing.T) {
	account := Account{
		Address:     "source-address",
		Destination: "destination-address",
		Network:     "devnet",
		Asset:       AssetToken,
		TokenMint:   "mint-address",
	}

	t.Run("should build a single transfer when the destination token account exists", func(t *testing.T) {
		ctx := t.Context()
		gateway := NewGatewayMock(t)
		s := &service{}

		gateway.EXPECT().ResolveTokenAccount(ctx, "destination-address", "mint-address").
			Return(TokenAccount{Address: "dest-ata", Exists: true}, nil).Once()

		ops, err := s.buildTokenSweep(ctx, gateway, account, 50)
		require.NoError(t, err)
		require.Len(t, ops, 1)

		assert.Equal(t, OpTokenTransfer, ops[0].Kind)
		assert.Equal(t, "mint-address", ops[0].Mint)
		assert.Equal(t, uint64(50), ops[0].Amount)
	})

	t.Run("should prepend an ensure operation when the destination token account is missing", func(t *testing.T) {
		ctx := t.Context()
		gateway := NewGatewayMock(t)
		s := &service{}

		gateway.EXPECT().ResolveTokenAccount(ctx, "destination-address", "mint-address").
			Return(TokenAccount{Address: "dest-ata", Exists: false}, nil).Once()

		ops, err := s.buildTokenSweep(ctx, gateway, account, 50)
		require.NoError(t, err)
		require.Len(t, ops, 2)

		assert.Equal(t, OpEnsureTokenAccount, ops[0].Kind)
		assert.Equal(t, "mint-address", ops[0].Mint)
		assert.Zero(t, ops[0].Amount)

		assert.Equal(t, OpTokenTransfer, ops[1].Kind)
		assert.Equal(t, uint64(50), ops[1].Amount)
	})

	t.Run("should sweep any positive amount without a minimum threshold", func(t *testing.T) {
		ctx := t.Context()
		gateway := NewGatewayMock(t)
		s := &service{}

		gateway.EXPECT().ResolveTokenAccount(mock.Anything, mock.Anything, mock.Anything).
			Return(TokenAccount{Address: "dest-ata", Exists: true}, nil).Once()

		ops, err := s.buildTokenSweep(ctx, gateway, account, 1)
		require.NoError(t, err)
		require.Len(t, ops, 1)
		assert.Equal(t, uint64(1), ops[0].Amount)
	})

	t.Run("should propagate a token account resolution failure", func(t *testing.T) {
		ctx := t.Context()
		gateway := NewGatewayMock(t)
		s := &service{}

		expectedErr := errors.New("rpc unavailable")
		gateway.EXPECT().ResolveTokenAccount(ctx, "destination-address", "mint-address").
			Return(TokenAccount{}, expectedErr).Once()

		_, err := s.buildTokenSweep(ctx, gateway, account, 50)
		require.Error(t, err)
		assert.ErrorIs(t, err, expectedErr)
	})
}
