package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gabapcia/solsweep/internal/monitor"
	"github.com/gabapcia/solsweep/internal/pkg/logger"
	"github.com/gabapcia/solsweep/internal/pkg/validator"
	"github.com/gabapcia/solsweep/internal/sweep"
	"github.com/gabapcia/solsweep/internal/txledger"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func init() {
	// Initialize logger for tests to prevent nil pointer dereference
	_ = logger.Init(logger.WithLevel("error"))
	validator.Init()
}

// testSeed is the standard BIP-39 test vector phrase.
var testSeed = strings.Fields("abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about")

func postJSON(t *testing.T, s *Server, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	s.engine.ServeHTTP(rec, req)
	return rec
}

func decodeMessage(t *testing.T, rec *httptest.ResponseRecorder) messageResponse {
	t.Helper()

	var resp messageResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestStartMonitoring(t *testing.T) {
	t.Run("should start a native watch and return the derived public key", func(t *testing.T) {
		monitorMock := monitor.NewServiceMock(t)
		monitorMock.EXPECT().
			Start(mock.Anything, mock.MatchedBy(func(account sweep.Account) bool {
				return account.Asset == sweep.AssetNative &&
					account.Destination == "secure-wallet" &&
					account.Network == "devnet" &&
					account.Address != ""
			})).
			Return("derived-public-key", nil).
			Once()

		s := NewServer(":0", monitorMock, txledger.New(), nil)

		rec := postJSON(t, s, "/start-monitoring", gin.H{
			"seed":                  testSeed,
			"secureWalletPublicKey": "secure-wallet",
			"network":               "devnet",
		})

		require.Equal(t, http.StatusOK, rec.Code)

		var resp startMonitoringResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "Monitoring started", resp.Message)
		assert.Equal(t, "derived-public-key", resp.PublicKey)
	})

	t.Run("should pass the token mint through to the account", func(t *testing.T) {
		monitorMock := monitor.NewServiceMock(t)
		monitorMock.EXPECT().
			Start(mock.Anything, mock.MatchedBy(func(account sweep.Account) bool {
				return account.Asset == sweep.AssetToken && account.TokenMint == "mint-address"
			})).
			Return("derived-public-key", nil).
			Once()

		s := NewServer(":0", monitorMock, txledger.New(), nil)

		rec := postJSON(t, s, "/start-monitoring", gin.H{
			"seed":                  testSeed,
			"secureWalletPublicKey": "secure-wallet",
			"network":               "devnet",
			"tokenMintAddress":      "mint-address",
		})

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("should reject a payload without a seed phrase", func(t *testing.T) {
		s := NewServer(":0", monitor.NewServiceMock(t), txledger.New(), nil)

		rec := postJSON(t, s, "/start-monitoring", gin.H{
			"secureWalletPublicKey": "secure-wallet",
			"network":               "devnet",
		})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("should answer an internal error on an invalid seed phrase", func(t *testing.T) {
		s := NewServer(":0", monitor.NewServiceMock(t), txledger.New(), nil)

		rec := postJSON(t, s, "/start-monitoring", gin.H{
			"seed":                  []string{"definitely", "not", "a", "valid", "phrase"},
			"secureWalletPublicKey": "secure-wallet",
			"network":               "devnet",
		})

		require.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "Failed to derive keypair from seed phrase", decodeMessage(t, rec).Message)
	})

	t.Run("should answer a conflict when the account is already watched", func(t *testing.T) {
		monitorMock := monitor.NewServiceMock(t)
		monitorMock.EXPECT().
			Start(mock.Anything, mock.Anything).
			Return("", monitor.ErrAlreadyMonitored).
			Once()

		s := NewServer(":0", monitorMock, txledger.New(), nil)

		rec := postJSON(t, s, "/start-monitoring", gin.H{
			"seed":                  testSeed,
			"secureWalletPublicKey": "secure-wallet",
			"network":               "devnet",
		})

		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("should answer a bad request for an unregistered network", func(t *testing.T) {
		monitorMock := monitor.NewServiceMock(t)
		monitorMock.EXPECT().
			Start(mock.Anything, mock.Anything).
			Return("", monitor.ErrNetworkNotRegistered).
			Once()

		s := NewServer(":0", monitorMock, txledger.New(), nil)

		rec := postJSON(t, s, "/start-monitoring", gin.H{
			"seed":                  testSeed,
			"secureWalletPublicKey": "secure-wallet",
			"network":               "betanet",
		})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestStopMonitoring(t *testing.T) {
	t.Run("should stop an active watch", func(t *testing.T) {
		monitorMock := monitor.NewServiceMock(t)
		monitorMock.EXPECT().
			Stop(mock.Anything, "watched-public-key").
			Return(nil).
			Once()

		s := NewServer(":0", monitorMock, txledger.New(), nil)

		rec := postJSON(t, s, "/stop-monitoring", gin.H{"publicKey": "watched-public-key"})

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Monitoring stopped", decodeMessage(t, rec).Message)
	})

	t.Run("should answer a bad request when the public key is not watched", func(t *testing.T) {
		monitorMock := monitor.NewServiceMock(t)
		monitorMock.EXPECT().
			Stop(mock.Anything, "unknown-public-key").
			Return(monitor.ErrNotMonitored).
			Once()

		s := NewServer(":0", monitorMock, txledger.New(), nil)

		rec := postJSON(t, s, "/stop-monitoring", gin.H{"publicKey": "unknown-public-key"})

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Monitoring not found for the provided public key", decodeMessage(t, rec).Message)
	})

	t.Run("should reject a payload without a public key", func(t *testing.T) {
		s := NewServer(":0", monitor.NewServiceMock(t), txledger.New(), nil)

		rec := postJSON(t, s, "/stop-monitoring", gin.H{})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestListTransactions(t *testing.T) {
	t.Run("should return an empty array for an empty ledger", func(t *testing.T) {
		s := NewServer(":0", monitor.NewServiceMock(t), txledger.New(), nil)

		req := httptest.NewRequest(http.MethodGet, "/transactions", nil)
		rec := httptest.NewRecorder()
		s.engine.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[]`, rec.Body.String())
	})

	t.Run("should return recorded attempts in append order", func(t *testing.T) {
		ledger := txledger.New()
		require.NoError(t, ledger.RecordAttempt(context.Background(), sweep.SweepAttempt{
			ID:     "first",
			Status: sweep.StatusConfirmed,
			Amount: decimal.RequireFromString("0.000995"),
		}))
		require.NoError(t, ledger.RecordAttempt(context.Background(), sweep.SweepAttempt{
			ID:     "second",
			Status: sweep.StatusFailed,
			Amount: decimal.RequireFromString("50"),
		}))

		s := NewServer(":0", monitor.NewServiceMock(t), ledger, nil)

		req := httptest.NewRequest(http.MethodGet, "/transactions", nil)
		rec := httptest.NewRecorder()
		s.engine.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var attempts []sweep.SweepAttempt
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &attempts))
		require.Len(t, attempts, 2)
		assert.Equal(t, "first", attempts[0].ID)
		assert.Equal(t, "second", attempts[1].ID)
	})
}
