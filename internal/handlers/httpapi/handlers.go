package httpapi

import (
	"errors"
	"net/http"

	"github.com/gabapcia/solsweep/internal/keyring"
	"github.com/gabapcia/solsweep/internal/monitor"
	"github.com/gabapcia/solsweep/internal/pkg/logger"
	"github.com/gabapcia/solsweep/internal/pkg/validator"
	"github.com/gabapcia/solsweep/internal/sweep"

	"github.com/gin-gonic/gin"
)

type startMonitoringRequest struct {
	Seed                  []string `json:"seed" binding:"required,min=1"`
	SecureWalletPublicKey string   `json:"secureWalletPublicKey" binding:"required"`
	Network               string   `json:"network" binding:"required"`
	TokenMintAddress      string   `json:"tokenMintAddress"`
}

type stopMonitoringRequest struct {
	PublicKey string `json:"publicKey" binding:"required"`
}

type messageResponse struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

type startMonitoringResponse struct {
	Message   string `json:"message"`
	PublicKey string `json:"publicKey"`
}

// startMonitoring derives the account keypair from the seed phrase and opens
// a watch on it. Key derivation failures are internal errors so the seed
// phrase never echoes back in a validation message.
func (s *Server) startMonitoring(c *gin.Context) {
	var req startMonitoringRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, messageResponse{Message: "Invalid request payload", Error: err.Error()})
		return
	}

	signer, err := keyring.FromSeedPhrase(req.Seed)
	if err != nil {
		logger.Error(c.Request.Context(), "deriving keypair from seed phrase", "error", err)
		c.JSON(http.StatusInternalServerError, messageResponse{Message: "Failed to derive keypair from seed phrase", Error: err.Error()})
		return
	}

	account, err := sweep.BuildAccount(signer, req.SecureWalletPublicKey, req.Network, req.TokenMintAddress)
	if err != nil {
		c.JSON(http.StatusBadRequest, messageResponse{Message: "Invalid monitoring request", Error: err.Error()})
		return
	}

	publicKey, err := s.monitor.Start(c.Request.Context(), account)
	switch {
	case errors.Is(err, monitor.ErrAlreadyMonitored):
		c.JSON(http.StatusConflict, messageResponse{Message: "Monitoring already active for the provided public key"})
		return
	case errors.Is(err, monitor.ErrNetworkNotRegistered), errors.Is(err, validator.ErrValidation):
		c.JSON(http.StatusBadRequest, messageResponse{Message: "Invalid monitoring request", Error: err.Error()})
		return
	case err != nil:
		logger.Error(c.Request.Context(), "starting account monitoring", "error", err)
		c.JSON(http.StatusInternalServerError, messageResponse{Message: "Failed to start monitoring", Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, startMonitoringResponse{Message: "Monitoring started", PublicKey: publicKey})
}

func (s *Server) stopMonitoring(c *gin.Context) {
	var req stopMonitoringRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, messageResponse{Message: "Invalid request payload", Error: err.Error()})
		return
	}

	err := s.monitor.Stop(c.Request.Context(), req.PublicKey)
	switch {
	case errors.Is(err, monitor.ErrNotMonitored):
		c.JSON(http.StatusBadRequest, messageResponse{Message: "Monitoring not found for the provided public key"})
		return
	case err != nil:
		logger.Error(c.Request.Context(), "stopping account monitoring", "error", err)
		c.JSON(http.StatusInternalServerError, messageResponse{Message: "Failed to stop monitoring", Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, messageResponse{Message: "Monitoring stopped"})
}

// listTransactions returns the full ledger in append order.
func (s *Server) listTransactions(c *gin.Context) {
	attempts := s.ledger.List(c.Request.Context())
	if attempts == nil {
		attempts = []sweep.SweepAttempt{}
	}

	c.JSON(http.StatusOK, attempts)
}

// transactionsStream upgrades the connection and hands it to the hub, which
// replies with the current ledger snapshot and keeps pushing on every append.
func (s *Server) transactionsStream(c *gin.Context) {
	conn, err := s.hub.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.Warn(c.Request.Context(), "upgrading websocket connection", "error", err)
		return
	}

	s.hub.register(c.Request.Context(), conn, s.ledger.List(c.Request.Context()))
}
