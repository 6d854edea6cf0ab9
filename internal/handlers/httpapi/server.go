// Package httpapi exposes the monitoring lifecycle and the transaction
// ledger over HTTP: JSON endpoints to start and stop watching an account,
// a ledger listing, and a websocket push channel fed by the ledger
// broadcaster.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gabapcia/solsweep/internal/monitor"
	"github.com/gabapcia/solsweep/internal/txledger"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.ReleaseMode)
}

// Server hosts the HTTP API.
type Server struct {
	engine *gin.Engine
	srv    *http.Server

	monitor monitor.Service
	ledger  txledger.Service
	hub     *Hub
}

// NewServer wires the routes. The hub may be nil when the websocket channel
// is not exposed.
func NewServer(addr string, monitorSvc monitor.Service, ledger txledger.Service, hub *Hub) *Server {
	engine := gin.New()
	engine.Use(gin.Recovery())

	s := &Server{
		engine:  engine,
		monitor: monitorSvc,
		ledger:  ledger,
		hub:     hub,
		srv: &http.Server{
			Addr:              addr,
			Handler:           engine,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}

	engine.POST("/start-monitoring", s.startMonitoring)
	engine.POST("/stop-monitoring", s.stopMonitoring)
	engine.GET("/transactions", s.listTransactions)
	if hub != nil {
		engine.GET("/ws", s.transactionsStream)
	}

	return s
}

// Start serves until Shutdown is called. It blocks.
func (s *Server) Start() error {
	err := s.srv.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}

	return err
}

// Shutdown drains in-flight requests and disconnects websocket clients.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.hub != nil {
		s.hub.Close()
	}

	return s.srv.Shutdown(ctx)
}
