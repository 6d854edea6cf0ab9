package httpapi

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gabapcia/solsweep/internal/pkg/logger"
	"github.com/gabapcia/solsweep/internal/sweep"
	"github.com/gabapcia/solsweep/internal/txledger"

	"github.com/gorilla/websocket"
)

// writeTimeout bounds each websocket write so one stalled client cannot block
// a broadcast.
const writeTimeout = 10 * time.Second

// ledgerMessage is the push frame sent to websocket clients. The full ledger
// snapshot is sent on connect and again after every append.
type ledgerMessage struct {
	Type string               `json:"type"`
	Data []sweep.SweepAttempt `json:"data"`
}

func newLedgerMessage(attempts []sweep.SweepAttempt) ledgerMessage {
	if attempts == nil {
		attempts = []sweep.SweepAttempt{}
	}

	return ledgerMessage{Type: "transactionLog", Data: attempts}
}

// Hub fans the transaction ledger out to connected websocket clients. It is
// the ledger's broadcaster: every append pushes the new snapshot to all
// clients, and a client that fails a write is dropped.
type Hub struct {
	upgrader websocket.Upgrader

	mu      sync.Mutex
	clients map[*websocket.Conn]struct{}
	closed  bool
}

var _ txledger.Broadcaster = (*Hub)(nil)

// NewHub creates a hub with no connected clients.
func NewHub() *Hub {
	return &Hub{
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		clients: make(map[*websocket.Conn]struct{}),
	}
}

// register adds an upgraded connection and sends it the current ledger
// snapshot. A reader goroutine drains incoming frames so close handshakes are
// processed; the connection is dropped when the read loop ends.
func (h *Hub) register(ctx context.Context, conn *websocket.Conn, snapshot []sweep.SweepAttempt) {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		conn.Close()
		return
	}

	h.clients[conn] = struct{}{}
	err := writeLedger(conn, snapshot)
	h.mu.Unlock()

	if err != nil {
		logger.Warn(ctx, "sending ledger snapshot to new client", "error", err)
		h.drop(conn)
		return
	}

	go func() {
		defer h.drop(conn)

		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

// BroadcastLedger pushes the snapshot to every connected client. A failed
// write drops only that client.
func (h *Hub) BroadcastLedger(ctx context.Context, attempts []sweep.SweepAttempt) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for conn := range h.clients {
		if err := writeLedger(conn, attempts); err != nil {
			logger.Warn(ctx, "broadcasting ledger snapshot", "error", err)
			delete(h.clients, conn)
			conn.Close()
		}
	}
}

// Close disconnects every client and rejects future registrations.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.closed = true
	for conn := range h.clients {
		conn.Close()
		delete(h.clients, conn)
	}
}

func (h *Hub) drop(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	delete(h.clients, conn)
	conn.Close()
}

// writeLedger sends one snapshot frame. Callers must hold the hub lock, which
// also serializes writes on each connection.
func writeLedger(conn *websocket.Conn, attempts []sweep.SweepAttempt) error {
	conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	return conn.WriteJSON(newLedgerMessage(attempts))
}
