package httpapi

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gabapcia/solsweep/internal/monitor"
	"github.com/gabapcia/solsweep/internal/sweep"
	"github.com/gabapcia/solsweep/internal/txledger"

	"github.com/gorilla/websocket"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dialWebsocket(t *testing.T, server *httptest.Server) *websocket.Conn {
	t.Helper()

	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return conn
}

func readLedgerMessage(t *testing.T, conn *websocket.Conn) ledgerMessage {
	t.Helper()

	conn.SetReadDeadline(time.Now().Add(5 * time.Second))

	var msg ledgerMessage
	require.NoError(t, conn.ReadJSON(&msg))
	return msg
}

func TestTransactionsStream(t *testing.T) {
	t.Run("should send the current snapshot on connect", func(t *testing.T) {
		hub := NewHub()
		defer hub.Close()

		ledger := txledger.New(txledger.WithBroadcaster(hub))
		require.NoError(t, ledger.RecordAttempt(context.Background(), sweep.SweepAttempt{
			ID:     "existing",
			Status: sweep.StatusConfirmed,
			Amount: decimal.RequireFromString("0.000995"),
		}))

		s := NewServer(":0", monitor.NewServiceMock(t), ledger, hub)
		server := httptest.NewServer(s.engine)
		defer server.Close()

		conn := dialWebsocket(t, server)

		msg := readLedgerMessage(t, conn)
		assert.Equal(t, "transactionLog", msg.Type)
		require.Len(t, msg.Data, 1)
		assert.Equal(t, "existing", msg.Data[0].ID)
	})

	t.Run("should send an empty snapshot when the ledger is empty", func(t *testing.T) {
		hub := NewHub()
		defer hub.Close()

		s := NewServer(":0", monitor.NewServiceMock(t), txledger.New(txledger.WithBroadcaster(hub)), hub)
		server := httptest.NewServer(s.engine)
		defer server.Close()

		conn := dialWebsocket(t, server)

		msg := readLedgerMessage(t, conn)
		assert.Equal(t, "transactionLog", msg.Type)
		assert.Empty(t, msg.Data)
	})

	t.Run("should push the full snapshot to every client on append", func(t *testing.T) {
		hub := NewHub()
		defer hub.Close()

		ledger := txledger.New(txledger.WithBroadcaster(hub))
		s := NewServer(":0", monitor.NewServiceMock(t), ledger, hub)
		server := httptest.NewServer(s.engine)
		defer server.Close()

		first := dialWebsocket(t, server)
		second := dialWebsocket(t, server)

		// Drain the on-connect snapshots before appending.
		readLedgerMessage(t, first)
		readLedgerMessage(t, second)

		require.NoError(t, ledger.RecordAttempt(context.Background(), sweep.SweepAttempt{
			ID:     "pushed",
			Status: sweep.StatusConfirmed,
			Amount: decimal.RequireFromString("50"),
		}))

		for _, conn := range []*websocket.Conn{first, second} {
			msg := readLedgerMessage(t, conn)
			assert.Equal(t, "transactionLog", msg.Type)
			require.Len(t, msg.Data, 1)
			assert.Equal(t, "pushed", msg.Data[0].ID)
		}
	})

	t.Run("should keep broadcasting after a client disconnects", func(t *testing.T) {
		hub := NewHub()
		defer hub.Close()

		ledger := txledger.New(txledger.WithBroadcaster(hub))
		s := NewServer(":0", monitor.NewServiceMock(t), ledger, hub)
		server := httptest.NewServer(s.engine)
		defer server.Close()

		gone := dialWebsocket(t, server)
		readLedgerMessage(t, gone)
		gone.Close()

		alive := dialWebsocket(t, server)
		readLedgerMessage(t, alive)

		require.NoError(t, ledger.RecordAttempt(context.Background(), sweep.SweepAttempt{
			ID:     "after-disconnect",
			Status: sweep.StatusFailed,
			Amount: decimal.RequireFromString("1"),
		}))

		msg := readLedgerMessage(t, alive)
		require.Len(t, msg.Data, 1)
		assert.Equal(t, "after-disconnect", msg.Data[0].ID)
	})
}
