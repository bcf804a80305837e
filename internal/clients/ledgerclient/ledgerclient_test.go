package ledgerclient

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/captable-labs/captable-indexer/internal/config"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *LedgerClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewLedgerClient(&config.LedgerConfig{
		RPCAddr:       srv.URL,
		Timeout:       5 * time.Second,
		MaxRetryTimes: 2,
		RetryInterval: 10 * time.Millisecond,
	})
}

func rpcResult(t *testing.T, w http.ResponseWriter, result any) {
	t.Helper()
	raw, err := json.Marshal(result)
	require.NoError(t, err)
	err = json.NewEncoder(w).Encode(map[string]any{
		"jsonrpc": "2.0",
		"id":      1,
		"result":  json.RawMessage(raw),
	})
	require.NoError(t, err)
}

func TestGetLogs(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var req rpcRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "eth_getLogs", req.Method)
		rpcResult(t, w, []map[string]any{
			{
				"topics":           []string{"0xabc"},
				"data":             "0x00ff",
				"blockNumber":      "0x65",
				"transactionIndex": "0x2",
				"logIndex":         "0x0",
				"transactionHash":  "0xdead",
			},
		})
	})

	logs, err := client.GetLogs(t.Context(), "0xcontract", 100, 110)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, uint64(101), logs[0].BlockNumber)
	assert.Equal(t, uint(2), logs[0].TxIndex)
	assert.Equal(t, []byte{0x00, 0xff}, logs[0].Data)
}

func TestGetBlockByTag(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var req rpcRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "eth_getBlockByNumber", req.Method)
		assert.Equal(t, "finalized", req.Params[0])
		rpcResult(t, w, map[string]string{
			"number":    "0x10",
			"timestamp": "0x65b1c2f0",
		})
	})

	blk, err := client.GetBlockByTag(t.Context(), TagFinalized)
	require.NoError(t, err)
	assert.Equal(t, uint64(16), blk.Number)
	assert.Equal(t, time.Unix(0x65b1c2f0, 0).UTC(), blk.Timestamp)
}

func TestGetTransactionReceipt(t *testing.T) {
	t.Run("missing receipt returns nil", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			rpcResult(t, w, nil)
		})
		receipt, err := client.GetTransactionReceipt(t.Context(), "0xmissing")
		require.NoError(t, err)
		assert.Nil(t, receipt)
	})

	t.Run("mined receipt", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			rpcResult(t, w, map[string]string{
				"transactionHash": "0xdead",
				"blockNumber":     "0x2a",
			})
		})
		receipt, err := client.GetTransactionReceipt(t.Context(), "0xdead")
		require.NoError(t, err)
		require.NotNil(t, receipt)
		assert.Equal(t, uint64(42), receipt.BlockNumber)
	})
}

func TestCallRetries(t *testing.T) {
	attempts := 0
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		rpcResult(t, w, map[string]string{
			"number":    "0x1",
			"timestamp": "0x1",
		})
	})

	_, err := client.GetBlockByNumber(t.Context(), 1)
	require.NoError(t, err)
	assert.Equal(t, 2, attempts)
}
