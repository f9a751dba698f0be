package sui

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

type rpcHandler func(t *testing.T, params []json.RawMessage) (interface{}, *RPCError)

// newRPCServer fakes a fullnode: requests are dispatched to per-method
// handlers.
func newRPCServer(t *testing.T, handlers map[string]rpcHandler) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			ID     int64             `json:"id"`
			Method string            `json:"method"`
			Params []json.RawMessage `json:"params"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		handler, ok := handlers[req.Method]
		require.True(t, ok, "unexpected RPC method %s", req.Method)

		result, rpcErr := handler(t, req.Params)
		resp := map[string]interface{}{"jsonrpc": "2.0", "id": req.ID}
		if rpcErr != nil {
			resp["error"] = rpcErr
		} else {
			resp["result"] = result
		}
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestClient_GetBalance(t *testing.T) {
	const owner = "0x00000000000000000000000000000000000000000000000000000000000000aa"
	server := newRPCServer(t, map[string]rpcHandler{
		"suix_getBalance": func(t *testing.T, params []json.RawMessage) (interface{}, *RPCError) {
			var gotOwner, coinType string
			require.NoError(t, json.Unmarshal(params[0], &gotOwner))
			require.NoError(t, json.Unmarshal(params[1], &coinType))
			require.Equal(t, owner, gotOwner)
			require.Equal(t, SuiCoinType, coinType)
			return Balance{CoinType: SuiCoinType, CoinObjectCount: 2, TotalBalance: "1500000000"}, nil
		},
	})

	client := NewClient(server.URL, server.Client())
	balance, err := client.GetBalance(context.Background(), owner)
	require.NoError(t, err)
	require.Equal(t, uint64(1_500_000_000), balance)
}

func TestClient_GetBalance_RPCError(t *testing.T) {
	server := newRPCServer(t, map[string]rpcHandler{
		"suix_getBalance": func(t *testing.T, params []json.RawMessage) (interface{}, *RPCError) {
			return nil, &RPCError{Code: -32602, Message: "Invalid params"}
		},
	})

	client := NewClient(server.URL, server.Client())
	_, err := client.GetBalance(context.Background(), "0xbad")
	require.Error(t, err)
	require.Contains(t, err.Error(), "Invalid params")
}

func TestClient_GetCoins(t *testing.T) {
	server := newRPCServer(t, map[string]rpcHandler{
		"suix_getCoins": func(t *testing.T, params []json.RawMessage) (interface{}, *RPCError) {
			return CoinPage{Data: []Coin{
				{CoinObjectID: "0x1", Balance: "700000000"},
				{CoinObjectID: "0x2", Balance: "2000000000"},
			}}, nil
		},
	})

	client := NewClient(server.URL, server.Client())
	coins, err := client.GetCoins(context.Background(), "0xowner")
	require.NoError(t, err)
	require.Len(t, coins, 2)
	require.Equal(t, "0x2", coins[1].CoinObjectID)
}

func TestClient_LatestCheckpoint(t *testing.T) {
	server := newRPCServer(t, map[string]rpcHandler{
		"sui_getLatestCheckpointSequenceNumber": func(t *testing.T, params []json.RawMessage) (interface{}, *RPCError) {
			return "123456", nil
		},
	})

	client := NewClient(server.URL, server.Client())
	seq, err := client.LatestCheckpoint(context.Background())
	require.NoError(t, err)
	require.Equal(t, uint64(123456), seq)
}

func TestClient_Unreachable(t *testing.T) {
	client := NewClient("http://127.0.0.1:1", nil)
	_, err := client.LatestCheckpoint(context.Background())
	require.Error(t, err)
}
