package sui

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"sync/atomic"
	"time"

	"golang.org/x/time/rate"
)

// Client is a minimal JSON-RPC client for a Sui fullnode, covering the
// handful of methods the faucet needs. Outbound calls are throttled so a
// burst of dispense requests stays polite to public fullnodes.
type Client struct {
	url        string
	httpClient *http.Client
	limiter    *rate.Limiter
	nextID     atomic.Int64
}

func NewClient(rpcURL string, httpClient *http.Client) *Client {
	client := httpClient
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{
		url:        rpcURL,
		httpClient: client,
		limiter:    rate.NewLimiter(rate.Limit(10), 20),
	}
}

type rpcRequest struct {
	JSONRPC string        `json:"jsonrpc"`
	ID      int64         `json:"id"`
	Method  string        `json:"method"`
	Params  []interface{} `json:"params"`
}

// RPCError is a JSON-RPC level error returned by the fullnode.
type RPCError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *RPCError) Error() string {
	return fmt.Sprintf("rpc error %d: %s", e.Code, e.Message)
}

type rpcResponse struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      int64           `json:"id"`
	Result  json.RawMessage `json:"result"`
	Error   *RPCError       `json:"error,omitempty"`
}

func (c *Client) call(ctx context.Context, method string, params []interface{}, result interface{}) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}

	payload, err := json.Marshal(rpcRequest{
		JSONRPC: "2.0",
		ID:      c.nextID.Add(1),
		Method:  method,
		Params:  params,
	})
	if err != nil {
		return fmt.Errorf("%s: marshal request: %w", method, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("%s: build request: %w", method, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%s: unexpected status %d", method, resp.StatusCode)
	}

	var rpcResp rpcResponse
	if err := json.NewDecoder(resp.Body).Decode(&rpcResp); err != nil {
		return fmt.Errorf("%s: decode response: %w", method, err)
	}
	if rpcResp.Error != nil {
		return fmt.Errorf("%s: %w", method, rpcResp.Error)
	}
	if result != nil {
		if err := json.Unmarshal(rpcResp.Result, result); err != nil {
			return fmt.Errorf("%s: unmarshal result: %w", method, err)
		}
	}
	return nil
}

// GetBalance returns the owner's total SUI balance in MIST.
func (c *Client) GetBalance(ctx context.Context, owner string) (uint64, error) {
	var balance Balance
	if err := c.call(ctx, "suix_getBalance", []interface{}{owner, SuiCoinType}, &balance); err != nil {
		return 0, err
	}
	total, err := strconv.ParseUint(balance.TotalBalance, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse total balance %q: %w", balance.TotalBalance, err)
	}
	return total, nil
}

// GetCoins lists the owner's SUI coin objects (first page).
func (c *Client) GetCoins(ctx context.Context, owner string) ([]Coin, error) {
	var page CoinPage
	if err := c.call(ctx, "suix_getCoins", []interface{}{owner, SuiCoinType, nil, nil}, &page); err != nil {
		return nil, err
	}
	return page.Data, nil
}

// BuildTransferSui asks the fullnode to construct the BCS bytes of a
// transfer of amount MIST from signer to recipient, spending coinObjectID.
func (c *Client) BuildTransferSui(ctx context.Context, signer, coinObjectID string, gasBudget, amount uint64, recipient string) (*TxnMetaData, error) {
	var meta TxnMetaData
	params := []interface{}{
		signer,
		coinObjectID,
		strconv.FormatUint(gasBudget, 10),
		recipient,
		strconv.FormatUint(amount, 10),
	}
	if err := c.call(ctx, "unsafe_transferSui", params, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// ExecuteTransactionBlock submits signed transaction bytes and waits for
// local execution so effects are available in the response.
func (c *Client) ExecuteTransactionBlock(ctx context.Context, txBytes string, signatures []string) (*ExecuteResult, error) {
	var result ExecuteResult
	params := []interface{}{
		txBytes,
		signatures,
		map[string]bool{"showEffects": true},
		"WaitForLocalExecution",
	}
	if err := c.call(ctx, "sui_executeTransactionBlock", params, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// LatestCheckpoint returns the fullnode's latest checkpoint sequence number.
// Used as a liveness probe for the chain connection.
func (c *Client) LatestCheckpoint(ctx context.Context) (uint64, error) {
	var seq string
	if err := c.call(ctx, "sui_getLatestCheckpointSequenceNumber", []interface{}{}, &seq); err != nil {
		return 0, err
	}
	parsed, err := strconv.ParseUint(seq, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse checkpoint %q: %w", seq, err)
	}
	return parsed, nil
}
