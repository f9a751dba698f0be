package sui

import "strconv"

// SuiCoinType is the canonical coin type of the native token.
const SuiCoinType = "0x2::sui::SUI"

// MistPerSui converts between SUI and its minor unit (1 SUI = 10^9 MIST).
const MistPerSui = 1_000_000_000

// FormatMist renders a MIST amount as a decimal SUI string ("1", "0.5").
func FormatMist(mist uint64) string {
	return strconv.FormatFloat(float64(mist)/MistPerSui, 'f', -1, 64)
}

// Balance is the result of suix_getBalance. Amounts come back as decimal
// strings.
type Balance struct {
	CoinType        string `json:"coinType"`
	CoinObjectCount int    `json:"coinObjectCount"`
	TotalBalance    string `json:"totalBalance"`
}

// Coin is one owned coin object from suix_getCoins.
type Coin struct {
	CoinType     string `json:"coinType"`
	CoinObjectID string `json:"coinObjectId"`
	Version      string `json:"version"`
	Digest       string `json:"digest"`
	Balance      string `json:"balance"`
}

// CoinPage is one page of suix_getCoins results.
type CoinPage struct {
	Data        []Coin  `json:"data"`
	NextCursor  *string `json:"nextCursor"`
	HasNextPage bool    `json:"hasNextPage"`
}

// TxnMetaData carries the BCS transaction bytes built server-side by the
// unsafe_ transaction builders.
type TxnMetaData struct {
	TxBytes string `json:"txBytes"`
}

// ExecutionStatus reports whether a submitted transaction succeeded on
// chain. Error is the abort string on failure.
type ExecutionStatus struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// Effects is the subset of transaction effects the faucet inspects.
type Effects struct {
	Status ExecutionStatus `json:"status"`
}

// ExecuteResult is the response of sui_executeTransactionBlock.
type ExecuteResult struct {
	Digest  string   `json:"digest"`
	Effects *Effects `json:"effects,omitempty"`
}

const executionStatusSuccess = "success"
