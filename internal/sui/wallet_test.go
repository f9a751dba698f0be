package sui

import (
	"context"
	"crypto/ed25519"
	"encoding/base64"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

const testRecipient = "0x0000000000000000000000000000000000000000000000000000000000000000"

func newTestKeypair(t *testing.T) *Keypair {
	t.Helper()
	kp, err := ParseKeypair(base64.StdEncoding.EncodeToString(testSeed()))
	require.NoError(t, err)
	return kp
}

func TestWallet_Transfer(t *testing.T) {
	kp := newTestKeypair(t)
	txBytes := base64.StdEncoding.EncodeToString([]byte("tx-bytes"))

	server := newRPCServer(t, map[string]rpcHandler{
		"suix_getCoins": func(t *testing.T, params []json.RawMessage) (interface{}, *RPCError) {
			return CoinPage{Data: []Coin{
				{CoinObjectID: "0xsmall", Balance: "100"},
				{CoinObjectID: "0xbig", Balance: "5000000000"},
			}}, nil
		},
		"unsafe_transferSui": func(t *testing.T, params []json.RawMessage) (interface{}, *RPCError) {
			var signer, coinID, gasBudget, recipient, amount string
			require.NoError(t, json.Unmarshal(params[0], &signer))
			require.NoError(t, json.Unmarshal(params[1], &coinID))
			require.NoError(t, json.Unmarshal(params[2], &gasBudget))
			require.NoError(t, json.Unmarshal(params[3], &recipient))
			require.NoError(t, json.Unmarshal(params[4], &amount))
			require.Equal(t, kp.Address(), signer)
			require.Equal(t, "0xbig", coinID, "largest coin should fund the transfer")
			require.Equal(t, testRecipient, recipient)
			require.Equal(t, "1000000000", amount)
			return TxnMetaData{TxBytes: txBytes}, nil
		},
		"sui_executeTransactionBlock": func(t *testing.T, params []json.RawMessage) (interface{}, *RPCError) {
			var gotTxBytes string
			var signatures []string
			require.NoError(t, json.Unmarshal(params[0], &gotTxBytes))
			require.NoError(t, json.Unmarshal(params[1], &signatures))
			require.Equal(t, txBytes, gotTxBytes)
			require.Len(t, signatures, 1)

			raw, err := base64.StdEncoding.DecodeString(signatures[0])
			require.NoError(t, err)
			require.Len(t, raw, 1+ed25519.SignatureSize+ed25519.PublicKeySize)

			return ExecuteResult{
				Digest:  "9WzSYyoCzXqKJ8iTFNpTDKGRPH3HbRhTXS5WQhLS5FJi",
				Effects: &Effects{Status: ExecutionStatus{Status: "success"}},
			}, nil
		},
	})

	wallet := NewWallet(NewClient(server.URL, server.Client()), kp)
	digest, err := wallet.Transfer(context.Background(), testRecipient, 1_000_000_000)
	require.NoError(t, err)
	require.Equal(t, "9WzSYyoCzXqKJ8iTFNpTDKGRPH3HbRhTXS5WQhLS5FJi", digest)
}

func TestWallet_Transfer_NoCoins(t *testing.T) {
	server := newRPCServer(t, map[string]rpcHandler{
		"suix_getCoins": func(t *testing.T, params []json.RawMessage) (interface{}, *RPCError) {
			return CoinPage{}, nil
		},
	})

	wallet := NewWallet(NewClient(server.URL, server.Client()), newTestKeypair(t))
	_, err := wallet.Transfer(context.Background(), testRecipient, 1_000_000_000)

	var transferErr *TransferError
	require.ErrorAs(t, err, &transferErr)
	require.Equal(t, CodeInsufficientBalance, transferErr.Code)
}

func TestWallet_Transfer_ExecutionFailure(t *testing.T) {
	server := newRPCServer(t, map[string]rpcHandler{
		"suix_getCoins": func(t *testing.T, params []json.RawMessage) (interface{}, *RPCError) {
			return CoinPage{Data: []Coin{{CoinObjectID: "0x1", Balance: "2000000000"}}}, nil
		},
		"unsafe_transferSui": func(t *testing.T, params []json.RawMessage) (interface{}, *RPCError) {
			return TxnMetaData{TxBytes: base64.StdEncoding.EncodeToString([]byte("tx"))}, nil
		},
		"sui_executeTransactionBlock": func(t *testing.T, params []json.RawMessage) (interface{}, *RPCError) {
			return ExecuteResult{
				Digest:  "digest",
				Effects: &Effects{Status: ExecutionStatus{Status: "failure", Error: "InsufficientCoinBalance in command 0"}},
			}, nil
		},
	})

	wallet := NewWallet(NewClient(server.URL, server.Client()), newTestKeypair(t))
	_, err := wallet.Transfer(context.Background(), testRecipient, 1_000_000_000)

	var transferErr *TransferError
	require.ErrorAs(t, err, &transferErr)
	require.Equal(t, CodeInsufficientBalance, transferErr.Code)
	require.Equal(t, "Insufficient balance in faucet wallet", transferErr.Message)
}

func TestWallet_Transfer_BuildRejected(t *testing.T) {
	server := newRPCServer(t, map[string]rpcHandler{
		"suix_getCoins": func(t *testing.T, params []json.RawMessage) (interface{}, *RPCError) {
			return CoinPage{Data: []Coin{{CoinObjectID: "0x1", Balance: "2000000000"}}}, nil
		},
		"unsafe_transferSui": func(t *testing.T, params []json.RawMessage) (interface{}, *RPCError) {
			return nil, &RPCError{Code: -32000, Message: "InvalidGasObject: object is not a gas coin"}
		},
	})

	wallet := NewWallet(NewClient(server.URL, server.Client()), newTestKeypair(t))
	_, err := wallet.Transfer(context.Background(), testRecipient, 1_000_000_000)

	var transferErr *TransferError
	require.ErrorAs(t, err, &transferErr)
	require.Equal(t, CodeGas, transferErr.Code)
}

func TestClassifyTransferError_Timeout(t *testing.T) {
	transferErr := classifyTransferError(context.DeadlineExceeded)
	require.Equal(t, CodeTimeout, transferErr.Code)

	wrapped := classifyTransferError(errors.Join(errors.New("execute"), context.DeadlineExceeded))
	require.Equal(t, CodeTimeout, wrapped.Code)
}

func TestClassifyFailureMessage(t *testing.T) {
	tests := []struct {
		message string
		code    string
	}{
		{"InsufficientCoinBalance in command 0", CodeInsufficientBalance},
		{"InsufficientGas", CodeInsufficientBalance},
		{"InvalidGasObject: not owned", CodeGas},
		{"GasBalanceTooLow: needed 10000000", CodeGas},
		{"MoveAbort(...) in command 1", CodeUnknown},
	}
	for _, tc := range tests {
		require.Equal(t, tc.code, classifyFailureMessage(tc.message).Code, tc.message)
	}
}
