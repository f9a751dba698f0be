package sui

import (
	"context"
	"encoding/base64"
	"fmt"
	"strconv"

	"suifaucet/backend/pkg/logger"
)

// transferGasBudget is the fixed gas budget per dispense, in MIST.
const transferGasBudget = 10_000_000

// Wallet combines the funding keypair with a fullnode client: it is the
// faucet's view of the custodial account it spends from.
type Wallet struct {
	client  *Client
	keypair *Keypair
}

func NewWallet(client *Client, keypair *Keypair) *Wallet {
	return &Wallet{client: client, keypair: keypair}
}

// Address returns the funding wallet's address.
func (w *Wallet) Address() string {
	return w.keypair.Address()
}

// Balance returns the funding wallet's total SUI balance in MIST.
func (w *Wallet) Balance(ctx context.Context) (uint64, error) {
	return w.client.GetBalance(ctx, w.Address())
}

// Transfer moves amount MIST to recipient: pick a gas coin, let the
// fullnode build the transaction, sign it, submit, and wait for effects.
// Failures come back as *TransferError with a classified code.
func (w *Wallet) Transfer(ctx context.Context, recipient string, amount uint64) (string, error) {
	coins, err := w.client.GetCoins(ctx, w.Address())
	if err != nil {
		return "", classifyTransferError(fmt.Errorf("fetch gas coins: %w", err))
	}
	coin, ok := pickGasCoin(coins)
	if !ok {
		return "", &TransferError{
			Code:    CodeInsufficientBalance,
			Message: "Insufficient balance in faucet wallet",
		}
	}

	meta, err := w.client.BuildTransferSui(ctx, w.Address(), coin.CoinObjectID, transferGasBudget, amount, recipient)
	if err != nil {
		return "", classifyTransferError(err)
	}

	txBytes, err := base64.StdEncoding.DecodeString(meta.TxBytes)
	if err != nil {
		return "", classifyTransferError(fmt.Errorf("decode tx bytes: %w", err))
	}
	signature := w.keypair.SignTransaction(txBytes)

	result, err := w.client.ExecuteTransactionBlock(ctx, meta.TxBytes, []string{signature})
	if err != nil {
		return "", classifyTransferError(err)
	}
	if result.Effects != nil && result.Effects.Status.Status != executionStatusSuccess {
		logger.Warn("transfer execution failed", "digest", result.Digest, "error", result.Effects.Status.Error)
		return "", classifyFailureMessage(result.Effects.Status.Error)
	}
	return result.Digest, nil
}

// pickGasCoin chooses the largest coin object. If even that one cannot
// cover amount plus gas the chain aborts the execution and the failure is
// classified from the effects; the faucet only fails fast when the wallet
// owns no coins at all.
func pickGasCoin(coins []Coin) (Coin, bool) {
	var (
		best        Coin
		bestBalance uint64
		found       bool
	)
	for _, coin := range coins {
		balance, err := strconv.ParseUint(coin.Balance, 10, 64)
		if err != nil {
			continue
		}
		if !found || balance > bestBalance {
			best, bestBalance, found = coin, balance, true
		}
	}
	return best, found
}
