// Command balance-check reports the funding wallet's balance and how many
// dispenses it can still serve. Intended for operators and cron alerting;
// exits non-zero when the key is missing or the fullnode is unreachable.
package main

import (
	"context"
	"fmt"
	nethttp "net/http"
	"os"
	"time"

	"suifaucet/backend/internal/config"
	"suifaucet/backend/internal/sui"
)

// lowBalanceThreshold warns when fewer than this many dispenses remain.
const lowBalanceThreshold = 10

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.Load()
	if cfg.PrivateKey == "" {
		return fmt.Errorf("FAUCET_PRIVATE_KEY not set")
	}

	keypair, err := sui.ParseKeypair(cfg.PrivateKey)
	if err != nil {
		return fmt.Errorf("parse private key: %w", err)
	}

	client := sui.NewClient(cfg.RPCURL, &nethttp.Client{Timeout: 30 * time.Second})
	wallet := sui.NewWallet(client, keypair)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	balance, err := wallet.Balance(ctx)
	if err != nil {
		return fmt.Errorf("query balance: %w", err)
	}

	remaining := int64(0)
	if cfg.AmountMist > 0 {
		remaining = int64(balance) / cfg.AmountMist
	}

	fmt.Println("Faucet wallet:", wallet.Address())
	fmt.Printf("Balance:       %s SUI (%d MIST)\n", sui.FormatMist(balance), balance)
	fmt.Printf("Dispense size: %s SUI\n", sui.FormatMist(uint64(cfg.AmountMist)))
	fmt.Printf("Requests left: %d\n", remaining)
	fmt.Println("Explorer:      https://testnet.suivision.xyz/account/" + wallet.Address())

	if remaining < lowBalanceThreshold {
		fmt.Println()
		fmt.Printf("WARNING: fewer than %d requests remaining, refill the faucet wallet\n", lowBalanceThreshold)
	}
	return nil
}
