package service

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidAddress rejects a malformed destination address before any
	// side effect.
	ErrInvalidAddress = errors.New("invalid wallet address")
	// ErrNotConfigured means no funding key is loaded; dispensing cannot
	// proceed.
	ErrNotConfigured = errors.New("faucet not configured")
)

// Rate limit scopes identify which key blocked the request.
const (
	ScopeIP     = "ip"
	ScopeWallet = "wallet"
)

// RateLimitError is a throttling rejection. No ledger row exists for it.
type RateLimitError struct {
	Scope string
}

func (e *RateLimitError) Error() string {
	return "rate limit exceeded for " + e.Scope
}

// InsufficientFundsError reports a funding shortfall detected before
// submission. The ledger row is already marked failed.
type InsufficientFundsError struct {
	AvailableMist uint64
	RequiredMist  uint64
	FaucetAddress string
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("faucet out of funds: available %d MIST, required %d MIST", e.AvailableMist, e.RequiredMist)
}

// SubmitError is a classified submission failure. Technical is caller-safe;
// raw diagnostics stay in the logs.
type SubmitError struct {
	Code      string
	Technical string
}

func (e *SubmitError) Error() string {
	return e.Technical
}
