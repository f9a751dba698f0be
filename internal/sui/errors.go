package sui

import (
	"context"
	"errors"
	"strings"
)

// Transfer error codes. The JSON-RPC surface only exposes abort strings, so
// classification matches on the documented failure names; everything
// unrecognized stays Unknown rather than guessing.
const (
	CodeInsufficientBalance = "InsufficientBalance"
	CodeGas                 = "GasError"
	CodeTimeout             = "Timeout"
	CodeUnknown             = "Unknown"
)

// TransferError is a classified transfer failure. Message is safe to record
// in the ledger and echo to callers.
type TransferError struct {
	Code    string
	Message string
}

func (e *TransferError) Error() string {
	return e.Message
}

func classifyTransferError(err error) *TransferError {
	if errors.Is(err, context.DeadlineExceeded) {
		return &TransferError{
			Code:    CodeTimeout,
			Message: "Transaction confirmation timed out",
		}
	}
	return classifyFailureMessage(err.Error())
}

func classifyFailureMessage(message string) *TransferError {
	switch {
	case strings.Contains(message, "InsufficientCoinBalance"),
		strings.Contains(message, "InsufficientGas"):
		return &TransferError{
			Code:    CodeInsufficientBalance,
			Message: "Insufficient balance in faucet wallet",
		}
	case strings.Contains(message, "InvalidGasObject"),
		strings.Contains(message, "GasBalanceTooLow"):
		return &TransferError{
			Code:    CodeGas,
			Message: "Invalid gas object or insufficient gas",
		}
	default:
		return &TransferError{
			Code:    CodeUnknown,
			Message: message,
		}
	}
}
