package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"suifaucet/backend/internal/service"
	"suifaucet/backend/internal/sui"
)

type errorResponse struct {
	Error          string            `json:"error"`
	Details        map[string]string `json:"details,omitempty"`
	TechnicalError string            `json:"technicalError,omitempty"`
}

// submitSuggestions maps classified submission failures to operator-facing
// next steps.
var submitSuggestions = map[string]string{
	sui.CodeInsufficientBalance: "The faucet wallet needs to be refilled. Please contact the administrator.",
	sui.CodeGas:                 "The network may be congested. Please try again in a few minutes.",
	sui.CodeTimeout:             "The transaction may still complete. Check the explorer before retrying.",
	sui.CodeUnknown:             "Please try again later.",
}

// writeServiceError maps service-layer errors to the HTTP surface. Raw
// diagnostics never reach the client except through SubmitError.Technical,
// which the service layer already sanitizes.
func writeServiceError(c echo.Context, err error) error {
	if errors.Is(err, service.ErrInvalidAddress) {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "Invalid Sui wallet address"})
	}

	var rateErr *service.RateLimitError
	if errors.As(err, &rateErr) {
		message := "Rate limit exceeded for this IP address. Please try again later."
		if rateErr.Scope == service.ScopeWallet {
			message = "Rate limit exceeded for this wallet address. Please try again later."
		}
		return c.JSON(http.StatusTooManyRequests, errorResponse{Error: message})
	}

	if errors.Is(err, service.ErrNotConfigured) {
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "Faucet not configured. Please contact administrator."})
	}

	var fundsErr *service.InsufficientFundsError
	if errors.As(err, &fundsErr) {
		return c.JSON(http.StatusServiceUnavailable, errorResponse{
			Error: "Faucet is temporarily out of funds. Please try again later.",
			Details: map[string]string{
				"availableBalance": sui.FormatMist(fundsErr.AvailableMist) + " SUI",
				"requiredAmount":   sui.FormatMist(fundsErr.RequiredMist) + " SUI",
				"faucetAddress":    fundsErr.FaucetAddress,
			},
		})
	}

	var submitErr *service.SubmitError
	if errors.As(err, &submitErr) {
		suggestion, ok := submitSuggestions[submitErr.Code]
		if !ok {
			suggestion = submitSuggestions[sui.CodeUnknown]
		}
		return c.JSON(http.StatusInternalServerError, errorResponse{
			Error: "Failed to send tokens. Please try again.",
			Details: map[string]string{
				"type":       submitErr.Code,
				"suggestion": suggestion,
			},
			TechnicalError: submitErr.Technical,
		})
	}

	return c.JSON(http.StatusInternalServerError, errorResponse{Error: "Internal server error"})
}
