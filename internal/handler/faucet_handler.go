package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"suifaucet/backend/internal/metrics"
	"suifaucet/backend/internal/model"
	"suifaucet/backend/internal/service"
)

type FaucetHandler struct {
	service service.FaucetService
}

type dispenseRequest struct {
	WalletAddress string `json:"walletAddress"`
}

type dispenseResponse struct {
	Success     bool   `json:"success"`
	Message     string `json:"message"`
	TxHash      string `json:"txHash"`
	Amount      int64  `json:"amount"`
	ExplorerURL string `json:"explorerUrl"`
	RequestID   string `json:"requestId"`
}

type statsResponse struct {
	TotalRequests int64           `json:"totalRequests"`
	Stats         []statusCount   `json:"stats"`
	Recent        []recentRequest `json:"recentRequests"`
}

type statusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

type recentRequest struct {
	ID            string `json:"id"`
	WalletAddress string `json:"walletAddress"`
	Amount        int64  `json:"amount"`
	Status        string `json:"status"`
	TxHash        string `json:"txHash,omitempty"`
	CreatedAt     string `json:"createdAt"`
}

func NewFaucetHandler(service service.FaucetService) *FaucetHandler {
	return &FaucetHandler{service: service}
}

func (h *FaucetHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/faucet", h.Dispense)
	g.GET("/faucet/stats", h.Stats)
}

func (h *FaucetHandler) Dispense(c echo.Context) error {
	var req dispenseRequest
	if err := c.Bind(&req); err != nil {
		metrics.RequestsTotal.WithLabelValues(metrics.OutcomeInvalid).Inc()
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "Invalid Sui wallet address"})
	}

	result, err := h.service.Dispense(c.Request().Context(), service.DispenseParams{
		WalletAddress: req.WalletAddress,
		IPAddress:     c.RealIP(),
		UserAgent:     c.Request().UserAgent(),
	})
	if err != nil {
		metrics.RequestsTotal.WithLabelValues(dispenseOutcome(err)).Inc()
		var rateErr *service.RateLimitError
		if errors.As(err, &rateErr) {
			metrics.RateLimitHits.WithLabelValues(rateErr.Scope).Inc()
		}
		return writeServiceError(c, err)
	}

	metrics.RequestsTotal.WithLabelValues(metrics.OutcomeCompleted).Inc()
	metrics.DispensedMist.Add(float64(result.AmountMist))

	return c.JSON(http.StatusOK, dispenseResponse{
		Success:     true,
		Message:     result.Message,
		TxHash:      result.TxHash,
		Amount:      result.AmountMist,
		ExplorerURL: result.ExplorerURL,
		RequestID:   strconv.FormatInt(result.RequestID, 10),
	})
}

func (h *FaucetHandler) Stats(c echo.Context) error {
	stats, err := h.service.Stats(c.Request().Context())
	if err != nil {
		return writeServiceError(c, err)
	}

	counts := make([]statusCount, 0, len(stats.StatusCounts))
	for _, sc := range stats.StatusCounts {
		counts = append(counts, statusCount{Status: sc.Status, Count: sc.Count})
	}

	recent := make([]recentRequest, 0, len(stats.Recent))
	for _, r := range stats.Recent {
		recent = append(recent, toRecentRequest(r))
	}

	return c.JSON(http.StatusOK, statsResponse{
		TotalRequests: stats.TotalRequests,
		Stats:         counts,
		Recent:        recent,
	})
}

func dispenseOutcome(err error) string {
	var rateErr *service.RateLimitError
	switch {
	case errors.Is(err, service.ErrInvalidAddress):
		return metrics.OutcomeInvalid
	case errors.As(err, &rateErr):
		return metrics.OutcomeRateLimited
	default:
		return metrics.OutcomeFailed
	}
}

func toRecentRequest(r model.FaucetRequest) recentRequest {
	out := recentRequest{
		ID:            strconv.FormatInt(r.ID, 10),
		WalletAddress: maskAddress(r.WalletAddress),
		Amount:        r.Amount,
		Status:        r.Status,
		CreatedAt:     r.CreatedAt.UTC().Format(time.RFC3339),
	}
	if r.TxHash != nil {
		out.TxHash = *r.TxHash
	}
	return out
}

// maskAddress keeps the 0x prefix plus four leading and four trailing hex
// characters so the stats view never exposes full recipient addresses.
func maskAddress(address string) string {
	if len(address) <= 10 {
		return address
	}
	return address[:6] + "..." + address[len(address)-4:]
}
