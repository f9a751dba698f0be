package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"suifaucet/backend/internal/service"
)

type HealthHandler struct {
	service service.HealthService
}

type healthResponse struct {
	Status    string       `json:"status"`
	Checks    healthChecks `json:"checks"`
	Timestamp string       `json:"timestamp"`
}

type healthChecks struct {
	Database     bool `json:"database"`
	SuiNetwork   bool `json:"suiNetwork"`
	FaucetWallet bool `json:"faucetWallet"`
	Environment  bool `json:"environment"`
}

func NewHealthHandler(service service.HealthService) *HealthHandler {
	return &HealthHandler{service: service}
}

func (h *HealthHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/health", h.Check)
}

func (h *HealthHandler) Check(c echo.Context) error {
	status := h.service.Check(c.Request().Context())

	response := healthResponse{
		Status: "healthy",
		Checks: healthChecks{
			Database:     status.Database,
			SuiNetwork:   status.SuiNetwork,
			FaucetWallet: status.FaucetWallet,
			Environment:  status.Environment,
		},
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}

	code := http.StatusOK
	if !status.Healthy {
		response.Status = "unhealthy"
		code = http.StatusServiceUnavailable
	}
	return c.JSON(code, response)
}
