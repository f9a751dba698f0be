package http

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"suifaucet/backend/internal/handler"
)

// NewRouter assembles the Echo instance: /api routes, the Prometheus
// scrape endpoint, and optional static frontend serving.
func NewRouter(
	faucetHandler *handler.FaucetHandler,
	healthHandler *handler.HealthHandler,
	staticDir string,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.CORS())

	api := e.Group("/api")
	faucetHandler.RegisterRoutes(api)
	healthHandler.RegisterRoutes(api)

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	RegisterStatic(e, staticDir)

	return e
}
