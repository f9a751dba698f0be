package main

import (
	"context"
	"errors"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"suifaucet/backend/internal/config"
	"suifaucet/backend/internal/db"
	"suifaucet/backend/internal/handler"
	"suifaucet/backend/internal/http"
	"suifaucet/backend/internal/ratelimit"
	"suifaucet/backend/internal/repository"
	"suifaucet/backend/internal/scheduler"
	"suifaucet/backend/internal/service"
	"suifaucet/backend/internal/sui"
	"suifaucet/backend/pkg/logger"
	"suifaucet/backend/pkg/snowflake"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()
	logger.Init(logger.ParseLevel(cfg.LogLevel))

	if err := run(cfg); err != nil {
		logger.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func run(cfg config.Config) error {
	if err := snowflake.Init(cfg.SnowflakeNode); err != nil {
		return err
	}

	database, err := db.Open(cfg.DBPath)
	if err != nil {
		return err
	}
	defer database.Close()

	client := sui.NewClient(cfg.RPCURL, &nethttp.Client{Timeout: 30 * time.Second})

	wallet, err := loadWallet(client, cfg.PrivateKey)
	if err != nil {
		return err
	}

	memory := ratelimit.NewMemory(cfg.RateLimitWindow)
	limiter, err := buildLimiter(cfg, memory)
	if err != nil {
		return err
	}

	requests := repository.NewFaucetRequestRepository(database)
	faucetService := service.NewFaucetService(requests, limiter, wallet, service.FaucetConfig{
		AmountMist:    cfg.AmountMist,
		ExplorerURL:   cfg.ExplorerURL,
		SubmitTimeout: cfg.SubmitTimeout,
	})
	healthService := service.NewHealthService(database, client, wallet)

	e := http.NewRouter(
		handler.NewFaucetHandler(faucetService),
		handler.NewHealthHandler(healthService),
		cfg.StaticDir,
	)

	janitor := scheduler.New(memory, cfg.RateLimitWindow)
	janitor.Start()
	defer janitor.Stop()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	group, ctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		logger.Info("server listening", "addr", cfg.Addr, "rpc", cfg.RPCURL)
		if err := e.Start(cfg.Addr); err != nil && !errors.Is(err, nethttp.ErrServerClosed) {
			return err
		}
		return nil
	})
	group.Go(func() error {
		<-ctx.Done()
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return e.Shutdown(shutdownCtx)
	})

	return group.Wait()
}

// loadWallet parses the funding key if one is configured. Without a key the
// faucet still serves health and stats but rejects dispense calls.
func loadWallet(client *sui.Client, privateKey string) (service.FundingWallet, error) {
	if privateKey == "" {
		logger.Warn("FAUCET_PRIVATE_KEY not set, faucet runs unconfigured")
		return nil, nil
	}
	keypair, err := sui.ParseKeypair(privateKey)
	if err != nil {
		return nil, err
	}
	wallet := sui.NewWallet(client, keypair)
	logger.Info("funding wallet loaded", "address", wallet.Address())
	return wallet, nil
}

// buildLimiter wires the shared backend when configured, with the in-memory
// limiter as degradation target. Without REDIS_URL the in-memory limiter
// serves alone.
func buildLimiter(cfg config.Config, memory *ratelimit.Memory) (ratelimit.Limiter, error) {
	if cfg.RedisURL == "" {
		logger.Info("REDIS_URL not set, using in-memory rate limiting")
		return memory, nil
	}
	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, err
	}
	primary := ratelimit.NewRedis(redis.NewClient(opts), cfg.RateLimitWindow)
	return ratelimit.NewFallback(primary, memory), nil
}
