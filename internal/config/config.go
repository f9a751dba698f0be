package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Default dispense amount: 1 SUI in MIST (1 SUI = 10^9 MIST).
const DefaultAmountMist = 1_000_000_000

type Config struct {
	Addr      string
	DataDir   string
	DBPath    string
	StaticDir string
	LogLevel  string

	// Funding wallet signing key, base64 encoded. Empty means the faucet
	// runs unconfigured and rejects dispense calls.
	PrivateKey string

	// Shared rate-limit backend. Empty means permanent in-process fallback.
	RedisURL string

	RPCURL      string
	ExplorerURL string

	AmountMist      int64
	RateLimitWindow time.Duration
	SubmitTimeout   time.Duration

	SnowflakeNode int64
}

func Load() Config {
	addr := getenv("FAUCET_ADDR", ":8080")
	dataDir := getenv("FAUCET_DATA_DIR", "data")
	dbPath := os.Getenv("FAUCET_DB_PATH")
	if dbPath == "" {
		dbPath = filepath.Join(dataDir, "faucet.db")
	}
	staticDir := os.Getenv("FAUCET_STATIC_DIR")
	if staticDir == "" {
		staticDir = detectStaticDir()
	}

	return Config{
		Addr:            addr,
		DataDir:         dataDir,
		DBPath:          filepath.Clean(dbPath),
		StaticDir:       staticDir,
		LogLevel:        getenv("FAUCET_LOG_LEVEL", "info"),
		PrivateKey:      os.Getenv("FAUCET_PRIVATE_KEY"),
		RedisURL:        os.Getenv("REDIS_URL"),
		RPCURL:          getenv("SUI_RPC_URL", "https://fullnode.testnet.sui.io:443"),
		ExplorerURL:     getenv("FAUCET_EXPLORER_URL", "https://testnet.suivision.xyz/txblock/"),
		AmountMist:      getenvInt64("FAUCET_AMOUNT", DefaultAmountMist),
		RateLimitWindow: getenvDuration("FAUCET_RATE_LIMIT_WINDOW", time.Hour),
		SubmitTimeout:   getenvDuration("FAUCET_SUBMIT_TIMEOUT", 30*time.Second),
		SnowflakeNode:   getenvInt64("FAUCET_SNOWFLAKE_NODE", 0),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt64(key string, fallback int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	parsed, err := strconv.ParseInt(v, 10, 64)
	if err != nil || parsed <= 0 {
		return fallback
	}
	return parsed
}

func getenvDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(v)
	if err != nil || parsed <= 0 {
		return fallback
	}
	return parsed
}

func detectStaticDir() string {
	candidates := []string{
		"./frontend/dist",
		"../frontend/dist",
	}
	for _, candidate := range candidates {
		indexPath := filepath.Join(candidate, "index.html")
		if info, err := os.Stat(indexPath); err == nil && !info.IsDir() {
			return candidate
		}
	}
	return ""
}
