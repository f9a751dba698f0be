package db

import (
	"database/sql"
	"fmt"
)

// Base schema - uses Snowflake IDs (no AUTOINCREMENT)
const baseSchema = `
CREATE TABLE IF NOT EXISTS faucet_requests (
  id INTEGER PRIMARY KEY,
  wallet_address TEXT NOT NULL,
  amount INTEGER NOT NULL,
  ip_address TEXT NOT NULL,
  user_agent TEXT NOT NULL,
  status TEXT NOT NULL DEFAULT 'pending',
  tx_hash TEXT,
  error_message TEXT,
  created_at TEXT NOT NULL,
  completed_at TEXT
);

CREATE INDEX IF NOT EXISTS idx_faucet_requests_created_at ON faucet_requests(created_at);
CREATE INDEX IF NOT EXISTS idx_faucet_requests_status ON faucet_requests(status);
CREATE INDEX IF NOT EXISTS idx_faucet_requests_wallet ON faucet_requests(wallet_address);
`

func Migrate(db *sql.DB) error {
	if _, err := db.Exec(baseSchema); err != nil {
		return fmt.Errorf("migrate base schema: %w", err)
	}
	return nil
}
