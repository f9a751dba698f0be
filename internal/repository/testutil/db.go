package testutil

import (
	"database/sql"
	"fmt"
	"sync"
	"testing"
	"time"

	"suifaucet/backend/internal/db"
	"suifaucet/backend/pkg/snowflake"

	_ "modernc.org/sqlite"
)

// snowflakeOnce guards global ID-node initialization across parallel tests.
var snowflakeOnce sync.Once

// NewTestDB creates an in-memory sqlite database with all migrations applied.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()

	snowflakeOnce.Do(func() {
		if err := snowflake.Init(0); err != nil {
			// t.Fatalf is not usable inside sync.Once
			panic("failed to initialize snowflake: " + err.Error())
		}
	})

	// Shared-cache mode keeps the in-memory database alive across
	// connections; the name is unique per test to avoid cross-talk.
	dbName := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared&_pragma=foreign_keys(1)", t.Name(), time.Now().UnixNano())
	database, err := sql.Open("sqlite", dbName)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.Migrate(database); err != nil {
		database.Close()
		t.Fatalf("failed to migrate test database: %v", err)
	}

	t.Cleanup(func() {
		database.Close()
	})

	return database
}
