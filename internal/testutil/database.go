package testutil

import (
	"database/sql"
	"testing"

	_ "modernc.org/sqlite" // Test Package
)

// SetupTestDB creates an in-memory SQLite database for testing.
// The database is automatically cleaned up when the test completes.
//
// Example usage:
//
//	func TestSomething(t *testing.T) {
//	    db := testutil.SetupTestDB(t)
//	    // db is ready to use with schema created
//	}
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	// In-memory database (destroyed when connection closes)
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	// Every pool connection to ":memory:" would get its own database;
	// pin to one connection so all queries see the same schema and data.
	db.SetMaxOpenConns(1)

	// Test connection
	if err := db.Ping(); err != nil {
		t.Fatalf("Failed to ping test database: %v", err)
	}

	// Configure SQLite for testing
	pragmas := []string{
		"PRAGMA foreign_keys = ON",
		"PRAGMA timezone = 'UTC'",
		"PRAGMA journal_mode = MEMORY", // Faster for tests
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			t.Fatalf("Failed to set pragma: %v", err)
		}
	}

	// Create schema
	if err := createTestSchema(db); err != nil {
		t.Fatalf("Failed to create test schema: %v", err)
	}

	// Cleanup when test ends
	t.Cleanup(func() {
		db.Close()
	})

	return db
}

// createTestSchema creates all database tables for testing.
// Schema is synchronized with the goose migrations in internal/database.
func createTestSchema(db *sql.DB) error {
	schema := `
		-- Fund table
		CREATE TABLE fund (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			fund_id VARCHAR(50) NOT NULL UNIQUE,
			name VARCHAR(200) NOT NULL,
			category VARCHAR(10) NOT NULL,
			sub_category VARCHAR(100) NOT NULL,
			fund_house VARCHAR(100) NOT NULL,
			fund_manager VARCHAR(100) NOT NULL,
			benchmark VARCHAR(100) NOT NULL,
			description TEXT,
			investment_objective TEXT,
			exit_load VARCHAR(200) NOT NULL,
			nav FLOAT NOT NULL,
			expense_ratio FLOAT NOT NULL,
			aum FLOAT NOT NULL,
			min_investment FLOAT NOT NULL,
			returns_1y FLOAT,
			returns_3y FLOAT,
			returns_5y FLOAT,
			returns_10y FLOAT,
			risk_rating VARCHAR(10) NOT NULL,
			inception_date DATE NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		-- Fund holdings table
		CREATE TABLE fund_holding (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			fund_id VARCHAR(36) NOT NULL,
			company VARCHAR(200) NOT NULL,
			percentage FLOAT NOT NULL,
			position INTEGER NOT NULL,
			FOREIGN KEY(fund_id) REFERENCES fund(id) ON DELETE CASCADE
		);

		-- Saved fund (watchlist) table
		CREATE TABLE saved_fund (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			user_id VARCHAR(36) NOT NULL,
			fund_id VARCHAR(50) NOT NULL,
			fund_name VARCHAR(200) NOT NULL,
			fund_category VARCHAR(10),
			nav FLOAT,
			expense_ratio FLOAT,
			aum FLOAT,
			fund_manager VARCHAR(100),
			fund_house VARCHAR(100),
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP NOT NULL,
			CONSTRAINT unique_user_fund UNIQUE (user_id, fund_id)
		);

		-- Indexes for performance
		CREATE INDEX IF NOT EXISTS ix_fund_category ON fund(category);
		CREATE INDEX IF NOT EXISTS ix_fund_fund_house ON fund(fund_house);
		CREATE INDEX IF NOT EXISTS ix_fund_risk_rating ON fund(risk_rating);
		CREATE INDEX IF NOT EXISTS ix_fund_holding_fund_id ON fund_holding(fund_id);
		CREATE INDEX IF NOT EXISTS ix_saved_fund_user_id ON saved_fund(user_id);
		CREATE INDEX IF NOT EXISTS ix_saved_fund_user_id_created_at ON saved_fund(user_id, created_at);
	`

	_, err := db.Exec(schema)
	return err
}

// CleanDatabase truncates all tables in dependency order.
// Useful for reusing the same database across multiple tests.
func CleanDatabase(t *testing.T, db *sql.DB) {
	t.Helper()

	// Order matters: delete children before parents due to foreign keys
	tables := []string{
		"saved_fund",
		"fund_holding",
		"fund",
	}

	for _, table := range tables {
		//nolint:gosec // G202: Table names are from hardcoded slice, no SQL injection risk
		query := "DELETE FROM " + table
		if _, err := db.Exec(query); err != nil {
			t.Fatalf("Failed to clean table %s: %v", table, err)
		}
	}
}

// CountRows returns the number of rows in a table.
// Useful for assertions in tests.
//
// Example usage:
//
//	count := testutil.CountRows(t, db, "saved_fund")
func CountRows(t *testing.T, db *sql.DB, table string) int {
	t.Helper()

	var count int
	query := "SELECT COUNT(*) FROM " + table
	err := db.QueryRow(query).Scan(&count)
	if err != nil {
		t.Fatalf("Failed to count rows in %s: %v", table, err)
	}

	return count
}

// AssertRowCount asserts that a table has the expected number of rows.
//
// Example usage:
//
//	testutil.AssertRowCount(t, db, "saved_fund", 1)
func AssertRowCount(t *testing.T, db *sql.DB, table string, expected int) {
	t.Helper()

	actual := CountRows(t, db, table)
	if actual != expected {
		t.Errorf("Expected %d rows in %s, got %d", expected, table, actual)
	}
}
