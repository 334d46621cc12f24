package testutil

import (
	"database/sql"
	"math/rand"
	"testing"

	"github.com/fundscope/Fund-Discovery-Backend/internal/repository"
	"github.com/fundscope/Fund-Discovery-Backend/internal/service"
	"github.com/google/uuid"
)

// NewTestFundService wires a FundService against the given test database.
func NewTestFundService(t *testing.T, db *sql.DB) *service.FundService {
	t.Helper()

	fundRepo := repository.NewFundRepository(db)
	return service.NewFundService(fundRepo)
}

// NewTestSavedFundService wires a SavedFundService against the given test database.
func NewTestSavedFundService(t *testing.T, db *sql.DB) *service.SavedFundService {
	t.Helper()

	savedFundRepo := repository.NewSavedFundRepository(db)
	return service.NewSavedFundService(savedFundRepo)
}

// NewTestSystemService wires a SystemService against the given test database.
func NewTestSystemService(t *testing.T, db *sql.DB) *service.SystemService {
	t.Helper()

	return service.NewSystemService(db)
}

// MakeID generates a UUID string for use in tests.
//
// Example usage:
//
//	id := testutil.MakeID()
//	// Returns: "550e8400-e29b-41d4-a716-446655440000"
func MakeID() string {
	return uuid.New().String()
}

// MakeFundID generates a realistic external fund ID for testing.
//
// Example usage:
//
//	fundID := testutil.MakeFundID()
//	// Returns: "FUND-1A2B3C4D"
func MakeFundID() string {
	return "FUND-" + randomAlphanumeric(8)
}

// MakeFundName generates a unique fund name for testing.
//
// Example usage:
//
//	name := testutil.MakeFundName("Tech Fund")
//	// Returns: "Tech Fund XYZ789"
func MakeFundName(base string) string {
	if base == "" {
		base = "Fund"
	}
	return base + " " + randomAlphanumeric(6)
}

const alphanumeric = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

func randomAlphanumeric(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = alphanumeric[rand.Intn(len(alphanumeric))]
	}
	return string(b)
}
