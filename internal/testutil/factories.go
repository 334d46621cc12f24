package testutil

import (
	"database/sql"
	"testing"
	"time"

	"github.com/fundscope/Fund-Discovery-Backend/internal/model"
	"github.com/fundscope/Fund-Discovery-Backend/internal/repository"
)

// FundBuilder provides a fluent interface for creating test funds.
//
// Example usage:
//
//	// Simple creation with defaults
//	fund := testutil.NewFund().Build(t, db)
//
//	// Customized fund
//	fund := testutil.NewFund().
//	    WithName("Axis Bluechip Fund").
//	    WithCategory("Equity").
//	    WithNav(45.2).
//	    Build(t, db)
type FundBuilder struct {
	fund model.Fund
}

// NewFund creates a FundBuilder with sensible defaults.
func NewFund() *FundBuilder {
	return &FundBuilder{
		fund: model.Fund{
			ID:            MakeID(),
			FundID:        MakeFundID(),
			Name:          MakeFundName("Test Fund"),
			Category:      "Equity",
			SubCategory:   "Large Cap",
			FundHouse:     "Test Asset Management",
			FundManager:   "Test Manager",
			Benchmark:     "NIFTY 50",
			ExitLoad:      "1% if redeemed within 1 year",
			Nav:           100,
			ExpenseRatio:  1.0,
			Aum:           5000,
			MinInvestment: 500,
			RiskRating:    "Moderate",
			InceptionDate: time.Date(2015, 1, 1, 0, 0, 0, 0, time.UTC),
		},
	}
}

// WithID sets a custom internal ID.
func (b *FundBuilder) WithID(id string) *FundBuilder {
	b.fund.ID = id
	return b
}

// WithFundID sets a custom external fund ID.
func (b *FundBuilder) WithFundID(fundID string) *FundBuilder {
	b.fund.FundID = fundID
	return b
}

// WithName sets a custom name.
func (b *FundBuilder) WithName(name string) *FundBuilder {
	b.fund.Name = name
	return b
}

// WithCategory sets a custom category.
func (b *FundBuilder) WithCategory(category string) *FundBuilder {
	b.fund.Category = category
	return b
}

// WithFundHouse sets a custom fund house.
func (b *FundBuilder) WithFundHouse(fundHouse string) *FundBuilder {
	b.fund.FundHouse = fundHouse
	return b
}

// WithFundManager sets a custom fund manager.
func (b *FundBuilder) WithFundManager(fundManager string) *FundBuilder {
	b.fund.FundManager = fundManager
	return b
}

// WithRiskRating sets a custom risk rating.
func (b *FundBuilder) WithRiskRating(riskRating string) *FundBuilder {
	b.fund.RiskRating = riskRating
	return b
}

// WithNav sets a custom NAV.
func (b *FundBuilder) WithNav(nav float64) *FundBuilder {
	b.fund.Nav = nav
	return b
}

// WithExpenseRatio sets a custom expense ratio.
func (b *FundBuilder) WithExpenseRatio(ratio float64) *FundBuilder {
	b.fund.ExpenseRatio = ratio
	return b
}

// WithAum sets a custom AUM.
func (b *FundBuilder) WithAum(aum float64) *FundBuilder {
	b.fund.Aum = aum
	return b
}

// WithReturns1Y sets a custom one-year return.
func (b *FundBuilder) WithReturns1Y(returns float64) *FundBuilder {
	b.fund.Returns1Y = &returns
	return b
}

// WithHoldings sets the fund's ordered holdings.
func (b *FundBuilder) WithHoldings(holdings ...model.Holding) *FundBuilder {
	b.fund.Holdings = holdings
	return b
}

// Build creates the fund (and its holdings) in the database and returns it.
func (b *FundBuilder) Build(t *testing.T, db *sql.DB) model.Fund {
	t.Helper()

	query := `
		INSERT INTO fund (
			id, fund_id, name, category, sub_category, fund_house, fund_manager,
			benchmark, description, investment_objective, exit_load,
			nav, expense_ratio, aum, min_investment,
			returns_1y, returns_3y, returns_5y, returns_10y,
			risk_rating, inception_date
		)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	f := b.fund
	_, err := db.Exec(query,
		f.ID, f.FundID, f.Name, f.Category, f.SubCategory, f.FundHouse, f.FundManager,
		f.Benchmark, f.Description, f.InvestmentObjective, f.ExitLoad,
		f.Nav, f.ExpenseRatio, f.Aum, f.MinInvestment,
		nullable(f.Returns1Y), nullable(f.Returns3Y), nullable(f.Returns5Y), nullable(f.Returns10Y),
		f.RiskRating, f.InceptionDate.Format("2006-01-02"),
	)
	if err != nil {
		t.Fatalf("Failed to create test fund: %v", err)
	}

	for i, h := range f.Holdings {
		_, err := db.Exec(`
			INSERT INTO fund_holding (id, fund_id, company, percentage, position)
			VALUES (?, ?, ?, ?, ?)
		`, MakeID(), f.ID, h.Company, h.Percentage, i)
		if err != nil {
			t.Fatalf("Failed to create test holding: %v", err)
		}
	}

	return f
}

func nullable(v *float64) any {
	if v == nil {
		return nil
	}
	return *v
}

// SavedFundBuilder provides a fluent interface for creating watchlist
// entries directly in the database, bypassing the service layer.
//
// Example usage:
//
//	saved := testutil.NewSavedFund().
//	    WithUserID(userID).
//	    WithFundID("AXIS001").
//	    Build(t, db)
type SavedFundBuilder struct {
	savedFund model.SavedFund
}

// NewSavedFund creates a SavedFundBuilder with sensible defaults.
func NewSavedFund() *SavedFundBuilder {
	return &SavedFundBuilder{
		savedFund: model.SavedFund{
			ID:           MakeID(),
			UserID:       MakeID(),
			FundID:       MakeFundID(),
			FundName:     MakeFundName("Saved Fund"),
			FundCategory: "Equity",
			Nav:          100,
			ExpenseRatio: 1.0,
			Aum:          5000,
			FundManager:  "Test Manager",
			FundHouse:    "Test Asset Management",
			CreatedAt:    time.Now().UTC(),
		},
	}
}

// WithUserID sets the owning user.
func (b *SavedFundBuilder) WithUserID(userID string) *SavedFundBuilder {
	b.savedFund.UserID = userID
	return b
}

// WithFundID sets the external fund ID.
func (b *SavedFundBuilder) WithFundID(fundID string) *SavedFundBuilder {
	b.savedFund.FundID = fundID
	return b
}

// WithFundName sets the snapshot fund name.
func (b *SavedFundBuilder) WithFundName(name string) *SavedFundBuilder {
	b.savedFund.FundName = name
	return b
}

// WithCreatedAt sets the save time. Tests ordering on the watchlist.
func (b *SavedFundBuilder) WithCreatedAt(createdAt time.Time) *SavedFundBuilder {
	b.savedFund.CreatedAt = createdAt
	return b
}

// Build creates the saved fund in the database and returns it.
func (b *SavedFundBuilder) Build(t *testing.T, db *sql.DB) model.SavedFund {
	t.Helper()

	query := `
		INSERT INTO saved_fund (
			id, user_id, fund_id, fund_name, fund_category,
			nav, expense_ratio, aum, fund_manager, fund_house, created_at
		)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	sf := b.savedFund
	_, err := db.Exec(query,
		sf.ID, sf.UserID, sf.FundID, sf.FundName, sf.FundCategory,
		sf.Nav, sf.ExpenseRatio, sf.Aum, sf.FundManager, sf.FundHouse,
		sf.CreatedAt.UTC().Format(repository.CreatedAtLayout),
	)
	if err != nil {
		t.Fatalf("Failed to create test saved fund: %v", err)
	}

	return sf
}
