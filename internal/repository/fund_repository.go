package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/fundscope/Fund-Discovery-Backend/internal/apperrors"
	"github.com/fundscope/Fund-Discovery-Backend/internal/model"
	"github.com/google/uuid"
)

// FundRepository provides data access methods for the fund and
// fund_holding tables. Funds are read-mostly: end-user requests only
// query them, writes happen through the seed loader.
type FundRepository struct {
	db *sql.DB
}

// NewFundRepository creates a new FundRepository with the provided database connection.
func NewFundRepository(db *sql.DB) *FundRepository {
	return &FundRepository{db: db}
}

// sortColumns maps API sort field names to their fund table columns.
// The request layer rejects anything outside this set before it reaches
// the repository; the map is still the only source of ORDER BY text, so
// no caller-supplied string is ever spliced into a query.
var sortColumns = map[string]string{
	"name":         "name",
	"nav":          "nav",
	"returns1Y":    "returns_1y",
	"returns3Y":    "returns_3y",
	"expenseRatio": "expense_ratio",
	"aum":          "aum",
}

const fundColumns = `
	id, fund_id, name, category, sub_category, fund_house, fund_manager,
	benchmark, description, investment_objective, exit_load,
	nav, expense_ratio, aum, min_investment,
	returns_1y, returns_3y, returns_5y, returns_10y,
	risk_rating, inception_date`

// buildFilterClause translates fund filters into a WHERE clause and its
// arguments. All provided filters AND together; the search term matches
// name, fund house, or fund manager as a case-insensitive substring.
func buildFilterClause(filters model.FundFilters) (string, []any) {
	clause := " WHERE 1=1"
	var args []any

	if filters.Search != "" {
		// The term matches literally: a search for "100%" must not turn
		// into a wildcard that matches every fund.
		clause += ` AND (name LIKE ? ESCAPE '\' OR fund_house LIKE ? ESCAPE '\' OR fund_manager LIKE ? ESCAPE '\')`
		pattern := "%" + escapeLike(filters.Search) + "%"
		args = append(args, pattern, pattern, pattern)
	}
	if filters.Category != "" {
		clause += ` AND category = ?`
		args = append(args, filters.Category)
	}
	if filters.FundHouse != "" {
		clause += ` AND fund_house = ?`
		args = append(args, filters.FundHouse)
	}
	if filters.RiskRating != "" {
		clause += ` AND risk_rating = ?`
		args = append(args, filters.RiskRating)
	}

	return clause, args
}

// ListFunds retrieves one page of funds matching the given filters,
// sorted by the requested key. Holdings are not loaded for list results.
func (r *FundRepository) ListFunds(ctx context.Context, filters model.FundFilters) ([]model.Fund, error) {
	clause, args := buildFilterClause(filters)

	sortColumn, ok := sortColumns[filters.SortBy]
	if !ok {
		sortColumn = "name"
	}
	direction := "ASC"
	if filters.SortOrder == "desc" {
		direction = "DESC"
	}

	//#nosec G202 -- Safe: sortColumn and direction come from fixed maps, not from user input
	query := `SELECT` + fundColumns + `
		FROM fund` + clause + `
		ORDER BY ` + sortColumn + ` ` + direction + `
		LIMIT ? OFFSET ?`

	args = append(args, filters.Limit, (filters.Page-1)*filters.Limit)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query fund table: %w", err)
	}
	defer rows.Close()

	funds := []model.Fund{}

	for rows.Next() {
		f, err := scanFund(rows)
		if err != nil {
			return nil, err
		}
		funds = append(funds, f)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating fund table: %w", err)
	}

	return funds, nil
}

// CountFunds returns the total number of funds matching the given
// filters, independent of pagination.
func (r *FundRepository) CountFunds(ctx context.Context, filters model.FundFilters) (int, error) {
	clause, args := buildFilterClause(filters)

	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM fund`+clause, args...).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count fund table: %w", err)
	}

	return count, nil
}

// GetFundByFundID retrieves a single fund by its external fund ID,
// including its ordered holdings.
// Returns ErrFundNotFound if no fund matches.
func (r *FundRepository) GetFundByFundID(ctx context.Context, fundID string) (model.Fund, error) {
	query := `SELECT` + fundColumns + ` FROM fund WHERE fund_id = ?`

	row := r.db.QueryRowContext(ctx, query, fundID)
	f, err := scanFund(row)
	if err == sql.ErrNoRows {
		return model.Fund{}, apperrors.ErrFundNotFound
	}
	if err != nil {
		return model.Fund{}, err
	}

	holdings, err := r.getHoldings(ctx, f.ID)
	if err != nil {
		return model.Fund{}, err
	}
	f.Holdings = holdings

	return f, nil
}

func (r *FundRepository) getHoldings(ctx context.Context, id string) ([]model.Holding, error) {
	query := `
		SELECT company, percentage
		FROM fund_holding
		WHERE fund_id = ?
		ORDER BY position ASC
	`

	rows, err := r.db.QueryContext(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("failed to query fund_holding table: %w", err)
	}
	defer rows.Close()

	holdings := []model.Holding{}

	for rows.Next() {
		var h model.Holding
		if err := rows.Scan(&h.Company, &h.Percentage); err != nil {
			return nil, fmt.Errorf("failed to scan fund_holding table results: %w", err)
		}
		holdings = append(holdings, h)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating fund_holding table: %w", err)
	}

	return holdings, nil
}

// DistinctValues returns the sorted distinct values of one of the
// filterable fund columns. Used to populate the filter dropdowns.
func (r *FundRepository) DistinctValues(ctx context.Context, column string) ([]string, error) {
	// Restrict to the filterable columns so the column name can be
	// spliced into the query safely.
	switch column {
	case "category", "fund_house", "risk_rating":
	default:
		return nil, fmt.Errorf("column %q is not filterable", column)
	}

	//#nosec G202 -- Safe: column is checked against a fixed set above
	rows, err := r.db.QueryContext(ctx, `SELECT DISTINCT `+column+` FROM fund ORDER BY `+column+` ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query distinct %s values: %w", column, err)
	}
	defer rows.Close()

	values := []string{}

	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("failed to scan distinct %s value: %w", column, err)
		}
		values = append(values, v)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating distinct %s values: %w", column, err)
	}

	return values, nil
}

// UpsertFund inserts a fund record or, when a record with the same
// external fund ID already exists, updates it in place. Holdings are
// replaced wholesale. Used by the seed loader only.
func (r *FundRepository) UpsertFund(ctx context.Context, f model.Fund) error {
	if f.ID == "" {
		f.ID = uuid.New().String()
	}

	query := `
		INSERT INTO fund (
			id, fund_id, name, category, sub_category, fund_house, fund_manager,
			benchmark, description, investment_objective, exit_load,
			nav, expense_ratio, aum, min_investment,
			returns_1y, returns_3y, returns_5y, returns_10y,
			risk_rating, inception_date
		)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(fund_id) DO UPDATE SET
			name = excluded.name,
			category = excluded.category,
			sub_category = excluded.sub_category,
			fund_house = excluded.fund_house,
			fund_manager = excluded.fund_manager,
			benchmark = excluded.benchmark,
			description = excluded.description,
			investment_objective = excluded.investment_objective,
			exit_load = excluded.exit_load,
			nav = excluded.nav,
			expense_ratio = excluded.expense_ratio,
			aum = excluded.aum,
			min_investment = excluded.min_investment,
			returns_1y = excluded.returns_1y,
			returns_3y = excluded.returns_3y,
			returns_5y = excluded.returns_5y,
			returns_10y = excluded.returns_10y,
			risk_rating = excluded.risk_rating,
			inception_date = excluded.inception_date,
			updated_at = CURRENT_TIMESTAMP
	`

	_, err := r.db.ExecContext(ctx, query,
		f.ID,
		f.FundID,
		f.Name,
		f.Category,
		f.SubCategory,
		f.FundHouse,
		f.FundManager,
		f.Benchmark,
		nullString(f.Description),
		nullString(f.InvestmentObjective),
		f.ExitLoad,
		f.Nav,
		f.ExpenseRatio,
		f.Aum,
		f.MinInvestment,
		nullFloat(f.Returns1Y),
		nullFloat(f.Returns3Y),
		nullFloat(f.Returns5Y),
		nullFloat(f.Returns10Y),
		f.RiskRating,
		f.InceptionDate.Format("2006-01-02"),
	)
	if err != nil {
		return fmt.Errorf("failed to upsert fund %s: %w", f.FundID, err)
	}

	// The upsert may have kept an older internal ID; resolve it before
	// replacing holdings.
	var internalID string
	err = r.db.QueryRowContext(ctx, `SELECT id FROM fund WHERE fund_id = ?`, f.FundID).Scan(&internalID)
	if err != nil {
		return fmt.Errorf("failed to resolve fund %s after upsert: %w", f.FundID, err)
	}

	if _, err := r.db.ExecContext(ctx, `DELETE FROM fund_holding WHERE fund_id = ?`, internalID); err != nil {
		return fmt.Errorf("failed to clear holdings for fund %s: %w", f.FundID, err)
	}

	for i, h := range f.Holdings {
		_, err := r.db.ExecContext(ctx, `
			INSERT INTO fund_holding (id, fund_id, company, percentage, position)
			VALUES (?, ?, ?, ?, ?)
		`, uuid.New().String(), internalID, h.Company, h.Percentage, i)
		if err != nil {
			return fmt.Errorf("failed to insert holding for fund %s: %w", f.FundID, err)
		}
	}

	return nil
}

// scanner covers both *sql.Row and *sql.Rows for shared scan helpers.
type scanner interface {
	Scan(dest ...any) error
}

func scanFund(s scanner) (model.Fund, error) {
	var f model.Fund
	var description, investmentObjective sql.NullString
	var returns1y, returns3y, returns5y, returns10y sql.NullFloat64
	var inceptionDateStr string

	err := s.Scan(
		&f.ID,
		&f.FundID,
		&f.Name,
		&f.Category,
		&f.SubCategory,
		&f.FundHouse,
		&f.FundManager,
		&f.Benchmark,
		&description,
		&investmentObjective,
		&f.ExitLoad,
		&f.Nav,
		&f.ExpenseRatio,
		&f.Aum,
		&f.MinInvestment,
		&returns1y,
		&returns3y,
		&returns5y,
		&returns10y,
		&f.RiskRating,
		&inceptionDateStr,
	)
	if err == sql.ErrNoRows {
		return model.Fund{}, err
	}
	if err != nil {
		return model.Fund{}, fmt.Errorf("failed to scan fund table results: %w", err)
	}

	f.InceptionDate, err = ParseTime(inceptionDateStr)
	if err != nil {
		return model.Fund{}, err
	}

	if description.Valid {
		f.Description = description.String
	}
	if investmentObjective.Valid {
		f.InvestmentObjective = investmentObjective.String
	}
	f.Returns1Y = floatPtr(returns1y)
	f.Returns3Y = floatPtr(returns3y)
	f.Returns5Y = floatPtr(returns5y)
	f.Returns10Y = floatPtr(returns10y)

	return f, nil
}

func floatPtr(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}

func nullFloat(v *float64) sql.NullFloat64 {
	if v == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *v, Valid: true}
}

func nullString(v string) sql.NullString {
	if v == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: v, Valid: true}
}
