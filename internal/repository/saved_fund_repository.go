package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/fundscope/Fund-Discovery-Backend/internal/apperrors"
	"github.com/fundscope/Fund-Discovery-Backend/internal/model"
)

// SavedFundRepository provides data access methods for the saved_fund
// table. The table carries a UNIQUE (user_id, fund_id) constraint; that
// constraint, not any application check, is what guarantees a user can
// never hold two watchlist entries for the same fund.
type SavedFundRepository struct {
	db *sql.DB
}

// NewSavedFundRepository creates a new SavedFundRepository with the provided database connection.
func NewSavedFundRepository(db *sql.DB) *SavedFundRepository {
	return &SavedFundRepository{db: db}
}

const savedFundColumns = `
	id, user_id, fund_id, fund_name, fund_category,
	nav, expense_ratio, aum, fund_manager, fund_house, created_at`

// ListByUser retrieves all saved funds owned by the given user,
// newest-first by save time. No pagination: the set is bounded by one
// user's save count.
func (r *SavedFundRepository) ListByUser(ctx context.Context, userID string) ([]model.SavedFund, error) {
	query := `SELECT` + savedFundColumns + `
		FROM saved_fund
		WHERE user_id = ?
		ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query saved_fund table: %w", err)
	}
	defer rows.Close()

	savedFunds := []model.SavedFund{}

	for rows.Next() {
		sf, err := scanSavedFund(rows)
		if err != nil {
			return nil, err
		}
		savedFunds = append(savedFunds, sf)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating saved_fund table: %w", err)
	}

	return savedFunds, nil
}

// Find retrieves one saved fund by its (user, fund) pair.
// Returns nil, nil if the user has not saved that fund.
func (r *SavedFundRepository) Find(ctx context.Context, userID, fundID string) (*model.SavedFund, error) {
	query := `SELECT` + savedFundColumns + `
		FROM saved_fund
		WHERE user_id = ? AND fund_id = ?`

	sf, err := scanSavedFund(r.db.QueryRowContext(ctx, query, userID, fundID))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &sf, nil
}

// Insert persists a new saved fund. A unique-constraint violation on
// (user_id, fund_id) is reported as ErrFundAlreadySaved: when two saves
// race past the service pre-check, the constraint makes the second one
// fail deterministically here.
func (r *SavedFundRepository) Insert(ctx context.Context, sf model.SavedFund) error {
	query := `
		INSERT INTO saved_fund (
			id, user_id, fund_id, fund_name, fund_category,
			nav, expense_ratio, aum, fund_manager, fund_house, created_at
		)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		sf.ID,
		sf.UserID,
		sf.FundID,
		sf.FundName,
		sf.FundCategory,
		sf.Nav,
		sf.ExpenseRatio,
		sf.Aum,
		sf.FundManager,
		sf.FundHouse,
		sf.CreatedAt.UTC().Format(CreatedAtLayout),
	)
	if isUniqueViolation(err) {
		return apperrors.ErrFundAlreadySaved
	}
	if err != nil {
		return fmt.Errorf("failed to insert saved_fund: %w", err)
	}

	return nil
}

// Delete removes the saved fund for the given (user, fund) pair.
// Returns ErrSavedFundNotFound when no row matches, so callers can
// distinguish a no-op delete from a successful one.
func (r *SavedFundRepository) Delete(ctx context.Context, userID, fundID string) error {
	query := `DELETE FROM saved_fund WHERE user_id = ? AND fund_id = ?`

	result, err := r.db.ExecContext(ctx, query, userID, fundID)
	if err != nil {
		return fmt.Errorf("failed to delete saved_fund: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return apperrors.ErrSavedFundNotFound
	}

	return nil
}

func scanSavedFund(s scanner) (model.SavedFund, error) {
	var sf model.SavedFund
	var createdAtStr string

	err := s.Scan(
		&sf.ID,
		&sf.UserID,
		&sf.FundID,
		&sf.FundName,
		&sf.FundCategory,
		&sf.Nav,
		&sf.ExpenseRatio,
		&sf.Aum,
		&sf.FundManager,
		&sf.FundHouse,
		&createdAtStr,
	)
	if err == sql.ErrNoRows {
		return model.SavedFund{}, err
	}
	if err != nil {
		return model.SavedFund{}, fmt.Errorf("failed to scan saved_fund table results: %w", err)
	}

	sf.CreatedAt, err = ParseTime(createdAtStr)
	if err != nil {
		return model.SavedFund{}, err
	}

	return sf, nil
}
