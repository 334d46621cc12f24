package validation

import (
	"strings"

	"github.com/fundscope/Fund-Discovery-Backend/internal/api/request"
)

// ValidateSaveFund checks a save-fund request at the service boundary,
// before the store sees it. A missing fundId must come back as a
// validation failure, never as a store-constraint error.
func ValidateSaveFund(req request.SaveFundRequest) error {
	errors := make(map[string]string)

	// Required fields
	if strings.TrimSpace(req.Fund.FundID) == "" {
		errors["fundId"] = "fund ID is required"
	}
	if strings.TrimSpace(req.Fund.Name) == "" {
		errors["name"] = "fund name is required"
	}

	// Numeric bounds on the snapshot
	if req.Fund.Nav < 0 {
		errors["nav"] = "NAV cannot be negative"
	}
	if req.Fund.ExpenseRatio < 0 || req.Fund.ExpenseRatio > 5 {
		errors["expenseRatio"] = "expense ratio must be between 0 and 5"
	}
	if req.Fund.Aum < 0 {
		errors["aum"] = "AUM cannot be negative"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}
