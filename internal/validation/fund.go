package validation

import (
	"fmt"
	"strings"

	"github.com/fundscope/Fund-Discovery-Backend/internal/model"
)

var ValidCategory = map[string]bool{
	"Equity": true, "Debt": true, "Hybrid": true, "Index": true, "ELSS": true,
}

var ValidRiskRating = map[string]bool{
	"Low": true, "Moderate": true, "High": true, "Very High": true,
}

// ValidateFund checks a full fund record before it is written to the
// store. Used by the seed loader; end-user requests never write funds.
//
//nolint:gocyclo // Field-by-field validation is intentional and clear
func ValidateFund(f model.Fund) error {
	errors := make(map[string]string)

	// Required fields
	if strings.TrimSpace(f.FundID) == "" {
		errors["fundId"] = "fund ID is required"
	}
	if strings.TrimSpace(f.Name) == "" {
		errors["name"] = "name is required"
	}
	if strings.TrimSpace(f.SubCategory) == "" {
		errors["subCategory"] = "sub-category is required"
	}
	if strings.TrimSpace(f.FundHouse) == "" {
		errors["fundHouse"] = "fund house is required"
	}
	if strings.TrimSpace(f.FundManager) == "" {
		errors["fundManager"] = "fund manager is required"
	}
	if strings.TrimSpace(f.Benchmark) == "" {
		errors["benchmark"] = "benchmark is required"
	}
	if strings.TrimSpace(f.ExitLoad) == "" {
		errors["exitLoad"] = "exit load is required"
	}
	if f.InceptionDate.IsZero() {
		errors["inceptionDate"] = "inception date is required"
	}

	// Enums
	if !ValidCategory[f.Category] {
		errors["category"] = fmt.Sprintf("invalid category: %s", f.Category)
	}
	if !ValidRiskRating[f.RiskRating] {
		errors["riskRating"] = fmt.Sprintf("invalid risk rating: %s", f.RiskRating)
	}

	// Numeric bounds
	if f.Nav < 0 {
		errors["nav"] = "NAV cannot be negative"
	}
	if f.ExpenseRatio < 0 || f.ExpenseRatio > 5 {
		errors["expenseRatio"] = "expense ratio must be between 0 and 5"
	}
	if f.Aum < 0 {
		errors["aum"] = "AUM cannot be negative"
	}
	if f.MinInvestment < 100 {
		errors["minInvestment"] = "minimum investment cannot be less than 100"
	}

	for i, h := range f.Holdings {
		if strings.TrimSpace(h.Company) == "" {
			errors[fmt.Sprintf("holdings[%d].company", i)] = "company is required"
		}
		if h.Percentage < 0 || h.Percentage > 100 {
			errors[fmt.Sprintf("holdings[%d].percentage", i)] = "percentage must be between 0 and 100"
		}
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}
