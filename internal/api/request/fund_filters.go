package request

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fundscope/Fund-Discovery-Backend/internal/model"
)

// Pagination bounds for fund listing queries.
const (
	defaultLimit = 20
	maxLimit     = 100
)

// validSortFields is the allow-list for the sortBy query parameter. The
// source systems this API replaces forwarded the sort field into the
// store unchecked; here anything outside this list is rejected up front.
var validSortFields = map[string]bool{
	"name":         true,
	"nav":          true,
	"returns1Y":    true,
	"returns3Y":    true,
	"expenseRatio": true,
	"aum":          true,
}

// ParseFundFilters extracts and validates fund listing filters from
// query parameters. All parameters are optional.
//
// Validation rules:
//   - sortBy: must be one of name, nav, returns1Y, returns3Y,
//     expenseRatio, aum (defaults to "name")
//   - sortOrder: must be "asc" or "desc" (defaults to "asc")
//   - page: must be >= 1 (defaults to 1)
//   - limit: must be between 1 and 100 (defaults to 20)
//
// The literal filter value "all" is a sentinel for "no filter" and is
// treated the same as an absent parameter.
//
// Returns an error if any parameter fails validation.
func ParseFundFilters(
	searchParam, categoryParam, fundHouseParam, riskRatingParam,
	sortByParam, sortOrderParam, pageParam, limitParam string,
) (model.FundFilters, error) {
	filters := model.FundFilters{
		Search:     strings.TrimSpace(searchParam),
		Category:   normalizeFilter(categoryParam),
		FundHouse:  normalizeFilter(fundHouseParam),
		RiskRating: normalizeFilter(riskRatingParam),
	}

	// Validate sort_by against the allow-list
	if sortByParam != "" {
		if !validSortFields[sortByParam] {
			return model.FundFilters{}, fmt.Errorf("invalid sortBy: %s", sortByParam)
		}
		filters.SortBy = sortByParam
	} else {
		filters.SortBy = "name" // Default
	}

	// Validate sort_order
	if sortOrderParam != "" {
		sortOrder := strings.ToLower(sortOrderParam)
		if sortOrder != "asc" && sortOrder != "desc" {
			return model.FundFilters{}, fmt.Errorf("invalid sortOrder: must be 'asc' or 'desc'")
		}
		filters.SortOrder = sortOrder
	} else {
		filters.SortOrder = "asc" // Default
	}

	// Parse and validate page
	if pageParam != "" {
		page, err := strconv.Atoi(pageParam)
		if err != nil {
			return model.FundFilters{}, fmt.Errorf("invalid page: must be a number")
		}
		if page < 1 {
			return model.FundFilters{}, fmt.Errorf("invalid page: must be 1 or greater")
		}
		filters.Page = page
	} else {
		filters.Page = 1 // Default
	}

	// Parse and validate limit
	if limitParam != "" {
		limit, err := strconv.Atoi(limitParam)
		if err != nil {
			return model.FundFilters{}, fmt.Errorf("invalid limit: must be a number")
		}
		if limit < 1 || limit > maxLimit {
			return model.FundFilters{}, fmt.Errorf("invalid limit: must be between 1 and %d", maxLimit)
		}
		filters.Limit = limit
	} else {
		filters.Limit = defaultLimit
	}

	return filters, nil
}

// normalizeFilter maps the "all" sentinel (any case) and blank values to
// the empty string, meaning "no filter".
func normalizeFilter(value string) string {
	value = strings.TrimSpace(value)
	if strings.EqualFold(value, "all") {
		return ""
	}
	return value
}
