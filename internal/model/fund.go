package model

import "time"

// Fund represents a mutual fund reference record from the database.
// Fund records are written by the seed loader and are read-only for end users.
type Fund struct {
	ID                  string    `json:"id"`
	FundID              string    `json:"fundId"`
	Name                string    `json:"name"`
	Category            string    `json:"category"`
	SubCategory         string    `json:"subCategory"`
	FundHouse           string    `json:"fundHouse"`
	FundManager         string    `json:"fundManager"`
	Benchmark           string    `json:"benchmark"`
	Description         string    `json:"description,omitempty"`
	InvestmentObjective string    `json:"investmentObjective,omitempty"`
	ExitLoad            string    `json:"exitLoad"`
	Nav                 float64   `json:"nav"`
	ExpenseRatio        float64   `json:"expenseRatio"`
	Aum                 float64   `json:"aum"`
	MinInvestment       float64   `json:"minInvestment"`
	Returns1Y           *float64  `json:"returns1Y,omitempty"`
	Returns3Y           *float64  `json:"returns3Y,omitempty"`
	Returns5Y           *float64  `json:"returns5Y,omitempty"`
	Returns10Y          *float64  `json:"returns10Y,omitempty"`
	RiskRating          string    `json:"riskRating"`
	InceptionDate       time.Time `json:"inceptionDate"`
	Holdings            []Holding `json:"holdings,omitempty"`
}

// Holding is one position within a fund's portfolio. Holdings are an
// ordered sequence; Position preserves the order they were loaded in.
type Holding struct {
	Company    string  `json:"company"`
	Percentage float64 `json:"percentage"`
}

// FundFilters describes a fund listing query after parsing and
// validation. Zero-value string fields mean "no filter".
type FundFilters struct {
	Search     string
	Category   string
	FundHouse  string
	RiskRating string
	SortBy     string
	SortOrder  string
	Page       int
	Limit      int
}

// FundList is the paginated result of a fund listing query. Total is
// computed by a separate count query over the same filters.
type FundList struct {
	Funds       []Fund `json:"funds"`
	TotalPages  int    `json:"totalPages"`
	CurrentPage int    `json:"currentPage"`
	Total       int    `json:"total"`
}

// FundMetadata holds the distinct filter values used to populate the
// frontend's dropdowns. Cardinality is small and bounded.
type FundMetadata struct {
	Categories  []string `json:"categories"`
	FundHouses  []string `json:"fundHouses"`
	RiskRatings []string `json:"riskRatings"`
}
