package model

import "time"

// SavedFund is one entry on a user's watchlist: a denormalized snapshot
// of a fund taken at save time. It is never resynced with the live Fund
// record and is deleted rather than updated.
type SavedFund struct {
	ID           string    `json:"id"`
	UserID       string    `json:"userId"`
	FundID       string    `json:"fundId"`
	FundName     string    `json:"fundName"`
	FundCategory string    `json:"fundCategory"`
	Nav          float64   `json:"nav"`
	ExpenseRatio float64   `json:"expenseRatio"`
	Aum          float64   `json:"aum"`
	FundManager  string    `json:"fundManager"`
	FundHouse    string    `json:"fundHouse"`
	CreatedAt    time.Time `json:"createdAt"`
}

// FundSnapshot carries the display fields copied onto a SavedFund when
// a fund is saved.
type FundSnapshot struct {
	FundID       string  `json:"fundId"`
	Name         string  `json:"name"`
	Category     string  `json:"category"`
	Nav          float64 `json:"nav"`
	ExpenseRatio float64 `json:"expenseRatio"`
	Aum          float64 `json:"aum"`
	FundManager  string  `json:"fundManager"`
	FundHouse    string  `json:"fundHouse"`
}
