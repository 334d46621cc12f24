package request

import "github.com/fundscope/Fund-Discovery-Backend/internal/model"

// SaveFundRequest is the body of POST /api/saved-funds. The nested fund
// object carries the display fields to snapshot onto the watchlist entry.
type SaveFundRequest struct {
	Fund model.FundSnapshot `json:"fund"`
}
