package handlers

import (
	"errors"
	"net/http"

	"github.com/fundscope/Fund-Discovery-Backend/internal/api/request"
	"github.com/fundscope/Fund-Discovery-Backend/internal/api/response"
	"github.com/fundscope/Fund-Discovery-Backend/internal/apperrors"
	"github.com/fundscope/Fund-Discovery-Backend/internal/service"
	"github.com/go-chi/chi/v5"
)

// FundHandler handles HTTP requests for fund discovery endpoints.
// It serves as the HTTP layer adapter, parsing requests and delegating
// business logic to the fundService.
type FundHandler struct {
	fundService *service.FundService
}

// NewFundHandler creates a new FundHandler with the provided service dependency.
func NewFundHandler(fundService *service.FundService) *FundHandler {
	return &FundHandler{
		fundService: fundService,
	}
}

// Funds handles GET requests to list funds with search, filters,
// sorting, and pagination.
//
// Endpoint: GET /api/funds?search=&category=&fundHouse=&riskRating=&sortBy=&sortOrder=&page=&limit=
// Response: 200 OK with {funds, totalPages, currentPage, total}
// Error: 400 Bad Request if a query parameter fails validation
// Error: 500 Internal Server Error if retrieval fails
func (h *FundHandler) Funds(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filters, err := request.ParseFundFilters(
		q.Get("search"),
		q.Get("category"),
		q.Get("fundHouse"),
		q.Get("riskRating"),
		q.Get("sortBy"),
		q.Get("sortOrder"),
		q.Get("page"),
		q.Get("limit"),
	)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid query parameters", err.Error())
		return
	}

	list, err := h.fundService.ListFunds(r.Context(), filters)
	if err != nil {
		response.RespondInternalError(w, apperrors.ErrFailedToRetrieveFunds.Error(), err)
		return
	}

	response.RespondJSON(w, http.StatusOK, list)
}

// GetFund handles GET requests to retrieve a single fund by its external
// fund ID, including holdings.
//
// Endpoint: GET /api/funds/{fundId}
// Response: 200 OK with {fund}
// Error: 404 Not Found if no fund matches
// Error: 500 Internal Server Error if retrieval fails
func (h *FundHandler) GetFund(w http.ResponseWriter, r *http.Request) {
	fundID := chi.URLParam(r, "fundId")

	fund, err := h.fundService.GetFund(r.Context(), fundID)
	if err != nil {
		if errors.Is(err, apperrors.ErrFundNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrFundNotFound.Error(), "")
			return
		}
		response.RespondInternalError(w, apperrors.ErrFailedToRetrieveFund.Error(), err)
		return
	}

	response.RespondJSON(w, http.StatusOK, map[string]any{"fund": fund})
}

// FundMetadata handles GET requests for the distinct filter values used
// to populate the search dropdowns.
//
// Endpoint: GET /api/funds/meta/categories
// Response: 200 OK with {categories, fundHouses, riskRatings}
// Error: 500 Internal Server Error if retrieval fails
func (h *FundHandler) FundMetadata(w http.ResponseWriter, r *http.Request) {
	meta, err := h.fundService.GetMetadata(r.Context())
	if err != nil {
		response.RespondInternalError(w, apperrors.ErrFailedToRetrieveMetadata.Error(), err)
		return
	}

	response.RespondJSON(w, http.StatusOK, meta)
}
