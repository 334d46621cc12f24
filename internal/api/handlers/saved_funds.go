package handlers

import (
	"errors"
	"net/http"

	"github.com/fundscope/Fund-Discovery-Backend/internal/api/middleware"
	"github.com/fundscope/Fund-Discovery-Backend/internal/api/request"
	"github.com/fundscope/Fund-Discovery-Backend/internal/api/response"
	"github.com/fundscope/Fund-Discovery-Backend/internal/apperrors"
	"github.com/fundscope/Fund-Discovery-Backend/internal/service"
	"github.com/fundscope/Fund-Discovery-Backend/internal/validation"
	"github.com/go-chi/chi/v5"
)

// SavedFundHandler handles HTTP requests for the per-user watchlist.
// The owning user comes from the request context set by the auth
// middleware, never from the request body.
type SavedFundHandler struct {
	savedFundService *service.SavedFundService
}

// NewSavedFundHandler creates a new SavedFundHandler with the provided service dependency.
func NewSavedFundHandler(savedFundService *service.SavedFundService) *SavedFundHandler {
	return &SavedFundHandler{
		savedFundService: savedFundService,
	}
}

// SavedFunds handles GET requests to list the authenticated user's saved
// funds, newest-first.
//
// Endpoint: GET /api/saved-funds
// Response: 200 OK with {savedFunds}
// Error: 500 Internal Server Error if retrieval fails
func (h *SavedFundHandler) SavedFunds(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r.Context())

	savedFunds, err := h.savedFundService.ListSavedFunds(r.Context(), userID)
	if err != nil {
		response.RespondInternalError(w, apperrors.ErrFailedToRetrieveSavedFunds.Error(), err)
		return
	}

	response.RespondJSON(w, http.StatusOK, map[string]any{"savedFunds": savedFunds})
}

// SaveFund handles POST requests to add a fund snapshot to the
// authenticated user's watchlist.
//
// Endpoint: POST /api/saved-funds
// Request Body: SaveFundRequest ({fund: {fundId, name, category, nav, ...}})
// Response: 201 Created with {message, savedFund}
// Error: 400 Bad Request if the body is invalid or fundId is missing
// Error: 409 Conflict if the fund is already saved (pre-check or constraint)
// Error: 500 Internal Server Error if the save fails
func (h *SavedFundHandler) SaveFund(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r.Context())

	req, err := parseJSON[request.SaveFundRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateSaveFund(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	savedFund, err := h.savedFundService.SaveFund(r.Context(), userID, req.Fund)
	if err != nil {
		if errors.Is(err, apperrors.ErrFundAlreadySaved) {
			response.RespondError(w, http.StatusConflict, apperrors.ErrFundAlreadySaved.Error(), "")
			return
		}
		response.RespondInternalError(w, apperrors.ErrFailedToSaveFund.Error(), err)
		return
	}

	response.RespondJSON(w, http.StatusCreated, map[string]any{
		"message":   "fund saved successfully",
		"savedFund": savedFund,
	})
}

// RemoveSavedFund handles DELETE requests to take a fund off the
// authenticated user's watchlist.
//
// Endpoint: DELETE /api/saved-funds/{fundId}
// Response: 200 OK with {message}
// Error: 404 Not Found if the fund was not on the watchlist
// Error: 500 Internal Server Error if the delete fails
func (h *SavedFundHandler) RemoveSavedFund(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r.Context())
	fundID := chi.URLParam(r, "fundId")

	err := h.savedFundService.RemoveSavedFund(r.Context(), userID, fundID)
	if err != nil {
		if errors.Is(err, apperrors.ErrSavedFundNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrSavedFundNotFound.Error(), "")
			return
		}
		response.RespondInternalError(w, apperrors.ErrFailedToRemoveSavedFund.Error(), err)
		return
	}

	response.RespondJSON(w, http.StatusOK, map[string]any{"message": "fund removed successfully"})
}
