package service

import (
	"context"
	"time"

	"github.com/fundscope/Fund-Discovery-Backend/internal/apperrors"
	"github.com/fundscope/Fund-Discovery-Backend/internal/model"
	"github.com/fundscope/Fund-Discovery-Backend/internal/repository"
	"github.com/google/uuid"
)

// SavedFundService handles the per-user watchlist: listing, saving a
// denormalized fund snapshot, and removing entries.
type SavedFundService struct {
	savedFundRepo *repository.SavedFundRepository
}

// NewSavedFundService creates a new SavedFundService with the provided repository dependency.
func NewSavedFundService(savedFundRepo *repository.SavedFundRepository) *SavedFundService {
	return &SavedFundService{
		savedFundRepo: savedFundRepo,
	}
}

// ListSavedFunds retrieves the user's saved funds, newest-first.
func (s *SavedFundService) ListSavedFunds(ctx context.Context, userID string) ([]model.SavedFund, error) {
	return s.savedFundRepo.ListByUser(ctx, userID)
}

// SaveFund persists a denormalized snapshot of the given fund for the
// user. Returns apperrors.ErrFundAlreadySaved if the fund is already on
// the user's watchlist.
//
// The existence check here only produces a friendly conflict in the
// common non-racing case. It is not atomic with the insert: when two
// saves race, the store's UNIQUE (user_id, fund_id) constraint rejects
// the loser inside Insert, which reports the same conflict error.
func (s *SavedFundService) SaveFund(ctx context.Context, userID string, snapshot model.FundSnapshot) (model.SavedFund, error) {
	existing, err := s.savedFundRepo.Find(ctx, userID, snapshot.FundID)
	if err != nil {
		return model.SavedFund{}, err
	}
	if existing != nil {
		return model.SavedFund{}, apperrors.ErrFundAlreadySaved
	}

	savedFund := model.SavedFund{
		ID:           uuid.New().String(),
		UserID:       userID,
		FundID:       snapshot.FundID,
		FundName:     snapshot.Name,
		FundCategory: snapshot.Category,
		Nav:          snapshot.Nav,
		ExpenseRatio: snapshot.ExpenseRatio,
		Aum:          snapshot.Aum,
		FundManager:  snapshot.FundManager,
		FundHouse:    snapshot.FundHouse,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.savedFundRepo.Insert(ctx, savedFund); err != nil {
		return model.SavedFund{}, err
	}

	return savedFund, nil
}

// RemoveSavedFund deletes the user's saved fund with the given fund ID.
// Returns apperrors.ErrSavedFundNotFound when the fund was not saved;
// a failed remove is never masked as success.
func (s *SavedFundService) RemoveSavedFund(ctx context.Context, userID, fundID string) error {
	return s.savedFundRepo.Delete(ctx, userID, fundID)
}
