package service

import (
	"context"

	"github.com/fundscope/Fund-Discovery-Backend/internal/model"
	"github.com/fundscope/Fund-Discovery-Backend/internal/repository"
	"golang.org/x/sync/errgroup"
)

// FundService handles fund discovery business logic: listing with
// filters and pagination, single-fund lookup, and filter metadata.
type FundService struct {
	fundRepo *repository.FundRepository
}

// NewFundService creates a new FundService with the provided repository dependency.
func NewFundService(fundRepo *repository.FundRepository) *FundService {
	return &FundService{
		fundRepo: fundRepo,
	}
}

// ListFunds retrieves one page of funds matching the given filters.
// The page slice and the total count are independent queries over the
// same filter set, so they run concurrently. totalPages is
// ceil(total/limit); an out-of-range page yields an empty page with the
// true total, matching the source system.
func (s *FundService) ListFunds(ctx context.Context, filters model.FundFilters) (model.FundList, error) {
	var funds []model.Fund
	var total int

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		funds, err = s.fundRepo.ListFunds(gctx, filters)
		return err
	})
	g.Go(func() error {
		var err error
		total, err = s.fundRepo.CountFunds(gctx, filters)
		return err
	})
	if err := g.Wait(); err != nil {
		return model.FundList{}, err
	}

	totalPages := (total + filters.Limit - 1) / filters.Limit

	return model.FundList{
		Funds:       funds,
		TotalPages:  totalPages,
		CurrentPage: filters.Page,
		Total:       total,
	}, nil
}

// GetFund retrieves a single fund (with holdings) by its external fund ID.
// Returns apperrors.ErrFundNotFound if no fund matches.
func (s *FundService) GetFund(ctx context.Context, fundID string) (model.Fund, error) {
	return s.fundRepo.GetFundByFundID(ctx, fundID)
}

// GetMetadata retrieves the distinct categories, fund houses, and risk
// ratings across all funds. The three projections are independent, so
// they run concurrently.
func (s *FundService) GetMetadata(ctx context.Context) (model.FundMetadata, error) {
	var meta model.FundMetadata

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		meta.Categories, err = s.fundRepo.DistinctValues(gctx, "category")
		return err
	})
	g.Go(func() error {
		var err error
		meta.FundHouses, err = s.fundRepo.DistinctValues(gctx, "fund_house")
		return err
	})
	g.Go(func() error {
		var err error
		meta.RiskRatings, err = s.fundRepo.DistinctValues(gctx, "risk_rating")
		return err
	})
	if err := g.Wait(); err != nil {
		return model.FundMetadata{}, err
	}

	return meta, nil
}
