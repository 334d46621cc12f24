package service_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/fundscope/Fund-Discovery-Backend/internal/apperrors"
	"github.com/fundscope/Fund-Discovery-Backend/internal/model"
	"github.com/fundscope/Fund-Discovery-Backend/internal/testutil"
)

func TestSavedFundService_SaveFund(t *testing.T) {
	snapshot := model.FundSnapshot{
		FundID:       "HDFC042",
		Name:         "HDFC Flexi Cap Fund",
		Category:     "Equity",
		Nav:          1450.6,
		ExpenseRatio: 1.1,
		Aum:          45000,
		FundManager:  "Roshi Jain",
		FundHouse:    "HDFC Mutual Fund",
	}

	t.Run("stores the snapshot with owner and timestamp", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		savedFundService := testutil.NewTestSavedFundService(t, db)

		userID := testutil.MakeID()
		saved, err := savedFundService.SaveFund(context.Background(), userID, snapshot)
		if err != nil {
			t.Fatalf("SaveFund failed: %v", err)
		}

		if saved.ID == "" {
			t.Error("Expected a generated ID")
		}
		if saved.UserID != userID {
			t.Errorf("Expected owner %s, got %s", userID, saved.UserID)
		}
		if saved.FundName != snapshot.Name {
			t.Errorf("Expected name '%s', got '%s'", snapshot.Name, saved.FundName)
		}
		if saved.CreatedAt.IsZero() {
			t.Error("Expected CreatedAt to be set")
		}

		testutil.AssertRowCount(t, db, "saved_fund", 1)
	})

	t.Run("repeated save reports conflict", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		savedFundService := testutil.NewTestSavedFundService(t, db)

		userID := testutil.MakeID()
		if _, err := savedFundService.SaveFund(context.Background(), userID, snapshot); err != nil {
			t.Fatalf("First SaveFund failed: %v", err)
		}

		_, err := savedFundService.SaveFund(context.Background(), userID, snapshot)
		if !errors.Is(err, apperrors.ErrFundAlreadySaved) {
			t.Errorf("Expected ErrFundAlreadySaved, got %v", err)
		}

		testutil.AssertRowCount(t, db, "saved_fund", 1)
	})

	t.Run("racing saves leave exactly one row", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		savedFundService := testutil.NewTestSavedFundService(t, db)

		userID := testutil.MakeID()

		const workers = 8
		results := make([]error, workers)

		var wg sync.WaitGroup
		for i := range workers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, results[i] = savedFundService.SaveFund(context.Background(), userID, snapshot)
			}()
		}
		wg.Wait()

		var succeeded, conflicted int
		for _, err := range results {
			switch {
			case err == nil:
				succeeded++
			case errors.Is(err, apperrors.ErrFundAlreadySaved):
				conflicted++
			default:
				t.Errorf("Unexpected error: %v", err)
			}
		}

		if succeeded != 1 {
			t.Errorf("Expected exactly 1 successful save, got %d", succeeded)
		}
		if conflicted != workers-1 {
			t.Errorf("Expected %d conflicts, got %d", workers-1, conflicted)
		}

		testutil.AssertRowCount(t, db, "saved_fund", 1)
	})
}

func TestSavedFundService_RemoveSavedFund(t *testing.T) {
	t.Run("removes an existing entry", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		savedFundService := testutil.NewTestSavedFundService(t, db)

		userID := testutil.MakeID()
		testutil.NewSavedFund().WithUserID(userID).WithFundID("HDFC042").Build(t, db)

		if err := savedFundService.RemoveSavedFund(context.Background(), userID, "HDFC042"); err != nil {
			t.Fatalf("RemoveSavedFund failed: %v", err)
		}

		testutil.AssertRowCount(t, db, "saved_fund", 0)
	})

	t.Run("remove after remove reports not found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		savedFundService := testutil.NewTestSavedFundService(t, db)

		userID := testutil.MakeID()
		testutil.NewSavedFund().WithUserID(userID).WithFundID("HDFC042").Build(t, db)

		if err := savedFundService.RemoveSavedFund(context.Background(), userID, "HDFC042"); err != nil {
			t.Fatalf("First remove failed: %v", err)
		}

		err := savedFundService.RemoveSavedFund(context.Background(), userID, "HDFC042")
		if !errors.Is(err, apperrors.ErrSavedFundNotFound) {
			t.Errorf("Expected ErrSavedFundNotFound, got %v", err)
		}
	})
}
