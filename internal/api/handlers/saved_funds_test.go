package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fundscope/Fund-Discovery-Backend/internal/api/handlers"
	"github.com/fundscope/Fund-Discovery-Backend/internal/api/request"
	"github.com/fundscope/Fund-Discovery-Backend/internal/model"
	"github.com/fundscope/Fund-Discovery-Backend/internal/testutil"
)

type savedFundsResponse struct {
	SavedFunds []model.SavedFund `json:"savedFunds"`
}

func TestSavedFundHandler_SavedFunds(t *testing.T) {
	t.Run("returns empty array when user has no saved funds", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewSavedFundHandler(testutil.NewTestSavedFundService(t, db))

		req := testutil.AsUser(httptest.NewRequest(http.MethodGet, "/api/saved-funds", nil), testutil.MakeID())
		w := httptest.NewRecorder()

		handler.SavedFunds(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("Expected status 200, got %d", w.Code)
		}

		var response savedFundsResponse
		if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}

		if len(response.SavedFunds) != 0 {
			t.Errorf("Expected empty array, got %d items", len(response.SavedFunds))
		}
	})

	t.Run("lists saved funds newest-first and only for the owner", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewSavedFundHandler(testutil.NewTestSavedFundService(t, db))

		userID := testutil.MakeID()
		now := time.Now().UTC()

		testutil.NewSavedFund().WithUserID(userID).WithFundID("OLD").WithCreatedAt(now.Add(-2 * time.Hour)).Build(t, db)
		testutil.NewSavedFund().WithUserID(userID).WithFundID("NEW").WithCreatedAt(now).Build(t, db)
		testutil.NewSavedFund().WithUserID(userID).WithFundID("MID").WithCreatedAt(now.Add(-1 * time.Hour)).Build(t, db)
		// Another user's entry must not leak into the list
		testutil.NewSavedFund().WithFundID("OTHER").Build(t, db)

		req := testutil.AsUser(httptest.NewRequest(http.MethodGet, "/api/saved-funds", nil), userID)
		w := httptest.NewRecorder()

		handler.SavedFunds(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
		}

		var response savedFundsResponse
		if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}

		if len(response.SavedFunds) != 3 {
			t.Fatalf("Expected 3 saved funds, got %d", len(response.SavedFunds))
		}

		order := []string{
			response.SavedFunds[0].FundID,
			response.SavedFunds[1].FundID,
			response.SavedFunds[2].FundID,
		}
		if order[0] != "NEW" || order[1] != "MID" || order[2] != "OLD" {
			t.Errorf("Expected [NEW MID OLD], got %v", order)
		}
	})

	t.Run("returns 500 on database error", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewSavedFundHandler(testutil.NewTestSavedFundService(t, db))

		db.Close() // Force database error

		req := testutil.AsUser(httptest.NewRequest(http.MethodGet, "/api/saved-funds", nil), testutil.MakeID())
		w := httptest.NewRecorder()

		handler.SavedFunds(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Errorf("Expected status 500, got %d", w.Code)
		}

		var response map[string]string
		if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
			t.Fatalf("Failed to decode error response: %v", err)
		}
		if details, leaked := response["details"]; leaked {
			t.Errorf("Expected no details field in 500 response, got '%s'", details)
		}
	})
}

//nolint:gocyclo // Comprehensive integration test with multiple subtests
func TestSavedFundHandler_SaveFund(t *testing.T) {
	snapshot := model.FundSnapshot{
		FundID:       "AXIS001",
		Name:         "Axis Bluechip Fund",
		Category:     "Equity",
		Nav:          45.2,
		ExpenseRatio: 1.8,
		Aum:          33000,
		FundManager:  "Shreyash Devalkar",
		FundHouse:    "Axis Mutual Fund",
	}

	t.Run("saves a fund snapshot and returns 201", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewSavedFundHandler(testutil.NewTestSavedFundService(t, db))

		userID := testutil.MakeID()
		req := testutil.AsUser(
			testutil.NewJSONRequest(t, http.MethodPost, "/api/saved-funds", request.SaveFundRequest{Fund: snapshot}),
			userID,
		)
		w := httptest.NewRecorder()

		handler.SaveFund(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("Expected status 201, got %d: %s", w.Code, w.Body.String())
		}

		var response struct {
			Message   string          `json:"message"`
			SavedFund model.SavedFund `json:"savedFund"`
		}
		if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}

		if response.SavedFund.UserID != userID {
			t.Errorf("Expected owner %s, got %s", userID, response.SavedFund.UserID)
		}
		if response.SavedFund.FundID != "AXIS001" {
			t.Errorf("Expected fundId 'AXIS001', got '%s'", response.SavedFund.FundID)
		}
		if response.SavedFund.FundName != "Axis Bluechip Fund" {
			t.Errorf("Expected snapshot name, got '%s'", response.SavedFund.FundName)
		}
		if response.SavedFund.Nav != 45.2 {
			t.Errorf("Expected snapshot nav 45.2, got %v", response.SavedFund.Nav)
		}

		testutil.AssertRowCount(t, db, "saved_fund", 1)
	})

	t.Run("second save of the same fund returns 409 and stores one row", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewSavedFundHandler(testutil.NewTestSavedFundService(t, db))

		userID := testutil.MakeID()

		first := httptest.NewRecorder()
		handler.SaveFund(first, testutil.AsUser(
			testutil.NewJSONRequest(t, http.MethodPost, "/api/saved-funds", request.SaveFundRequest{Fund: snapshot}),
			userID,
		))
		if first.Code != http.StatusCreated {
			t.Fatalf("Expected first save to return 201, got %d", first.Code)
		}

		second := httptest.NewRecorder()
		handler.SaveFund(second, testutil.AsUser(
			testutil.NewJSONRequest(t, http.MethodPost, "/api/saved-funds", request.SaveFundRequest{Fund: snapshot}),
			userID,
		))
		if second.Code != http.StatusConflict {
			t.Errorf("Expected second save to return 409, got %d", second.Code)
		}

		testutil.AssertRowCount(t, db, "saved_fund", 1)

		// The list afterwards holds exactly one entry for the fund
		list := httptest.NewRecorder()
		handler.SavedFunds(list, testutil.AsUser(httptest.NewRequest(http.MethodGet, "/api/saved-funds", nil), userID))

		var response savedFundsResponse
		if err := json.NewDecoder(list.Body).Decode(&response); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if len(response.SavedFunds) != 1 {
			t.Errorf("Expected exactly 1 saved fund, got %d", len(response.SavedFunds))
		}
	})

	t.Run("same fund saved by different users is no conflict", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewSavedFundHandler(testutil.NewTestSavedFundService(t, db))

		for range 2 {
			w := httptest.NewRecorder()
			handler.SaveFund(w, testutil.AsUser(
				testutil.NewJSONRequest(t, http.MethodPost, "/api/saved-funds", request.SaveFundRequest{Fund: snapshot}),
				testutil.MakeID(),
			))
			if w.Code != http.StatusCreated {
				t.Errorf("Expected 201, got %d: %s", w.Code, w.Body.String())
			}
		}

		testutil.AssertRowCount(t, db, "saved_fund", 2)
	})

	t.Run("returns 400 when fundId is missing", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewSavedFundHandler(testutil.NewTestSavedFundService(t, db))

		body := request.SaveFundRequest{Fund: model.FundSnapshot{Name: "No ID Fund"}}
		req := testutil.AsUser(
			testutil.NewJSONRequest(t, http.MethodPost, "/api/saved-funds", body),
			testutil.MakeID(),
		)
		w := httptest.NewRecorder()

		handler.SaveFund(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected status 400, got %d", w.Code)
		}

		testutil.AssertRowCount(t, db, "saved_fund", 0)
	})

	t.Run("snapshot does not track later fund changes", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		savedFundService := testutil.NewTestSavedFundService(t, db)
		handler := handlers.NewSavedFundHandler(savedFundService)

		fund := testutil.NewFund().WithFundID("AXIS001").WithName("Axis Bluechip Fund").WithNav(45.2).Build(t, db)

		userID := testutil.MakeID()
		w := httptest.NewRecorder()
		handler.SaveFund(w, testutil.AsUser(
			testutil.NewJSONRequest(t, http.MethodPost, "/api/saved-funds", request.SaveFundRequest{Fund: model.FundSnapshot{
				FundID: fund.FundID,
				Name:   fund.Name,
				Nav:    fund.Nav,
			}}),
			userID,
		))
		if w.Code != http.StatusCreated {
			t.Fatalf("Expected 201, got %d", w.Code)
		}

		// The underlying fund changes after the save
		if _, err := db.Exec(`UPDATE fund SET nav = 99.9, name = 'Renamed Fund' WHERE fund_id = ?`, fund.FundID); err != nil {
			t.Fatalf("Failed to update fund: %v", err)
		}

		list := httptest.NewRecorder()
		handler.SavedFunds(list, testutil.AsUser(httptest.NewRequest(http.MethodGet, "/api/saved-funds", nil), userID))

		var response savedFundsResponse
		if err := json.NewDecoder(list.Body).Decode(&response); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if len(response.SavedFunds) != 1 {
			t.Fatalf("Expected 1 saved fund, got %d", len(response.SavedFunds))
		}
		if response.SavedFunds[0].Nav != 45.2 {
			t.Errorf("Expected snapshot nav 45.2, got %v", response.SavedFunds[0].Nav)
		}
		if response.SavedFunds[0].FundName != "Axis Bluechip Fund" {
			t.Errorf("Expected snapshot name unchanged, got '%s'", response.SavedFunds[0].FundName)
		}
	})
}

func TestSavedFundHandler_RemoveSavedFund(t *testing.T) {
	t.Run("removes a saved fund", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewSavedFundHandler(testutil.NewTestSavedFundService(t, db))

		userID := testutil.MakeID()
		testutil.NewSavedFund().WithUserID(userID).WithFundID("AXIS001").Build(t, db)

		req := testutil.AsUser(testutil.NewRequestWithURLParams(
			http.MethodDelete,
			"/api/saved-funds/AXIS001",
			map[string]string{"fundId": "AXIS001"},
		), userID)
		w := httptest.NewRecorder()

		handler.RemoveSavedFund(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("Expected status 200, got %d: %s", w.Code, w.Body.String())
		}

		testutil.AssertRowCount(t, db, "saved_fund", 0)
	})

	t.Run("returns 404 for a fund that was never saved, without side effects", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewSavedFundHandler(testutil.NewTestSavedFundService(t, db))

		userID := testutil.MakeID()
		testutil.NewSavedFund().WithUserID(userID).WithFundID("KEEP").Build(t, db)

		req := testutil.AsUser(testutil.NewRequestWithURLParams(
			http.MethodDelete,
			"/api/saved-funds/MISSING",
			map[string]string{"fundId": "MISSING"},
		), userID)
		w := httptest.NewRecorder()

		handler.RemoveSavedFund(w, req)

		if w.Code != http.StatusNotFound {
			t.Errorf("Expected status 404, got %d", w.Code)
		}

		testutil.AssertRowCount(t, db, "saved_fund", 1)
	})

	t.Run("cannot remove another user's saved fund", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewSavedFundHandler(testutil.NewTestSavedFundService(t, db))

		testutil.NewSavedFund().WithFundID("AXIS001").Build(t, db)

		req := testutil.AsUser(testutil.NewRequestWithURLParams(
			http.MethodDelete,
			"/api/saved-funds/AXIS001",
			map[string]string{"fundId": "AXIS001"},
		), testutil.MakeID())
		w := httptest.NewRecorder()

		handler.RemoveSavedFund(w, req)

		if w.Code != http.StatusNotFound {
			t.Errorf("Expected status 404, got %d", w.Code)
		}

		testutil.AssertRowCount(t, db, "saved_fund", 1)
	})

	t.Run("returns 500 on database error", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewSavedFundHandler(testutil.NewTestSavedFundService(t, db))

		db.Close() // Force database error

		req := testutil.AsUser(testutil.NewRequestWithURLParams(
			http.MethodDelete,
			"/api/saved-funds/AXIS001",
			map[string]string{"fundId": "AXIS001"},
		), testutil.MakeID())
		w := httptest.NewRecorder()

		handler.RemoveSavedFund(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Errorf("Expected status 500, got %d", w.Code)
		}
	})
}
