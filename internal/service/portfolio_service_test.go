package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jdevries/stock-tracker-backend/internal/model"
	"github.com/jdevries/stock-tracker-backend/internal/testutil"
)

func TestPortfolioService_GetSummary(t *testing.T) {
	day := func(d int) time.Time {
		return time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, d)
	}

	t.Run("values holdings at current prices", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		quotes := testutil.NewStaticQuotes().
			SetPrice("AAPL", "180", "175").
			SetPrice("MSFT", "320", "318")
		ps := testutil.NewTestPortfolioService(t, db, quotes)

		userID := testutil.MakeUserID()
		testutil.NewTransaction(userID).WithSymbol("AAPL").WithQuantity(10).WithPrice("100").WithTimestamp(day(0)).Build(t, db)
		testutil.NewTransaction(userID).WithSymbol("MSFT").WithQuantity(5).WithPrice("300").WithTimestamp(day(1)).Build(t, db)

		summary, err := ps.GetSummary(context.Background(), userID)
		if err != nil {
			t.Fatalf("GetSummary failed: %v", err)
		}

		if summary.UserID != userID {
			t.Errorf("Expected user %s, got %s", userID, summary.UserID)
		}
		if len(summary.Positions) != 2 {
			t.Fatalf("Expected 2 positions, got %d", len(summary.Positions))
		}

		// 10*180 + 5*320
		if !summary.TotalMarketValue.Equal(decimal.RequireFromString("3400")) {
			t.Errorf("Expected market value 3400, got %s", summary.TotalMarketValue)
		}
		// 10*80 + 5*20
		if !summary.TotalUnrealizedGainLoss.Equal(decimal.RequireFromString("900")) {
			t.Errorf("Expected unrealized gain 900, got %s", summary.TotalUnrealizedGainLoss)
		}
	})

	t.Run("empty ledger produces an empty snapshot", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		ps := testutil.NewTestPortfolioService(t, db, testutil.NewStaticQuotes())

		summary, err := ps.GetSummary(context.Background(), "nobody")
		if err != nil {
			t.Fatalf("GetSummary failed: %v", err)
		}

		if len(summary.Positions) != 0 {
			t.Errorf("Expected no positions, got %d", len(summary.Positions))
		}
		if !summary.TotalMarketValue.IsZero() {
			t.Errorf("Expected zero market value, got %s", summary.TotalMarketValue)
		}
	})

	t.Run("collects warnings from matching and quoting", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		quotes := testutil.NewStaticQuotes() // no quotes at all
		ps := testutil.NewTestPortfolioService(t, db, quotes)

		userID := testutil.MakeUserID()
		testutil.NewTransaction(userID).WithSymbol("TSLA").WithQuantity(3).WithPrice("200").WithTimestamp(day(0)).Build(t, db)
		testutil.NewTransaction(userID).WithSymbol("TSLA").Sell().WithQuantity(5).WithPrice("250").WithTimestamp(day(1)).Build(t, db)
		testutil.NewTransaction(userID).WithSymbol("AAPL").WithQuantity(1).WithPrice("100").WithTimestamp(day(2)).Build(t, db)

		summary, err := ps.GetSummary(context.Background(), userID)
		if err != nil {
			t.Fatalf("GetSummary failed: %v", err)
		}

		codes := make(map[model.WarningCode]bool)
		for _, warning := range summary.Warnings {
			codes[warning.Code] = true
		}
		for _, want := range []model.WarningCode{model.WarnUnmatchedSell, model.WarnNegativeHoldings, model.WarnQuoteUnavailable} {
			if !codes[want] {
				t.Errorf("Expected warning %s, got %v", want, summary.Warnings)
			}
		}

		// AAPL falls back to its average cost.
		if !summary.TotalMarketValue.Equal(decimal.RequireFromString("100")) {
			t.Errorf("Expected fallback market value 100, got %s", summary.TotalMarketValue)
		}
	})
}

func TestPortfolioService_GetHoldings(t *testing.T) {
	t.Run("renders currency strings and allocation", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		quotes := testutil.NewStaticQuotes().SetPrice("AAPL", "180", "175")
		ps := testutil.NewTestPortfolioService(t, db, quotes)

		userID := testutil.MakeUserID()
		testutil.NewTransaction(userID).WithSymbol("AAPL").WithQuantity(10).WithPrice("100").Build(t, db)

		view, err := ps.GetHoldings(context.Background(), userID)
		if err != nil {
			t.Fatalf("GetHoldings failed: %v", err)
		}

		if len(view.Holdings) != 1 {
			t.Fatalf("Expected 1 holding, got %d", len(view.Holdings))
		}
		if view.Holdings[0].MarketValue != "$1,800.00" {
			t.Errorf("Expected $1,800.00, got %s", view.Holdings[0].MarketValue)
		}
		if view.Allocation[0].Percent != 100 {
			t.Errorf("Expected 100%% allocation, got %f", view.Allocation[0].Percent)
		}
	})
}

func TestPortfolioService_GetAllSummaries(t *testing.T) {
	t.Run("values every user with trades", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		quotes := testutil.NewStaticQuotes().SetPrice("AAPL", "180", "175")
		ps := testutil.NewTestPortfolioService(t, db, quotes)

		for _, userID := range []string{"user-c", "user-a", "user-b"} {
			testutil.NewTransaction(userID).WithSymbol("AAPL").WithQuantity(1).WithPrice("100").Build(t, db)
		}

		summaries, err := ps.GetAllSummaries(context.Background())
		if err != nil {
			t.Fatalf("GetAllSummaries failed: %v", err)
		}

		if len(summaries) != 3 {
			t.Fatalf("Expected 3 summaries, got %d", len(summaries))
		}
		for i, want := range []string{"user-a", "user-b", "user-c"} {
			if summaries[i].UserID != want {
				t.Errorf("Expected summaries[%d] for %s, got %s", i, want, summaries[i].UserID)
			}
		}
	})
}
