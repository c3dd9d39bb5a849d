package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/fundmgmt/fund-management-backend/internal/model"
	"github.com/fundmgmt/fund-management-backend/internal/repository"
	"github.com/fundmgmt/fund-management-backend/internal/testutil"
)

func TestPerformanceHistoryRepository(t *testing.T) {
	t.Run("returns history oldest first", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := repository.NewPerformanceHistoryRepository(db)

		fund := testutil.NewFund().Build(t, db)

		base := time.Now().UTC().Truncate(time.Second)
		for i, value := range []float64{10.0, 11.0, 12.0} {
			h := model.PerformanceHistory{
				ID:               testutil.MakeID(),
				FundID:           fund.ID,
				PerformanceDate:  base.Add(time.Duration(i) * 24 * time.Hour),
				PerformanceValue: value,
			}
			if err := repo.InsertHistory(context.Background(), h); err != nil {
				t.Fatalf("InsertHistory failed: %v", err)
			}
		}

		history, err := repo.GetHistoryForFund(fund.ID)
		if err != nil {
			t.Fatalf("GetHistoryForFund failed: %v", err)
		}

		if len(history) != 3 {
			t.Fatalf("Expected 3 history rows, got %d", len(history))
		}

		for i := 1; i < len(history); i++ {
			if history[i].PerformanceDate.Before(history[i-1].PerformanceDate) {
				t.Errorf("History not ordered oldest first at index %d", i)
			}
		}
		if history[0].PerformanceValue != 10.0 {
			t.Errorf("Expected oldest value 10.0, got %f", history[0].PerformanceValue)
		}
	})

	t.Run("returns empty slice for fund with no history", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := repository.NewPerformanceHistoryRepository(db)

		fund := testutil.NewFund().Build(t, db)

		history, err := repo.GetHistoryForFund(fund.ID)
		if err != nil {
			t.Fatalf("GetHistoryForFund failed: %v", err)
		}
		if len(history) != 0 {
			t.Errorf("Expected empty history, got %d rows", len(history))
		}
	})

	t.Run("rejects history for unknown fund", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := repository.NewPerformanceHistoryRepository(db)

		h := model.PerformanceHistory{
			ID:               testutil.MakeID(),
			FundID:           "nonexistent-id",
			PerformanceDate:  time.Now().UTC(),
			PerformanceValue: 1.0,
		}

		if err := repo.InsertHistory(context.Background(), h); err == nil {
			t.Error("Expected foreign key violation, got nil")
		}
	})
}
