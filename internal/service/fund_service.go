package service

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/fundmgmt/fund-management-backend/internal/api/request"
	"github.com/fundmgmt/fund-management-backend/internal/model"
	"github.com/fundmgmt/fund-management-backend/internal/repository"
	"github.com/fundmgmt/fund-management-backend/internal/validation"
)

// FundService handles fund-related business logic operations.
type FundService struct {
	db          *sql.DB
	fundRepo    *repository.FundRepository
	historyRepo *repository.PerformanceHistoryRepository
}

// NewFundService creates a new FundService with the provided repository dependencies.
func NewFundService(
	db *sql.DB,
	fundRepo *repository.FundRepository,
	historyRepo *repository.PerformanceHistoryRepository,
) *FundService {
	return &FundService{
		db:          db,
		fundRepo:    fundRepo,
		historyRepo: historyRepo,
	}
}

// GetAllFunds retrieves all funds from the database.
func (s *FundService) GetAllFunds() ([]model.Fund, error) {
	return s.fundRepo.GetAllFunds()
}

// GetFund retrieves a single fund by ID.
// Returns apperrors.ErrFundNotFound if the fund does not exist.
func (s *FundService) GetFund(fundID string) (model.Fund, error) {
	return s.fundRepo.GetFund(fundID)
}

// CreateFund validates the request, assigns a server-side identifier and
// timestamps, and persists the new fund.
//
// Returns a *validation.Error for field-level violations and
// apperrors.ErrDuplicateFundName when the name is already taken.
func (s *FundService) CreateFund(ctx context.Context, req request.CreateFundRequest) (model.Fund, error) {
	if err := validation.ValidateCreateFund(req); err != nil {
		return model.Fund{}, err
	}

	now := time.Now().UTC()
	fund := model.Fund{
		ID:           uuid.New().String(),
		Name:         req.Name,
		ManagerName:  req.ManagerName,
		Description:  req.Description,
		Nav:          *req.Nav,
		CreationDate: now,
		Performance:  *req.Performance,
		LastUpdated:  now,
	}

	if err := s.fundRepo.InsertFund(ctx, fund); err != nil {
		return model.Fund{}, err
	}

	return fund, nil
}

// UpdatePerformance updates only the performance and last_updated fields of
// a fund and returns the updated record.
// Returns apperrors.ErrFundNotFound if the fund does not exist; nothing is
// mutated in that case.
func (s *FundService) UpdatePerformance(ctx context.Context, fundID string, performance float64) (model.Fund, error) {
	if err := s.fundRepo.UpdatePerformance(ctx, fundID, performance, time.Now().UTC()); err != nil {
		return model.Fund{}, err
	}

	return s.fundRepo.GetFund(fundID)
}

// DeleteFund deletes a fund by ID. Category mappings and performance
// history referencing it are removed by the database's cascade rules.
// Returns apperrors.ErrFundNotFound if the fund does not exist.
func (s *FundService) DeleteFund(ctx context.Context, fundID string) error {
	return s.fundRepo.DeleteFund(ctx, fundID)
}

// SnapshotPerformance records the current performance of every fund into
// fund_performance_history, one row per fund, all within a single
// transaction. Invoked by the scheduled snapshot job.
// Returns the number of history rows written.
func (s *FundService) SnapshotPerformance(ctx context.Context) (int, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin snapshot transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	funds, err := s.fundRepo.WithTx(tx).GetAllFunds()
	if err != nil {
		return 0, err
	}

	now := time.Now().UTC()
	historyRepo := s.historyRepo.WithTx(tx)

	for _, f := range funds {
		h := model.PerformanceHistory{
			ID:               uuid.New().String(),
			FundID:           f.ID,
			PerformanceDate:  now,
			PerformanceValue: f.Performance,
		}
		if err := historyRepo.InsertHistory(ctx, h); err != nil {
			return 0, err
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit snapshot transaction: %w", err)
	}

	return len(funds), nil
}
