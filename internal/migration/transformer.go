package migration

import (
	"fmt"
	"strings"
	"time"

	"github.com/fundmgmt/fund-management-backend/internal/apperrors"
	"github.com/fundmgmt/fund-management-backend/internal/model"
	"github.com/fundmgmt/fund-management-backend/internal/repository"
)

// Transform maps one legacy record into the destination fund shape.
//
// Shared fields are copied unchanged; fund_id stays the stable join key
// across both systems. creation_date is copied when present, otherwise
// defaulted to now; last_updated is always now.
//
// Returns an error wrapping apperrors.ErrInvalidRecord when the record
// fails the destination shape requirements (empty name, negative nav, or a
// non-empty creation_date that cannot be parsed). Such rows are skipped by
// the caller, not fatal to the batch.
func Transform(legacy model.LegacyFund, now time.Time) (model.Fund, error) {
	if strings.TrimSpace(legacy.Name) == "" {
		return model.Fund{}, fmt.Errorf("%w: fund %s: %v", apperrors.ErrInvalidRecord, legacy.ID, apperrors.ErrEmptyName)
	}
	if legacy.Nav < 0 {
		return model.Fund{}, fmt.Errorf("%w: fund %s: %v", apperrors.ErrInvalidRecord, legacy.ID, apperrors.ErrNegativeNav)
	}

	creationDate := now
	if legacy.CreationDate != "" {
		parsed, err := repository.ParseTime(legacy.CreationDate)
		if err != nil {
			return model.Fund{}, fmt.Errorf("%w: fund %s: bad creation_date %q", apperrors.ErrInvalidRecord, legacy.ID, legacy.CreationDate)
		}
		creationDate = parsed
	}

	return model.Fund{
		ID:           legacy.ID,
		Name:         legacy.Name,
		ManagerName:  legacy.ManagerName,
		Description:  legacy.Description,
		Nav:          legacy.Nav,
		CreationDate: creationDate,
		Performance:  legacy.Performance,
		LastUpdated:  now,
	}, nil
}
