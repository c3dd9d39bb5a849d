package handlers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/fundmgmt/fund-management-backend/internal/apperrors"
	"github.com/fundmgmt/fund-management-backend/internal/api/response"
	"github.com/fundmgmt/fund-management-backend/internal/model"
	"github.com/fundmgmt/fund-management-backend/internal/validation"
)

// FundResponse is the JSON shape of a fund returned by the API.
// Timestamps marshal as ISO-8601 (RFC 3339) strings.
type FundResponse struct {
	FundID       string  `json:"fund_id"`
	Name         string  `json:"name"`
	ManagerName  string  `json:"manager_name"`
	Description  string  `json:"description"`
	Nav          float64 `json:"nav"`
	CreationDate string  `json:"creation_date"`
	Performance  float64 `json:"performance"`
	LastUpdated  string  `json:"last_updated"`
}

// newFundResponse maps a model.Fund to its API representation.
func newFundResponse(f model.Fund) FundResponse {
	return FundResponse{
		FundID:       f.ID,
		Name:         f.Name,
		ManagerName:  f.ManagerName,
		Description:  f.Description,
		Nav:          f.Nav,
		CreationDate: f.CreationDate.UTC().Format(time.RFC3339),
		Performance:  f.Performance,
		LastUpdated:  f.LastUpdated.UTC().Format(time.RFC3339),
	}
}

// respondServiceError translates service-layer errors to HTTP responses.
// Validation errors carry field-level detail; database errors are reported
// generically so the store's native error text never reaches callers.
func respondServiceError(w http.ResponseWriter, err error, notFoundMessage string) {
	var vErr *validation.Error
	switch {
	case errors.As(err, &vErr):
		response.RespondValidationError(w, "Fund validation failed", vErr.Fields)
	case errors.Is(err, apperrors.ErrDuplicateFundName):
		response.RespondValidationError(w, "Fund validation failed", map[string]string{
			"name": "a fund with this name already exists",
		})
	case errors.Is(err, apperrors.ErrFundNotFound):
		response.RespondError(w, http.StatusNotFound, response.KindNotFound, notFoundMessage)
	default:
		log.Printf("database error: %v", err)
		response.RespondError(w, http.StatusInternalServerError, response.KindDatabase,
			"an unexpected error occurred while accessing the database")
	}
}
