package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/fundmgmt/fund-management-backend/internal/api/request"
	"github.com/fundmgmt/fund-management-backend/internal/api/response"
	"github.com/fundmgmt/fund-management-backend/internal/service"
	"github.com/fundmgmt/fund-management-backend/internal/validation"
)

// FundHandler handles HTTP requests for fund endpoints.
// It serves as the HTTP layer adapter, parsing requests and delegating
// business logic to the fundService.
type FundHandler struct {
	fundService *service.FundService
}

// NewFundHandler creates a new FundHandler with the provided service dependency.
func NewFundHandler(fundService *service.FundService) *FundHandler {
	return &FundHandler{
		fundService: fundService,
	}
}

// GetAllFunds handles GET requests to retrieve all funds.
//
// Endpoint: GET /api/funds/
// Response: 200 OK with array of FundResponse
// Error: 500 Internal Server Error if retrieval fails
func (h *FundHandler) GetAllFunds(w http.ResponseWriter, r *http.Request) {

	funds, err := h.fundService.GetAllFunds()
	if err != nil {
		respondServiceError(w, err, "")
		return
	}

	resp := make([]FundResponse, len(funds))
	for i, f := range funds {
		resp[i] = newFundResponse(f)
	}

	response.RespondJSON(w, http.StatusOK, resp)
}

// CreateFund handles POST requests to create a new fund.
// The server assigns the identifier, creation date and last-updated
// timestamp; validation failures return field-level errors.
//
// Endpoint: POST /api/funds/
// Response: 201 Created with the created FundResponse
// Error: 400 Bad Request on validation failure or malformed body
func (h *FundHandler) CreateFund(w http.ResponseWriter, r *http.Request) {
	var req request.CreateFundRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.RespondValidationError(w, "Request validation failed", map[string]string{
			"body": "request body must be valid JSON with numeric nav and performance",
		})
		return
	}

	fund, err := h.fundService.CreateFund(r.Context(), req)
	if err != nil {
		respondServiceError(w, err, "")
		return
	}

	response.RespondJSON(w, http.StatusCreated, newFundResponse(fund))
}

// GetFund handles GET requests to retrieve a single fund by ID.
//
// Endpoint: GET /api/funds/{fundId}
// Response: 200 OK with FundResponse
// Error: 404 Not Found if the fund does not exist
func (h *FundHandler) GetFund(w http.ResponseWriter, r *http.Request) {
	fundID := chi.URLParam(r, "fundId")

	fund, err := h.fundService.GetFund(fundID)
	if err != nil {
		respondServiceError(w, err, fmt.Sprintf("Fund with ID %s not found", fundID))
		return
	}

	response.RespondJSON(w, http.StatusOK, newFundResponse(fund))
}

// UpdatePerformance handles PATCH requests to update a fund's performance.
// Only the performance value and last-updated timestamp change.
//
// Endpoint: PATCH /api/funds/{fundId}/performance
// Response: 200 OK with the updated FundResponse
// Error: 404 Not Found if the fund does not exist; 400 Bad Request if the
// performance value is missing or not numeric
func (h *FundHandler) UpdatePerformance(w http.ResponseWriter, r *http.Request) {
	fundID := chi.URLParam(r, "fundId")

	var req request.UpdatePerformanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.RespondValidationError(w, "Invalid performance value", map[string]string{
			"performance": "performance must be a number",
		})
		return
	}

	if err := validation.ValidateUpdatePerformance(req); err != nil {
		var vErr *validation.Error
		if errors.As(err, &vErr) {
			response.RespondValidationError(w, "Invalid performance value", vErr.Fields)
			return
		}
		respondServiceError(w, err, "")
		return
	}

	fund, err := h.fundService.UpdatePerformance(r.Context(), fundID, *req.Performance)
	if err != nil {
		respondServiceError(w, err, fmt.Sprintf("Fund with ID %s not found", fundID))
		return
	}

	response.RespondJSON(w, http.StatusOK, newFundResponse(fund))
}

// DeleteFund handles DELETE requests to remove a fund.
// Category mappings and performance history cascade at the database level.
//
// Endpoint: DELETE /api/funds/{fundId}
// Response: 204 No Content with empty body
// Error: 404 Not Found if the fund does not exist
func (h *FundHandler) DeleteFund(w http.ResponseWriter, r *http.Request) {
	fundID := chi.URLParam(r, "fundId")

	if err := h.fundService.DeleteFund(r.Context(), fundID); err != nil {
		respondServiceError(w, err, fmt.Sprintf("Fund with ID %s not found", fundID))
		return
	}

	response.RespondJSON(w, http.StatusNoContent, nil)
}
