package validation

import (
	"strings"

	"github.com/fundmgmt/fund-management-backend/internal/api/request"
)

// ValidateCreateFund checks a fund-creation request against the schema
// rules: non-empty name and manager name, non-negative NAV. All violations
// are collected before returning so callers can report field-level detail.
func ValidateCreateFund(req request.CreateFundRequest) error {
	errors := make(map[string]string)

	// Required fields
	if strings.TrimSpace(req.Name) == "" {
		errors["name"] = "name cannot be empty"
	} else if len(req.Name) > 100 {
		errors["name"] = "name must be 100 characters or less"
	}

	if strings.TrimSpace(req.ManagerName) == "" {
		errors["manager_name"] = "manager name cannot be empty"
	} else if len(req.ManagerName) > 100 {
		errors["manager_name"] = "manager name must be 100 characters or less"
	}

	if req.Nav == nil {
		errors["nav"] = "nav is required"
	} else if *req.Nav < 0 {
		errors["nav"] = "nav cannot be negative"
	}

	if req.Performance == nil {
		errors["performance"] = "performance is required"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

// ValidateUpdatePerformance checks a performance-update request.
// Performance may be negative but must be present and numeric; non-numeric
// values are rejected at JSON decode time before this runs.
func ValidateUpdatePerformance(req request.UpdatePerformanceRequest) error {
	errors := make(map[string]string)

	if req.Performance == nil {
		errors["performance"] = "performance must be a number"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}
