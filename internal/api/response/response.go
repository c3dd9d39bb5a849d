// Package response provides utilities for sending consistent HTTP responses.
// It includes helpers for JSON responses and standardized error responses.
package response

import (
	"encoding/json"
	"log"
	"net/http"
)

// Error kinds used in the "error" field of error responses.
const (
	KindValidation = "Validation Error"
	KindNotFound   = "Not Found"
	KindDatabase   = "Database Error"
	KindInternal   = "Internal Server Error"
)

// FieldError describes a single field-level validation violation.
type FieldError struct {
	Field string `json:"field"`
	Error string `json:"error"`
}

// ErrorResponse represents a structured error response returned by the API.
// Errors carries field-level violations for validation failures; Details is
// optional additional context. Both are omitted when empty.
type ErrorResponse struct {
	Error   string       `json:"error"`
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors,omitempty"`
	Details interface{}  `json:"details,omitempty"`
}

// RespondJSON sends a JSON response with the given status code.
// Sets the Content-Type header to application/json and writes the status code.
// If data is nil, only the status code is sent (useful for 204 No Content).
// Logs encoding errors but does not fail the response.
func RespondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("failed to encode JSON response: %v", err)
		}
	}
}

// RespondError sends a structured error response with the given status code.
// The kind should be one of the Kind constants; message is a user-friendly
// error description.
//
// Example:
//
//	response.RespondError(w, http.StatusNotFound, response.KindNotFound, "fund not found")
func RespondError(w http.ResponseWriter, status int, kind, message string) {
	RespondJSON(w, status, ErrorResponse{
		Error:   kind,
		Message: message,
	})
}

// RespondValidationError sends a 400 response carrying field-level violations.
func RespondValidationError(w http.ResponseWriter, message string, fields map[string]string) {
	errors := make([]FieldError, 0, len(fields))
	for field, msg := range fields {
		errors = append(errors, FieldError{Field: field, Error: msg})
	}

	RespondJSON(w, http.StatusBadRequest, ErrorResponse{
		Error:   KindValidation,
		Message: message,
		Errors:  errors,
	})
}
