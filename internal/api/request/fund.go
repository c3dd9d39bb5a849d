package request

// CreateFundRequest is the JSON body for POST /api/funds/.
// Numeric fields are pointers so that absent and zero can be told apart
// during validation.
type CreateFundRequest struct {
	Name        string   `json:"name"`
	ManagerName string   `json:"manager_name"`
	Description string   `json:"description"`
	Nav         *float64 `json:"nav"`
	Performance *float64 `json:"performance"`
}

// UpdatePerformanceRequest is the JSON body for PATCH /api/funds/{fundId}/performance.
type UpdatePerformanceRequest struct {
	Performance *float64 `json:"performance"`
}
