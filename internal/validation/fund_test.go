package validation_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/fundmgmt/fund-management-backend/internal/api/request"
	"github.com/fundmgmt/fund-management-backend/internal/validation"
)

func floatPtr(f float64) *float64 {
	return &f
}

func TestValidateCreateFund(t *testing.T) {
	valid := request.CreateFundRequest{
		Name:        "Global Equity Fund",
		ManagerName: "Jane Smith",
		Description: "Large-cap global equities",
		Nav:         floatPtr(150.25),
		Performance: floatPtr(12.5),
	}

	t.Run("accepts a valid request", func(t *testing.T) {
		if err := validation.ValidateCreateFund(valid); err != nil {
			t.Errorf("Expected no error, got %v", err)
		}
	})

	t.Run("accepts zero nav", func(t *testing.T) {
		req := valid
		req.Nav = floatPtr(0)
		if err := validation.ValidateCreateFund(req); err != nil {
			t.Errorf("Expected zero nav to be accepted, got %v", err)
		}
	})

	t.Run("accepts negative performance", func(t *testing.T) {
		req := valid
		req.Performance = floatPtr(-4.2)
		if err := validation.ValidateCreateFund(req); err != nil {
			t.Errorf("Expected negative performance to be accepted, got %v", err)
		}
	})

	t.Run("rejects invalid requests with field-level detail", func(t *testing.T) {
		tests := []struct {
			name   string
			modify func(r *request.CreateFundRequest)
			field  string
		}{
			{
				name:   "empty name",
				modify: func(r *request.CreateFundRequest) { r.Name = "" },
				field:  "name",
			},
			{
				name:   "whitespace name",
				modify: func(r *request.CreateFundRequest) { r.Name = "   " },
				field:  "name",
			},
			{
				name:   "name too long",
				modify: func(r *request.CreateFundRequest) { r.Name = strings.Repeat("x", 101) },
				field:  "name",
			},
			{
				name:   "empty manager name",
				modify: func(r *request.CreateFundRequest) { r.ManagerName = "" },
				field:  "manager_name",
			},
			{
				name:   "manager name too long",
				modify: func(r *request.CreateFundRequest) { r.ManagerName = strings.Repeat("x", 101) },
				field:  "manager_name",
			},
			{
				name:   "missing nav",
				modify: func(r *request.CreateFundRequest) { r.Nav = nil },
				field:  "nav",
			},
			{
				name:   "negative nav",
				modify: func(r *request.CreateFundRequest) { r.Nav = floatPtr(-0.01) },
				field:  "nav",
			},
			{
				name:   "missing performance",
				modify: func(r *request.CreateFundRequest) { r.Performance = nil },
				field:  "performance",
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				req := valid
				tt.modify(&req)

				err := validation.ValidateCreateFund(req)

				var vErr *validation.Error
				if !errors.As(err, &vErr) {
					t.Fatalf("Expected *validation.Error, got %v", err)
				}
				if _, ok := vErr.Fields[tt.field]; !ok {
					t.Errorf("Expected a violation for field %q, got %v", tt.field, vErr.Fields)
				}
			})
		}
	})

	t.Run("collects all violations at once", func(t *testing.T) {
		err := validation.ValidateCreateFund(request.CreateFundRequest{})

		var vErr *validation.Error
		if !errors.As(err, &vErr) {
			t.Fatalf("Expected *validation.Error, got %v", err)
		}
		if len(vErr.Fields) != 4 {
			t.Errorf("Expected 4 violations, got %d: %v", len(vErr.Fields), vErr.Fields)
		}
	})
}

func TestValidateUpdatePerformance(t *testing.T) {
	t.Run("accepts any numeric performance", func(t *testing.T) {
		for _, v := range []float64{-10.5, 0, 99.9} {
			req := request.UpdatePerformanceRequest{Performance: floatPtr(v)}
			if err := validation.ValidateUpdatePerformance(req); err != nil {
				t.Errorf("Expected %f to be accepted, got %v", v, err)
			}
		}
	})

	t.Run("rejects missing performance", func(t *testing.T) {
		err := validation.ValidateUpdatePerformance(request.UpdatePerformanceRequest{})

		var vErr *validation.Error
		if !errors.As(err, &vErr) {
			t.Fatalf("Expected *validation.Error, got %v", err)
		}
		if _, ok := vErr.Fields["performance"]; !ok {
			t.Errorf("Expected a violation for field 'performance', got %v", vErr.Fields)
		}
	})
}
