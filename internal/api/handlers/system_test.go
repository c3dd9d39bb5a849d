package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fundmgmt/fund-management-backend/internal/api/handlers"
	"github.com/fundmgmt/fund-management-backend/internal/testutil"
)

func TestSystemHandler_Health(t *testing.T) {
	t.Run("returns healthy when database is reachable", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewSystemHandler(testutil.NewTestSystemService(t, db))

		req := httptest.NewRequest(http.MethodGet, "/api/system/health", nil)
		w := httptest.NewRecorder()

		handler.Health(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected status 200, got %d", w.Code)
		}

		var resp handlers.HealthResponse
		if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}

		if resp.Status != "healthy" {
			t.Errorf("Expected status 'healthy', got '%s'", resp.Status)
		}
		if resp.Database != "connected" {
			t.Errorf("Expected database 'connected', got '%s'", resp.Database)
		}
	})

	t.Run("returns unhealthy when database is unreachable", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewSystemHandler(testutil.NewTestSystemService(t, db))

		db.Close()

		req := httptest.NewRequest(http.MethodGet, "/api/system/health", nil)
		w := httptest.NewRecorder()

		handler.Health(w, req)

		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("Expected status 503, got %d", w.Code)
		}

		var resp handlers.HealthResponse
		if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}

		if resp.Status != "unhealthy" {
			t.Errorf("Expected status 'unhealthy', got '%s'", resp.Status)
		}
		if resp.Database != "disconnected" {
			t.Errorf("Expected database 'disconnected', got '%s'", resp.Database)
		}
		if resp.Error == "" {
			t.Error("Expected a non-empty error description")
		}
	})
}
