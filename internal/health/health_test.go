package health

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestHandler_AllHealthy(t *testing.T) {
	handler := NewHandler("test")
	handler.RegisterChecker("storage", NewSimpleChecker("storage", func() error { return nil }))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var resp Response
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.Status != StatusHealthy {
		t.Errorf("overall status = %s, want %s", resp.Status, StatusHealthy)
	}
	if resp.Version != "test" {
		t.Errorf("version = %q, want %q", resp.Version, "test")
	}
	if resp.Checks["storage"].Status != StatusHealthy {
		t.Errorf("storage check = %s, want healthy", resp.Checks["storage"].Status)
	}
}

func TestHandler_UnhealthyComponent(t *testing.T) {
	handler := NewHandler("test")
	handler.RegisterChecker("storage", NewSimpleChecker("storage", func() error {
		return errors.New("connection refused")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusServiceUnavailable)
	}

	var resp Response
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.Status != StatusUnhealthy {
		t.Errorf("overall status = %s, want %s", resp.Status, StatusUnhealthy)
	}
	if resp.Checks["storage"].Message != "connection refused" {
		t.Errorf("unexpected message: %q", resp.Checks["storage"].Message)
	}
}

func TestHandler_NoCheckers(t *testing.T) {
	handler := NewHandler("")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
}
