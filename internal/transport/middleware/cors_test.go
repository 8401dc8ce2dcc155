package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

// TestCORS_AddsHeaders tests that CORS headers are set on normal requests
func TestCORS_AddsHeaders(t *testing.T) {
	handler := CORS(http.HandlerFunc(mockHandler))

	req := httptest.NewRequest("GET", "/test", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	if origin := w.Header().Get("Access-Control-Allow-Origin"); origin != "*" {
		t.Errorf("Expected Access-Control-Allow-Origin '*', got '%s'", origin)
	}

	if methods := w.Header().Get("Access-Control-Allow-Methods"); methods == "" {
		t.Error("Expected Access-Control-Allow-Methods to be set")
	}

	if w.Body.String() != "success" {
		t.Errorf("Expected handler to run, got body '%s'", w.Body.String())
	}
}

// TestCORS_PreflightShortCircuits tests that OPTIONS requests stop at the middleware
func TestCORS_PreflightShortCircuits(t *testing.T) {
	handlerCalled := false
	handler := CORS(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handlerCalled = true
	}))

	req := httptest.NewRequest("OPTIONS", "/test", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200 for preflight, got %d", w.Code)
	}

	if handlerCalled {
		t.Error("Expected OPTIONS request to short-circuit before the handler")
	}
}
