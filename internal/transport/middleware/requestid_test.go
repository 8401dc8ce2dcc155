package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

// TestRequestID_GeneratesID tests that a request ID is generated and propagated
func TestRequestID_GeneratesID(t *testing.T) {
	var ctxID string
	handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctxID = GetRequestID(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest("GET", "/test", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	headerID := w.Header().Get("X-Request-ID")
	if headerID == "" {
		t.Error("Expected X-Request-ID response header to be set")
	}

	if ctxID == "" {
		t.Error("Expected request ID in context")
	}

	if ctxID != headerID {
		t.Errorf("Expected context ID '%s' to match header ID '%s'", ctxID, headerID)
	}
}

// TestRequestID_PreservesInboundID tests that an existing X-Request-ID is kept
func TestRequestID_PreservesInboundID(t *testing.T) {
	var ctxID string
	handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctxID = GetRequestID(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest("GET", "/test", nil)
	req.Header.Set("X-Request-ID", "upstream-id-123")
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if ctxID != "upstream-id-123" {
		t.Errorf("Expected inbound request ID to be preserved, got '%s'", ctxID)
	}

	if w.Header().Get("X-Request-ID") != "upstream-id-123" {
		t.Errorf("Expected response header to echo inbound ID, got '%s'", w.Header().Get("X-Request-ID"))
	}
}

// TestRequestID_UniquePerRequest tests that each request gets a distinct ID
func TestRequestID_UniquePerRequest(t *testing.T) {
	handler := RequestID(http.HandlerFunc(mockHandler))

	ids := make(map[string]bool)
	for i := 0; i < 5; i++ {
		req := httptest.NewRequest("GET", "/test", nil)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		id := w.Header().Get("X-Request-ID")
		if ids[id] {
			t.Errorf("Expected unique request IDs, got duplicate '%s'", id)
		}
		ids[id] = true
	}
}

// TestGetRequestID_MissingFromContext tests the accessor without middleware
func TestGetRequestID_MissingFromContext(t *testing.T) {
	req := httptest.NewRequest("GET", "/test", nil)

	if id := GetRequestID(req.Context()); id != "" {
		t.Errorf("Expected empty request ID without middleware, got '%s'", id)
	}
}
