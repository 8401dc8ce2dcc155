package handler

import (
	"encoding/json"
	"net/http"
	"time"
)

// Health provides the health check endpoint.
type Health struct {
	version string
}

func NewHealth(version string) *Health {
	return &Health{
		version: version,
	}
}

func (h *Health) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	resp := map[string]interface{}{
		"status":    "ok",
		"timestamp": time.Now().Unix(),
		"version":   h.version,
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}
