package handler

import (
	"log"
	"net/http"

	"github.com/GoogleCloudPlatform/functions-framework-go/funcframework"

	"github.com/MargotLh/market-research-assistant/internal/repository"
	"github.com/MargotLh/market-research-assistant/internal/transport/response"
)

// CacheStats reports cache metrics.
type CacheStats struct {
	cache repository.CacheRepository
}

func NewCacheStats(cache repository.CacheRepository) *CacheStats {
	return &CacheStats{
		cache: cache,
	}
}

func (h *CacheStats) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	logger := log.New(funcframework.LogWriter(r.Context()), "", 0)

	stats, err := h.cache.GetStats(r.Context())
	if err != nil {
		logger.Printf("Error getting cache stats: %v", err)
		response.WriteInternalError(w, "Failed to get cache stats")
		return
	}

	response.WriteSuccess(w, "Cache stats retrieved successfully", stats)
}

// CacheClear empties the result cache.
type CacheClear struct {
	cache repository.CacheRepository
}

func NewCacheClear(cache repository.CacheRepository) *CacheClear {
	return &CacheClear{
		cache: cache,
	}
}

func (h *CacheClear) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	logger := log.New(funcframework.LogWriter(r.Context()), "", 0)

	if err := h.cache.Clear(r.Context()); err != nil {
		logger.Printf("Error clearing cache: %v", err)
		response.WriteInternalError(w, "Failed to clear cache")
		return
	}

	logger.Printf("Cache cleared")
	response.WriteSuccess(w, "Cache cleared successfully", nil)
}
