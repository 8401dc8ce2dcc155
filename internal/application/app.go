package application

import (
	"fmt"

	"github.com/MargotLh/market-research-assistant/internal/cache"
	"github.com/MargotLh/market-research-assistant/internal/gemini"
	"github.com/MargotLh/market-research-assistant/internal/infrastructure"
	"github.com/MargotLh/market-research-assistant/internal/repository"
	"github.com/MargotLh/market-research-assistant/internal/service"
	"github.com/MargotLh/market-research-assistant/internal/transport/handler"
	"github.com/MargotLh/market-research-assistant/internal/wikipedia"
)

// Version is reported by the health endpoint. Overridden at build time.
var Version = "dev"

// Application represents the application with all business logic components
type Application struct {
	Config *infrastructure.Config

	ResearchService *service.Research

	ResearchHandler   *handler.Research
	IndexHandler      *handler.Index
	HealthHandler     *handler.Health
	CacheStatsHandler *handler.CacheStats
	CacheClearHandler *handler.CacheClear

	cleanup func() error
}

// New creates a new application instance with all dependencies
func New() (*Application, error) {
	// Load configuration
	cfg, err := infrastructure.Load()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	// Initialize clients and cache
	cacheManager := cache.NewManager(cfg.CacheDuration())
	wikipediaClient := wikipedia.NewClient(cfg.WikipediaLang)
	geminiClient := gemini.NewClient(cfg.GeminiModel)

	// Create repositories
	wikipediaRepo := repository.NewWikipediaRepository(wikipediaClient)
	geminiRepo := repository.NewGeminiRepository(geminiClient)
	cacheRepo := repository.NewCacheRepository(cacheManager)

	// Create services (business logic)
	researchService := service.NewResearch(wikipediaRepo, geminiRepo, cacheRepo, cfg.WikipediaLang, cfg.CheckIndustry)

	// Create handlers (HTTP layer)
	researchHandler := handler.NewResearch(researchService)
	indexHandler := handler.NewIndex(gemini.MaxReportWords, wikipedia.DefaultMaxPages)
	healthHandler := handler.NewHealth(Version)
	cacheStatsHandler := handler.NewCacheStats(cacheRepo)
	cacheClearHandler := handler.NewCacheClear(cacheRepo)

	// Cleanup function
	cleanup := func() error {
		return cacheRepo.Close()
	}

	return &Application{
		Config:            cfg,
		ResearchService:   researchService,
		ResearchHandler:   researchHandler,
		IndexHandler:      indexHandler,
		HealthHandler:     healthHandler,
		CacheStatsHandler: cacheStatsHandler,
		CacheClearHandler: cacheClearHandler,
		cleanup:           cleanup,
	}, nil
}

// Close cleans up application resources
func (a *Application) Close() error {
	if a.cleanup != nil {
		return a.cleanup()
	}
	return nil
}
