package service

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/GoogleCloudPlatform/functions-framework-go/funcframework"

	"github.com/MargotLh/market-research-assistant/internal/repository"
	"github.com/MargotLh/market-research-assistant/internal/research"
	"github.com/MargotLh/market-research-assistant/internal/wikipedia"
)

// Research runs the validate, retrieve, generate pipeline for one industry.
type Research struct {
	wikipedia repository.WikipediaRepository
	gemini    repository.GeminiRepository
	cache     repository.CacheRepository

	lang          string
	maxPages      int
	checkIndustry bool
}

// NewResearch wires the pipeline. When checkIndustry is set, the model is
// asked whether the input names a real industry before any retrieval runs.
func NewResearch(
	wiki repository.WikipediaRepository,
	gemini repository.GeminiRepository,
	cache repository.CacheRepository,
	lang string,
	checkIndustry bool,
) *Research {
	if lang == "" {
		lang = "en"
	}
	return &Research{
		wikipedia:     wiki,
		gemini:        gemini,
		cache:         cache,
		lang:          lang,
		maxPages:      wikipedia.DefaultMaxPages,
		checkIndustry: checkIndustry,
	}
}

// Process researches one industry end to end: validate the input, retrieve
// Wikipedia pages, generate the report. Errors carry the stage they happened
// in so callers can tell bad input from upstream failures.
func (r *Research) Process(ctx context.Context, industry, apiKey string) (*research.Result, error) {
	logger := log.New(funcframework.LogWriter(ctx), "", 0)
	startTime := time.Now()

	industry = strings.TrimSpace(industry)
	if industry == "" {
		return nil, research.NewStageError(research.StageValidate, research.ErrEmptyIndustry)
	}

	logger.Printf("🔍 Research started industry=%q lang=%s", industry, r.lang)

	// A cached result short-circuits the whole pipeline.
	if cached, err := r.cache.GetResult(ctx, r.lang, industry); err == nil {
		logger.Printf("✅ Cache hit industry=%q", industry)
		cached.Cached = true
		return cached, nil
	}

	if r.checkIndustry {
		valid, err := r.gemini.ValidateIndustry(ctx, apiKey, industry)
		if err != nil {
			logger.Printf("❌ Industry check failed industry=%q: %v", industry, err)
			return nil, research.NewStageError(research.StageValidate, err)
		}
		if !valid {
			logger.Printf("❌ Rejected as not an industry industry=%q", industry)
			return nil, research.NewStageError(research.StageValidate, research.ErrNotAnIndustry)
		}
	}

	retrieveStart := time.Now()
	pages, err := r.wikipedia.Search(ctx, industry, r.maxPages)
	if err != nil {
		logger.Printf("❌ Retrieval failed industry=%q: %v", industry, err)
		return nil, research.NewStageError(research.StageRetrieve, err)
	}
	if len(pages) == 0 {
		logger.Printf("❌ No pages found industry=%q", industry)
		return nil, research.NewStageError(research.StageRetrieve, research.ErrNoPages)
	}
	retrieveDuration := time.Since(retrieveStart)
	logger.Printf("📄 Retrieved %d pages industry=%q duration_ms=%d",
		len(pages), industry, retrieveDuration.Milliseconds())

	generateStart := time.Now()
	report, err := r.gemini.GenerateReport(ctx, apiKey, industry, pages)
	if err != nil {
		logger.Printf("❌ Generation failed industry=%q: %v", industry, err)
		return nil, research.NewStageError(research.StageGenerate, err)
	}
	generateDuration := time.Since(generateStart)

	result := &research.Result{
		Industry: industry,
		Pages:    pages,
		Report:   report,
	}

	// Cache write failures do not fail the request.
	if err := r.cache.SetResult(ctx, r.lang, industry, *result); err != nil {
		logger.Printf("⚠️ Caching result failed industry=%q: %v", industry, err)
	}

	totalDuration := time.Since(startTime)
	logger.Printf("🎉 Research completed industry=%q words=%d pages=%d total_duration_ms=%d retrieve_duration_ms=%d generate_duration_ms=%d",
		industry, report.WordCount, len(pages),
		totalDuration.Milliseconds(), retrieveDuration.Milliseconds(), generateDuration.Milliseconds())

	return result, nil
}

// IsCached reports whether a live cached result exists for the industry.
func (r *Research) IsCached(ctx context.Context, industry string) (bool, error) {
	return r.cache.IsCached(ctx, r.lang, strings.TrimSpace(industry))
}
