package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MargotLh/market-research-assistant/internal/mocks"
	"github.com/MargotLh/market-research-assistant/internal/research"
	"github.com/MargotLh/market-research-assistant/internal/service"
)

type researchResponse struct {
	Status string `json:"status"`
	Error  string `json:"error"`
	Stage  string `json:"stage"`
	Data   struct {
		Industry string `json:"industry"`
		Cached   bool   `json:"cached"`
		Report   struct {
			Text      string `json:"text"`
			WordCount int    `json:"word_count"`
		} `json:"report"`
		Pages []struct {
			Title string `json:"title"`
			URL   string `json:"url"`
		} `json:"pages"`
	} `json:"data"`
}

func newResearchHandler(wiki *mocks.MockWikipediaRepo, gemini *mocks.MockGeminiRepo, cache *mocks.MockCacheRepo) *Research {
	svc := service.NewResearch(wiki, gemini, cache, "en", false)
	return NewResearch(svc)
}

func postResearch(t *testing.T, handler *Research, body string) (*httptest.ResponseRecorder, researchResponse) {
	t.Helper()

	req := httptest.NewRequest("POST", "/api/v1/research", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	var resp researchResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	return w, resp
}

func TestResearchHandler_Success(t *testing.T) {
	wiki := &mocks.MockWikipediaRepo{}
	gemini := &mocks.MockGeminiRepo{}
	cache := mocks.NewMockCacheRepo()
	handler := newResearchHandler(wiki, gemini, cache)

	w, resp := postResearch(t, handler, `{"industry":"automotive","api_key":"test-key"}`)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}
	if resp.Status != "success" {
		t.Errorf("Expected status 'success', got '%s'", resp.Status)
	}
	if resp.Data.Industry != "automotive" {
		t.Errorf("Expected industry 'automotive', got '%s'", resp.Data.Industry)
	}
	if resp.Data.Report.Text != "test report" {
		t.Errorf("Expected report text 'test report', got '%s'", resp.Data.Report.Text)
	}
	if resp.Data.Cached {
		t.Error("Expected fresh result, got cached")
	}
	if len(resp.Data.Pages) != 1 {
		t.Errorf("Expected 1 page, got %d", len(resp.Data.Pages))
	}
	if wiki.SearchCalls != 1 {
		t.Errorf("Expected 1 search call, got %d", wiki.SearchCalls)
	}
	if gemini.GenerateReportCalls != 1 {
		t.Errorf("Expected 1 generate call, got %d", gemini.GenerateReportCalls)
	}
}

func TestResearchHandler_InvalidJSON(t *testing.T) {
	handler := newResearchHandler(&mocks.MockWikipediaRepo{}, &mocks.MockGeminiRepo{}, mocks.NewMockCacheRepo())

	w, resp := postResearch(t, handler, `{not json`)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", w.Code)
	}
	if resp.Error != "Invalid JSON" {
		t.Errorf("Expected error 'Invalid JSON', got '%s'", resp.Error)
	}
}

func TestResearchHandler_MissingIndustry(t *testing.T) {
	wiki := &mocks.MockWikipediaRepo{}
	handler := newResearchHandler(wiki, &mocks.MockGeminiRepo{}, mocks.NewMockCacheRepo())

	w, resp := postResearch(t, handler, `{"api_key":"test-key"}`)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", w.Code)
	}
	if resp.Stage != "validate" {
		t.Errorf("Expected stage 'validate', got '%s'", resp.Stage)
	}
	if wiki.SearchCalls != 0 {
		t.Errorf("Expected no search calls, got %d", wiki.SearchCalls)
	}
}

func TestResearchHandler_MissingAPIKey(t *testing.T) {
	wiki := &mocks.MockWikipediaRepo{}
	gemini := &mocks.MockGeminiRepo{}
	handler := newResearchHandler(wiki, gemini, mocks.NewMockCacheRepo())

	w, resp := postResearch(t, handler, `{"industry":"automotive"}`)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", w.Code)
	}
	if resp.Stage != "validate" {
		t.Errorf("Expected stage 'validate', got '%s'", resp.Stage)
	}
	if resp.Error != "api_key is required" {
		t.Errorf("Expected error 'api_key is required', got '%s'", resp.Error)
	}
	if wiki.SearchCalls != 0 || gemini.GenerateReportCalls != 0 {
		t.Error("Expected no pipeline calls without an API key")
	}
}

func TestResearchHandler_NoPages(t *testing.T) {
	wiki := &mocks.MockWikipediaRepo{
		SearchFunc: func(ctx context.Context, industry string, maxPages int) ([]research.Page, error) {
			return nil, nil
		},
	}
	handler := newResearchHandler(wiki, &mocks.MockGeminiRepo{}, mocks.NewMockCacheRepo())

	w, resp := postResearch(t, handler, `{"industry":"zzzznotreal","api_key":"test-key"}`)

	if w.Code != http.StatusBadGateway {
		t.Errorf("Expected status 502, got %d", w.Code)
	}
	if resp.Stage != "retrieve" {
		t.Errorf("Expected stage 'retrieve', got '%s'", resp.Stage)
	}
	if resp.Error != research.ErrNoPages.Error() {
		t.Errorf("Expected error '%s', got '%s'", research.ErrNoPages.Error(), resp.Error)
	}
}

func TestResearchHandler_GenerationFailure(t *testing.T) {
	gemini := &mocks.MockGeminiRepo{
		GenerateReportFunc: func(ctx context.Context, apiKey, industry string, pages []research.Page) (research.Report, error) {
			return research.Report{}, errors.New("model unavailable")
		},
	}
	handler := newResearchHandler(&mocks.MockWikipediaRepo{}, gemini, mocks.NewMockCacheRepo())

	w, resp := postResearch(t, handler, `{"industry":"automotive","api_key":"test-key"}`)

	if w.Code != http.StatusBadGateway {
		t.Errorf("Expected status 502, got %d", w.Code)
	}
	if resp.Stage != "generate" {
		t.Errorf("Expected stage 'generate', got '%s'", resp.Stage)
	}
}

func TestResearchHandler_CacheHit(t *testing.T) {
	wiki := &mocks.MockWikipediaRepo{}
	gemini := &mocks.MockGeminiRepo{}
	cache := mocks.NewMockCacheRepo()
	handler := newResearchHandler(wiki, gemini, cache)

	// First request populates the cache, second one hits it.
	postResearch(t, handler, `{"industry":"automotive","api_key":"test-key"}`)
	w, resp := postResearch(t, handler, `{"industry":"automotive","api_key":"test-key"}`)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}
	if !resp.Data.Cached {
		t.Error("Expected cached result on second request")
	}
	if wiki.SearchCalls != 1 {
		t.Errorf("Expected 1 search call total, got %d", wiki.SearchCalls)
	}
	if gemini.GenerateReportCalls != 1 {
		t.Errorf("Expected 1 generate call total, got %d", gemini.GenerateReportCalls)
	}
}
