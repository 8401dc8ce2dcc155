package mocks

import (
	"context"

	"github.com/MargotLh/market-research-assistant/internal/research"
)

// Mock Wikipedia Repository
type MockWikipediaRepo struct {
	SearchFunc  func(ctx context.Context, industry string, maxPages int) ([]research.Page, error)
	SearchCalls int
}

func (m *MockWikipediaRepo) Search(ctx context.Context, industry string, maxPages int) ([]research.Page, error) {
	m.SearchCalls++
	if m.SearchFunc != nil {
		return m.SearchFunc(ctx, industry, maxPages)
	}
	return []research.Page{
		{Title: "Test industry", URL: "https://en.wikipedia.org/wiki/Test_industry", Excerpt: "test excerpt"},
	}, nil
}
