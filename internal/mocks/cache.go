package mocks

import (
	"context"

	researchcache "github.com/MargotLh/market-research-assistant/internal/cache"
	"github.com/MargotLh/market-research-assistant/internal/research"
)

// Mock Cache Repository backed by a plain map
type MockCacheRepo struct {
	Results map[string]research.Result

	GetStatsFunc func(ctx context.Context) (*researchcache.Stats, error)
	ClearFunc    func(ctx context.Context) error

	GetCalls int
	SetCalls int
}

func NewMockCacheRepo() *MockCacheRepo {
	return &MockCacheRepo{Results: make(map[string]research.Result)}
}

func (m *MockCacheRepo) GetResult(ctx context.Context, lang, industry string) (*research.Result, error) {
	m.GetCalls++
	result, ok := m.Results[researchcache.Key(lang, industry)]
	if !ok {
		return nil, researchcache.ErrCacheMiss
	}
	return &result, nil
}

func (m *MockCacheRepo) SetResult(ctx context.Context, lang, industry string, result research.Result) error {
	m.SetCalls++
	m.Results[researchcache.Key(lang, industry)] = result
	return nil
}

func (m *MockCacheRepo) IsCached(ctx context.Context, lang, industry string) (bool, error) {
	_, ok := m.Results[researchcache.Key(lang, industry)]
	return ok, nil
}

func (m *MockCacheRepo) GetStats(ctx context.Context) (*researchcache.Stats, error) {
	if m.GetStatsFunc != nil {
		return m.GetStatsFunc(ctx)
	}
	return &researchcache.Stats{TotalEntries: len(m.Results)}, nil
}

func (m *MockCacheRepo) Clear(ctx context.Context) error {
	if m.ClearFunc != nil {
		return m.ClearFunc(ctx)
	}
	m.Results = make(map[string]research.Result)
	return nil
}

func (m *MockCacheRepo) Close() error {
	return nil
}
