package mocks

import (
	"context"

	"github.com/MargotLh/market-research-assistant/internal/research"
)

// Mock Gemini Repository
type MockGeminiRepo struct {
	GenerateReportFunc   func(ctx context.Context, apiKey, industry string, pages []research.Page) (research.Report, error)
	ValidateIndustryFunc func(ctx context.Context, apiKey, industry string) (bool, error)

	GenerateReportCalls   int
	ValidateIndustryCalls int
}

func (m *MockGeminiRepo) GenerateReport(ctx context.Context, apiKey, industry string, pages []research.Page) (research.Report, error) {
	m.GenerateReportCalls++
	if m.GenerateReportFunc != nil {
		return m.GenerateReportFunc(ctx, apiKey, industry, pages)
	}
	return research.Report{Text: "test report", WordCount: 2, Model: "test-model"}, nil
}

func (m *MockGeminiRepo) ValidateIndustry(ctx context.Context, apiKey, industry string) (bool, error) {
	m.ValidateIndustryCalls++
	if m.ValidateIndustryFunc != nil {
		return m.ValidateIndustryFunc(ctx, apiKey, industry)
	}
	return true, nil
}
