package repository

import (
	"context"

	"github.com/MargotLh/market-research-assistant/internal/gemini"
	"github.com/MargotLh/market-research-assistant/internal/research"
)

type GeminiRepository interface {
	GenerateReport(ctx context.Context, apiKey, industry string, pages []research.Page) (research.Report, error)
	ValidateIndustry(ctx context.Context, apiKey, industry string) (bool, error)
}

type geminiRepository struct {
	client *gemini.Client
}

func NewGeminiRepository(client *gemini.Client) GeminiRepository {
	return &geminiRepository{
		client: client,
	}
}

func (g *geminiRepository) GenerateReport(ctx context.Context, apiKey, industry string, pages []research.Page) (research.Report, error) {
	return g.client.GenerateReport(ctx, apiKey, industry, pages)
}

func (g *geminiRepository) ValidateIndustry(ctx context.Context, apiKey, industry string) (bool, error) {
	return g.client.ValidateIndustry(ctx, apiKey, industry)
}
