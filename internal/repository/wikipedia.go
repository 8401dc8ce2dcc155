package repository

import (
	"context"

	"github.com/MargotLh/market-research-assistant/internal/research"
	"github.com/MargotLh/market-research-assistant/internal/wikipedia"
)

type WikipediaRepository interface {
	Search(ctx context.Context, industry string, maxPages int) ([]research.Page, error)
}

type wikipediaRepository struct {
	client *wikipedia.Client
}

func NewWikipediaRepository(client *wikipedia.Client) WikipediaRepository {
	return &wikipediaRepository{
		client: client,
	}
}

func (w *wikipediaRepository) Search(ctx context.Context, industry string, maxPages int) ([]research.Page, error) {
	return w.client.Search(ctx, industry, maxPages)
}
