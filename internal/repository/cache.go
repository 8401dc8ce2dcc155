package repository

import (
	"context"

	"github.com/MargotLh/market-research-assistant/internal/cache"
	"github.com/MargotLh/market-research-assistant/internal/research"
)

type CacheRepository interface {
	GetResult(ctx context.Context, lang, industry string) (*research.Result, error)
	SetResult(ctx context.Context, lang, industry string, result research.Result) error
	IsCached(ctx context.Context, lang, industry string) (bool, error)
	GetStats(ctx context.Context) (*cache.Stats, error)
	Clear(ctx context.Context) error
	Close() error
}

type cacheRepository struct {
	manager *cache.Manager
}

func NewCacheRepository(manager *cache.Manager) CacheRepository {
	return &cacheRepository{
		manager: manager,
	}
}

func (c *cacheRepository) GetResult(ctx context.Context, lang, industry string) (*research.Result, error) {
	return c.manager.GetResult(ctx, lang, industry)
}

func (c *cacheRepository) SetResult(ctx context.Context, lang, industry string, result research.Result) error {
	return c.manager.SetResult(ctx, lang, industry, result)
}

func (c *cacheRepository) IsCached(ctx context.Context, lang, industry string) (bool, error) {
	return c.manager.IsCached(ctx, lang, industry)
}

func (c *cacheRepository) GetStats(ctx context.Context) (*cache.Stats, error) {
	return c.manager.GetStats(ctx)
}

func (c *cacheRepository) Clear(ctx context.Context) error {
	return c.manager.Clear(ctx)
}

func (c *cacheRepository) Close() error {
	c.manager.Close()
	return nil
}
