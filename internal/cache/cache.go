package cache

import (
	"context"
	"crypto/md5"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/MargotLh/market-research-assistant/internal/research"
)

// ErrCacheMiss is returned when a key is absent or expired.
var ErrCacheMiss = errors.New("cache miss")

// Cache interface defines cache operations
type Cache interface {
	Get(ctx context.Context, key string) (*Entry, error)
	Set(ctx context.Context, key string, entry *Entry) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
	Clear(ctx context.Context) error
	GetStats(ctx context.Context) (*Stats, error)
	Close()
}

// Entry represents a cached research result
type Entry struct {
	Key         string          `json:"key"`
	Result      research.Result `json:"result"`
	CreatedAt   time.Time       `json:"created_at"`
	ExpiresAt   time.Time       `json:"expires_at"`
	AccessedAt  time.Time       `json:"accessed_at"`
	AccessCount int             `json:"access_count"`
}

// Stats represents cache statistics
type Stats struct {
	TotalEntries   int           `json:"total_entries"`
	HitCount       int64         `json:"hit_count"`
	MissCount      int64         `json:"miss_count"`
	HitRate        float64       `json:"hit_rate"`
	MemoryUsage    int64         `json:"memory_usage_bytes"`
	OldestEntry    time.Time     `json:"oldest_entry"`
	AverageAge     time.Duration `json:"average_age"`
	ExpiredEntries int           `json:"expired_entries"`
}

// MemoryCache implements in-memory cache
type MemoryCache struct {
	entries   map[string]*Entry
	mutex     sync.RWMutex
	duration  time.Duration
	hitCount  int64
	missCount int64
	stop      chan struct{}
	stopOnce  sync.Once
}

// NewMemoryCache creates a new in-memory cache whose entries expire after
// the given duration.
func NewMemoryCache(duration time.Duration) *MemoryCache {
	cache := &MemoryCache{
		entries:  make(map[string]*Entry),
		duration: duration,
		stop:     make(chan struct{}),
	}

	go cache.cleanupLoop()

	return cache
}

// Get retrieves an entry from cache
func (c *MemoryCache) Get(ctx context.Context, key string) (*Entry, error) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	entry, exists := c.entries[key]
	if !exists {
		c.missCount++
		return nil, ErrCacheMiss
	}

	if time.Now().After(entry.ExpiresAt) {
		delete(c.entries, key)
		c.missCount++
		return nil, ErrCacheMiss
	}

	entry.AccessedAt = time.Now()
	entry.AccessCount++
	c.hitCount++

	return entry, nil
}

// Set stores an entry in cache
func (c *MemoryCache) Set(ctx context.Context, key string, entry *Entry) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	entry.Key = key
	entry.CreatedAt = time.Now()
	entry.ExpiresAt = time.Now().Add(c.duration)
	entry.AccessedAt = time.Now()
	entry.AccessCount = 0

	c.entries[key] = entry
	return nil
}

// Delete removes an entry from cache
func (c *MemoryCache) Delete(ctx context.Context, key string) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	delete(c.entries, key)
	return nil
}

// Exists checks if a live entry exists in cache
func (c *MemoryCache) Exists(ctx context.Context, key string) (bool, error) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	entry, exists := c.entries[key]
	if !exists {
		return false, nil
	}

	if time.Now().After(entry.ExpiresAt) {
		return false, nil
	}

	return true, nil
}

// Clear removes all entries from cache
func (c *MemoryCache) Clear(ctx context.Context) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.entries = make(map[string]*Entry)
	c.hitCount = 0
	c.missCount = 0
	return nil
}

// GetStats returns cache statistics
func (c *MemoryCache) GetStats(ctx context.Context) (*Stats, error) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	stats := &Stats{
		TotalEntries: len(c.entries),
		HitCount:     c.hitCount,
		MissCount:    c.missCount,
	}

	if c.hitCount+c.missCount > 0 {
		stats.HitRate = float64(c.hitCount) / float64(c.hitCount+c.missCount)
	}

	// Rough memory estimate from the JSON size of each entry
	for _, entry := range c.entries {
		data, _ := json.Marshal(entry)
		stats.MemoryUsage += int64(len(data))
	}

	var totalAge time.Duration
	var expiredCount int
	now := time.Now()

	for _, entry := range c.entries {
		if stats.OldestEntry.IsZero() || entry.CreatedAt.Before(stats.OldestEntry) {
			stats.OldestEntry = entry.CreatedAt
		}

		totalAge += now.Sub(entry.CreatedAt)

		if now.After(entry.ExpiresAt) {
			expiredCount++
		}
	}

	if len(c.entries) > 0 {
		stats.AverageAge = totalAge / time.Duration(len(c.entries))
	}

	stats.ExpiredEntries = expiredCount

	return stats, nil
}

// Close stops the background cleanup goroutine.
func (c *MemoryCache) Close() {
	c.stopOnce.Do(func() {
		close(c.stop)
	})
}

// cleanupLoop removes expired entries periodically until Close is called.
func (c *MemoryCache) cleanupLoop() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.cleanupExpired()
		case <-c.stop:
			return
		}
	}
}

// cleanupExpired removes expired entries
func (c *MemoryCache) cleanupExpired() {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	now := time.Now()
	for key, entry := range c.entries {
		if now.After(entry.ExpiresAt) {
			delete(c.entries, key)
		}
	}
}

// Manager handles cache operations with research-aware convenience methods
type Manager struct {
	cache Cache
}

// NewManager creates a cache manager backed by an in-memory cache.
func NewManager(duration time.Duration) *Manager {
	return &Manager{cache: NewMemoryCache(duration)}
}

// GetResult retrieves a cached research result for an industry
func (m *Manager) GetResult(ctx context.Context, lang, industry string) (*research.Result, error) {
	entry, err := m.cache.Get(ctx, Key(lang, industry))
	if err != nil {
		return nil, err
	}

	result := entry.Result
	return &result, nil
}

// SetResult caches a research result for an industry
func (m *Manager) SetResult(ctx context.Context, lang, industry string, result research.Result) error {
	entry := &Entry{
		Result: result,
	}

	return m.cache.Set(ctx, Key(lang, industry), entry)
}

// IsCached checks if an industry already has a live research result
func (m *Manager) IsCached(ctx context.Context, lang, industry string) (bool, error) {
	return m.cache.Exists(ctx, Key(lang, industry))
}

// GetStats returns cache statistics
func (m *Manager) GetStats(ctx context.Context) (*Stats, error) {
	return m.cache.GetStats(ctx)
}

// Clear clears all cached entries
func (m *Manager) Clear(ctx context.Context) error {
	return m.cache.Clear(ctx)
}

// Close releases the underlying cache resources.
func (m *Manager) Close() {
	m.cache.Close()
}

// Key generates the cache key for an industry lookup. The industry name is
// normalized so "  Automotive " and "automotive" share one entry.
func Key(lang, industry string) string {
	normalized := strings.ToLower(strings.TrimSpace(industry))
	hash := md5.Sum([]byte(normalized))
	return fmt.Sprintf("research:%s:%x", lang, hash)
}
