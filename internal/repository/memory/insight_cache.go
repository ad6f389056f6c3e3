package memory

import (
	"context"
	"sync"
	"time"

	"realty-uae-backend/internal/domain"
)

// InsightCache is the in-process fallback used when Redis is not configured
type InsightCache struct {
	mu        sync.RWMutex
	insights  []domain.MarketInsight
	expiresAt time.Time
	now       func() time.Time
}

func NewInsightCache() *InsightCache {
	return &InsightCache{now: time.Now}
}

func (c *InsightCache) Get(_ context.Context) ([]domain.MarketInsight, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.insights == nil || !c.now().Before(c.expiresAt) {
		return nil, domain.ErrInsightsCacheMiss
	}
	out := make([]domain.MarketInsight, len(c.insights))
	copy(out, c.insights)
	return out, nil
}

func (c *InsightCache) Set(_ context.Context, insights []domain.MarketInsight, ttl time.Duration) error {
	stored := make([]domain.MarketInsight, len(insights))
	copy(stored, insights)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.insights = stored
	c.expiresAt = c.now().Add(ttl)
	return nil
}

var _ domain.InsightCache = (*InsightCache)(nil)
