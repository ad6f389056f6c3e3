package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	goredis "github.com/redis/go-redis/v9"

	"realty-uae-backend/internal/domain"
)

const insightsKey = "market:insights"

// InsightCache keeps the market summary in Redis so every instance serves the same districts
type InsightCache struct {
	client    *goredis.Client
	namespace string
}

func NewInsightCache(client *goredis.Client, namespace string) *InsightCache {
	return &InsightCache{client: client, namespace: namespace}
}

func (c *InsightCache) key() string {
	if c.namespace == "" {
		return insightsKey
	}
	return c.namespace + ":" + insightsKey
}

func (c *InsightCache) Get(ctx context.Context) ([]domain.MarketInsight, error) {
	val, err := c.client.Get(ctx, c.key()).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, domain.ErrInsightsCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("redis insight cache get: %w", err)
	}

	var insights []domain.MarketInsight
	if err := json.Unmarshal(val, &insights); err != nil {
		return nil, fmt.Errorf("redis insight cache decode: %w", err)
	}
	return insights, nil
}

func (c *InsightCache) Set(ctx context.Context, insights []domain.MarketInsight, ttl time.Duration) error {
	b, err := json.Marshal(insights)
	if err != nil {
		return fmt.Errorf("redis insight cache encode: %w", err)
	}
	if err := c.client.Set(ctx, c.key(), b, ttl).Err(); err != nil {
		return fmt.Errorf("redis insight cache set: %w", err)
	}
	return nil
}

var _ domain.InsightCache = (*InsightCache)(nil)
