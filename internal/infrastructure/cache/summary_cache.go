package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/kvm55/Covey/internal/domain/model"
)

const keyPrefix = "covey:property-summary:"

// SummaryCache implements port.SummaryCache on Redis. Entries are JSON
// encoded and expire after ttl.
type SummaryCache struct {
	rdb    redis.Cmdable
	ttl    time.Duration
	logger *slog.Logger
}

// NewSummaryCache creates a cache on rdb. A non-positive ttl keeps entries
// until they are overwritten or invalidated.
func NewSummaryCache(rdb redis.Cmdable, ttl time.Duration, logger *slog.Logger) *SummaryCache {
	if ttl < 0 {
		ttl = 0
	}
	return &SummaryCache{rdb: rdb, ttl: ttl, logger: logger}
}

func summaryKey(propertyID uuid.UUID) string {
	return keyPrefix + propertyID.String()
}

// Get returns the cached summary of a property.
func (c *SummaryCache) Get(ctx context.Context, propertyID uuid.UUID) (model.PropertySummary, bool, error) {
	raw, err := c.rdb.Get(ctx, summaryKey(propertyID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return model.PropertySummary{}, false, nil
	}
	if err != nil {
		return model.PropertySummary{}, false, fmt.Errorf("get property summary: %w", err)
	}

	var s model.PropertySummary
	if err := json.Unmarshal(raw, &s); err != nil {
		return model.PropertySummary{}, false, fmt.Errorf("decode property summary: %w", err)
	}
	return s, true, nil
}

// Set stores a summary under its property ID.
func (c *SummaryCache) Set(ctx context.Context, summary model.PropertySummary) error {
	raw, err := json.Marshal(summary)
	if err != nil {
		return fmt.Errorf("encode property summary: %w", err)
	}
	if err := c.rdb.Set(ctx, summaryKey(summary.PropertyID), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("set property summary: %w", err)
	}
	c.logger.DebugContext(ctx, "cached property summary",
		"property_id", summary.PropertyID.String(),
		"ttl", c.ttl,
	)
	return nil
}

// Invalidate drops the cached summary of a property.
func (c *SummaryCache) Invalidate(ctx context.Context, propertyID uuid.UUID) error {
	if err := c.rdb.Del(ctx, summaryKey(propertyID)).Err(); err != nil {
		return fmt.Errorf("invalidate property summary: %w", err)
	}
	return nil
}

// Ping reports whether Redis is reachable.
func (c *SummaryCache) Ping(ctx context.Context) error {
	return c.rdb.Ping(ctx).Err()
}
