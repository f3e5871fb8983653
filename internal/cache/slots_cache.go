package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis/v8"

	domain "github.com/BruksfildServices01/barber-slots/internal/domain/scheduling"
)

// SlotsCache is a short-lived read-through cache for the shop slot
// listing. It is purely an optimization: every mutation path invalidates
// the affected day, and a nil *SlotsCache disables caching entirely.
type SlotsCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewSlotsCache(redisURL string) *SlotsCache {
	if redisURL == "" {
		return nil
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Printf("invalid REDIS_URL, slot cache disabled: %v", err)
		return nil
	}

	return &SlotsCache{
		rdb: redis.NewClient(opts),
		ttl: 30 * time.Second,
	}
}

func key(shopID uint, date time.Time) string {
	return fmt.Sprintf("slots:%d:%s", shopID, date.Format("2006-01-02"))
}

func (c *SlotsCache) Get(ctx context.Context, shopID uint, date time.Time) ([]domain.ShopSlot, bool) {
	if c == nil {
		return nil, false
	}

	raw, err := c.rdb.Get(ctx, key(shopID, date)).Bytes()
	if err != nil {
		return nil, false
	}

	var slots []domain.ShopSlot
	if err := json.Unmarshal(raw, &slots); err != nil {
		return nil, false
	}
	return slots, true
}

func (c *SlotsCache) Set(ctx context.Context, shopID uint, date time.Time, slots []domain.ShopSlot) {
	if c == nil {
		return
	}

	raw, err := json.Marshal(slots)
	if err != nil {
		return
	}

	if err := c.rdb.Set(ctx, key(shopID, date), raw, c.ttl).Err(); err != nil {
		log.Printf("slot cache set failed: %v", err)
	}
}

func (c *SlotsCache) Invalidate(ctx context.Context, shopID uint, date time.Time) {
	if c == nil {
		return
	}

	if err := c.rdb.Del(ctx, key(shopID, date)).Err(); err != nil {
		log.Printf("slot cache invalidate failed: %v", err)
	}
}
