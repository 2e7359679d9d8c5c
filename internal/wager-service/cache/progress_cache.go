package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

type Cache struct{ R *redis.Client }

func New(r *redis.Client) *Cache { return &Cache{R: r} }

func keyProgress(wagerID string, currentWeightKg float64) string {
	return fmt.Sprintf("wager:progress:%s:%.1f", wagerID, currentWeightKg)
}

func (c *Cache) GetProgress(ctx context.Context, wagerID string, currentWeightKg float64, dst any) (bool, error) {
	b, err := c.R.Get(ctx, keyProgress(wagerID, currentWeightKg)).Bytes()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, json.Unmarshal(b, dst)
}

func (c *Cache) SetProgress(ctx context.Context, wagerID string, currentWeightKg float64, v any, ttl time.Duration) error {
	b, _ := json.Marshal(v)
	return c.R.Set(ctx, keyProgress(wagerID, currentWeightKg), b, ttl).Err()
}
