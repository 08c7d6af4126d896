package cache

import (
	"context"
	"time"

	"github.com/Frank080811/ILUMINOUS-CANDLE-UK-BE/internal/usecase"
	"github.com/redis/go-redis/v9"
)

// RedisConfirmGuard claims a per-order confirmation token with SETNX, so a
// duplicate /payment-success for the same order loses the race across all
// instances.
type RedisConfirmGuard struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisConfirmGuard(rdb *redis.Client, ttl time.Duration) *RedisConfirmGuard {
	return &RedisConfirmGuard{rdb: rdb, ttl: ttl}
}

func (g *RedisConfirmGuard) TryAcquire(ctx context.Context, orderID string) (bool, error) {
	return g.rdb.SetNX(ctx, "confirm:"+orderID, "1", g.ttl).Result()
}

var _ usecase.ConfirmGuard = (*RedisConfirmGuard)(nil)
