package redisstore

import (
	"context"
	"time"

	"exchangerates-service/internal/application"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "exchangerates:add:"

var _ application.AddGuard = (*AddGuard)(nil)

// AddGuard reserves currency codes with SET NX so that replicas sharing a Redis
// do not register the same code twice. Reservations expire after TTL.
type AddGuard struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewAddGuard(client *redis.Client, ttl time.Duration) *AddGuard {
	return &AddGuard{Client: client, TTL: ttl}
}

func (g *AddGuard) TryReserve(ctx context.Context, code string) (bool, error) {
	return g.Client.SetNX(ctx, keyPrefix+code, "1", g.TTL).Result()
}

func (g *AddGuard) Release(ctx context.Context, code string) error {
	return g.Client.Del(ctx, keyPrefix+code).Err()
}
