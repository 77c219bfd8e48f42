package cache

import (
	"context"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
)

// Cache é um read-cache opcional por TTL. Sem REDIS_URL todos os
// métodos viram no-op e os handlers seguem direto para o banco.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

func New(redisURL string, ttl time.Duration) *Cache {
	if redisURL == "" {
		return &Cache{ttl: ttl}
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Printf("cache disabled, invalid REDIS_URL: %v", err)
		return &Cache{ttl: ttl}
	}

	return &Cache{
		client: redis.NewClient(opts),
		ttl:    ttl,
	}
}

func (c *Cache) Enabled() bool {
	return c != nil && c.client != nil
}

func (c *Cache) Get(ctx context.Context, key string) ([]byte, bool) {
	if !c.Enabled() {
		return nil, false
	}
	b, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}
	return b, true
}

func (c *Cache) Set(ctx context.Context, key string, val []byte) {
	if !c.Enabled() {
		return
	}
	if err := c.client.Set(ctx, key, val, c.ttl).Err(); err != nil {
		log.Println("cache set error:", err)
	}
}
