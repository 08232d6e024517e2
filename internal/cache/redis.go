package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Domenick1991/shareit/config"
	"github.com/Domenick1991/shareit/internal/domain"
	"github.com/redis/go-redis/v9"
)

type RedisCache struct {
	client  redis.Cmdable
	itemTTL time.Duration
}

func NewRedisCache(cfg config.RedisConfig) *RedisCache {
	return NewRedisCacheWithClient(redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}), cfg.ItemTTL())
}

func NewRedisCacheWithClient(client redis.Cmdable, itemTTL time.Duration) *RedisCache {
	return &RedisCache{client: client, itemTTL: itemTTL}
}

// GetItem returns nil, nil on a cache miss.
func (c *RedisCache) GetItem(ctx context.Context, id int64) (*domain.Item, error) {
	data, err := c.client.Get(ctx, itemKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var item domain.Item
	if err := json.Unmarshal(data, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (c *RedisCache) SetItem(ctx context.Context, item *domain.Item) error {
	payload, err := json.Marshal(item)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, itemKey(item.ID), payload, c.itemTTL).Err()
}

func (c *RedisCache) DeleteItem(ctx context.Context, id int64) error {
	return c.client.Del(ctx, itemKey(id)).Err()
}

func itemKey(id int64) string {
	return fmt.Sprintf("cache:item:%d", id)
}
