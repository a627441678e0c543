package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "studio-booking:catalog:"

// Cache JSON-кеш публичного каталога (профиль студии, пакеты) в redis.
// Нулевой клиент превращает кеш в no-op: Get всегда промах, Set ничего не делает
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// New создает кеш поверх готового клиента
func New(client *redis.Client, ttl time.Duration) *Cache {
	return &Cache{client: client, ttl: ttl}
}

// NewClient создает redis клиент и проверяет соединение
func NewClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("%w: NewClient - ping %s: %v", ErrRedis, addr, err)
	}

	return client, nil
}

// Get читает значение в dst. false означает промах
func (c *Cache) Get(ctx context.Context, key string, dst interface{}) (bool, error) {
	if c == nil || c.client == nil {
		return false, nil
	}

	raw, err := c.client.Get(ctx, keyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: Get %s: %v", ErrRedis, key, err)
	}

	if err := json.Unmarshal(raw, dst); err != nil {
		return false, fmt.Errorf("%w: Get %s: %v", ErrUnmarshal, key, err)
	}

	return true, nil
}

// Set сохраняет значение с TTL кеша
func (c *Cache) Set(ctx context.Context, key string, value interface{}) error {
	if c == nil || c.client == nil {
		return nil
	}

	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("%w: Set %s: %v", ErrMarshal, key, err)
	}

	if err := c.client.Set(ctx, keyPrefix+key, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("%w: Set %s: %v", ErrRedis, key, err)
	}

	return nil
}

// Close закрывает клиент
func (c *Cache) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Close()
}
