// Package redisstore keeps the catalog collections in Redis, one string key
// per collection.
package redisstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"deliverydesk/internal/core/ports"

	"github.com/redis/go-redis/v9"
)

var errNotInitialized = errors.New("redis client not initialized")

type cmdable interface {
	Ping(context.Context) *redis.StatusCmd
	Get(context.Context, string) *redis.StringCmd
	Set(context.Context, string, any, time.Duration) *redis.StatusCmd
	MSet(context.Context, ...any) *redis.StatusCmd
}

// Options configures the connection.
type Options struct {
	Addr     string
	Password string
	DB       int
}

// Store implements ports.KeyValueStore on Redis. Keys never expire.
type Store struct {
	store cmdable
	raw   *redis.Client
}

var _ ports.KeyValueStore = (*Store)(nil)

// New connects and verifies the connection with a ping.
func New(ctx context.Context, opts Options) (*Store, error) {
	if opts.Addr == "" {
		return nil, errors.New("redis address is required")
	}

	raw := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})
	if err := raw.Ping(ctx).Err(); err != nil {
		_ = raw.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return &Store{store: raw, raw: raw}, nil
}

func (s *Store) Get(ctx context.Context, key string) (string, bool, error) {
	if s.store == nil {
		return "", false, errNotInitialized
	}

	value, err := s.store.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

func (s *Store) Set(ctx context.Context, key, value string) error {
	if s.store == nil {
		return errNotInitialized
	}
	return s.store.Set(ctx, key, value, 0).Err()
}

// SetMany writes all entries with a single MSET, which Redis applies atomically.
func (s *Store) SetMany(ctx context.Context, entries map[string]string) error {
	if s.store == nil {
		return errNotInitialized
	}
	if len(entries) == 0 {
		return nil
	}

	pairs := make([]any, 0, len(entries)*2)
	for key, value := range entries {
		pairs = append(pairs, key, value)
	}
	return s.store.MSet(ctx, pairs...).Err()
}

// Ping verifies the connection.
func (s *Store) Ping(ctx context.Context) error {
	if s.store == nil {
		return errNotInitialized
	}
	return s.store.Ping(ctx).Err()
}

// Close shuts down the underlying client if available.
func (s *Store) Close() error {
	if s.raw == nil {
		return nil
	}
	return s.raw.Close()
}
