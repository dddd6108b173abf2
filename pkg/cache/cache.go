package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// List page TTLs. Lists are invalidated on every write, so short TTLs only
// bound staleness when an invalidation is missed.
const (
	TTLList    = 30 * time.Second
	TTLDefault = 5 * time.Minute
)

// ErrCacheMiss is returned when a key is absent
var ErrCacheMiss = errors.New("cache miss")

// Service Redis-backed JSON cache for list pages. A nil Service is valid
// and behaves as a permanent miss, so callers never branch on availability.
type Service struct {
	client *redis.Client
}

// NewService creates a cache service over an established redis client
func NewService(client *redis.Client) *Service {
	return &Service{client: client}
}

// ListKey builds the cache key for one list page of a content type
func ListKey(category string, keyword string, page, limit int) string {
	return fmt.Sprintf("list:%s:%s:%d:%d", category, keyword, page, limit)
}

// Get unmarshals the cached value at key into dest
func (s *Service) Get(ctx context.Context, key string, dest interface{}) error {
	if s == nil || s.client == nil {
		return ErrCacheMiss
	}
	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ErrCacheMiss
		}
		return err
	}
	return json.Unmarshal(data, dest)
}

// Set stores value at key as JSON with the given TTL
func (s *Service) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	if s == nil || s.client == nil {
		return nil
	}
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, key, data, ttl).Err()
}

// InvalidateLists drops every cached list page for a content type
func (s *Service) InvalidateLists(ctx context.Context, category string) error {
	if s == nil || s.client == nil {
		return nil
	}
	pattern := fmt.Sprintf("list:%s:*", category)
	iter := s.client.Scan(ctx, 0, pattern, 0).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return s.client.Del(ctx, keys...).Err()
}
