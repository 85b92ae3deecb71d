package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

type Cache struct {
	rdb *redis.Client
}

func New(client *redis.Client) *Cache {
	return &Cache{rdb: client}
}

func (c *Cache) GetString(ctx context.Context, key string) (string, bool, error) {
	s, err := c.rdb.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", false, nil
	}

	if err != nil {
		return "", false, err
	}

	return s, true, nil
}

func (c *Cache) SetString(
	ctx context.Context,
	key string,
	val string,
	ttl time.Duration,
) error {
	return c.rdb.Set(ctx, key, val, ttl).Err()
}

func (c *Cache) Del(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}

	return c.rdb.Del(ctx, keys...).Err()
}

// SessionStore keeps a deny-list of logged-out session tokens. Entries
// expire together with the token they revoke.
type SessionStore struct {
	cache *Cache
}

func NewSessionStore(cache *Cache) *SessionStore {
	return &SessionStore{cache: cache}
}

func (s *SessionStore) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}

	return s.cache.SetString(ctx, KeyRevokedSession(tokenID), "1", ttl)
}

func (s *SessionStore) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	_, ok, err := s.cache.GetString(ctx, KeyRevokedSession(tokenID))
	return ok, err
}
