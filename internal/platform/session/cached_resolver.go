package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"
)

// CachedResolver decorates a UserResolver with a Redis token -> user id cache.
// A token never changes owner, so entries live as long as the cookie does.
type CachedResolver struct {
	inner  UserResolver
	client *redis.Client
	prefix string
}

// Compile-time check to ensure CachedResolver implements UserResolver.
var _ UserResolver = (*CachedResolver)(nil)

// NewCachedResolver wraps inner. A nil client disables caching.
// If prefix is empty, it uses "session".
func NewCachedResolver(client *redis.Client, prefix string, inner UserResolver) *CachedResolver {
	if prefix == "" {
		prefix = "session"
	}
	return &CachedResolver{
		inner:  inner,
		client: client,
		prefix: prefix,
	}
}

// tokenKey returns the Redis key for a token.
func (r *CachedResolver) tokenKey(token string) string {
	return fmt.Sprintf("%s:token:%s", r.prefix, token)
}

// FindUserIDBySessionToken checks Redis first and falls back to the inner resolver.
// Redis errors are logged and never reported to the caller.
func (r *CachedResolver) FindUserIDBySessionToken(ctx context.Context, token string) (string, error) {
	if r.client == nil {
		return r.inner.FindUserIDBySessionToken(ctx, token)
	}

	key := r.tokenKey(token)

	// 1) Check cache
	userID, err := r.client.Get(ctx, key).Result()
	switch {
	case err == nil && userID != "":
		return userID, nil
	case err != nil && !errors.Is(err, redis.Nil):
		slog.Warn("session cache read failed", "error", err)
	}

	// 2) Fallback to storage
	userID, err = r.inner.FindUserIDBySessionToken(ctx, token)
	if err != nil {
		return "", err
	}

	// 3) Store in cache (best effort)
	if err := r.client.Set(ctx, key, userID, CookieMaxAge).Err(); err != nil {
		slog.Warn("session cache write failed", "error", err)
	}
	return userID, nil
}
