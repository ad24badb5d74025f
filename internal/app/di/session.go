// Package di provides dependency injection factories for creating application components.
package di

import (
	"github.com/redis/go-redis/v9"

	"diet_backend/internal/platform/session"
)

// NewSessionGuard creates the Session Guard over the given token store.
// If Redis is available, lookups go through a Redis cache first.
// Otherwise, every request hits the database.
func NewSessionGuard(rdb *redis.Client, store session.UserResolver) *session.Guard {
	if rdb != nil {
		return session.NewGuard(session.NewCachedResolver(rdb, "session", store))
	}
	return session.NewGuard(store)
}
