package session

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrUnauthenticated is returned when a request carries no session token
	// or a token that does not resolve to a user. Both cases are reported the same way.
	ErrUnauthenticated = errors.New("unauthenticated")

	// ErrTokenNotFound is returned by a UserResolver when no user owns the token.
	ErrTokenNotFound = errors.New("session token not found")
)

// UserResolver looks a user up by the exact session token.
// Following Go convention: interfaces are defined by the consumer (session), not the provider (adapters).
type UserResolver interface {
	// FindUserIDBySessionToken returns the id of the user owning token,
	// or ErrTokenNotFound if there is none.
	FindUserIDBySessionToken(ctx context.Context, token string) (string, error)
}

// Guard resolves the identity behind a session token.
type Guard struct {
	users UserResolver
}

// Compile-time check to ensure Guard implements Authenticator.
var _ Authenticator = (*Guard)(nil)

// NewGuard creates a Guard over the given resolver.
func NewGuard(users UserResolver) *Guard {
	return &Guard{users: users}
}

// Authenticate returns the user id that owns token.
// It performs exactly one lookup and has no side effects.
func (g *Guard) Authenticate(ctx context.Context, token string) (string, error) {
	if token == "" {
		return "", ErrUnauthenticated
	}

	userID, err := g.users.FindUserIDBySessionToken(ctx, token)
	if err != nil {
		if errors.Is(err, ErrTokenNotFound) {
			return "", ErrUnauthenticated
		}
		return "", fmt.Errorf("failed to resolve session token: %w", err)
	}
	return userID, nil
}
