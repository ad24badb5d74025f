// Package session implements cookie-based session identity: opaque token
// issuance, token-to-user resolution and the Gin middleware that guards
// protected routes.
package session

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
)

// tokenBytes is the amount of entropy in a session token (hex-encoded to 64 chars).
const tokenBytes = 32

// Generator issues opaque session tokens.
type Generator struct {
	rand io.Reader
}

// NewGenerator returns a Generator backed by crypto/rand.
func NewGenerator() *Generator {
	return &Generator{rand: rand.Reader}
}

// NewToken returns a fresh random token with no embedded structure.
func (g *Generator) NewToken() (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := io.ReadFull(g.rand, buf); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
