package auth

import (
	"context"
	"time"

	"marketplace/internal/cache"
)

const revokedTokenKeyPrefix = "revoked_token:"

// RevocationList remembers signed-out tokens by their jti.
type RevocationList interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) bool
}

// TokenStore keeps revoked token ids in Redis until the token would have
// expired. Without Redis nothing is remembered and every token stays valid.
type TokenStore struct {
	cache *cache.Client
}

var _ RevocationList = (*TokenStore)(nil)

// NewTokenStore creates a new token store.
func NewTokenStore(cache *cache.Client) *TokenStore {
	return &TokenStore{cache: cache}
}

// Revoke marks the token as signed out. A zero ttl keeps the mark forever,
// which is what tokens issued without expiry need.
func (s *TokenStore) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	return s.cache.Set(ctx, revokedTokenKeyPrefix+tokenID, []byte("1"), ttl)
}

// IsRevoked reports whether the token was signed out. Redis errors read as not revoked.
func (s *TokenStore) IsRevoked(ctx context.Context, tokenID string) bool {
	data, _ := s.cache.Get(ctx, revokedTokenKeyPrefix+tokenID)
	return data != nil
}

// Remaining is how long the token stays valid, or zero when it never expires.
func (c *Claims) Remaining(now time.Time) time.Duration {
	if c.ExpiresAt == nil {
		return 0
	}
	if left := c.ExpiresAt.Sub(now); left > 0 {
		return left
	}
	return time.Second
}
