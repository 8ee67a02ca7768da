// Package redis provides redis-backed adapters for optional
// collaborators, currently the token revocation list.
package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const revocationKeyPrefix = "stockroom:revoked:"

// RevocationList stores revoked token IDs in redis, each keyed by jti
// with a TTL equal to the token's remaining lifetime so entries expire
// on their own.
type RevocationList struct {
	client   *redis.Client
	timeFunc func() time.Time
}

// NewRevocationList creates a RevocationList on top of the given client.
func NewRevocationList(client *redis.Client) *RevocationList {
	return &RevocationList{
		client:   client,
		timeFunc: time.Now,
	}
}

// Open connects to redis at the given URL and pings it once to surface
// configuration problems at startup instead of on the first request.
func Open(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}
	return client, nil
}

// Revoke marks the token ID as revoked until its expiry. Tokens already
// past expiry are ignored.
func (l *RevocationList) Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error {
	if tokenID == "" {
		return nil
	}
	ttl := expiresAt.Sub(l.timeFunc())
	if ttl <= 0 {
		return nil
	}
	if err := l.client.Set(ctx, revocationKeyPrefix+tokenID, "1", ttl).Err(); err != nil {
		return fmt.Errorf("failed to store revocation: %w", err)
	}
	return nil
}

// IsRevoked reports whether the token ID has been revoked.
func (l *RevocationList) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	if tokenID == "" {
		return false, nil
	}
	n, err := l.client.Exists(ctx, revocationKeyPrefix+tokenID).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check revocation: %w", err)
	}
	return n > 0, nil
}
