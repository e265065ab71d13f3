package redisreplica

// Package redisreplica provides a Redis-backed replica slot for deployments
// where the edge routing layer runs as a separate process and cannot read a
// local cookie file. TTL semantics mirror the cookie lifetime.

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/corpevents/eventdesk/internal/ports"
)

// Replica is a Redis-backed replica slot.
type Replica struct {
	client redis.UniversalClient
	key    string
}

// NewReplica creates a Redis replica slot with the default key.
func NewReplica(client redis.UniversalClient) *Replica {
	return &Replica{client: client, key: "auth-token"}
}

// NewReplicaWithKey creates a Redis replica slot with a custom key.
func NewReplicaWithKey(client redis.UniversalClient, key string) *Replica {
	return &Replica{client: client, key: key}
}

// Write mirrors the credential; Redis expiry enforces the bounded lifetime.
func (r *Replica) Write(ctx context.Context, token string, ttl time.Duration) error {
	if token == "" {
		return errors.New("refusing to mirror an empty credential")
	}
	if ttl <= 0 {
		return errors.New("replica lifetime must be positive")
	}
	return r.client.Set(ctx, r.key, token, ttl).Err()
}

// Read returns the mirrored value, or "" when absent or expired.
func (r *Replica) Read(ctx context.Context) (string, error) {
	val, err := r.client.Get(ctx, r.key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", fmt.Errorf("redis get: %w", err)
	}
	return val, nil
}

// Clear removes the mirrored value. Clearing an absent key is not an error.
func (r *Replica) Clear(ctx context.Context) error {
	return r.client.Del(ctx, r.key).Err()
}

// Ensure compile-time conformance to ports.
var _ ports.ReplicaSlot = (*Replica)(nil)
