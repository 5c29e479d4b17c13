package jwt

import (
	"context"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// Blacklist holds revoked token ids until their natural expiry.
type Blacklist interface {
	Add(ctx context.Context, jti string, ttl time.Duration) error
	Contains(ctx context.Context, jti string) (bool, error)
}

type redisBlacklist struct {
	client *redis.Client
}

func NewRedisBlacklist(client *redis.Client) Blacklist {
	return &redisBlacklist{client: client}
}

func (b *redisBlacklist) Add(ctx context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	return b.client.Set(ctx, "jwt:blacklist:"+jti, "1", ttl).Err()
}

func (b *redisBlacklist) Contains(ctx context.Context, jti string) (bool, error) {
	n, err := b.client.Exists(ctx, "jwt:blacklist:"+jti).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// memoryBlacklist is the fallback when no Redis address is configured.
// Process-local only, so it does not survive restarts or span replicas.
type memoryBlacklist struct {
	mu      sync.Mutex
	entries map[string]time.Time
}

func NewMemoryBlacklist() Blacklist {
	return &memoryBlacklist{entries: make(map[string]time.Time)}
}

func (b *memoryBlacklist) Add(ctx context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.entries[jti] = time.Now().Add(ttl)
	b.sweep()
	return nil
}

func (b *memoryBlacklist) Contains(ctx context.Context, jti string) (bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	expiry, ok := b.entries[jti]
	if !ok {
		return false, nil
	}
	if time.Now().After(expiry) {
		delete(b.entries, jti)
		return false, nil
	}
	return true, nil
}

// sweep drops expired entries; callers must hold the lock.
func (b *memoryBlacklist) sweep() {
	now := time.Now()
	for jti, expiry := range b.entries {
		if now.After(expiry) {
			delete(b.entries, jti)
		}
	}
}
