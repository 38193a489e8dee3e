package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/wplex/atlas-admin/internal/core/domain"
	"github.com/wplex/atlas-admin/internal/core/ports"
)

const (
	keyPrefix      = "session:"
	defaultTimeout = 5 * time.Second
)

// RedisConfig captures the settings for establishing a Redis connection.
type RedisConfig struct {
	Addr    string
	DB      int
	Timeout time.Duration
}

// Connect initialises a Redis client for the session registry and validates
// connectivity with a ping.
func Connect(ctx context.Context, cfg RedisConfig) (*redis.Client, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	client := redis.NewClient(&redis.Options{
		Addr: cfg.Addr,
		DB:   cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return client, nil
}

// RedisRegistry shares the session table across workers. SET on the identity
// key gives Add its replace semantics; entries expire with the session TTL so
// abandoned logins do not accumulate.
type RedisRegistry struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisRegistry(client *redis.Client, ttl time.Duration) *RedisRegistry {
	return &RedisRegistry{client: client, ttl: ttl}
}

func (r *RedisRegistry) Add(ctx context.Context, token string, user domain.User) error {
	payload, err := json.Marshal(ports.SessionEntry{Token: token, User: user})
	if err != nil {
		return fmt.Errorf("encode session entry: %w", err)
	}
	if err := r.client.Set(ctx, keyPrefix+user.Internal, payload, r.ttl).Err(); err != nil {
		return fmt.Errorf("store session entry: %w", err)
	}
	return nil
}

func (r *RedisRegistry) Find(ctx context.Context, internal string) (*ports.SessionEntry, error) {
	payload, err := r.client.Get(ctx, keyPrefix+internal).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load session entry: %w", err)
	}

	var entry ports.SessionEntry
	if err := json.Unmarshal(payload, &entry); err != nil {
		return nil, fmt.Errorf("decode session entry: %w", err)
	}
	return &entry, nil
}

func (r *RedisRegistry) Remove(ctx context.Context, internal string) error {
	if err := r.client.Del(ctx, keyPrefix+internal).Err(); err != nil {
		return fmt.Errorf("remove session entry: %w", err)
	}
	return nil
}

func (r *RedisRegistry) Len(ctx context.Context) (int, error) {
	keys, err := r.client.Keys(ctx, keyPrefix+"*").Result()
	if err != nil {
		return 0, fmt.Errorf("count session entries: %w", err)
	}
	return len(keys), nil
}
