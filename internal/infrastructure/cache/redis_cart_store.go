package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/coffeehouse/backend/internal/domain/cart"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const defaultCartKeyPrefix = "cart:snapshot:"

// RedisCartStore implements cart.SnapshotStore on Redis. Each user's
// snapshot lives under its own key, so one user's cart can never
// shadow another's.
type RedisCartStore struct {
	client    *redis.Client
	keyPrefix string
	ttl       time.Duration
}

// RedisConfig holds Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// NewRedisCartStore connects to Redis and returns a snapshot store.
// A zero ttl keeps snapshots until they are removed.
func NewRedisCartStore(cfg RedisConfig, ttl time.Duration) (*RedisCartStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return NewRedisCartStoreWithClient(client, defaultCartKeyPrefix, ttl), nil
}

// NewRedisCartStoreWithClient wraps an existing Redis client. Useful for
// tests and for sharing one client across components.
func NewRedisCartStoreWithClient(client *redis.Client, keyPrefix string, ttl time.Duration) *RedisCartStore {
	if keyPrefix == "" {
		keyPrefix = defaultCartKeyPrefix
	}
	return &RedisCartStore{
		client:    client,
		keyPrefix: keyPrefix,
		ttl:       ttl,
	}
}

// Load returns the user's snapshot, or (nil, nil) when none is stored
func (s *RedisCartStore) Load(ctx context.Context, userID uuid.UUID) (*cart.Snapshot, error) {
	payload, err := s.client.Get(ctx, s.key(userID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load cart snapshot: %w", err)
	}

	var snapshot cart.Snapshot
	if err := json.Unmarshal(payload, &snapshot); err != nil {
		return nil, cart.ErrCorruptSnapshot
	}
	return &snapshot, nil
}

// Save writes the snapshot under the user's key, replacing any prior one
func (s *RedisCartStore) Save(ctx context.Context, snapshot *cart.Snapshot) error {
	payload, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to encode cart snapshot: %w", err)
	}

	if err := s.client.Set(ctx, s.key(snapshot.UserID), payload, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save cart snapshot: %w", err)
	}
	return nil
}

// Remove deletes the user's snapshot
func (s *RedisCartStore) Remove(ctx context.Context, userID uuid.UUID) error {
	if err := s.client.Del(ctx, s.key(userID)).Err(); err != nil {
		return fmt.Errorf("failed to remove cart snapshot: %w", err)
	}
	return nil
}

// Close closes the underlying Redis client
func (s *RedisCartStore) Close() error {
	return s.client.Close()
}

func (s *RedisCartStore) key(userID uuid.UUID) string {
	return s.keyPrefix + userID.String()
}

var _ cart.SnapshotStore = (*RedisCartStore)(nil)
