package wizard

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"mindnest/models"
	"mindnest/utils"

	"github.com/go-redis/redis/v8"
)

// ErrNotFound is returned when a wizard session does not exist or expired.
var ErrNotFound = errors.New("booking wizard session not found or expired")

// Store persists in-progress wizard sessions.
type Store interface {
	Save(ctx context.Context, s models.WizardSession) error
	Get(ctx context.Context, id string) (*models.WizardSession, error)
	Delete(ctx context.Context, id string) error
}

// RedisStore keeps wizard sessions as JSON values with a TTL, refreshed on
// every save so an active wizard never expires mid-flow.
type RedisStore struct {
	Client *redis.Client
	TTL    time.Duration
}

// NewRedisStore returns a Redis-backed wizard store.
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{Client: client, TTL: ttl}
}

func (r *RedisStore) Save(ctx context.Context, s models.WizardSession) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal wizard session: %w", err)
	}
	if err := r.Client.Set(ctx, utils.WizardKeyPrefix+s.ID, data, r.TTL).Err(); err != nil {
		return fmt.Errorf("failed to store wizard session: %w", err)
	}
	return nil
}

func (r *RedisStore) Get(ctx context.Context, id string) (*models.WizardSession, error) {
	data, err := r.Client.Get(ctx, utils.WizardKeyPrefix+id).Result()
	if err == redis.Nil {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load wizard session: %w", err)
	}
	var s models.WizardSession
	if err := json.Unmarshal([]byte(data), &s); err != nil {
		return nil, fmt.Errorf("failed to parse wizard session: %w", err)
	}
	return &s, nil
}

func (r *RedisStore) Delete(ctx context.Context, id string) error {
	return r.Client.Del(ctx, utils.WizardKeyPrefix+id).Err()
}
