package progress

import (
	"context"
	"encoding/json"
	"fmt"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/gem-battle/internal/errors"
	redisclient "github.com/KirkDiggler/gem-battle/internal/redis"
)

const (
	progressKey = "progress"

	// Key pattern: gem_unlocks:{class}
	unlocksKeyPrefix = "gem_unlocks:"
)

// Config holds the configuration for the Redis repository
type Config struct {
	Client redisclient.Client
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c.Client == nil {
		return errors.InvalidArgument("redis client is required")
	}
	return nil
}

type redisRepository struct {
	client redisclient.Client
}

// NewRedisRepository creates a new Redis repository for progression
func NewRedisRepository(cfg *Config) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &redisRepository{client: cfg.Client}, nil
}

// Ensure redisRepository implements Repository
var _ Repository = (*redisRepository)(nil)

// GetProgress loads the run progression
func (r *redisRepository) GetProgress(ctx context.Context, _ GetProgressInput) (*GetProgressOutput, error) {
	progressJSON, err := r.client.Get(ctx, progressKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFound("no progression saved")
		}
		return nil, errors.Wrapf(err, "failed to get progression from Redis")
	}

	var progress Progress
	if err := json.Unmarshal([]byte(progressJSON), &progress); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal progression")
	}

	return &GetProgressOutput{Progress: &progress}, nil
}

// SaveProgress replaces the run progression
func (r *redisRepository) SaveProgress(ctx context.Context, input SaveProgressInput) (*SaveProgressOutput, error) {
	if input.Progress == nil {
		return nil, errors.InvalidArgument("progress cannot be nil")
	}
	if err := input.Progress.Validate(); err != nil {
		return nil, err
	}

	progressJSON, err := json.Marshal(input.Progress)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal progression")
	}

	if err := r.client.Set(ctx, progressKey, progressJSON, 0).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to store progression in Redis")
	}

	return &SaveProgressOutput{}, nil
}

// GetUnlocks loads the unlocked gem keys for a class
func (r *redisRepository) GetUnlocks(ctx context.Context, input GetUnlocksInput) (*GetUnlocksOutput, error) {
	if input.Class == "" {
		return nil, errors.InvalidArgument("class cannot be empty")
	}

	unlocksJSON, err := r.client.Get(ctx, r.buildUnlocksKey(input.Class)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFound("no unlocks for class")
		}
		return nil, errors.Wrapf(err, "failed to get unlocks from Redis")
	}

	var gemKeys []string
	if err := json.Unmarshal([]byte(unlocksJSON), &gemKeys); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal unlocks")
	}

	return &GetUnlocksOutput{GemKeys: gemKeys}, nil
}

// SaveUnlocks replaces the unlocked gem keys for a class
func (r *redisRepository) SaveUnlocks(ctx context.Context, input SaveUnlocksInput) (*SaveUnlocksOutput, error) {
	if input.Class == "" {
		return nil, errors.InvalidArgument("class cannot be empty")
	}

	unlocksJSON, err := json.Marshal(input.GemKeys)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal unlocks")
	}

	if err := r.client.Set(ctx, r.buildUnlocksKey(input.Class), unlocksJSON, 0).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to store unlocks in Redis")
	}

	return &SaveUnlocksOutput{}, nil
}

func (r *redisRepository) buildUnlocksKey(class string) string {
	return fmt.Sprintf("%s%s", unlocksKeyPrefix, class)
}
