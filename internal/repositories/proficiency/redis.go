package proficiency

import (
	"context"
	"encoding/json"
	"fmt"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/gem-battle/internal/entities"
	"github.com/KirkDiggler/gem-battle/internal/errors"
	redisclient "github.com/KirkDiggler/gem-battle/internal/redis"
)

const (
	// Key pattern: gem_proficiency:{class}
	proficiencyKeyPrefix = "gem_proficiency:"

	errClassEmpty = "class cannot be empty"
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

// NewRedisRepository creates a new Redis repository for proficiency records
func NewRedisRepository(cfg *Config) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &redisRepository{client: cfg.Client}, nil
}

// Ensure redisRepository implements Repository
var _ Repository = (*redisRepository)(nil)

// Get loads the records for a class
func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.Class == "" {
		return nil, errors.InvalidArgument(errClassEmpty)
	}

	recordsJSON, err := r.client.Get(ctx, r.buildKey(input.Class)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFound("no proficiency records for class")
		}
		return nil, errors.Wrapf(err, "failed to get proficiency records from Redis")
	}

	var records entities.ProficiencyRecords
	if err := json.Unmarshal([]byte(recordsJSON), &records); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal proficiency records")
	}

	return &GetOutput{Records: records}, nil
}

// Save replaces the records for a class
func (r *redisRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if input.Class == "" {
		return nil, errors.InvalidArgument(errClassEmpty)
	}

	recordsJSON, err := json.Marshal(input.Records)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal proficiency records")
	}

	if err := r.client.Set(ctx, r.buildKey(input.Class), recordsJSON, 0).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to store proficiency records in Redis")
	}

	return &SaveOutput{}, nil
}

func (r *redisRepository) buildKey(class string) string {
	return fmt.Sprintf("%s%s", proficiencyKeyPrefix, class)
}
