package snapshot

import (
	"context"
	"encoding/json"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/gem-battle/internal/entities"
	"github.com/KirkDiggler/gem-battle/internal/errors"
	"github.com/KirkDiggler/gem-battle/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/gem-battle/internal/redis"
)

const (
	gameStateKey = "game_snapshot"
	handKey      = "hand_snapshot"

	// A snapshot this old is considered abandoned and discarded on read
	staleAfter = 7 * 24 * time.Hour

	// The hand only needs to survive a short interruption of the current turn
	handTTL = time.Hour
)

// Config holds the configuration for the Redis repository
type Config struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c.Client == nil {
		return errors.InvalidArgument("redis client is required")
	}
	if c.Clock == nil {
		return errors.InvalidArgument("clock is required")
	}
	return nil
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// NewRedisRepository creates a new Redis repository for snapshots
func NewRedisRepository(cfg *Config) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  cfg.Clock,
	}, nil
}

// Ensure redisRepository implements Repository
var _ Repository = (*redisRepository)(nil)

// SaveGameState replaces the game snapshot
func (r *redisRepository) SaveGameState(ctx context.Context, input SaveGameStateInput) (*SaveGameStateOutput, error) {
	if input.State == "" {
		return nil, errors.InvalidArgument("state cannot be empty")
	}

	snapshot := &GameStateSnapshot{
		SavedAt: r.clock.Now(),
		State:   input.State,
	}

	snapshotJSON, err := json.Marshal(snapshot)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal snapshot")
	}

	if err := r.client.Set(ctx, gameStateKey, snapshotJSON, 0).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to store snapshot in Redis")
	}

	return &SaveGameStateOutput{Snapshot: snapshot}, nil
}

// GetGameState loads the game snapshot, discarding a stale one
func (r *redisRepository) GetGameState(ctx context.Context, _ GetGameStateInput) (*GetGameStateOutput, error) {
	snapshotJSON, err := r.client.Get(ctx, gameStateKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFound("no snapshot saved")
		}
		return nil, errors.Wrapf(err, "failed to get snapshot from Redis")
	}

	var snapshot GameStateSnapshot
	if err := json.Unmarshal([]byte(snapshotJSON), &snapshot); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal snapshot")
	}

	// Stale snapshots are cleaned up rather than restored
	if r.clock.Now().After(snapshot.SavedAt.Add(staleAfter)) {
		_ = r.client.Del(ctx, gameStateKey)
		return nil, errors.NotFound("snapshot is stale")
	}

	return &GetGameStateOutput{Snapshot: &snapshot}, nil
}

// SaveHand preserves the current hand with a short TTL
func (r *redisRepository) SaveHand(ctx context.Context, input SaveHandInput) (*SaveHandOutput, error) {
	if input.Hand == nil {
		return nil, errors.InvalidArgument("hand cannot be nil")
	}

	handJSON, err := json.Marshal(input.Hand)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal hand")
	}

	if err := r.client.Set(ctx, handKey, handJSON, handTTL).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to store hand in Redis")
	}

	return &SaveHandOutput{}, nil
}

// GetHand restores the preserved hand
func (r *redisRepository) GetHand(ctx context.Context, _ GetHandInput) (*GetHandOutput, error) {
	handJSON, err := r.client.Get(ctx, handKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFound("no hand preserved")
		}
		return nil, errors.Wrapf(err, "failed to get hand from Redis")
	}

	var hand entities.Hand
	if err := json.Unmarshal([]byte(handJSON), &hand); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal hand")
	}

	return &GetHandOutput{Hand: &hand}, nil
}

// DeleteHand discards the preserved hand
func (r *redisRepository) DeleteHand(ctx context.Context, _ DeleteHandInput) (*DeleteHandOutput, error) {
	if err := r.client.Del(ctx, handKey).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to delete hand from Redis")
	}

	return &DeleteHandOutput{}, nil
}
