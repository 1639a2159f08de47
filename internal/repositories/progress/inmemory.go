package progress

import (
	"context"
	"sync"

	"github.com/KirkDiggler/gem-battle/internal/errors"
)

// InMemoryRepository implements Repository using in-memory storage. It is
// the fallback when no persistence backend is reachable.
type InMemoryRepository struct {
	mu       sync.RWMutex
	progress *Progress
	unlocks  map[string][]string
}

// NewInMemory creates a new in-memory repository
func NewInMemory() *InMemoryRepository {
	return &InMemoryRepository{
		unlocks: make(map[string][]string),
	}
}

// GetProgress loads the run progression
func (r *InMemoryRepository) GetProgress(ctx context.Context, _ GetProgressInput) (*GetProgressOutput, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.progress == nil {
		return nil, errors.NotFound("no progression saved")
	}

	copied := *r.progress
	return &GetProgressOutput{Progress: &copied}, nil
}

// SaveProgress replaces the run progression
func (r *InMemoryRepository) SaveProgress(ctx context.Context, input SaveProgressInput) (*SaveProgressOutput, error) {
	if input.Progress == nil {
		return nil, errors.InvalidArgument("progress cannot be nil")
	}
	if err := input.Progress.Validate(); err != nil {
		return nil, err
	}

	copied := *input.Progress

	r.mu.Lock()
	defer r.mu.Unlock()

	r.progress = &copied
	return &SaveProgressOutput{}, nil
}

// GetUnlocks loads the unlocked gem keys for a class
func (r *InMemoryRepository) GetUnlocks(ctx context.Context, input GetUnlocksInput) (*GetUnlocksOutput, error) {
	if input.Class == "" {
		return nil, errors.InvalidArgument("class cannot be empty")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	keys, exists := r.unlocks[input.Class]
	if !exists {
		return nil, errors.NotFound("no unlocks for class")
	}

	out := make([]string, len(keys))
	copy(out, keys)
	return &GetUnlocksOutput{GemKeys: out}, nil
}

// SaveUnlocks replaces the unlocked gem keys for a class
func (r *InMemoryRepository) SaveUnlocks(ctx context.Context, input SaveUnlocksInput) (*SaveUnlocksOutput, error) {
	if input.Class == "" {
		return nil, errors.InvalidArgument("class cannot be empty")
	}

	copied := make([]string, len(input.GemKeys))
	copy(copied, input.GemKeys)

	r.mu.Lock()
	defer r.mu.Unlock()

	r.unlocks[input.Class] = copied
	return &SaveUnlocksOutput{}, nil
}
