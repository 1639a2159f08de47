package proficiency

import (
	"context"
	"sync"

	"github.com/KirkDiggler/gem-battle/internal/entities"
	"github.com/KirkDiggler/gem-battle/internal/errors"
)

// InMemoryRepository implements Repository using in-memory storage. It is
// the fallback when no persistence backend is reachable.
type InMemoryRepository struct {
	mu    sync.RWMutex
	store map[string]entities.ProficiencyRecords
}

// NewInMemory creates a new in-memory repository
func NewInMemory() *InMemoryRepository {
	return &InMemoryRepository{
		store: make(map[string]entities.ProficiencyRecords),
	}
}

// Get loads the records for a class
func (r *InMemoryRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.Class == "" {
		return nil, errors.InvalidArgument(errClassEmpty)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	records, exists := r.store[input.Class]
	if !exists {
		return nil, errors.NotFound("no proficiency records for class")
	}

	// Return a copy to prevent external modification
	out := make(entities.ProficiencyRecords, len(records))
	for k, v := range records {
		out[k] = v
	}
	return &GetOutput{Records: out}, nil
}

// Save replaces the records for a class
func (r *InMemoryRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if input.Class == "" {
		return nil, errors.InvalidArgument(errClassEmpty)
	}

	copied := make(entities.ProficiencyRecords, len(input.Records))
	for k, v := range input.Records {
		copied[k] = v
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.store[input.Class] = copied
	return &SaveOutput{}, nil
}
