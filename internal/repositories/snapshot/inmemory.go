package snapshot

import (
	"context"
	"sync"
	"time"

	"github.com/KirkDiggler/gem-battle/internal/entities"
	"github.com/KirkDiggler/gem-battle/internal/errors"
	"github.com/KirkDiggler/gem-battle/internal/pkg/clock"
)

// InMemoryRepository implements Repository using in-memory storage. It is
// the fallback when no persistence backend is reachable.
type InMemoryRepository struct {
	mu          sync.RWMutex
	clk         clock.Clock
	snapshot    *GameStateSnapshot
	hand        *entities.Hand
	handSavedAt time.Time
}

// NewInMemory creates a new in-memory repository
func NewInMemory(clk clock.Clock) *InMemoryRepository {
	if clk == nil {
		clk = clock.New()
	}
	return &InMemoryRepository{clk: clk}
}

// SaveGameState replaces the game snapshot
func (r *InMemoryRepository) SaveGameState(ctx context.Context, input SaveGameStateInput) (*SaveGameStateOutput, error) {
	if input.State == "" {
		return nil, errors.InvalidArgument("state cannot be empty")
	}

	snapshot := &GameStateSnapshot{
		SavedAt: r.clk.Now(),
		State:   input.State,
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.snapshot = snapshot
	copied := *snapshot
	return &SaveGameStateOutput{Snapshot: &copied}, nil
}

// GetGameState loads the game snapshot, discarding a stale one
func (r *InMemoryRepository) GetGameState(ctx context.Context, _ GetGameStateInput) (*GetGameStateOutput, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.snapshot == nil {
		return nil, errors.NotFound("no snapshot saved")
	}

	if r.clk.Now().After(r.snapshot.SavedAt.Add(staleAfter)) {
		r.snapshot = nil
		return nil, errors.NotFound("snapshot is stale")
	}

	copied := *r.snapshot
	return &GetGameStateOutput{Snapshot: &copied}, nil
}

// SaveHand preserves the current hand
func (r *InMemoryRepository) SaveHand(ctx context.Context, input SaveHandInput) (*SaveHandOutput, error) {
	if input.Hand == nil {
		return nil, errors.InvalidArgument("hand cannot be nil")
	}

	copied := input.Hand.Clone()

	r.mu.Lock()
	defer r.mu.Unlock()

	r.hand = &copied
	r.handSavedAt = r.clk.Now()
	return &SaveHandOutput{}, nil
}

// GetHand restores the preserved hand
func (r *InMemoryRepository) GetHand(ctx context.Context, _ GetHandInput) (*GetHandOutput, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.hand == nil {
		return nil, errors.NotFound("no hand preserved")
	}

	if r.clk.Now().After(r.handSavedAt.Add(handTTL)) {
		r.hand = nil
		return nil, errors.NotFound("no hand preserved")
	}

	copied := r.hand.Clone()
	return &GetHandOutput{Hand: &copied}, nil
}

// DeleteHand discards the preserved hand
func (r *InMemoryRepository) DeleteHand(ctx context.Context, _ DeleteHandInput) (*DeleteHandOutput, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.hand = nil
	return &DeleteHandOutput{}, nil
}
