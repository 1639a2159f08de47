// Package snapshot provides repository interface and types for saved game
// snapshots: the durable whole-game snapshot and the transient hand
// snapshot used to restore an interrupted turn.
package snapshot

import (
	"context"
	"time"

	"github.com/KirkDiggler/gem-battle/internal/entities"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=snapshotmock github.com/KirkDiggler/gem-battle/internal/repositories/snapshot Repository

// GameStateSnapshot is a point-in-time save of the whole game state. The
// state payload is opaque to the repository; staleness is judged on SavedAt.
type GameStateSnapshot struct {
	SavedAt time.Time `json:"saved_at"`
	State   string    `json:"state"`
}

// SaveGameStateInput contains parameters for persisting a snapshot
type SaveGameStateInput struct {
	State string
}

// SaveGameStateOutput contains the stored snapshot with its timestamp
type SaveGameStateOutput struct {
	Snapshot *GameStateSnapshot
}

// GetGameStateInput contains parameters for loading the snapshot
type GetGameStateInput struct{}

// GetGameStateOutput contains the loaded snapshot
type GetGameStateOutput struct {
	Snapshot *GameStateSnapshot
}

// SaveHandInput contains the hand to preserve across an interruption
type SaveHandInput struct {
	Hand *entities.Hand
}

// SaveHandOutput contains the result of preserving the hand
type SaveHandOutput struct{}

// GetHandInput contains parameters for restoring the preserved hand
type GetHandInput struct{}

// GetHandOutput contains the restored hand, verbatim as saved
type GetHandOutput struct {
	Hand *entities.Hand
}

// DeleteHandInput contains parameters for discarding the preserved hand
type DeleteHandInput struct{}

// DeleteHandOutput contains the result of discarding the hand
type DeleteHandOutput struct{}

// Repository defines the interface for snapshot storage
type Repository interface {
	// SaveGameState replaces the game snapshot, stamping it with the
	// repository clock
	SaveGameState(ctx context.Context, input SaveGameStateInput) (*SaveGameStateOutput, error)

	// GetGameState loads the game snapshot. A snapshot older than the
	// staleness window is treated as absent and returns NotFound.
	GetGameState(ctx context.Context, input GetGameStateInput) (*GetGameStateOutput, error)

	// SaveHand preserves the current hand for a short window
	SaveHand(ctx context.Context, input SaveHandInput) (*SaveHandOutput, error)

	// GetHand restores the preserved hand; NotFound when absent or lapsed
	GetHand(ctx context.Context, input GetHandInput) (*GetHandOutput, error)

	// DeleteHand discards the preserved hand
	DeleteHand(ctx context.Context, input DeleteHandInput) (*DeleteHandOutput, error)
}
