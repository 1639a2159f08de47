// Package progress provides repository interface and types for run
// progression: zenny, day tracking, and per-class gem unlocks
package progress

import (
	"context"

	"github.com/KirkDiggler/gem-battle/internal/errors"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=progressmock github.com/KirkDiggler/gem-battle/internal/repositories/progress Repository

// Progress is the persisted run progression state
type Progress struct {
	Zenny    int32 `json:"zenny"`
	Day      int32 `json:"day"`
	DayPhase int32 `json:"day_phase"`
}

// Validate ensures the progress values are storable
func (p *Progress) Validate() error {
	if p.Zenny < 0 {
		return errors.InvalidArgument("zenny cannot be negative")
	}
	if p.Day < 0 {
		return errors.InvalidArgument("day cannot be negative")
	}
	return nil
}

// GetProgressInput contains parameters for loading progression
type GetProgressInput struct{}

// GetProgressOutput contains the loaded progression
type GetProgressOutput struct {
	Progress *Progress
}

// SaveProgressInput contains parameters for persisting progression
type SaveProgressInput struct {
	Progress *Progress
}

// SaveProgressOutput contains the result of persisting progression
type SaveProgressOutput struct{}

// GetUnlocksInput contains parameters for loading a class's unlocked gems
type GetUnlocksInput struct {
	Class string
}

// GetUnlocksOutput contains the loaded unlocked gem keys
type GetUnlocksOutput struct {
	GemKeys []string
}

// SaveUnlocksInput contains parameters for persisting a class's unlocked gems
type SaveUnlocksInput struct {
	Class   string
	GemKeys []string
}

// SaveUnlocksOutput contains the result of persisting unlocks
type SaveUnlocksOutput struct{}

// Repository defines the interface for progression storage
type Repository interface {
	// GetProgress loads the run progression; NotFound when nothing was saved
	GetProgress(ctx context.Context, input GetProgressInput) (*GetProgressOutput, error)

	// SaveProgress replaces the run progression
	SaveProgress(ctx context.Context, input SaveProgressInput) (*SaveProgressOutput, error)

	// GetUnlocks loads the unlocked gem keys for a class; NotFound when
	// nothing was saved
	GetUnlocks(ctx context.Context, input GetUnlocksInput) (*GetUnlocksOutput, error)

	// SaveUnlocks replaces the unlocked gem keys for a class
	SaveUnlocks(ctx context.Context, input SaveUnlocksInput) (*SaveUnlocksOutput, error)
}
