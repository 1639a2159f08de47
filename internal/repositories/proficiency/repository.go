// Package proficiency provides repository interface and types for
// per-class gem proficiency records
package proficiency

import (
	"context"

	"github.com/KirkDiggler/gem-battle/internal/entities"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=proficiencymock github.com/KirkDiggler/gem-battle/internal/repositories/proficiency Repository

// GetInput contains parameters for loading a class's records
type GetInput struct {
	Class string
}

// GetOutput contains the loaded records
type GetOutput struct {
	Records entities.ProficiencyRecords
}

// SaveInput contains parameters for persisting a class's records
type SaveInput struct {
	Class   string
	Records entities.ProficiencyRecords
}

// SaveOutput contains the result of persisting records
type SaveOutput struct{}

// Repository defines the interface for proficiency record storage
type Repository interface {
	// Get loads the records for a class; NotFound when nothing was saved
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Save replaces the records for a class
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)
}
