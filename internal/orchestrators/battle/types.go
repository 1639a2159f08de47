package battle

import (
	"context"

	"github.com/KirkDiggler/gem-battle/internal/entities"
)

//go:generate mockgen -destination=mock/mock_service.go -package=battlemock github.com/KirkDiggler/gem-battle/internal/orchestrators/battle Service

// Service defines the interface for battle turn operations
type Service interface {
	// StartBattle opens an encounter for the active day and deals the
	// first hand
	StartBattle(ctx context.Context, input *StartBattleInput) (*StartBattleOutput, error)

	// ToggleGem flips the selection at a hand index during the player turn
	ToggleGem(ctx context.Context, input *ToggleGemInput) (*ToggleGemOutput, error)

	// ExecuteSelection resolves the selected gems and advances the turn
	ExecuteSelection(ctx context.Context, input *ExecuteSelectionInput) (*ExecuteSelectionOutput, error)

	// Wait ends the player turn without resolving any gems
	Wait(ctx context.Context, input *WaitInput) (*WaitOutput, error)

	// Flee abandons the battle with no reward and no penalty
	Flee(ctx context.Context, input *FleeInput) (*FleeOutput, error)

	// ProcessEnemyTurn applies the enemy's scripted action and hands the
	// turn back to the player
	ProcessEnemyTurn(ctx context.Context, input *ProcessEnemyTurnInput) (*ProcessEnemyTurnOutput, error)
}

// StartBattleInput contains parameters for opening an encounter
type StartBattleInput struct {
	// Class is the player class; empty falls back to the class already in
	// the state store
	Class string
}

// StartBattleOutput contains the opened battle and the dealt hand
type StartBattleOutput struct {
	Battle *entities.Battle
	Hand   entities.Hand
}

// ToggleGemInput contains the hand index to toggle
type ToggleGemInput struct {
	Index int
}

// ToggleGemOutput contains the resulting selection
type ToggleGemOutput struct {
	SelectedIndices []int
}

// ExecuteSelectionInput contains parameters for resolving the selection
type ExecuteSelectionInput struct{}

// ExecuteSelectionOutput contains the resolution result and the phase the
// battle advanced to
type ExecuteSelectionOutput struct {
	Batch  entities.EffectBatch
	Phase  entities.BattlePhase
	Reward int32
}

// WaitInput contains parameters for ending the turn without acting
type WaitInput struct{}

// WaitOutput contains the phase the battle advanced to
type WaitOutput struct {
	Phase entities.BattlePhase
}

// FleeInput contains parameters for abandoning the battle
type FleeInput struct{}

// FleeOutput contains the terminal phase
type FleeOutput struct {
	Phase entities.BattlePhase
}

// ProcessEnemyTurnInput contains parameters for the enemy action
type ProcessEnemyTurnInput struct{}

// ProcessEnemyTurnOutput contains what the enemy did and the phase the
// battle advanced to
type ProcessEnemyTurnOutput struct {
	Phase entities.BattlePhase

	// EnemyPoisonDamage is what the enemy's own poison timer dealt to it
	EnemyPoisonDamage int32

	// DamageToPlayer is the enemy attack after shield reduction
	DamageToPlayer int32

	// Hand is the fresh hand dealt for the next player turn; empty when
	// the battle ended
	Hand entities.Hand
}
