package entities

import "github.com/KirkDiggler/rpg-toolkit/core"

// Battle participants satisfy core.Entity
var (
	_ core.Entity = (*Enemy)(nil)
	_ core.Entity = (*PlayerState)(nil)
)

// BattlePhase is the state of the battle turn machine
type BattlePhase string

// Battle phases
const (
	PhaseNotStarted BattlePhase = "NOT_STARTED"
	PhasePlayerTurn BattlePhase = "PLAYER_TURN"
	PhaseResolving  BattlePhase = "RESOLVING"
	PhaseEnemyTurn  BattlePhase = "ENEMY_TURN"
	PhaseWon        BattlePhase = "WON"
	PhaseLost       BattlePhase = "LOST"
	PhaseFled       BattlePhase = "FLED"
)

// Terminal reports whether the phase ends the battle
func (p BattlePhase) Terminal() bool {
	return p == PhaseWon || p == PhaseLost || p == PhaseFled
}

// TimedEffect is a magnitude that persists for a number of turns.
// Re-applying while active refreshes the duration without stacking
// the magnitude.
type TimedEffect struct {
	Magnitude int32
	TurnsLeft int32
}

// Active reports whether the effect still applies
func (e *TimedEffect) Active() bool {
	return e.TurnsLeft > 0
}

// Apply sets or refreshes the effect. An already-active effect keeps its
// magnitude and only has its duration refreshed.
func (e *TimedEffect) Apply(magnitude, turns int32) {
	if !e.Active() {
		e.Magnitude = magnitude
	}
	e.TurnsLeft = turns
}

// Tick consumes one turn of the effect and returns the magnitude that
// applied this turn, or 0 if the effect was not active.
func (e *TimedEffect) Tick() int32 {
	if !e.Active() {
		return 0
	}
	e.TurnsLeft--
	magnitude := e.Magnitude
	if !e.Active() {
		e.Magnitude = 0
	}
	return magnitude
}

// Enemy is one battle's opponent
type Enemy struct {
	ID        string
	Identity  string // one of the ENEMY_* constants
	Health    int32
	MaxHealth int32
	Attack    int32
	Poison    TimedEffect
}

// GetID implements core.Entity
func (e *Enemy) GetID() string { return e.ID }

// GetType implements core.Entity
func (e *Enemy) GetType() string { return "enemy" }

// PlayerState is the player's combat state for one battle
type PlayerState struct {
	ID         string
	Class      string
	Health     int32
	MaxHealth  int32
	Stamina    int32
	MaxStamina int32
	Shield     TimedEffect
	Poison     TimedEffect
}

// GetID implements core.Entity
func (p *PlayerState) GetID() string { return p.ID }

// GetType implements core.Entity
func (p *PlayerState) GetType() string { return "player" }

// Battle is the transient aggregate for one encounter. It is created at
// battle start and discarded on any terminal phase.
type Battle struct {
	ID       string
	Phase    BattlePhase
	Enemy    *Enemy
	Player   *PlayerState
	Day      int32
	DayPhase int32
	Over     bool
}
