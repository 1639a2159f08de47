// Package events provides the typed event bus that decouples the battle
// engine from presentation and persistence collaborators.
//
// The event set is a closed union: every event type is declared here with
// its payload, and handlers subscribe by type. There are no free-form
// channel names, so a subscription cannot silently miss its events over a
// typo.
package events

import (
	"github.com/KirkDiggler/gem-battle/internal/entities"
)

// Type discriminates the closed set of engine events
type Type string

// Event types
const (
	TypeSelectionChanged Type = "selection.changed"
	TypeBattleStarted    Type = "battle.started"
	TypeGemResolved      Type = "battle.gem_resolved"
	TypeBattleEnded      Type = "battle.ended"
	TypeScreenChange     Type = "screen.change"
	TypeZennyChanged     Type = "progress.zenny_changed"
)

// Event is one engine event. The union is sealed: only types in this
// package implement it.
type Event interface {
	EventType() Type
	sealed()
}

// SelectionChanged is published after every selection toggle with the full
// resulting selection, so consumers can reconcile idempotently.
type SelectionChanged struct {
	Index           int
	Selected        bool
	SelectedIndices []int
}

// EventType implements Event
func (SelectionChanged) EventType() Type { return TypeSelectionChanged }
func (SelectionChanged) sealed()         {}

// BattleStarted is published when a battle enters the player turn for the
// first time.
type BattleStarted struct {
	BattleID string
	Enemy    entities.Enemy
	Day      int32
}

// EventType implements Event
func (BattleStarted) EventType() Type { return TypeBattleStarted }
func (BattleStarted) sealed()         {}

// GemResolved is published once per gem in a resolution batch, in
// resolution order.
type GemResolved struct {
	BattleID string
	Effect   entities.Effect
}

// EventType implements Event
func (GemResolved) EventType() Type { return TypeGemResolved }
func (GemResolved) sealed()         {}

// BattleEnded is published when the battle reaches a terminal phase.
type BattleEnded struct {
	BattleID      string
	Outcome       entities.BattlePhase
	EnemyIdentity string
	Reward        int32
}

// EventType implements Event
func (BattleEnded) EventType() Type { return TypeBattleEnded }
func (BattleEnded) sealed()         {}

// ScreenChange asks the presentation layer to transition to a screen.
type ScreenChange struct {
	Screen string
}

// EventType implements Event
func (ScreenChange) EventType() Type { return TypeScreenChange }
func (ScreenChange) sealed()         {}

// ZennyChanged is published when the persistent currency total changes.
type ZennyChanged struct {
	Total int32
}

// EventType implements Event
func (ZennyChanged) EventType() Type { return TypeZennyChanged }
func (ZennyChanged) sealed()         {}
