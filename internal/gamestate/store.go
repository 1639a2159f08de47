// Package gamestate provides the working-state store the battle engine
// treats as its memory.
//
// The store is an explicit dependency: every component that needs game
// state receives a *Store at construction. Nothing in the engine reaches a
// process-wide singleton, so tests get an isolated store each.
package gamestate

import (
	"github.com/KirkDiggler/gem-battle/internal/entities"
)

// Store owns the mutable state shared between the engine's components:
// the player's class and progression context, the current hand and
// selection, and the live battle aggregate.
type Store struct {
	class    string
	day      int32
	dayPhase int32
	zenny    int32

	hand      entities.Hand
	selection []int

	battle *entities.Battle
}

// New creates an empty store
func New() *Store {
	return &Store{}
}

// Class returns the active player class
func (s *Store) Class() string { return s.class }

// SetClass sets the active player class
func (s *Store) SetClass(class string) { s.class = class }

// Day returns the current day
func (s *Store) Day() int32 { return s.day }

// SetDay sets the current day
func (s *Store) SetDay(day int32) { s.day = day }

// DayPhase returns the phase within the current day
func (s *Store) DayPhase() int32 { return s.dayPhase }

// SetDayPhase sets the phase within the current day
func (s *Store) SetDayPhase(phase int32) { s.dayPhase = phase }

// Zenny returns the persistent currency total
func (s *Store) Zenny() int32 { return s.zenny }

// SetZenny sets the persistent currency total
func (s *Store) SetZenny(zenny int32) { s.zenny = zenny }

// AddZenny adds to the persistent currency total and returns the new total
func (s *Store) AddZenny(amount int32) int32 {
	s.zenny += amount
	return s.zenny
}

// Hand returns the current hand for in-place mutation
func (s *Store) Hand() *entities.Hand { return &s.hand }

// SetHand replaces the current hand
func (s *Store) SetHand(hand entities.Hand) { s.hand = hand }

// Selection returns the selected hand indices in ascending order.
// The returned slice is a copy.
func (s *Store) Selection() []int {
	out := make([]int, len(s.selection))
	copy(out, s.selection)
	return out
}

// SetSelection replaces the selection
func (s *Store) SetSelection(indices []int) {
	s.selection = make([]int, len(indices))
	copy(s.selection, indices)
}

// ClearSelection empties the selection
func (s *Store) ClearSelection() { s.selection = nil }

// Battle returns the live battle aggregate, or nil outside a battle
func (s *Store) Battle() *entities.Battle { return s.battle }

// SetBattle installs the live battle aggregate
func (s *Store) SetBattle(battle *entities.Battle) { s.battle = battle }

// ClearBattle discards the battle aggregate
func (s *Store) ClearBattle() { s.battle = nil }
