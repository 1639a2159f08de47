package entities

// GemKind identifies what a gem does when resolved
type GemKind string

// Gem kinds
const (
	GemKindAttack GemKind = "GEM_KIND_ATTACK"
	GemKindHeal   GemKind = "GEM_KIND_HEAL"
	GemKindShield GemKind = "GEM_KIND_SHIELD"
	GemKindFocus  GemKind = "GEM_KIND_FOCUS"
	GemKindPoison GemKind = "GEM_KIND_POISON"
)

// GemColor categorizes which class uses a gem at full effect
type GemColor string

// Gem colors
const (
	GemColorWhite GemColor = "GEM_COLOR_WHITE" // neutral basics
	GemColorRed   GemColor = "GEM_COLOR_RED"   // Knight
	GemColorBlue  GemColor = "GEM_COLOR_BLUE"  // Mage
	GemColorGreen GemColor = "GEM_COLOR_GREEN" // Thief
)

// Gem is a single action card. Gems are immutable value objects once drawn
// into a hand; the catalog owns the canonical definitions.
type Gem struct {
	Key   string
	Kind  GemKind
	Color GemColor

	// Magnitudes; only the fields relevant to Kind are set
	Damage       int32
	HealAmount   int32
	Defense      int32
	Duration     int32
	StaminaDelta int32

	StaminaCost int32
}

// Hand is the ordered sequence of gems drawn for the current turn,
// indexed by position.
type Hand struct {
	Gems []Gem
}

// Len returns the number of gems in the hand
func (h *Hand) Len() int {
	return len(h.Gems)
}

// At returns the gem at the given index, reporting whether it exists
func (h *Hand) At(index int) (Gem, bool) {
	if index < 0 || index >= len(h.Gems) {
		return Gem{}, false
	}
	return h.Gems[index], true
}

// Remove discards the gems at the given indices. Indices refer to the
// current hand layout; out-of-range entries are ignored.
func (h *Hand) Remove(indices []int) {
	if len(indices) == 0 {
		return
	}

	drop := make(map[int]bool, len(indices))
	for _, i := range indices {
		drop[i] = true
	}

	kept := h.Gems[:0]
	for i, g := range h.Gems {
		if !drop[i] {
			kept = append(kept, g)
		}
	}
	h.Gems = kept
}

// Clone returns a verbatim copy of the hand
func (h *Hand) Clone() Hand {
	gems := make([]Gem, len(h.Gems))
	copy(gems, h.Gems)
	return Hand{Gems: gems}
}
