// Package selection implements the hand-selection rules: which hand slots
// are currently chosen for execution, under context-sensitive toggling.
package selection

import (
	"log/slog"
	"sort"

	"github.com/KirkDiggler/gem-battle/internal/errors"
	"github.com/KirkDiggler/gem-battle/internal/events"
	"github.com/KirkDiggler/gem-battle/internal/gamestate"
)

// Context selects the toggle policy
type Context string

// Selection contexts
const (
	// ContextBattle allows multi-select; toggling flips membership
	ContextBattle Context = "battle"

	// ContextShop is single-select; a second index replaces the first
	ContextShop Context = "shop"
)

// Config holds the dependencies for the selection manager
type Config struct {
	Store *gamestate.Store
	Bus   events.Bus
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Store == nil {
		vb.RequiredField("Store")
	}
	if c.Bus == nil {
		vb.RequiredField("Bus")
	}

	return vb.Build()
}

// Manager tracks the selected hand indices in the state store. The
// resulting set depends only on the sequence of Toggle calls and their
// contexts.
type Manager struct {
	store *gamestate.Store
	bus   events.Bus
}

// New creates a selection manager
func New(cfg *Config) (*Manager, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Manager{
		store: cfg.Store,
		bus:   cfg.Bus,
	}, nil
}

// Toggle flips or replaces the selection at a hand index. An index that
// does not resolve to a present hand entry clears the whole selection:
// stale indices can arrive from UI state racing a hand mutation, so this
// is a recoverable client error, logged and never returned.
func (m *Manager) Toggle(index int, context Context) {
	hand := m.store.Hand()
	if _, ok := hand.At(index); !ok {
		slog.Warn("selection index does not resolve to a hand entry, clearing selection",
			"index", index,
			"hand_size", hand.Len(),
			"context", string(context),
		)
		m.store.ClearSelection()
		m.publish(index, false)
		return
	}

	current := m.store.Selection()
	selected := false

	var next []int
	switch context {
	case ContextShop:
		if len(current) == 1 && current[0] == index {
			next = nil
		} else {
			next = []int{index}
			selected = true
		}
	default:
		next = current
		member := -1
		for i, v := range next {
			if v == index {
				member = i
				break
			}
		}
		if member >= 0 {
			next = append(next[:member], next[member+1:]...)
		} else {
			next = append(next, index)
			sort.Ints(next)
			selected = true
		}
	}

	m.store.SetSelection(next)
	m.publish(index, selected)
}

// Reset clears the selection. Called whenever the hand changes shape, e.g.
// after a resolution batch consumes gems.
func (m *Manager) Reset() {
	m.store.ClearSelection()
	m.publish(-1, false)
}

func (m *Manager) publish(index int, selected bool) {
	m.bus.Publish(events.SelectionChanged{
		Index:           index,
		Selected:        selected,
		SelectedIndices: m.store.Selection(),
	})
}
