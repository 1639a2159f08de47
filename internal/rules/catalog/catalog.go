// Package catalog provides the static gem registry and the per-class
// unlocked gem sets.
package catalog

import (
	"sort"

	"github.com/KirkDiggler/gem-battle/internal/entities"
	"github.com/KirkDiggler/gem-battle/internal/errors"
)

// DefaultCapacity caps the unlocked set per class
const DefaultCapacity = 15

// registry is the static gem registry. Gem keys are never user-supplied at
// this layer; a lookup miss is a programming error.
var registry = map[string]entities.Gem{
	entities.GemStrike: {
		Key: entities.GemStrike, Kind: entities.GemKindAttack, Color: entities.GemColorWhite,
		Damage: 5, StaminaCost: 2,
	},
	entities.GemMend: {
		Key: entities.GemMend, Kind: entities.GemKindHeal, Color: entities.GemColorWhite,
		HealAmount: 4, StaminaCost: 2,
	},
	entities.GemWard: {
		Key: entities.GemWard, Kind: entities.GemKindShield, Color: entities.GemColorWhite,
		Defense: 3, Duration: 2, StaminaCost: 2,
	},
	entities.GemFocus: {
		Key: entities.GemFocus, Kind: entities.GemKindFocus, Color: entities.GemColorWhite,
		StaminaDelta: 4, StaminaCost: 0,
	},
	entities.GemCleave: {
		Key: entities.GemCleave, Kind: entities.GemKindAttack, Color: entities.GemColorRed,
		Damage: 9, StaminaCost: 4,
	},
	entities.GemVenom: {
		Key: entities.GemVenom, Kind: entities.GemKindPoison, Color: entities.GemColorBlue,
		Damage: 2, Duration: 3, StaminaCost: 3,
	},
	entities.GemAmbush: {
		Key: entities.GemAmbush, Kind: entities.GemKindAttack, Color: entities.GemColorGreen,
		Damage: 4, StaminaCost: 1,
	},
	entities.GemSmite: {
		Key: entities.GemSmite, Kind: entities.GemKindAttack, Color: entities.GemColorRed,
		Damage: 7, StaminaCost: 3,
	},
	entities.GemSurge: {
		Key: entities.GemSurge, Kind: entities.GemKindHeal, Color: entities.GemColorBlue,
		HealAmount: 7, StaminaCost: 3,
	},
	entities.GemBulwark: {
		Key: entities.GemBulwark, Kind: entities.GemKindShield, Color: entities.GemColorRed,
		Defense: 5, Duration: 2, StaminaCost: 3,
	},
	entities.GemToxin: {
		Key: entities.GemToxin, Kind: entities.GemKindPoison, Color: entities.GemColorGreen,
		Damage: 3, Duration: 2, StaminaCost: 3,
	},
	entities.GemMeditate: {
		Key: entities.GemMeditate, Kind: entities.GemKindFocus, Color: entities.GemColorBlue,
		StaminaDelta: 6, StaminaCost: 0,
	},
	entities.GemRend: {
		Key: entities.GemRend, Kind: entities.GemKindAttack, Color: entities.GemColorGreen,
		Damage: 6, StaminaCost: 2,
	},
	entities.GemSalve: {
		Key: entities.GemSalve, Kind: entities.GemKindHeal, Color: entities.GemColorGreen,
		HealAmount: 3, StaminaCost: 1,
	},
	entities.GemAegis: {
		Key: entities.GemAegis, Kind: entities.GemKindShield, Color: entities.GemColorBlue,
		Defense: 4, Duration: 3, StaminaCost: 4,
	},
}

// Catalog is the unlocked gem set for one class
type Catalog struct {
	class    string
	capacity int
	unlocked map[string]bool
}

// Reconcile builds a catalog from loaded unlock data. The basic gems and
// the class signature gem are always present; keys that are not in the
// static registry are dropped. Loaded keys beyond the capacity are dropped
// deterministically (sorted order).
func Reconcile(class string, loadedKeys []string) *Catalog {
	c := &Catalog{
		class:    class,
		capacity: DefaultCapacity,
		unlocked: make(map[string]bool),
	}

	guaranteed := entities.BasicGemKeys()
	if sig := entities.SignatureGem(class); sig != "" {
		guaranteed = append(guaranteed, sig)
	}
	for _, key := range guaranteed {
		c.unlocked[key] = true
	}

	sorted := make([]string, len(loadedKeys))
	copy(sorted, loadedKeys)
	sort.Strings(sorted)
	for _, key := range sorted {
		if len(c.unlocked) >= c.capacity {
			break
		}
		if _, ok := registry[key]; !ok {
			continue
		}
		c.unlocked[key] = true
	}

	return c
}

// DefinitionOf returns the static definition for a gem key. An unknown key
// is a catalog/definition mismatch inside the engine, so the error is
// internal and does surface.
func DefinitionOf(gemKey string) (entities.Gem, error) {
	def, ok := registry[gemKey]
	if !ok {
		return entities.Gem{}, errors.Internalf("gem key %q is not in the static registry", gemKey).
			WithMeta("gem_key", gemKey)
	}
	return def, nil
}

// DefinitionOf returns the static definition for an unlocked or locked key
func (c *Catalog) DefinitionOf(gemKey string) (entities.Gem, error) {
	return DefinitionOf(gemKey)
}

// IsUnlocked reports whether the class has the gem available
func (c *Catalog) IsUnlocked(gemKey string) bool {
	return c.unlocked[gemKey]
}

// Unlock adds a gem key to the class set
func (c *Catalog) Unlock(gemKey string) error {
	if _, ok := registry[gemKey]; !ok {
		return errors.Internalf("gem key %q is not in the static registry", gemKey).
			WithMeta("gem_key", gemKey)
	}
	if c.unlocked[gemKey] {
		return errors.AlreadyExists("gem already unlocked").WithMeta("gem_key", gemKey)
	}
	if len(c.unlocked) >= c.capacity {
		return errors.ResourceExhaustedf("unlocked set is at capacity (%d)", c.capacity)
	}
	c.unlocked[gemKey] = true
	return nil
}

// UnlockedKeys returns the unlocked gem keys in sorted order
func (c *Catalog) UnlockedKeys() []string {
	keys := make([]string, 0, len(c.unlocked))
	for key := range c.unlocked {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Class returns the class this catalog belongs to
func (c *Catalog) Class() string { return c.class }
