// Package resolution implements the gem resolution algorithm: turning a
// selection of hand gems into an ordered batch of applied effects.
package resolution

import (
	"context"
	"sort"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/gem-battle/internal/entities"
	"github.com/KirkDiggler/gem-battle/internal/errors"
	"github.com/KirkDiggler/gem-battle/internal/rules/proficiency"
)

// Config holds the dependencies for the resolver
type Config struct {
	// Roller is the single source of randomness. The failure roll is a
	// uniform d100 against FailureChance*100; substituting the
	// distribution means substituting the roller.
	Roller dice.Roller
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Roller == nil {
		vb.RequiredField("Roller")
	}

	return vb.Build()
}

// Resolver executes selections against a battle
type Resolver struct {
	roller dice.Roller
}

// New creates a resolver
func New(cfg *Config) (*Resolver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Resolver{roller: cfg.Roller}, nil
}

// ExecuteInput carries the state one resolution mutates
type ExecuteInput struct {
	Selected    []int
	Hand        *entities.Hand
	Proficiency *proficiency.Table
	Battle      *entities.Battle
}

// ExecuteOutput carries the ordered result of the batch
type ExecuteOutput struct {
	Batch entities.EffectBatch
}

// Execute resolves the selected gems in ascending hand-index order. Per
// gem: stamina check (soft skip), proficiency roll, kind-specific effect,
// stamina deduction, consumption. Consumed gems are removed from the hand
// once the batch completes so every selected index keeps referring to its
// original slot. Execute mutates only the state it is handed; it does not
// decide turn transitions.
func (r *Resolver) Execute(ctx context.Context, input *ExecuteInput) (*ExecuteOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Hand == nil || input.Proficiency == nil || input.Battle == nil {
		return nil, errors.InvalidArgument("hand, proficiency table, and battle are required")
	}

	player := input.Battle.Player
	enemy := input.Battle.Enemy
	if player == nil || enemy == nil {
		return nil, errors.InvalidArgument("battle must have a player and an enemy")
	}

	batch := entities.EffectBatch{}

	// The player's own poison ticks once per batch, before any gem.
	if dmg := player.Poison.Tick(); dmg > 0 {
		player.Health = clampMin0(player.Health - dmg)
		batch.PlayerPoisonDamage = dmg
	}

	indices := dedupeSorted(input.Selected)
	var consumed []int

	for _, index := range indices {
		gem, ok := input.Hand.At(index)
		if !ok {
			// The selection manager clears stale indices before they get
			// here; reaching this is an engine bug, not a data issue.
			return nil, errors.OutOfRangef("selected index %d does not resolve to a hand entry", index)
		}

		effect := entities.Effect{
			Index:  index,
			GemKey: gem.Key,
			Kind:   gem.Kind,
		}

		if gem.StaminaCost > player.Stamina {
			effect.Skipped = true
			batch.Effects = append(batch.Effects, effect)
			continue
		}

		failed, err := r.rollFailure(input.Proficiency.FailureChance(gem.Key))
		if err != nil {
			return nil, errors.Wrap(err, "proficiency roll failed")
		}
		effect.Succeeded = !failed
		input.Proficiency.RecordOutcome(gem.Key, !failed)

		switch gem.Kind {
		case entities.GemKindAttack:
			if !failed {
				enemy.Health = clampMin0(enemy.Health - gem.Damage)
				effect.DamageToEnemy = gem.Damage
				batch.TotalEnemyDamage += gem.Damage
			}

		case entities.GemKindHeal:
			if !failed {
				healed := min32(gem.HealAmount, player.MaxHealth-player.Health)
				player.Health += healed
				effect.HealToPlayer = healed
				batch.TotalPlayerHeal += healed
			}

		case entities.GemKindShield:
			// Support actions apply even on a failed roll; the roll only
			// withholds the proficiency credit.
			player.Shield.Apply(gem.Defense, gem.Duration)
			effect.ShieldApplied = player.Shield.Magnitude
			effect.ShieldTurns = player.Shield.TurnsLeft

		case entities.GemKindFocus:
			restored := min32(gem.StaminaDelta, player.MaxStamina-player.Stamina)
			player.Stamina += restored
			effect.StaminaRestored = restored

		case entities.GemKindPoison:
			if !failed {
				enemy.Poison.Apply(gem.Damage, gem.Duration)
				effect.PoisonApplied = enemy.Poison.Magnitude
				effect.PoisonTurns = enemy.Poison.TurnsLeft
			}
		}

		player.Stamina -= gem.StaminaCost
		effect.StaminaSpent = gem.StaminaCost
		batch.TotalStaminaSpent += gem.StaminaCost

		consumed = append(consumed, index)
		batch.Effects = append(batch.Effects, effect)
	}

	input.Hand.Remove(consumed)

	return &ExecuteOutput{Batch: batch}, nil
}

// rollFailure draws against a failure chance in [0,1]. Full proficiency
// consumes no roll, so a fully-proficient batch is deterministic without
// touching the roller.
func (r *Resolver) rollFailure(chance float64) (bool, error) {
	if chance <= 0 {
		return false, nil
	}
	if chance >= 1 {
		return true, nil
	}

	roll, err := r.roller.Roll(100)
	if err != nil {
		return false, err
	}
	return float64(roll) <= chance*100, nil
}

func dedupeSorted(indices []int) []int {
	seen := make(map[int]bool, len(indices))
	out := make([]int, 0, len(indices))
	for _, i := range indices {
		if !seen[i] {
			seen[i] = true
			out = append(out, i)
		}
	}
	sort.Ints(out)
	return out
}

func clampMin0(v int32) int32 {
	if v < 0 {
		return 0
	}
	return v
}

func min32(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}
