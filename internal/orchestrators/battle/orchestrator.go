// Package battle implements the battle turn orchestrator: the state
// machine that opens encounters, resolves gem selections, runs the enemy
// action, and settles rewards on a terminal phase.
package battle

import (
	"context"
	"encoding/json"
	"log/slog"
	"math"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/gem-battle/internal/config"
	"github.com/KirkDiggler/gem-battle/internal/entities"
	"github.com/KirkDiggler/gem-battle/internal/errors"
	"github.com/KirkDiggler/gem-battle/internal/events"
	"github.com/KirkDiggler/gem-battle/internal/gamestate"
	"github.com/KirkDiggler/gem-battle/internal/pkg/idgen"
	"github.com/KirkDiggler/gem-battle/internal/repositories/proficiency"
	"github.com/KirkDiggler/gem-battle/internal/repositories/progress"
	"github.com/KirkDiggler/gem-battle/internal/repositories/snapshot"
	"github.com/KirkDiggler/gem-battle/internal/rules/catalog"
	profrules "github.com/KirkDiggler/gem-battle/internal/rules/proficiency"
	"github.com/KirkDiggler/gem-battle/internal/rules/resolution"
	"github.com/KirkDiggler/gem-battle/internal/rules/selection"
)

// The Warden's attack leaves a lingering poison on the player
const (
	wardenPoisonDamage int32 = 1
	wardenPoisonTurns  int32 = 2
)

// Config holds the dependencies for the battle orchestrator
type Config struct {
	Store            *gamestate.Store
	Bus              events.Bus
	Roller           dice.Roller
	Resolver         *resolution.Resolver
	SelectionManager *selection.Manager
	ProficiencyRepo  proficiency.Repository
	ProgressRepo     progress.Repository
	SnapshotRepo     snapshot.Repository
	IDGenerator      idgen.Generator
	Balance          config.Balance
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
	if c.Roller == nil {
		vb.RequiredField("Roller")
	}
	if c.Resolver == nil {
		vb.RequiredField("Resolver")
	}
	if c.SelectionManager == nil {
		vb.RequiredField("SelectionManager")
	}
	if c.ProficiencyRepo == nil {
		vb.RequiredField("ProficiencyRepo")
	}
	if c.ProgressRepo == nil {
		vb.RequiredField("ProgressRepo")
	}
	if c.SnapshotRepo == nil {
		vb.RequiredField("SnapshotRepo")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

type orchestrator struct {
	store    *gamestate.Store
	bus      events.Bus
	roller   dice.Roller
	resolver *resolution.Resolver
	sel      *selection.Manager
	profRepo proficiency.Repository
	progRepo progress.Repository
	snapRepo snapshot.Repository
	idGen    idgen.Generator
	balance  config.Balance

	// Class-scoped state, reconciled on first use per class. Mutated only
	// while resolving; the engine is single-threaded by contract.
	table *profrules.Table
	cat   *catalog.Catalog
}

// NewOrchestrator creates a new battle orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		store:    cfg.Store,
		bus:      cfg.Bus,
		roller:   cfg.Roller,
		resolver: cfg.Resolver,
		sel:      cfg.SelectionManager,
		profRepo: cfg.ProficiencyRepo,
		progRepo: cfg.ProgressRepo,
		snapRepo: cfg.SnapshotRepo,
		idGen:    cfg.IDGenerator,
		balance:  cfg.Balance,
	}, nil
}

// Ensure orchestrator implements Service
var _ Service = (*orchestrator)(nil)

// StartBattle opens an encounter for the active day and deals the first hand
func (o *orchestrator) StartBattle(ctx context.Context, input *StartBattleInput) (*StartBattleOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	class := input.Class
	if class == "" {
		class = o.store.Class()
	}
	if entities.SignatureGem(class) == "" {
		return nil, errors.InvalidArgumentf("unknown class: %q", class)
	}

	if existing := o.store.Battle(); existing != nil && !existing.Phase.Terminal() {
		return nil, errors.FailedPrecondition("a battle is already in progress")
	}

	o.store.SetClass(class)
	if err := o.loadClassState(ctx, class); err != nil {
		return nil, err
	}

	day := o.store.Day()
	if day < 1 {
		day = 1
		o.store.SetDay(day)
	}

	enemy, err := o.spawnEnemy(day)
	if err != nil {
		return nil, err
	}

	hand, err := o.dealHand()
	if err != nil {
		return nil, err
	}

	battle := &entities.Battle{
		ID:    o.idGen.Generate(),
		Phase: entities.PhasePlayerTurn,
		Enemy: enemy,
		Player: &entities.PlayerState{
			ID:         o.idGen.Generate(),
			Class:      class,
			Health:     o.balance.PlayerHealth,
			MaxHealth:  o.balance.PlayerHealth,
			Stamina:    o.balance.PlayerStamina,
			MaxStamina: o.balance.PlayerStamina,
		},
		Day:      day,
		DayPhase: o.store.DayPhase(),
	}

	o.store.SetBattle(battle)
	o.store.SetHand(hand)
	o.sel.Reset()
	o.saveHandSnapshot(ctx)

	slog.InfoContext(ctx, "battle started",
		"battle_id", battle.ID,
		"class", class,
		"day", day,
		"enemy", enemy.Identity,
		"enemy_health", enemy.Health,
	)

	o.bus.Publish(events.BattleStarted{
		BattleID: battle.ID,
		Enemy:    *enemy,
		Day:      day,
	})

	return &StartBattleOutput{
		Battle: battle,
		Hand:   hand.Clone(),
	}, nil
}

// ToggleGem flips the selection at a hand index during the player turn
func (o *orchestrator) ToggleGem(ctx context.Context, input *ToggleGemInput) (*ToggleGemOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	battle := o.store.Battle()
	if battle == nil || battle.Phase != entities.PhasePlayerTurn {
		return nil, errors.FailedPrecondition("gems can only be toggled during the player turn")
	}

	o.sel.Toggle(input.Index, selection.ContextBattle)

	return &ToggleGemOutput{SelectedIndices: o.store.Selection()}, nil
}

// ExecuteSelection resolves the selected gems and advances the turn
func (o *orchestrator) ExecuteSelection(ctx context.Context, input *ExecuteSelectionInput) (*ExecuteSelectionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	battle := o.store.Battle()
	if battle == nil || battle.Phase != entities.PhasePlayerTurn {
		return nil, errors.FailedPrecondition("selection can only be executed during the player turn")
	}

	selected := o.store.Selection()
	if len(selected) == 0 {
		return nil, errors.InvalidArgument("selection is empty")
	}

	battle.Phase = entities.PhaseResolving

	result, err := o.resolver.Execute(ctx, &resolution.ExecuteInput{
		Selected:    selected,
		Hand:        o.store.Hand(),
		Proficiency: o.table,
		Battle:      battle,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve selection")
	}

	for _, effect := range result.Batch.Effects {
		o.bus.Publish(events.GemResolved{
			BattleID: battle.ID,
			Effect:   effect,
		})
	}

	// The batch consumed gems, so every selection index is stale now
	o.sel.Reset()
	o.saveProficiency(ctx)
	o.saveHandSnapshot(ctx)

	out := &ExecuteSelectionOutput{Batch: result.Batch}

	// Mutual kill resolves as a loss
	switch {
	case battle.Player.Health <= 0:
		o.finishBattle(ctx, battle, entities.PhaseLost)
	case battle.Enemy.Health <= 0:
		out.Reward = o.finishBattle(ctx, battle, entities.PhaseWon)
	default:
		battle.Phase = entities.PhaseEnemyTurn
	}

	out.Phase = battle.Phase
	return out, nil
}

// Wait ends the player turn without resolving any gems
func (o *orchestrator) Wait(ctx context.Context, input *WaitInput) (*WaitOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	battle := o.store.Battle()
	if battle == nil || battle.Phase != entities.PhasePlayerTurn {
		return nil, errors.FailedPrecondition("waiting is only possible during the player turn")
	}

	o.sel.Reset()
	battle.Phase = entities.PhaseEnemyTurn

	return &WaitOutput{Phase: battle.Phase}, nil
}

// Flee abandons the battle with no reward and no penalty
func (o *orchestrator) Flee(ctx context.Context, input *FleeInput) (*FleeOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	battle := o.store.Battle()
	if battle == nil || battle.Phase.Terminal() {
		return nil, errors.FailedPrecondition("no battle to flee from")
	}
	if battle.Phase == entities.PhaseResolving {
		return nil, errors.FailedPrecondition("cannot flee mid-resolution")
	}

	o.finishBattle(ctx, battle, entities.PhaseFled)

	return &FleeOutput{Phase: entities.PhaseFled}, nil
}

// ProcessEnemyTurn applies the enemy's scripted action: its own poison
// timer ticks first, then it attacks through the player's shield, then the
// shield timer ticks down.
func (o *orchestrator) ProcessEnemyTurn(ctx context.Context, input *ProcessEnemyTurnInput) (*ProcessEnemyTurnOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	battle := o.store.Battle()
	if battle == nil || battle.Phase != entities.PhaseEnemyTurn {
		return nil, errors.FailedPrecondition("it is not the enemy's turn")
	}

	enemy := battle.Enemy
	player := battle.Player
	out := &ProcessEnemyTurnOutput{}

	if dmg := enemy.Poison.Tick(); dmg > 0 {
		enemy.Health = clampMin0(enemy.Health - dmg)
		out.EnemyPoisonDamage = dmg
	}

	// A poisoned-out enemy still swings if it is alive
	if enemy.Health > 0 {
		damage := enemy.Attack
		if player.Shield.Active() {
			damage = clampMin0(damage - player.Shield.Magnitude)
		}
		player.Health = clampMin0(player.Health - damage)
		player.Shield.Tick()
		out.DamageToPlayer = damage

		if enemy.Identity == entities.EnemyWarden {
			player.Poison.Apply(wardenPoisonDamage, wardenPoisonTurns)
		}
	}

	switch {
	case player.Health <= 0:
		o.finishBattle(ctx, battle, entities.PhaseLost)
	case enemy.Health <= 0:
		o.finishBattle(ctx, battle, entities.PhaseWon)
	default:
		battle.Phase = entities.PhasePlayerTurn
		hand, err := o.dealHand()
		if err != nil {
			return nil, err
		}
		o.store.SetHand(hand)
		o.sel.Reset()
		o.saveHandSnapshot(ctx)
		out.Hand = hand.Clone()
	}

	out.Phase = battle.Phase
	return out, nil
}

// loadClassState reconciles the proficiency table and gem catalog for a
// class. Repository failures degrade to a fresh reconciliation; gameplay
// never depends on storage succeeding.
func (o *orchestrator) loadClassState(ctx context.Context, class string) error {
	if o.table != nil && o.table.Class() == class {
		return nil
	}

	var records entities.ProficiencyRecords
	profOut, err := o.profRepo.Get(ctx, proficiency.GetInput{Class: class})
	switch {
	case err == nil:
		records = profOut.Records
	case errors.IsNotFound(err):
		// First run for this class
	default:
		slog.WarnContext(ctx, "failed to load proficiency records, starting fresh",
			"class", class,
			"error", err,
		)
	}
	o.table = profrules.Reconcile(class, records)

	var unlocked []string
	unlockOut, err := o.progRepo.GetUnlocks(ctx, progress.GetUnlocksInput{Class: class})
	switch {
	case err == nil:
		unlocked = unlockOut.GemKeys
	case errors.IsNotFound(err):
	default:
		slog.WarnContext(ctx, "failed to load gem unlocks, using basics",
			"class", class,
			"error", err,
		)
	}
	o.cat = catalog.Reconcile(class, unlocked)

	return nil
}

// spawnEnemy builds the day's opponent. Every BossInterval-th day spawns
// the Warden; other days draw one of the regular identities.
func (o *orchestrator) spawnEnemy(day int32) (*entities.Enemy, error) {
	identity := entities.EnemyWarden
	if day%o.balance.BossInterval != 0 {
		regulars := []string{entities.EnemySlime, entities.EnemyGhoul, entities.EnemyBandit}
		roll, err := o.roller.Roll(len(regulars))
		if err != nil {
			return nil, errors.Wrap(err, "failed to roll enemy identity")
		}
		identity = regulars[roll-1]
	}

	health := scaleStat(o.balance.EnemyBaseHealth, o.balance.HealthGrowth, day)
	attack := scaleStat(o.balance.EnemyBaseAttack, o.balance.AttackGrowth, day)

	return &entities.Enemy{
		ID:        o.idGen.Generate(),
		Identity:  identity,
		Health:    health,
		MaxHealth: health,
		Attack:    attack,
	}, nil
}

// dealHand draws a fresh hand from the class's unlocked gems
func (o *orchestrator) dealHand() (entities.Hand, error) {
	keys := o.cat.UnlockedKeys()
	if len(keys) == 0 {
		return entities.Hand{}, errors.Internal("catalog has no unlocked gems")
	}

	gems := make([]entities.Gem, 0, o.balance.HandSize)
	for i := 0; i < o.balance.HandSize; i++ {
		roll, err := o.roller.Roll(len(keys))
		if err != nil {
			return entities.Hand{}, errors.Wrap(err, "failed to roll hand gem")
		}
		gem, err := o.cat.DefinitionOf(keys[roll-1])
		if err != nil {
			return entities.Hand{}, err
		}
		gems = append(gems, gem)
	}

	return entities.Hand{Gems: gems}, nil
}

// finishBattle settles a terminal phase: reward on a win, persistence,
// events, and discarding the aggregate. Returns the reward granted.
func (o *orchestrator) finishBattle(ctx context.Context, battle *entities.Battle, outcome entities.BattlePhase) int32 {
	battle.Phase = outcome
	battle.Over = true

	var reward int32
	if outcome == entities.PhaseWon {
		reward = o.balance.VictoryReward
		if battle.Enemy.Identity == entities.EnemyWarden {
			reward = o.balance.BossReward
		}
		total := o.store.AddZenny(reward)
		o.store.SetDay(o.store.Day() + 1)
		o.bus.Publish(events.ZennyChanged{Total: total})
	}

	o.saveProficiency(ctx)
	o.saveProgress(ctx)
	o.saveGameSnapshot(ctx)
	o.deleteHandSnapshot(ctx)

	slog.InfoContext(ctx, "battle ended",
		"battle_id", battle.ID,
		"outcome", string(outcome),
		"enemy", battle.Enemy.Identity,
		"reward", reward,
	)

	o.bus.Publish(events.BattleEnded{
		BattleID:      battle.ID,
		Outcome:       outcome,
		EnemyIdentity: battle.Enemy.Identity,
		Reward:        reward,
	})

	screen := entities.ScreenSelect
	if outcome == entities.PhaseWon {
		screen = entities.ScreenDayEnd
	}
	o.bus.Publish(events.ScreenChange{Screen: screen})

	o.store.ClearBattle()
	o.store.SetHand(entities.Hand{})
	o.store.ClearSelection()

	return reward
}

// saveProficiency persists the class table; a failed save degrades to
// in-memory state
func (o *orchestrator) saveProficiency(ctx context.Context) {
	if o.table == nil {
		return
	}
	_, err := o.profRepo.Save(ctx, proficiency.SaveInput{
		Class:   o.table.Class(),
		Records: o.table.Records(),
	})
	if err != nil {
		slog.WarnContext(ctx, "failed to save proficiency records, continuing",
			"class", o.table.Class(),
			"error", err,
		)
	}
}

func (o *orchestrator) saveProgress(ctx context.Context) {
	_, err := o.progRepo.SaveProgress(ctx, progress.SaveProgressInput{
		Progress: &progress.Progress{
			Zenny:    o.store.Zenny(),
			Day:      o.store.Day(),
			DayPhase: o.store.DayPhase(),
		},
	})
	if err != nil {
		slog.WarnContext(ctx, "failed to save progression, continuing", "error", err)
	}
}

func (o *orchestrator) saveHandSnapshot(ctx context.Context) {
	hand := o.store.Hand()
	if hand.Len() == 0 {
		return
	}
	if _, err := o.snapRepo.SaveHand(ctx, snapshot.SaveHandInput{Hand: hand}); err != nil {
		slog.WarnContext(ctx, "failed to preserve hand, continuing", "error", err)
	}
}

func (o *orchestrator) deleteHandSnapshot(ctx context.Context) {
	if _, err := o.snapRepo.DeleteHand(ctx, snapshot.DeleteHandInput{}); err != nil {
		slog.WarnContext(ctx, "failed to discard preserved hand, continuing", "error", err)
	}
}

// saveGameSnapshot records the durable slice of the game state
func (o *orchestrator) saveGameSnapshot(ctx context.Context) {
	state, err := json.Marshal(map[string]any{
		"class":     o.store.Class(),
		"day":       o.store.Day(),
		"day_phase": o.store.DayPhase(),
		"zenny":     o.store.Zenny(),
	})
	if err != nil {
		slog.WarnContext(ctx, "failed to serialize game snapshot, continuing", "error", err)
		return
	}
	if _, err := o.snapRepo.SaveGameState(ctx, snapshot.SaveGameStateInput{State: string(state)}); err != nil {
		slog.WarnContext(ctx, "failed to save game snapshot, continuing", "error", err)
	}
}

func scaleStat(base int32, growth float64, day int32) int32 {
	scaled := float64(base) * math.Pow(growth, float64(day-1))
	return int32(math.Round(scaled))
}

func clampMin0(v int32) int32 {
	if v < 0 {
		return 0
	}
	return v
}
