package battle_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/gem-battle/internal/config"
	"github.com/KirkDiggler/gem-battle/internal/entities"
	"github.com/KirkDiggler/gem-battle/internal/errors"
	"github.com/KirkDiggler/gem-battle/internal/events"
	"github.com/KirkDiggler/gem-battle/internal/gamestate"
	battleorch "github.com/KirkDiggler/gem-battle/internal/orchestrators/battle"
	"github.com/KirkDiggler/gem-battle/internal/pkg/idgen"
	proficiencyrepo "github.com/KirkDiggler/gem-battle/internal/repositories/proficiency"
	proficiencymock "github.com/KirkDiggler/gem-battle/internal/repositories/proficiency/mock"
	progressrepo "github.com/KirkDiggler/gem-battle/internal/repositories/progress"
	progressmock "github.com/KirkDiggler/gem-battle/internal/repositories/progress/mock"
	snapshotrepo "github.com/KirkDiggler/gem-battle/internal/repositories/snapshot"
	snapshotmock "github.com/KirkDiggler/gem-battle/internal/repositories/snapshot/mock"
	"github.com/KirkDiggler/gem-battle/internal/rules/resolution"
	"github.com/KirkDiggler/gem-battle/internal/rules/selection"
)

// scriptedRoller returns queued rolls in order
type scriptedRoller struct {
	rolls []int
}

func (r *scriptedRoller) Roll(_ int) (int, error) {
	if len(r.rolls) == 0 {
		return 0, errors.Internal("scripted roller exhausted")
	}
	roll := r.rolls[0]
	r.rolls = r.rolls[1:]
	return roll, nil
}

func (r *scriptedRoller) RollN(count, size int) ([]int, error) {
	out := make([]int, 0, count)
	for i := 0; i < count; i++ {
		roll, err := r.Roll(size)
		if err != nil {
			return nil, err
		}
		out = append(out, roll)
	}
	return out, nil
}

func (r *scriptedRoller) script(rolls ...int) {
	r.rolls = append(r.rolls, rolls...)
}

// Hand rolls against a fresh Knight catalog, whose sorted unlocked keys
// are CLEAVE, FOCUS, MEND, STRIKE, WARD.
const (
	rollCleave = 1
	rollFocus  = 2
	rollMend   = 3
	rollStrike = 4
	rollWard   = 5
)

type OrchestratorTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	store    *gamestate.Store
	bus      events.Bus
	roller   *scriptedRoller
	profRepo *proficiencymock.MockRepository
	progRepo *progressmock.MockRepository
	snapRepo *snapshotmock.MockRepository

	orch battleorch.Service
	ctx  context.Context

	published []events.Event
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.ctx = context.Background()

	s.store = gamestate.New()
	s.bus = events.NewBus()
	s.roller = &scriptedRoller{}
	s.profRepo = proficiencymock.NewMockRepository(s.ctrl)
	s.progRepo = progressmock.NewMockRepository(s.ctrl)
	s.snapRepo = snapshotmock.NewMockRepository(s.ctrl)

	// Nothing persisted yet; saves succeed silently
	s.profRepo.EXPECT().Get(gomock.Any(), gomock.Any()).
		Return(nil, errors.NotFound("no proficiency records for class")).AnyTimes()
	s.profRepo.EXPECT().Save(gomock.Any(), gomock.Any()).
		Return(&proficiencyrepo.SaveOutput{}, nil).AnyTimes()
	s.progRepo.EXPECT().GetUnlocks(gomock.Any(), gomock.Any()).
		Return(nil, errors.NotFound("no unlocks for class")).AnyTimes()
	s.progRepo.EXPECT().SaveProgress(gomock.Any(), gomock.Any()).
		Return(&progressrepo.SaveProgressOutput{}, nil).AnyTimes()
	s.snapRepo.EXPECT().SaveHand(gomock.Any(), gomock.Any()).
		Return(&snapshotrepo.SaveHandOutput{}, nil).AnyTimes()
	s.snapRepo.EXPECT().SaveGameState(gomock.Any(), gomock.Any()).
		Return(&snapshotrepo.SaveGameStateOutput{}, nil).AnyTimes()
	s.snapRepo.EXPECT().DeleteHand(gomock.Any(), gomock.Any()).
		Return(&snapshotrepo.DeleteHandOutput{}, nil).AnyTimes()

	s.published = nil
	for _, eventType := range []events.Type{
		events.TypeBattleStarted,
		events.TypeGemResolved,
		events.TypeBattleEnded,
		events.TypeScreenChange,
		events.TypeZennyChanged,
	} {
		s.bus.Subscribe(eventType, func(e events.Event) {
			s.published = append(s.published, e)
		})
	}

	s.orch = s.newOrchestrator()
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *OrchestratorTestSuite) newOrchestrator() battleorch.Service {
	resolver, err := resolution.New(&resolution.Config{Roller: s.roller})
	s.Require().NoError(err)

	selManager, err := selection.New(&selection.Config{Store: s.store, Bus: s.bus})
	s.Require().NoError(err)

	orch, err := battleorch.NewOrchestrator(&battleorch.Config{
		Store:            s.store,
		Bus:              s.bus,
		Roller:           s.roller,
		Resolver:         resolver,
		SelectionManager: selManager,
		ProficiencyRepo:  s.profRepo,
		ProgressRepo:     s.progRepo,
		SnapshotRepo:     s.snapRepo,
		IDGenerator:      idgen.NewSequential("battle_"),
		Balance:          config.New().Balance,
	})
	s.Require().NoError(err)
	return orch
}

// startKnightBattle opens a day-1 battle with an all-Strike hand
func (s *OrchestratorTestSuite) startKnightBattle() *battleorch.StartBattleOutput {
	s.roller.script(1) // enemy identity
	s.roller.script(rollStrike, rollStrike, rollStrike, rollStrike, rollStrike)

	out, err := s.orch.StartBattle(s.ctx, &battleorch.StartBattleInput{Class: entities.ClassKnight})
	s.Require().NoError(err)
	return out
}

func (s *OrchestratorTestSuite) eventsOfType(eventType events.Type) []events.Event {
	var out []events.Event
	for _, e := range s.published {
		if e.EventType() == eventType {
			out = append(out, e)
		}
	}
	return out
}

func (s *OrchestratorTestSuite) TestStartBattleDealsHandAndScalesEnemy() {
	out := s.startKnightBattle()

	s.Equal(entities.PhasePlayerTurn, out.Battle.Phase)
	s.Equal(entities.EnemySlime, out.Battle.Enemy.Identity)
	s.Equal(int32(10), out.Battle.Enemy.Health)
	s.Equal(int32(3), out.Battle.Enemy.Attack)
	s.Equal(int32(20), out.Battle.Player.Health)
	s.Equal(int32(10), out.Battle.Player.Stamina)
	s.Equal(5, out.Hand.Len())

	started := s.eventsOfType(events.TypeBattleStarted)
	s.Require().Len(started, 1)
	s.Equal(out.Battle.ID, started[0].(events.BattleStarted).BattleID)
}

func (s *OrchestratorTestSuite) TestStartBattleRejectsUnknownClass() {
	_, err := s.orch.StartBattle(s.ctx, &battleorch.StartBattleInput{Class: "CLASS_BARD"})
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestStartBattleRejectsSecondBattle() {
	s.startKnightBattle()

	_, err := s.orch.StartBattle(s.ctx, &battleorch.StartBattleInput{Class: entities.ClassKnight})
	s.True(errors.IsFailedPrecondition(err))
}

func (s *OrchestratorTestSuite) TestThirdDaySpawnsWarden() {
	s.store.SetDay(3)
	s.roller.script(rollStrike, rollStrike, rollStrike, rollStrike, rollStrike)

	out, err := s.orch.StartBattle(s.ctx, &battleorch.StartBattleInput{Class: entities.ClassKnight})
	s.Require().NoError(err)

	s.Equal(entities.EnemyWarden, out.Battle.Enemy.Identity)
	// 10 * 1.25^2 and 3 * 1.15^2, rounded
	s.Equal(int32(16), out.Battle.Enemy.Health)
	s.Equal(int32(4), out.Battle.Enemy.Attack)
}

// Scenario: a Knight at full Strike proficiency one-shots a 5-health
// enemy and collects the flat reward.
func (s *OrchestratorTestSuite) TestSingleAttackVictory() {
	out := s.startKnightBattle()
	battle := out.Battle
	battle.Player.Health = 10
	battle.Enemy.Health = 5
	battle.Enemy.MaxHealth = 5

	_, err := s.orch.ToggleGem(s.ctx, &battleorch.ToggleGemInput{Index: 0})
	s.Require().NoError(err)

	execOut, err := s.orch.ExecuteSelection(s.ctx, &battleorch.ExecuteSelectionInput{})
	s.Require().NoError(err)

	s.Equal(entities.PhaseWon, execOut.Phase)
	s.Equal(int32(5), execOut.Batch.TotalEnemyDamage)
	s.Equal(int32(0), battle.Enemy.Health)
	s.Equal(int32(10), execOut.Reward)
	s.Equal(int32(10), s.store.Zenny())
	s.Equal(int32(2), s.store.Day())
	s.Nil(s.store.Battle())

	ended := s.eventsOfType(events.TypeBattleEnded)
	s.Require().Len(ended, 1)
	s.Equal(entities.PhaseWon, ended[0].(events.BattleEnded).Outcome)
	s.Equal(int32(10), ended[0].(events.BattleEnded).Reward)

	screens := s.eventsOfType(events.TypeScreenChange)
	s.Require().Len(screens, 1)
	s.Equal(entities.ScreenDayEnd, screens[0].(events.ScreenChange).Screen)
}

func (s *OrchestratorTestSuite) TestWardenVictoryPaysBossReward() {
	s.store.SetDay(3)
	s.roller.script(rollStrike, rollStrike, rollStrike, rollStrike, rollStrike)

	out, err := s.orch.StartBattle(s.ctx, &battleorch.StartBattleInput{Class: entities.ClassKnight})
	s.Require().NoError(err)
	out.Battle.Enemy.Health = 5

	_, err = s.orch.ToggleGem(s.ctx, &battleorch.ToggleGemInput{Index: 0})
	s.Require().NoError(err)

	execOut, err := s.orch.ExecuteSelection(s.ctx, &battleorch.ExecuteSelectionInput{})
	s.Require().NoError(err)

	s.Equal(entities.PhaseWon, execOut.Phase)
	s.Equal(int32(50), execOut.Reward)
	s.Equal(int32(50), s.store.Zenny())
}

// A batch that kills both sides resolves as a loss
func (s *OrchestratorTestSuite) TestMutualKillResolvesLost() {
	out := s.startKnightBattle()
	battle := out.Battle
	battle.Player.Health = 3
	battle.Player.Poison.Apply(5, 1)
	battle.Enemy.Health = 2

	_, err := s.orch.ToggleGem(s.ctx, &battleorch.ToggleGemInput{Index: 0})
	s.Require().NoError(err)

	execOut, err := s.orch.ExecuteSelection(s.ctx, &battleorch.ExecuteSelectionInput{})
	s.Require().NoError(err)

	s.Equal(entities.PhaseLost, execOut.Phase)
	s.Equal(int32(0), battle.Player.Health)
	s.Equal(int32(0), battle.Enemy.Health)
	s.Equal(int32(0), execOut.Reward)
	s.Equal(int32(0), s.store.Zenny())

	screens := s.eventsOfType(events.TypeScreenChange)
	s.Require().Len(screens, 1)
	s.Equal(entities.ScreenSelect, screens[0].(events.ScreenChange).Screen)
}

func (s *OrchestratorTestSuite) TestExecuteSelectionRequiresSelection() {
	s.startKnightBattle()

	_, err := s.orch.ExecuteSelection(s.ctx, &battleorch.ExecuteSelectionInput{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestExecuteSelectionEmitsPerGemEvents() {
	out := s.startKnightBattle()
	out.Battle.Enemy.Health = 100
	out.Battle.Enemy.MaxHealth = 100

	_, err := s.orch.ToggleGem(s.ctx, &battleorch.ToggleGemInput{Index: 0})
	s.Require().NoError(err)
	_, err = s.orch.ToggleGem(s.ctx, &battleorch.ToggleGemInput{Index: 2})
	s.Require().NoError(err)

	execOut, err := s.orch.ExecuteSelection(s.ctx, &battleorch.ExecuteSelectionInput{})
	s.Require().NoError(err)

	s.Equal(entities.PhaseEnemyTurn, execOut.Phase)
	resolved := s.eventsOfType(events.TypeGemResolved)
	s.Require().Len(resolved, 2)
	s.Equal(0, resolved[0].(events.GemResolved).Effect.Index)
	s.Equal(2, resolved[1].(events.GemResolved).Effect.Index)

	// The batch consumed two gems and cleared the selection
	s.Equal(3, s.store.Hand().Len())
	s.Empty(s.store.Selection())
}

func (s *OrchestratorTestSuite) TestWaitSkipsToEnemyTurn() {
	out := s.startKnightBattle()

	waitOut, err := s.orch.Wait(s.ctx, &battleorch.WaitInput{})
	s.Require().NoError(err)

	s.Equal(entities.PhaseEnemyTurn, waitOut.Phase)
	s.Equal(entities.PhaseEnemyTurn, out.Battle.Phase)
}

func (s *OrchestratorTestSuite) TestFleeDiscardsBattleWithoutReward() {
	out := s.startKnightBattle()

	fleeOut, err := s.orch.Flee(s.ctx, &battleorch.FleeInput{})
	s.Require().NoError(err)

	s.Equal(entities.PhaseFled, fleeOut.Phase)
	s.Nil(s.store.Battle())
	s.Equal(int32(0), s.store.Zenny())
	s.Equal(int32(1), s.store.Day())

	ended := s.eventsOfType(events.TypeBattleEnded)
	s.Require().Len(ended, 1)
	s.Equal(entities.PhaseFled, ended[0].(events.BattleEnded).Outcome)
	s.Equal(out.Battle.ID, ended[0].(events.BattleEnded).BattleID)
}

func (s *OrchestratorTestSuite) TestEnemyTurnAttacksThroughShield() {
	out := s.startKnightBattle()
	battle := out.Battle
	battle.Player.Shield.Apply(2, 2)

	_, err := s.orch.Wait(s.ctx, &battleorch.WaitInput{})
	s.Require().NoError(err)

	s.roller.script(rollMend, rollMend, rollMend, rollMend, rollMend) // next hand
	turnOut, err := s.orch.ProcessEnemyTurn(s.ctx, &battleorch.ProcessEnemyTurnInput{})
	s.Require().NoError(err)

	s.Equal(entities.PhasePlayerTurn, turnOut.Phase)
	s.Equal(int32(1), turnOut.DamageToPlayer) // attack 3 through shield 2
	s.Equal(int32(19), battle.Player.Health)
	s.Equal(int32(1), battle.Player.Shield.TurnsLeft)
	s.Equal(5, turnOut.Hand.Len())
	s.Equal(entities.GemMend, turnOut.Hand.Gems[0].Key)
}

func (s *OrchestratorTestSuite) TestEnemyTurnCanLoseTheBattle() {
	out := s.startKnightBattle()
	out.Battle.Player.Health = 2

	_, err := s.orch.Wait(s.ctx, &battleorch.WaitInput{})
	s.Require().NoError(err)

	turnOut, err := s.orch.ProcessEnemyTurn(s.ctx, &battleorch.ProcessEnemyTurnInput{})
	s.Require().NoError(err)

	s.Equal(entities.PhaseLost, turnOut.Phase)
	s.Equal(int32(0), out.Battle.Player.Health)
	s.Nil(s.store.Battle())
}

func (s *OrchestratorTestSuite) TestEnemyPoisonTicksOnItsTurn() {
	out := s.startKnightBattle()
	battle := out.Battle
	battle.Enemy.Poison.Apply(3, 2)

	_, err := s.orch.Wait(s.ctx, &battleorch.WaitInput{})
	s.Require().NoError(err)

	s.roller.script(rollStrike, rollStrike, rollStrike, rollStrike, rollStrike)
	turnOut, err := s.orch.ProcessEnemyTurn(s.ctx, &battleorch.ProcessEnemyTurnInput{})
	s.Require().NoError(err)

	s.Equal(int32(3), turnOut.EnemyPoisonDamage)
	s.Equal(int32(7), battle.Enemy.Health)
	s.Equal(int32(1), battle.Enemy.Poison.TurnsLeft)
}

func (s *OrchestratorTestSuite) TestPoisonCanWinOnEnemyTurn() {
	out := s.startKnightBattle()
	battle := out.Battle
	battle.Enemy.Health = 2
	battle.Enemy.Poison.Apply(3, 1)

	_, err := s.orch.Wait(s.ctx, &battleorch.WaitInput{})
	s.Require().NoError(err)

	turnOut, err := s.orch.ProcessEnemyTurn(s.ctx, &battleorch.ProcessEnemyTurnInput{})
	s.Require().NoError(err)

	s.Equal(entities.PhaseWon, turnOut.Phase)
	s.Equal(int32(0), battle.Enemy.Health)
	// The dead enemy never swung
	s.Equal(int32(0), turnOut.DamageToPlayer)
	s.Equal(int32(20), battle.Player.Health)
	s.Equal(int32(10), s.store.Zenny())
}

func (s *OrchestratorTestSuite) TestWardenAttackPoisonsPlayer() {
	out := s.startKnightBattle()
	battle := out.Battle
	battle.Enemy.Identity = entities.EnemyWarden

	_, err := s.orch.Wait(s.ctx, &battleorch.WaitInput{})
	s.Require().NoError(err)

	s.roller.script(rollStrike, rollStrike, rollStrike, rollStrike, rollStrike)
	_, err = s.orch.ProcessEnemyTurn(s.ctx, &battleorch.ProcessEnemyTurnInput{})
	s.Require().NoError(err)

	s.True(battle.Player.Poison.Active())
	s.Equal(int32(1), battle.Player.Poison.Magnitude)
	s.Equal(int32(2), battle.Player.Poison.TurnsLeft)
}

func (s *OrchestratorTestSuite) TestToggleGemOutsidePlayerTurn() {
	_, err := s.orch.ToggleGem(s.ctx, &battleorch.ToggleGemInput{Index: 0})
	s.True(errors.IsFailedPrecondition(err))

	s.startKnightBattle()
	_, err = s.orch.Wait(s.ctx, &battleorch.WaitInput{})
	s.Require().NoError(err)

	_, err = s.orch.ToggleGem(s.ctx, &battleorch.ToggleGemInput{Index: 0})
	s.True(errors.IsFailedPrecondition(err))
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

// Persistence failures must never surface to gameplay
type OrchestratorDegradedStorageTestSuite struct {
	suite.Suite
	ctrl  *gomock.Controller
	store *gamestate.Store
	orch  battleorch.Service
	ctx   context.Context

	roller *scriptedRoller
}

func (s *OrchestratorDegradedStorageTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.ctx = context.Background()
	s.store = gamestate.New()
	s.roller = &scriptedRoller{}

	profRepo := proficiencymock.NewMockRepository(s.ctrl)
	progRepo := progressmock.NewMockRepository(s.ctrl)
	snapRepo := snapshotmock.NewMockRepository(s.ctrl)

	unavailable := errors.Unavailable("backend down")
	profRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, unavailable).AnyTimes()
	profRepo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil, unavailable).AnyTimes()
	progRepo.EXPECT().GetUnlocks(gomock.Any(), gomock.Any()).Return(nil, unavailable).AnyTimes()
	progRepo.EXPECT().SaveProgress(gomock.Any(), gomock.Any()).Return(nil, unavailable).AnyTimes()
	snapRepo.EXPECT().SaveHand(gomock.Any(), gomock.Any()).Return(nil, unavailable).AnyTimes()
	snapRepo.EXPECT().SaveGameState(gomock.Any(), gomock.Any()).Return(nil, unavailable).AnyTimes()
	snapRepo.EXPECT().DeleteHand(gomock.Any(), gomock.Any()).Return(nil, unavailable).AnyTimes()

	bus := events.NewBus()
	resolver, err := resolution.New(&resolution.Config{Roller: s.roller})
	s.Require().NoError(err)
	selManager, err := selection.New(&selection.Config{Store: s.store, Bus: bus})
	s.Require().NoError(err)

	s.orch, err = battleorch.NewOrchestrator(&battleorch.Config{
		Store:            s.store,
		Bus:              bus,
		Roller:           s.roller,
		Resolver:         resolver,
		SelectionManager: selManager,
		ProficiencyRepo:  profRepo,
		ProgressRepo:     progRepo,
		SnapshotRepo:     snapRepo,
		IDGenerator:      idgen.NewSequential("battle_"),
		Balance:          config.New().Balance,
	})
	s.Require().NoError(err)
}

func (s *OrchestratorDegradedStorageTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *OrchestratorDegradedStorageTestSuite) TestBattleCompletesWithoutStorage() {
	s.roller.script(1)
	s.roller.script(rollStrike, rollStrike, rollStrike, rollStrike, rollStrike)

	out, err := s.orch.StartBattle(s.ctx, &battleorch.StartBattleInput{Class: entities.ClassKnight})
	s.Require().NoError(err)
	out.Battle.Enemy.Health = 5

	_, err = s.orch.ToggleGem(s.ctx, &battleorch.ToggleGemInput{Index: 0})
	s.Require().NoError(err)

	execOut, err := s.orch.ExecuteSelection(s.ctx, &battleorch.ExecuteSelectionInput{})
	s.Require().NoError(err)

	s.Equal(entities.PhaseWon, execOut.Phase)
	s.Equal(int32(10), s.store.Zenny())
}

func TestOrchestratorDegradedStorageSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorDegradedStorageTestSuite))
}
