package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/gem-battle/internal/config"
	"github.com/KirkDiggler/gem-battle/internal/entities"
	"github.com/KirkDiggler/gem-battle/internal/events"
	"github.com/KirkDiggler/gem-battle/internal/gamestate"
	battleorch "github.com/KirkDiggler/gem-battle/internal/orchestrators/battle"
	"github.com/KirkDiggler/gem-battle/internal/pkg/clock"
	"github.com/KirkDiggler/gem-battle/internal/pkg/idgen"
	redisclient "github.com/KirkDiggler/gem-battle/internal/redis"
	proficiencyrepo "github.com/KirkDiggler/gem-battle/internal/repositories/proficiency"
	progressrepo "github.com/KirkDiggler/gem-battle/internal/repositories/progress"
	snapshotrepo "github.com/KirkDiggler/gem-battle/internal/repositories/snapshot"
	"github.com/KirkDiggler/gem-battle/internal/rules/resolution"
	"github.com/KirkDiggler/gem-battle/internal/rules/selection"
)

var (
	demoBattles int
	demoClass   string
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run scripted battles",
	Long:  `Run a sequence of auto-played battles against the day schedule, persisting proficiency and progression between them.`,
	RunE:  runDemo,
}

func init() {
	demoCmd.Flags().IntVar(&demoBattles, "battles", 3, "number of battles to play")
	demoCmd.Flags().StringVar(&demoClass, "class", entities.ClassKnight, "player class")
}

func runDemo(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	setupLogging(cfg.LogLevel)

	profRepo, progRepo, snapRepo := buildRepositories(ctx, cfg)

	reg := prometheus.NewRegistry()
	bus := events.WithStats(events.NewBus(), reg)
	startMetricsServer(cfg.MetricsAddr, reg)
	subscribeDemoLogging(bus)

	store := gamestate.New()
	restoreGameState(ctx, snapRepo, store)

	resolver, err := resolution.New(&resolution.Config{Roller: dice.DefaultRoller})
	if err != nil {
		return err
	}
	selManager, err := selection.New(&selection.Config{Store: store, Bus: bus})
	if err != nil {
		return err
	}
	orch, err := battleorch.NewOrchestrator(&battleorch.Config{
		Store:            store,
		Bus:              bus,
		Roller:           dice.DefaultRoller,
		Resolver:         resolver,
		SelectionManager: selManager,
		ProficiencyRepo:  profRepo,
		ProgressRepo:     progRepo,
		SnapshotRepo:     snapRepo,
		IDGenerator:      idgen.NewPrefixed("battle_"),
		Balance:          cfg.Balance,
	})
	if err != nil {
		return err
	}

	for i := 0; i < demoBattles; i++ {
		if err := playBattle(ctx, orch, store); err != nil {
			return err
		}
	}

	slog.Info("demo finished",
		"battles", demoBattles,
		"day", store.Day(),
		"zenny", store.Zenny(),
	)
	return nil
}

// playBattle runs one battle with a greedy auto-player: select everything,
// execute, let the enemy act, repeat until a terminal phase.
func playBattle(ctx context.Context, orch battleorch.Service, store *gamestate.Store) error {
	out, err := orch.StartBattle(ctx, &battleorch.StartBattleInput{Class: demoClass})
	if err != nil {
		return err
	}

	// Terminal phases clear the battle from the store
	for turn := 0; store.Battle() != nil; turn++ {
		if turn > 200 {
			slog.Warn("battle ran too long, fleeing", "battle_id", out.Battle.ID)
			_, err := orch.Flee(ctx, &battleorch.FleeInput{})
			return err
		}

		switch store.Battle().Phase {
		case entities.PhasePlayerTurn:
			for i := 0; i < store.Hand().Len(); i++ {
				if _, err := orch.ToggleGem(ctx, &battleorch.ToggleGemInput{Index: i}); err != nil {
					return err
				}
			}
			if _, err := orch.ExecuteSelection(ctx, &battleorch.ExecuteSelectionInput{}); err != nil {
				return err
			}
		case entities.PhaseEnemyTurn:
			if _, err := orch.ProcessEnemyTurn(ctx, &battleorch.ProcessEnemyTurnInput{}); err != nil {
				return err
			}
		}
	}

	return nil
}

func setupLogging(level string) {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})
	slog.SetDefault(slog.New(handler))
}

// buildRepositories connects to Redis, falling back to in-memory storage
// when the backend is unreachable. Gameplay never depends on persistence.
func buildRepositories(ctx context.Context, cfg *config.Config) (proficiencyrepo.Repository, progressrepo.Repository, snapshotrepo.Repository) {
	clk := clock.New()

	if cfg.RedisAddr != "" {
		client, err := redisclient.NewClient(cfg.RedisAddr, nil)
		if err == nil {
			pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
			defer cancel()
			err = client.Ping(pingCtx).Err()
		}
		if err == nil {
			profRepo, profErr := proficiencyrepo.NewRedisRepository(&proficiencyrepo.Config{Client: client})
			progRepo, progErr := progressrepo.NewRedisRepository(&progressrepo.Config{Client: client})
			snapRepo, snapErr := snapshotrepo.NewRedisRepository(&snapshotrepo.Config{Client: client, Clock: clk})
			if profErr == nil && progErr == nil && snapErr == nil {
				slog.Info("using redis persistence", "addr", cfg.RedisAddr)
				return profRepo, progRepo, snapRepo
			}
		}
		slog.Warn("redis unreachable, using in-memory storage", "addr", cfg.RedisAddr, "error", err)
	}

	return proficiencyrepo.NewInMemory(), progressrepo.NewInMemory(), snapshotrepo.NewInMemory(clk)
}

// restoreGameState seeds the store from the saved snapshot when a fresh
// enough one exists
func restoreGameState(ctx context.Context, repo snapshotrepo.Repository, store *gamestate.Store) {
	out, err := repo.GetGameState(ctx, snapshotrepo.GetGameStateInput{})
	if err != nil {
		slog.Info("no usable snapshot, starting fresh", "reason", err)
		return
	}

	var state struct {
		Class    string `json:"class"`
		Day      int32  `json:"day"`
		DayPhase int32  `json:"day_phase"`
		Zenny    int32  `json:"zenny"`
	}
	if err := json.Unmarshal([]byte(out.Snapshot.State), &state); err != nil {
		slog.Warn("snapshot is unreadable, starting fresh", "error", err)
		return
	}

	store.SetClass(state.Class)
	store.SetDay(state.Day)
	store.SetDayPhase(state.DayPhase)
	store.SetZenny(state.Zenny)
	slog.Info("restored game snapshot",
		"saved_at", out.Snapshot.SavedAt,
		"day", state.Day,
		"zenny", state.Zenny,
	)
}

func startMetricsServer(addr string, reg *prometheus.Registry) {
	if addr == "" {
		return
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	go func() {
		if err := http.ListenAndServe(addr, mux); err != nil {
			slog.Warn("metrics server stopped", "error", err)
		}
	}()
}

// subscribeDemoLogging narrates engine events to the log
func subscribeDemoLogging(bus events.Bus) {
	bus.Subscribe(events.TypeBattleStarted, func(e events.Event) {
		started := e.(events.BattleStarted)
		slog.Info("encounter",
			"battle_id", started.BattleID,
			"day", started.Day,
			"enemy", started.Enemy.Identity,
			"enemy_health", started.Enemy.Health,
		)
	})
	bus.Subscribe(events.TypeGemResolved, func(e events.Event) {
		resolved := e.(events.GemResolved)
		slog.Debug("gem resolved",
			"gem", resolved.Effect.GemKey,
			"succeeded", resolved.Effect.Succeeded,
			"skipped", resolved.Effect.Skipped,
			"damage", resolved.Effect.DamageToEnemy,
		)
	})
	bus.Subscribe(events.TypeBattleEnded, func(e events.Event) {
		ended := e.(events.BattleEnded)
		slog.Info("outcome",
			"battle_id", ended.BattleID,
			"result", string(ended.Outcome),
			"enemy", ended.EnemyIdentity,
			"reward", ended.Reward,
		)
	})
	bus.Subscribe(events.TypeZennyChanged, func(e events.Event) {
		slog.Info("zenny", "total", e.(events.ZennyChanged).Total)
	})
	bus.Subscribe(events.TypeScreenChange, func(e events.Event) {
		slog.Debug("screen", "next", e.(events.ScreenChange).Screen)
	})
}
