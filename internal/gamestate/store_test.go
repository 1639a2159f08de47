package gamestate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/gem-battle/internal/entities"
	"github.com/KirkDiggler/gem-battle/internal/gamestate"
)

func TestZennyAccumulates(t *testing.T) {
	store := gamestate.New()

	assert.Equal(t, int32(0), store.Zenny())
	assert.Equal(t, int32(10), store.AddZenny(10))
	assert.Equal(t, int32(60), store.AddZenny(50))
	assert.Equal(t, int32(60), store.Zenny())
}

func TestSelectionIsCopied(t *testing.T) {
	store := gamestate.New()
	store.SetSelection([]int{0, 2})

	got := store.Selection()
	got[0] = 99

	assert.Equal(t, []int{0, 2}, store.Selection())
}

func TestClearSelection(t *testing.T) {
	store := gamestate.New()
	store.SetSelection([]int{1})
	store.ClearSelection()

	assert.Empty(t, store.Selection())
}

func TestHandIsMutableInPlace(t *testing.T) {
	store := gamestate.New()
	store.SetHand(entities.Hand{Gems: []entities.Gem{
		{Key: entities.GemStrike},
		{Key: entities.GemMend},
	}})

	store.Hand().Remove([]int{0})

	assert.Equal(t, 1, store.Hand().Len())
	gem, ok := store.Hand().At(0)
	assert.True(t, ok)
	assert.Equal(t, entities.GemMend, gem.Key)
}

func TestBattleLifecycle(t *testing.T) {
	store := gamestate.New()
	assert.Nil(t, store.Battle())

	battle := &entities.Battle{ID: "battle_1", Phase: entities.PhasePlayerTurn}
	store.SetBattle(battle)
	assert.Same(t, battle, store.Battle())

	store.ClearBattle()
	assert.Nil(t, store.Battle())
}
