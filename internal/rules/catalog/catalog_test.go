package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/gem-battle/internal/entities"
	"github.com/KirkDiggler/gem-battle/internal/errors"
	"github.com/KirkDiggler/gem-battle/internal/rules/catalog"
)

func TestReconcile_GuaranteesBasicsAndSignature(t *testing.T) {
	c := catalog.Reconcile(entities.ClassThief, nil)

	for _, key := range entities.BasicGemKeys() {
		assert.True(t, c.IsUnlocked(key), "basic gem %s must be unlocked", key)
	}
	assert.True(t, c.IsUnlocked(entities.GemAmbush), "signature gem must be unlocked")
	assert.False(t, c.IsUnlocked(entities.GemCleave), "another class's signature stays locked")
}

func TestReconcile_DropsUnregisteredKeys(t *testing.T) {
	c := catalog.Reconcile(entities.ClassKnight, []string{"GEM_FROM_OLD_SAVE", entities.GemSmite})

	assert.True(t, c.IsUnlocked(entities.GemSmite))
	assert.False(t, c.IsUnlocked("GEM_FROM_OLD_SAVE"))
}

func TestDefinitionOf_UnknownKeyIsInternal(t *testing.T) {
	_, err := catalog.DefinitionOf("GEM_BOGUS")
	require.Error(t, err)
	assert.True(t, errors.IsInternal(err))
}

func TestDefinitionOf_KnownKey(t *testing.T) {
	def, err := catalog.DefinitionOf(entities.GemStrike)
	require.NoError(t, err)
	assert.Equal(t, entities.GemKindAttack, def.Kind)
	assert.Equal(t, int32(5), def.Damage)
	assert.Equal(t, int32(2), def.StaminaCost)
}

func TestUnlock_CapacityAndDuplicates(t *testing.T) {
	c := catalog.Reconcile(entities.ClassMage, nil)

	err := c.Unlock(entities.GemSmite)
	require.NoError(t, err)

	err = c.Unlock(entities.GemSmite)
	assert.True(t, errors.IsAlreadyExists(err))

	// Fill to capacity: registry has exactly DefaultCapacity gems
	for _, key := range []string{
		entities.GemCleave, entities.GemAmbush, entities.GemSurge,
		entities.GemBulwark, entities.GemToxin, entities.GemMeditate,
		entities.GemRend, entities.GemSalve, entities.GemAegis,
	} {
		require.NoError(t, c.Unlock(key))
	}

	err = c.Unlock("GEM_BOGUS")
	assert.True(t, errors.IsInternal(err), "unknown keys fail loudly before the capacity check")
}

func TestUnlockedKeys_SortedAndComplete(t *testing.T) {
	c := catalog.Reconcile(entities.ClassKnight, []string{entities.GemAegis})

	keys := c.UnlockedKeys()
	assert.Len(t, keys, 6) // 4 basics + signature + 1 loaded
	assert.IsIncreasing(t, keys)
}
