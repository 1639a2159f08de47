package entities

// Effect records what a single selected gem did during resolution.
// One Effect is produced per selected gem, in ascending hand-index order,
// including gems that were skipped or failed their proficiency roll.
type Effect struct {
	Index  int // hand index the gem occupied when selected
	GemKey string
	Kind   GemKind

	Skipped   bool // stamina cost exceeded the remaining pool; nothing happened
	Succeeded bool // proficiency roll result

	DamageToEnemy   int32
	HealToPlayer    int32
	ShieldApplied   int32
	ShieldTurns     int32
	PoisonApplied   int32
	PoisonTurns     int32
	StaminaRestored int32
	StaminaSpent    int32
}

// EffectBatch is the ordered result of resolving one selection
type EffectBatch struct {
	Effects []Effect

	// Net deltas for logging and animation
	TotalEnemyDamage  int32
	TotalPlayerHeal   int32
	TotalStaminaSpent int32

	// Damage the player took from their own poison timer at batch start
	PlayerPoisonDamage int32
}
