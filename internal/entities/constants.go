package entities

// Class constants
const (
	ClassKnight = "CLASS_KNIGHT"
	ClassMage   = "CLASS_MAGE"
	ClassThief  = "CLASS_THIEF"
)

// Basic gem keys, guaranteed present for every class
const (
	GemStrike = "GEM_STRIKE"
	GemMend   = "GEM_MEND"
	GemWard   = "GEM_WARD"
	GemFocus  = "GEM_FOCUS"
)

// Class signature gem keys
const (
	GemCleave = "GEM_CLEAVE" // Knight
	GemVenom  = "GEM_VENOM"  // Mage
	GemAmbush = "GEM_AMBUSH" // Thief
)

// Advanced gem keys, unlockable through progression
const (
	GemSmite    = "GEM_SMITE"
	GemSurge    = "GEM_SURGE"
	GemBulwark  = "GEM_BULWARK"
	GemToxin    = "GEM_TOXIN"
	GemMeditate = "GEM_MEDITATE"
	GemRend     = "GEM_REND"
	GemSalve    = "GEM_SALVE"
	GemAegis    = "GEM_AEGIS"
)

// Enemy identity constants
const (
	EnemySlime  = "ENEMY_SLIME"
	EnemyGhoul  = "ENEMY_GHOUL"
	EnemyBandit = "ENEMY_BANDIT"
	EnemyWarden = "ENEMY_WARDEN" // mini-boss
)

// BasicGemKeys returns the four gem keys every class always has
func BasicGemKeys() []string {
	return []string{GemStrike, GemMend, GemWard, GemFocus}
}

// SignatureGem returns the signature gem key for a class, or "" for an
// unknown class
func SignatureGem(class string) string {
	switch class {
	case ClassKnight:
		return GemCleave
	case ClassMage:
		return GemVenom
	case ClassThief:
		return GemAmbush
	default:
		return ""
	}
}

// Screen identifiers for transition requests
const (
	ScreenSelect = "SCREEN_SELECT"
	ScreenBattle = "SCREEN_BATTLE"
	ScreenShop   = "SCREEN_SHOP"
	ScreenDayEnd = "SCREEN_DAY_END"
)
