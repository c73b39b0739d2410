package settings

import (
	"strings"

	apperrors "github.com/ctjot/seedgen/internal/platform/errors"
)

// Canonical wire strings use the upstream enum spelling, e.g.
// "GameMode.STANDARD" or "GameFlags.FIX_GLITCH". The symbolic keys used
// in Go code and in form element ids are lowercase snake_case; the
// catalog maps between the two.

const (
	gameModePrefix   = "GameMode."
	difficultyPrefix = "Difficulty."
	techOrderPrefix  = "TechOrder."
	shopPricesPrefix = "ShopPrices."
	gameFlagsPrefix  = "GameFlags."
	roFlagsPrefix    = "ROFlags."
)

// flagWireNames maps flags whose canonical member name differs from the
// uppercased symbolic key.
var flagWireNames = map[Flag]string{
	FlagDisableGlitches:     "FIX_GLITCH",
	FlagBossScaling:         "BOSS_SCALE",
	FlagZeal:                "ZEAL_END",
	FlagEarlyPendant:        "FAST_PENDANT",
	FlagMysterySeed:         "MYSTERY",
	FlagDuplicateCharacters: "DUPLICATE_CHARS",
	FlagDuplicateDuals:      "DUPLICATE_TECHS",
	FlagUnlockedSkyways:     "UNLOCKED_SKYGATES",
	FlagTackleEffects:       "TACKLE_EFFECTS_ON",
	FlagSightscopeAlwaysOn:  "VISIBLE_HEALTH",
}

// roFlagWireNames is the same exception table for boss-rando flags.
var roFlagWireNames = map[Flag]string{
	ROFlagLegacyBossPlacement: "PRESERVE_PARTS",
}

// CanonicalGameMode returns the wire string for a mode.
func CanonicalGameMode(m GameMode) string {
	return gameModePrefix + strings.ToUpper(m.String())
}

// CanonicalDifficulty returns the wire string for a difficulty.
func CanonicalDifficulty(d Difficulty) string {
	return difficultyPrefix + strings.ToUpper(d.String())
}

// CanonicalTechOrder returns the wire string for a tech order.
func CanonicalTechOrder(o TechOrder) string {
	return techOrderPrefix + strings.ToUpper(o.String())
}

// CanonicalShopPrices returns the wire string for a shop price mode.
func CanonicalShopPrices(p ShopPrices) string {
	return shopPricesPrefix + strings.ToUpper(p.String())
}

// CanonicalFlag returns the wire string for a gameflag.
func CanonicalFlag(f Flag) string {
	name, ok := flagWireNames[f]
	if !ok {
		name = strings.ToUpper(string(f))
	}
	return gameFlagsPrefix + name
}

// CanonicalROFlag returns the wire string for a boss-rando flag.
func CanonicalROFlag(f Flag) string {
	name, ok := roFlagWireNames[f]
	if !ok {
		name = strings.ToUpper(string(f))
	}
	return roFlagsPrefix + name
}

// GameFlags lists every gameflag in form order.
var GameFlags = []Flag{
	FlagDisableGlitches,
	FlagBossRando,
	FlagBossScaling,
	FlagZeal,
	FlagEarlyPendant,
	FlagLockedChars,
	FlagUnlockedMagic,
	FlagTabTreasures,
	FlagChronosanity,
	FlagCharRando,
	FlagHealingItemRando,
	FlagGearRando,
	FlagMysterySeed,
	FlagEpochFail,
	FlagDuplicateCharacters,
	FlagDuplicateDuals,
	FlagUnlockedSkyways,
	FlagAddSunkeepSpot,
	FlagAddBekklerSpot,
	FlagAddCyrusSpot,
	FlagRestoreTools,
	FlagAddOzzieSpot,
	FlagRestoreJohnnyRace,
	FlagAddRacelogSpot,
	FlagRemoveBlackOmenSpot,
	FlagSplitArrisDome,
	FlagVanillaRoboRibbon,
	FlagVanillaDesert,
	FlagUseAntilife,
	FlagTackleEffects,
	FlagStartersSufficient,
	FlagBucketList,
	FlagRocksanity,
	FlagTechDamageRando,
	FlagSightscopeAlwaysOn,
	FlagBossSightscope,
	FlagFastTabs,
	FlagFreeMenuGlitch,
}

// ROFlags lists every boss-rando flag in form order.
var ROFlags = []Flag{ROFlagBossSpotHP, ROFlagLegacyBossPlacement}

// EnumsMap returns the symbolic-key to canonical-string tables the form
// client uses to serialize its state.
func EnumsMap() map[string]map[string]string {
	out := map[string]map[string]string{
		"game_mode":        {},
		"enemy_difficulty": {},
		"item_difficulty":  {},
		"techorder":        {},
		"shopprices":       {},
		"gameflags":        {},
		"roflags":          {},
	}
	for _, m := range GameModes {
		out["game_mode"][m.String()] = CanonicalGameMode(m)
	}
	for _, d := range Difficulties {
		out["item_difficulty"][d.String()] = CanonicalDifficulty(d)
	}
	// Enemy difficulty has no easy setting.
	for _, d := range EnemyDifficulties {
		out["enemy_difficulty"][d.String()] = CanonicalDifficulty(d)
	}
	for _, o := range TechOrders {
		out["techorder"][o.String()] = CanonicalTechOrder(o)
	}
	for _, p := range ShopPriceModes {
		out["shopprices"][p.String()] = CanonicalShopPrices(p)
	}
	for _, f := range GameFlags {
		out["gameflags"][string(f)] = CanonicalFlag(f)
	}
	for _, f := range ROFlags {
		out["roflags"][string(f)] = CanonicalROFlag(f)
	}
	return out
}

// InverseEnumsMap returns the canonical-string to symbolic-key tables.
func InverseEnumsMap() map[string]map[string]string {
	forward := EnumsMap()
	out := make(map[string]map[string]string, len(forward))
	for group, table := range forward {
		inv := make(map[string]string, len(table))
		for key, canon := range table {
			inv[canon] = key
		}
		out[group] = inv
	}
	return out
}

// ResolveGameMode accepts a canonical wire string or a symbolic key.
func ResolveGameMode(s string) (GameMode, error) {
	for _, m := range GameModes {
		if s == CanonicalGameMode(m) || s == m.String() {
			return m, nil
		}
	}
	return GameModeStandard, apperrors.WithMetadata(apperrors.CodeUnknownMode,
		"unknown game mode "+s, map[string]string{"Mode": s})
}

// ResolveDifficulty accepts a canonical wire string or a symbolic key.
func ResolveDifficulty(s string) (Difficulty, bool) {
	for _, d := range Difficulties {
		if s == CanonicalDifficulty(d) || s == d.String() {
			return d, true
		}
	}
	return DifficultyNormal, false
}

// ResolveTechOrder accepts a canonical wire string or a symbolic key.
func ResolveTechOrder(s string) (TechOrder, bool) {
	for _, o := range TechOrders {
		if s == CanonicalTechOrder(o) || s == o.String() {
			return o, true
		}
	}
	return TechOrderNormal, false
}

// ResolveShopPrices accepts a canonical wire string or a symbolic key.
func ResolveShopPrices(s string) (ShopPrices, bool) {
	for _, p := range ShopPriceModes {
		if s == CanonicalShopPrices(p) || s == p.String() {
			return p, true
		}
	}
	return ShopPricesNormal, false
}

// ResolveFlag accepts a canonical wire string or a symbolic key.
func ResolveFlag(s string) (Flag, error) {
	for _, f := range GameFlags {
		if s == CanonicalFlag(f) || s == string(f) {
			return f, nil
		}
	}
	return "", apperrors.WithMetadata(apperrors.CodeUnknownFlag,
		"unknown gameflag "+s, map[string]string{"Flag": s})
}

// ResolveROFlag accepts a canonical wire string or a symbolic key.
func ResolveROFlag(s string) (Flag, error) {
	for _, f := range ROFlags {
		if s == CanonicalROFlag(f) || s == string(f) {
			return f, nil
		}
	}
	return "", apperrors.WithMetadata(apperrors.CodeUnknownFlag,
		"unknown boss rando flag "+s, map[string]string{"Flag": s})
}
