// Package settings models the randomizer settings tree and its wire codec.
//
// Settings values are the flat, typed state the validation engine operates
// on. The wire representation (Wire) mirrors the preset/submission JSON
// schema; Decode and Encode convert between the two, applying defaults,
// clamping and default-elision.
package settings

import (
	"maps"
	"slices"

	"github.com/ctjot/seedgen/internal/services/generator/domain/charassign"
)

// GameMode selects the overworld/logic structure of a seed.
type GameMode int

const (
	GameModeStandard GameMode = iota
	GameModeLostWorlds
	GameModeLegacyOfCyrus
	GameModeIceAge
	GameModeVanillaRando
)

// GameModes lists every mode in a stable order.
var GameModes = []GameMode{
	GameModeStandard,
	GameModeLostWorlds,
	GameModeLegacyOfCyrus,
	GameModeIceAge,
	GameModeVanillaRando,
}

func (m GameMode) String() string {
	switch m {
	case GameModeStandard:
		return "standard"
	case GameModeLostWorlds:
		return "lost_worlds"
	case GameModeLegacyOfCyrus:
		return "legacy_of_cyrus"
	case GameModeIceAge:
		return "ice_age"
	case GameModeVanillaRando:
		return "vanilla_rando"
	default:
		return "unknown"
	}
}

// ParseGameMode resolves a symbolic mode key.
func ParseGameMode(s string) (GameMode, bool) {
	for _, m := range GameModes {
		if m.String() == s {
			return m, true
		}
	}
	return GameModeStandard, false
}

// Difficulty grades enemy or item placement difficulty.
type Difficulty int

const (
	DifficultyEasy Difficulty = iota
	DifficultyNormal
	DifficultyHard
)

// Difficulties lists every difficulty in a stable order.
var Difficulties = []Difficulty{DifficultyEasy, DifficultyNormal, DifficultyHard}

// EnemyDifficulties lists the difficulties selectable for enemies, which
// exclude easy.
var EnemyDifficulties = []Difficulty{DifficultyNormal, DifficultyHard}

func (d Difficulty) String() string {
	switch d {
	case DifficultyEasy:
		return "easy"
	case DifficultyNormal:
		return "normal"
	case DifficultyHard:
		return "hard"
	default:
		return "unknown"
	}
}

// TechOrder controls the order techs are learned in.
type TechOrder int

const (
	TechOrderNormal TechOrder = iota
	TechOrderFullRandom
	TechOrderBalancedRandom
)

// TechOrders lists every tech order in a stable order.
var TechOrders = []TechOrder{TechOrderNormal, TechOrderFullRandom, TechOrderBalancedRandom}

func (o TechOrder) String() string {
	switch o {
	case TechOrderNormal:
		return "normal"
	case TechOrderFullRandom:
		return "full_random"
	case TechOrderBalancedRandom:
		return "balanced_random"
	default:
		return "unknown"
	}
}

// ShopPrices controls shop price randomization.
type ShopPrices int

const (
	ShopPricesNormal ShopPrices = iota
	ShopPricesRandom
	ShopPricesMostlyRandom
	ShopPricesFree
)

// ShopPriceModes lists every shop price mode in a stable order.
var ShopPriceModes = []ShopPrices{
	ShopPricesNormal,
	ShopPricesRandom,
	ShopPricesMostlyRandom,
	ShopPricesFree,
}

func (p ShopPrices) String() string {
	switch p {
	case ShopPricesNormal:
		return "normal"
	case ShopPricesRandom:
		return "random"
	case ShopPricesMostlyRandom:
		return "mostly_random"
	case ShopPricesFree:
		return "free"
	default:
		return "unknown"
	}
}

// Flag is a named boolean option identified by its stable symbolic key.
type Flag string

// Gameflags, grouped as the form presents them.
const (
	// Main
	FlagDisableGlitches     Flag = "disable_glitches"
	FlagBossRando           Flag = "boss_rando"
	FlagBossScaling         Flag = "boss_scaling"
	FlagZeal                Flag = "zeal"
	FlagEarlyPendant        Flag = "early_pendant"
	FlagLockedChars         Flag = "locked_chars"
	FlagUnlockedMagic       Flag = "unlocked_magic"
	FlagTabTreasures        Flag = "tab_treasures"
	FlagChronosanity        Flag = "chronosanity"
	FlagCharRando           Flag = "char_rando"
	FlagHealingItemRando    Flag = "healing_item_rando"
	FlagGearRando           Flag = "gear_rando"
	FlagMysterySeed         Flag = "mystery_seed"
	FlagEpochFail           Flag = "epoch_fail"
	FlagDuplicateCharacters Flag = "duplicate_characters"
	FlagDuplicateDuals      Flag = "duplicate_duals"

	// Extra
	FlagUnlockedSkyways     Flag = "unlocked_skyways"
	FlagAddSunkeepSpot      Flag = "add_sunkeep_spot"
	FlagAddBekklerSpot      Flag = "add_bekkler_spot"
	FlagAddCyrusSpot        Flag = "add_cyrus_spot"
	FlagRestoreTools        Flag = "restore_tools"
	FlagAddOzzieSpot        Flag = "add_ozzie_spot"
	FlagRestoreJohnnyRace   Flag = "restore_johnny_race"
	FlagAddRacelogSpot      Flag = "add_racelog_spot"
	FlagRemoveBlackOmenSpot Flag = "remove_black_omen_spot"
	FlagSplitArrisDome      Flag = "split_arris_dome"
	FlagVanillaRoboRibbon   Flag = "vanilla_robo_ribbon"
	FlagVanillaDesert       Flag = "vanilla_desert"
	FlagUseAntilife         Flag = "use_antilife"
	FlagTackleEffects       Flag = "tackle_effects"
	FlagStartersSufficient  Flag = "starters_sufficient"
	FlagBucketList          Flag = "bucket_list"
	FlagRocksanity          Flag = "rocksanity"
	FlagTechDamageRando     Flag = "tech_damage_rando"

	// Quality of life
	FlagSightscopeAlwaysOn Flag = "sightscope_always_on"
	FlagBossSightscope     Flag = "boss_sightscope"
	FlagFastTabs           Flag = "fast_tabs"
	FlagFreeMenuGlitch     Flag = "free_menu_glitch"
)

// Boss-rando flags.
const (
	ROFlagBossSpotHP          Flag = "boss_spot_hp"
	ROFlagLegacyBossPlacement Flag = "legacy_boss_placement"
)

// FlagSet is a set of toggled flags.
type FlagSet map[Flag]struct{}

// NewFlagSet builds a set from the given flags.
func NewFlagSet(flags ...Flag) FlagSet {
	s := make(FlagSet, len(flags))
	for _, f := range flags {
		s[f] = struct{}{}
	}
	return s
}

// Has reports whether f is in the set.
func (s FlagSet) Has(f Flag) bool {
	_, ok := s[f]
	return ok
}

// Add inserts f into the set.
func (s FlagSet) Add(f Flag) {
	s[f] = struct{}{}
}

// Remove deletes f from the set.
func (s FlagSet) Remove(f Flag) {
	delete(s, f)
}

// Clone returns an independent copy of the set.
func (s FlagSet) Clone() FlagSet {
	out := make(FlagSet, len(s))
	maps.Copy(out, s)
	return out
}

// Equal reports whether both sets contain the same flags.
func (s FlagSet) Equal(o FlagSet) bool {
	if len(s) != len(o) {
		return false
	}
	for f := range s {
		if !o.Has(f) {
			return false
		}
	}
	return true
}

// Sorted returns the flags in lexical order.
func (s FlagSet) Sorted() []Flag {
	out := make([]Flag, 0, len(s))
	for f := range s {
		out = append(out, f)
	}
	slices.Sort(out)
	return out
}

// GeneralSettings holds the always-present dropdown options.
type GeneralSettings struct {
	Mode            GameMode
	EnemyDifficulty Difficulty
	ItemDifficulty  Difficulty
	TechOrder       TechOrder
	ShopPrices      ShopPrices
}

// TabKind identifies a stat tab type.
type TabKind int

const (
	TabPower TabKind = iota
	TabMagic
	TabSpeed
)

// TabSettings holds the min/max magnitude per tab kind.
type TabSettings struct {
	PowerMin, PowerMax int
	MagicMin, MagicMax int
	SpeedMin, SpeedMax int
}

// CharSettings holds the character-rando assignment matrix.
type CharSettings struct {
	Choices charassign.Matrix
}

// ROSettings holds the boss-rando flag set.
type ROSettings struct {
	Flags FlagSet
}

// MysterySettings holds the mystery-seed frequency tables.
// FlagProb values are fractions in [0,1]; the UI sliders work in
// percentages and convert through PercentToFraction/FractionToPercent.
type MysterySettings struct {
	GameModeFreqs        map[GameMode]int
	ItemDifficultyFreqs  map[Difficulty]int
	EnemyDifficultyFreqs map[Difficulty]int
	TechOrderFreqs       map[TechOrder]int
	ShopPriceFreqs       map[ShopPrices]int
	FlagProb             map[Flag]float64
}

// Equal reports whether both mystery settings carry the same tables.
func (m MysterySettings) Equal(o MysterySettings) bool {
	return maps.Equal(m.GameModeFreqs, o.GameModeFreqs) &&
		maps.Equal(m.ItemDifficultyFreqs, o.ItemDifficultyFreqs) &&
		maps.Equal(m.EnemyDifficultyFreqs, o.EnemyDifficultyFreqs) &&
		maps.Equal(m.TechOrderFreqs, o.TechOrderFreqs) &&
		maps.Equal(m.ShopPriceFreqs, o.ShopPriceFreqs) &&
		maps.Equal(m.FlagProb, o.FlagProb)
}

// Bucket objective count bounds.
const (
	MinObjectives = 1
	MaxObjectives = 8
)

// BucketSettings holds the bucket-list win condition configuration.
type BucketSettings struct {
	NumObjectives       int
	NumObjectivesNeeded int
	DisableOtherGoModes bool
	ObjectivesWin       bool
	Hints               []string
}

// Equal reports whether both bucket settings are the same.
func (b BucketSettings) Equal(o BucketSettings) bool {
	return b.NumObjectives == o.NumObjectives &&
		b.NumObjectivesNeeded == o.NumObjectivesNeeded &&
		b.DisableOtherGoModes == o.DisableOtherGoModes &&
		b.ObjectivesWin == o.ObjectivesWin &&
		slices.Equal(b.Hints, o.Hints)
}

// Settings is the full typed settings tree.
type Settings struct {
	General GeneralSettings
	Flags   FlagSet
	Tabs    TabSettings
	Chars   CharSettings
	RO      ROSettings
	Mystery MysterySettings
	Bucket  BucketSettings
}

// Equal reports whether two settings trees are identical.
func (s Settings) Equal(o Settings) bool {
	return s.General == o.General &&
		s.Flags.Equal(o.Flags) &&
		s.Tabs == o.Tabs &&
		s.Chars.Choices == o.Chars.Choices &&
		s.RO.Flags.Equal(o.RO.Flags) &&
		s.Mystery.Equal(o.Mystery) &&
		s.Bucket.Equal(o.Bucket)
}

// Clone returns a deep copy of the settings tree.
func (s Settings) Clone() Settings {
	out := s
	out.Flags = s.Flags.Clone()
	out.RO.Flags = s.RO.Flags.Clone()
	out.Mystery.GameModeFreqs = maps.Clone(s.Mystery.GameModeFreqs)
	out.Mystery.ItemDifficultyFreqs = maps.Clone(s.Mystery.ItemDifficultyFreqs)
	out.Mystery.EnemyDifficultyFreqs = maps.Clone(s.Mystery.EnemyDifficultyFreqs)
	out.Mystery.TechOrderFreqs = maps.Clone(s.Mystery.TechOrderFreqs)
	out.Mystery.ShopPriceFreqs = maps.Clone(s.Mystery.ShopPriceFreqs)
	out.Mystery.FlagProb = maps.Clone(s.Mystery.FlagProb)
	out.Bucket.Hints = slices.Clone(s.Bucket.Hints)
	return out
}
