package settings

import (
	"math"
	"slices"
	"strconv"

	"github.com/ctjot/seedgen/internal/services/generator/domain/charassign"
)

// FractionToPercent converts a probability fraction to a whole percent.
func FractionToPercent(f float64) int {
	return int(math.Round(f * 100))
}

// PercentToFraction converts a whole percent to a probability fraction.
func PercentToFraction(p int) float64 {
	return float64(p) / 100
}

// Decode merges a wire payload onto the defaults and returns the typed
// tree. Unknown keys, malformed values and out-of-range counts fall
// back to the default for that field rather than failing the whole
// payload, matching how the form restores partially stale presets.
func Decode(w Wire) Settings {
	s := Defaults()

	if mode, ok := coerceString(w.GameMode); ok {
		if m, err := ResolveGameMode(mode); err == nil {
			s.General.Mode = m
		}
	}
	if v, ok := coerceString(w.EnemyDifficulty); ok {
		if d, ok := ResolveDifficulty(v); ok {
			s.General.EnemyDifficulty = d
		}
	}
	if v, ok := coerceString(w.ItemDifficulty); ok {
		if d, ok := ResolveDifficulty(v); ok {
			s.General.ItemDifficulty = d
		}
	}
	if v, ok := coerceString(w.TechOrder); ok {
		if o, ok := ResolveTechOrder(v); ok {
			s.General.TechOrder = o
		}
	}
	if v, ok := coerceString(w.ShopPrices); ok {
		if p, ok := ResolveShopPrices(v); ok {
			s.General.ShopPrices = p
		}
	}

	if w.GameFlags != nil {
		s.Flags = NewFlagSet()
		for _, raw := range *w.GameFlags {
			if f, err := ResolveFlag(raw); err == nil {
				s.Flags.Add(f)
			}
		}
	}

	decodeTabs(&s.Tabs, w.TabSettings)

	if w.CharSettings != nil {
		if m, ok := decodeCharChoices(w.CharSettings.Choices); ok {
			s.Chars.Choices = m
		}
	}

	if w.ROSettings != nil {
		s.RO.Flags = NewFlagSet()
		for _, raw := range w.ROSettings.Flags {
			if f, err := ResolveROFlag(raw); err == nil {
				s.RO.Flags.Add(f)
			}
		}
	}

	decodeMystery(&s.Mystery, w.MysterySettings)
	decodeBucket(&s.Bucket, w.BucketSettings)

	return s
}

// Encode serializes a settings tree to the wire schema. With strict set
// every section is emitted; otherwise sections matching the defaults
// are elided, and the char/ro/mystery/bucket sections are only emitted
// when their governing flag is on.
func Encode(s Settings, strict bool) Wire {
	defaults := Defaults()
	var w Wire

	w.GameMode = CanonicalGameMode(s.General.Mode)
	w.EnemyDifficulty = CanonicalDifficulty(s.General.EnemyDifficulty)
	w.ItemDifficulty = CanonicalDifficulty(s.General.ItemDifficulty)
	w.TechOrder = CanonicalTechOrder(s.General.TechOrder)
	w.ShopPrices = CanonicalShopPrices(s.General.ShopPrices)

	if strict || !s.Flags.Equal(defaults.Flags) {
		flags := make([]string, 0, len(s.Flags))
		for _, f := range s.Flags.Sorted() {
			flags = append(flags, CanonicalFlag(f))
		}
		w.GameFlags = &flags
	}

	if strict || s.Tabs != defaults.Tabs {
		w.TabSettings = map[string]any{
			tabPowerMin: s.Tabs.PowerMin,
			tabPowerMax: s.Tabs.PowerMax,
			tabMagicMin: s.Tabs.MagicMin,
			tabMagicMax: s.Tabs.MagicMax,
			tabSpeedMin: s.Tabs.SpeedMin,
			tabSpeedMax: s.Tabs.SpeedMax,
		}
	}

	if strict || (s.Flags.Has(FlagCharRando) && s.Chars.Choices != defaults.Chars.Choices) {
		choices := make([]any, charassign.NumIdentities)
		for i, models := range s.Chars.Choices.Choices() {
			choices[i] = models
		}
		w.CharSettings = &WireCharSettings{Choices: choices}
	}

	if strict || (s.Flags.Has(FlagBossRando) && len(s.RO.Flags) > 0) {
		flags := make([]string, 0, len(s.RO.Flags))
		for _, f := range s.RO.Flags.Sorted() {
			flags = append(flags, CanonicalROFlag(f))
		}
		w.ROSettings = &WireROSettings{Flags: flags}
	}

	if strict || (s.Flags.Has(FlagMysterySeed) && !s.Mystery.Equal(defaults.Mystery)) {
		w.MysterySettings = encodeMystery(s.Mystery)
	}

	if strict || (s.Flags.Has(FlagBucketList) && !s.Bucket.Equal(defaults.Bucket)) {
		w.BucketSettings = encodeBucket(s.Bucket)
	}

	return w
}

func decodeTabs(tabs *TabSettings, raw map[string]any) {
	set := func(dst *int, key string) {
		if v, ok := coerceInt(raw[key]); ok && v >= 0 {
			*dst = v
		}
	}
	set(&tabs.PowerMin, tabPowerMin)
	set(&tabs.PowerMax, tabPowerMax)
	set(&tabs.MagicMin, tabMagicMin)
	set(&tabs.MagicMax, tabMagicMax)
	set(&tabs.SpeedMin, tabSpeedMin)
	set(&tabs.SpeedMax, tabSpeedMax)

	if tabs.PowerMax < tabs.PowerMin {
		tabs.PowerMax = tabs.PowerMin
	}
	if tabs.MagicMax < tabs.MagicMin {
		tabs.MagicMax = tabs.MagicMin
	}
	if tabs.SpeedMax < tabs.SpeedMin {
		tabs.SpeedMax = tabs.SpeedMin
	}
}

// decodeCharChoices accepts per-identity entries as index lists or as
// 2-hex-digit bitmask strings. A malformed payload keeps the default.
func decodeCharChoices(raw []any) (charassign.Matrix, bool) {
	if len(raw) != charassign.NumIdentities {
		return charassign.Matrix{}, false
	}
	choices := make([][]int, charassign.NumIdentities)
	for i, entry := range raw {
		switch v := entry.(type) {
		case string:
			mask, err := strconv.ParseInt(v, 16, 32)
			if err != nil || len(v) != 2 || mask >= 1<<charassign.NumModels {
				return charassign.Matrix{}, false
			}
			var models []int
			for j := 0; j < charassign.NumModels; j++ {
				if mask&(1<<j) != 0 {
					models = append(models, j)
				}
			}
			choices[i] = models
		case []any:
			models := make([]int, 0, len(v))
			for _, item := range v {
				idx, ok := coerceInt(item)
				if !ok {
					return charassign.Matrix{}, false
				}
				models = append(models, idx)
			}
			choices[i] = models
		case []int:
			choices[i] = v
		default:
			return charassign.Matrix{}, false
		}
	}
	m, err := charassign.FromChoices(choices)
	if err != nil {
		return charassign.Matrix{}, false
	}
	return m, true
}

func decodeMystery(m *MysterySettings, raw map[string]map[string]any) {
	if table, ok := raw[mysteryGameModeFreqs]; ok {
		for key, val := range table {
			mode, err := ResolveGameMode(key)
			if err != nil {
				continue
			}
			if freq, ok := coerceInt(val); ok && freq >= 0 {
				m.GameModeFreqs[mode] = freq
			}
		}
	}
	decodeDifficultyFreqs(m.ItemDifficultyFreqs, raw[mysteryItemDiffFreqs])
	decodeDifficultyFreqs(m.EnemyDifficultyFreqs, raw[mysteryEnemyDiffFreqs])
	if table, ok := raw[mysteryTechOrderFreqs]; ok {
		for key, val := range table {
			order, ok := ResolveTechOrder(key)
			if !ok {
				continue
			}
			if freq, ok := coerceInt(val); ok && freq >= 0 {
				m.TechOrderFreqs[order] = freq
			}
		}
	}
	if table, ok := raw[mysteryShopPriceFreqs]; ok {
		for key, val := range table {
			prices, ok := ResolveShopPrices(key)
			if !ok {
				continue
			}
			if freq, ok := coerceInt(val); ok && freq >= 0 {
				m.ShopPriceFreqs[prices] = freq
			}
		}
	}
	if table, ok := raw[mysteryFlagProbDict]; ok {
		for key, val := range table {
			flag, err := ResolveFlag(key)
			if err != nil {
				continue
			}
			if prob, ok := coerceFloat(val); ok && prob >= 0 && prob <= 1 {
				m.FlagProb[flag] = prob
			}
		}
	}
}

func decodeDifficultyFreqs(dst map[Difficulty]int, table map[string]any) {
	for key, val := range table {
		diff, ok := ResolveDifficulty(key)
		if !ok {
			continue
		}
		if freq, ok := coerceInt(val); ok && freq >= 0 {
			dst[diff] = freq
		}
	}
}

func decodeBucket(b *BucketSettings, raw map[string]any) {
	if v, ok := coerceInt(raw[bucketNumObjectives]); ok {
		b.NumObjectives = clamp(v, MinObjectives, MaxObjectives)
	}
	if v, ok := coerceInt(raw[bucketObjectivesNeeded]); ok {
		b.NumObjectivesNeeded = clamp(v, 1, b.NumObjectives)
	}
	if b.NumObjectivesNeeded > b.NumObjectives {
		b.NumObjectivesNeeded = b.NumObjectives
	}
	if v, ok := coerceBool(raw[bucketDisableGoModes]); ok {
		b.DisableOtherGoModes = v
	}
	if v, ok := coerceBool(raw[bucketObjectivesWin]); ok {
		b.ObjectivesWin = v
	}
	if hints, ok := raw[bucketHints].([]any); ok {
		b.Hints = nil
		for _, h := range hints {
			if s, ok := h.(string); ok {
				b.Hints = append(b.Hints, s)
			}
		}
	}
}

func encodeMystery(m MysterySettings) map[string]map[string]any {
	out := map[string]map[string]any{
		mysteryGameModeFreqs:  {},
		mysteryItemDiffFreqs:  {},
		mysteryEnemyDiffFreqs: {},
		mysteryTechOrderFreqs: {},
		mysteryShopPriceFreqs: {},
		mysteryFlagProbDict:   {},
	}
	for mode, freq := range m.GameModeFreqs {
		out[mysteryGameModeFreqs][CanonicalGameMode(mode)] = freq
	}
	for diff, freq := range m.ItemDifficultyFreqs {
		out[mysteryItemDiffFreqs][CanonicalDifficulty(diff)] = freq
	}
	for diff, freq := range m.EnemyDifficultyFreqs {
		out[mysteryEnemyDiffFreqs][CanonicalDifficulty(diff)] = freq
	}
	for order, freq := range m.TechOrderFreqs {
		out[mysteryTechOrderFreqs][CanonicalTechOrder(order)] = freq
	}
	for prices, freq := range m.ShopPriceFreqs {
		out[mysteryShopPriceFreqs][CanonicalShopPrices(prices)] = freq
	}
	for flag, prob := range m.FlagProb {
		out[mysteryFlagProbDict][CanonicalFlag(flag)] = prob
	}
	return out
}

func encodeBucket(b BucketSettings) map[string]any {
	out := map[string]any{
		bucketNumObjectives:    b.NumObjectives,
		bucketObjectivesNeeded: b.NumObjectivesNeeded,
		bucketDisableGoModes:   b.DisableOtherGoModes,
		bucketObjectivesWin:    b.ObjectivesWin,
	}
	if len(b.Hints) > 0 {
		out[bucketHints] = slices.Clone(b.Hints)
	}
	return out
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func coerceString(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

// coerceInt accepts JSON numbers (which arrive as float64), Go ints and
// numeric strings. Non-integral floats are rejected.
func coerceInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		if n != math.Trunc(n) {
			return 0, false
		}
		return int(n), true
	case string:
		parsed, err := strconv.Atoi(n)
		if err != nil {
			return 0, false
		}
		return parsed, true
	default:
		return 0, false
	}
}

func coerceFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case string:
		parsed, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0, false
		}
		return parsed, true
	default:
		return 0, false
	}
}

func coerceBool(v any) (bool, bool) {
	switch b := v.(type) {
	case bool:
		return b, true
	case string:
		parsed, err := strconv.ParseBool(b)
		if err != nil {
			return false, false
		}
		return parsed, true
	default:
		return false, false
	}
}
