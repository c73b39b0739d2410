package settings

import (
	"encoding/json"
	"testing"
)

func TestEnumStringRoundTrip(t *testing.T) {
	for _, m := range GameModes {
		got, ok := ParseGameMode(m.String())
		if !ok || got != m {
			t.Fatalf("mode %s did not round trip", m)
		}
	}
	if _, ok := ParseGameMode("bogus"); ok {
		t.Fatal("expected parse failure for bogus mode")
	}
}

func TestCanonicalStrings(t *testing.T) {
	tests := []struct {
		got  string
		want string
	}{
		{CanonicalGameMode(GameModeStandard), "GameMode.STANDARD"},
		{CanonicalGameMode(GameModeLostWorlds), "GameMode.LOST_WORLDS"},
		{CanonicalDifficulty(DifficultyHard), "Difficulty.HARD"},
		{CanonicalTechOrder(TechOrderFullRandom), "TechOrder.FULL_RANDOM"},
		{CanonicalShopPrices(ShopPricesMostlyRandom), "ShopPrices.MOSTLY_RANDOM"},
		{CanonicalFlag(FlagDisableGlitches), "GameFlags.FIX_GLITCH"},
		{CanonicalFlag(FlagBossScaling), "GameFlags.BOSS_SCALE"},
		{CanonicalFlag(FlagZeal), "GameFlags.ZEAL_END"},
		{CanonicalFlag(FlagEarlyPendant), "GameFlags.FAST_PENDANT"},
		{CanonicalFlag(FlagMysterySeed), "GameFlags.MYSTERY"},
		{CanonicalFlag(FlagDuplicateCharacters), "GameFlags.DUPLICATE_CHARS"},
		{CanonicalFlag(FlagDuplicateDuals), "GameFlags.DUPLICATE_TECHS"},
		{CanonicalFlag(FlagUnlockedSkyways), "GameFlags.UNLOCKED_SKYGATES"},
		{CanonicalFlag(FlagSightscopeAlwaysOn), "GameFlags.VISIBLE_HEALTH"},
		{CanonicalFlag(FlagUnlockedMagic), "GameFlags.UNLOCKED_MAGIC"},
		{CanonicalFlag(FlagRocksanity), "GameFlags.ROCKSANITY"},
		{CanonicalROFlag(ROFlagBossSpotHP), "ROFlags.BOSS_SPOT_HP"},
		{CanonicalROFlag(ROFlagLegacyBossPlacement), "ROFlags.PRESERVE_PARTS"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Fatalf("got %q, want %q", tt.got, tt.want)
		}
	}
}

func TestEnumsMapInverse(t *testing.T) {
	forward := EnumsMap()
	inverse := InverseEnumsMap()
	for group, table := range forward {
		for key, canon := range table {
			if inverse[group][canon] != key {
				t.Fatalf("group %s: inverse of %q is %q, want %q",
					group, canon, inverse[group][canon], key)
			}
		}
	}
	if forward["gameflags"]["disable_glitches"] != "GameFlags.FIX_GLITCH" {
		t.Fatalf("unexpected gameflags table: %v", forward["gameflags"])
	}
	if forward["techorder"]["full_random"] != "TechOrder.FULL_RANDOM" {
		t.Fatalf("unexpected techorder table: %v", forward["techorder"])
	}
	if forward["shopprices"]["mostly_random"] != "ShopPrices.MOSTLY_RANDOM" {
		t.Fatalf("unexpected shopprices table: %v", forward["shopprices"])
	}
	if _, ok := forward["enemy_difficulty"]["easy"]; ok {
		t.Fatal("enemy difficulty table must not offer easy")
	}
	if _, ok := forward["item_difficulty"]["easy"]; !ok {
		t.Fatal("item difficulty table should offer easy")
	}
}

func TestDecodeAcceptsUpstreamFlagSpellings(t *testing.T) {
	flags := []string{
		"GameFlags.BOSS_SCALE",
		"GameFlags.DUPLICATE_CHARS",
		"GameFlags.DUPLICATE_TECHS",
		"GameFlags.UNLOCKED_SKYGATES",
		"GameFlags.VISIBLE_HEALTH",
	}
	got := Decode(Wire{GameFlags: &flags})
	want := NewFlagSet(
		FlagBossScaling,
		FlagDuplicateCharacters,
		FlagDuplicateDuals,
		FlagUnlockedSkyways,
		FlagSightscopeAlwaysOn,
	)
	if !got.Flags.Equal(want) {
		t.Fatalf("got flags %v, want %v", got.Flags.Sorted(), want.Sorted())
	}

	ro := Wire{ROSettings: &WireROSettings{Flags: []string{"ROFlags.PRESERVE_PARTS"}}}
	if !Decode(ro).RO.Flags.Has(ROFlagLegacyBossPlacement) {
		t.Fatal("ROFlags.PRESERVE_PARTS did not resolve")
	}
}

func TestWireFieldNames(t *testing.T) {
	data, err := json.Marshal(Encode(Defaults(), true))
	if err != nil {
		t.Fatalf("marshal wire: %v", err)
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("unmarshal wire: %v", err)
	}
	for _, key := range []string{"game_mode", "enemy_difficulty", "item_difficulty", "techorder", "shopprices", "gameflags"} {
		if _, ok := raw[key]; !ok {
			t.Fatalf("wire payload missing %q: %s", key, data)
		}
	}
	for _, key := range []string{"tech_order", "shop_prices"} {
		if _, ok := raw[key]; ok {
			t.Fatalf("wire payload must not use %q: %s", key, data)
		}
	}
}

func TestResolveFlagAcceptsBothSpellings(t *testing.T) {
	for _, raw := range []string{"GameFlags.FIX_GLITCH", "disable_glitches"} {
		f, err := ResolveFlag(raw)
		if err != nil {
			t.Fatalf("resolve %q: %v", raw, err)
		}
		if f != FlagDisableGlitches {
			t.Fatalf("resolve %q: got %s", raw, f)
		}
	}
	if _, err := ResolveFlag("GameFlags.NOT_A_FLAG"); err == nil {
		t.Fatal("expected error for unknown flag")
	}
}

func TestDefaults(t *testing.T) {
	s := Defaults()
	if !s.Flags.Has(FlagDisableGlitches) || !s.Flags.Has(FlagFastTabs) {
		t.Fatalf("defaults missing baseline flags: %v", s.Flags.Sorted())
	}
	if len(s.Flags) != 2 {
		t.Fatalf("expected exactly 2 default flags, got %v", s.Flags.Sorted())
	}
	if s.Tabs.PowerMin != 2 || s.Tabs.PowerMax != 4 {
		t.Fatalf("unexpected power tab defaults: %+v", s.Tabs)
	}
	if s.Bucket.NumObjectives != 5 || s.Bucket.NumObjectivesNeeded != 4 {
		t.Fatalf("unexpected bucket defaults: %+v", s.Bucket)
	}
	if err := s.Chars.Choices.Validate(false); err != nil {
		t.Fatalf("default char matrix invalid: %v", err)
	}
}

func TestDecodeEmptyWireYieldsDefaults(t *testing.T) {
	got := Decode(Wire{})
	if !got.Equal(Defaults()) {
		t.Fatalf("empty wire should decode to defaults")
	}
}

func TestDecodeGeneral(t *testing.T) {
	w := Wire{
		GameMode:        "GameMode.LOST_WORLDS",
		EnemyDifficulty: "hard",
		ItemDifficulty:  "Difficulty.EASY",
		TechOrder:       "TechOrder.BALANCED_RANDOM",
		ShopPrices:      "free",
	}
	got := Decode(w)
	if got.General.Mode != GameModeLostWorlds {
		t.Fatalf("mode: got %s", got.General.Mode)
	}
	if got.General.EnemyDifficulty != DifficultyHard {
		t.Fatalf("enemy difficulty: got %s", got.General.EnemyDifficulty)
	}
	if got.General.ItemDifficulty != DifficultyEasy {
		t.Fatalf("item difficulty: got %s", got.General.ItemDifficulty)
	}
	if got.General.TechOrder != TechOrderBalancedRandom {
		t.Fatalf("tech order: got %s", got.General.TechOrder)
	}
	if got.General.ShopPrices != ShopPricesFree {
		t.Fatalf("shop prices: got %s", got.General.ShopPrices)
	}
}

func TestDecodeUnknownValuesKeepDefaults(t *testing.T) {
	w := Wire{
		GameMode:   "GameMode.BOGUS",
		TechOrder:  42,
		ShopPrices: "no_such_mode",
	}
	got := Decode(w)
	want := Defaults().General
	if got.General != want {
		t.Fatalf("got %+v, want %+v", got.General, want)
	}
}

func TestDecodeGameFlagsReplaceDefaults(t *testing.T) {
	flags := []string{"GameFlags.CHRONOSANITY", "rocksanity", "GameFlags.NOPE"}
	got := Decode(Wire{GameFlags: &flags})
	if !got.Flags.Equal(NewFlagSet(FlagChronosanity, FlagRocksanity)) {
		t.Fatalf("got flags %v", got.Flags.Sorted())
	}
	// A nil pointer keeps the defaults; an empty list clears them.
	empty := []string{}
	got = Decode(Wire{GameFlags: &empty})
	if len(got.Flags) != 0 {
		t.Fatalf("empty flags list should clear defaults, got %v", got.Flags.Sorted())
	}
}

func TestDecodeTabsClamping(t *testing.T) {
	got := Decode(Wire{TabSettings: map[string]any{
		"power_tab_min": float64(5),
		"power_tab_max": float64(3),
		"magic_tab_min": "2",
		"speed_tab_min": float64(-1),
	}})
	if got.Tabs.PowerMin != 5 || got.Tabs.PowerMax != 5 {
		t.Fatalf("power max should clamp up to min: %+v", got.Tabs)
	}
	if got.Tabs.MagicMin != 2 {
		t.Fatalf("numeric string should coerce: %+v", got.Tabs)
	}
	if got.Tabs.SpeedMin != 1 {
		t.Fatalf("negative value should keep default: %+v", got.Tabs)
	}
}

func TestDecodeCharChoices(t *testing.T) {
	// Index-list form.
	choices := []any{
		[]any{float64(0)}, []any{float64(1)}, []any{float64(2)},
		[]any{float64(3)}, []any{float64(4)}, []any{float64(5)},
		[]any{float64(6), float64(0)},
	}
	got := Decode(Wire{CharSettings: &WireCharSettings{Choices: choices}})
	if !got.Chars.Choices[6][0] || !got.Chars.Choices[6][6] {
		t.Fatalf("unexpected matrix row: %v", got.Chars.Choices[6])
	}
	if got.Chars.Choices[0][1] {
		t.Fatal("model 1 should not be allowed for identity 0")
	}

	// Hex-bitmask form.
	hex := []any{"7f", "7f", "7f", "7f", "7f", "7f", "01"}
	got = Decode(Wire{CharSettings: &WireCharSettings{Choices: hex}})
	if !got.Chars.Choices[6][0] || got.Chars.Choices[6][1] {
		t.Fatalf("unexpected hex-decoded row: %v", got.Chars.Choices[6])
	}

	// Malformed payloads keep the full default matrix.
	bad := []any{"zz", "7f", "7f", "7f", "7f", "7f", "7f"}
	got = Decode(Wire{CharSettings: &WireCharSettings{Choices: bad}})
	if got.Chars.Choices != Defaults().Chars.Choices {
		t.Fatal("malformed char settings should keep defaults")
	}
}

func TestDecodeBucketClamps(t *testing.T) {
	got := Decode(Wire{BucketSettings: map[string]any{
		"num_objectives":         float64(12),
		"num_objectives_needed":  float64(20),
		"disable_other_go_modes": true,
		"objectives_win":         true,
		"hints":                  []any{"hint one", "hint two"},
	}})
	if got.Bucket.NumObjectives != MaxObjectives {
		t.Fatalf("num objectives should clamp to %d, got %d", MaxObjectives, got.Bucket.NumObjectives)
	}
	if got.Bucket.NumObjectivesNeeded != MaxObjectives {
		t.Fatalf("needed should clamp to num, got %d", got.Bucket.NumObjectivesNeeded)
	}
	if !got.Bucket.DisableOtherGoModes || !got.Bucket.ObjectivesWin {
		t.Fatalf("bool fields not decoded: %+v", got.Bucket)
	}
	if len(got.Bucket.Hints) != 2 {
		t.Fatalf("hints not decoded: %v", got.Bucket.Hints)
	}

	got = Decode(Wire{BucketSettings: map[string]any{
		"num_objectives": float64(0),
	}})
	if got.Bucket.NumObjectives != MinObjectives {
		t.Fatalf("num objectives should clamp to %d, got %d", MinObjectives, got.Bucket.NumObjectives)
	}
	if got.Bucket.NumObjectivesNeeded != MinObjectives {
		t.Fatalf("needed should shrink with num, got %d", got.Bucket.NumObjectivesNeeded)
	}
}

func TestDecodeMystery(t *testing.T) {
	got := Decode(Wire{MysterySettings: map[string]map[string]any{
		"game_mode_freqs": {
			"GameMode.STANDARD":    float64(50),
			"GameMode.LOST_WORLDS": float64(50),
		},
		"flag_prob_dict": {
			"GameFlags.TAB_TREASURES": 0.25,
			"GameFlags.MYSTERY":       1.5, // out of range, ignored
		},
	}})
	if got.Mystery.GameModeFreqs[GameModeStandard] != 50 {
		t.Fatalf("standard freq: got %d", got.Mystery.GameModeFreqs[GameModeStandard])
	}
	if got.Mystery.GameModeFreqs[GameModeLostWorlds] != 50 {
		t.Fatalf("lost worlds freq: got %d", got.Mystery.GameModeFreqs[GameModeLostWorlds])
	}
	if got.Mystery.FlagProb[FlagTabTreasures] != 0.25 {
		t.Fatalf("tab treasures prob: got %v", got.Mystery.FlagProb[FlagTabTreasures])
	}
	if got.Mystery.FlagProb[FlagMysterySeed] != Defaults().Mystery.FlagProb[FlagMysterySeed] {
		t.Fatal("out-of-range probability should keep default")
	}
}

func TestStrictEncodeDecodeRoundTrip(t *testing.T) {
	s := Defaults()
	s.General.Mode = GameModeIceAge
	s.General.ItemDifficulty = DifficultyHard
	s.Flags.Add(FlagCharRando)
	s.Flags.Add(FlagBossRando)
	s.Flags.Add(FlagBucketList)
	s.Tabs.PowerMax = 6
	s.RO.Flags.Add(ROFlagBossSpotHP)
	s.Bucket.NumObjectives = 6
	s.Bucket.NumObjectivesNeeded = 3
	s.Bucket.ObjectivesWin = true
	s.Mystery.FlagProb[FlagTabTreasures] = 0.4

	back := Decode(Encode(s, true))
	if !back.Equal(s) {
		t.Fatalf("strict round trip mismatch:\n got %+v\nwant %+v", back, s)
	}
}

func TestDiffEncodeElidesDefaults(t *testing.T) {
	w := Encode(Defaults(), false)
	if w.GameFlags != nil {
		t.Fatalf("default flags should be elided, got %v", *w.GameFlags)
	}
	if w.TabSettings != nil {
		t.Fatal("default tabs should be elided")
	}
	if w.CharSettings != nil || w.ROSettings != nil {
		t.Fatal("default char/ro sections should be elided")
	}
	if w.MysterySettings != nil || w.BucketSettings != nil {
		t.Fatal("default mystery/bucket sections should be elided")
	}
	if w.GameMode != "GameMode.STANDARD" {
		t.Fatalf("general section always present, got %v", w.GameMode)
	}
}

func TestDiffEncodeGatesSectionsOnFlags(t *testing.T) {
	s := Defaults()
	s.RO.Flags.Add(ROFlagLegacyBossPlacement)
	s.Bucket.ObjectivesWin = true

	// Sections differ from defaults but their governing flags are off.
	w := Encode(s, false)
	if w.ROSettings != nil || w.BucketSettings != nil {
		t.Fatal("sections should stay elided without their governing flag")
	}

	s.Flags.Add(FlagBossRando)
	s.Flags.Add(FlagBucketList)
	w = Encode(s, false)
	if w.ROSettings == nil || w.BucketSettings == nil {
		t.Fatal("sections should be emitted once their governing flag is on")
	}
	if w.ROSettings.Flags[0] != "ROFlags.PRESERVE_PARTS" {
		t.Fatalf("unexpected ro flags: %v", w.ROSettings.Flags)
	}
}

func TestPercentFractionConversion(t *testing.T) {
	tests := []struct {
		fraction float64
		percent  int
	}{
		{0, 0},
		{0.1, 10},
		{0.25, 25},
		{0.333, 33},
		{1, 100},
	}
	for _, tt := range tests {
		if got := FractionToPercent(tt.fraction); got != tt.percent {
			t.Fatalf("FractionToPercent(%v) = %d, want %d", tt.fraction, got, tt.percent)
		}
	}
	if got := PercentToFraction(25); got != 0.25 {
		t.Fatalf("PercentToFraction(25) = %v", got)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	s := Defaults()
	c := s.Clone()
	c.Flags.Add(FlagZeal)
	c.Mystery.FlagProb[FlagZeal] = 0.9
	c.Bucket.Hints = append(c.Bucket.Hints, "x")
	if s.Flags.Has(FlagZeal) {
		t.Fatal("clone flag set shares storage")
	}
	if _, ok := s.Mystery.FlagProb[FlagZeal]; ok {
		t.Fatal("clone mystery map shares storage")
	}
	if len(s.Bucket.Hints) != 0 {
		t.Fatal("clone hints share storage")
	}
}
