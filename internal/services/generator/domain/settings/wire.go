package settings

// Wire mirrors the preset/submission JSON schema. Optional sections use
// pointers or nil maps so absence is distinguishable from emptiness;
// scalar fields are `any` because clients historically send enum values
// as canonical strings, symbolic keys or bare numbers.
type Wire struct {
	GameMode        any `json:"game_mode,omitempty"`
	EnemyDifficulty any `json:"enemy_difficulty,omitempty"`
	ItemDifficulty  any `json:"item_difficulty,omitempty"`
	TechOrder       any `json:"techorder,omitempty"`
	ShopPrices      any `json:"shopprices,omitempty"`

	GameFlags *[]string `json:"gameflags,omitempty"`

	TabSettings map[string]any `json:"tab_settings,omitempty"`

	CharSettings *WireCharSettings `json:"char_settings,omitempty"`

	ROSettings *WireROSettings `json:"ro_settings,omitempty"`

	MysterySettings map[string]map[string]any `json:"mystery_settings,omitempty"`

	BucketSettings map[string]any `json:"bucket_settings,omitempty"`
}

// WireCharSettings carries per-identity model choices. Each entry is
// either a list of model indices or a 2-hex-digit bitmask string.
type WireCharSettings struct {
	Choices []any `json:"choices"`
}

// WireROSettings carries the boss-rando flag list.
type WireROSettings struct {
	Flags []string `json:"flags"`
}

// Mystery settings table keys.
const (
	mysteryGameModeFreqs   = "game_mode_freqs"
	mysteryItemDiffFreqs   = "item_difficulty_freqs"
	mysteryEnemyDiffFreqs  = "enemy_difficulty_freqs"
	mysteryTechOrderFreqs  = "tech_order_freqs"
	mysteryShopPriceFreqs  = "shop_price_freqs"
	mysteryFlagProbDict    = "flag_prob_dict"
)

// Tab settings keys.
const (
	tabPowerMin = "power_tab_min"
	tabPowerMax = "power_tab_max"
	tabMagicMin = "magic_tab_min"
	tabMagicMax = "magic_tab_max"
	tabSpeedMin = "speed_tab_min"
	tabSpeedMax = "speed_tab_max"
)

// Bucket settings keys.
const (
	bucketNumObjectives    = "num_objectives"
	bucketObjectivesNeeded = "num_objectives_needed"
	bucketDisableGoModes   = "disable_other_go_modes"
	bucketObjectivesWin    = "objectives_win"
	bucketHints            = "hints"
)
