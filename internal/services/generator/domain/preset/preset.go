// Package preset models named settings bundles.
//
// A preset is a partial settings payload with display metadata. Applying
// one merges it onto the defaults; the preset itself is never mutated.
package preset

import (
	"encoding/json"
	"strings"
	"time"
	"unicode"

	apperrors "github.com/ctjot/seedgen/internal/platform/errors"
	"github.com/ctjot/seedgen/internal/services/generator/domain/settings"
)

// Metadata describes a preset to the user.
type Metadata struct {
	Name string `json:"name"`
	Desc string `json:"desc,omitempty"`
}

// Preset is a named partial settings bundle.
type Preset struct {
	Metadata Metadata      `json:"metadata"`
	Settings settings.Wire `json:"settings"`
}

// Stored is a preset persisted with its storage identity.
type Stored struct {
	ID        string
	Preset    Preset
	CreatedAt time.Time
}

// Parse decodes an uploaded preset document. A document without a
// settings key is rejected even if it is otherwise valid JSON, so a
// stray unrelated file does not silently reset the form.
func Parse(data []byte) (Preset, error) {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(data, &probe); err != nil {
		return Preset{}, apperrors.Wrap(apperrors.CodePresetInvalidJSON,
			"preset is not valid JSON", err)
	}
	if _, ok := probe["settings"]; !ok {
		return Preset{}, apperrors.New(apperrors.CodePresetMissingSettings,
			"preset has no settings key")
	}

	var p Preset
	if err := json.Unmarshal(data, &p); err != nil {
		return Preset{}, apperrors.Wrap(apperrors.CodePresetInvalidJSON,
			"preset does not match the settings schema", err)
	}
	return p, nil
}

// Validate checks the metadata invariants for saving a preset.
func (p Preset) Validate() error {
	if strings.TrimSpace(p.Metadata.Name) == "" {
		return apperrors.New(apperrors.CodePresetNameEmpty, "preset name is required")
	}
	return nil
}

// ID derives the lookup key from the preset name: lowercased, with
// runs of non-alphanumeric characters collapsed to single underscores.
func (p Preset) ID() string {
	return Slug(p.Metadata.Name)
}

// Apply merges the preset onto the defaults.
func (p Preset) Apply() settings.Settings {
	return settings.Decode(p.Settings)
}

// Slug normalizes a preset name into a lookup key.
func Slug(name string) string {
	var b strings.Builder
	pendingSep := false
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if pendingSep && b.Len() > 0 {
				b.WriteByte('_')
			}
			pendingSep = false
			b.WriteRune(r)
		} else {
			pendingSep = true
		}
	}
	return b.String()
}

// Builtin returns the presets shipped with the form.
func Builtin() []Preset {
	race := settings.Defaults()
	race.Flags.Add(settings.FlagZeal)
	race.Flags.Add(settings.FlagEarlyPendant)

	newPlayer := settings.Defaults()
	newPlayer.General.ItemDifficulty = settings.DifficultyEasy
	newPlayer.Flags.Add(settings.FlagUnlockedMagic)
	newPlayer.Flags.Add(settings.FlagSightscopeAlwaysOn)
	newPlayer.Flags.Add(settings.FlagFreeMenuGlitch)

	lostWorlds := settings.Defaults()
	lostWorlds.General.Mode = settings.GameModeLostWorlds

	hard := settings.Defaults()
	hard.General.EnemyDifficulty = settings.DifficultyHard
	hard.General.ItemDifficulty = settings.DifficultyHard
	hard.Flags.Add(settings.FlagBossScaling)
	hard.Flags.Add(settings.FlagLockedChars)
	hard.Flags.Remove(settings.FlagFastTabs)

	return []Preset{
		{
			Metadata: Metadata{Name: "Race", Desc: "Balanced settings for races"},
			Settings: settings.Encode(race, false),
		},
		{
			Metadata: Metadata{Name: "New Player", Desc: "Gentler settings for a first seed"},
			Settings: settings.Encode(newPlayer, false),
		},
		{
			Metadata: Metadata{Name: "Lost Worlds", Desc: "The Lost Worlds game mode"},
			Settings: settings.Encode(lostWorlds, false),
		},
		{
			Metadata: Metadata{Name: "Hard", Desc: "Harder enemies and scarcer gear"},
			Settings: settings.Encode(hard, false),
		},
	}
}
