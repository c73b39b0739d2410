package httpapi

import (
	"context"
	"io"
	"net/http"
	"time"

	apperrors "github.com/ctjot/seedgen/internal/platform/errors"
	"github.com/ctjot/seedgen/internal/platform/id"
	"github.com/ctjot/seedgen/internal/services/generator/domain/flagrules"
	"github.com/ctjot/seedgen/internal/services/generator/domain/logicbudget"
	"github.com/ctjot/seedgen/internal/services/generator/domain/objective"
	"github.com/ctjot/seedgen/internal/services/generator/domain/preset"
	"github.com/ctjot/seedgen/internal/services/generator/domain/seed"
	"github.com/ctjot/seedgen/internal/services/generator/domain/settings"
)

// PresetService is the preset lifecycle the API depends on.
type PresetService interface {
	ListPresets(ctx context.Context) ([]preset.Stored, error)
	GetPreset(ctx context.Context, id string) (preset.Stored, error)
	CreatePreset(ctx context.Context, p preset.Preset) (preset.Stored, error)
}

func (h *Handler) handleEnums(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"enums":         settings.EnumsMap(),
		"inverse_enums": settings.InverseEnumsMap(),
	})
}

func (h *Handler) handleForcedFlags(w http.ResponseWriter, r *http.Request) {
	rules := flagrules.DefaultRules()

	type effects struct {
		ForcedOn  []string `json:"forced_on"`
		ForcedOff []string `json:"forced_off"`
	}
	canon := func(flags []settings.Flag) []string {
		out := make([]string, 0, len(flags))
		for _, f := range flags {
			out = append(out, settings.CanonicalFlag(f))
		}
		return out
	}

	modes := make(map[string]effects, len(rules.Modes))
	for mode, e := range rules.Modes {
		modes[settings.CanonicalGameMode(mode)] = effects{
			ForcedOn:  canon(e.ForcesOn),
			ForcedOff: canon(e.ForcesOff),
		}
	}
	flags := make(map[string]effects, len(rules.Flags))
	for flag, e := range rules.Flags {
		flags[settings.CanonicalFlag(flag)] = effects{
			ForcedOn:  canon(e.ForcesOn),
			ForcedOff: canon(e.ForcesOff),
		}
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"modes": modes,
		"flags": flags,
	})
}

func (h *Handler) handleObjectiveAliases(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"aliases": objective.Aliases()})
}

type validateObjectivesRequest struct {
	Entries []string `json:"entries"`
}

type objectiveEntryError struct {
	Index int       `json:"index"`
	Error errorBody `json:"error"`
}

func (h *Handler) handleValidateObjectives(w http.ResponseWriter, r *http.Request) {
	var req validateObjectivesRequest
	if !decodeBody(w, r, &req) {
		return
	}

	entryErrors := objective.ValidateEntries(req.Entries)
	out := make([]objectiveEntryError, 0, len(entryErrors))
	for _, e := range entryErrors {
		out = append(out, objectiveEntryError{Index: e.Index, Error: toErrorBody(r, e.Err)})
	}

	canonical := make([]string, 0, len(req.Entries))
	if len(entryErrors) == 0 {
		for _, entry := range req.Entries {
			c, err := objective.Parse(entry)
			if err != nil {
				writeError(w, r, err)
				return
			}
			canonical = append(canonical, c)
		}
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"valid":     len(entryErrors) == 0,
		"errors":    out,
		"canonical": canonical,
	})
}

func (h *Handler) handleValidateSettings(w http.ResponseWriter, r *http.Request) {
	var wire settings.Wire
	if !decodeBody(w, r, &wire) {
		return
	}

	s := settings.Decode(wire)
	var failures []errorBody

	graph := flagrules.NewGraph(flagrules.DefaultRules())
	st := graph.Settle(s.General.Mode, s.Flags)
	s.Flags = st.Effective

	duplicates := s.Flags.Has(settings.FlagDuplicateCharacters)
	if s.Flags.Has(settings.FlagCharRando) {
		if err := s.Chars.Choices.Validate(duplicates); err != nil {
			failures = append(failures, toErrorBody(r, err))
		}
	}
	if err := logicbudget.Check(s.Flags, s.General.Mode); err != nil {
		failures = append(failures, toErrorBody(r, err))
	}
	if s.Flags.Has(settings.FlagBucketList) {
		for _, e := range objective.ValidateEntries(s.Bucket.Hints) {
			failures = append(failures, toErrorBody(r, e.Err))
		}
	}

	forcedOn := make([]string, 0, len(st.ForcedOn))
	for _, f := range st.ForcedOn.Sorted() {
		forcedOn = append(forcedOn, settings.CanonicalFlag(f))
	}
	forcedOff := make([]string, 0, len(st.ForcedOff))
	for _, f := range st.ForcedOff.Sorted() {
		forcedOff = append(forcedOff, settings.CanonicalFlag(f))
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"valid":      len(failures) == 0,
		"errors":     failures,
		"forced_on":  forcedOn,
		"forced_off": forcedOff,
	})
}

type encodeSettingsRequest struct {
	Settings settings.Wire `json:"settings"`
	Strict   bool          `json:"strict"`
}

func (h *Handler) handleEncodeSettings(w http.ResponseWriter, r *http.Request) {
	var req encodeSettingsRequest
	if !decodeBody(w, r, &req) {
		return
	}
	s := settings.Decode(req.Settings)
	writeJSON(w, http.StatusOK, map[string]any{
		"settings": settings.Encode(s, req.Strict),
	})
}

type presetView struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	Desc      string        `json:"desc,omitempty"`
	Settings  settings.Wire `json:"settings"`
	CreatedAt *time.Time    `json:"created_at,omitempty"`
}

func toPresetView(stored preset.Stored) presetView {
	view := presetView{
		ID:       stored.ID,
		Name:     stored.Preset.Metadata.Name,
		Desc:     stored.Preset.Metadata.Desc,
		Settings: stored.Preset.Settings,
	}
	if !stored.CreatedAt.IsZero() {
		at := stored.CreatedAt
		view.CreatedAt = &at
	}
	return view
}

func (h *Handler) handleListPresets(w http.ResponseWriter, r *http.Request) {
	if h.presets == nil {
		writeError(w, r, errNilService)
		return
	}
	stored, err := h.presets.ListPresets(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	views := make([]presetView, 0, len(stored))
	for _, p := range stored {
		views = append(views, toPresetView(p))
	}
	writeJSON(w, http.StatusOK, map[string]any{"presets": views})
}

func (h *Handler) handleGetPreset(w http.ResponseWriter, r *http.Request) {
	if h.presets == nil {
		writeError(w, r, errNilService)
		return
	}
	stored, err := h.presets.GetPreset(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"preset": toPresetView(stored)})
}

func (h *Handler) handleCreatePreset(w http.ResponseWriter, r *http.Request) {
	if h.presets == nil {
		writeError(w, r, errNilService)
		return
	}
	body := http.MaxBytesReader(w, r.Body, 1<<20)
	defer body.Close()

	data, err := io.ReadAll(body)
	if err != nil {
		writeError(w, r, apperrors.Wrap(apperrors.CodePresetInvalidJSON,
			"read preset body", err))
		return
	}

	p, err := preset.Parse(data)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if err := p.Validate(); err != nil {
		writeError(w, r, err)
		return
	}

	stored, err := h.presets.CreatePreset(r.Context(), p)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"preset": toPresetView(stored)})
}

func (h *Handler) handleSeedName(w http.ResponseWriter, r *http.Request) {
	name, err := seed.New()
	if err != nil {
		writeError(w, r, apperrors.Wrap(apperrors.CodeUnknown, "generate seed name", err))
		return
	}
	shareID, err := id.NewID()
	if err != nil {
		writeError(w, r, apperrors.Wrap(apperrors.CodeUnknown, "generate share id", err))
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"seed": name, "share_id": shareID})
}
