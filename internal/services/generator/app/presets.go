// Package app wires the generator domain to its storage and transport.
package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	apperrors "github.com/ctjot/seedgen/internal/platform/errors"
	"github.com/ctjot/seedgen/internal/services/generator/domain/preset"
	"github.com/ctjot/seedgen/internal/services/generator/storage"
)

// PresetService serves builtin and user-saved presets. Builtins shadow
// nothing: a user preset whose id collides with a builtin is rejected
// at creation time.
type PresetService struct {
	store    storage.PresetStore
	builtins []preset.Stored
}

// NewPresetService builds a preset service over the given store. The
// store may be nil, in which case only builtin presets are served.
func NewPresetService(store storage.PresetStore) *PresetService {
	builtins := preset.Builtin()
	stored := make([]preset.Stored, 0, len(builtins))
	for _, p := range builtins {
		stored = append(stored, preset.Stored{ID: p.ID(), Preset: p})
	}
	return &PresetService{store: store, builtins: stored}
}

// ListPresets returns builtins followed by saved presets.
func (s *PresetService) ListPresets(ctx context.Context) ([]preset.Stored, error) {
	out := make([]preset.Stored, len(s.builtins))
	copy(out, s.builtins)
	if s.store == nil {
		return out, nil
	}

	records, err := s.store.ListPresets(ctx)
	if err != nil {
		return nil, fmt.Errorf("list presets: %w", err)
	}
	for _, record := range records {
		stored, err := fromRecord(record)
		if err != nil {
			return nil, err
		}
		out = append(out, stored)
	}
	return out, nil
}

// GetPreset returns one preset by id, checking builtins first.
func (s *PresetService) GetPreset(ctx context.Context, id string) (preset.Stored, error) {
	for _, b := range s.builtins {
		if b.ID == id {
			return b, nil
		}
	}
	if s.store == nil {
		return preset.Stored{}, apperrors.WithMetadata(apperrors.CodeNotFound,
			"preset not found", map[string]string{"ID": id})
	}

	record, err := s.store.GetPreset(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return preset.Stored{}, apperrors.WithMetadata(apperrors.CodeNotFound,
				"preset not found", map[string]string{"ID": id})
		}
		return preset.Stored{}, fmt.Errorf("get preset: %w", err)
	}
	return fromRecord(record)
}

// CreatePreset validates and persists a preset.
func (s *PresetService) CreatePreset(ctx context.Context, p preset.Preset) (preset.Stored, error) {
	if err := p.Validate(); err != nil {
		return preset.Stored{}, err
	}
	if s.store == nil {
		return preset.Stored{}, fmt.Errorf("preset storage is not configured")
	}

	id := p.ID()
	for _, b := range s.builtins {
		if b.ID == id {
			return preset.Stored{}, apperrors.WithMetadata(apperrors.CodeAlreadyExists,
				"a builtin preset already uses this name", map[string]string{"ID": id})
		}
	}

	settingsJSON, err := json.Marshal(p.Settings)
	if err != nil {
		return preset.Stored{}, fmt.Errorf("marshal preset settings: %w", err)
	}
	now := time.Now().UTC()
	record := storage.PresetRecord{
		ID:          id,
		Name:        p.Metadata.Name,
		Description: p.Metadata.Desc,
		Settings:    string(settingsJSON),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.store.CreatePreset(ctx, record); err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			return preset.Stored{}, apperrors.WithMetadata(apperrors.CodeAlreadyExists,
				"a preset with this name already exists", map[string]string{"ID": id})
		}
		return preset.Stored{}, fmt.Errorf("create preset: %w", err)
	}
	return preset.Stored{ID: id, Preset: p, CreatedAt: now}, nil
}

func fromRecord(record storage.PresetRecord) (preset.Stored, error) {
	p := preset.Preset{
		Metadata: preset.Metadata{Name: record.Name, Desc: record.Description},
	}
	if err := json.Unmarshal([]byte(record.Settings), &p.Settings); err != nil {
		return preset.Stored{}, fmt.Errorf("unmarshal preset %s: %w", record.ID, err)
	}
	return preset.Stored{ID: record.ID, Preset: p, CreatedAt: record.CreatedAt}, nil
}
