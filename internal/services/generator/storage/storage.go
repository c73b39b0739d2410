// Package storage defines persistence contracts for generator service state.
package storage

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrNotFound indicates a requested preset record is missing.
	ErrNotFound = errors.New("record not found")
	// ErrAlreadyExists indicates a preset with the same id already exists.
	ErrAlreadyExists = errors.New("record already exists")
)

// PresetRecord stores one saved preset document.
type PresetRecord struct {
	ID          string
	Name        string
	Description string
	// Settings holds the wire-schema JSON document for the preset.
	Settings  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// PresetStore persists preset records.
type PresetStore interface {
	CreatePreset(ctx context.Context, record PresetRecord) error
	GetPreset(ctx context.Context, id string) (PresetRecord, error)
	ListPresets(ctx context.Context) ([]PresetRecord, error)
}
