// Package sqlite provides a SQLite-backed preset storage implementation.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	sqlitemigrate "github.com/ctjot/seedgen/internal/platform/storage/sqlitemigrate"
	"github.com/ctjot/seedgen/internal/services/generator/storage"
	"github.com/ctjot/seedgen/internal/services/generator/storage/sqlite/migrations"
	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"
)

// Store persists generator state in SQLite.
type Store struct {
	sqlDB *sql.DB
}

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// Open opens a SQLite preset store and applies embedded migrations.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := sqlitemigrate.ApplyMigrations(sqlDB, migrations.FS, ""); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// CreatePreset inserts one preset record.
func (s *Store) CreatePreset(ctx context.Context, record storage.PresetRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	id := strings.TrimSpace(record.ID)
	name := strings.TrimSpace(record.Name)
	if id == "" {
		return fmt.Errorf("preset id is required")
	}
	if name == "" {
		return fmt.Errorf("preset name is required")
	}
	if strings.TrimSpace(record.Settings) == "" {
		return fmt.Errorf("preset settings are required")
	}
	createdAt := record.CreatedAt.UTC()
	updatedAt := record.UpdatedAt.UTC()
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}
	if updatedAt.IsZero() {
		updatedAt = createdAt
	}

	_, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO presets (
		   id,
		   name,
		   description,
		   settings,
		   created_at,
		   updated_at
		 ) VALUES (?, ?, ?, ?, ?, ?)`,
		id,
		name,
		strings.TrimSpace(record.Description),
		record.Settings,
		toMillis(createdAt),
		toMillis(updatedAt),
	)
	if err != nil {
		if isPresetUniqueViolation(err) {
			return storage.ErrAlreadyExists
		}
		return fmt.Errorf("create preset: %w", err)
	}
	return nil
}

// GetPreset returns one preset by id.
func (s *Store) GetPreset(ctx context.Context, id string) (storage.PresetRecord, error) {
	if err := ctx.Err(); err != nil {
		return storage.PresetRecord{}, err
	}
	if s == nil || s.sqlDB == nil {
		return storage.PresetRecord{}, fmt.Errorf("storage is not configured")
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return storage.PresetRecord{}, fmt.Errorf("preset id is required")
	}

	row := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT id, name, description, settings, created_at, updated_at
		 FROM presets WHERE id = ?`,
		id,
	)
	record, err := scanPreset(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.PresetRecord{}, storage.ErrNotFound
		}
		return storage.PresetRecord{}, fmt.Errorf("get preset: %w", err)
	}
	return record, nil
}

// ListPresets returns every preset ordered by name.
func (s *Store) ListPresets(ctx context.Context) ([]storage.PresetRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}

	rows, err := s.sqlDB.QueryContext(
		ctx,
		`SELECT id, name, description, settings, created_at, updated_at
		 FROM presets ORDER BY name`,
	)
	if err != nil {
		return nil, fmt.Errorf("list presets: %w", err)
	}
	defer rows.Close()

	var records []storage.PresetRecord
	for rows.Next() {
		record, err := scanPreset(rows)
		if err != nil {
			return nil, fmt.Errorf("scan preset: %w", err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list presets: %w", err)
	}
	return records, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPreset(row rowScanner) (storage.PresetRecord, error) {
	var record storage.PresetRecord
	var createdAt, updatedAt int64
	if err := row.Scan(
		&record.ID,
		&record.Name,
		&record.Description,
		&record.Settings,
		&createdAt,
		&updatedAt,
	); err != nil {
		return storage.PresetRecord{}, err
	}
	record.CreatedAt = fromMillis(createdAt)
	record.UpdatedAt = fromMillis(updatedAt)
	return record, nil
}

func isPresetUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3lib.SQLITE_CONSTRAINT_UNIQUE:
			return true
		}
	}
	message := strings.ToLower(err.Error())
	return strings.Contains(message, "unique constraint failed")
}
