// Package prefs persists the two widget preferences (theme and language) in
// a key/value table and caches them for the lifetime of the process.
package prefs

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"opina/internal/i18n"
	applog "opina/internal/log"
	"opina/models"
)

// Store reads both preferences once at construction and writes through on
// every toggle. Reads are served from memory.
type Store struct {
	db *gorm.DB

	mu       sync.RWMutex
	theme    string
	language i18n.Language
}

// NewStore loads the persisted preferences, applying the light/Spanish
// defaults for keys that have never been written.
func NewStore(db *gorm.DB) (*Store, error) {
	if db == nil {
		return nil, errors.New("prefs: database handle is nil")
	}

	store := &Store{
		db:       db,
		theme:    models.DefaultTheme,
		language: i18n.Default,
	}

	theme, err := store.read(models.PreferenceThemeKey)
	if err != nil {
		return nil, err
	}
	if theme != "" {
		store.theme = models.NormalizeTheme(theme)
	}

	language, err := store.read(models.PreferenceLanguageKey)
	if err != nil {
		return nil, err
	}
	if language != "" {
		store.language = i18n.Resolve(language)
	}

	applog.Debug(context.Background(), "preferences loaded",
		"theme", store.theme,
		"language", string(store.language),
	)

	return store, nil
}

func (s *Store) read(key string) (string, error) {
	var pref models.Preference
	err := s.db.Where("key = ?", key).First(&pref).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("prefs: read %s: %w", key, err)
	}
	return pref.Value, nil
}

func (s *Store) write(ctx context.Context, key, value string) error {
	pref := models.Preference{Key: key, Value: value}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&pref).Error
	if err != nil {
		return fmt.Errorf("prefs: write %s: %w", key, err)
	}
	return nil
}

// Theme returns the current theme identifier.
func (s *Store) Theme() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.theme
}

// Language returns the current UI language.
func (s *Store) Language() i18n.Language {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.language
}

// SetTheme persists and caches the provided theme. Unknown values collapse
// to the default theme rather than failing.
func (s *Store) SetTheme(ctx context.Context, value string) error {
	normalized := models.NormalizeTheme(value)
	if err := s.write(ctx, models.PreferenceThemeKey, normalized); err != nil {
		return err
	}

	s.mu.Lock()
	s.theme = normalized
	s.mu.Unlock()

	applog.Info(ctx, "theme preference updated", "theme", normalized)
	return nil
}

// SetLanguage persists and caches the provided language.
func (s *Store) SetLanguage(ctx context.Context, value string) error {
	resolved := i18n.Resolve(value)
	if err := s.write(ctx, models.PreferenceLanguageKey, string(resolved)); err != nil {
		return err
	}

	s.mu.Lock()
	s.language = resolved
	s.mu.Unlock()

	applog.Info(ctx, "language preference updated", "language", string(resolved))
	return nil
}
