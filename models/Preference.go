package models

import (
	"strings"
	"time"
)

// Preference is a single persisted UI setting stored as a key/value row.
// The widget owns exactly two of them: the visual theme and the UI language.
type Preference struct {
	Key       string `gorm:"primaryKey;type:varchar(64)"`
	Value     string `gorm:"not null;type:varchar(32)"`
	UpdatedAt time.Time
}

// Persisted preference keys.
const (
	PreferenceThemeKey    = "testimonial-theme"
	PreferenceLanguageKey = "testimonial-language"
)

// Theme identifiers.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"

	// DefaultTheme applies when no preference has been stored yet.
	DefaultTheme = ThemeLight
)

// ValidTheme reports whether the provided value names a known theme.
func ValidTheme(value string) bool {
	switch value {
	case ThemeLight, ThemeDark:
		return true
	default:
		return false
	}
}

// NormalizeTheme trims and lowercases the value, falling back to the default
// theme when the result is not a known theme identifier.
func NormalizeTheme(value string) string {
	normalized := strings.ToLower(strings.TrimSpace(value))
	if ValidTheme(normalized) {
		return normalized
	}
	return DefaultTheme
}

// ToggleTheme returns the opposite theme of the provided one.
func ToggleTheme(value string) string {
	if NormalizeTheme(value) == ThemeLight {
		return ThemeDark
	}
	return ThemeLight
}
