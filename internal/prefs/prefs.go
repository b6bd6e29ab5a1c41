// Package prefs persists user display preferences and tells interested
// components when they change.
package prefs

import (
	"errors"
	"fmt"

	"github.com/abhisek/secplus/internal/schema"
)

// PreferencesKey is the storage key holding the preferences object.
const PreferencesKey = "secplus_preferences"

// Theme is the color scheme.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// UISize is the layout density.
type UISize string

const (
	UISizeCozy   UISize = "cozy"
	UISizeNormal UISize = "normal"
	UISizeLarge  UISize = "large"
)

// MinDomain and MaxDomain bound LastStudiedDomain.
const (
	MinDomain = 1
	MaxDomain = 5
)

var (
	ErrInvalidTheme  = errors.New("invalid theme")
	ErrInvalidUISize = errors.New("invalid ui size")
	ErrInvalidDomain = errors.New("invalid domain")
	ErrNotSaved      = errors.New("preferences not saved")
)

// Preferences is the persisted preferences object.
type Preferences struct {
	Theme             Theme  `json:"theme"`
	UISize            UISize `json:"uiSize"`
	LastStudiedDomain *int   `json:"lastStudiedDomain"`
}

// Defaults returns the preferences used when nothing valid is stored.
func Defaults() Preferences {
	return Preferences{Theme: ThemeDark, UISize: UISizeNormal}
}

// ParseTheme validates a theme name.
func ParseTheme(s string) (Theme, error) {
	switch t := Theme(s); t {
	case ThemeLight, ThemeDark:
		return t, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidTheme, s)
}

// ParseUISize validates a ui size name.
func ParseUISize(s string) (UISize, error) {
	switch u := UISize(s); u {
	case UISizeCozy, UISizeNormal, UISizeLarge:
		return u, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidUISize, s)
}

// Themes lists the valid themes in display order.
func Themes() []Theme { return []Theme{ThemeDark, ThemeLight} }

// UISizes lists the valid ui sizes in display order.
func UISizes() []UISize { return []UISize{UISizeCozy, UISizeNormal, UISizeLarge} }

// PreferencesSchema validates the stored preferences object. Every field is
// optional; missing ones take their default.
var PreferencesSchema = &schema.Schema{
	Name:        "preferences",
	Description: "User display preferences",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"theme":  map[string]any{"enum": []any{"light", "dark"}},
			"uiSize": map[string]any{"enum": []any{"cozy", "normal", "large"}},
			"lastStudiedDomain": map[string]any{
				"type":    []any{"integer", "null"},
				"minimum": MinDomain,
				"maximum": MaxDomain,
			},
		},
	},
}
