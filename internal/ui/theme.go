// Package ui provides theme management for the application.
// GiggleGen ships a light and a dark palette; the session's theme flag
// picks between them at render time.
package ui

import (
	"slices"

	"charm.land/lipgloss/v2"
)

// Theme defines a complete color palette for the application.
type Theme struct {
	// Name is the display name of the theme
	Name string

	// Primary is the main accent color (header gradient start, focus)
	Primary string
	// Gradient is where the header gradient ends
	Gradient string
	// Secondary is used for key hints and the active category
	Secondary string
	// Accent highlights the active rating and the fetch button
	Accent string
	// Thala is the highlight used for the thala category and its helicopter
	Thala string

	// Background colors
	Bg     string // Main background
	CardBg string // Joke card background

	// Text colors
	Text        string // Primary text
	TextMuted   string // Secondary/muted text
	TextInverse string // Text on colored backgrounds

	// Semantic colors
	Success string
	Warning string
	Error   string
	Info    string

	// Border is the default border color
	Border string
}

// ThemeName is a type for theme identifiers
type ThemeName string

// Available theme names
const (
	ThemeLight ThemeName = "light"
	ThemeDark  ThemeName = "dark"
)

// DefaultTheme is the default theme name
const DefaultTheme = ThemeLight

// BuiltinThemes contains all built-in themes
var BuiltinThemes = map[ThemeName]Theme{
	ThemeLight: {
		Name:        "Light",
		Primary:     "#667EEA",
		Gradient:    "#764BA2",
		Secondary:   "#4ECDC4",
		Accent:      "#FF6B6B",
		Thala:       "#FFD700",
		Bg:          "#F7FAFC",
		CardBg:      "#FFFFFF",
		Text:        "#4A5568",
		TextMuted:   "#718096",
		TextInverse: "#FFFFFF",
		Success:     "#45B7AF",
		Warning:     "#D69E2E",
		Error:       "#E53E3E",
		Info:        "#667EEA",
		Border:      "#E2E8F0",
	},
	ThemeDark: {
		Name:        "Dark",
		Primary:     "#818CF8",
		Gradient:    "#38BDF8",
		Secondary:   "#38BDF8",
		Accent:      "#FF6B6B",
		Thala:       "#FFFF00",
		Bg:          "#0F172A",
		CardBg:      "#1E293B",
		Text:        "#E2E8F0",
		TextMuted:   "#A0AEC0",
		TextInverse: "#0F172A",
		Success:     "#4ECDC4",
		Warning:     "#F59E0B",
		Error:       "#F87171",
		Info:        "#38BDF8",
		Border:      "#334155",
	},
}

// currentTheme holds the active theme name
var currentTheme = DefaultTheme

// ThemeFor maps the session theme flag to a theme name.
func ThemeFor(dark bool) ThemeName {
	if dark {
		return ThemeDark
	}
	return ThemeLight
}

// ThemeIcon is the glyph on the theme toggle: the moon offers dark mode,
// the sun offers light mode.
func ThemeIcon(dark bool) string {
	if dark {
		return "🌞"
	}
	return "🌙"
}

// GetTheme returns the theme with the given name, or the default theme if not found
func GetTheme(name ThemeName) Theme {
	if theme, ok := BuiltinThemes[name]; ok {
		return theme
	}
	return BuiltinThemes[DefaultTheme]
}

// CurrentTheme returns the currently active theme
func CurrentTheme() Theme {
	return GetTheme(currentTheme)
}

// CurrentThemeName returns the name of the currently active theme
func CurrentThemeName() ThemeName {
	return currentTheme
}

// ThemeNames returns the built-in theme names in sorted order
func ThemeNames() []ThemeName {
	names := make([]ThemeName, 0, len(BuiltinThemes))
	for name := range BuiltinThemes {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// SetTheme changes the active theme and regenerates all styles.
// Unknown names are ignored. Returns true if the theme changed.
func SetTheme(name ThemeName) bool {
	if _, ok := BuiltinThemes[name]; !ok {
		return false
	}
	if name == currentTheme {
		return false
	}
	currentTheme = name
	regenerateStyles()
	return true
}

// regenerateStyles updates all style variables based on the current theme
func regenerateStyles() {
	t := CurrentTheme()

	ColorPrimary = lipgloss.Color(t.Primary)
	ColorSecondary = lipgloss.Color(t.Secondary)
	ColorAccent = lipgloss.Color(t.Accent)
	ColorThala = lipgloss.Color(t.Thala)
	ColorBg = lipgloss.Color(t.Bg)
	ColorCardBg = lipgloss.Color(t.CardBg)
	ColorText = lipgloss.Color(t.Text)
	ColorTextMuted = lipgloss.Color(t.TextMuted)
	ColorTextInverse = lipgloss.Color(t.TextInverse)
	ColorBorder = lipgloss.Color(t.Border)
	ColorSuccess = lipgloss.Color(t.Success)
	ColorWarning = lipgloss.Color(t.Warning)
	ColorError = lipgloss.Color(t.Error)
	ColorInfo = lipgloss.Color(t.Info)

	buildStyles()
	RefreshModalStyles()
}
