package ui

import (
	"slices"
	"testing"
)

func TestBuiltinThemes_Complete(t *testing.T) {
	for name, theme := range BuiltinThemes {
		t.Run(string(name), func(t *testing.T) {
			colors := map[string]string{
				"Primary":     theme.Primary,
				"Gradient":    theme.Gradient,
				"Secondary":   theme.Secondary,
				"Accent":      theme.Accent,
				"Thala":       theme.Thala,
				"Bg":          theme.Bg,
				"CardBg":      theme.CardBg,
				"Text":        theme.Text,
				"TextMuted":   theme.TextMuted,
				"TextInverse": theme.TextInverse,
				"Success":     theme.Success,
				"Warning":     theme.Warning,
				"Error":       theme.Error,
				"Info":        theme.Info,
				"Border":      theme.Border,
			}
			for field, hex := range colors {
				r, g, b := parseHexColor(hex)
				if len(hex) != 7 || hex[0] != '#' {
					t.Errorf("%s = %q is not a #RRGGBB color", field, hex)
				}
				if hex != "#000000" && r == 0 && g == 0 && b == 0 {
					t.Errorf("%s = %q failed to parse", field, hex)
				}
			}
			if theme.Name == "" {
				t.Error("theme has no display name")
			}
		})
	}
}

func TestThemeFor(t *testing.T) {
	if got := ThemeFor(true); got != ThemeDark {
		t.Errorf("ThemeFor(true) = %q, want dark", got)
	}
	if got := ThemeFor(false); got != ThemeLight {
		t.Errorf("ThemeFor(false) = %q, want light", got)
	}
}

func TestThemeIcon(t *testing.T) {
	if ThemeIcon(false) != "🌙" {
		t.Errorf("light theme should offer the moon, got %q", ThemeIcon(false))
	}
	if ThemeIcon(true) != "🌞" {
		t.Errorf("dark theme should offer the sun, got %q", ThemeIcon(true))
	}
}

func TestGetTheme_UnknownFallsBack(t *testing.T) {
	got := GetTheme("solarized")
	if got != BuiltinThemes[DefaultTheme] {
		t.Errorf("GetTheme(unknown) = %q, want the default theme", got.Name)
	}
}

func TestSetTheme(t *testing.T) {
	useTheme(t, DefaultTheme)

	if SetTheme(DefaultTheme) {
		t.Error("SetTheme to the current theme should report no change")
	}
	if SetTheme("bogus") {
		t.Error("SetTheme with an unknown name should report no change")
	}
	if CurrentThemeName() != DefaultTheme {
		t.Errorf("theme changed to %q after rejected SetTheme", CurrentThemeName())
	}

	if !SetTheme(ThemeDark) {
		t.Fatal("SetTheme(dark) should report a change")
	}
	if CurrentThemeName() != ThemeDark {
		t.Errorf("CurrentThemeName() = %q, want dark", CurrentThemeName())
	}
	if CurrentTheme().Bg != BuiltinThemes[ThemeDark].Bg {
		t.Error("CurrentTheme() did not follow SetTheme")
	}
}

func TestSetTheme_RegeneratesStyles(t *testing.T) {
	useTheme(t, ThemeLight)
	before := CategoryActiveStyle.GetBackground()

	SetTheme(ThemeDark)
	after := CategoryActiveStyle.GetBackground()

	r1, g1, b1, _ := before.RGBA()
	r2, g2, b2, _ := after.RGBA()
	if r1 == r2 && g1 == g2 && b1 == b2 {
		t.Error("CategoryActiveStyle background should change with the theme")
	}
}

func TestThemeNames(t *testing.T) {
	names := ThemeNames()
	if !slices.Equal(names, []ThemeName{ThemeDark, ThemeLight}) {
		t.Errorf("ThemeNames() = %v", names)
	}
}
