package ui

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Color palette, initialized from the default theme and swapped by SetTheme
var (
	ColorPrimary     color.Color
	ColorSecondary   color.Color
	ColorAccent      color.Color
	ColorThala       color.Color
	ColorBg          color.Color
	ColorCardBg      color.Color
	ColorText        color.Color
	ColorTextMuted   color.Color
	ColorTextInverse color.Color
	ColorBorder      color.Color
	ColorSuccess     color.Color
	ColorWarning     color.Color
	ColorError       color.Color
	ColorInfo        color.Color
)

// Header styles
var (
	HeaderSubtitleStyle lipgloss.Style
)

// Footer styles
var (
	FooterStyle     lipgloss.Style
	FooterKeyStyle  lipgloss.Style
	FooterDescStyle lipgloss.Style
	FooterSepStyle  lipgloss.Style

	FlashInfoStyle    lipgloss.Style
	FlashSuccessStyle lipgloss.Style
	FlashWarningStyle lipgloss.Style
	FlashErrorStyle   lipgloss.Style
)

// Card styles
var (
	CardStyle        lipgloss.Style
	CardJokeStyle    lipgloss.Style
	CardPromptStyle  lipgloss.Style
	CardCounterStyle lipgloss.Style

	CategoryStyle       lipgloss.Style
	CategoryActiveStyle lipgloss.Style
	CategoryThalaStyle  lipgloss.Style

	RatingStyle       lipgloss.Style
	RatingActiveStyle lipgloss.Style

	ButtonStyle        lipgloss.Style
	ButtonPrimaryStyle lipgloss.Style
)

// Modal styles
var (
	ModalStyle      lipgloss.Style
	ModalTitleStyle lipgloss.Style
	ModalHelpStyle  lipgloss.Style
)

// Status styles
var (
	StatusErrorStyle lipgloss.Style
)

func init() {
	regenerateStyles()
}

// buildStyles rebuilds every style from the current Color* variables.
func buildStyles() {
	HeaderSubtitleStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Italic(true)

	FooterStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Padding(0, 1)

	FooterKeyStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorSecondary)

	FooterDescStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted)

	FooterSepStyle = lipgloss.NewStyle().
		Foreground(ColorBorder)

	FlashInfoStyle = lipgloss.NewStyle().
		Foreground(ColorInfo).
		Bold(true)

	FlashSuccessStyle = lipgloss.NewStyle().
		Foreground(ColorSuccess).
		Bold(true)

	FlashWarningStyle = lipgloss.NewStyle().
		Foreground(ColorWarning).
		Bold(true)

	FlashErrorStyle = lipgloss.NewStyle().
		Foreground(ColorError).
		Bold(true)

	CardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Padding(1, 2)

	CardJokeStyle = lipgloss.NewStyle().
		Foreground(ColorText)

	CardPromptStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Italic(true)

	CardCounterStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted)

	CategoryStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Padding(0, 1)

	CategoryActiveStyle = lipgloss.NewStyle().
		Foreground(ColorTextInverse).
		Background(ColorPrimary).
		Bold(true).
		Padding(0, 1)

	CategoryThalaStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#000000")).
		Background(ColorThala).
		Bold(true).
		Padding(0, 1)

	RatingStyle = lipgloss.NewStyle().
		Padding(0, 1)

	RatingActiveStyle = lipgloss.NewStyle().
		Background(ColorAccent).
		Padding(0, 1)

	ButtonStyle = lipgloss.NewStyle().
		Foreground(ColorText).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Padding(0, 1)

	ButtonPrimaryStyle = lipgloss.NewStyle().
		Foreground(ColorAccent).
		Bold(true).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorAccent).
		Padding(0, 1)

	ModalStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorPrimary).
		Padding(1, 2).
		Width(ModalWidth)

	ModalTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorPrimary).
		MarginBottom(1)

	ModalHelpStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Italic(true).
		MarginTop(1)

	StatusErrorStyle = lipgloss.NewStyle().
		Foreground(ColorError).
		Bold(true)
}
