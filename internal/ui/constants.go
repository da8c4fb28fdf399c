// Package ui provides constants for layout calculations and configuration.
package ui

import "time"

// Layout constants
const (
	// HeaderHeight is the height of the header in lines (title bar + subtitle)
	HeaderHeight = 2

	// FooterHeight is the height of the footer in lines
	FooterHeight = 1

	// BorderSize is the total border width (1 on each side)
	BorderSize = 2

	// CardPaddingWidth is the horizontal padding inside the card (Padding(1, 2) = 2 left + 2 right)
	CardPaddingWidth = 4

	// MaxCardWidth caps the joke card on wide terminals
	MaxCardWidth = 72

	// MinCardWidth is the narrowest card that still wraps jokes legibly
	MinCardWidth = 24

	// MinTerminalWidth and MinTerminalHeight clamp layout calculations
	MinTerminalWidth  = 30
	MinTerminalHeight = 12

	// DefaultWrapWidth is the width used for wrapping before the first resize
	DefaultWrapWidth = 60
)

// Modal dimensions
const (
	// ModalWidth is the default width of modals
	ModalWidth = 48
)

// Animation timing
const (
	// BackdropFrame is the interval between backdrop animation frames
	BackdropFrame = 100 * time.Millisecond

	// HelicopterDuration is how long the thala helicopter crosses the card
	HelicopterDuration = 2 * time.Second
)
