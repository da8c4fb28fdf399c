package ui

import (
	"sync"

	"github.com/zhubert/gigglegen/internal/logger"
)

// ViewContext holds centralized layout calculations.
// All size calculations should go through this to avoid duplication.
type ViewContext struct {
	// Terminal dimensions
	TerminalWidth  int
	TerminalHeight int

	// Calculated dimensions
	HeaderHeight  int
	FooterHeight  int
	ContentHeight int
	CardWidth     int

	mu sync.Mutex
}

// Global view context instance
var ctx *ViewContext
var ctxOnce sync.Once

// GetViewContext returns the singleton ViewContext instance
func GetViewContext() *ViewContext {
	ctxOnce.Do(func() {
		ctx = &ViewContext{
			HeaderHeight: HeaderHeight,
			FooterHeight: FooterHeight,
			CardWidth:    DefaultWrapWidth + CardPaddingWidth + BorderSize,
		}
		logger.ComponentLogger("ui").Debug("ViewContext initialized")
	})
	return ctx
}

// UpdateTerminalSize recalculates all dimensions when terminal size changes.
// It should be called from the main event loop when the terminal is resized.
func (v *ViewContext) UpdateTerminalSize(width, height int) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if width < MinTerminalWidth {
		width = MinTerminalWidth
	}
	if height < MinTerminalHeight {
		height = MinTerminalHeight
	}

	v.TerminalWidth = width
	v.TerminalHeight = height
	v.HeaderHeight = HeaderHeight
	v.FooterHeight = FooterHeight
	v.ContentHeight = height - v.HeaderHeight - v.FooterHeight
	v.CardWidth = cardWidthFor(width)

	logger.ComponentLogger("ui").Debug("Terminal size updated",
		"width", width,
		"height", height,
		"contentHeight", v.ContentHeight,
		"cardWidth", v.CardWidth,
	)
}

// WrapWidth returns the usable text width inside the card
func (v *ViewContext) WrapWidth() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.CardWidth - BorderSize - CardPaddingWidth
}

// cardWidthFor leaves a two-column margin on each side and clamps the result.
func cardWidthFor(width int) int {
	w := width - 4
	if w > MaxCardWidth {
		w = MaxCardWidth
	}
	if w < MinCardWidth {
		w = MinCardWidth
	}
	return w
}
