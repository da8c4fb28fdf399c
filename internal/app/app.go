// Package app is the Bubble Tea model for the GiggleGen TUI. It owns the
// session state and turns the effects returned by the session controller
// into commands.
package app

import (
	"math/rand/v2"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/zhubert/gigglegen/internal/catalog"
	"github.com/zhubert/gigglegen/internal/clipboard"
	"github.com/zhubert/gigglegen/internal/config"
	"github.com/zhubert/gigglegen/internal/emoji"
	"github.com/zhubert/gigglegen/internal/logger"
	"github.com/zhubert/gigglegen/internal/notification"
	"github.com/zhubert/gigglegen/internal/selector"
	"github.com/zhubert/gigglegen/internal/session"
	"github.com/zhubert/gigglegen/internal/share"
	"github.com/zhubert/gigglegen/internal/ui"
)

// Model is the root TUI model
type Model struct {
	config *config.Config

	header *ui.Header
	footer *ui.Footer
	card   *ui.Card
	modal  *ui.Modal
	keys   ui.KeyMap

	width  int
	height int

	state   session.State
	ctrl    *session.Controller
	catalog *catalog.Catalog
	picker  session.Picker

	markers  *emoji.Manager
	backdrop *emoji.Backdrop
	rng      emoji.Rand

	sharer    Sharer
	writeClip func(string) error

	// jokeCategory is the category the current joke was drawn from
	jokeCategory catalog.CategoryID
	// heliStart is when the thala helicopter took off; zero when grounded
	heliStart time.Time
	lastFrame time.Time
	now       func() time.Time
}

// New creates the model from preferences, applying any options
func New(cfg *config.Config, opts ...Option) *Model {
	if cfg == nil {
		cfg = config.Default()
	}

	m := &Model{
		config:    cfg,
		header:    ui.NewHeader(),
		footer:    ui.NewFooter(),
		card:      ui.NewCard(),
		modal:     ui.NewModal(),
		keys:      ui.DefaultKeyMap(),
		catalog:   catalog.Default(),
		writeClip: clipboard.WriteText,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}

	if m.picker == nil {
		if cfg.Seed != nil {
			m.picker = selector.NewSeeded(m.catalog, *cfg.Seed)
		} else {
			m.picker = selector.NewRandom(m.catalog)
		}
	}
	if m.rng == nil {
		seed := rand.Uint64()
		if cfg.Seed != nil {
			seed = *cfg.Seed
		}
		m.rng = emoji.NewRand(seed)
	}
	if m.sharer == nil {
		m.sharer = share.NewService(share.WithLink(cfg.ShareURL))
	}

	m.ctrl = session.NewController(m.picker)
	m.state = session.NewState(cfg.Category(), cfg.DarkTheme)
	m.markers = emoji.NewManager(m.rng, emoji.WithClock(m.now))
	m.backdrop = emoji.NewBackdrop(m.rng)
	m.applyTheme()
	notification.SetEnabled(cfg.Notifications)

	logger.ComponentLogger("app").Info("model created",
		"category", m.state.SelectedCategory,
		"dark", m.state.ThemeIsDark,
		"seeded", cfg.Seed != nil,
	)
	return m
}

// State returns a copy of the session state
func (m *Model) State() session.State {
	return m.state
}

// Markers returns the live transient markers
func (m *Model) Markers() []emoji.Marker {
	return m.markers.Active()
}

// Init starts the backdrop animation
func (m *Model) Init() tea.Cmd {
	m.lastFrame = m.now()
	return backdropTick()
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateSizes()
		return m, nil

	case tea.KeyPressMsg:
		if m.modal.IsVisible() {
			return m.handleModalKey(msg)
		}
		return m.handleKey(msg)

	case BackdropTickMsg:
		return m.handleBackdropTick(time.Time(msg))

	case MarkerExpiredMsg:
		m.markers.Remove(msg.ID)
		return m, nil

	case ShareResultMsg:
		return m, m.handleShareResult(msg.Result)

	case CopyResultMsg:
		return m, m.handleCopyResult(msg.Err)

	case ui.FlashTickMsg:
		m.footer.ClearIfExpired()
		if m.footer.HasFlash() {
			return m, ui.FlashTick()
		}
		return m, nil
	}

	if m.modal.IsVisible() {
		modal, cmd := m.modal.Update(msg)
		m.modal = modal
		return m, cmd
	}
	return m, nil
}

// updateSizes recalculates and applies dimensions to all UI components
func (m *Model) updateSizes() {
	ctx := ui.GetViewContext()
	ctx.UpdateTerminalSize(m.width, m.height)

	m.header.SetWidth(ctx.TerminalWidth)
	m.footer.SetWidth(ctx.TerminalWidth)
	m.card.SetWidth(ctx.CardWidth)
}

// applyTheme syncs the ui palette with the session's theme flag
func (m *Model) applyTheme() {
	ui.SetTheme(ui.ThemeFor(m.state.ThemeIsDark))
	m.footer.RefreshStyles()
	m.header.SetDark(m.state.ThemeIsDark)
}
