package app

import (
	"context"
	"fmt"
	"time"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"github.com/zhubert/gigglegen/internal/catalog"
	"github.com/zhubert/gigglegen/internal/emoji"
	"github.com/zhubert/gigglegen/internal/errors"
	"github.com/zhubert/gigglegen/internal/logger"
	"github.com/zhubert/gigglegen/internal/notification"
	"github.com/zhubert/gigglegen/internal/session"
	"github.com/zhubert/gigglegen/internal/share"
	"github.com/zhubert/gigglegen/internal/ui"
)

// shareTimeout bounds a single share attempt
const shareTimeout = 10 * time.Second

// Flash texts
const (
	flashNoJoke     = "Get a joke first!"
	flashShared     = "Joke shared!"
	flashShareLink  = "Opened WhatsApp share link"
	flashThrottled  = "Share ignored, try again in a second"
	flashShareError = "Couldn't share the joke"
)

func backdropTick() tea.Cmd {
	return tea.Tick(ui.BackdropFrame, func(t time.Time) tea.Msg {
		return BackdropTickMsg(t)
	})
}

// handleKey handles key presses on the main screen
func (m *Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Fetch):
		return m, m.apply(session.FetchJoke{})
	case key.Matches(msg, m.keys.Meh):
		return m, m.apply(session.Rate{Value: session.RatingMeh})
	case key.Matches(msg, m.keys.Good):
		return m, m.apply(session.Rate{Value: session.RatingGood})
	case key.Matches(msg, m.keys.Hilarious):
		return m, m.apply(session.Rate{Value: session.RatingHilarious})
	case key.Matches(msg, m.keys.NextCat):
		return m, m.apply(session.SelectCategory{Category: catalog.Next(m.state.SelectedCategory)})
	case key.Matches(msg, m.keys.PrevCat):
		return m, m.apply(session.SelectCategory{Category: catalog.Prev(m.state.SelectedCategory)})
	case key.Matches(msg, m.keys.PickCat):
		m.showCategoryPicker()
		return m, nil
	case key.Matches(msg, m.keys.Theme):
		return m, m.apply(session.ToggleTheme{})
	case key.Matches(msg, m.keys.Share):
		return m, m.apply(session.ShareCurrentJoke{})
	case key.Matches(msg, m.keys.Copy):
		return m, m.apply(session.CopyCurrentJoke{})
	case key.Matches(msg, m.keys.Help):
		m.showHelp()
		return m, nil
	}
	return m, nil
}

// apply runs an action through the session controller and turns the
// resulting effects into commands. Errors become footer flashes.
func (m *Model) apply(a session.Action) tea.Cmd {
	log := logger.ComponentLogger("app")

	prev := m.state
	next, effects, err := m.ctrl.Apply(m.state, a)
	if err != nil {
		log.Warn("action rejected", "action", fmt.Sprintf("%T", a), "error", err)
		return m.flashForError(err)
	}
	m.state = next

	if prev.ThemeIsDark != next.ThemeIsDark {
		m.applyTheme()
	}
	if next.JokeCount != prev.JokeCount {
		m.header.SetJokeCount(next.JokeCount)
		m.jokeCategory = next.SelectedCategory
		if m.jokeCategory == catalog.Thala {
			m.heliStart = m.now()
		}
		log.Debug("joke fetched", "category", next.SelectedCategory, "count", next.JokeCount)
	}

	cmds := make([]tea.Cmd, 0, len(effects))
	for _, e := range effects {
		cmds = append(cmds, m.runEffect(e))
	}
	return tea.Batch(cmds...)
}

func (m *Model) runEffect(e session.Effect) tea.Cmd {
	switch e := e.(type) {
	case session.SpawnMarker:
		mk := m.markers.Spawn()
		return tea.Tick(emoji.Lifetime, func(time.Time) tea.Msg {
			return MarkerExpiredMsg{ID: mk.ID}
		})
	case session.Share:
		sharer := m.sharer
		return func() tea.Msg {
			ctx, cancel := context.WithTimeout(context.Background(), shareTimeout)
			defer cancel()
			return ShareResultMsg{Result: sharer.Share(ctx, e.Text)}
		}
	case session.Copy:
		write := m.writeClip
		return tea.Batch(
			tea.SetClipboard(e.Text),
			func() tea.Msg {
				return CopyResultMsg{Err: write(e.Text)}
			},
		)
	}
	return nil
}

func (m *Model) flashForError(err error) tea.Cmd {
	switch errors.GetKind(err) {
	case errors.KindNotFound:
		return m.ShowFlashWarning(flashNoJoke)
	case errors.KindEmpty:
		return m.ShowFlashWarning(fmt.Sprintf("No jokes in %s yet", m.state.SelectedCategory.Label()))
	default:
		return m.ShowFlashError(err.Error())
	}
}

func (m *Model) handleShareResult(r share.Result) tea.Cmd {
	switch r.Method {
	case share.MethodNative:
		return m.ShowFlashSuccess(flashShared)
	case share.MethodFallback:
		return m.ShowFlashInfo(flashShareLink)
	case share.MethodThrottled:
		return m.ShowFlashWarning(flashThrottled)
	case share.MethodFailed:
		if r.URL != "" {
			return m.ShowFlashError(flashShareError + ": " + r.URL)
		}
		return m.ShowFlashError(flashShareError)
	}
	return nil
}

func (m *Model) handleCopyResult(err error) tea.Cmd {
	if err != nil {
		logger.ComponentLogger("app").Warn("native clipboard write failed, terminal copy only", "error", err)
		return tea.Batch(
			m.ShowFlashWarning(notification.TerminalCopyMessage),
			notifyCmd(notification.CopiedViaTerminal),
		)
	}
	return tea.Batch(
		m.ShowFlashSuccess(notification.CopiedMessage),
		notifyCmd(notification.JokeCopied),
	)
}

// notifyCmd delivers a desktop notification off the update loop
func notifyCmd(send func() error) tea.Cmd {
	return func() tea.Msg {
		_ = send()
		return nil
	}
}

// handleBackdropTick advances the backdrop, lands the helicopter and sweeps
// any markers whose expiry message was missed.
func (m *Model) handleBackdropTick(t time.Time) (tea.Model, tea.Cmd) {
	dt := t.Sub(m.lastFrame)
	if m.lastFrame.IsZero() || dt <= 0 || dt > time.Second {
		dt = ui.BackdropFrame
	}
	m.lastFrame = t
	m.backdrop.Advance(dt)

	now := m.now()
	m.markers.Expire(now)
	if !m.heliStart.IsZero() && now.Sub(m.heliStart) >= ui.HelicopterDuration {
		m.heliStart = time.Time{}
	}
	return m, backdropTick()
}

// helicopterProgress is the crossing progress in [0, 1], or -1 when grounded
func (m *Model) helicopterProgress() float64 {
	if m.heliStart.IsZero() {
		return -1
	}
	p := float64(m.now().Sub(m.heliStart)) / float64(ui.HelicopterDuration)
	if p > 1 {
		return -1
	}
	return max(p, 0)
}
