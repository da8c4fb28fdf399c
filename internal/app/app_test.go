package app

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/zhubert/gigglegen/internal/catalog"
	"github.com/zhubert/gigglegen/internal/config"
	"github.com/zhubert/gigglegen/internal/emoji"
	"github.com/zhubert/gigglegen/internal/errors"
	"github.com/zhubert/gigglegen/internal/keys"
	"github.com/zhubert/gigglegen/internal/notification"
	"github.com/zhubert/gigglegen/internal/session"
	"github.com/zhubert/gigglegen/internal/share"
	"github.com/zhubert/gigglegen/internal/ui"
)

func TestNew_Defaults(t *testing.T) {
	m, _ := testModel(t)

	s := m.State()
	if s.SelectedCategory != catalog.General {
		t.Errorf("SelectedCategory = %q, want %q", s.SelectedCategory, catalog.General)
	}
	if s.HasJoke() {
		t.Errorf("expected no joke, got %q", s.CurrentJoke)
	}
	if s.JokeCount != 0 {
		t.Errorf("JokeCount = %d, want 0", s.JokeCount)
	}
	if s.Rating != session.RatingNone {
		t.Errorf("Rating = %v, want none", s.Rating)
	}
	if s.ThemeIsDark {
		t.Error("expected light theme")
	}
	if len(m.Markers()) != 0 {
		t.Errorf("expected no markers, got %d", len(m.Markers()))
	}
}

func TestNew_FromConfig(t *testing.T) {
	t.Cleanup(func() {
		ui.SetTheme(ui.DefaultTheme)
		notification.SetEnabled(false)
	})

	cfg := config.Default()
	cfg.InitialCategory = string(catalog.Dad)
	cfg.DarkTheme = true
	cfg.Notifications = true

	m := New(cfg, WithPicker(newStubPicker()), WithSharer(&fakeSharer{}))

	if got := m.State().SelectedCategory; got != catalog.Dad {
		t.Errorf("SelectedCategory = %q, want dad", got)
	}
	if !m.State().ThemeIsDark {
		t.Error("expected dark theme from config")
	}
	if ui.CurrentThemeName() != ui.ThemeDark {
		t.Errorf("ui theme = %q, want dark", ui.CurrentThemeName())
	}
	if !notification.Enabled() {
		t.Error("expected notifications enabled from config")
	}
}

func TestNew_SeededIsDeterministic(t *testing.T) {
	t.Cleanup(func() { ui.SetTheme(ui.DefaultTheme) })

	seed := uint64(7)
	cfg := config.Default()
	cfg.Seed = &seed

	fetch := func() []string {
		m := New(cfg, WithSharer(&fakeSharer{}), WithClipboard(func(string) error { return nil }))
		var got []string
		for range 5 {
			m = sendKey(m, keys.Enter)
			got = append(got, m.State().CurrentJoke)
		}
		return got
	}

	a, b := fetch(), fetch()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("fetch %d differs between runs: %q vs %q", i, a[i], b[i])
		}
		if !catalog.Default().Contains(catalog.General, a[i]) {
			t.Errorf("fetch %d returned %q, not a general joke", i, a[i])
		}
	}
}

func TestFetchKeys(t *testing.T) {
	for _, k := range []string{keys.Enter, keys.Space} {
		t.Run(k, func(t *testing.T) {
			m, d := testModel(t)

			m = sendKey(m, k)

			s := m.State()
			if s.CurrentJoke != "general joke 1" {
				t.Errorf("CurrentJoke = %q, want %q", s.CurrentJoke, "general joke 1")
			}
			if s.JokeCount != 1 {
				t.Errorf("JokeCount = %d, want 1", s.JokeCount)
			}
			if d.picker.calls[catalog.General] != 1 {
				t.Errorf("picker called %d times, want 1", d.picker.calls[catalog.General])
			}
			if len(m.Markers()) != 1 {
				t.Errorf("expected 1 marker after fetch, got %d", len(m.Markers()))
			}
		})
	}
}

func TestFetch_KeepsRating(t *testing.T) {
	m, _ := testModel(t)

	m = sendKey(m, keys.Enter)
	m = sendKey(m, "3")
	m = sendKey(m, keys.Enter)

	if got := m.State().Rating; got != session.RatingHilarious {
		t.Errorf("Rating after second fetch = %v, want hilarious", got)
	}
	if got := m.State().JokeCount; got != 2 {
		t.Errorf("JokeCount = %d, want 2", got)
	}
}

func TestFetch_EmptyCategoryFlashes(t *testing.T) {
	m, d := testModel(t)
	d.picker.empty[catalog.General] = true

	m = sendKey(m, keys.Enter)

	if m.State().HasJoke() {
		t.Error("expected no joke from an empty category")
	}
	if m.State().JokeCount != 0 {
		t.Errorf("JokeCount = %d, want 0", m.State().JokeCount)
	}
	f := m.footer.Flash()
	if f == nil {
		t.Fatal("expected a flash message")
	}
	if f.Type != ui.FlashWarning {
		t.Errorf("flash type = %v, want warning", f.Type)
	}
	if !strings.Contains(f.Text, "General") {
		t.Errorf("flash %q should name the category", f.Text)
	}
	if len(m.Markers()) != 0 {
		t.Errorf("expected no markers, got %d", len(m.Markers()))
	}
}

func TestRatingKeys(t *testing.T) {
	tests := []struct {
		key  string
		want session.Rating
	}{
		{"1", session.RatingMeh},
		{"2", session.RatingGood},
		{"3", session.RatingHilarious},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			m, _ := testModel(t)

			m = sendKey(m, tt.key)

			if got := m.State().Rating; got != tt.want {
				t.Errorf("Rating = %v, want %v", got, tt.want)
			}
			if len(m.Markers()) != 1 {
				t.Errorf("expected 1 marker after rating, got %d", len(m.Markers()))
			}
		})
	}
}

func TestRating_Replaces(t *testing.T) {
	m, _ := testModel(t)

	m = sendKey(m, "1")
	m = sendKey(m, "2")

	if got := m.State().Rating; got != session.RatingGood {
		t.Errorf("Rating = %v, want good", got)
	}
	if len(m.Markers()) != 2 {
		t.Errorf("expected 2 markers, got %d", len(m.Markers()))
	}
}

func TestCategoryCycling(t *testing.T) {
	tests := []struct {
		key  string
		want catalog.CategoryID
	}{
		{keys.Right, catalog.Next(catalog.General)},
		{keys.Tab, catalog.Next(catalog.General)},
		{"l", catalog.Next(catalog.General)},
		{keys.Left, catalog.Prev(catalog.General)},
		{keys.ShiftTab, catalog.Prev(catalog.General)},
		{"h", catalog.Prev(catalog.General)},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			m, _ := testModel(t)
			m = sendKey(m, tt.key)
			if got := m.State().SelectedCategory; got != tt.want {
				t.Errorf("SelectedCategory = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCategoryChange_KeepsJoke(t *testing.T) {
	m, d := testModel(t)

	m = sendKey(m, keys.Enter)
	joke := m.State().CurrentJoke
	m = sendKey(m, keys.Right)

	if m.State().CurrentJoke != joke {
		t.Errorf("joke changed on category switch: %q -> %q", joke, m.State().CurrentJoke)
	}

	m = sendKey(m, keys.Enter)
	next := m.State().SelectedCategory
	if d.picker.calls[next] != 1 {
		t.Errorf("expected a fetch from %q, calls = %v", next, d.picker.calls)
	}
}

func TestThemeToggle(t *testing.T) {
	m, _ := testModel(t)

	m = sendKey(m, "t")
	if !m.State().ThemeIsDark {
		t.Fatal("expected dark theme after toggle")
	}
	if ui.CurrentThemeName() != ui.ThemeDark {
		t.Errorf("ui theme = %q, want dark", ui.CurrentThemeName())
	}

	m = sendKey(m, keys.CtrlT)
	if m.State().ThemeIsDark {
		t.Error("expected light theme after second toggle")
	}
	if ui.CurrentThemeName() != ui.ThemeLight {
		t.Errorf("ui theme = %q, want light", ui.CurrentThemeName())
	}
}

func TestShare_WithoutJoke(t *testing.T) {
	m, d := testModel(t)

	m, cmd := sendKeyCmd(m, "s")
	if cmd == nil {
		t.Fatal("expected flash tick command")
	}

	f := m.footer.Flash()
	if f == nil || f.Text != flashNoJoke {
		t.Fatalf("flash = %+v, want %q", f, flashNoJoke)
	}
	if f.Type != ui.FlashWarning {
		t.Errorf("flash type = %v, want warning", f.Type)
	}
	if len(d.sharer.jokes) != 0 {
		t.Errorf("sharer called without a joke: %v", d.sharer.jokes)
	}
}

func TestShare_SendsCurrentJoke(t *testing.T) {
	m, d := testModel(t)
	m = sendKey(m, keys.Enter)

	m, cmd := sendKeyCmd(m, "s")
	msgs := runEffectMsgs(cmd)

	if len(d.sharer.jokes) != 1 || d.sharer.jokes[0] != m.State().CurrentJoke {
		t.Fatalf("shared %v, want [%q]", d.sharer.jokes, m.State().CurrentJoke)
	}

	var found bool
	for _, msg := range msgs {
		if r, ok := msg.(ShareResultMsg); ok {
			found = true
			m.Update(r)
		}
	}
	if !found {
		t.Fatal("expected a ShareResultMsg")
	}
	if f := m.footer.Flash(); f == nil || f.Type != ui.FlashSuccess {
		t.Errorf("flash = %+v, want success", f)
	}
}

func TestShareResult_Flashes(t *testing.T) {
	tests := []struct {
		name     string
		result   share.Result
		wantType ui.FlashType
		wantText string
	}{
		{"native", share.Result{Method: share.MethodNative}, ui.FlashSuccess, flashShared},
		{"fallback", share.Result{Method: share.MethodFallback, URL: "https://wa.me/?text=x"}, ui.FlashInfo, flashShareLink},
		{"throttled", share.Result{Method: share.MethodThrottled, Err: errors.ShareThrottled()}, ui.FlashWarning, flashThrottled},
		{"failed", share.Result{Method: share.MethodFailed, URL: "https://wa.me/?text=x"}, ui.FlashError, "https://wa.me/?text=x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := testModel(t)

			_, cmd := m.Update(ShareResultMsg{Result: tt.result})
			if cmd == nil {
				t.Error("expected flash tick command")
			}

			f := m.footer.Flash()
			if f == nil {
				t.Fatal("expected a flash")
			}
			if f.Type != tt.wantType {
				t.Errorf("flash type = %v, want %v", f.Type, tt.wantType)
			}
			if !strings.Contains(f.Text, tt.wantText) {
				t.Errorf("flash text = %q, want it to contain %q", f.Text, tt.wantText)
			}
		})
	}
}

func TestCopy_WithoutJoke(t *testing.T) {
	m, d := testModel(t)

	m = sendKey(m, "y")

	if f := m.footer.Flash(); f == nil || f.Text != flashNoJoke {
		t.Errorf("flash = %+v, want %q", f, flashNoJoke)
	}
	if len(d.clip.writes) != 0 {
		t.Errorf("clipboard written without a joke: %v", d.clip.writes)
	}
}

func TestCopy_WritesClipboard(t *testing.T) {
	m, d := testModel(t)
	m = sendKey(m, keys.Enter)

	m, cmd := sendKeyCmd(m, "y")
	msgs := runEffectMsgs(cmd)

	if len(d.clip.writes) != 1 || d.clip.writes[0] != m.State().CurrentJoke {
		t.Fatalf("clipboard writes = %v, want [%q]", d.clip.writes, m.State().CurrentJoke)
	}

	var result *CopyResultMsg
	for _, msg := range msgs {
		if r, ok := msg.(CopyResultMsg); ok {
			result = &r
		}
	}
	if result == nil {
		t.Fatal("expected a CopyResultMsg")
	}
	if result.Err != nil {
		t.Errorf("unexpected copy error: %v", result.Err)
	}
}

func TestCopyResult_Flashes(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantType ui.FlashType
		wantText string
	}{
		{"success", nil, ui.FlashSuccess, notification.CopiedMessage},
		{"native failure", errors.ClipboardFailed(nil), ui.FlashWarning, notification.TerminalCopyMessage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := testModel(t)

			m.Update(CopyResultMsg{Err: tt.err})

			f := m.footer.Flash()
			if f == nil {
				t.Fatal("expected a flash")
			}
			if f.Type != tt.wantType || f.Text != tt.wantText {
				t.Errorf("flash = (%v, %q), want (%v, %q)", f.Type, f.Text, tt.wantType, tt.wantText)
			}
		})
	}
}

func TestMarkerExpiry(t *testing.T) {
	m, _ := testModel(t)

	m = sendKey(m, keys.Enter)
	m = sendKey(m, "2")
	markers := m.Markers()
	if len(markers) != 2 {
		t.Fatalf("expected 2 markers, got %d", len(markers))
	}

	m.Update(MarkerExpiredMsg{ID: markers[0].ID})
	if got := m.Markers(); len(got) != 1 || got[0].ID != markers[1].ID {
		t.Errorf("after expiring first marker got %+v", got)
	}

	// Expiring an id twice is harmless
	m.Update(MarkerExpiredMsg{ID: markers[0].ID})
	m.Update(MarkerExpiredMsg{ID: markers[1].ID})
	if len(m.Markers()) != 0 {
		t.Errorf("expected no markers, got %d", len(m.Markers()))
	}
}

func TestMarkers_Independent(t *testing.T) {
	m, _ := testModel(t)

	for range 5 {
		m = sendKey(m, keys.Enter)
	}
	markers := m.Markers()
	if len(markers) != 5 {
		t.Fatalf("expected 5 markers, got %d", len(markers))
	}
	seen := make(map[string]bool)
	for _, mk := range markers {
		if seen[mk.ID] {
			t.Errorf("duplicate marker id %q", mk.ID)
		}
		seen[mk.ID] = true
		if mk.X < -50 || mk.X >= 50 || mk.Y < -50 || mk.Y >= 50 {
			t.Errorf("marker offset (%d, %d) out of range", mk.X, mk.Y)
		}
	}
}

func TestBackdropTick_SweepsExpiredMarkers(t *testing.T) {
	m, d := testModel(t)
	m = sendKey(m, keys.Enter)

	d.clock.advance(emoji.Lifetime + time.Second)
	_, cmd := m.Update(BackdropTickMsg(d.clock.now()))

	if cmd == nil {
		t.Error("backdrop tick should schedule the next frame")
	}
	if len(m.Markers()) != 0 {
		t.Errorf("expected expired markers to be swept, got %d", len(m.Markers()))
	}
}

func TestMarkers_UseModelClock(t *testing.T) {
	m, d := testModel(t)
	m = sendKey(m, keys.Enter)

	markers := m.Markers()
	if len(markers) != 1 {
		t.Fatalf("expected 1 marker, got %d", len(markers))
	}
	if want := d.clock.now().Add(emoji.Lifetime); !markers[0].Expires.Equal(want) {
		t.Errorf("marker expires %v, want %v", markers[0].Expires, want)
	}
}

func TestShareThrottled_FlashSaysIgnored(t *testing.T) {
	m, _ := testModel(t)

	m.Update(ShareResultMsg{Result: share.Result{Method: share.MethodThrottled, Err: errors.ShareThrottled()}})

	f := m.footer.Flash()
	if f == nil || !strings.Contains(f.Text, "ignored") {
		t.Errorf("flash = %+v, want it to say the share was ignored", f)
	}
}

func TestHelicopter(t *testing.T) {
	m, d := testModel(t)

	m = sendKey(m, keys.Enter)
	if p := m.helicopterProgress(); p >= 0 {
		t.Errorf("helicopter flying for a general joke (progress %v)", p)
	}

	m.apply(session.SelectCategory{Category: catalog.Thala})
	m = sendKey(m, keys.Enter)
	if p := m.helicopterProgress(); p != 0 {
		t.Errorf("progress right after thala fetch = %v, want 0", p)
	}

	d.clock.advance(ui.HelicopterDuration / 2)
	if p := m.helicopterProgress(); p < 0.49 || p > 0.51 {
		t.Errorf("progress halfway = %v, want 0.5", p)
	}

	d.clock.advance(ui.HelicopterDuration)
	m.Update(BackdropTickMsg(d.clock.now()))
	if p := m.helicopterProgress(); p >= 0 {
		t.Errorf("helicopter should have landed, progress %v", p)
	}
}

func TestCategoryPickerModal(t *testing.T) {
	t.Run("opens on current category", func(t *testing.T) {
		m, _ := testModelWithSize(t, 80, 30)
		m.apply(session.SelectCategory{Category: catalog.Dank})

		m = sendKey(m, "c")

		state, ok := m.modal.State.(*ui.CategoryPickerState)
		if !ok {
			t.Fatalf("modal state = %T, want *ui.CategoryPickerState", m.modal.State)
		}
		if state.Selected() != catalog.Dank {
			t.Errorf("preselected %q, want dank", state.Selected())
		}
		if !strings.Contains(visible(m), "Pick a Category") {
			t.Error("picker title not rendered")
		}
	})

	t.Run("escape cancels", func(t *testing.T) {
		m, _ := testModelWithSize(t, 80, 30)

		m = sendKey(m, "c")
		m = sendKey(m, keys.Escape)

		if m.modal.IsVisible() {
			t.Error("modal still visible after esc")
		}
		if m.State().SelectedCategory != catalog.General {
			t.Errorf("category changed to %q", m.State().SelectedCategory)
		}
	})

	t.Run("enter confirms", func(t *testing.T) {
		m, _ := testModelWithSize(t, 80, 30)

		m = sendKey(m, "c")
		m = sendKey(m, keys.Enter)

		if m.modal.IsVisible() {
			t.Error("modal still visible after enter")
		}
		if m.State().HasJoke() {
			t.Error("enter in the picker must not fetch a joke")
		}
	})

	t.Run("keys do not reach the main screen", func(t *testing.T) {
		m, _ := testModelWithSize(t, 80, 30)

		m = sendKey(m, "c")
		m = sendKey(m, "3")
		m = sendKey(m, "t")

		if m.State().Rating != session.RatingNone {
			t.Error("rating key leaked through the modal")
		}
		if m.State().ThemeIsDark {
			t.Error("theme key leaked through the modal")
		}
		if !m.modal.IsVisible() {
			t.Error("picker closed unexpectedly")
		}
	})
}

func TestHelpModal(t *testing.T) {
	m, _ := testModelWithSize(t, 100, 40)

	m = sendKey(m, "?")
	if _, ok := m.modal.State.(*ui.HelpState); !ok {
		t.Fatalf("modal state = %T, want *ui.HelpState", m.modal.State)
	}
	view := visible(m)
	for _, want := range []string{"Keyboard Shortcuts", "get joke", "hilarious", "share"} {
		if !strings.Contains(view, want) {
			t.Errorf("help view missing %q", want)
		}
	}

	m = sendKey(m, "?")
	if m.modal.IsVisible() {
		t.Error("help should close on ?")
	}

	m = sendKey(m, "?")
	m = sendKey(m, keys.Escape)
	if m.modal.IsVisible() {
		t.Error("help should close on esc")
	}
}

func TestQuit(t *testing.T) {
	for _, k := range []string{"q", keys.CtrlC} {
		t.Run(k, func(t *testing.T) {
			m, _ := testModel(t)
			_, cmd := sendKeyCmd(m, k)
			if cmd == nil {
				t.Fatal("expected quit command")
			}
			if _, ok := cmd().(tea.QuitMsg); !ok {
				t.Error("expected tea.QuitMsg")
			}
		})
	}
}

func TestFlashTick(t *testing.T) {
	m, _ := testModel(t)

	m.footer.SetFlashWithDuration("gone", ui.FlashInfo, -time.Second)
	_, cmd := m.Update(ui.FlashTickMsg(time.Now()))
	if m.footer.HasFlash() {
		t.Error("expired flash should be cleared")
	}
	if cmd != nil {
		t.Error("no further ticks once the flash is gone")
	}

	m.footer.SetFlash("still here", ui.FlashInfo)
	_, cmd = m.Update(ui.FlashTickMsg(time.Now()))
	if !m.footer.HasFlash() {
		t.Error("fresh flash should survive a tick")
	}
	if cmd == nil {
		t.Error("expected another tick while the flash is showing")
	}
}

func TestView_Loading(t *testing.T) {
	m, _ := testModel(t)
	if got := m.RenderToString(); got != "Loading..." {
		t.Errorf("RenderToString() = %q, want Loading...", got)
	}
}

func TestView_Frame(t *testing.T) {
	m, _ := testModelWithSize(t, 80, 24)

	view := visible(m)
	for _, want := range []string{ui.Title, ui.Subtitle, "Jokes: 0", ui.EmptyPrompt, ui.RatingPrompt, "General"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}

	m = sendKey(m, keys.Enter)
	clearMarkers(m)

	view = visible(m)
	for _, want := range []string{"general joke 1", "Jokes: 1", "Share", "Copy"} {
		if !strings.Contains(view, want) {
			t.Errorf("view after fetch missing %q", want)
		}
	}
	if strings.Contains(view, ui.EmptyPrompt) {
		t.Error("prompt still shown after fetch")
	}
}

func TestView_Fields(t *testing.T) {
	m, _ := testModelWithSize(t, 80, 24)

	v := m.View()
	if !v.AltScreen {
		t.Error("expected alt screen")
	}
	if v.WindowTitle != WindowTitle {
		t.Errorf("WindowTitle = %q, want %q", v.WindowTitle, WindowTitle)
	}
	if v.BackgroundColor != ui.ColorBg {
		t.Error("background should follow the theme")
	}
}
