package ui

import (
	"os"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/zhubert/gigglegen/internal/logger"
)

func TestMain(m *testing.M) {
	// Keep test runs out of /tmp/gigglegen-debug.log
	logger.Reset()
	logger.Init(os.DevNull)

	code := m.Run()

	logger.Reset()
	os.Exit(code)
}

// stripANSI removes styling so tests can match on visible text
func stripANSI(s string) string {
	return ansi.Strip(s)
}

// useTheme switches themes for one test and restores the default afterwards
func useTheme(t *testing.T, name ThemeName) {
	t.Helper()
	SetTheme(name)
	t.Cleanup(func() { SetTheme(DefaultTheme) })
}
