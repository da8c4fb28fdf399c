package share

import (
	"context"
	"os/exec"
	"strings"

	"github.com/pkg/browser"
	"github.com/zhubert/gigglegen/internal/errors"
)

// Native is a platform share sheet.
type Native interface {
	// Share presents p. It returns a KindUnavailable error when the platform
	// has no share sheet.
	Share(ctx context.Context, p Payload) error
}

// Opener opens a URL in the user's browser.
type Opener interface {
	Open(url string) error
}

// termuxShareBin is the Termux:API share helper available on Android.
const termuxShareBin = "termux-share"

// TermuxSharer shares through termux-share when it is on PATH.
type TermuxSharer struct {
	lookPath func(file string) (string, error)
	run      func(ctx context.Context, bin string, args []string, stdin string) error
}

// NewTermuxSharer returns a TermuxSharer using the real PATH and process runner.
func NewTermuxSharer() *TermuxSharer {
	return &TermuxSharer{lookPath: exec.LookPath, run: runCommand}
}

// Share sends the payload text to the Android share sheet.
func (t *TermuxSharer) Share(ctx context.Context, p Payload) error {
	bin, err := t.lookPath(termuxShareBin)
	if err != nil {
		return errors.ShareUnavailable(termuxShareBin)
	}
	text := p.Text
	if p.URL != "" {
		text += "\n" + p.URL
	}
	args := []string{"-a", "send", "-c", "text/plain", "-t", p.Title}
	if err := t.run(ctx, bin, args, text); err != nil {
		return errors.ShareFailed(termuxShareBin, err)
	}
	return nil
}

func runCommand(ctx context.Context, bin string, args []string, stdin string) error {
	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Stdin = strings.NewReader(stdin)
	return cmd.Run()
}

// BrowserOpener opens URLs with the system browser.
type BrowserOpener struct{}

// Open launches the default browser on u.
func (BrowserOpener) Open(u string) error {
	return browser.OpenURL(u)
}
