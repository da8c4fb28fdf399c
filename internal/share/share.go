package share

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/pkg/browser"
	"github.com/zhubert/gigglegen/internal/errors"
	"github.com/zhubert/gigglegen/internal/logger"
	"golang.org/x/time/rate"
)

func init() {
	// The browser launcher echoes its child's output, which would scribble over the TUI.
	browser.Stdout = io.Discard
	browser.Stderr = io.Discard
}

// Method describes how a share request was handled.
type Method int

const (
	MethodNone Method = iota
	MethodNative
	MethodFallback
	MethodThrottled
	MethodFailed
)

func (m Method) String() string {
	switch m {
	case MethodNative:
		return "native"
	case MethodFallback:
		return "fallback"
	case MethodThrottled:
		return "throttled"
	case MethodFailed:
		return "failed"
	default:
		return "none"
	}
}

// Result reports what Share did. URL is set whenever the fallback link was
// built, even if opening it failed, so callers can show it to the user.
type Result struct {
	Method Method
	URL    string
	Err    error
}

// Interval is the minimum spacing between two shares.
const Interval = time.Second

// Service shares jokes. It never returns an error to the caller: failures are
// logged and reported in the Result.
type Service struct {
	native  Native
	opener  Opener
	link    string
	limiter *rate.Limiter
	log     *slog.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithNative sets the native share sheet. A nil Native disables native sharing.
func WithNative(n Native) Option {
	return func(s *Service) { s.native = n }
}

// WithOpener sets how the fallback URL is opened.
func WithOpener(o Opener) Option {
	return func(s *Service) { s.opener = o }
}

// WithLink sets the URL attached to native shares.
func WithLink(link string) Option {
	return func(s *Service) { s.link = link }
}

// WithLimiter replaces the default one-share-per-second limiter.
func WithLimiter(l *rate.Limiter) Option {
	return func(s *Service) { s.limiter = l }
}

// NewService returns a Service using termux-share and the system browser
// unless overridden by opts.
func NewService(opts ...Option) *Service {
	s := &Service{
		native:  NewTermuxSharer(),
		opener:  BrowserOpener{},
		limiter: rate.NewLimiter(rate.Every(Interval), 1),
		log:     logger.ComponentLogger("share"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Share publishes joke, trying the native share sheet first and the wa.me
// link second.
func (s *Service) Share(ctx context.Context, joke string) Result {
	if !s.limiter.Allow() {
		err := errors.ShareThrottled()
		s.log.Warn("share throttled", "error", err)
		return Result{Method: MethodThrottled, Err: err}
	}

	p := NewPayload(joke, s.link)

	if s.native != nil {
		err := s.native.Share(ctx, p)
		if err == nil {
			s.log.Info("shared via native share sheet")
			return Result{Method: MethodNative}
		}
		if errors.Is(err, errors.KindUnavailable) {
			s.log.Debug("native share unavailable", "error", err)
		} else {
			s.log.Warn("native share failed, falling back", "error", err)
		}
	}

	u := FallbackURL(p.Text)
	if s.opener == nil {
		return Result{Method: MethodFallback, URL: u}
	}
	if err := s.opener.Open(u); err != nil {
		err = errors.ShareFailed("browser", err)
		s.log.Error("could not open share link", "url", u, "error", err)
		return Result{Method: MethodFailed, URL: u, Err: err}
	}
	s.log.Info("opened share link", "url", u)
	return Result{Method: MethodFallback, URL: u}
}
