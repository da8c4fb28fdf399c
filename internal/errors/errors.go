// Package errors provides structured error types for GiggleGen.
// These errors record which operation failed and what kind of failure it was.
package errors

import (
	"errors"
	"fmt"
)

// Op describes an operation, usually as "package.function".
type Op string

// Kind categorizes the type of error.
type Kind int

const (
	KindUnknown Kind = iota
	KindNotFound
	KindInvalid
	KindEmpty
	KindIO
	KindConfig
	KindUnavailable
	KindThrottled
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not found"
	case KindInvalid:
		return "invalid"
	case KindEmpty:
		return "empty"
	case KindIO:
		return "I/O error"
	case KindConfig:
		return "configuration error"
	case KindUnavailable:
		return "unavailable"
	case KindThrottled:
		return "throttled"
	default:
		return "unknown error"
	}
}

// Error is the structured error type for GiggleGen.
type Error struct {
	Op      Op     // Operation that failed
	Kind    Kind   // Category of error
	Err     error  // Underlying error
	Context string // Additional context
}

// Error returns the error message.
func (e *Error) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s: %s: %s", e.Op, e.Context, e.Err)
	}
	if e.Op != "" {
		return fmt.Sprintf("%s: %s", e.Op, e.Err)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// E creates a new Error. Arguments can be:
// - Op: the operation name
// - Kind: the error kind
// - string: context message
// - error: the underlying error
func E(args ...interface{}) error {
	e := &Error{}
	for _, arg := range args {
		switch a := arg.(type) {
		case Op:
			e.Op = a
		case Kind:
			e.Kind = a
		case string:
			e.Context = a
		case error:
			e.Err = a
		}
	}
	if e.Err == nil {
		e.Err = errors.New(e.Context)
		e.Context = ""
	}
	return e
}

// Is reports whether err is of the given Kind.
func Is(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// GetKind returns the Kind of an error.
func GetKind(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// Catalog errors

func InvalidCategory(name string) error {
	return E(Op("catalog.Get"), KindInvalid, fmt.Sprintf("unknown category %q", name))
}

func EmptyCategory(name string) error {
	return E(Op("selector.Select"), KindEmpty, fmt.Sprintf("category %q has no jokes", name))
}

func CatalogLoadFailed(path string, err error) error {
	return E(Op("catalog.LoadOverlay"), KindIO, fmt.Sprintf("failed to load catalog from %s", path), err)
}

// Session errors

func InvalidRating(v int) error {
	return E(Op("session.Rate"), KindInvalid, fmt.Sprintf("rating %d is out of range 1-3", v))
}

func NoJoke(op string) error {
	return E(Op(op), KindNotFound, "no joke has been fetched yet")
}

// Config errors

func ConfigLoadFailed(path string, err error) error {
	return E(Op("config.Load"), KindConfig, fmt.Sprintf("failed to load config from %s", path), err)
}

func ConfigInvalid(reason string) error {
	return E(Op("config.Validate"), KindInvalid, reason)
}

// External collaborator errors

func ShareUnavailable(method string) error {
	return E(Op("share.Native"), KindUnavailable, fmt.Sprintf("%s is not available", method))
}

func ShareFailed(method string, err error) error {
	return E(Op("share.Share"), KindIO, fmt.Sprintf("%s share failed", method), err)
}

func ShareThrottled() error {
	return E(Op("share.Share"), KindThrottled, "share requested too quickly")
}

func ClipboardFailed(err error) error {
	return E(Op("clipboard.WriteText"), KindIO, "failed to write clipboard", err)
}
