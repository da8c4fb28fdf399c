// Package share publishes a joke through the platform's native share sheet,
// falling back to a WhatsApp link opened in the browser.
package share

import (
	"net/url"
	"strings"
)

// Title is the share sheet title.
const Title = "GiggleGen Joke"

// FallbackBase is the WhatsApp click-to-chat endpoint used when no native
// share is available.
const FallbackBase = "https://wa.me/?text="

// Payload is what gets shared.
type Payload struct {
	Title string
	Text  string
	URL   string
}

// BuildText wraps a joke in the share message.
func BuildText(joke string) string {
	return "Check out this joke from GiggleGen:\n\n" + joke + "\n\nShared via GiggleGen"
}

// NewPayload returns the payload for sharing joke. link may be empty.
func NewPayload(joke, link string) Payload {
	return Payload{Title: Title, Text: BuildText(joke), URL: link}
}

// FallbackURL returns the wa.me link carrying text.
func FallbackURL(text string) string {
	return FallbackBase + EncodeComponent(text)
}

// componentSafe are the characters url.QueryEscape escapes but a URI
// component leaves as they are.
var componentSafe = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// EncodeComponent percent-encodes s the way browsers encode a URI component:
// spaces become %20 and the marks !'()* are left alone.
func EncodeComponent(s string) string {
	return componentSafe.Replace(url.QueryEscape(s))
}
