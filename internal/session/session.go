// Package session holds the state of one GiggleGen session and the reducer that
// applies user actions to it. Nothing here performs I/O: side effects are
// returned to the caller as Effects.
package session

import "github.com/zhubert/gigglegen/internal/catalog"

// Rating is the user's reaction to the current joke.
type Rating int

const (
	RatingNone Rating = iota
	RatingMeh
	RatingGood
	RatingHilarious
)

// Valid reports whether r is one of the three selectable ratings.
func (r Rating) Valid() bool {
	return r >= RatingMeh && r <= RatingHilarious
}

// Glyph is the emoji shown on the rating button.
func (r Rating) Glyph() string {
	switch r {
	case RatingMeh:
		return "😴"
	case RatingGood:
		return "😊"
	case RatingHilarious:
		return "😂"
	default:
		return ""
	}
}

// Ratings lists the selectable ratings in button order.
var Ratings = []Rating{RatingMeh, RatingGood, RatingHilarious}

// State is one session. The zero value is not ready for use; call NewState.
type State struct {
	SelectedCategory catalog.CategoryID
	CurrentJoke      string
	JokeCount        int
	Rating           Rating
	ThemeIsDark      bool
}

// NewState returns the state a session starts in.
func NewState(category catalog.CategoryID, dark bool) State {
	if !category.Valid() {
		category = catalog.DefaultCategory
	}
	return State{SelectedCategory: category, ThemeIsDark: dark}
}

// HasJoke reports whether a joke has been fetched.
func (s State) HasJoke() bool {
	return s.CurrentJoke != ""
}

// HasRating reports whether the user has picked a rating.
func (s State) HasRating() bool {
	return s.Rating != RatingNone
}
