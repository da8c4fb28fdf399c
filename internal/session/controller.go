package session

import (
	"fmt"

	"github.com/zhubert/gigglegen/internal/catalog"
	"github.com/zhubert/gigglegen/internal/errors"
)

// Picker selects a joke from a category. *selector.Selector satisfies it.
type Picker interface {
	Select(id catalog.CategoryID) (string, error)
}

// Controller applies actions to session state.
type Controller struct {
	picker Picker
}

// NewController returns a Controller fetching jokes through p.
func NewController(p Picker) *Controller {
	return &Controller{picker: p}
}

// Apply returns the state after a and the effects it requests.
// On error the input state is returned unchanged and no effects are emitted.
//
// Fetching a joke keeps the existing rating: a rating given to one joke stays
// selected until the user picks another.
func (c *Controller) Apply(s State, a Action) (State, []Effect, error) {
	switch a := a.(type) {
	case SelectCategory:
		if !a.Category.Valid() {
			return s, nil, errors.InvalidCategory(string(a.Category))
		}
		s.SelectedCategory = a.Category
		return s, nil, nil

	case FetchJoke:
		joke, err := c.picker.Select(s.SelectedCategory)
		if err != nil {
			return s, nil, err
		}
		s.CurrentJoke = joke
		s.JokeCount++
		return s, []Effect{SpawnMarker{}}, nil

	case Rate:
		if !a.Value.Valid() {
			return s, nil, errors.InvalidRating(int(a.Value))
		}
		s.Rating = a.Value
		return s, []Effect{SpawnMarker{}}, nil

	case ToggleTheme:
		s.ThemeIsDark = !s.ThemeIsDark
		return s, nil, nil

	case ShareCurrentJoke:
		if !s.HasJoke() {
			return s, nil, errors.NoJoke("session.Share")
		}
		return s, []Effect{Share{Text: s.CurrentJoke}}, nil

	case CopyCurrentJoke:
		if !s.HasJoke() {
			return s, nil, errors.NoJoke("session.Copy")
		}
		return s, []Effect{Copy{Text: s.CurrentJoke}}, nil

	default:
		return s, nil, errors.E(errors.Op("session.Apply"), errors.KindInvalid, fmt.Sprintf("unknown action %T", a))
	}
}
