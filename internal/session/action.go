package session

import "github.com/zhubert/gigglegen/internal/catalog"

// Action is a user intent applied by Controller.Apply.
type Action interface {
	action()
}

type (
	SelectCategory   struct{ Category catalog.CategoryID }
	FetchJoke        struct{}
	Rate             struct{ Value Rating }
	ToggleTheme      struct{}
	ShareCurrentJoke struct{}
	CopyCurrentJoke  struct{}
)

func (SelectCategory) action()   {}
func (FetchJoke) action()        {}
func (Rate) action()             {}
func (ToggleTheme) action()      {}
func (ShareCurrentJoke) action() {}
func (CopyCurrentJoke) action()  {}

// Effect is a side effect the caller must carry out after a transition.
type Effect interface {
	effect()
}

type (
	// SpawnMarker asks for one transient emoji marker.
	SpawnMarker struct{}
	// Share asks the share collaborator to publish Text.
	Share struct{ Text string }
	// Copy asks the clipboard collaborator to store Text.
	Copy struct{ Text string }
)

func (SpawnMarker) effect() {}
func (Share) effect()       {}
func (Copy) effect()        {}
