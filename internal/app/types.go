package app

import (
	"time"

	"github.com/zhubert/gigglegen/internal/share"
)

// BackdropTickMsg advances the floating background emojis
type BackdropTickMsg time.Time

// MarkerExpiredMsg removes a transient marker once its lifetime is over
type MarkerExpiredMsg struct {
	ID string
}

// ShareResultMsg carries the outcome of a share attempt
type ShareResultMsg struct {
	Result share.Result
}

// CopyResultMsg carries the outcome of the native clipboard write
type CopyResultMsg struct {
	Err error
}
