//go:build !darwin || (darwin && !cgo)

package clipboard

import (
	"fmt"
	"sync"

	"golang.design/x/clipboard"
)

var (
	initOnce sync.Once
	initErr  error
)

// Init initializes the clipboard library. Safe to call multiple times; a
// failure is remembered so later writes fail fast.
func Init() error {
	initOnce.Do(func() {
		if err := clipboard.Init(); err != nil {
			initErr = fmt.Errorf("failed to initialize clipboard: %w", err)
		}
	})
	return initErr
}

func nativeWrite(text string) error {
	if err := Init(); err != nil {
		return err
	}
	clipboard.Write(clipboard.FmtText, []byte(text))
	return nil
}
