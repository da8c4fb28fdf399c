// Package clipboard writes text to the system clipboard.
package clipboard

import (
	"github.com/zhubert/gigglegen/internal/errors"
	"github.com/zhubert/gigglegen/internal/logger"
)

// writeFunc performs the platform write; tests replace it.
var writeFunc = nativeWrite

// WriteText puts text on the system clipboard.
func WriteText(text string) error {
	log := logger.ComponentLogger("clipboard")

	if text == "" {
		return errors.E(errors.Op("clipboard.WriteText"), errors.KindInvalid, "nothing to copy")
	}
	if err := writeFunc(text); err != nil {
		err = errors.ClipboardFailed(err)
		log.Warn("write failed", "error", err)
		return err
	}
	log.Debug("wrote text", "bytes", len(text))
	return nil
}
