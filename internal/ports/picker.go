package ports

import (
	"context"
	"errors"
)

// ErrSelectionCancelled is returned when the user dismisses the picker
var ErrSelectionCancelled = errors.New("selection cancelled")

// Picker starts an interactive line picker
type Picker interface {
	// Start launches the picker with extra arguments. It returns as soon as
	// the picker is running so the caller can prepare candidates meanwhile.
	Start(ctx context.Context, args []string) (PickerSession, error)
}

// PickerSession is a running picker waiting for its candidates
type PickerSession interface {
	// Choose sends the newline-terminated candidate lines, then blocks until
	// the picker exits and returns the chosen line. A picker that exits
	// unsuccessfully yields ErrSelectionCancelled.
	Choose(candidates string) (string, error)

	// Abort stops the picker without waiting for a choice
	Abort() error
}
