package application

import (
	"errors"
	"fmt"

	"launchdex/internal/domain"
	"launchdex/internal/ports"
)

// Sentinel errors for common conditions
var (
	ErrIndexMissing       = errors.New("index not found")
	ErrCorruptIndex       = errors.New("corrupt index")
	ErrCorruptHistory     = errors.New("corrupt history")
	ErrNotIndexed         = errors.New("program not in index")
	ErrLaunchFailed       = errors.New("launch failed")
	ErrUnmatchedSelection = domain.ErrUnmatchedSelection
	ErrMalformedArguments = domain.ErrMalformedArguments
	ErrSelectionCancelled = ports.ErrSelectionCancelled
)

// ValidationError represents a validation failure with details
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// CorruptDocumentError reports a persisted document that could not be decoded
type CorruptDocumentError struct {
	Path string
	Kind error // ErrCorruptIndex or ErrCorruptHistory
	Err  error
}

func (e *CorruptDocumentError) Error() string {
	return fmt.Sprintf("%v at %s: %v", e.Kind, e.Path, e.Err)
}

func (e *CorruptDocumentError) Is(target error) bool {
	return target == e.Kind
}

func (e *CorruptDocumentError) Unwrap() error {
	return e.Err
}

// LaunchError represents a program the OS refused to start
type LaunchError struct {
	Path string
	Err  error
}

func (e *LaunchError) Error() string {
	return fmt.Sprintf("cannot start %s: %v", e.Path, e.Err)
}

func (e *LaunchError) Is(target error) bool {
	return target == ErrLaunchFailed
}

func (e *LaunchError) Unwrap() error {
	return e.Err
}

// IsUserFacing reports whether err describes a bad choice made in the picker
// rather than a failure of the tool itself.
func IsUserFacing(err error) bool {
	return errors.Is(err, ErrUnmatchedSelection) || errors.Is(err, ErrMalformedArguments)
}
