package pipeline

import (
	"errors"
	"fmt"
)

// ErrEmptyContent is returned by Submit when the content unit has no
// non-empty segments. No stages run and nothing is recorded.
var ErrEmptyContent = errors.New("content unit has no non-empty segments")

// ErrRunNotFound is returned when a run handle or ID is unknown.
var ErrRunNotFound = errors.New("pipeline run not found")

// StageError wraps a failure in a named stage. The run halts and no
// artifacts are committed.
type StageError struct {
	Stage string
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("pipeline stage %s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}
