package session

import (
	"errors"
	"fmt"

	"dirsize/internal/fstree"
	"dirsize/internal/model"
)

// ContextError is a replay failure annotated with the transcript lines
// around the failing command.
type ContextError struct {
	Err     error
	Context model.LineContext
}

func (e *ContextError) Error() string {
	return fmt.Sprintf("%v\n%s", e.Err, e.Context)
}

func (e *ContextError) Unwrap() error {
	return e.Err
}

// WithContext attaches the transcript lines around a failing command to err.
// Errors without a known line are returned unchanged.
func WithContext(err error, lines []string) error {
	var replayErr *fstree.ReplayError
	if !errors.As(err, &replayErr) || replayErr.Cmd.Line == 0 {
		return err
	}
	return &ContextError{Err: err, Context: model.GetLineContext(lines, replayErr.Cmd.Line)}
}
