package fstree

import (
	"errors"
	"fmt"

	"dirsize/internal/model"
)

// Navigation errors
var (
	// ErrNavigation indicates a "cd .." issued while the cursor is at root.
	ErrNavigation = errors.New("cannot move to parent of root")

	// ErrNotDirectory indicates a "cd" into a name already recorded as a file.
	ErrNotDirectory = errors.New("not a directory")
)

// Query errors
var (
	// ErrNoCandidate indicates that no directory is at least as large as the threshold.
	ErrNoCandidate = errors.New("no directory meets the threshold")
)

// ReplayError records which command of a session failed to apply.
type ReplayError struct {
	Index int // 0-based position in the command sequence
	Cmd   model.Command
	Err   error
}

func (e *ReplayError) Error() string {
	if e.Cmd.Line > 0 {
		return fmt.Sprintf("command %d (%s) at line %d: %v", e.Index+1, e.Cmd.Kind, e.Cmd.Line, e.Err)
	}
	return fmt.Sprintf("command %d (%s): %v", e.Index+1, e.Cmd.Kind, e.Err)
}

func (e *ReplayError) Unwrap() error {
	return e.Err
}
