package session

import (
	"fmt"
	"io"
	"os"
)

// Stdin is the path that selects standard input as the transcript source.
const Stdin = "-"

// Open returns the transcript at path, or standard input for Stdin.
// The caller is responsible for closing it.
func Open(path string) (io.ReadCloser, error) {
	if path == Stdin {
		// Closing the process's stdin is not ours to do.
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open transcript: %w", err)
	}
	return f, nil
}

// Load opens and parses the transcript at path.
func Load(path string) (*Transcript, error) {
	r, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	t, err := NewParser().Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", displayName(path), err)
	}
	return t, nil
}

func displayName(path string) string {
	if path == Stdin {
		return "stdin"
	}
	return path
}
