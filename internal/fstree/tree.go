package fstree

import (
	"fmt"
	"strings"

	"dirsize/internal/model"
)

// Stats counts what a replay produced.
type Stats struct {
	Directories int // Including root
	Files       int
	Conflicts   int // Files re-listed with a different size
}

// Tree owns the root directory and the cursor of a replayed session.
type Tree struct {
	root   *Node
	cursor *Node
	stats  Stats
}

// New returns a tree holding only an empty root, with the cursor at root.
func New() *Tree {
	root := newDir(RootName, nil)
	return &Tree{
		root:   root,
		cursor: root,
		stats:  Stats{Directories: 1},
	}
}

// Build replays cmds into a new tree.
func Build(cmds []model.Command) (*Tree, error) {
	t := New()
	if err := t.Replay(cmds); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *Tree) Root() *Node { return t.root }
func (t *Tree) Cursor() *Node { return t.cursor }
func (t *Tree) Stats() Stats { return t.stats }

// Replay applies cmds in order and stops at the first failure.
// The returned error is a *ReplayError wrapping the cause.
func (t *Tree) Replay(cmds []model.Command) error {
	for i, cmd := range cmds {
		if err := t.Apply(cmd); err != nil {
			return &ReplayError{Index: i, Cmd: cmd, Err: err}
		}
	}
	return nil
}

// Apply executes a single command against the cursor.
func (t *Tree) Apply(cmd model.Command) error {
	switch cmd.Kind {
	case model.CmdRoot:
		t.cursor = t.root
		return nil

	case model.CmdParent:
		if t.cursor.parent == nil {
			return ErrNavigation
		}
		t.cursor = t.cursor.parent
		return nil

	case model.CmdDescend:
		child, created := t.cursor.getOrCreateDir(cmd.Name)
		if created {
			t.stats.Directories++
		}
		if !child.IsDir() {
			return fmt.Errorf("%w: %s", ErrNotDirectory, child.Path())
		}
		t.cursor = child
		return nil

	case model.CmdList:
		for _, e := range cmd.Entries {
			t.insert(e)
		}
		return nil

	default:
		return fmt.Errorf("unknown command kind %d", cmd.Kind)
	}
}

func (t *Tree) insert(e model.Entry) {
	if e.Dir {
		if _, created := t.cursor.getOrCreateDir(e.Name); created {
			t.stats.Directories++
		}
		return
	}
	child, created := t.cursor.InsertChildFile(e.Name, e.Size)
	switch {
	case created:
		t.stats.Files++
	case child.IsFile() && child.size != e.Size:
		t.stats.Conflicts++
	}
}

// AllDirectories returns every directory reachable from root in pre-order,
// visiting children in the order they were first seen.
func (t *Tree) AllDirectories() []*Node {
	var dirs []*Node
	t.Walk(func(n *Node) bool {
		if n.IsDir() {
			dirs = append(dirs, n)
		}
		return true
	})
	return dirs
}

// Walk visits every node in pre-order. Returning false from fn skips the
// node's children.
func (t *Tree) Walk(fn func(n *Node) bool) {
	stack := []*Node{t.root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !fn(n) || !n.IsDir() {
			continue
		}
		for i := len(n.order) - 1; i >= 0; i-- {
			stack = append(stack, n.order[i])
		}
	}
}

// Find resolves a slash path such as /a/e. It returns nil if any segment
// is missing.
func (t *Tree) Find(path string) *Node {
	n := t.root
	for _, part := range splitPath(path) {
		n = n.Child(part)
		if n == nil {
			return nil
		}
	}
	return n
}

func splitPath(path string) []string {
	return strings.FieldsFunc(path, func(r rune) bool { return r == '/' })
}
