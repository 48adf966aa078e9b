// Package fstree rebuilds a directory tree from a replayed session and
// answers aggregate-size queries over it.
package fstree

import "strings"

// Kind distinguishes directories from files.
type Kind int

const (
	KindDir Kind = iota
	KindFile
)

// RootName is the sentinel name of the root directory.
const RootName = "/"

// Node is a directory or a file in the reconstructed tree.
//
// A directory owns its children. The parent pointer is a navigation
// back-reference only and is nil for root.
type Node struct {
	name   string
	kind   Kind
	size   int64 // Files only
	parent *Node

	children map[string]*Node
	order    []*Node // First-insertion order of children

	// Set exactly once by an Aggregator. Valid because the tree is not
	// mutated after replay; any future mutation must clear it up to root.
	cachedSize int64
	sized      bool
}

func newDir(name string, parent *Node) *Node {
	return &Node{
		name:     name,
		kind:     KindDir,
		parent:   parent,
		children: make(map[string]*Node),
	}
}

func newFile(name string, size int64, parent *Node) *Node {
	return &Node{
		name:   name,
		kind:   KindFile,
		size:   size,
		parent: parent,
	}
}

func (n *Node) Name() string { return n.name }
func (n *Node) Kind() Kind { return n.kind }
func (n *Node) IsDir() bool { return n.kind == KindDir }
func (n *Node) IsFile() bool { return n.kind == KindFile }
func (n *Node) Parent() *Node { return n.parent }
func (n *Node) IsRoot() bool { return n.IsDir() && n.parent == nil }
func (n *Node) Len() int { return len(n.order) }
func (n *Node) FileSize() int64 { return n.size }

// CachedSize returns the memoized subtree size, if an Aggregator has computed it.
func (n *Node) CachedSize() (int64, bool) {
	return n.cachedSize, n.sized
}

// Child returns the direct child with the given name, or nil.
func (n *Node) Child(name string) *Node {
	if !n.IsDir() {
		return nil
	}
	return n.children[name]
}

// Children returns the direct children in the order they were first seen.
func (n *Node) Children() []*Node {
	return n.order
}

// InsertChildDir returns the child named name, creating an empty directory
// if no child of that name exists. An existing child is returned as is,
// even if it is a file.
func (n *Node) InsertChildDir(name string) *Node {
	child, _ := n.getOrCreateDir(name)
	return child
}

// InsertChildFile records a file of the given size unless a child of that
// name already exists. It returns the child now held under name and whether
// this call created it.
func (n *Node) InsertChildFile(name string, size int64) (*Node, bool) {
	if !n.IsDir() {
		return nil, false
	}
	if existing, ok := n.children[name]; ok {
		return existing, false
	}
	child := newFile(name, size, n)
	n.add(child)
	return child, true
}

func (n *Node) getOrCreateDir(name string) (*Node, bool) {
	if !n.IsDir() {
		return nil, false
	}
	if existing, ok := n.children[name]; ok {
		return existing, false
	}
	child := newDir(name, n)
	n.add(child)
	return child, true
}

func (n *Node) add(child *Node) {
	n.children[child.name] = child
	n.order = append(n.order, child)
}

// Depth returns the number of edges between n and root.
func (n *Node) Depth() int {
	depth := 0
	for p := n.parent; p != nil; p = p.parent {
		depth++
	}
	return depth
}

// Path returns the slash-separated path of n from root.
func (n *Node) Path() string {
	if n.parent == nil {
		return RootName
	}
	var parts []string
	for p := n; p.parent != nil; p = p.parent {
		parts = append(parts, p.name)
	}
	for i, j := 0, len(parts)-1; i < j; i, j = i+1, j-1 {
		parts[i], parts[j] = parts[j], parts[i]
	}
	return RootName + strings.Join(parts, "/")
}
