package fstree

// Aggregator computes and memoizes directory sizes.
//
// Sizes are stored on the nodes themselves, so any Aggregator sees the
// results of another. Computed only counts this Aggregator's work.
type Aggregator struct {
	computed int
}

// NewAggregator returns an Aggregator with no recorded work.
func NewAggregator() *Aggregator {
	return &Aggregator{}
}

// Computed returns the number of directories whose size this Aggregator
// had to compute rather than read from the cache.
func (a *Aggregator) Computed() int {
	return a.computed
}

// SizeOf returns the total size of every file beneath n. For a file it is
// the file's own size.
//
// The fold runs post-order over an explicit stack, so tree depth does not
// bound it. Each directory is computed at most once.
func (a *Aggregator) SizeOf(n *Node) int64 {
	if n == nil {
		return 0
	}
	if n.IsFile() {
		return n.size
	}
	if n.sized {
		return n.cachedSize
	}

	type frame struct {
		dir      *Node
		expanded bool
	}
	stack := []frame{{dir: n}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if top.dir.sized {
			continue
		}
		if !top.expanded {
			stack = append(stack, frame{dir: top.dir, expanded: true})
			for _, c := range top.dir.order {
				if c.IsDir() && !c.sized {
					stack = append(stack, frame{dir: c})
				}
			}
			continue
		}

		var total int64
		for _, c := range top.dir.order {
			if c.IsDir() {
				total += c.cachedSize
			} else {
				total += c.size
			}
		}
		top.dir.cachedSize = total
		top.dir.sized = true
		a.computed++
	}
	return n.cachedSize
}
