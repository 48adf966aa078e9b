package fstree

// SumBelow returns the sum of the sizes of every directory, root included,
// whose size is strictly less than limit. Nested directories are counted
// once for themselves and again inside each qualifying ancestor.
func SumBelow(t *Tree, agg *Aggregator, limit int64) int64 {
	var sum int64
	for _, d := range t.AllDirectories() {
		if size := agg.SizeOf(d); size < limit {
			sum += size
		}
	}
	return sum
}

// SmallestAtLeast returns the smallest directory size that is at least threshold.
// It fails with ErrNoCandidate when even root is smaller than threshold.
func SmallestAtLeast(t *Tree, agg *Aggregator, threshold int64) (int64, error) {
	d, err := SmallestDirAtLeast(t, agg, threshold)
	if err != nil {
		return 0, err
	}
	return agg.SizeOf(d), nil
}

// SmallestDirAtLeast is SmallestAtLeast returning the directory itself.
// Ties go to the directory met first in pre-order.
func SmallestDirAtLeast(t *Tree, agg *Aggregator, threshold int64) (*Node, error) {
	var best *Node
	var bestSize int64
	for _, d := range t.AllDirectories() {
		size := agg.SizeOf(d)
		if size < threshold {
			continue
		}
		if best == nil || size < bestSize {
			best, bestSize = d, size
		}
	}
	if best == nil {
		return nil, ErrNoCandidate
	}
	return best, nil
}

// RequiredFree returns how much space must be deleted so that a disk of
// capacity disk, currently holding used, has at least need free.
func RequiredFree(disk, need, used int64) int64 {
	required := used - (disk - need)
	if required < 0 {
		return 0
	}
	return required
}
