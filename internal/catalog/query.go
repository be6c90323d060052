package catalog

import (
	"slices"
	"strings"
)

// ByExtension returns files whose extension equals ext, ignoring case. A
// missing leading dot is added; a blank ext matches nothing.
func (ix *Index) ByExtension(ext string) []Entry {
	ix.operations++

	ext = strings.TrimSpace(ext)
	if ext == "" {
		return []Entry{}
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	key := foldName(ext)

	return ix.Collect(func(e Entry) bool {
		return e.Kind == Leaf && foldName(e.Extension) == key
	})
}

// BySizeRange returns files with lo <= size <= hi. An inverted range is
// swapped.
func (ix *Index) BySizeRange(lo, hi uint64) []Entry {
	ix.operations++

	if lo > hi {
		lo, hi = hi, lo
	}
	return ix.Collect(func(e Entry) bool {
		return e.Kind == Leaf && e.Size >= lo && e.Size <= hi
	})
}

// TopBySize returns up to k files, largest first. Files of equal size keep
// their key order. This is a full scan and sort.
func (ix *Index) TopBySize(k int) []Entry {
	ix.operations++

	if k <= 0 {
		return []Entry{}
	}

	files := ix.Collect(isLeaf)
	slices.SortStableFunc(files, func(a, b Entry) int {
		switch {
		case a.Size > b.Size:
			return -1
		case a.Size < b.Size:
			return 1
		}
		return 0
	})

	if len(files) > k {
		files = files[:k]
	}
	return files
}

// TotalSize sums the sizes of all files.
func (ix *Index) TotalSize() uint64 {
	ix.operations++
	return ix.totalSize()
}

func (ix *Index) totalSize() uint64 {
	var total uint64
	for e := range ix.All() {
		if e.Kind == Leaf {
			total += e.Size
		}
	}
	return total
}

func isLeaf(e Entry) bool {
	return e.Kind == Leaf
}
