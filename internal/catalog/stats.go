package catalog

import (
	"time"
)

// Statistics is a point-in-time summary of an Index.
type Statistics struct {
	LeafCount       int
	ContainerCount  int
	TotalSize       uint64
	LargestLeaf     string
	LargestLeafSize uint64

	// MostCommonExtension is empty when no file has an extension.
	MostCommonExtension string

	Operations      int
	SessionDuration time.Duration
}

// TotalItems returns the number of files and directories.
func (s Statistics) TotalItems() int {
	return s.LeafCount + s.ContainerCount
}

// Statistics computes counts and sizes from a full traversal. It does not
// count as an operation.
func (ix *Index) Statistics() Statistics {
	stats := Statistics{
		Operations:      ix.operations,
		SessionDuration: ix.SessionDuration(),
	}

	seenLeaf := false
	for e := range ix.All() {
		if e.Kind == Container {
			stats.ContainerCount++
			continue
		}

		stats.LeafCount++
		stats.TotalSize += e.Size
		if !seenLeaf || e.Size > stats.LargestLeafSize {
			stats.LargestLeaf = e.Name
			stats.LargestLeafSize = e.Size
			seenLeaf = true
		}
	}

	stats.MostCommonExtension = ix.mostCommonExtension()
	return stats
}

// mostCommonExtension counts extensions case-insensitively. The spelling
// reported is the first one met in key order; ties go to the alphabetically
// smallest extension.
func (ix *Index) mostCommonExtension() string {
	counts := make(map[string]int)
	spelling := make(map[string]string)

	for e := range ix.All() {
		if e.Kind != Leaf || e.Extension == "" {
			continue
		}
		key := foldName(e.Extension)
		if _, ok := spelling[key]; !ok {
			spelling[key] = e.Extension
		}
		counts[key]++
	}

	best, bestCount := "", 0
	for key, n := range counts {
		if n > bestCount || (n == bestCount && key < best) {
			best, bestCount = key, n
		}
	}
	return spelling[best]
}
