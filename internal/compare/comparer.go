package compare

import (
	"fmt"
	"iter"
	"strings"

	"catalog-go/internal/catalog"
)

type ChangeType string

const (
	Added   ChangeType = "ADDED"
	Resized ChangeType = "RESIZED"
	Removed ChangeType = "REMOVED"
)

type Change struct {
	Type  ChangeType
	Entry catalog.Entry
	// OldSize is set for Resized changes
	OldSize uint64
}

type CompareResult struct {
	Added   []Change
	Resized []Change
	Removed []Change
}

func (r *CompareResult) HasChanges() bool {
	return len(r.Added) > 0 || len(r.Resized) > 0 || len(r.Removed) > 0
}

// Compare merge-walks both catalogs in key order. Each list in the result is
// therefore sorted by composite key.
func Compare(oldIdx, newIdx *catalog.Index) *CompareResult {
	result := &CompareResult{
		Added:   make([]Change, 0),
		Resized: make([]Change, 0),
		Removed: make([]Change, 0),
	}

	nextOld, stopOld := iter.Pull(oldIdx.All())
	defer stopOld()
	nextNew, stopNew := iter.Pull(newIdx.All())
	defer stopNew()

	oldEntry, oldOK := nextOld()
	newEntry, newOK := nextNew()

	for oldOK || newOK {
		switch {
		case !newOK || (oldOK && catalog.Compare(oldEntry, newEntry) < 0):
			// Only in old catalog - removed
			result.Removed = append(result.Removed, Change{Type: Removed, Entry: oldEntry})
			oldEntry, oldOK = nextOld()

		case !oldOK || catalog.Compare(oldEntry, newEntry) > 0:
			// Only in new catalog - added
			result.Added = append(result.Added, Change{Type: Added, Entry: newEntry})
			newEntry, newOK = nextNew()

		default:
			// Present in both - check size
			if oldEntry.Size != newEntry.Size {
				result.Resized = append(result.Resized, Change{
					Type:    Resized,
					Entry:   newEntry,
					OldSize: oldEntry.Size,
				})
			}
			oldEntry, oldOK = nextOld()
			newEntry, newOK = nextNew()
		}
	}

	return result
}

func label(e catalog.Entry) string {
	if e.IsContainer() {
		return e.Name + "/"
	}
	return e.Name
}

func FormatReport(result *CompareResult) string {
	if !result.HasChanges() {
		return "No changes detected."
	}

	var report strings.Builder
	report.WriteString("Changes detected:\n\n")

	if len(result.Added) > 0 {
		fmt.Fprintf(&report, "ADDED (%d items):\n", len(result.Added))
		for _, change := range result.Added {
			fmt.Fprintf(&report, "  + %s (size: %d bytes)\n", label(change.Entry), change.Entry.Size)
		}
		report.WriteString("\n")
	}

	if len(result.Resized) > 0 {
		fmt.Fprintf(&report, "RESIZED (%d items):\n", len(result.Resized))
		for _, change := range result.Resized {
			fmt.Fprintf(&report, "  ~ %s (%d -> %d bytes)\n", label(change.Entry), change.OldSize, change.Entry.Size)
		}
		report.WriteString("\n")
	}

	if len(result.Removed) > 0 {
		fmt.Fprintf(&report, "REMOVED (%d items):\n", len(result.Removed))
		for _, change := range result.Removed {
			fmt.Fprintf(&report, "  - %s (size: %d bytes)\n", label(change.Entry), change.Entry.Size)
		}
		report.WriteString("\n")
	}

	fmt.Fprintf(&report, "Summary: %d added, %d resized, %d removed\n",
		len(result.Added), len(result.Resized), len(result.Removed))

	return report.String()
}
