package display

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"catalog-go/internal/catalog"
)

// WriteList prints a titled result list, at most limit rows (0 = all).
func WriteList(w io.Writer, title string, entries []catalog.Entry, limit int) {
	fmt.Fprintln(w, headerColor.Sprintf("%s (%d)", title, len(entries)))
	fmt.Fprintln(w, rule(61))

	if len(entries) == 0 {
		fmt.Fprintln(w, " (none)")
		return
	}

	shown := entries
	if limit > 0 && len(entries) > limit {
		shown = entries[:limit]
	}
	for _, e := range shown {
		fmt.Fprintf(w, " %s\n", Row(e))
	}
	if len(shown) < len(entries) {
		fmt.Fprintf(w, " ... and %d more\n", len(entries)-len(shown))
	}
}

// WriteTree draws the tree shape with the right subtree above the left one,
// followed by a level-order listing.
func WriteTree(w io.Writer, outline *catalog.Outline, levels [][]catalog.Entry) {
	if outline == nil {
		fmt.Fprintln(w, "(empty catalog)")
		return
	}

	writeBranch(w, outline, "", true, true)

	fmt.Fprintln(w)
	fmt.Fprintln(w, "(Level-order view)")
	for depth, row := range levels {
		labels := make([]string, 0, len(row))
		for _, e := range row {
			labels = append(labels, Label(e))
		}
		fmt.Fprintf(w, "L%d: %s\n", depth, strings.Join(labels, "  "))
	}
}

func writeBranch(w io.Writer, o *catalog.Outline, prefix string, isLast, isRoot bool) {
	connector := "├── "
	switch {
	case isRoot:
		connector = "* "
	case isLast:
		connector = "└── "
	}
	fmt.Fprintln(w, prefix+connector+Label(o.Entry))

	childPrefix := prefix
	switch {
	case isRoot:
	case isLast:
		childPrefix += "    "
	default:
		childPrefix += "│   "
	}

	if o.Right != nil {
		writeBranch(w, o.Right, childPrefix, o.Left == nil, false)
	}
	if o.Left != nil {
		writeBranch(w, o.Left, childPrefix, true, false)
	}
}

// WriteStats prints the statistics block.
func WriteStats(w io.Writer, s catalog.Statistics, fingerprint string) {
	fmt.Fprintln(w, headerColor.Sprint("File System Statistics"))
	fmt.Fprintln(w, rule(24))
	fmt.Fprintf(w, "Total Items: %d (%d directories, %d files)\n", s.TotalItems(), s.ContainerCount, s.LeafCount)
	fmt.Fprintf(w, "Total Size: %s\n", FormatSize(s.TotalSize))
	fmt.Fprintf(w, "Operations Performed: %d\n", s.Operations)
	fmt.Fprintf(w, "Session Duration: %s\n", FormatDuration(s.SessionDuration))
	if s.LeafCount > 0 {
		fmt.Fprintf(w, "Largest File: %s (%s)\n", s.LargestLeaf, FormatSize(s.LargestLeafSize))
	}
	ext := s.MostCommonExtension
	if ext == "" {
		ext = "(none)"
	}
	fmt.Fprintf(w, "Most Common Extension: %s\n", ext)
	if fingerprint != "" {
		fmt.Fprintf(w, "Fingerprint: %s\n", fingerprint)
	}
}

type jsonEntry struct {
	Name      string    `json:"name"`
	Kind      string    `json:"kind"`
	Size      uint64    `json:"size"`
	Extension string    `json:"extension,omitempty"`
	Created   time.Time `json:"created"`
}

// WriteJSON encodes entries as an indented JSON array.
func WriteJSON(w io.Writer, entries []catalog.Entry) error {
	out := make([]jsonEntry, 0, len(entries))
	for _, e := range entries {
		kind := "file"
		if e.IsContainer() {
			kind = "directory"
		}
		out = append(out, jsonEntry{
			Name:      e.Name,
			Kind:      kind,
			Size:      e.Size,
			Extension: e.Extension,
			Created:   e.Created,
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("failed to encode entries: %w", err)
	}
	return nil
}
