// Package display renders catalog entries, trees and statistics for people.
package display

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"

	"catalog-go/internal/catalog"
)

var (
	dirColor    = color.New(color.FgBlue, color.Bold)
	headerColor = color.New(color.FgCyan, color.Bold)
)

// FormatSize renders bytes as B, KB, MB or GB.
func FormatSize(bytes uint64) string {
	const (
		KB = 1024
		MB = KB * 1024
		GB = MB * 1024
	)

	switch {
	case bytes >= GB:
		return fmt.Sprintf("%.2f GB", float64(bytes)/float64(GB))
	case bytes >= MB:
		return fmt.Sprintf("%.2f MB", float64(bytes)/float64(MB))
	case bytes >= KB:
		return fmt.Sprintf("%.2f KB", float64(bytes)/float64(KB))
	default:
		return fmt.Sprintf("%d B", bytes)
	}
}

// Row formats one entry as name, kind, size and creation date.
func Row(e catalog.Entry) string {
	size := FormatSize(e.Size)
	name := fmt.Sprintf("%-25s", e.Name)
	if e.IsContainer() {
		size = "<DIR>"
		name = dirColor.Sprint(name)
	}
	return fmt.Sprintf("%s %-10s %-10s %s", name, e.Kind, size, e.Created.Format("01/02/2006"))
}

// Label is the short form used in tree views.
func Label(e catalog.Entry) string {
	if e.IsContainer() {
		return dirColor.Sprint(e.Name + "/")
	}
	return fmt.Sprintf("%s (%s)", e.Name, FormatSize(e.Size))
}

// FormatDuration renders a session length as mm:ss, or h:mm:ss past an hour.
func FormatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	h := int(d / time.Hour)
	m := int(d%time.Hour) / int(time.Minute)
	s := int(d%time.Minute) / int(time.Second)
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d", m, s)
}

func rule(width int) string {
	return strings.Repeat("=", width)
}
