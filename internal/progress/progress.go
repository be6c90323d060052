package progress

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/mattn/go-isatty"
)

type Bar struct {
	total      int64
	current    int64
	width      int
	writer     io.Writer
	mu         sync.Mutex
	label      string
	enabled    bool
	lastUpdate time.Time
}

// New returns a bar drawing to w. Drawing is disabled unless w is a terminal.
func New(total int64, w io.Writer) *Bar {
	return &Bar{
		total:      total,
		width:      40,
		writer:     w,
		enabled:    isTerminal(w),
		lastUpdate: time.Now(),
	}
}

// ForceEnable draws even when the writer is not a terminal.
func (b *Bar) ForceEnable() *Bar {
	b.enabled = true
	return b
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Current returns the number of completed steps
func (b *Bar) Current() int64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.current
}

// Increment advances the bar and shows label as the item just handled
func (b *Bar) Increment(label string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.current++
	b.label = label

	if !b.enabled {
		return
	}

	// Update at most every 100ms to reduce flickering
	now := time.Now()
	if now.Sub(b.lastUpdate) > 100*time.Millisecond || b.current == b.total {
		b.lastUpdate = now
		b.render()
	}
}

// render must be called with mu already locked
func (b *Bar) render() {
	if b.total == 0 {
		return
	}

	current := min(b.current, b.total)
	percent := float64(current) / float64(b.total) * 100
	filledWidth := int(float64(b.width) * float64(current) / float64(b.total))

	bar := strings.Repeat("█", filledWidth) + strings.Repeat("░", b.width-filledWidth)

	var labelDisplay string
	if b.label != "" {
		labelDisplay = " | " + b.label
	}

	// Clear the line and write progress
	fmt.Fprintf(b.writer, "\r\033[K[%s] %3d%% (%d/%d)%s",
		bar, int(percent), current, b.total, labelDisplay)
}

func (b *Bar) Finish() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.enabled {
		return
	}

	b.current = b.total
	b.label = ""
	b.render()
	fmt.Fprintf(b.writer, "\n")
}
