// Package loader fills a catalog from a directory crawl or the demo data set.
package loader

import (
	"fmt"
	"io"

	"go.uber.org/zap"

	"catalog-go/internal/catalog"
	"catalog-go/internal/progress"
	"catalog-go/internal/walker"
)

// Summary reports what a load did.
type Summary struct {
	Added      int
	Duplicates int
	Invalid    int
	// Errors are crawl errors for paths that were skipped
	Errors []error
}

var sampleContainers = []string{
	"Documents", "Pictures", "Videos", "Music", "Downloads", "Projects",
}

var sampleLeaves = []struct {
	name string
	size uint64
}{
	{"readme.txt", 2048},
	{"config.json", 1024},
	{"app.cs", 5120},
	{"photo.jpg", 2048000},
	{"song.mp3", 4096000},
	{"video.mp4", 52428800},
	{"document.pdf", 1048576},
	{"presentation.pptx", 3145728},
}

// LoadSample inserts the demo directories and files. Entries already present
// are counted as duplicates.
func LoadSample(idx *catalog.Index) Summary {
	var sum Summary
	for _, name := range sampleContainers {
		sum.record(idx.AddContainer(name))
	}
	for _, f := range sampleLeaves {
		sum.record(idx.AddLeaf(f.name, f.size))
	}
	return sum
}

func (s *Summary) record(added bool) {
	if added {
		s.Added++
		return
	}
	s.Duplicates++
}

// LoadItems inserts crawl items in order. Items sharing a composite key with
// an earlier item (same kind, same name ignoring case) are skipped.
func LoadItems(idx *catalog.Index, items []walker.Item, bar *progress.Bar, log *zap.Logger) Summary {
	if log == nil {
		log = zap.NewNop()
	}

	var sum Summary
	for _, item := range items {
		entry, err := catalog.NewEntry(item.Name, item.Kind, item.Size)
		if err != nil {
			sum.Invalid++
			log.Debug("skipping item", zap.String("path", item.Path), zap.Error(err))
			continue
		}
		entry.Created = item.ModTime

		if idx.Insert(entry) {
			sum.Added++
		} else {
			sum.Duplicates++
			log.Debug("duplicate name", zap.String("path", item.Path), zap.Stringer("kind", item.Kind))
		}

		if bar != nil {
			bar.Increment(item.Name)
		}
	}
	if bar != nil {
		bar.Finish()
	}
	return sum
}

// FromDirectory crawls dir and loads everything it finds into idx. Progress is
// drawn on progressOut when it is a terminal.
func FromDirectory(idx *catalog.Index, dir string, exclude []string, progressOut io.Writer, log *zap.Logger) (Summary, error) {
	if log == nil {
		log = zap.NewNop()
	}

	result, err := walker.Walk(dir, exclude)
	if err != nil {
		return Summary{}, fmt.Errorf("failed to crawl %s: %w", dir, err)
	}
	for _, walkErr := range result.Errors {
		log.Warn("skipped path", zap.Error(walkErr))
	}

	var bar *progress.Bar
	if progressOut != nil {
		bar = progress.New(int64(len(result.Items)), progressOut)
	}

	sum := LoadItems(idx, result.Items, bar, log)
	sum.Errors = result.Errors

	log.Info("loaded directory",
		zap.String("dir", dir),
		zap.Int("added", sum.Added),
		zap.Int("duplicates", sum.Duplicates),
		zap.Int("errors", len(sum.Errors)),
	)
	return sum, nil
}
