package walker

import (
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"strings"
	"time"

	"catalog-go/internal/catalog"
)

type Item struct {
	Path    string
	Name    string
	Kind    catalog.Kind
	Size    uint64
	ModTime time.Time
}

type WalkResult struct {
	Items  []Item
	Errors []error
}

// Files returns the number of leaf items found
func (r *WalkResult) Files() int {
	n := 0
	for _, item := range r.Items {
		if item.Kind == catalog.Leaf {
			n++
		}
	}
	return n
}

// Walk crawls rootPath and returns every file and directory below it. The
// root directory itself is not included.
func Walk(rootPath string, exclusions []string) (*WalkResult, error) {
	result := &WalkResult{
		Items:  make([]Item, 0),
		Errors: make([]error, 0),
	}

	err := filepath.WalkDir(rootPath, func(fullPath string, d fs.DirEntry, err error) error {
		if err != nil {
			// If error is on the root path, return it (don't continue walking)
			if fullPath == rootPath {
				return err
			}
			// Skip permission errors and continue walking
			result.Errors = append(result.Errors, err)
			return nil
		}

		if fullPath == rootPath {
			return nil
		}

		// Get relative path for matching
		relPath, err := filepath.Rel(rootPath, fullPath)
		if err != nil {
			result.Errors = append(result.Errors, err)
			return nil
		}

		// Check if path should be excluded
		if shouldExclude(relPath, d.IsDir(), exclusions) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		info, err := d.Info()
		if err != nil {
			result.Errors = append(result.Errors, err)
			return nil
		}

		item := Item{
			Path:    fullPath,
			Name:    d.Name(),
			Kind:    catalog.Leaf,
			ModTime: info.ModTime(),
		}
		if d.IsDir() {
			item.Kind = catalog.Container
		} else if info.Size() > 0 {
			item.Size = uint64(info.Size())
		}
		result.Items = append(result.Items, item)

		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to walk directory: %w", err)
	}

	return result, nil
}

// shouldExclude reports whether an item matches one of the exclusion globs.
// A trailing slash limits a pattern to directories; excluded directories are
// skipped whole, so their contents never reach this check. Patterns holding a
// slash match the relative path, all others match the item name.
func shouldExclude(relPath string, isDir bool, exclusions []string) bool {
	relPath = filepath.ToSlash(relPath)
	name := path.Base(relPath)

	for _, pattern := range exclusions {
		dirOnly := strings.HasSuffix(pattern, "/")
		if dirOnly {
			if !isDir {
				continue
			}
			pattern = strings.TrimSuffix(pattern, "/")
		}

		target := name
		if strings.Contains(pattern, "/") {
			target = relPath
		}
		if matched, err := path.Match(pattern, target); err == nil && matched {
			return true
		}
	}
	return false
}
