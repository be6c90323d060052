// Package catalog implements an in-memory catalog of files and directories
// kept in an unbalanced binary search tree.
//
// Entries are ordered by a composite key: directories (containers) before
// files (leaves), then case-insensitive name. A container and a leaf may share
// a name; two entries of the same kind whose names differ only by case may
// not. All queries are in-order traversals, so results come back in key order.
//
// An Index is not safe for concurrent use. Callers that share one across
// goroutines must guard the whole Index with a single lock.
package catalog

import (
	"iter"
	"strings"
	"time"
)

// Index is the catalog tree plus session bookkeeping.
type Index struct {
	root         *node
	count        int
	operations   int
	sessionStart time.Time

	now func() time.Time
}

// New returns an empty Index whose session starts now.
func New() *Index {
	return &Index{
		sessionStart: time.Now(),
		now:          time.Now,
	}
}

// Insert adds e unless an entry with the same composite key is present.
// Entries built by hand get the same name and extension rules as NewEntry.
// The tree is not rebalanced; sorted input degrades it to a list.
func (ix *Index) Insert(e Entry) bool {
	ix.operations++
	return ix.insert(e)
}

func (ix *Index) insert(e Entry) bool {
	e, ok := ix.normalize(e)
	if !ok || ix.exists(e) {
		return false
	}

	var inserted bool
	ix.root, inserted = insertNode(ix.root, e)
	if inserted {
		ix.count++
	}
	return inserted
}

// normalize applies the NewEntry rules to an entry built by hand: the name
// must not be blank, only leaves carry an extension and it is always derived
// from the name.
func (ix *Index) normalize(e Entry) (Entry, bool) {
	if strings.TrimSpace(e.Name) == "" {
		return Entry{}, false
	}
	e.key = foldName(e.Name)
	e.Extension = ""
	if e.Kind == Leaf {
		e.Extension = extensionOf(e.Name)
	}
	if e.Created.IsZero() {
		e.Created = ix.now()
	}
	return e, true
}

// AddLeaf creates a file entry from the final element of name.
func (ix *Index) AddLeaf(name string, size uint64) bool {
	ix.operations++
	e, err := NewEntry(baseName(name), Leaf, size)
	if err != nil {
		return false
	}
	return ix.insert(e)
}

// AddContainer creates a directory entry from the final element of name.
func (ix *Index) AddContainer(name string) bool {
	ix.operations++
	e, err := NewEntry(baseName(name), Container, 0)
	if err != nil {
		return false
	}
	return ix.insert(e)
}

// Search finds a file by name. The probe key is always a leaf, so containers
// are only reachable through Lookup.
func (ix *Index) Search(name string) (Entry, bool) {
	ix.operations++
	return ix.lookup(baseName(name), Leaf)
}

// Lookup finds the entry with the exact composite key (name, kind).
func (ix *Index) Lookup(name string, kind Kind) (Entry, bool) {
	ix.operations++
	return ix.lookup(baseName(name), kind)
}

func (ix *Index) lookup(name string, kind Kind) (Entry, bool) {
	if name == "" {
		return Entry{}, false
	}
	if n := findNode(ix.root, probe(name, kind)); n != nil {
		return n.entry, true
	}
	return Entry{}, false
}

// Exists reports whether an entry with e's composite key is present.
func (ix *Index) Exists(e Entry) bool {
	return ix.exists(e)
}

func (ix *Index) exists(e Entry) bool {
	return findNode(ix.root, probe(e.Name, e.Kind)) != nil
}

// Delete removes the entry with the composite key (name, kind).
func (ix *Index) Delete(name string, kind Kind) bool {
	ix.operations++
	return ix.delete(baseName(name), kind)
}

// Remove deletes name as a file, or failing that as a directory. At most one
// entry is removed.
func (ix *Index) Remove(name string) bool {
	ix.operations++
	name = baseName(name)
	return ix.delete(name, Leaf) || ix.delete(name, Container)
}

func (ix *Index) delete(name string, kind Kind) bool {
	if name == "" {
		return false
	}

	var removed bool
	ix.root, removed = deleteNode(ix.root, probe(name, kind))
	if removed {
		ix.count--
	}
	return removed
}

// Count returns the number of entries.
func (ix *Index) Count() int {
	return ix.count
}

// IsEmpty reports whether the catalog has no entries.
func (ix *Index) IsEmpty() bool {
	return ix.root == nil
}

// Height returns the number of nodes on the longest root-to-leaf path.
func (ix *Index) Height() int {
	return height(ix.root)
}

// Operations returns how many public operations have run this session.
func (ix *Index) Operations() int {
	return ix.operations
}

// SessionDuration returns the time elapsed since New.
func (ix *Index) SessionDuration() time.Duration {
	return ix.now().Sub(ix.sessionStart)
}

// All yields every entry in ascending key order.
func (ix *Index) All() iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		inOrder(ix.root, yield)
	}
}

// Collect returns the entries matching keep, in ascending key order.
func (ix *Index) Collect(keep func(Entry) bool) []Entry {
	results := make([]Entry, 0)
	for e := range ix.All() {
		if keep(e) {
			results = append(results, e)
		}
	}
	return results
}
