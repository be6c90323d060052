package catalog

import (
	"errors"
	"path"
	"strings"
	"time"
	"unicode"
)

// ErrEmptyName is returned when an entry is constructed from a blank name.
var ErrEmptyName = errors.New("entry name is empty")

// Kind separates the two entry namespaces. Containers order before leaves.
type Kind int

const (
	Leaf Kind = iota
	Container
)

func (k Kind) String() string {
	if k == Container {
		return "Directory"
	}
	return "File"
}

// Entry is a catalog item. Name, Kind and Extension are fixed at construction.
type Entry struct {
	Name      string
	Kind      Kind
	Size      uint64
	Created   time.Time
	Extension string

	// key is the upper-cased name used for ordering
	key string
}

// NewEntry builds an entry stamped with the current time. Containers never
// carry an extension.
func NewEntry(name string, kind Kind, size uint64) (Entry, error) {
	if strings.TrimSpace(name) == "" {
		return Entry{}, ErrEmptyName
	}

	e := Entry{
		Name:    name,
		Kind:    kind,
		Size:    size,
		Created: time.Now(),
		key:     foldName(name),
	}
	if kind == Leaf {
		e.Extension = extensionOf(name)
	}
	return e, nil
}

// IsContainer reports whether the entry is a directory-like item.
func (e Entry) IsContainer() bool {
	return e.Kind == Container
}

// Key returns the upper-cased name the entry is ordered by.
func (e Entry) Key() string {
	return e.sortKey()
}

// Compare orders a and b by kind (containers first) then by upper-cased name.
func Compare(a, b Entry) int {
	if a.Kind != b.Kind {
		if a.Kind == Container {
			return -1
		}
		return 1
	}
	return strings.Compare(a.sortKey(), b.sortKey())
}

// probe returns a comparison-only entry for a name and kind.
func probe(name string, kind Kind) Entry {
	return Entry{Name: name, Kind: kind, key: foldName(name)}
}

func (e Entry) sortKey() string {
	if e.key == "" && e.Name != "" {
		return foldName(e.Name)
	}
	return e.key
}

// foldName maps each rune to its simple upper case, so keys compare
// ordinally ignoring case: "ß" and "SS" stay distinct and "_" sorts after
// every letter.
func foldName(name string) string {
	return strings.Map(unicode.ToUpper, name)
}

// extensionOf returns the suffix from the last dot, dot included.
func extensionOf(name string) string {
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		return name[i:]
	}
	return ""
}

// baseName reduces a path-like input to its final element.
func baseName(name string) string {
	name = strings.ReplaceAll(strings.TrimSpace(name), "\\", "/")
	name = strings.TrimRight(name, "/")
	if name == "" {
		return ""
	}
	return path.Base(name)
}
