package catalog

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrInvalidPattern wraps a regular expression that failed to compile.
var ErrInvalidPattern = errors.New("invalid pattern")

// Target selects which entry field a pattern is matched against.
type Target int

const (
	TargetName Target = iota
	TargetExtension
	TargetBoth
)

// ParseTarget maps "name", "extension"/"ext" and "both" to a Target. Anything
// else falls back to TargetName.
func ParseTarget(s string) Target {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "extension", "ext":
		return TargetExtension
	case "both":
		return TargetBoth
	default:
		return TargetName
	}
}

func (t Target) String() string {
	switch t {
	case TargetExtension:
		return "extension"
	case TargetBoth:
		return "both"
	default:
		return "name"
	}
}

// PatternOptions controls a pattern search.
type PatternOptions struct {
	Target            Target
	IncludeContainers bool
	// CaseSensitive disables the default (?i) flag.
	CaseSensitive bool
}

// PatternSearch returns entries matching the regular expression pattern. A
// blank or invalid pattern yields an empty result.
func (ix *Index) PatternSearch(pattern string, opts PatternOptions) []Entry {
	ix.operations++
	results, err := ix.matchPattern(pattern, opts)
	if err != nil {
		return []Entry{}
	}
	return results
}

// WildcardSearch translates a glob (* and ?) into an anchored expression and
// runs it as a pattern search.
func (ix *Index) WildcardSearch(glob string, opts PatternOptions) []Entry {
	ix.operations++
	results, err := ix.matchPattern(WildcardToRegex(glob), opts)
	if err != nil {
		return []Entry{}
	}
	return results
}

// MatchPattern is PatternSearch that reports a compile failure instead of
// returning an empty result.
func (ix *Index) MatchPattern(pattern string, opts PatternOptions) ([]Entry, error) {
	ix.operations++
	return ix.matchPattern(pattern, opts)
}

func (ix *Index) matchPattern(pattern string, opts PatternOptions) ([]Entry, error) {
	if strings.TrimSpace(pattern) == "" {
		return []Entry{}, nil
	}

	expr := pattern
	if !opts.CaseSensitive {
		expr = "(?i)" + pattern
	}
	rx, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrInvalidPattern, pattern, err)
	}

	return ix.Collect(func(e Entry) bool {
		if e.Kind == Container && !opts.IncludeContainers {
			return false
		}
		switch opts.Target {
		case TargetExtension:
			return rx.MatchString(e.Extension)
		case TargetBoth:
			return rx.MatchString(e.Name) || rx.MatchString(e.Extension)
		default:
			return rx.MatchString(e.Name)
		}
	}), nil
}

// WildcardToRegex escapes every metacharacter in glob, turns * into .* and
// ? into ., and anchors the result. An empty glob only matches "".
func WildcardToRegex(glob string) string {
	if glob == "" {
		return "^$"
	}
	escaped := regexp.QuoteMeta(glob)
	escaped = strings.ReplaceAll(escaped, `\*`, ".*")
	escaped = strings.ReplaceAll(escaped, `\?`, ".")
	return "^" + escaped + "$"
}
