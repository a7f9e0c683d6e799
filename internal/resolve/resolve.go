// Package resolve assigns every file in a vault the shortest key that still
// identifies it unambiguously.
//
// A file whose bare filename (name plus extension) is unique across the input
// is keyed by that filename. When two or more files share a filename, each of
// them is keyed by its full relative path instead.
package resolve

import (
	"path/filepath"
	"sort"
)

// ShortestKeys maps each path to its shortest unambiguous key. Filenames are
// compared byte for byte: case-sensitive, no Unicode normalization.
func ShortestKeys(paths []string) map[string]string {
	counts := nameCounts(paths)

	keys := make(map[string]string, len(paths))
	for _, p := range paths {
		name := filepath.Base(p)
		if counts[name] > 1 {
			keys[p] = p
		} else {
			keys[name] = p
		}
	}
	return keys
}

// Duplicates returns the filenames that occur more than once, sorted.
func Duplicates(paths []string) []string {
	var dupes []string
	for name, n := range nameCounts(paths) {
		if n > 1 {
			dupes = append(dupes, name)
		}
	}
	sort.Strings(dupes)
	return dupes
}

func nameCounts(paths []string) map[string]int {
	counts := make(map[string]int, len(paths))
	for _, p := range paths {
		counts[filepath.Base(p)]++
	}
	return counts
}

// Index is a read-only key to path lookup built by ShortestKeys.
type Index struct {
	entries map[string]string
}

// NewIndex builds an Index over paths.
func NewIndex(paths []string) *Index {
	return &Index{entries: ShortestKeys(paths)}
}

// Lookup returns the relative path stored under key.
func (ix *Index) Lookup(key string) (string, bool) {
	p, ok := ix.entries[key]
	return p, ok
}

// Len is the number of keys.
func (ix *Index) Len() int {
	return len(ix.entries)
}

// Keys returns all keys in sorted order.
func (ix *Index) Keys() []string {
	keys := make([]string, 0, len(ix.entries))
	for k := range ix.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Collisions returns the bare filenames that were keyed by full path, sorted.
func (ix *Index) Collisions() []string {
	seen := make(map[string]bool)
	var names []string
	for k, p := range ix.entries {
		name := filepath.Base(p)
		if k != name && !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// Map returns a copy of the key to path mapping.
func (ix *Index) Map() map[string]string {
	out := make(map[string]string, len(ix.entries))
	for k, v := range ix.entries {
		out[k] = v
	}
	return out
}
