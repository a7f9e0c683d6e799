// Package subtree restricts a list of root-relative file paths to an
// allow-list of subdirectories.
//
// Membership is decided lexically on path segments: a directory D2 lies
// under D1 when D1's segments are a prefix of D2's (D1 == D2 counts).
// Nothing here touches the filesystem.
//
// Files sitting directly in the root are kept only through the includeRoot
// flag. A subdirectory spec that names the root itself (".") never matches
// through tree membership.
package subtree

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrMalformedSubdir is returned for a subdirectory spec that cannot be
// interpreted as a directory inside the root.
var ErrMalformedSubdir = errors.New("malformed subdirectory spec")

const rootDir = "."

// SubdirError describes a rejected subdirectory spec.
type SubdirError struct {
	Spec   string
	Reason string
}

func (e *SubdirError) Error() string {
	return fmt.Sprintf("%s %q: %s", ErrMalformedSubdir, e.Spec, e.Reason)
}

func (e *SubdirError) Unwrap() error {
	return ErrMalformedSubdir
}

// NormalizeSubdir turns a caller-supplied spec into a clean relative
// directory path. The last suffix of the final segment is dropped, so
// "Daily.md" and "Daily" name the same directory. Dot-names such as
// ".obsidian" are kept whole. The result may be "." when the spec names the
// root itself.
func NormalizeSubdir(spec string) (string, error) {
	if strings.TrimSpace(spec) == "" {
		return "", &SubdirError{Spec: spec, Reason: "empty"}
	}
	if filepath.IsAbs(spec) || filepath.VolumeName(spec) != "" || strings.HasPrefix(spec, "/") {
		return "", &SubdirError{Spec: spec, Reason: "must be relative to the root"}
	}

	dir := filepath.Clean(spec)
	base := filepath.Base(dir)
	if ext := filepath.Ext(base); ext != "" && ext != "." && ext != base {
		dir = filepath.Clean(strings.TrimSuffix(dir, ext))
	}

	if dir == ".." || strings.HasPrefix(dir, ".."+string(filepath.Separator)) {
		return "", &SubdirError{Spec: spec, Reason: "escapes the root"}
	}
	return dir, nil
}

// AllowedDirSet is the normalized allow-list for one filter call.
type AllowedDirSet struct {
	dirs [][]string
	seen map[string]bool
}

// NewAllowedDirSet normalizes every spec. The first malformed spec aborts
// construction.
func NewAllowedDirSet(specs []string) (*AllowedDirSet, error) {
	set := &AllowedDirSet{seen: make(map[string]bool, len(specs))}
	for _, spec := range specs {
		dir, err := NormalizeSubdir(spec)
		if err != nil {
			return nil, err
		}
		if dir == rootDir || set.seen[dir] {
			continue
		}
		set.seen[dir] = true
		set.dirs = append(set.dirs, segments(dir))
	}
	return set, nil
}

// Len reports the number of distinct directories in the set.
func (s *AllowedDirSet) Len() int {
	return len(s.dirs)
}

// Contains reports whether dir is one of the allowed directories or nested
// under one of them. The root is never contained.
func (s *AllowedDirSet) Contains(dir string) bool {
	if dir == rootDir {
		return false
	}
	segs := segments(dir)
	for _, allowed := range s.dirs {
		if isUnder(segs, allowed) {
			return true
		}
	}
	return false
}

// Filter keeps the paths whose parent directory is allowed. With no
// includeSubdirs every subdirectory is allowed. Root-level files are kept
// only when includeRoot is set. Input order is preserved.
func Filter(paths []string, includeSubdirs []string, includeRoot bool) ([]string, error) {
	out := make([]string, 0, len(paths))

	if len(includeSubdirs) == 0 {
		for _, p := range paths {
			if includeRoot || !atRoot(p) {
				out = append(out, p)
			}
		}
		return out, nil
	}

	allowed, err := NewAllowedDirSet(includeSubdirs)
	if err != nil {
		return nil, err
	}

	for _, p := range paths {
		if (includeRoot && atRoot(p)) || allowed.Contains(filepath.Dir(p)) {
			out = append(out, p)
		}
	}
	return out, nil
}

// Unmatched returns the specs that select none of the given paths. A spec
// naming the root is never reported.
func Unmatched(paths []string, includeSubdirs []string) ([]string, error) {
	var unmatched []string
	for _, spec := range includeSubdirs {
		single, err := NewAllowedDirSet([]string{spec})
		if err != nil {
			return nil, err
		}
		if single.Len() == 0 {
			continue
		}

		hit := false
		for _, p := range paths {
			if single.Contains(filepath.Dir(p)) {
				hit = true
				break
			}
		}
		if !hit {
			unmatched = append(unmatched, spec)
		}
	}
	return unmatched, nil
}

func atRoot(path string) bool {
	return filepath.Dir(path) == rootDir
}

func segments(dir string) []string {
	return strings.Split(filepath.Clean(dir), string(filepath.Separator))
}

// isUnder reports whether prefix is a segment prefix of segs.
func isUnder(segs, prefix []string) bool {
	if len(prefix) > len(segs) {
		return false
	}
	for i := range prefix {
		if segs[i] != prefix[i] {
			return false
		}
	}
	return true
}
