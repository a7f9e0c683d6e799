package fileutil

import (
	"path/filepath"
	"strings"
)

// Lister returns the paths of all files under root that carry the given
// extension, relative to root.
type Lister interface {
	List(root, extension string) ([]string, error)
}

// DirLister is the filesystem-backed Lister.
type DirLister struct {
	// ExcludeDirs names directories that are never descended into
	ExcludeDirs []string
	// SkipHidden skips dot-directories such as .obsidian or .git
	SkipHidden bool
	// MaxDepth limits how deep files are found (0 = unlimited, 1 = root only)
	MaxDepth int
}

// List implements Lister.
func (l DirLister) List(root, extension string) ([]string, error) {
	result, err := ScanDirectory(root, ScanOptions{
		Extensions:  []string{extension},
		Recursive:   true,
		ExcludeDirs: l.ExcludeDirs,
		SkipHidden:  l.SkipHidden,
		MaxDepth:    l.MaxDepth,
	})
	if err != nil {
		return nil, err
	}
	return result.Files, nil
}

// ListRelPaths returns every file under root whose name ends in "."+extension,
// relative to root. The match is case-sensitive and exact.
func ListRelPaths(root, extension string) ([]string, error) {
	return DirLister{}.List(root, extension)
}

// ListRelPathsByExts returns every file under root whose final suffix is one
// of exts (e.g. ".md", ".canvas"), relative to root.
func ListRelPathsByExts(root string, exts []string) ([]string, error) {
	result, err := ScanDirectory(root, ScanOptions{Recursive: true})
	if err != nil {
		return nil, err
	}

	want := make(map[string]bool, len(exts))
	for _, ext := range exts {
		want["."+strings.TrimPrefix(ext, ".")] = true
	}

	files := make([]string, 0, len(result.Files))
	for _, f := range result.Files {
		if want[filepath.Ext(f)] {
			files = append(files, f)
		}
	}
	return files, nil
}
