// Package fileutil lists the files of a vault: every file under a root
// directory that carries a given extension, reported relative to the root.
//
// # Main Components
//
// ScanDirectory is the general walker. ScanOptions controls it:
//   - Extensions: filename suffixes to include ("md" matches "note.md")
//   - Recursive / MaxDepth: how far to descend (MaxDepth 0 = unlimited)
//   - ExcludeDirs / SkipHidden: directories that are never entered
//
// ScanResult.Files holds root-relative paths in sorted order.
// ScanResult.Errors holds non-fatal errors (e.g. permission denied on a
// subtree); scanning continues past them.
//
// Lister is the collaborator contract consumed by the discovery pipeline.
// DirLister implements it on top of ScanDirectory, and ListRelPaths and
// ListRelPathsByExts are the single- and multi-extension shorthands.
//
// # Usage
//
//	paths, err := fileutil.ListRelPaths("/path/to/vault", "md")
//	if errors.Is(err, fileutil.ErrInvalidRoot) {
//	    // root missing or not a directory
//	}
//
// # Matching Rules
//
// Extension matching is an exact, case-sensitive suffix test. Only regular files are reported; a symlink is
// reported when it points at a regular file, and symlinked directories are
// not followed.
//
// A missing root, or a root that is not a directory, fails with
// ErrInvalidRoot before any walking happens. An empty match set is not an
// error: the returned slice is empty and non-nil.
package fileutil
