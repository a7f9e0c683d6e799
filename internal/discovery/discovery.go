// Package discovery wires the vault pipeline together: list the files of one
// extension under a root, restrict them to the allowed subdirectories, and
// optionally key them by their shortest unambiguous name.
package discovery

import (
	"fmt"
	"strings"

	"github.com/harrison/vaultscan/internal/fileutil"
	"github.com/harrison/vaultscan/internal/logger"
	"github.com/harrison/vaultscan/internal/resolve"
	"github.com/harrison/vaultscan/internal/subtree"
)

// Logger is the logging surface the pipeline reports through.
type Logger interface {
	LogDebug(message string)
}

// Options selects which files a discovery call returns.
type Options struct {
	// Extension is matched as a literal filename suffix, without leading dot
	Extension string
	// IncludeSubdirs restricts results to these subdirectories (empty = all)
	IncludeSubdirs []string
	// IncludeRoot keeps files that sit directly in the root
	IncludeRoot bool
}

// Discoverer runs the pipeline. The zero value lists with fileutil.DirLister
// and does not log.
type Discoverer struct {
	Lister fileutil.Lister
	Logger Logger
}

// New returns a Discoverer over lister. A nil lister means fileutil.DirLister{}
// and a nil log discards debug output.
func New(lister fileutil.Lister, log Logger) *Discoverer {
	if log == nil {
		log = logger.NewNoOpLogger()
	}
	return &Discoverer{Lister: lister, Logger: log}
}

// RelPaths lists the files under root selected by opts, in lister order.
func (d *Discoverer) RelPaths(root string, opts Options) ([]string, error) {
	if err := fileutil.CheckRoot(root); err != nil {
		return nil, err
	}
	// Reject bad specs before walking the tree.
	if _, err := subtree.NewAllowedDirSet(opts.IncludeSubdirs); err != nil {
		return nil, err
	}

	ext := strings.TrimPrefix(opts.Extension, ".")
	all, err := d.lister().List(root, ext)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s files: %w", ext, err)
	}
	d.debugf("listed %d .%s file(s) under %s", len(all), ext, root)

	kept, err := subtree.Filter(all, opts.IncludeSubdirs, opts.IncludeRoot)
	if err != nil {
		return nil, err
	}
	d.debugf("kept %d of %d file(s) (subdirs=%v, include_root=%t)", len(kept), len(all), opts.IncludeSubdirs, opts.IncludeRoot)

	return kept, nil
}

// Index runs RelPaths and keys the result by shortest unambiguous name.
func (d *Discoverer) Index(root string, opts Options) (*resolve.Index, error) {
	paths, err := d.RelPaths(root, opts)
	if err != nil {
		return nil, err
	}

	ix := resolve.NewIndex(paths)
	if dupes := resolve.Duplicates(paths); len(dupes) > 0 {
		d.debugf("%d filename(s) collide and are keyed by full path: %s", len(dupes), strings.Join(dupes, ", "))
	}
	d.debugf("indexed %d file(s)", ix.Len())
	return ix, nil
}

func (d *Discoverer) lister() fileutil.Lister {
	if d.Lister == nil {
		return fileutil.DirLister{}
	}
	return d.Lister
}

func (d *Discoverer) debugf(format string, args ...interface{}) {
	log := d.Logger
	if log == nil {
		log = logger.NewNoOpLogger()
	}
	log.LogDebug(fmt.Sprintf(format, args...))
}
