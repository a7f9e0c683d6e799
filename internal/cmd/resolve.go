package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/harrison/vaultscan/internal/display"
	"github.com/harrison/vaultscan/internal/indexfile"
)

// NewResolveCommand creates the resolve command
func NewResolveCommand() *cobra.Command {
	flags := &scanFlags{}
	var output string
	var warnDuplicates bool

	cmd := &cobra.Command{
		Use:   "resolve <root>",
		Short: "Key every file by its shortest unambiguous name",
		Long: `Discover files like 'list' does and print a key for each one.

A file whose name (with extension) is unique in the result set is keyed by
that name. When several files share a name, each of them is keyed by its
full path relative to the root.

With --output (or index_file in the config) the mapping is also written as a
YAML index file, atomically and under a file lock.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var outputFlag *string
			if cmd.Flags().Changed("output") {
				outputFlag = &output
			}
			return runResolve(cmd, args[0], flags, outputFlag, warnDuplicates, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
		SilenceUsage: true,
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", "Also write the index to this YAML file")
	cmd.Flags().BoolVar(&warnDuplicates, "warn-duplicates", false, "Warn about filenames used more than once")

	return cmd
}

func runResolve(cmd *cobra.Command, root string, flags *scanFlags, output *string, warnDuplicates bool, out, errOut io.Writer) error {
	s, err := newSession(cmd, root, flags, errOut)
	if err != nil {
		return err
	}
	defer s.Close()
	s.cfg.MergeWithFlags(nil, nil, nil, nil, nil, output)

	opts := s.options()
	ix, err := s.discoverer().Index(root, opts)
	if err != nil {
		s.log.LogError(err.Error())
		return err
	}

	entries := ix.Map()
	paths := make([]string, 0, len(entries))
	for _, p := range entries {
		paths = append(paths, p)
	}
	s.warnUnmatched(paths, errOut)

	collisions := ix.Collisions()
	if warnDuplicates && len(collisions) > 0 {
		display.WarnDuplicateNames(collisions).Display(errOut)
	}
	s.log.LogInfo(fmt.Sprintf("resolved %d key(s), %d colliding filename(s)", ix.Len(), len(collisions)))

	if s.cfg.IndexFile != "" {
		doc := indexfile.NewDocument(root, opts.Extension, opts.IncludeSubdirs, opts.IncludeRoot, ix)
		if err := indexfile.Write(s.cfg.IndexFile, doc); err != nil {
			s.log.LogError(err.Error())
			return err
		}
		s.log.LogInfo(fmt.Sprintf("wrote index %s (scan %s)", s.cfg.IndexFile, doc.ScanID))
	}

	return display.WriteKeys(out, entries, flags.format)
}
