package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/harrison/vaultscan/internal/display"
)

// NewListCommand creates the list command
func NewListCommand() *cobra.Command {
	flags := &scanFlags{}

	cmd := &cobra.Command{
		Use:   "list <root>",
		Short: "List the files of one extension under a vault root",
		Long: `List every file with the configured extension under <root>, relative to
the root, keeping only files in the allowed subdirectories.

Examples:
  # Every markdown note
  vaultscan list ~/vault

  # Notes under Projects/ (and below), without root-level notes
  vaultscan list ~/vault --subdir Projects --no-root

  # Canvas files as YAML
  vaultscan list ~/vault --ext canvas --format yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, args[0], flags, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
		SilenceUsage: true,
	}

	flags.register(cmd)
	return cmd
}

func runList(cmd *cobra.Command, root string, flags *scanFlags, out, errOut io.Writer) error {
	s, err := newSession(cmd, root, flags, errOut)
	if err != nil {
		return err
	}
	defer s.Close()

	paths, err := s.discoverer().RelPaths(root, s.options())
	if err != nil {
		s.log.LogError(err.Error())
		return err
	}

	s.warnUnmatched(paths, errOut)
	s.log.LogInfo(fmt.Sprintf("found %d .%s file(s)", len(paths), s.cfg.Extension))

	return display.WritePaths(out, paths, flags.format)
}
