package cmd

import (
	"github.com/spf13/cobra"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// NewRootCommand creates and returns the root cobra command for vaultscan
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vaultscan",
		Short: "Discover and key the notes in a vault",
		Long: `vaultscan lists the files of one extension under a vault root,
restricts them to an allow-list of subdirectories, and keys every file by
its shortest unambiguous name: the bare filename when it is unique, or the
full relative path when the filename is used more than once.

Configuration is loaded from <root>/.vaultscan/config.yaml if present
(override with VAULTSCAN_CONFIG or --config). CLI flags override
configuration file settings.`,
		Version:      Version,
		SilenceUsage: true,
	}

	cmd.AddCommand(NewListCommand())
	cmd.AddCommand(NewResolveCommand())

	return cmd
}
