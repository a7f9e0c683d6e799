package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/harrison/vaultscan/internal/config"
	"github.com/harrison/vaultscan/internal/discovery"
	"github.com/harrison/vaultscan/internal/display"
	"github.com/harrison/vaultscan/internal/fileutil"
	"github.com/harrison/vaultscan/internal/logger"
	"github.com/harrison/vaultscan/internal/subtree"
)

// scanFlags holds the flags shared by list and resolve.
type scanFlags struct {
	configPath string
	extension  string
	subdirs    []string
	noRoot     bool
	maxDepth   int
	logLevel   string
	format     string
}

func (f *scanFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.configPath, "config", "", "Config file (default <root>/.vaultscan/config.yaml)")
	cmd.Flags().StringVarP(&f.extension, "ext", "e", "", "File extension to discover, without leading dot (default md)")
	cmd.Flags().StringArrayVarP(&f.subdirs, "subdir", "s", nil, "Restrict to this subdirectory and everything under it (repeatable)")
	cmd.Flags().BoolVar(&f.noRoot, "no-root", false, "Exclude files sitting directly in the root")
	cmd.Flags().IntVar(&f.maxDepth, "max-depth", 0, "Limit how deep files are found (0 = unlimited, 1 = root only)")
	cmd.Flags().StringVar(&f.logLevel, "log-level", "", "Log level: trace, debug, info, warn, error")
	cmd.Flags().StringVarP(&f.format, "format", "f", display.FormatText, "Output format: text or yaml")
}

// session is the resolved configuration and collaborators for one command run.
type session struct {
	root    string
	cfg     *config.Config
	log     logger.LevelLogger
	console logger.LevelLogger
	closers []io.Closer
}

// Close releases the run log. Failures are reported on the console.
func (s *session) Close() {
	for _, c := range s.closers {
		if err := c.Close(); err != nil {
			s.console.LogWarn(fmt.Sprintf("failed to close run log: %v", err))
		}
	}
}

func (s *session) options() discovery.Options {
	return discovery.Options{
		Extension:      s.cfg.Extension,
		IncludeSubdirs: s.cfg.IncludeSubdirs,
		IncludeRoot:    s.cfg.IncludeRoot,
	}
}

func (s *session) discoverer() *discovery.Discoverer {
	lister := fileutil.DirLister{
		ExcludeDirs: s.cfg.ExcludeDirs,
		SkipHidden:  s.cfg.SkipHidden,
		MaxDepth:    s.cfg.MaxDepth,
	}
	return discovery.New(lister, s.log)
}

// warnUnmatched prints a warning for allow-list entries that selected nothing.
func (s *session) warnUnmatched(paths []string, errOut io.Writer) {
	unmatched, err := subtree.Unmatched(paths, s.cfg.IncludeSubdirs)
	if err != nil || len(unmatched) == 0 {
		return
	}
	display.WarnUnmatchedSubdirs(unmatched).Display(errOut)
}

// newSession loads config for root, applies changed flags on top and sets up
// logging to errOut (plus a run log file when log_dir is configured).
func newSession(cmd *cobra.Command, root string, flags *scanFlags, errOut io.Writer) (*session, error) {
	if !display.ValidFormat(flags.format) {
		return nil, fmt.Errorf("invalid --format %q, must be one of: %s, %s", flags.format, display.FormatText, display.FormatYAML)
	}

	cfg, err := loadConfig(root, flags.configPath)
	if err != nil {
		return nil, err
	}

	var ext, level *string
	var includeRoot *bool
	var maxDepth *int
	if cmd.Flags().Changed("ext") {
		ext = &flags.extension
	}
	if cmd.Flags().Changed("log-level") {
		level = &flags.logLevel
	}
	if cmd.Flags().Changed("no-root") {
		v := !flags.noRoot
		includeRoot = &v
	}
	if cmd.Flags().Changed("max-depth") {
		maxDepth = &flags.maxDepth
	}
	cfg.MergeWithFlags(ext, flags.subdirs, includeRoot, maxDepth, level, nil)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	console := logger.NewConsoleLogger(errOut, cfg.LogLevel)
	s := &session{root: root, cfg: cfg, console: console}
	if cfg.LogDir == "" {
		s.log = console
		return s, nil
	}

	fileLog, err := logger.NewFileLoggerWithDirAndLevel(cfg.LogDir, cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	s.closers = append(s.closers, fileLog)
	s.log = logger.NewMultiLogger(console, fileLog)
	fileLog.LogInfo(fmt.Sprintf("root=%s extension=%s subdirs=%v include_root=%t", root, cfg.Extension, cfg.IncludeSubdirs, cfg.IncludeRoot))
	return s, nil
}

// loadConfig reads the vault's own config, or the file given with --config.
func loadConfig(root, path string) (*config.Config, error) {
	if path == "" {
		return config.LoadConfigFromDir(root)
	}
	cfg, err := config.LoadConfig(path)
	if err != nil {
		return nil, err
	}
	cfg.ResolvePaths(root)
	return cfg, nil
}
