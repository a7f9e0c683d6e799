package display

import (
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"text/tabwriter"

	"gopkg.in/yaml.v3"
)

// Output formats accepted by the commands.
const (
	FormatText = "text"
	FormatYAML = "yaml"
)

// ValidFormat reports whether format is a known output format.
func ValidFormat(format string) bool {
	return format == FormatText || format == FormatYAML
}

// WritePaths prints relative paths, one per line for text output.
// Paths are written with forward slashes so output is stable across hosts.
func WritePaths(out io.Writer, paths []string, format string) error {
	slashed := make([]string, len(paths))
	for i, p := range paths {
		slashed[i] = filepath.ToSlash(p)
	}

	switch format {
	case FormatYAML:
		return writeYAML(out, slashed)
	case FormatText:
		for _, p := range slashed {
			if _, err := fmt.Fprintln(out, p); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

// WriteKeys prints a key to path mapping sorted by key, as an aligned
// two-column table for text output.
func WriteKeys(out io.Writer, entries map[string]string, format string) error {
	keys := make([]string, 0, len(entries))
	for k := range entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	switch format {
	case FormatYAML:
		slashed := make(map[string]string, len(entries))
		for k, v := range entries {
			slashed[filepath.ToSlash(k)] = filepath.ToSlash(v)
		}
		return writeYAML(out, slashed)
	case FormatText:
		tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "KEY\tPATH")
		for _, k := range keys {
			fmt.Fprintf(tw, "%s\t%s\n", filepath.ToSlash(k), filepath.ToSlash(entries[k]))
		}
		return tw.Flush()
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

func writeYAML(out io.Writer, v interface{}) error {
	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode yaml: %w", err)
	}
	return enc.Close()
}
