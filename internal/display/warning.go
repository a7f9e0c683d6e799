// Package display formats user-facing CLI output: warnings about the scan
// and the listing and key tables printed by the commands.
package display

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Warning represents a user-facing warning message
type Warning struct {
	Title      string   // Main warning title
	Message    string   // Detailed explanation (optional)
	Items      []string // Related subdirectories or files (optional)
	Suggestion string   // Action to take (optional)
}

// Display writes the warning to out, in yellow when out is a terminal.
func (w Warning) Display(out io.Writer) {
	fmt.Fprint(out, w.Render(IsTerminal(out)))
}

// Render formats the warning, with ANSI color when colored is set.
func (w Warning) Render(colored bool) string {
	var b strings.Builder

	b.WriteString("Warning: ")
	b.WriteString(w.Title)
	b.WriteString("\n")

	if w.Message != "" {
		b.WriteString("    ")
		b.WriteString(w.Message)
		b.WriteString("\n")
	}

	for i, item := range w.Items {
		b.WriteString(fmt.Sprintf("      %d. %s\n", i+1, item))
	}

	if w.Suggestion != "" {
		b.WriteString("    Suggestion: ")
		b.WriteString(w.Suggestion)
		b.WriteString("\n")
	}

	if !colored {
		return b.String()
	}
	yellow := color.New(color.FgYellow)
	yellow.EnableColor()
	return yellow.Sprint(b.String())
}

// WarnUnmatchedSubdirs reports allow-list entries that selected no files.
func WarnUnmatchedSubdirs(specs []string) Warning {
	return Warning{
		Title:      fmt.Sprintf("%d subdirector%s matched no files", len(specs), plural(len(specs), "y", "ies")),
		Items:      specs,
		Suggestion: "Check the spelling and make sure each path is relative to the vault root",
	}
}

// WarnDuplicateNames reports filenames that are keyed by full path.
func WarnDuplicateNames(names []string) Warning {
	return Warning{
		Title:   fmt.Sprintf("%d filename%s used more than once", len(names), plural(len(names), "", "s")),
		Message: "These files are keyed by their full relative path",
		Items:   names,
	}
}

// IsTerminal reports whether w is a TTY that should receive color.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok || f == nil || color.NoColor {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
