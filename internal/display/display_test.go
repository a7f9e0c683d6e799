package display

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
)

func TestWarningRender_Plain(t *testing.T) {
	w := Warning{
		Title:      "Something odd",
		Message:    "Details here",
		Items:      []string{"Cat1", "Cat2"},
		Suggestion: "Fix it",
	}

	got := w.Render(false)
	want := "Warning: Something odd\n" +
		"    Details here\n" +
		"      1. Cat1\n" +
		"      2. Cat2\n" +
		"    Suggestion: Fix it\n"
	if got != want {
		t.Errorf("Render(false) =\n%q\nwant\n%q", got, want)
	}
}

func TestWarningRender_Colored(t *testing.T) {
	got := Warning{Title: "Colored"}.Render(true)

	if !strings.HasPrefix(got, "\x1b[33m") {
		t.Errorf("expected yellow ANSI prefix, got %q", got)
	}
	if !strings.HasSuffix(got, "\x1b[0m") {
		t.Errorf("expected ANSI reset suffix, got %q", got)
	}
	if !strings.Contains(got, "Warning: Colored") {
		t.Errorf("expected title in output, got %q", got)
	}
}

func TestWarningDisplay_BufferIsPlain(t *testing.T) {
	var buf bytes.Buffer
	Warning{Title: "Plain"}.Display(&buf)

	if strings.Contains(buf.String(), "\x1b[") {
		t.Errorf("non-terminal output should not contain ANSI codes: %q", buf.String())
	}
}

func TestWarnHelpers(t *testing.T) {
	tests := []struct {
		name  string
		w     Warning
		title string
		items int
	}{
		{name: "one unmatched", w: WarnUnmatchedSubdirs([]string{"Typo"}), title: "1 subdirectory matched no files", items: 1},
		{name: "two unmatched", w: WarnUnmatchedSubdirs([]string{"A", "B"}), title: "2 subdirectories matched no files", items: 2},
		{name: "one duplicate", w: WarnDuplicateNames([]string{"a.md"}), title: "1 filename used more than once", items: 1},
		{name: "three duplicates", w: WarnDuplicateNames([]string{"a.md", "b.md", "c.md"}), title: "3 filenames used more than once", items: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.w.Title != tt.title {
				t.Errorf("Title = %q, want %q", tt.w.Title, tt.title)
			}
			if len(tt.w.Items) != tt.items {
				t.Errorf("Items = %d, want %d", len(tt.w.Items), tt.items)
			}
		})
	}
}

func TestWritePaths(t *testing.T) {
	paths := []string{"a.md", filepath.Join("sub", "b.md")}

	var text bytes.Buffer
	if err := WritePaths(&text, paths, FormatText); err != nil {
		t.Fatalf("WritePaths(text) error = %v", err)
	}
	if text.String() != "a.md\nsub/b.md\n" {
		t.Errorf("text output = %q", text.String())
	}

	var y bytes.Buffer
	if err := WritePaths(&y, paths, FormatYAML); err != nil {
		t.Fatalf("WritePaths(yaml) error = %v", err)
	}
	if y.String() != "- a.md\n- sub/b.md\n" {
		t.Errorf("yaml output = %q", y.String())
	}

	if err := WritePaths(&y, paths, "json"); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestWriteKeys(t *testing.T) {
	subA := filepath.Join("sub", "a.md")
	entries := map[string]string{
		"b.md": filepath.Join("sub", "b.md"),
		"a.md": "a.md",
		subA:   subA,
	}

	var text bytes.Buffer
	if err := WriteKeys(&text, entries, FormatText); err != nil {
		t.Fatalf("WriteKeys(text) error = %v", err)
	}
	want := "KEY       PATH\n" +
		"a.md      a.md\n" +
		"b.md      sub/b.md\n" +
		"sub/a.md  sub/a.md\n"
	if text.String() != want {
		t.Errorf("text output =\n%q\nwant\n%q", text.String(), want)
	}

	var y bytes.Buffer
	if err := WriteKeys(&y, entries, FormatYAML); err != nil {
		t.Fatalf("WriteKeys(yaml) error = %v", err)
	}
	if y.String() != "a.md: a.md\nb.md: sub/b.md\nsub/a.md: sub/a.md\n" {
		t.Errorf("yaml output = %q", y.String())
	}
}

func TestValidFormat(t *testing.T) {
	if !ValidFormat("text") || !ValidFormat("yaml") {
		t.Error("expected text and yaml to be valid")
	}
	if ValidFormat("json") {
		t.Error("json should not be valid")
	}
}
