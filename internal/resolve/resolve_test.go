package resolve

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShortestKeys_CollidingNames(t *testing.T) {
	rootA := "a.md"
	subA := filepath.Join("sub", "a.md")
	subB := filepath.Join("sub", "b.md")

	got := ShortestKeys([]string{rootA, subA, subB})

	assert.Equal(t, map[string]string{
		subA:   subA,
		rootA:  rootA,
		"b.md": subB,
	}, got)
}

func TestShortestKeys_Empty(t *testing.T) {
	got := ShortestKeys(nil)
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestShortestKeys_GlobalDuplicateDetection(t *testing.T) {
	first := filepath.Join("x", "notes.md")
	last := filepath.Join("y", "z", "notes.md")
	paths := []string{first, "alpha.md", "beta.md", "gamma.md", last}

	got := ShortestKeys(paths)

	assert.Len(t, got, len(paths))
	assert.Equal(t, first, got[first])
	assert.Equal(t, last, got[last])
	assert.NotContains(t, got, "notes.md")
	assert.Equal(t, "beta.md", got["beta.md"])
}

func TestShortestKeys_CaseSensitive(t *testing.T) {
	upper := filepath.Join("a", "Note.md")
	lower := filepath.Join("b", "note.md")

	got := ShortestKeys([]string{upper, lower})

	assert.Equal(t, map[string]string{"Note.md": upper, "note.md": lower}, got)
}

func TestShortestKeys_NoUnicodeNormalization(t *testing.T) {
	composedName := "caf\u00e9.md"
	decomposedName := "cafe\u0301.md"
	composed := filepath.Join("a", composedName)
	decomposed := filepath.Join("b", decomposedName)

	got := ShortestKeys([]string{composed, decomposed})

	assert.Equal(t, map[string]string{composedName: composed, decomposedName: decomposed}, got)
}

func TestShortestKeys_RoundTrip(t *testing.T) {
	paths := []string{
		"index.md",
		filepath.Join("Daily", "index.md"),
		filepath.Join("Daily", "2024-01-01.md"),
		filepath.Join("Projects", "alpha", "index.md"),
		filepath.Join("Projects", "alpha", "plan.md"),
		filepath.Join("Archive", "plan.md"),
		"readme.md",
	}

	got := ShortestKeys(paths)
	require.Len(t, got, len(paths))

	seen := make(map[string]bool)
	for key, p := range got {
		assert.False(t, seen[p], "path %s appears twice", p)
		seen[p] = true

		if key != p {
			assert.Equal(t, filepath.Base(p), key)
		}
	}
	for _, p := range paths {
		assert.True(t, seen[p], "path %s missing from mapping", p)
	}
}

func TestDuplicates(t *testing.T) {
	paths := []string{
		"a.md",
		filepath.Join("x", "a.md"),
		filepath.Join("y", "b.md"),
		filepath.Join("z", "b.md"),
		"c.md",
	}
	assert.Equal(t, []string{"a.md", "b.md"}, Duplicates(paths))
	assert.Empty(t, Duplicates([]string{"only.md"}))
}

func TestIndex(t *testing.T) {
	dup := filepath.Join("sub", "a.md")
	ix := NewIndex([]string{"a.md", dup, filepath.Join("sub", "b.md")})

	assert.Equal(t, 3, ix.Len())
	assert.Equal(t, []string{"a.md", "b.md", dup}, ix.Keys())

	p, ok := ix.Lookup("b.md")
	assert.True(t, ok)
	assert.Equal(t, filepath.Join("sub", "b.md"), p)

	_, ok = ix.Lookup("missing.md")
	assert.False(t, ok)

	assert.Equal(t, []string{"a.md"}, ix.Collisions())
	assert.Empty(t, NewIndex([]string{"x.md", filepath.Join("d", "y.md")}).Collisions())

	m := ix.Map()
	m["b.md"] = "tampered"
	p, _ = ix.Lookup("b.md")
	assert.Equal(t, filepath.Join("sub", "b.md"), p)
}
