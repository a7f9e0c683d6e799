package subtree

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// p builds a host-separator path from slash-separated segments.
func p(s string) string {
	return filepath.FromSlash(s)
}

func ps(in ...string) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = p(s)
	}
	return out
}

func TestNormalizeSubdir(t *testing.T) {
	tests := []struct {
		spec    string
		want    string
		wantErr bool
	}{
		{spec: "Cat1", want: "Cat1"},
		{spec: "Cat1/TopicA", want: p("Cat1/TopicA")},
		{spec: "Daily.md", want: "Daily"},
		{spec: "Cat1/Topic.md", want: p("Cat1/Topic")},
		{spec: "Cat1/", want: "Cat1"},
		{spec: "./Cat1", want: "Cat1"},
		{spec: ".obsidian", want: ".obsidian"},
		{spec: "Cat1/..", want: "."},
		{spec: ".", want: "."},
		{spec: "", wantErr: true},
		{spec: "   ", wantErr: true},
		{spec: "/abs/dir", wantErr: true},
		{spec: "..", wantErr: true},
		{spec: "../outside", wantErr: true},
		{spec: "Cat1/../../outside", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			got, err := NormalizeSubdir(tt.spec)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrMalformedSubdir)
				var subdirErr *SubdirError
				require.ErrorAs(t, err, &subdirErr)
				assert.Equal(t, tt.spec, subdirErr.Spec)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAllowedDirSet_Contains(t *testing.T) {
	set, err := NewAllowedDirSet([]string{"Cat1", "Cat2/Topic", "Cat1", "."})
	require.NoError(t, err)
	assert.Equal(t, 2, set.Len())

	assert.True(t, set.Contains("Cat1"))
	assert.True(t, set.Contains(p("Cat1/Sub/Deeper")))
	assert.True(t, set.Contains(p("Cat2/Topic")))
	assert.False(t, set.Contains("Cat2"))
	assert.False(t, set.Contains("Cat10"), "prefix test is on segments, not characters")
	assert.False(t, set.Contains("."))
}

func TestFilter(t *testing.T) {
	paths := ps("root.md", "Cat1/x.md", "Cat1/Sub/y.md", "Cat2/z.md", "Cat10/w.md")

	tests := []struct {
		name        string
		subdirs     []string
		includeRoot bool
		want        []string
	}{
		{
			name:        "no restriction with root",
			includeRoot: true,
			want:        paths,
		},
		{
			name:        "no restriction without root",
			subdirs:     []string{},
			includeRoot: false,
			want:        ps("Cat1/x.md", "Cat1/Sub/y.md", "Cat2/z.md", "Cat10/w.md"),
		},
		{
			name:        "single subdir without root",
			subdirs:     []string{"Cat1"},
			includeRoot: false,
			want:        ps("Cat1/x.md", "Cat1/Sub/y.md"),
		},
		{
			name:        "single subdir with root",
			subdirs:     []string{"Cat1"},
			includeRoot: true,
			want:        ps("root.md", "Cat1/x.md", "Cat1/Sub/y.md"),
		},
		{
			name:    "nested subdir only",
			subdirs: []string{"Cat1/Sub"},
			want:    ps("Cat1/Sub/y.md"),
		},
		{
			name:    "suffix on spec is dropped",
			subdirs: []string{"Cat2.md"},
			want:    ps("Cat2/z.md"),
		},
		{
			name:    "root spec does not select root files",
			subdirs: []string{"."},
			want:    []string{},
		},
		{
			name:    "unknown subdir contributes nothing",
			subdirs: []string{"Nope", "Cat2"},
			want:    ps("Cat2/z.md"),
		},
		{
			name:    "duplicate specs are harmless",
			subdirs: []string{"Cat2", "Cat2", "Cat2/"},
			want:    ps("Cat2/z.md"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Filter(paths, tt.subdirs, tt.includeRoot)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			again, err := Filter(got, tt.subdirs, tt.includeRoot)
			require.NoError(t, err)
			assert.Equal(t, got, again, "filtering must be idempotent")
		})
	}
}

func TestFilter_PreservesInputOrder(t *testing.T) {
	paths := ps("Cat1/z.md", "Cat1/a.md", "Cat1/Sub/m.md", "Cat2/b.md", "Cat1/b.md")

	got, err := Filter(paths, []string{"Cat1"}, false)
	require.NoError(t, err)
	assert.Equal(t, ps("Cat1/z.md", "Cat1/a.md", "Cat1/Sub/m.md", "Cat1/b.md"), got)
}

func TestFilter_MalformedSpec(t *testing.T) {
	_, err := Filter(ps("a.md"), []string{"Cat1", "../escape"}, true)
	assert.ErrorIs(t, err, ErrMalformedSubdir)
	assert.Contains(t, err.Error(), "../escape")
}

func TestFilter_EmptyInput(t *testing.T) {
	got, err := Filter(nil, []string{"Cat1"}, true)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestUnmatched(t *testing.T) {
	paths := ps("root.md", "Cat1/x.md", "Cat2/Sub/z.md")

	got, err := Unmatched(paths, []string{"Cat1", "Typo", "Cat2", ".", "Cat2/Other"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Typo", "Cat2/Other"}, got)

	_, err = Unmatched(paths, []string{"/abs"})
	assert.ErrorIs(t, err, ErrMalformedSubdir)
}
