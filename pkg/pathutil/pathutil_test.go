package pathutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJoin(t *testing.T) {
	tests := []struct {
		name     string
		segments []string
		expected string
	}{
		{"relative", []string{"a", "b", "c"}, filepath.Join("a", "b", "c")},
		{"absolute preserved", []string{"/a", "b"}, string(filepath.Separator) + filepath.Join("a", "b")},
		{"trailing separators collapse", []string{"a/", "b/"}, filepath.Join("a", "b")},
		{"duplicate separators collapse", []string{"a//b", "c"}, filepath.Join("a", "b", "c")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Join(tt.segments...))
		})
	}
}

func TestSplit(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		expected []string
	}{
		{"empty", "", []string{""}},
		{"single segment", "foo", []string{"foo"}},
		{"relative", "a/b/c", []string{"a", "b", "c"}},
		{"absolute", "/a/b", []string{string(filepath.Separator), "a", "b"}},
		{"root only", "/", []string{string(filepath.Separator)}},
		{"duplicate separators", "a//b", []string{"a", "b"}},
		{"trailing separator", "a/b/", []string{"a", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Split(tt.path))
		})
	}
}

// Join(Split(p)...) must reproduce p up to separator normalization.
func TestSplit_JoinRoundTrip(t *testing.T) {
	paths := []string{"/a/b/c", "a/b", "/x", "x", "/a//b/", "deep/er/still/file.txt"}
	for _, p := range paths {
		assert.Equal(t, filepath.Clean(filepath.FromSlash(p)), Join(Split(p)...), "path %q", p)
	}
}

func TestLastSegmentAndFilename(t *testing.T) {
	assert.Equal(t, "b", LastSegment("/a/b"))
	assert.Equal(t, "b", LastSegment("/a/b/"))

	name, ok := Filename("/a/b")
	assert.True(t, ok)
	assert.Equal(t, "b", name)

	// A trailing separator denotes a directory, not a named file.
	_, ok = Filename("/a/b/")
	assert.False(t, ok)

	_, ok = Filename("")
	assert.False(t, ok)
}

func TestParent(t *testing.T) {
	parent, ok := Parent("/a/b/c")
	require.True(t, ok)
	assert.Equal(t, filepath.FromSlash("/a/b"), parent)

	parent, ok = Parent("/a")
	require.True(t, ok)
	assert.Equal(t, string(filepath.Separator), parent)

	_, ok = Parent("/")
	assert.False(t, ok)

	_, ok = Parent("single")
	assert.False(t, ok)

	parent, ok = Parent("a/b")
	require.True(t, ok)
	assert.Equal(t, "a", parent)
}

func TestAncestors(t *testing.T) {
	var got []string
	for a := range Ancestors("/a/b/c") {
		got = append(got, a)
	}
	expected := []string{
		filepath.FromSlash("/a/b"),
		filepath.FromSlash("/a"),
		string(filepath.Separator),
	}
	assert.Equal(t, expected, got)
}

// The sequence is pure computation over the string, so iterating twice
// must give identical results.
func TestAncestors_Restartable(t *testing.T) {
	seq := Ancestors("/a/b/c/d")

	var first, second []string
	for a := range seq {
		first = append(first, a)
	}
	for a := range seq {
		second = append(second, a)
	}
	assert.Equal(t, first, second)
	assert.Len(t, first, 4)
}

func TestAncestors_EarlyBreak(t *testing.T) {
	count := 0
	for range Ancestors("/a/b/c/d/e") {
		count++
		if count == 2 {
			break
		}
	}
	assert.Equal(t, 2, count)
}

func TestIsDescendantOf(t *testing.T) {
	assert.True(t, IsDescendantOf("/foo/bar", "/foo/bar/baz"))
	assert.False(t, IsDescendantOf("/foo/bar/baz", "/foo/bar"))

	// Not reflexive.
	assert.False(t, IsDescendantOf("/foo/bar", "/foo/bar"))

	assert.True(t, IsDescendantOf("/", "/anything"))
	assert.False(t, IsDescendantOf("/foo", "/foobar"))
}

func TestExtension(t *testing.T) {
	tests := []struct {
		path     string
		expected string
		ok       bool
	}{
		{"/a/b.ext", "ext", true},
		{"/a/archive.tar.gz", "gz", true},
		{"/a/.hidden", "", false},
		{"/a/b.", "", false},
		{"/a/b", "", false},
		{"/a/b.ext/", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			ext, ok := Extension(tt.path)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, ext)
		})
	}
}

func TestWithoutExtension(t *testing.T) {
	assert.Equal(t, "/a/b", WithoutExtension("/a/b.ext"))
	assert.Equal(t, "/a/archive.tar", WithoutExtension("/a/archive.tar.gz"))
	assert.Equal(t, "/a/.hidden", WithoutExtension("/a/.hidden"))
	assert.Equal(t, "/a/b.", WithoutExtension("/a/b."))
}

// WithoutExtension(p) + "." + Extension(p) reproduces p whenever an
// extension exists.
func TestWithoutExtension_RoundTrip(t *testing.T) {
	for _, p := range []string{"/a/b.ext", "rel/file.txt", "x.y", "/deep/a.tar.gz"} {
		ext, ok := Extension(p)
		require.True(t, ok, "path %q", p)
		assert.Equal(t, p, WithoutExtension(p)+"."+ext)
	}
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, home, ExpandHome("~"))
	assert.Equal(t, filepath.Join(home, "docs"), ExpandHome("~/docs"))

	// Only the exact "~" segment expands.
	assert.Equal(t, "~foo/docs", ExpandHome("~foo/docs"))
	assert.Equal(t, "/a/~/b", ExpandHome("/a/~/b"))
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, filepath.FromSlash("/a/c"), Normalize("/a/b/../c"))
	assert.Equal(t, filepath.FromSlash("a/b"), Normalize("./a/./b"))
}

func TestAbsolute(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)

	abs, err := Absolute("x")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(wd, "x"), abs)
}

func TestCanonical(t *testing.T) {
	tempDir := t.TempDir()

	target := filepath.Join(tempDir, "target.txt")
	require.NoError(t, os.WriteFile(target, []byte("data"), 0o644))

	link := filepath.Join(tempDir, "link.txt")
	require.NoError(t, os.Symlink(target, link))

	canonTarget, err := Canonical(target)
	require.NoError(t, err)

	canonLink, err := Canonical(link)
	require.NoError(t, err)
	assert.Equal(t, canonTarget, canonLink)

	// Canonical requires the target to exist.
	_, err = Canonical(filepath.Join(tempDir, "missing"))
	assert.Error(t, err)
}
