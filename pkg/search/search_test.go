package search

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeTree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()

	files := map[string]string{
		"main.go":              "package main",
		"util.go":              "package main",
		"readme.md":            "# readme",
		"sub/handler.go":       "package sub",
		"sub/notes.txt":        "notes",
		"sub/deeper/config.go": "package deeper",
	}
	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return root
}

func TestFind(t *testing.T) {
	root := makeTree(t)

	matches, err := Find(root, "*.go")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"main.go",
		filepath.FromSlash("sub/deeper/config.go"),
		filepath.FromSlash("sub/handler.go"),
		"util.go",
	}, matches)
}

func TestFind_NoMatches(t *testing.T) {
	root := makeTree(t)

	matches, err := Find(root, "*.rs")
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestFind_InvalidPattern(t *testing.T) {
	_, err := Find(t.TempDir(), "[")
	assert.Error(t, err)
}

func TestGlob(t *testing.T) {
	root := makeTree(t)

	matches, err := Glob(root, "**/*.go")
	require.NoError(t, err)
	assert.Contains(t, matches, "main.go")
	assert.Contains(t, matches, filepath.FromSlash("sub/deeper/config.go"))
	assert.NotContains(t, matches, "readme.md")
}

func TestGlob_SingleLevel(t *testing.T) {
	root := makeTree(t)

	matches, err := Glob(root, "sub/*.txt")
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.FromSlash("sub/notes.txt")}, matches)
}

func TestFilterByExtension(t *testing.T) {
	root := makeTree(t)

	// Leading dot optional.
	matches, err := FilterByExtension(root, []string{"md", ".txt"})
	require.NoError(t, err)
	assert.Equal(t, []string{
		"readme.md",
		filepath.FromSlash("sub/notes.txt"),
	}, matches)
}

func TestTotalSize(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "a.bin"), make([]byte, 100), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "sub"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "sub", "b.bin"), make([]byte, 50), 0o644))

	total, err := TotalSize(root)
	require.NoError(t, err)
	assert.Equal(t, int64(150), total)
}

func TestDetectContentType(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "doc.txt")
	require.NoError(t, os.WriteFile(path, []byte("plain text content"), 0o644))

	ctype, err := DetectContentType(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(ctype, "text/plain"), "got %q", ctype)

	_, err = DetectContentType(filepath.Join(root, "missing"))
	assert.Error(t, err)
}
