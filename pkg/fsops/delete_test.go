package fsops

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glorpus-work/fskit/pkg/errors"
)

func TestDelete(t *testing.T) {
	tempDir := t.TempDir()
	file := filepath.Join(tempDir, "file.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

	require.NoError(t, Delete(file))
	assert.False(t, ExistsNoFollow(file))
}

func TestDelete_MissingFails(t *testing.T) {
	err := Delete(filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
	assert.True(t, stderrors.Is(err, errors.ErrNotFound))
}

func TestDelete_NonEmptyDirectoryFails(t *testing.T) {
	tempDir := t.TempDir()
	dir := filepath.Join(tempDir, "dir")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "file.txt"), []byte("x"), 0o644))

	err := Delete(dir)
	require.Error(t, err)
	assert.True(t, Exists(dir))
}

func TestDeleteIfExists(t *testing.T) {
	tempDir := t.TempDir()
	file := filepath.Join(tempDir, "file.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

	deleted, err := DeleteIfExists(file)
	require.NoError(t, err)
	assert.True(t, deleted)

	// Absence is not an error.
	deleted, err = DeleteIfExists(file)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestDeleteRecursively(t *testing.T) {
	tempDir := t.TempDir()
	root := filepath.Join(tempDir, "root")
	require.NoError(t, os.MkdirAll(filepath.Join(root, "a", "b"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "top.txt"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "a", "mid.txt"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "a", "b", "deep.txt"), []byte("x"), 0o644))

	require.NoError(t, DeleteRecursively(root, DeleteOptions{}))
	assert.False(t, ExistsNoFollow(root))
}

func TestDeleteRecursively_Missing(t *testing.T) {
	err := DeleteRecursively(filepath.Join(t.TempDir(), "missing"), DeleteOptions{})
	require.Error(t, err)
	assert.True(t, stderrors.Is(err, errors.ErrNotFound))
}

// A symlink inside the tree is removed as a link; its target directory
// and contents survive.
func TestDeleteRecursively_DoesNotFollowSymlinks(t *testing.T) {
	tempDir := t.TempDir()

	target := filepath.Join(tempDir, "target")
	require.NoError(t, os.MkdirAll(target, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(target, "precious.txt"), []byte("keep"), 0o644))

	root := filepath.Join(tempDir, "root")
	require.NoError(t, os.MkdirAll(root, 0o755))
	require.NoError(t, os.Symlink(target, filepath.Join(root, "link")))
	require.NoError(t, os.WriteFile(filepath.Join(root, "file.txt"), []byte("x"), 0o644))

	require.NoError(t, DeleteRecursively(root, DeleteOptions{}))

	assert.False(t, ExistsNoFollow(root))
	assert.True(t, IsDirectory(target))
	assert.True(t, IsRegularFile(filepath.Join(target, "precious.txt")))
}

func TestDeleteRecursively_FollowLinks(t *testing.T) {
	tempDir := t.TempDir()

	target := filepath.Join(tempDir, "target")
	require.NoError(t, os.MkdirAll(target, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(target, "doomed.txt"), []byte("x"), 0o644))

	root := filepath.Join(tempDir, "root")
	require.NoError(t, os.MkdirAll(root, 0o755))
	require.NoError(t, os.Symlink(target, filepath.Join(root, "link")))

	require.NoError(t, DeleteRecursively(root, DeleteOptions{FollowLinks: true}))

	assert.False(t, ExistsNoFollow(root))
	// The target directory's contents were deleted through the link;
	// the emptied directory itself lies outside the tree and remains.
	assert.True(t, IsDirectory(target))
	assert.False(t, ExistsNoFollow(filepath.Join(target, "doomed.txt")))
}
