package fsops

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glorpus-work/fskit/pkg/errors"
	"github.com/glorpus-work/fskit/pkg/permissions"
)

func TestCreateFile(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "file.txt")

	require.NoError(t, CreateFile(path, []byte("initial")))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "initial", string(content))

	// Creating over an existing file fails.
	err = CreateFile(path, nil)
	require.Error(t, err)
	assert.True(t, stderrors.Is(err, errors.ErrAlreadyExists))
}

func TestCreateFile_EmptyContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.txt")
	require.NoError(t, CreateFile(path, nil))

	size, ok, err := Size(path)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Zero(t, size)
}

func TestCreateFilePerm(t *testing.T) {
	path := filepath.Join(t.TempDir(), "secret.txt")
	perm, err := permissions.FromOctal(600)
	require.NoError(t, err)

	require.NoError(t, CreateFilePerm(path, []byte("s"), perm))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestCreateDirectory(t *testing.T) {
	tempDir := t.TempDir()
	dir := filepath.Join(tempDir, "dir")

	require.NoError(t, CreateDirectory(dir))
	assert.True(t, IsDirectory(dir))

	err := CreateDirectory(dir)
	require.Error(t, err)
	assert.True(t, stderrors.Is(err, errors.ErrAlreadyExists))

	// The parent must exist for a single-level create.
	err = CreateDirectory(filepath.Join(tempDir, "a", "b"))
	require.Error(t, err)
	assert.True(t, stderrors.Is(err, errors.ErrNotFound))
}

func TestCreateDirectories(t *testing.T) {
	tempDir := t.TempDir()
	deep := filepath.Join(tempDir, "a", "b", "c")

	require.NoError(t, CreateDirectories(deep))
	assert.True(t, IsDirectory(deep))

	// An existing directory is fine.
	require.NoError(t, CreateDirectories(deep))
}

func TestCreateTempDirectoryAndFile(t *testing.T) {
	dir, err := CreateTempDirectory("fskit-test-")
	require.NoError(t, err)
	defer func() { _ = os.RemoveAll(dir) }()
	assert.True(t, IsDirectory(dir))
	assert.Contains(t, filepath.Base(dir), "fskit-test-")

	file, err := CreateTempFile("fskit-test-", []byte("tmp"))
	require.NoError(t, err)
	defer func() { _ = os.Remove(file) }()

	content, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Equal(t, "tmp", string(content))
}

func TestCreateLink(t *testing.T) {
	tempDir := t.TempDir()
	target := filepath.Join(tempDir, "target.txt")
	require.NoError(t, os.WriteFile(target, []byte("x"), 0o644))

	link := filepath.Join(tempDir, "hard")
	require.NoError(t, CreateLink(target, link))
	assert.True(t, IsSameFile(target, link))
	assert.False(t, IsSymlink(link))

	err := CreateLink(target, link)
	require.Error(t, err)
	assert.True(t, stderrors.Is(err, errors.ErrAlreadyExists))
}

func TestCreateSymlink(t *testing.T) {
	tempDir := t.TempDir()
	target := filepath.Join(tempDir, "target.txt")
	require.NoError(t, os.WriteFile(target, []byte("x"), 0o644))

	link := filepath.Join(tempDir, "soft")
	require.NoError(t, CreateSymlink(target, link))
	assert.True(t, IsSymlink(link))
	assert.True(t, IsSameFile(target, link))

	err := CreateSymlink(target, link)
	require.Error(t, err)
	assert.True(t, stderrors.Is(err, errors.ErrAlreadyExists))
}
