package fsops

import (
	"os"

	"github.com/glorpus-work/fskit/pkg/errors"
	"github.com/glorpus-work/fskit/pkg/permissions"
	"github.com/glorpus-work/fskit/pkg/platform"
)

// Creation-time permission bits interact with the process umask: the
// OS may clear requested bits on creation. Callers that need exact
// permissions should follow creation with SetPosixPermissions.

// CreateFile creates a new file with default permissions (0644 before
// umask) and writes the given initial content, which may be nil. An
// existing path fails with ErrAlreadyExists.
func CreateFile(path string, content []byte) error {
	return CreateFilePerm(path, content, permissions.FromFileMode(permissions.FileModeDefault))
}

// CreateFilePerm creates a new file with the specified permissions and
// writes the given initial content, which may be nil.
func CreateFilePerm(path string, content []byte, perm permissions.Set) error {
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, perm.FileMode())
	if err != nil {
		return errors.Wrapf(errors.FromOS(err), "failed to create file %s", path)
	}
	if len(content) > 0 {
		if _, err := file.Write(content); err != nil {
			_ = file.Close()
			return errors.Wrapf(errors.FromOS(err), "failed to write initial content to %s", path)
		}
	}
	if err := file.Close(); err != nil {
		return errors.Wrapf(errors.FromOS(err), "failed to close %s", path)
	}
	return nil
}

// CreateDirectory creates a single new directory with default
// permissions (0755 before umask). The parent must already exist; an
// existing path fails with ErrAlreadyExists.
func CreateDirectory(path string) error {
	return CreateDirectoryPerm(path, permissions.FromFileMode(permissions.DirModeDefault))
}

// CreateDirectoryPerm creates a single new directory with the specified
// permissions.
func CreateDirectoryPerm(path string, perm permissions.Set) error {
	if err := os.Mkdir(path, perm.FileMode()); err != nil {
		return errors.Wrapf(errors.FromOS(err), "failed to create directory %s", path)
	}
	return nil
}

// CreateDirectories creates a directory and all missing parents with
// default permissions. An existing directory is not an error.
func CreateDirectories(path string) error {
	return CreateDirectoriesPerm(path, permissions.FromFileMode(permissions.DirModeDefault))
}

// CreateDirectoriesPerm creates a directory and all missing parents
// with the specified permissions.
func CreateDirectoriesPerm(path string, perm permissions.Set) error {
	if err := os.MkdirAll(path, perm.FileMode()); err != nil {
		return errors.Wrapf(errors.FromOS(err), "failed to create directories %s", path)
	}
	return nil
}

// CreateTempDirectory creates a uniquely named directory under the
// system temp directory, using prefix as the name prefix, and returns
// its path.
func CreateTempDirectory(prefix string) (string, error) {
	dir, err := os.MkdirTemp(platform.TempDir(), prefix)
	if err != nil {
		return "", errors.Wrap(errors.FromOS(err), "failed to create temp directory")
	}
	return dir, nil
}

// CreateTempFile creates a uniquely named file under the system temp
// directory, writes the given initial content, and returns its path.
func CreateTempFile(prefix string, content []byte) (string, error) {
	file, err := os.CreateTemp(platform.TempDir(), prefix)
	if err != nil {
		return "", errors.Wrap(errors.FromOS(err), "failed to create temp file")
	}
	name := file.Name()
	if len(content) > 0 {
		if _, err := file.Write(content); err != nil {
			_ = file.Close()
			return "", errors.Wrapf(errors.FromOS(err), "failed to write initial content to %s", name)
		}
	}
	if err := file.Close(); err != nil {
		return "", errors.Wrapf(errors.FromOS(err), "failed to close %s", name)
	}
	return name, nil
}

// CreateLink creates a hard link at link pointing to the same inode as
// target. An existing link path fails with ErrAlreadyExists.
func CreateLink(target, link string) error {
	if err := os.Link(target, link); err != nil {
		return errors.Wrapf(errors.FromOS(err), "failed to create hard link %s", link)
	}
	return nil
}

// CreateSymlink creates a symbolic link at link pointing to target. The
// target need not exist. An existing link path fails with
// ErrAlreadyExists.
func CreateSymlink(target, link string) error {
	if err := os.Symlink(target, link); err != nil {
		return errors.Wrapf(errors.FromOS(err), "failed to create symlink %s", link)
	}
	return nil
}
