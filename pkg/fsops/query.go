package fsops

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/glorpus-work/fskit/pkg/errors"
)

// Exists reports whether path refers to an existing filesystem entry,
// following symlinks. A link whose target is missing does not exist.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// ExistsNoFollow reports whether path refers to an existing entry
// without following a final symlink, so a dangling link still exists.
func ExistsNoFollow(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}

// IsDirectory reports whether path is a directory, following symlinks.
func IsDirectory(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// IsDirectoryNoFollow reports whether path itself is a directory; a
// symlink to a directory is not.
func IsDirectoryNoFollow(path string) bool {
	info, err := os.Lstat(path)
	return err == nil && info.IsDir()
}

// IsRegularFile reports whether path is a regular file, following
// symlinks.
func IsRegularFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// IsRegularFileNoFollow reports whether path itself is a regular file;
// a symlink to a file is not.
func IsRegularFileNoFollow(path string) bool {
	info, err := os.Lstat(path)
	return err == nil && info.Mode().IsRegular()
}

// IsSymlink reports whether path itself is a symbolic link.
func IsSymlink(path string) bool {
	info, err := os.Lstat(path)
	return err == nil && info.Mode()&fs.ModeSymlink != 0
}

// IsHidden reports whether the final path segment names a hidden
// (dot-prefixed) entry.
func IsHidden(path string) bool {
	base := filepath.Base(path)
	return len(base) > 1 && base[0] == '.' && base != ".."
}

// IsSameFile reports whether the two paths refer to the same underlying
// file: hard links and symlinks resolving to the same inode are the
// same file regardless of content.
func IsSameFile(a, b string) bool {
	infoA, err := os.Stat(a)
	if err != nil {
		return false
	}
	infoB, err := os.Stat(b)
	if err != nil {
		return false
	}
	return os.SameFile(infoA, infoB)
}

// Size returns the size of the entry at path in bytes. Absence is
// reported as a false ok-flag rather than an error; any other stat
// failure is returned as an error.
func Size(path string) (int64, bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, false, nil
		}
		return 0, false, errors.Wrapf(errors.FromOS(err), "failed to stat %s", path)
	}
	return info.Size(), true, nil
}
