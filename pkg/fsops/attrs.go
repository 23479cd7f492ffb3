package fsops

import (
	"os"
	"time"

	"github.com/glorpus-work/fskit/pkg/errors"
	"github.com/glorpus-work/fskit/pkg/permissions"
)

// LastModifiedTime returns the modification time of the entry at path,
// following symlinks.
func LastModifiedTime(path string) (time.Time, error) {
	info, err := os.Stat(path)
	if err != nil {
		return time.Time{}, errors.Wrapf(errors.FromOS(err), "failed to stat %s", path)
	}
	return info.ModTime(), nil
}

// SetLastModifiedTime sets the modification time of the entry at path.
// The access time is preserved where the platform reports it and set to
// the same instant otherwise.
func SetLastModifiedTime(path string, t time.Time) error {
	atime := t
	if current, err := LastAccessTime(path); err == nil {
		atime = current
	}
	if err := os.Chtimes(path, atime, t); err != nil {
		return errors.Wrapf(errors.FromOS(err), "failed to set modification time on %s", path)
	}
	return nil
}

// SetLastAccessTime sets the access time of the entry at path while
// preserving the modification time.
func SetLastAccessTime(path string, t time.Time) error {
	mtime, err := LastModifiedTime(path)
	if err != nil {
		return err
	}
	if err := os.Chtimes(path, t, mtime); err != nil {
		return errors.Wrapf(errors.FromOS(err), "failed to set access time on %s", path)
	}
	return nil
}

// PosixPermissions returns the POSIX permission bits of the entry at
// path, following symlinks.
func PosixPermissions(path string) (permissions.Set, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, errors.Wrapf(errors.FromOS(err), "failed to stat %s", path)
	}
	return permissions.FromFileMode(info.Mode()), nil
}

// SetPosixPermissions sets the POSIX permission bits of the entry at
// path.
func SetPosixPermissions(path string, perm permissions.Set) error {
	if err := os.Chmod(path, perm.FileMode()); err != nil {
		return errors.Wrapf(errors.FromOS(err), "failed to set permissions on %s", path)
	}
	return nil
}

// ReadAllAttributes collects every attribute view the platform supports
// for path into a single map: name, size, type flags, permission bits
// in octal and symbolic form, timestamps, and (where available) owner
// and group. Unsupported views are simply absent from the result.
func ReadAllAttributes(path string) (map[string]interface{}, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, errors.Wrapf(errors.FromOS(err), "failed to stat %s", path)
	}

	perm := permissions.FromFileMode(info.Mode())
	attrs := map[string]interface{}{
		"name":        info.Name(),
		"size":        info.Size(),
		"is_dir":      info.IsDir(),
		"is_regular":  info.Mode().IsRegular(),
		"is_symlink":  IsSymlink(path),
		"is_hidden":   IsHidden(path),
		"mode":        info.Mode().String(),
		"permissions": perm.Symbolic(),
		"octal":       perm.Octal(),
		"modified":    info.ModTime(),
	}

	if atime, err := LastAccessTime(path); err == nil {
		attrs["accessed"] = atime
	}
	if btime, err := CreationTime(path); err == nil {
		attrs["created"] = btime
	}
	if owner, err := LookupOwner(path); err == nil && owner != nil {
		attrs["owner"] = owner.Username
	}
	if group, err := LookupGroup(path); err == nil && group != nil {
		attrs["group"] = group.Name
	}
	return attrs, nil
}
