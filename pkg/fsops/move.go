package fsops

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"syscall"

	"github.com/glorpus-work/fskit/pkg/errors"
)

// Move moves a file or directory from one path to another via an
// OS-level rename. An existing destination fails with ErrAlreadyExists
// unless opts.ReplaceExisting is set. When the rename crosses
// filesystem boundaries the move falls back to copy+delete, unless
// opts.AtomicMove demands an all-or-nothing rename, in which case the
// cross-device case fails with ErrUnsupported.
func Move(from, to string, opts MoveOptions) error {
	if _, err := os.Lstat(from); err != nil {
		return errors.Wrapf(errors.FromOS(err), "failed to stat source %s", from)
	}

	if _, err := os.Lstat(to); err == nil {
		if !opts.ReplaceExisting {
			return errors.Wrapf(errors.ErrAlreadyExists, "cannot move %s to %s", from, to)
		}
	}

	err := os.Rename(from, to)
	if err == nil {
		return nil
	}

	if !isCrossFilesystemError(err) {
		return errors.Wrapf(errors.FromOS(err), "failed to move %s to %s", from, to)
	}
	if opts.AtomicMove {
		return errors.Wrapf(errors.ErrUnsupported, "atomic move of %s to %s crosses filesystems", from, to)
	}

	// Cross-device fallback: copy the tree, then remove the source.
	// Not atomic, and not rolled back on partial failure.
	srcInfo, err := os.Lstat(from)
	if err != nil {
		return errors.Wrapf(errors.FromOS(err), "failed to stat source %s", from)
	}
	copyOpts := CopyOptions{
		ReplaceExisting: opts.ReplaceExisting,
		CopyAttributes:  true,
		PreserveLinks:   true,
	}
	if srcInfo.IsDir() {
		if err := CopyRecursively(from, to+string(filepath.Separator), copyOpts); err != nil {
			return err
		}
		return DeleteRecursively(from, DeleteOptions{})
	}
	if err := Copy(from, to, copyOpts); err != nil {
		return err
	}
	if err := os.Remove(from); err != nil {
		return errors.Wrapf(errors.FromOS(err), "failed to remove source %s after copy", from)
	}
	return nil
}

// Rename moves the entry at path to a sibling path with newName as its
// final segment.
func Rename(path, newName string, opts MoveOptions) error {
	return Move(path, filepath.Join(filepath.Dir(path), newName), opts)
}

// isCrossFilesystemError reports whether a rename failure indicates a
// cross-filesystem boundary that requires the copy+delete fallback.
// Uses errors.As to find the EXDEV errno rather than string matching.
func isCrossFilesystemError(err error) bool {
	if err == nil {
		return false
	}

	var errno syscall.Errno
	if stderrors.As(err, &errno) {
		return errno == syscall.EXDEV
	}

	// Windows reports cross-volume moves with its own error text.
	if runtime.GOOS == "windows" {
		return strings.Contains(strings.ToLower(err.Error()), "cross-device")
	}
	return false
}
