package fsops

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/glorpus-work/fskit/pkg/errors"
	"github.com/glorpus-work/fskit/pkg/pathutil"
)

// Copy copies a single filesystem entry from one path to another. A
// directory source is copied shallow: the destination is created as an
// empty directory with the source's permission bits, its contents are
// not copied (use CopyRecursively for that). An existing destination
// fails with ErrAlreadyExists unless opts.ReplaceExisting is set. A
// symlink source is followed and its target's content copied unless
// opts.PreserveLinks is set, in which case a new symlink is created.
func Copy(from, to string, opts CopyOptions) error {
	var srcInfo fs.FileInfo
	var err error
	if opts.PreserveLinks {
		srcInfo, err = os.Lstat(from)
	} else {
		srcInfo, err = os.Stat(from)
	}
	if err != nil {
		return errors.Wrapf(errors.FromOS(err), "failed to stat source %s", from)
	}

	if _, err := os.Lstat(to); err == nil {
		if !opts.ReplaceExisting {
			return errors.Wrapf(errors.ErrAlreadyExists, "cannot copy %s to %s", from, to)
		}
		if err := os.Remove(to); err != nil {
			return errors.Wrapf(errors.FromOS(err), "failed to replace %s", to)
		}
	}

	switch {
	case srcInfo.Mode()&fs.ModeSymlink != 0:
		target, err := os.Readlink(from)
		if err != nil {
			return errors.Wrapf(errors.FromOS(err), "failed to read link %s", from)
		}
		if err := os.Symlink(target, to); err != nil {
			return errors.Wrapf(errors.FromOS(err), "failed to create link %s", to)
		}
		return nil
	case srcInfo.IsDir():
		if err := os.Mkdir(to, srcInfo.Mode().Perm()); err != nil {
			return errors.Wrapf(errors.FromOS(err), "failed to create directory %s", to)
		}
	default:
		if err := copyContents(from, to, srcInfo.Mode().Perm()); err != nil {
			return err
		}
	}

	if opts.CopyAttributes {
		if err := os.Chmod(to, srcInfo.Mode().Perm()); err != nil {
			return errors.Wrapf(errors.FromOS(err), "failed to set permissions on %s", to)
		}
		if err := os.Chtimes(to, srcInfo.ModTime(), srcInfo.ModTime()); err != nil {
			return errors.Wrapf(errors.FromOS(err), "failed to set modification time on %s", to)
		}
	}
	return nil
}

// copyContents copies the byte contents of srcFile to dstFile, creating
// the destination with the given permission bits.
func copyContents(srcFile, dstFile string, perm fs.FileMode) error {
	src, err := os.Open(srcFile)
	if err != nil {
		return errors.Wrapf(errors.FromOS(err), "failed to open source file %s", srcFile)
	}
	defer func() { _ = src.Close() }()

	dst, err := os.OpenFile(dstFile, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return errors.Wrapf(errors.FromOS(err), "failed to create destination file %s", dstFile)
	}
	defer func() { _ = dst.Close() }()

	if _, err := io.Copy(dst, src); err != nil {
		return errors.Wrapf(errors.FromOS(err), "failed to copy %s to %s", srcFile, dstFile)
	}
	return nil
}

// CopyRecursively copies the whole tree rooted at from underneath to.
// The traversal collects every descendant directory and file, sorts
// each set lexicographically, then creates all directories first
// (parent before child by prefix order) and copies all files after,
// each destination derived by substituting the from prefix with to.
//
// When to already exists as a directory and does not end with a path
// separator, the source nests one level inside it, mirroring shell copy
// semantics: CopyRecursively("dir1", "dir2") with an existing dir2
// yields dir2/dir1. Options apply per entry exactly as in Copy, except
// that an already existing destination directory is kept rather than
// treated as a conflict, so trees can be merged.
//
// The operation is not transactional: entries copied before a failure
// remain in place.
func CopyRecursively(from, to string, opts CopyOptions) error {
	if _, err := os.Stat(from); err != nil {
		return errors.Wrapf(errors.FromOS(err), "failed to stat source %s", from)
	}

	endsWithSep := strings.HasSuffix(to, string(filepath.Separator)) || strings.HasSuffix(to, "/")
	if info, err := os.Stat(to); err == nil && info.IsDir() && !endsWithSep {
		to = filepath.Join(to, pathutil.LastSegment(from))
	}

	var dirs, files []string
	walkErr := filepath.WalkDir(from, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			dirs = append(dirs, path)
		} else {
			files = append(files, path)
		}
		return nil
	})
	if walkErr != nil {
		return errors.Wrapf(errors.FromOS(walkErr), "failed to walk %s", from)
	}

	sort.Strings(dirs)
	sort.Strings(files)

	rePath := func(path string) (string, error) {
		rel, err := filepath.Rel(from, path)
		if err != nil {
			return "", errors.Wrapf(errors.FromOS(err), "failed to relativize %s against %s", path, from)
		}
		return filepath.Join(to, rel), nil
	}

	for _, dir := range dirs {
		dst, err := rePath(dir)
		if err != nil {
			return err
		}
		if IsDirectoryNoFollow(dst) {
			continue
		}
		if err := Copy(dir, dst, opts); err != nil {
			return err
		}
	}

	for _, file := range files {
		dst, err := rePath(file)
		if err != nil {
			return err
		}
		if err := Copy(file, dst, opts); err != nil {
			return err
		}
	}
	return nil
}
