package fsops

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/glorpus-work/fskit/pkg/errors"
)

// Delete removes exactly one filesystem entry. It fails with
// ErrNotFound when the path does not exist and with an OS error when
// the path is a non-empty directory.
func Delete(path string) error {
	if err := os.Remove(path); err != nil {
		return errors.Wrapf(errors.FromOS(err), "failed to delete %s", path)
	}
	return nil
}

// DeleteIfExists removes one filesystem entry like Delete, but absence
// is not an error. It reports whether an entry was actually removed.
func DeleteIfExists(path string) (bool, error) {
	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, errors.Wrapf(errors.FromOS(err), "failed to delete %s", path)
	}
	return true, nil
}

// DeleteRecursively removes the whole tree rooted at path. The
// traversal collects descendant directories and files, then deletes
// files first and directories after in reverse-sorted order, so no
// directory is removed while still populated.
//
// Symlinks are never followed unless opts.FollowLinks is set: deleting
// a symlink removes only the link and leaves its target intact, so a
// link inside the tree cannot redirect the delete to data outside it.
// With FollowLinks, directories reached through links have their
// contents deleted before the link itself is removed; the emptied
// target directory itself remains, as it lies outside the tree.
//
// The operation is not transactional: entries deleted before a failure
// stay deleted.
func DeleteRecursively(path string, opts DeleteOptions) error {
	if _, err := os.Lstat(path); err != nil {
		return errors.Wrapf(errors.FromOS(err), "failed to stat %s", path)
	}

	var dirs, files []string
	if err := collectTree(path, opts.FollowLinks, &dirs, &files); err != nil {
		return err
	}

	// Child-before-parent: reverse lexicographic order guarantees a
	// directory sorts after everything beneath it.
	sort.Sort(sort.Reverse(sort.StringSlice(files)))
	sort.Sort(sort.Reverse(sort.StringSlice(dirs)))

	for _, file := range files {
		if err := os.Remove(file); err != nil {
			return errors.Wrapf(errors.FromOS(err), "failed to delete %s", file)
		}
	}
	for _, dir := range dirs {
		if err := os.Remove(dir); err != nil {
			return errors.Wrapf(errors.FromOS(err), "failed to delete %s", dir)
		}
	}
	return nil
}

// collectTree gathers the directories and non-directories of the tree
// rooted at path. Symlinks count as non-directories; with followLinks
// set, a link resolving to a directory additionally has its target's
// contents collected.
func collectTree(path string, followLinks bool, dirs, files *[]string) error {
	info, err := os.Lstat(path)
	if err != nil {
		return errors.Wrapf(errors.FromOS(err), "failed to stat %s", path)
	}

	if info.Mode()&fs.ModeSymlink != 0 {
		if followLinks {
			if target, err := os.Stat(path); err == nil && target.IsDir() {
				// Collect through the link and remove the link in the
				// directory phase so its children go first.
				if err := collectChildren(path, followLinks, dirs, files); err != nil {
					return err
				}
				*dirs = append(*dirs, path)
				return nil
			}
		}
		*files = append(*files, path)
		return nil
	}

	if !info.IsDir() {
		*files = append(*files, path)
		return nil
	}

	if err := collectChildren(path, followLinks, dirs, files); err != nil {
		return err
	}
	*dirs = append(*dirs, path)
	return nil
}

func collectChildren(path string, followLinks bool, dirs, files *[]string) error {
	entries, err := os.ReadDir(path)
	if err != nil {
		return errors.Wrapf(errors.FromOS(err), "failed to read directory %s", path)
	}
	for _, entry := range entries {
		if err := collectTree(filepath.Join(path, entry.Name()), followLinks, dirs, files); err != nil {
			return err
		}
	}
	return nil
}
