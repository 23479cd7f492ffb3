// Package search provides recursive lookup over a directory tree: name
// pattern matching, gitignore-style globbing, extension filtering, tree
// sizing, and content-type detection.
package search

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/charlievieth/fastwalk"
	"github.com/gabriel-vasile/mimetype"

	"github.com/glorpus-work/fskit/pkg/errors"
)

// Find walks the tree under root and returns the relative paths of all
// files whose base name matches the shell pattern (e.g. "*.go").
// Results are sorted; symlinks are not followed.
func Find(root, pattern string) ([]string, error) {
	if _, err := filepath.Match(pattern, ""); err != nil {
		return nil, errors.Wrapf(err, "invalid pattern %q", pattern)
	}

	var mu sync.Mutex
	matches := []string{}
	conf := fastwalk.Config{Follow: false}

	err := fastwalk.Walk(&conf, root, func(path string, d os.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}
		if matched, _ := filepath.Match(pattern, filepath.Base(path)); matched {
			if rel, relErr := filepath.Rel(root, path); relErr == nil {
				mu.Lock()
				matches = append(matches, rel)
				mu.Unlock()
			}
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(errors.FromOS(err), "failed to walk %s", root)
	}

	sort.Strings(matches)
	return matches, nil
}

// Glob matches a doublestar pattern (e.g. "**/*.go") against the tree
// under root and returns sorted relative paths.
func Glob(root, pattern string) ([]string, error) {
	paths, err := doublestar.FilepathGlob(filepath.Join(root, pattern))
	if err != nil {
		return nil, errors.Wrapf(err, "invalid glob pattern %q", pattern)
	}

	matches := []string{}
	for _, path := range paths {
		if rel, relErr := filepath.Rel(root, path); relErr == nil {
			matches = append(matches, rel)
		}
	}
	sort.Strings(matches)
	return matches, nil
}

// FilterByExtension walks the tree under root and returns the sorted
// relative paths of files carrying one of the given extensions. A
// missing leading dot is tolerated: "go" and ".go" filter alike.
func FilterByExtension(root string, extensions []string) ([]string, error) {
	wanted := make(map[string]bool, len(extensions))
	for _, ext := range extensions {
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		wanted[ext] = true
	}

	var mu sync.Mutex
	matches := []string{}
	conf := fastwalk.Config{Follow: false}

	err := fastwalk.Walk(&conf, root, func(path string, d os.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}
		if wanted[filepath.Ext(path)] {
			if rel, relErr := filepath.Rel(root, path); relErr == nil {
				mu.Lock()
				matches = append(matches, rel)
				mu.Unlock()
			}
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(errors.FromOS(err), "failed to walk %s", root)
	}

	sort.Strings(matches)
	return matches, nil
}

// TotalSize returns the combined size in bytes of all regular files in
// the tree under root. Symlinks are not followed.
func TotalSize(root string) (int64, error) {
	var mu sync.Mutex
	var total int64
	conf := fastwalk.Config{Follow: false}

	err := fastwalk.Walk(&conf, root, func(path string, d os.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}
		info, infoErr := d.Info()
		if infoErr != nil || !info.Mode().IsRegular() {
			return nil
		}
		mu.Lock()
		total += info.Size()
		mu.Unlock()
		return nil
	})
	if err != nil {
		return 0, errors.Wrapf(errors.FromOS(err), "failed to walk %s", root)
	}
	return total, nil
}

// DetectContentType sniffs the MIME type of the file at path from its
// content, e.g. "text/plain; charset=utf-8" or "application/pdf".
func DetectContentType(path string) (string, error) {
	mtype, err := mimetype.DetectFile(path)
	if err != nil {
		return "", errors.Wrapf(errors.FromOS(err), "failed to detect content type of %s", path)
	}
	return mtype.String(), nil
}
