// Package pathutil provides pure path-string manipulation: joining,
// splitting, traversing ancestry, and extension handling. Nothing in
// this package touches the filesystem except Absolute and Canonical,
// which resolve against the current working directory.
package pathutil

import (
	"iter"
	"path/filepath"
	"strings"

	"github.com/glorpus-work/fskit/pkg/errors"
	"github.com/glorpus-work/fskit/pkg/platform"
)

// Join concatenates segments with the platform separator. Duplicate and
// trailing separators on intermediate segments collapse to one, and
// absoluteness of the first segment is preserved.
func Join(segments ...string) string {
	return filepath.Join(segments...)
}

// Split breaks a path into its segments, the inverse of Join up to
// separator normalization. Absolute paths yield the root (volume plus
// separator on Windows) as their first segment so the result joins back
// to an absolute path. Duplicate separators collapse; no empty leading
// or trailing segments are produced. An empty path yields a single
// empty segment.
func Split(path string) []string {
	if path == "" {
		return []string{""}
	}

	vol := filepath.VolumeName(path)
	rest := filepath.ToSlash(path[len(vol):])

	var segments []string
	switch {
	case strings.HasPrefix(rest, "/"):
		segments = append(segments, vol+string(filepath.Separator))
		rest = strings.TrimLeft(rest, "/")
	case vol != "":
		segments = append(segments, vol)
	}

	for _, seg := range strings.Split(rest, "/") {
		if seg != "" {
			segments = append(segments, seg)
		}
	}
	return segments
}

// LastSegment returns the final path component, ignoring a trailing
// separator: LastSegment("/a/b/") is "b".
func LastSegment(path string) string {
	if path == "" {
		return ""
	}
	return filepath.Base(path)
}

// Filename returns the final path component and true, unless the path
// ends with a separator. A trailing separator denotes a directory
// rather than a named file, so Filename reports false there where
// LastSegment still returns the component.
func Filename(path string) (string, bool) {
	if path == "" {
		return "", false
	}
	if strings.HasSuffix(path, string(filepath.Separator)) || strings.HasSuffix(path, "/") {
		return "", false
	}
	return filepath.Base(path), true
}

// Parent returns the path one level up and true. It reports false at a
// filesystem root and for single-segment relative paths, which have no
// parent to name.
func Parent(path string) (string, bool) {
	cleaned := filepath.Clean(path)
	dir := filepath.Dir(cleaned)
	if dir == cleaned || dir == "." {
		return "", false
	}
	return dir, true
}

// Ancestors returns a lazy sequence of all parents of path, nearest
// first and root-most last. The sequence is finite, ends where Parent
// reports none, and can be iterated any number of times since it is
// computed purely from the path string.
func Ancestors(path string) iter.Seq[string] {
	return func(yield func(string) bool) {
		current := path
		for {
			parent, ok := Parent(current)
			if !ok {
				return
			}
			if !yield(parent) {
				return
			}
			current = parent
		}
	}
}

// IsDescendantOf reports whether child lies strictly below parent in
// the path hierarchy, i.e. parent appears among child's ancestors. A
// path is not a descendant of itself.
func IsDescendantOf(parent, child string) bool {
	want := filepath.Clean(parent)
	for ancestor := range Ancestors(child) {
		if ancestor == want {
			return true
		}
	}
	return false
}

// Extension returns the substring after the last '.' of the final path
// segment and true. Dotfiles (".bashrc") and names ending in a dot
// ("name.") have no extension.
func Extension(path string) (string, bool) {
	name, ok := Filename(path)
	if !ok {
		return "", false
	}
	idx := strings.LastIndexByte(name, '.')
	if idx <= 0 || idx == len(name)-1 {
		return "", false
	}
	return name[idx+1:], true
}

// WithoutExtension strips the extension and its separating dot if the
// path has one, and returns the path unchanged otherwise.
func WithoutExtension(path string) string {
	ext, ok := Extension(path)
	if !ok {
		return path
	}
	return path[:len(path)-len(ext)-1]
}

// ExpandHome replaces a leading "~" segment with the user's home
// directory. Only the exact segment counts: "~/x" expands, "~foo/x"
// does not.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") &&
		!strings.HasPrefix(path, "~"+string(filepath.Separator)) {
		return path
	}
	home := platform.HomeDir()
	if home == "" {
		return path
	}
	if path == "~" {
		return home
	}
	return filepath.Join(home, path[2:])
}

// Normalize resolves "." and ".." segments syntactically and collapses
// separators, without consulting the filesystem.
func Normalize(path string) string {
	return filepath.Clean(path)
}

// Absolute resolves path against the current working directory.
func Absolute(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", errors.Wrapf(errors.FromOS(err), "failed to resolve absolute path for %s", path)
	}
	return abs, nil
}

// Canonical resolves path against the current working directory and
// follows all symbolic links. Unlike Absolute it fails when the target
// does not exist.
func Canonical(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", errors.Wrapf(errors.FromOS(err), "failed to resolve absolute path for %s", path)
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", errors.Wrapf(errors.FromOS(err), "failed to canonicalize %s", path)
	}
	return resolved, nil
}
