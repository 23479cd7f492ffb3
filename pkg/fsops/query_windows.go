//go:build windows

package fsops

import (
	"os"
	"path/filepath"
	"strings"
)

// IsReadable reports whether the calling process may read path. Windows
// has no access(2); an existing entry is assumed readable.
func IsReadable(path string) bool {
	return Exists(path)
}

// IsWritable reports whether the calling process may write path, based
// on the read-only attribute.
func IsWritable(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().Perm()&0o200 != 0
}

// IsExecutable reports whether path is a directory or carries an
// executable extension.
func IsExecutable(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	if info.IsDir() {
		return true
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".exe", ".bat", ".cmd", ".com":
		return true
	}
	return false
}
