package fsops

import (
	"os"

	"github.com/glorpus-work/fskit/pkg/pathutil"
)

// WithTempDirectory creates a uniquely named temporary directory,
// invokes body with its canonical path, and removes the directory and
// everything inside it on every exit path from body, including panics.
// The body's error is returned unchanged; cleanup is best effort.
func WithTempDirectory(body func(dir string) error) error {
	dir, err := CreateTempDirectory("fskit-")
	if err != nil {
		return err
	}
	defer func() { _ = os.RemoveAll(dir) }()

	canonical, err := pathutil.Canonical(dir)
	if err != nil {
		return err
	}
	return body(canonical)
}

// WithTempFile creates a temporary directory with a temporary file
// inside it and invokes body with both paths. The surrounding
// directory scope guarantees both are removed when body exits.
func WithTempFile(body func(dir, file string) error) error {
	return WithTempDirectory(func(dir string) error {
		file, err := os.CreateTemp(dir, "fskit-")
		if err != nil {
			return err
		}
		name := file.Name()
		if err := file.Close(); err != nil {
			return err
		}
		return body(dir, name)
	})
}
