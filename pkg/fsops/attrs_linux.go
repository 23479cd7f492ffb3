//go:build linux

package fsops

import (
	"time"

	"github.com/glorpus-work/fskit/pkg/errors"
)

// LastAccessTime returns the access time of the entry at path,
// following symlinks.
func LastAccessTime(path string) (time.Time, error) {
	st, err := statT(path)
	if err != nil {
		return time.Time{}, err
	}
	return time.Unix(st.Atim.Sec, st.Atim.Nsec), nil
}

// CreationTime is unsupported on Linux: the kernel records a birth time
// for some filesystems but does not expose it through stat(2).
func CreationTime(path string) (time.Time, error) {
	return time.Time{}, errors.Wrapf(errors.ErrUnsupported, "no creation time available for %s", path)
}
