//go:build !windows && !linux && !darwin

package fsops

import (
	"time"

	"github.com/glorpus-work/fskit/pkg/errors"
)

// LastAccessTime is unsupported here: the access-time field of
// syscall.Stat_t is laid out differently on each remaining unix
// variant.
func LastAccessTime(path string) (time.Time, error) {
	return time.Time{}, errors.Wrapf(errors.ErrUnsupported, "no access time available for %s", path)
}

// CreationTime is unsupported here: no birth time is exposed through
// stat(2) on this platform.
func CreationTime(path string) (time.Time, error) {
	return time.Time{}, errors.Wrapf(errors.ErrUnsupported, "no creation time available for %s", path)
}
