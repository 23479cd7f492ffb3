//go:build darwin

package fsops

import (
	"time"
)

// LastAccessTime returns the access time of the entry at path,
// following symlinks.
func LastAccessTime(path string) (time.Time, error) {
	st, err := statT(path)
	if err != nil {
		return time.Time{}, err
	}
	return time.Unix(st.Atimespec.Sec, st.Atimespec.Nsec), nil
}

// CreationTime returns the birth time of the entry at path.
func CreationTime(path string) (time.Time, error) {
	st, err := statT(path)
	if err != nil {
		return time.Time{}, err
	}
	return time.Unix(st.Birthtimespec.Sec, st.Birthtimespec.Nsec), nil
}
