//go:build windows

package fsops

import (
	"os"
	"os/user"
	"syscall"
	"time"

	"github.com/glorpus-work/fskit/pkg/errors"
)

func winAttrData(path string) (*syscall.Win32FileAttributeData, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, errors.Wrapf(errors.FromOS(err), "failed to stat %s", path)
	}
	data, ok := info.Sys().(*syscall.Win32FileAttributeData)
	if !ok {
		return nil, errors.Wrapf(errors.ErrUnsupported, "no windows attribute data for %s", path)
	}
	return data, nil
}

// LastAccessTime returns the access time of the entry at path.
func LastAccessTime(path string) (time.Time, error) {
	data, err := winAttrData(path)
	if err != nil {
		return time.Time{}, err
	}
	return time.Unix(0, data.LastAccessTime.Nanoseconds()), nil
}

// CreationTime returns the creation time of the entry at path.
func CreationTime(path string) (time.Time, error) {
	data, err := winAttrData(path)
	if err != nil {
		return time.Time{}, err
	}
	return time.Unix(0, data.CreationTime.Nanoseconds()), nil
}

// Owner is unsupported on Windows, which has no POSIX ownership model.
func Owner(path string) (*user.User, error) {
	return nil, errors.Wrapf(errors.ErrUnsupported, "ownership queries are not supported on windows for %s", path)
}

// LookupOwner is unsupported on Windows.
func LookupOwner(path string) (*user.User, error) {
	return nil, nil
}

// Group is unsupported on Windows.
func Group(path string) (*user.Group, error) {
	return nil, errors.Wrapf(errors.ErrUnsupported, "group queries are not supported on windows for %s", path)
}

// LookupGroup is unsupported on Windows.
func LookupGroup(path string) (*user.Group, error) {
	return nil, nil
}

// SetOwner is unsupported on Windows.
func SetOwner(path, username string) error {
	return errors.Wrapf(errors.ErrUnsupported, "cannot change owner of %s on windows", path)
}

// SetGroup is unsupported on Windows.
func SetGroup(path, groupname string) error {
	return errors.Wrapf(errors.ErrUnsupported, "cannot change group of %s on windows", path)
}
