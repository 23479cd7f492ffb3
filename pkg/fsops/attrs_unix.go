//go:build !windows

package fsops

import (
	stderrors "errors"
	"os"
	"os/user"
	"strconv"
	"syscall"

	"github.com/glorpus-work/fskit/pkg/errors"
)

func statT(path string) (*syscall.Stat_t, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, errors.Wrapf(errors.FromOS(err), "failed to stat %s", path)
	}
	st, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return nil, errors.Wrapf(errors.ErrUnsupported, "no unix stat data for %s", path)
	}
	return st, nil
}

// Owner returns the owning user of the entry at path. It fails with
// ErrUnsupported when the owning uid has no account on this system; use
// LookupOwner for the non-raising variant.
func Owner(path string) (*user.User, error) {
	owner, err := LookupOwner(path)
	if err != nil {
		return nil, err
	}
	if owner == nil {
		return nil, errors.Wrapf(errors.ErrUnsupported, "no user account for owner of %s", path)
	}
	return owner, nil
}

// LookupOwner returns the owning user of the entry at path, or nil
// without error when the owning uid has no account on this system.
func LookupOwner(path string) (*user.User, error) {
	st, err := statT(path)
	if err != nil {
		return nil, err
	}
	owner, err := user.LookupId(strconv.FormatUint(uint64(st.Uid), 10))
	if err != nil {
		var unknown user.UnknownUserIdError
		if stderrors.As(err, &unknown) {
			return nil, nil
		}
		return nil, errors.Wrapf(errors.FromOS(err), "failed to look up owner of %s", path)
	}
	return owner, nil
}

// Group returns the owning group of the entry at path. It fails with
// ErrUnsupported when the owning gid has no group on this system; use
// LookupGroup for the non-raising variant.
func Group(path string) (*user.Group, error) {
	group, err := LookupGroup(path)
	if err != nil {
		return nil, err
	}
	if group == nil {
		return nil, errors.Wrapf(errors.ErrUnsupported, "no group for gid of %s", path)
	}
	return group, nil
}

// LookupGroup returns the owning group of the entry at path, or nil
// without error when the owning gid has no group on this system.
func LookupGroup(path string) (*user.Group, error) {
	st, err := statT(path)
	if err != nil {
		return nil, err
	}
	group, err := user.LookupGroupId(strconv.FormatUint(uint64(st.Gid), 10))
	if err != nil {
		var unknown user.UnknownGroupIdError
		if stderrors.As(err, &unknown) {
			return nil, nil
		}
		return nil, errors.Wrapf(errors.FromOS(err), "failed to look up group of %s", path)
	}
	return group, nil
}

// SetOwner changes the owning user of the entry at path to the named
// account. An unknown account fails with ErrUnsupported.
func SetOwner(path, username string) error {
	u, err := user.Lookup(username)
	if err != nil {
		return errors.Wrapf(errors.ErrUnsupported, "no user account %q", username)
	}
	uid, err := strconv.Atoi(u.Uid)
	if err != nil {
		return errors.Wrapf(errors.ErrUnsupported, "non-numeric uid %q for user %q", u.Uid, username)
	}
	if err := os.Chown(path, uid, -1); err != nil {
		return errors.Wrapf(errors.FromOS(err), "failed to change owner of %s", path)
	}
	return nil
}

// SetGroup changes the owning group of the entry at path to the named
// group. An unknown group fails with ErrUnsupported.
func SetGroup(path, groupname string) error {
	g, err := user.LookupGroup(groupname)
	if err != nil {
		return errors.Wrapf(errors.ErrUnsupported, "no group %q", groupname)
	}
	gid, err := strconv.Atoi(g.Gid)
	if err != nil {
		return errors.Wrapf(errors.ErrUnsupported, "non-numeric gid %q for group %q", g.Gid, groupname)
	}
	if err := os.Chown(path, -1, gid); err != nil {
		return errors.Wrapf(errors.FromOS(err), "failed to change group of %s", path)
	}
	return nil
}
