package fsops

// CopyOptions configures Copy and CopyRecursively. The zero value is
// the default behavior: existing targets are left alone, attributes are
// not propagated, and a symlink source is dereferenced so its target's
// content is copied.
type CopyOptions struct {
	// ReplaceExisting overwrites an existing target instead of failing
	// with ErrAlreadyExists.
	ReplaceExisting bool

	// CopyAttributes propagates permission bits and timestamps from the
	// source to the copy.
	CopyAttributes bool

	// PreserveLinks copies a symlink source as a new symlink instead of
	// following it to its target.
	PreserveLinks bool
}

// MoveOptions configures Move and Rename. The zero value leaves
// existing targets alone and permits a copy+delete fallback when the
// OS cannot rename across filesystems.
type MoveOptions struct {
	// ReplaceExisting overwrites an existing target instead of failing
	// with ErrAlreadyExists.
	ReplaceExisting bool

	// AtomicMove requires an all-or-nothing OS rename and fails with
	// ErrUnsupported when the move would cross filesystems.
	AtomicMove bool
}

// DeleteOptions configures DeleteRecursively. The zero value never
// follows symlinks: deleting a link removes only the link, so a
// recursive delete cannot be steered outside the intended tree.
type DeleteOptions struct {
	// FollowLinks descends into directories reached through symlinks
	// and deletes their contents before removing the link itself.
	FollowLinks bool
}
