package permissions

import "io/fs"

// File and directory permission constants.
// These follow standard Unix permission conventions and are used
// consistently throughout fskit for created files and directories.
const (
	// File mode masks.
	FileModeMask fs.FileMode = 0o777

	// Default file modes.
	FileModeDefault fs.FileMode = 0o644 // -rw-r--r--: regular files
	FileModeSecure  fs.FileMode = 0o600 // -rw-------: sensitive files
	FileModeExec    fs.FileMode = 0o755 // -rwxr-xr-x: executable files

	// Directory modes.
	DirModeDefault fs.FileMode = 0o755 // drwxr-xr-x: default directories
	DirModeSecure  fs.FileMode = 0o750 // drwxr-x---: sensitive directories
	DirModePrivate fs.FileMode = 0o700 // drwx------: private directories
)
