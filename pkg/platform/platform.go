// Package platform resolves the process-wide filesystem environment:
// the user's home directory and the system temporary directory. Both
// are captured once on first use and stay stable for the lifetime of
// the process, so every caller sees the same base directories even if
// the environment changes underneath.
package platform

import (
	"os"
	"runtime"
	"sync"

	"github.com/kelseyhightower/envconfig"
)

const (
	// OSWindows represents the Windows operating system.
	OSWindows = "windows"
	// OSLinux represents the Linux operating system.
	OSLinux = "linux"
	// OSDarwin represents the macOS operating system.
	OSDarwin = "darwin"
)

// overrides carries the FSKIT_* environment overrides. They exist so
// tooling can redirect fskit's notion of home and temp without touching
// the process-wide HOME/TMPDIR.
type overrides struct {
	Home    string `envconfig:"HOME"`
	TempDir string `envconfig:"TEMP_DIR"`
}

var (
	once    sync.Once
	homeDir string
	tempDir string
)

func capture() {
	var env overrides
	// Best effort: unparseable overrides fall back to the OS defaults.
	_ = envconfig.Process("fskit", &env)

	homeDir = env.Home
	if homeDir == "" {
		if h, err := os.UserHomeDir(); err == nil {
			homeDir = h
		}
	}

	tempDir = env.TempDir
	if tempDir == "" {
		tempDir = os.TempDir()
	}
}

// HomeDir returns the user's home directory as captured on first call.
// The result is empty when no home directory can be determined.
func HomeDir() string {
	once.Do(capture)
	return homeDir
}

// TempDir returns the base directory for temporary files as captured on
// first call.
func TempDir() string {
	once.Do(capture)
	return tempDir
}

// IsWindows reports whether the library is running on Windows. Hidden
// file detection and ownership handling differ there.
func IsWindows() bool {
	return runtime.GOOS == OSWindows
}
