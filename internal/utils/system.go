package utils

import (
	"fmt"
	"runtime"

	cenverrors "github.com/cenvtool/cenv/internal/errors"
)

// supportedPlatforms are the operating systems with the symlink and advisory
// file lock semantics cenv depends on.
var supportedPlatforms = map[string]bool{
	"linux":   true,
	"darwin":  true,
	"freebsd": true,
	"openbsd": true,
	"solaris": true,
}

// CheckPlatform verifies the current OS can run cenv. Windows lacks the
// rename-over-symlink behavior the switch engine relies on; WSL2 works.
func CheckPlatform() error {
	if supportedPlatforms[runtime.GOOS] {
		return nil
	}
	return fmt.Errorf("%s: %w (use WSL2 on Windows)", runtime.GOOS, cenverrors.ErrPlatformNotSupported)
}
