package env

import (
	"fmt"
	"os"
	"sync"

	cenverrors "github.com/cenvtool/cenv/internal/errors"
	"github.com/cenvtool/cenv/internal/paths"
	"github.com/cenvtool/cenv/internal/process"
)

// Switcher retargets the active pointer between environments.
//
// The pointer is only ever mutated by renaming a freshly created symlink
// over it. rename(2) over an existing path is atomic on POSIX, so a
// concurrent reader sees either the previous target or the new one, never
// a missing or half-written link.
type Switcher struct {
	paths *paths.Registry
	busy  process.Checker

	// mu serializes switches across goroutines of this process. It does not
	// arbitrate between two cenv processes racing; the loser's rename is
	// simply overwritten and the pointer stays valid throughout.
	mu sync.Mutex
}

// NewSwitcher creates a Switcher. busy may be nil when no busy detection
// is wanted.
func NewSwitcher(reg *paths.Registry, busy process.Checker) *Switcher {
	return &Switcher{paths: reg, busy: busy}
}

// Switch points the active pointer at the named environment. The name must
// already be validated. force skips the busy check.
//
// On failure the pointer is untouched: the only mutation of the canonical
// path is the final rename, and everything before it happens on a scratch
// link that is removed on error.
func (s *Switcher) Switch(name string, force bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	envPath := s.paths.EnvPath(name)
	info, err := os.Stat(envPath)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("environment %q: %w", name, cenverrors.ErrEnvNotFound)
	}

	if !force && s.busy != nil && s.busy.IsBusy() {
		return fmt.Errorf("%w (exit Claude or pass --force)", cenverrors.ErrClaudeRunning)
	}

	pointer := s.paths.ClaudeDir()
	if fi, err := os.Lstat(pointer); err == nil && fi.Mode()&os.ModeSymlink == 0 {
		return fmt.Errorf("%s: %w", pointer, cenverrors.ErrPointerNotSymlink)
	}

	temp := s.paths.TempLinkPath()
	// A crashed switch can leave a stale scratch link behind; clear it
	// unconditionally before retrying.
	if err := os.Remove(temp); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing stale temp link %s: %w", temp, err)
	}

	if err := os.Symlink(envPath, temp); err != nil {
		return fmt.Errorf("creating temp link %s: %w", temp, err)
	}

	if err := os.Rename(temp, pointer); err != nil {
		os.Remove(temp)
		return fmt.Errorf("replacing active pointer: %w", err)
	}

	return nil
}
