package env

import (
	"fmt"
	"os"

	cenverrors "github.com/cenvtool/cenv/internal/errors"
	logger "github.com/cenvtool/cenv/internal/logging"
	"github.com/cenvtool/cenv/internal/paths"
	"github.com/cenvtool/cenv/internal/utils"
	"github.com/gofrs/flock"
)

// InitGate guards first-time setup against concurrent runs. The lock is a
// cross-process exclusive advisory lock on a fixed path outside any
// environment directory; it only arbitrates the check-then-act race and is
// never itself the "initialized" signal, which always comes from the
// filesystem via the registry.
type InitGate struct {
	paths  *paths.Registry
	logger logger.Logger
}

// NewInitGate creates an InitGate over the registry's lock path.
func NewInitGate(reg *paths.Registry, log logger.Logger) *InitGate {
	return &InitGate{paths: reg, logger: log}
}

// RunOnce runs migrate under the init lock. Contention fails immediately
// with ErrInitInProgress rather than blocking: init is a one-shot,
// human-triggered operation and should fail fast, not hang. The lock is
// released and its file removed on every path out; cleanup failures are
// logged, never propagated.
func (g *InitGate) RunOnce(migrate func() error) error {
	lock := flock.New(g.paths.LockPath())
	locked, err := lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquiring init lock %s: %w", g.paths.LockPath(), err)
	}
	if !locked {
		return fmt.Errorf("%w", cenverrors.ErrInitInProgress)
	}
	defer func() {
		if err := lock.Unlock(); err != nil {
			g.logger.Warnf("Failed to release init lock: %v", err)
		}
		if err := os.Remove(g.paths.LockPath()); err != nil && !os.IsNotExist(err) {
			g.logger.Warnf("Failed to remove init lock file: %v", err)
		}
	}()

	// Re-check inside the lock: a racing init may have finished between our
	// caller's check and the lock acquisition.
	if g.paths.IsInitialized() {
		return fmt.Errorf("%w", cenverrors.ErrAlreadyInitialized)
	}

	return migrate()
}

// Initialize performs first-time setup: the existing ~/.claude directory is
// migrated into the environments root as the bootstrap environment (or an
// empty bootstrap environment is created if there is none), and the active
// pointer is linked to it.
//
// Migration is backup → commit → cleanup. A pre-existing ~/.claude is fully
// copied to a sibling backup before any destructive step. On failure every
// completed step is reversed in the opposite order, ending with the backup
// moved back; the backup is deleted only after everything succeeded.
func Initialize(reg *paths.Registry, log logger.Logger) error {
	gate := NewInitGate(reg, log)
	return gate.RunOnce(func() error {
		return migrate(reg, log)
	})
}

func migrate(reg *paths.Registry, log logger.Logger) error {
	claudeDir := reg.ClaudeDir()

	if fi, err := os.Lstat(claudeDir); err == nil && fi.Mode()&os.ModeSymlink != 0 {
		return fmt.Errorf("%s is already a symlink: %w", claudeDir, cenverrors.ErrClaudeDirIsSymlink)
	}

	hadClaude := false
	if info, err := os.Stat(claudeDir); err == nil && info.IsDir() {
		hadClaude = true
	}

	backup := reg.BackupPath()
	if hadClaude {
		log.Infof("Backing up %s to %s", claudeDir, backup)
		if err := utils.CopyDir(claudeDir, backup); err != nil {
			return fmt.Errorf("initialization failed: backing up %s: %w", claudeDir, err)
		}
	}

	defaultEnv := reg.EnvPath(paths.DefaultEnvName)
	var madeEnvsDir, madeDefault, madePointer bool

	rollback := func() {
		// Reverse order of the steps below.
		if madePointer {
			if err := os.Remove(claudeDir); err != nil {
				log.Warnf("Rollback: failed to remove pointer: %v", err)
			}
		}
		if madeDefault {
			if err := os.RemoveAll(defaultEnv); err != nil {
				log.Warnf("Rollback: failed to remove bootstrap environment: %v", err)
			}
		}
		if madeEnvsDir {
			if err := os.Remove(reg.EnvsDir()); err != nil {
				log.Warnf("Rollback: failed to remove environments root: %v", err)
			}
		}
		if hadClaude {
			if _, err := os.Lstat(claudeDir); os.IsNotExist(err) {
				if err := os.Rename(backup, claudeDir); err != nil {
					log.Warnf("Rollback: failed to restore backup to %s: %v", claudeDir, err)
					return
				}
			} else if err := os.RemoveAll(backup); err != nil {
				log.Warnf("Rollback: failed to remove backup: %v", err)
			}
		}
	}

	if err := os.Mkdir(reg.EnvsDir(), 0755); err != nil {
		rollback()
		return fmt.Errorf("initialization failed: creating environments root: %w", err)
	}
	madeEnvsDir = true

	if hadClaude {
		if err := os.Rename(claudeDir, defaultEnv); err != nil {
			rollback()
			return fmt.Errorf("initialization failed: migrating %s: %w", claudeDir, err)
		}
	} else {
		if err := os.Mkdir(defaultEnv, 0755); err != nil {
			rollback()
			return fmt.Errorf("initialization failed: creating bootstrap environment: %w", err)
		}
	}
	madeDefault = true

	if err := os.Symlink(defaultEnv, claudeDir); err != nil {
		rollback()
		return fmt.Errorf("initialization failed: linking active pointer: %w", err)
	}
	madePointer = true

	if hadClaude {
		if err := os.RemoveAll(backup); err != nil {
			// Everything committed; a leftover backup is only disk noise.
			log.Warnf("Failed to remove backup %s: %v", backup, err)
		}
	}

	return nil
}
