package paths

import (
	"os"
	"path/filepath"
)

// Directory and file name constants for the cenv layout.
const (
	// EnvsDirName is the root holding every environment directory.
	EnvsDirName = ".claude-envs"

	// ClaudeDirName is the active pointer: a symlink to one environment.
	ClaudeDirName = ".claude"

	// DefaultTrashDirName holds deleted environments inside the envs root.
	DefaultTrashDirName = ".trash"

	// DefaultLockFileName is the advisory lock taken during init.
	DefaultLockFileName = "cenv-init.lock"

	// DefaultEnvName is the bootstrap environment created by init.
	DefaultEnvName = "default"

	// backupSuffix names the full copy of ~/.claude taken before migration.
	backupSuffix = ".backup"

	// tempLinkSuffix names the scratch symlink renamed onto the pointer.
	tempLinkSuffix = ".tmp"
)

// Registry computes every canonical cenv location from one home directory.
// It holds no mutable state; whether cenv is initialized is always derived
// from the filesystem so process restarts can never observe a stale answer.
type Registry struct {
	homeDir      string
	trashDirName string
	lockFileName string
}

// New creates a Registry rooted at the given home directory with default
// trash and lock file names.
func New(homeDir string) *Registry {
	return &Registry{
		homeDir:      homeDir,
		trashDirName: DefaultTrashDirName,
		lockFileName: DefaultLockFileName,
	}
}

// NewWithNames creates a Registry with configured trash directory and lock
// file names. Empty values fall back to the defaults.
func NewWithNames(homeDir, trashDirName, lockFileName string) *Registry {
	r := New(homeDir)
	if trashDirName != "" {
		r.trashDirName = trashDirName
	}
	if lockFileName != "" {
		r.lockFileName = lockFileName
	}
	return r
}

// NewFromUserHome creates a Registry rooted at the current user's home.
func NewFromUserHome() (*Registry, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	return New(homeDir), nil
}

// HomeDir returns the home directory the registry is rooted at.
func (r *Registry) HomeDir() string {
	return r.homeDir
}

// EnvsDir returns the root directory holding all environments.
func (r *Registry) EnvsDir() string {
	return filepath.Join(r.homeDir, EnvsDirName)
}

// EnvPath returns the directory for a named environment.
func (r *Registry) EnvPath(name string) string {
	return filepath.Join(r.EnvsDir(), name)
}

// ClaudeDir returns the active pointer path.
func (r *Registry) ClaudeDir() string {
	return filepath.Join(r.homeDir, ClaudeDirName)
}

// TempLinkPath returns the scratch symlink path used during a switch. The
// name is fixed so a link left behind by a crashed switch is found and
// removed by the next one.
func (r *Registry) TempLinkPath() string {
	return r.ClaudeDir() + tempLinkSuffix
}

// BackupPath returns where init copies ~/.claude before migrating it.
func (r *Registry) BackupPath() string {
	return r.ClaudeDir() + backupSuffix
}

// TrashDir returns the directory holding deleted environments.
func (r *Registry) TrashDir() string {
	return filepath.Join(r.EnvsDir(), r.trashDirName)
}

// TrashPath returns the slot directory for a trash id.
func (r *Registry) TrashPath(id string) string {
	return filepath.Join(r.TrashDir(), id)
}

// LockPath returns the init lock file path. It lives in the home directory,
// outside any environment, so it survives envs-root rollback.
func (r *Registry) LockPath() string {
	return filepath.Join(r.homeDir, r.lockFileName)
}

// IsInitialized reports whether the environments root exists.
func (r *Registry) IsInitialized() bool {
	info, err := os.Stat(r.EnvsDir())
	return err == nil && info.IsDir()
}
