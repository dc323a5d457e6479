package errors

import "errors"

// Environment errors indicate issues locating or creating environments.
var (
	// ErrEnvNotFound indicates the named environment directory does not exist.
	ErrEnvNotFound = errors.New("environment does not exist")

	// ErrEnvExists indicates an environment with that name is already present.
	ErrEnvExists = errors.New("environment already exists")

	// ErrInvalidEnvName indicates the environment name failed validation.
	ErrInvalidEnvName = errors.New("invalid environment name")
)

// Switch errors indicate the active pointer could not be retargeted.
var (
	// ErrClaudeRunning indicates Claude Code appears to be running and no
	// override was requested.
	ErrClaudeRunning = errors.New("claude code is currently running")

	// ErrPointerNotSymlink indicates something other than a symlink occupies
	// the active pointer path.
	ErrPointerNotSymlink = errors.New("active pointer exists but is not a symlink")
)

// Deletion errors indicate an environment cannot be moved to the trash.
var (
	// ErrProtectedEnv indicates the default environment cannot be deleted.
	ErrProtectedEnv = errors.New("the default environment cannot be deleted")

	// ErrActiveEnv indicates the environment is the current pointer target.
	ErrActiveEnv = errors.New("environment is currently active")

	// ErrInvalidTrashID indicates a trash id is not in <name>-<date>-<time> form.
	ErrInvalidTrashID = errors.New("malformed trash id")

	// ErrTrashEntryNotFound indicates no trash slot exists for the given id.
	ErrTrashEntryNotFound = errors.New("trash entry does not exist")

	// ErrTrashSlotExists indicates a trash slot with the same id already exists.
	ErrTrashSlotExists = errors.New("trash slot already exists")
)

// Initialization errors indicate issues with first-time setup.
var (
	// ErrNotInitialized indicates cenv has not been set up yet.
	ErrNotInitialized = errors.New("cenv has not been initialized")

	// ErrAlreadyInitialized indicates the environments root already exists.
	ErrAlreadyInitialized = errors.New("cenv has already been initialized")

	// ErrInitInProgress indicates another process holds the init lock.
	ErrInitInProgress = errors.New("another initialization is already in progress")

	// ErrClaudeDirIsSymlink indicates the claude directory is already a symlink,
	// so there is nothing to migrate.
	ErrClaudeDirIsSymlink = errors.New("claude directory is already a symlink")
)

// Platform errors indicate the host cannot run cenv at all.
var (
	// ErrPlatformNotSupported indicates the OS lacks the symlink and advisory
	// lock semantics cenv relies on.
	ErrPlatformNotSupported = errors.New("platform is not supported")
)
