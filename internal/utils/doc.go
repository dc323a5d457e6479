// Package utils provides shared utility functions for cenv.
//
// # Filesystem Utilities
//
//   - CopyDir / CopyDirFiltered: recursive tree copy preserving symlinks
//     and permissions, used by init backups, environment creation, and
//     publish staging
//
// # System Utilities
//
//   - CheckPlatform: rejects operating systems without the POSIX symlink
//     and advisory-lock semantics cenv depends on
package utils
