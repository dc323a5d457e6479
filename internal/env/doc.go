// Package env implements the core environment engines.
//
// An environment is a named directory of Claude configuration under
// ~/.claude-envs; ~/.claude is a symlink (the active pointer) to exactly
// one of them. The package provides:
//
//   - Switcher: atomic retargeting of the active pointer via a scratch
//     symlink and rename(2)
//   - Trash: reversible deletion by renaming environments into timestamped
//     trash slots
//   - InitGate / Initialize: one-time migration of ~/.claude, guarded by a
//     cross-process advisory lock, with backup and rollback
//   - List, Current, Exists, Create: environment queries and creation from
//     a local copy or a GitHub clone
//
// All shared state lives on the filesystem and is mutated exclusively by
// whole-directory renames, so concurrent callers never observe torn
// intermediate states.
package env
