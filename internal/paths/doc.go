// Package paths computes canonical cenv filesystem locations.
//
// All locations derive from a single home directory:
//
//	~/.claude-envs/           environments root
//	~/.claude-envs/<name>/    one environment
//	~/.claude-envs/.trash/    deleted environments
//	~/.claude                 active pointer (symlink)
//	~/.claude.backup          init-time safety copy
//	~/cenv-init.lock          init advisory lock
//
// The Registry is the only component that knows this layout; every engine
// asks it for paths instead of joining strings itself.
package paths
