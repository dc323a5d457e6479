package process

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	logger "github.com/cenvtool/cenv/internal/logging"
)

// Checker reports whether the consuming application is busy. Detection is
// best-effort and false-negative biased: when uncertain, implementations
// must report not busy, since blocking the user on a guess is worse than
// letting an operation proceed.
type Checker interface {
	IsBusy() bool
}

// CheckerFunc adapts a plain function to the Checker interface.
type CheckerFunc func() bool

func (f CheckerFunc) IsBusy() bool { return f() }

// ClaudeChecker detects running Claude Code processes.
type ClaudeChecker struct {
	Logger logger.Logger
}

func (c ClaudeChecker) IsBusy() bool {
	running := IsClaudeRunning()
	if running {
		c.Logger.Infof("Detected a running Claude Code process")
	}
	return running
}

// IsClaudeRunning scans the process table for what looks like Claude Code:
// a node process whose command line contains "bin/claude".
//
// Known limitations: the heuristic misses Claude in containers, VMs, and
// non-standard installs, and the scan only works where /proc exists. Any
// failure reads as "not running" so detection never blocks an operation
// it cannot prove unsafe.
func IsClaudeRunning() bool {
	entries, err := os.ReadDir("/proc")
	if err != nil {
		return false
	}

	for _, entry := range entries {
		if !entry.IsDir() || !isNumeric(entry.Name()) {
			continue
		}

		cmdline, err := os.ReadFile(filepath.Join("/proc", entry.Name(), "cmdline"))
		if err != nil || len(cmdline) == 0 {
			continue
		}

		args := strings.Split(string(bytes.TrimRight(cmdline, "\x00")), "\x00")
		if len(args) == 0 {
			continue
		}

		if filepath.Base(args[0]) != "node" {
			continue
		}
		for _, arg := range args {
			if strings.Contains(arg, "bin/claude") {
				return true
			}
		}
	}

	return false
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
