// Package process provides best-effort detection of a running Claude Code.
//
// Detection is heuristic (a /proc scan for node processes running
// bin/claude) and deliberately false-negative biased: uncertainty reads as
// "not running". Engines consume the Checker interface rather than calling
// the scan directly, so tests inject a CheckerFunc and never touch the
// process table.
package process
