// Package github shells out to git for cloning and publishing
// environment repositories hosted on GitHub.
package github

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

var (
	httpsURLPattern = regexp.MustCompile(`^https://github\.com/[\w-]+/[\w.-]+(\.git)?$`)
	sshURLPattern   = regexp.MustCompile(`^git@github\.com:[\w-]+/[\w.-]+\.git$`)
)

// IsValidGitHubURL reports whether url is an HTTPS or SSH GitHub
// repository URL.
func IsValidGitHubURL(url string) bool {
	return httpsURLPattern.MatchString(url) || sshURLPattern.MatchString(url)
}

// OperationError describes a failed git operation against a repository.
type OperationError struct {
	Op     string
	URL    string
	Reason string
	Err    error
}

func (e *OperationError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("git %s %s: %s", e.Op, e.URL, e.Reason)
	}
	return fmt.Sprintf("git %s %s: %v", e.Op, e.URL, e.Err)
}

func (e *OperationError) Unwrap() error { return e.Err }

// Clone performs a shallow clone of url into target. The target directory
// must not exist; on failure any partial clone is removed. The repository's
// .git directory is stripped so the result is a plain configuration tree.
func Clone(ctx context.Context, url, target string, timeout time.Duration) error {
	if !IsValidGitHubURL(url) {
		return &OperationError{Op: "clone", URL: url, Reason: "not a GitHub repository URL"}
	}

	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, "git", "clone", "--depth", "1", url, target)
	output, err := cmd.CombinedOutput()
	if err != nil {
		os.RemoveAll(target)
		if ctx.Err() == context.DeadlineExceeded {
			return &OperationError{Op: "clone", URL: url, Reason: "timed out", Err: ctx.Err()}
		}
		return &OperationError{Op: "clone", URL: url, Reason: strings.TrimSpace(string(output)), Err: err}
	}

	if err := os.RemoveAll(filepath.Join(target, ".git")); err != nil {
		os.RemoveAll(target)
		return fmt.Errorf("stripping .git from clone: %w", err)
	}
	return nil
}

// Push publishes the contents of dir to url as a single commit on the
// default branch, force-replacing the remote history. The directory is
// expected to be a staging copy; a .git directory is created inside it.
func Push(ctx context.Context, dir, url string, timeout time.Duration) error {
	if !IsValidGitHubURL(url) {
		return &OperationError{Op: "push", URL: url, Reason: "not a GitHub repository URL"}
	}

	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	steps := [][]string{
		{"init", "--initial-branch", "main"},
		{"add", "--all"},
		{"commit", "--message", "Publish environment", "--allow-empty"},
		{"push", "--force", url, "main"},
	}
	for _, args := range steps {
		cmd := exec.CommandContext(ctx, "git", args...)
		cmd.Dir = dir
		output, err := cmd.CombinedOutput()
		if err != nil {
			if ctx.Err() == context.DeadlineExceeded {
				return &OperationError{Op: "push", URL: url, Reason: "timed out", Err: ctx.Err()}
			}
			return &OperationError{Op: "push", URL: url, Reason: strings.TrimSpace(string(output)), Err: err}
		}
	}
	return nil
}
