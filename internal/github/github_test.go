package github

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestIsValidGitHubURL(t *testing.T) {
	tests := []struct {
		name  string
		url   string
		valid bool
	}{
		{"HTTPS", "https://github.com/owner/repo", true},
		{"HTTPSWithGitSuffix", "https://github.com/owner/repo.git", true},
		{"HTTPSDottedName", "https://github.com/owner/my.claude.config", true},
		{"SSH", "git@github.com:owner/repo.git", true},
		{"SSHWithoutGitSuffix", "git@github.com:owner/repo", false},
		{"HTTPScheme", "http://github.com/owner/repo", false},
		{"OtherHost", "https://gitlab.com/owner/repo", false},
		{"MissingRepo", "https://github.com/owner", false},
		{"TrailingPath", "https://github.com/owner/repo/tree/main", false},
		{"Empty", "", false},
		{"LocalPath", "/home/user/repo", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsValidGitHubURL(tc.url); got != tc.valid {
				t.Errorf("IsValidGitHubURL(%q) = %v, expected %v", tc.url, got, tc.valid)
			}
		})
	}
}

func TestCloneRejectsInvalidURL(t *testing.T) {
	target := filepath.Join(t.TempDir(), "clone")

	err := Clone(context.Background(), "https://example.com/owner/repo", target, 0)
	if err == nil {
		t.Fatal("expected Clone to fail for non-GitHub URL")
	}
	var opErr *OperationError
	if !errors.As(err, &opErr) {
		t.Fatalf("error type = %T, expected *OperationError", err)
	}
	if opErr.Op != "clone" {
		t.Errorf("Op = %q, expected clone", opErr.Op)
	}

	// Nothing was created; git never ran.
	if _, statErr := os.Stat(target); !os.IsNotExist(statErr) {
		t.Error("target created despite invalid URL")
	}
}

func TestPushRejectsInvalidURL(t *testing.T) {
	err := Push(context.Background(), t.TempDir(), "git@gitlab.com:owner/repo.git", 0)
	var opErr *OperationError
	if !errors.As(err, &opErr) {
		t.Fatalf("error = %v, expected *OperationError", err)
	}
	if opErr.Op != "push" {
		t.Errorf("Op = %q, expected push", opErr.Op)
	}
}

func TestOperationErrorMessage(t *testing.T) {
	withReason := &OperationError{Op: "clone", URL: "https://github.com/o/r", Reason: "timed out"}
	if !strings.Contains(withReason.Error(), "timed out") {
		t.Errorf("Error() = %q, expected reason included", withReason.Error())
	}

	wrapped := errors.New("exit status 128")
	withErr := &OperationError{Op: "push", URL: "https://github.com/o/r", Err: wrapped}
	if !strings.Contains(withErr.Error(), "exit status 128") {
		t.Errorf("Error() = %q, expected cause included", withErr.Error())
	}
	if !errors.Is(withErr, wrapped) {
		t.Error("Unwrap does not expose the cause")
	}
}
