// Package publish stages environments for sharing, filtering out files
// that are likely to contain credentials.
package publish

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/cenvtool/cenv/internal/utils"
	"github.com/google/uuid"
)

// Filename patterns that are never published. Matched case-insensitively
// against the base name.
var sensitivePatterns = []string{
	"credentials.json",
	"credentials.*.json",
	".env",
	".env.*",
	"*.key",
	"*.pem",
	"secrets.json",
	"secrets.*.json",
	"auth.json",
	"tokens.json",
}

// Substrings that flag a filename as sensitive even when no pattern matches.
var sensitiveSubstrings = []string{
	"secret",
	"token",
	"password",
	"apikey",
	"api_key",
}

// IsSensitiveFile reports whether a file with the given base name looks
// like it holds credentials and must be excluded from publishing.
func IsSensitiveFile(name string) bool {
	lower := strings.ToLower(name)
	for _, pattern := range sensitivePatterns {
		if ok, _ := filepath.Match(pattern, lower); ok {
			return true
		}
	}
	for _, sub := range sensitiveSubstrings {
		if strings.Contains(lower, sub) {
			return true
		}
	}
	return false
}

// Stage copies envPath into a fresh temporary directory, leaving out
// sensitive files and any .git directory. It returns the staging directory
// and the relative paths that were skipped, sorted. The caller owns the
// directory and removes it when done.
func Stage(envPath string) (string, []string, error) {
	if info, err := os.Stat(envPath); err != nil || !info.IsDir() {
		return "", nil, fmt.Errorf("environment %s is not a directory", envPath)
	}

	staging := filepath.Join(os.TempDir(), "cenv-publish-"+uuid.NewString())

	var skipped []string
	skip := func(rel string, d fs.DirEntry) bool {
		if d.IsDir() && d.Name() == ".git" {
			return true
		}
		if !d.IsDir() && IsSensitiveFile(d.Name()) {
			skipped = append(skipped, rel)
			return true
		}
		return false
	}

	if err := utils.CopyDirFiltered(envPath, staging, skip); err != nil {
		os.RemoveAll(staging)
		return "", nil, fmt.Errorf("staging environment: %w", err)
	}

	sort.Strings(skipped)
	return staging, skipped, nil
}
