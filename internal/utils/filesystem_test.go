package utils

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("mkdir %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestCopyDir(t *testing.T) {
	src := filepath.Join(t.TempDir(), "src")
	writeFile(t, filepath.Join(src, "CLAUDE.md"), "# test")
	writeFile(t, filepath.Join(src, "nested", "settings.json"), "{}")
	if err := os.Symlink("CLAUDE.md", filepath.Join(src, "link")); err != nil {
		t.Fatalf("creating symlink: %v", err)
	}

	dst := filepath.Join(t.TempDir(), "dst")
	if err := CopyDir(src, dst); err != nil {
		t.Fatalf("CopyDir failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dst, "CLAUDE.md"))
	if err != nil || string(data) != "# test" {
		t.Errorf("CLAUDE.md content = %q, err = %v", data, err)
	}
	if _, err := os.Stat(filepath.Join(dst, "nested", "settings.json")); err != nil {
		t.Errorf("nested file missing: %v", err)
	}

	target, err := os.Readlink(filepath.Join(dst, "link"))
	if err != nil {
		t.Fatalf("copied link is not a symlink: %v", err)
	}
	if target != "CLAUDE.md" {
		t.Errorf("symlink target = %q, expected CLAUDE.md", target)
	}
}

func TestCopyDirRefusesExistingDestination(t *testing.T) {
	src := filepath.Join(t.TempDir(), "src")
	writeFile(t, filepath.Join(src, "a.txt"), "a")

	dst := t.TempDir()
	if err := CopyDir(src, dst); err == nil {
		t.Fatal("expected error for existing destination")
	}
}

func TestCopyDirRefusesFileSource(t *testing.T) {
	src := filepath.Join(t.TempDir(), "file.txt")
	writeFile(t, src, "not a dir")

	if err := CopyDir(src, filepath.Join(t.TempDir(), "dst")); err == nil {
		t.Fatal("expected error for non-directory source")
	}
}

func TestCopyDirFiltered(t *testing.T) {
	src := filepath.Join(t.TempDir(), "src")
	writeFile(t, filepath.Join(src, "keep.json"), "{}")
	writeFile(t, filepath.Join(src, "credentials.json"), "{}")
	writeFile(t, filepath.Join(src, ".git", "HEAD"), "ref")

	dst := filepath.Join(t.TempDir(), "dst")
	err := CopyDirFiltered(src, dst, func(rel string, d fs.DirEntry) bool {
		return rel == "credentials.json" || strings.HasPrefix(rel, ".git")
	})
	if err != nil {
		t.Fatalf("CopyDirFiltered failed: %v", err)
	}

	if _, err := os.Stat(filepath.Join(dst, "keep.json")); err != nil {
		t.Errorf("keep.json missing: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dst, "credentials.json")); !os.IsNotExist(err) {
		t.Error("credentials.json should have been skipped")
	}
	if _, err := os.Stat(filepath.Join(dst, ".git")); !os.IsNotExist(err) {
		t.Error(".git subtree should have been skipped")
	}
}
