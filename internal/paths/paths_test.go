package paths

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRegistryLocations(t *testing.T) {
	r := New("/home/alex")

	tests := []struct {
		name     string
		got      string
		expected string
	}{
		{"EnvsDir", r.EnvsDir(), "/home/alex/.claude-envs"},
		{"EnvPath", r.EnvPath("work"), "/home/alex/.claude-envs/work"},
		{"ClaudeDir", r.ClaudeDir(), "/home/alex/.claude"},
		{"TempLinkPath", r.TempLinkPath(), "/home/alex/.claude.tmp"},
		{"BackupPath", r.BackupPath(), "/home/alex/.claude.backup"},
		{"TrashDir", r.TrashDir(), "/home/alex/.claude-envs/.trash"},
		{"TrashPath", r.TrashPath("work-20260101-120000"), "/home/alex/.claude-envs/.trash/work-20260101-120000"},
		{"LockPath", r.LockPath(), "/home/alex/cenv-init.lock"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.got != filepath.FromSlash(tc.expected) {
				t.Errorf("got %q, expected %q", tc.got, tc.expected)
			}
		})
	}
}

func TestNewWithNames(t *testing.T) {
	t.Run("Overrides", func(t *testing.T) {
		r := NewWithNames("/h", ".bin", "setup.lock")
		if got := r.TrashDir(); got != filepath.FromSlash("/h/.claude-envs/.bin") {
			t.Errorf("TrashDir = %q", got)
		}
		if got := r.LockPath(); got != filepath.FromSlash("/h/setup.lock") {
			t.Errorf("LockPath = %q", got)
		}
	})

	t.Run("EmptyFallsBackToDefaults", func(t *testing.T) {
		r := NewWithNames("/h", "", "")
		if got := r.TrashDir(); got != filepath.FromSlash("/h/.claude-envs/.trash") {
			t.Errorf("TrashDir = %q", got)
		}
		if got := r.LockPath(); got != filepath.FromSlash("/h/cenv-init.lock") {
			t.Errorf("LockPath = %q", got)
		}
	})
}

func TestIsInitialized(t *testing.T) {
	home := t.TempDir()
	r := New(home)

	if r.IsInitialized() {
		t.Fatal("expected uninitialized home to report false")
	}

	if err := os.MkdirAll(r.EnvsDir(), 0755); err != nil {
		t.Fatalf("creating envs dir: %v", err)
	}
	if !r.IsInitialized() {
		t.Fatal("expected initialized home to report true")
	}
}

func TestIsInitializedIgnoresPlainFile(t *testing.T) {
	home := t.TempDir()
	r := New(home)

	if err := os.WriteFile(r.EnvsDir(), []byte("not a dir"), 0644); err != nil {
		t.Fatalf("writing file: %v", err)
	}
	if r.IsInitialized() {
		t.Fatal("a plain file at the envs root must not count as initialized")
	}
}
