package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cenvtool/cenv/internal/paths"
)

func TestInitCommand(t *testing.T) {
	reg := setupTestHome(t)

	// Seed an existing ~/.claude to migrate.
	if err := os.MkdirAll(reg.ClaudeDir(), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(reg.ClaudeDir(), "settings.json"), []byte("{}"), 0644); err != nil {
		t.Fatal(err)
	}

	output, err := runCommand(t, "init")
	if err != nil {
		t.Fatalf("init failed: %v\noutput: %s", err, output)
	}
	if !strings.Contains(output, "cenv initialized") {
		t.Errorf("output missing success message: %s", output)
	}

	if !reg.IsInitialized() {
		t.Error("environments root not created")
	}
	if _, err := os.Stat(filepath.Join(reg.EnvPath(paths.DefaultEnvName), "settings.json")); err != nil {
		t.Errorf("settings not migrated into default environment: %v", err)
	}

	// Second init reports already initialized without failing the command.
	output, err = runCommand(t, "init")
	if err != nil {
		t.Fatalf("second init errored: %v", err)
	}
	if !strings.Contains(output, "already initialized") {
		t.Errorf("output missing already-initialized message: %s", output)
	}
}

func TestCreateUseListFlow(t *testing.T) {
	reg := setupTestHome(t)

	if _, err := runCommand(t, "init"); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	output, err := runCommand(t, "create", "work")
	if err != nil {
		t.Fatalf("create failed: %v\noutput: %s", err, output)
	}
	if !strings.Contains(output, "work") || !strings.Contains(output, "created") {
		t.Errorf("output missing creation message: %s", output)
	}

	// --force keeps the flow deterministic on machines where a Claude
	// process happens to be running.
	output, err = runCommand(t, "use", "work", "--force")
	if err != nil {
		t.Fatalf("use failed: %v\noutput: %s", err, output)
	}
	if target, err := os.Readlink(reg.ClaudeDir()); err != nil || target != reg.EnvPath("work") {
		t.Errorf("pointer = %q, %v; expected %q", target, err, reg.EnvPath("work"))
	}

	output, err = runCommand(t, "list")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if !strings.Contains(output, "work") || !strings.Contains(output, "default") {
		t.Errorf("list missing environments: %s", output)
	}

	output, err = runCommand(t, "current")
	if err != nil {
		t.Fatalf("current failed: %v", err)
	}
	if !strings.Contains(output, "work") {
		t.Errorf("current = %s, expected work", output)
	}
}

func TestDeleteAndRestoreFlow(t *testing.T) {
	reg := setupTestHome(t)

	if _, err := runCommand(t, "init"); err != nil {
		t.Fatalf("init failed: %v", err)
	}
	if _, err := runCommand(t, "create", "scratch"); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	output, err := runCommand(t, "delete", "scratch")
	if err != nil {
		t.Fatalf("delete failed: %v\noutput: %s", err, output)
	}
	if !strings.Contains(output, "moved to trash") {
		t.Errorf("output missing trash message: %s", output)
	}
	if _, err := os.Stat(reg.EnvPath("scratch")); !os.IsNotExist(err) {
		t.Error("environment still present after delete")
	}

	// The trash listing carries the id we need for restore.
	output, err = runCommand(t, "trash")
	if err != nil {
		t.Fatalf("trash failed: %v", err)
	}
	var trashID string
	for _, line := range strings.Split(output, "\n") {
		if strings.HasPrefix(line, "scratch-") {
			trashID = strings.Fields(line)[0]
			break
		}
	}
	if trashID == "" {
		t.Fatalf("trash id not found in output: %s", output)
	}

	output, err = runCommand(t, "restore", trashID)
	if err != nil {
		t.Fatalf("restore failed: %v\noutput: %s", err, output)
	}
	if !strings.Contains(output, "restored") {
		t.Errorf("output missing restore message: %s", output)
	}
	if info, err := os.Stat(reg.EnvPath("scratch")); err != nil || !info.IsDir() {
		t.Errorf("environment not restored: %v", err)
	}
}

func TestDeleteProtectedEnvironment(t *testing.T) {
	setupTestHome(t)

	if _, err := runCommand(t, "init"); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	output, err := runCommand(t, "delete", "default")
	if err != nil {
		t.Fatalf("delete errored: %v", err)
	}
	if !strings.Contains(output, "protected") {
		t.Errorf("output missing protection message: %s", output)
	}
}

func TestUseRejectsInvalidName(t *testing.T) {
	setupTestHome(t)

	if _, err := runCommand(t, "use", "../escape"); err == nil {
		t.Fatal("expected use to fail for invalid name")
	}
}

func TestPublishMissingEnvironment(t *testing.T) {
	setupTestHome(t)

	if _, err := runCommand(t, "init"); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	output, err := runCommand(t, "publish", "ghost", "--repo", "https://github.com/owner/repo")
	if err != nil {
		t.Fatalf("publish errored: %v\noutput: %s", err, output)
	}
	if !strings.Contains(output, "does not exist") {
		t.Errorf("output missing not-found message: %s", output)
	}
}

func TestPublishRejectsInvalidRepoURL(t *testing.T) {
	setupTestHome(t)

	if _, err := runCommand(t, "init"); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	if _, err := runCommand(t, "publish", "default", "--repo", "https://example.com/owner/repo"); err == nil {
		t.Fatal("expected publish to fail for non-GitHub URL")
	}
}

func TestCreateBeforeInit(t *testing.T) {
	setupTestHome(t)

	output, err := runCommand(t, "create", "work")
	if err != nil {
		t.Fatalf("create errored: %v", err)
	}
	if !strings.Contains(output, "not been initialized") {
		t.Errorf("output missing init hint: %s", output)
	}
}
