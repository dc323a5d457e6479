package env

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	cenverrors "github.com/cenvtool/cenv/internal/errors"
	"github.com/cenvtool/cenv/internal/paths"
)

// trashTimestampLayout is the timestamp encoded into trash slot names.
const trashTimestampLayout = "20060102-150405"

// TrashEntry describes one deleted environment retained for recovery.
type TrashEntry struct {
	// ID is the trash slot directory name, <name>-<YYYYMMDD-HHMMSS>.
	ID string

	// Name is the environment's original name.
	Name string

	// DeletedAt is the deletion time recovered from the slot name.
	DeletedAt time.Time
}

// Trash moves environments into timestamped slots and back. Both
// directions are a single directory rename: O(1) regardless of tree size,
// and atomic per call since either the whole tree moves or nothing does.
type Trash struct {
	paths *paths.Registry
	now   func() time.Time
}

// NewTrash creates a Trash over the registry's trash root.
func NewTrash(reg *paths.Registry) *Trash {
	return &Trash{paths: reg, now: time.Now}
}

// Delete moves the named environment into the trash and returns its trash
// id. The bootstrap environment and the currently active environment are
// never deletable, the latter regardless of any override the caller holds.
func (t *Trash) Delete(name string) (string, error) {
	if name == paths.DefaultEnvName {
		return "", fmt.Errorf("environment %q: %w", name, cenverrors.ErrProtectedEnv)
	}

	current, err := Current(t.paths)
	if err != nil {
		return "", err
	}
	if current == name {
		return "", fmt.Errorf("environment %q: %w (switch away first)", name, cenverrors.ErrActiveEnv)
	}

	if !Exists(t.paths, name) {
		return "", fmt.Errorf("environment %q: %w", name, cenverrors.ErrEnvNotFound)
	}

	if err := os.MkdirAll(t.paths.TrashDir(), 0755); err != nil {
		return "", fmt.Errorf("creating trash root: %w", err)
	}

	id := name + "-" + t.now().Format(trashTimestampLayout)
	slot := t.paths.TrashPath(id)
	if _, err := os.Lstat(slot); err == nil {
		// Same name deleted twice within one second.
		return "", fmt.Errorf("trash slot %q: %w", id, cenverrors.ErrTrashSlotExists)
	}

	if err := os.Rename(t.paths.EnvPath(name), slot); err != nil {
		return "", fmt.Errorf("moving %q to trash: %w", name, err)
	}
	return id, nil
}

// Restore moves a trash slot back to its original environment name and
// returns that name.
//
// The original name is recovered by splitting the id on its last two
// hyphens. That split is ambiguous for names that themselves end in an
// 8-digit/6-digit hyphen run shaped like a timestamp; the id format is
// kept anyway for compatibility with existing trash entries.
func (t *Trash) Restore(trashID string) (string, error) {
	name, _, err := parseTrashID(trashID)
	if err != nil {
		return "", err
	}

	slot := t.paths.TrashPath(trashID)
	if info, err := os.Stat(slot); err != nil || !info.IsDir() {
		return "", fmt.Errorf("trash entry %q: %w", trashID, cenverrors.ErrTrashEntryNotFound)
	}

	if Exists(t.paths, name) {
		return "", fmt.Errorf("environment %q: %w", name, cenverrors.ErrEnvExists)
	}

	if err := os.Rename(slot, t.paths.EnvPath(name)); err != nil {
		return "", fmt.Errorf("restoring %q: %w", trashID, err)
	}
	return name, nil
}

// List returns all trash entries, newest first. Slot directories whose
// names don't parse are skipped rather than failing the listing.
func (t *Trash) List() ([]TrashEntry, error) {
	dirEntries, err := os.ReadDir(t.paths.TrashDir())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading trash root: %w", err)
	}

	var entries []TrashEntry
	for _, dirEntry := range dirEntries {
		if !dirEntry.IsDir() {
			continue
		}
		name, deletedAt, err := parseTrashID(dirEntry.Name())
		if err != nil {
			continue
		}
		entries = append(entries, TrashEntry{
			ID:        dirEntry.Name(),
			Name:      name,
			DeletedAt: deletedAt,
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		if !entries[i].DeletedAt.Equal(entries[j].DeletedAt) {
			return entries[i].DeletedAt.After(entries[j].DeletedAt)
		}
		return entries[i].ID < entries[j].ID
	})
	return entries, nil
}

// parseTrashID splits <name>-<YYYYMMDD>-<HHMMSS> into its parts.
func parseTrashID(trashID string) (name string, deletedAt time.Time, err error) {
	timeSep := strings.LastIndex(trashID, "-")
	if timeSep <= 0 {
		return "", time.Time{}, fmt.Errorf("trash id %q: %w", trashID, cenverrors.ErrInvalidTrashID)
	}
	dateSep := strings.LastIndex(trashID[:timeSep], "-")
	if dateSep <= 0 {
		return "", time.Time{}, fmt.Errorf("trash id %q: %w", trashID, cenverrors.ErrInvalidTrashID)
	}

	name = trashID[:dateSep]
	stamp := trashID[dateSep+1:]
	deletedAt, parseErr := time.Parse(trashTimestampLayout, stamp)
	if parseErr != nil {
		return "", time.Time{}, fmt.Errorf("trash id %q: %w", trashID, cenverrors.ErrInvalidTrashID)
	}
	return name, deletedAt, nil
}
