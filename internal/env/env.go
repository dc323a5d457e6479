package env

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	cenverrors "github.com/cenvtool/cenv/internal/errors"
	"github.com/cenvtool/cenv/internal/github"
	"github.com/cenvtool/cenv/internal/paths"
	"github.com/cenvtool/cenv/internal/portability"
	"github.com/cenvtool/cenv/internal/utils"
	"github.com/google/uuid"
)

// List returns the names of all environments, sorted. Hidden directories
// (the trash, for one) are not environments.
func List(reg *paths.Registry) ([]string, error) {
	entries, err := os.ReadDir(reg.EnvsDir())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading environments root: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() && entry.Name()[0] != '.' {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

// Current returns the name of the active environment, or "" when the
// pointer is absent or targets something outside the environments root.
func Current(reg *paths.Registry) (string, error) {
	target, err := os.Readlink(reg.ClaudeDir())
	if err != nil {
		// Absent pointer, or a real directory predating init. Either way
		// no environment is active.
		return "", nil
	}

	if !filepath.IsAbs(target) {
		target = filepath.Join(filepath.Dir(reg.ClaudeDir()), target)
	}
	if filepath.Dir(target) != reg.EnvsDir() {
		return "", nil
	}
	return filepath.Base(target), nil
}

// Exists reports whether a named environment directory is present.
func Exists(reg *paths.Registry, name string) bool {
	info, err := os.Stat(reg.EnvPath(name))
	return err == nil && info.IsDir()
}

// CreateOptions configures environment creation.
type CreateOptions struct {
	// Name is the new environment's name, already validated.
	Name string

	// Source is the environment to copy from. Defaults to the bootstrap
	// environment. Ignored when FromRepo is set.
	Source string

	// FromRepo is a GitHub URL to clone instead of copying locally.
	FromRepo string

	// GitTimeout bounds the clone when FromRepo is set.
	GitTimeout time.Duration
}

// Create makes a new environment, either by copying an existing one or by
// cloning a GitHub repository. A cloned environment has its placeholders
// expanded to this machine's paths before it is moved into place, so a
// half-imported tree is never observable under its final name.
func Create(ctx context.Context, reg *paths.Registry, opts CreateOptions) error {
	if !reg.IsInitialized() {
		return fmt.Errorf("%w (run `cenv init` first)", cenverrors.ErrNotInitialized)
	}
	if Exists(reg, opts.Name) {
		return fmt.Errorf("environment %q: %w", opts.Name, cenverrors.ErrEnvExists)
	}

	dest := reg.EnvPath(opts.Name)

	if opts.FromRepo != "" {
		return createFromRepo(ctx, reg, opts, dest)
	}

	source := opts.Source
	if source == "" {
		source = paths.DefaultEnvName
	}
	if !Exists(reg, source) {
		return fmt.Errorf("source environment %q: %w", source, cenverrors.ErrEnvNotFound)
	}

	if err := utils.CopyDir(reg.EnvPath(source), dest); err != nil {
		return fmt.Errorf("copying environment %q to %q: %w", source, opts.Name, err)
	}
	return nil
}

func createFromRepo(ctx context.Context, reg *paths.Registry, opts CreateOptions, dest string) error {
	// Clone and import in a scratch directory beside the destination so the
	// final step is a single rename on one filesystem.
	scratch := filepath.Join(reg.EnvsDir(), ".tmp-"+uuid.NewString())
	defer os.RemoveAll(scratch)

	if err := github.Clone(ctx, opts.FromRepo, scratch, opts.GitTimeout); err != nil {
		return err
	}

	mapper := portability.NewMapperFromRegistry(reg)
	if err := mapper.ImportDir(scratch); err != nil {
		return fmt.Errorf("expanding placeholders in clone: %w", err)
	}

	if err := os.Rename(scratch, dest); err != nil {
		return fmt.Errorf("moving clone into place: %w", err)
	}
	return nil
}
