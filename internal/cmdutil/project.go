package cmdutil

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	oerrors "github.com/gojo-cpp/gojo/internal/errors"
	"github.com/gojo-cpp/gojo/internal/output"
	"github.com/gojo-cpp/gojo/internal/project"
)

// DepsDirName is the dependency cache CMake's FetchContent keeps in the build tree.
const DepsDirName = "_deps"

// LoadProject loads the project config for dir, falling back to defaults.
func LoadProject(dir string) (*project.Config, error) {
	cfg, err := project.Load(dir)
	if err != nil {
		return nil, &oerrors.DetailError{
			Type:     "invalid project config",
			Message:  err.Error(),
			Location: project.Path(dir),
			Hint:     "fix or delete the file; gojo will fall back to defaults",
			Cause:    err,
		}
	}
	return cfg, nil
}

// EnsureBuildDir creates the build directory if it is missing.
func EnsureBuildDir(cfg *project.Config) error {
	if err := os.MkdirAll(cfg.BuildDir, 0o755); err != nil {
		return fmt.Errorf("creating build directory %s: %w", cfg.BuildDir, err)
	}
	return nil
}

// RequireBuildDir fails with a not-found error when the build directory is missing.
func RequireBuildDir(cfg *project.Config) error {
	info, err := os.Stat(cfg.BuildDir)
	if err != nil || !info.IsDir() {
		return oerrors.NewNotFoundError("no build directory discovered for this project",
			cfg.BuildDir, "run 'gojo build' first")
	}
	return nil
}

// CleanBuildDir removes and recreates the build directory. A _deps directory
// inside it is moved to a temporary sibling and restored afterwards.
func CleanBuildDir(buildDir string) error {
	deps := filepath.Join(buildDir, DepsDirName)

	_, err := os.Stat(deps)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return recreate(buildDir)
	case err != nil:
		return fmt.Errorf("inspecting %s: %w", deps, err)
	}

	stashDir, err := os.MkdirTemp(filepath.Dir(buildDir), ".gojo-deps-")
	if err != nil {
		return fmt.Errorf("creating temporary directory: %w", err)
	}
	stash := filepath.Join(stashDir, DepsDirName)

	if err := os.Rename(deps, stash); err != nil {
		_ = os.Remove(stashDir)
		return fmt.Errorf("moving %s aside: %w", deps, err)
	}
	output.Debug("stashed dependency cache", "from", deps, "to", stash)

	if err := recreate(buildDir); err != nil {
		return fmt.Errorf("%w (dependency cache kept in %s)", err, stash)
	}

	if err := os.Rename(stash, deps); err != nil {
		return fmt.Errorf("restoring %s from %s: %w", deps, stash, err)
	}
	return os.Remove(stashDir)
}

func recreate(dir string) error {
	if err := os.RemoveAll(dir); err != nil {
		return fmt.Errorf("removing %s: %w", dir, err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}
	return nil
}
