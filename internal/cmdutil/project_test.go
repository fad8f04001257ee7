package cmdutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/gojo-cpp/gojo/internal/errors"
	"github.com/gojo-cpp/gojo/internal/project"
)

func TestLoadProject(t *testing.T) {
	t.Run("defaults when missing", func(t *testing.T) {
		dir := t.TempDir()
		cfg, err := LoadProject(dir)
		require.NoError(t, err)
		assert.Equal(t, project.Default(dir), cfg)
	})

	t.Run("malformed is an error", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(project.Path(dir), []byte("name: x\n"), 0o644))
		_, err := LoadProject(dir)
		require.Error(t, err)
		assert.ErrorIs(t, err, project.ErrMalformed)
	})
}

func TestRequireBuildDir(t *testing.T) {
	cfg := project.Default(t.TempDir())

	err := RequireBuildDir(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no build directory discovered")
	assert.Equal(t, oerrors.ExitNotFound, oerrors.ExitCodeFromError(err))

	require.NoError(t, EnsureBuildDir(cfg))
	assert.NoError(t, RequireBuildDir(cfg))
	assert.DirExists(t, cfg.BuildDir)
}

func TestCleanBuildDir(t *testing.T) {
	t.Run("preserves deps", func(t *testing.T) {
		root := t.TempDir()
		build := filepath.Join(root, "build")
		depFile := filepath.Join(build, DepsDirName, "googletest-src", "CMakeLists.txt")
		require.NoError(t, os.MkdirAll(filepath.Dir(depFile), 0o755))
		require.NoError(t, os.WriteFile(depFile, []byte("dep"), 0o644))
		require.NoError(t, os.WriteFile(filepath.Join(build, "CMakeCache.txt"), []byte("cache"), 0o644))

		require.NoError(t, CleanBuildDir(build))

		content, err := os.ReadFile(depFile)
		require.NoError(t, err)
		assert.Equal(t, "dep", string(content))
		assert.NoFileExists(t, filepath.Join(build, "CMakeCache.txt"))

		entries, err := os.ReadDir(root)
		require.NoError(t, err)
		require.Len(t, entries, 1, "temporary stash must be removed")
		assert.Equal(t, "build", entries[0].Name())
	})

	t.Run("without deps", func(t *testing.T) {
		build := filepath.Join(t.TempDir(), "build")
		require.NoError(t, os.MkdirAll(build, 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(build, "a.o"), []byte("x"), 0o644))

		require.NoError(t, CleanBuildDir(build))
		assert.DirExists(t, build)
		assert.NoFileExists(t, filepath.Join(build, "a.o"))
	})

	t.Run("missing build dir is created", func(t *testing.T) {
		build := filepath.Join(t.TempDir(), "build")
		require.NoError(t, CleanBuildDir(build))
		assert.DirExists(t, build)
	})
}
