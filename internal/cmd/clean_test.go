package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gojo-cpp/gojo/internal/cmdutil"
	"github.com/gojo-cpp/gojo/internal/testutil"
)

func TestClean_KeepsDependencyCache(t *testing.T) {
	env := newTestEnv(t)
	root := env.initProject(t, "demo")
	buildDir := filepath.Join(root, "build")

	fetched := testutil.WriteFile(t, buildDir, cmdutil.DepsDirName+"/googletest-src/README.md", "gtest")
	testutil.WriteFile(t, buildDir, "CMakeCache.txt", "cache")
	testutil.WriteFile(t, buildDir, "CMakeFiles/Makefile.cmake", "rules")

	out, err := env.execute(t, "clean")
	require.NoError(t, err)
	assert.Contains(t, out, "Cleaned")

	entries, err := os.ReadDir(buildDir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, cmdutil.DepsDirName, entries[0].Name())

	data, err := os.ReadFile(fetched)
	require.NoError(t, err)
	assert.Equal(t, "gtest", string(data))

	siblings, err := os.ReadDir(root)
	require.NoError(t, err)
	for _, s := range siblings {
		assert.NotContains(t, s.Name(), ".gojo-deps-")
	}
	assert.Empty(t, env.runner.Calls())
}

func TestClean_MissingBuildDirectory(t *testing.T) {
	env := newTestEnv(t)
	root := env.initProject(t, "demo")
	require.NoError(t, os.RemoveAll(filepath.Join(root, "build")))

	_, err := env.execute(t, "clean")
	require.NoError(t, err)
	assert.DirExists(t, filepath.Join(root, "build"))
}
