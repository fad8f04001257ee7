package cmd

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/gojo-cpp/gojo/internal/errors"
	"github.com/gojo-cpp/gojo/internal/project"
	"github.com/gojo-cpp/gojo/internal/testutil"
	"github.com/gojo-cpp/gojo/internal/toolchain"
)

func writeExecutable(t *testing.T, buildDir, name string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		name += ".exe"
	}
	exe := testutil.WriteFile(t, buildDir, name, "#!/bin/sh\n")
	require.NoError(t, os.Chmod(exe, 0o755))
	return exe
}

func TestRun_EntryPoint(t *testing.T) {
	env := newTestEnv(t)
	root := env.initProject(t, "demo")
	exe := writeExecutable(t, filepath.Join(root, "build"), "demo")

	_, err := env.execute(t, "run")
	require.NoError(t, err)

	calls := env.runner.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, exe, calls[0].Name)
	assert.Empty(t, calls[0].Args)
	assert.Equal(t, root, calls[0].Dir)
}

func TestRun_EntryPointForwardsFlags(t *testing.T) {
	env := newTestEnv(t)
	root := env.initProject(t, "demo")
	exe := writeExecutable(t, filepath.Join(root, "build"), "demo")

	_, err := env.execute(t, "run", "--verbose", "input.txt")
	require.NoError(t, err)

	calls := env.runner.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, exe, calls[0].Name)
	assert.Equal(t, []string{"--verbose", "input.txt"}, calls[0].Args)
}

func TestRun_ExplicitProgram(t *testing.T) {
	env := newTestEnv(t)
	root := env.initProject(t, "demo")

	_, err := env.execute(t, "run", "./build/tool", "a", "--b")
	require.NoError(t, err)

	calls := env.runner.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, "./build/tool", calls[0].Name)
	assert.Equal(t, []string{"a", "--b"}, calls[0].Args)
	assert.Equal(t, root, calls[0].Dir)
}

func TestRun_ExplicitProgramFromSubdirectory(t *testing.T) {
	env := newTestEnv(t)
	root := env.initProject(t, "demo")

	// A sidecar in a subdirectory still points at the project root.
	sidecar, err := os.ReadFile(project.Path(root))
	require.NoError(t, err)
	sub := testutil.WriteFile(t, root, "tools/"+project.FileName, string(sidecar))
	env.cfg.WorkDir = filepath.Dir(sub)

	_, err = env.execute(t, "run", "./gen.sh", "out")
	require.NoError(t, err)

	calls := env.runner.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, "./gen.sh", calls[0].Name)
	assert.Equal(t, filepath.Join(root, "tools"), calls[0].Dir)
}

func TestRun_NoBuildDirectory(t *testing.T) {
	env := newTestEnv(t)
	root := env.initProject(t, "demo")
	require.NoError(t, os.RemoveAll(filepath.Join(root, "build")))

	_, err := env.execute(t, "run")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no build directory discovered for this project")
	assert.Equal(t, oerrors.ExitNotFound, oerrors.ExitCodeFromError(err))
	assert.Empty(t, env.runner.Calls())
}

func TestRun_MissingExecutable(t *testing.T) {
	env := newTestEnv(t)
	env.initProject(t, "demo")

	_, err := env.execute(t, "run")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no executable target found")
	assert.Equal(t, oerrors.ExitNotFound, oerrors.ExitCodeFromError(err))
	assert.Empty(t, env.runner.Calls())
}

func TestRun_ProgramExitStatus(t *testing.T) {
	env := newTestEnv(t)
	root := env.initProject(t, "demo")
	exe := writeExecutable(t, filepath.Join(root, "build"), "demo")
	env.runner.Results = map[string]error{
		exe: &toolchain.ToolError{Tool: exe, ExitCode: 3},
	}

	_, err := env.execute(t, "run")
	require.Error(t, err)
	assert.Equal(t, oerrors.ExitToolFailure, oerrors.ExitCodeFromError(err))
}
