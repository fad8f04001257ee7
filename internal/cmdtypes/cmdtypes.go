// Package cmdtypes provides shared types for the cmd package and cmdutil.
// It is separate from internal/cmd so that cmdutil can depend on these types
// without importing the command tree.
package cmdtypes

import (
	"github.com/gojo-cpp/gojo/internal/config"
	"github.com/gojo-cpp/gojo/internal/toolchain"
)

// GlobalConfig holds CLI-wide state resolved once at startup and passed
// explicitly into every command constructor.
type GlobalConfig struct {
	// Settings are the tool settings loaded from ~/.gojo/config.yaml and env.
	Settings *config.Settings

	// Runner executes external tools.
	Runner toolchain.Runner

	// WorkDir is the directory commands operate in. Commands never chdir.
	WorkDir string
}

// Tools returns the configured tool binaries.
func (g *GlobalConfig) Tools() toolchain.Tools {
	if g.Settings == nil {
		return toolchain.DefaultTools()
	}
	return g.Settings.Toolchain()
}

// Jobs returns the parallel build job count.
func (g *GlobalConfig) Jobs() int {
	if g.Settings == nil {
		return toolchain.Jobs(0)
	}
	return g.Settings.BuildJobs()
}

// CMakeVersion returns the minimum CMake version written by init.
func (g *GlobalConfig) CMakeVersion() string {
	if g.Settings == nil || g.Settings.CMakeVersion == "" {
		return config.DefaultSettings().CMakeVersion
	}
	return g.Settings.CMakeVersion
}
