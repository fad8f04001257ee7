// Package config loads gojo's tool settings.
//
// Tool settings describe the machine (which binaries to call, how many build
// jobs to run) and are separate from the per-project .gojo file.
package config

import (
	"github.com/gojo-cpp/gojo/internal/toolchain"
)

// ToolsConfig names the binary used for each external tool.
type ToolsConfig struct {
	// Env: GOJO_TOOLS_CMAKE, Default: cmake
	CMake string `mapstructure:"cmake" json:"cmake" yaml:"cmake"`

	// Env: GOJO_TOOLS_CTEST, Default: ctest
	CTest string `mapstructure:"ctest" json:"ctest" yaml:"ctest"`

	// Env: GOJO_TOOLS_CLANG_FORMAT, Default: clang-format
	ClangFormat string `mapstructure:"clang_format" json:"clang_format" yaml:"clang_format"`

	// Env: GOJO_TOOLS_CPPCHECK, Default: cppcheck
	Cppcheck string `mapstructure:"cppcheck" json:"cppcheck" yaml:"cppcheck"`

	// Env: GOJO_TOOLS_CPPLINT, Default: cpplint
	Cpplint string `mapstructure:"cpplint" json:"cpplint" yaml:"cpplint"`

	// Env: GOJO_TOOLS_GIT, Default: git
	Git string `mapstructure:"git" json:"git" yaml:"git"`
}

// LogConfig contains logging-related settings.
type LogConfig struct {
	// Verbose enables debug logging.
	// Env: GOJO_LOG_VERBOSE or GOJO_VERBOSE
	Verbose bool `mapstructure:"verbose" json:"verbose" yaml:"verbose"`

	// Timestamps controls whether timestamps are shown in log output.
	// Default: false.
	Timestamps *bool `mapstructure:"timestamps" json:"timestamps,omitempty" yaml:"timestamps,omitempty"`
}

// Settings represents the gojo tool settings.
// Loaded from ~/.gojo/config.yaml and GOJO_* environment variables.
type Settings struct {
	Tools ToolsConfig `mapstructure:"tools" json:"tools" yaml:"tools"`

	// Jobs overrides the parallel build job count. 0 means one per CPU.
	// Env: GOJO_JOBS
	Jobs int `mapstructure:"jobs" json:"jobs" yaml:"jobs"`

	// CMakeVersion is written to cmake_minimum_required by gojo init.
	// Env: GOJO_CMAKE_VERSION
	CMakeVersion string `mapstructure:"cmake_version" json:"cmake_version" yaml:"cmake_version"`

	Log LogConfig `mapstructure:"log" json:"log" yaml:"log"`
}

// DefaultSettings returns Settings with all default values populated.
func DefaultSettings() *Settings {
	tools := toolchain.DefaultTools()
	return &Settings{
		Tools: ToolsConfig{
			CMake:       tools.CMake,
			CTest:       tools.CTest,
			ClangFormat: tools.ClangFormat,
			Cppcheck:    tools.Cppcheck,
			Cpplint:     tools.Cpplint,
			Git:         tools.Git,
		},
		CMakeVersion: "3.28",
	}
}

// Toolchain returns the tool binaries as a toolchain.Tools.
func (s *Settings) Toolchain() toolchain.Tools {
	return toolchain.Tools{
		CMake:       s.Tools.CMake,
		CTest:       s.Tools.CTest,
		ClangFormat: s.Tools.ClangFormat,
		Cppcheck:    s.Tools.Cppcheck,
		Cpplint:     s.Tools.Cpplint,
		Git:         s.Tools.Git,
	}
}

// BuildJobs returns the -j value for cmake --build.
func (s *Settings) BuildJobs() int {
	return toolchain.Jobs(s.Jobs)
}
