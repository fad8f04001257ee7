package toolchain

import (
	"runtime"
	"strconv"
	"strings"
)

// Tools holds the binary used for each external tool.
type Tools struct {
	CMake       string `json:"cmake" yaml:"cmake"`
	CTest       string `json:"ctest" yaml:"ctest"`
	ClangFormat string `json:"clang_format" yaml:"clang_format"`
	Cppcheck    string `json:"cppcheck" yaml:"cppcheck"`
	Cpplint     string `json:"cpplint" yaml:"cpplint"`
	Git         string `json:"git" yaml:"git"`
}

// DefaultTools returns the tools looked up by their usual names in PATH.
func DefaultTools() Tools {
	return Tools{
		CMake:       "cmake",
		CTest:       "ctest",
		ClangFormat: "clang-format",
		Cppcheck:    "cppcheck",
		Cpplint:     "cpplint",
		Git:         "git",
	}
}

// Jobs returns the parallel build job count. A positive override wins.
func Jobs(override int) int {
	if override > 0 {
		return override
	}
	return runtime.NumCPU()
}

// BuildMode is the CMake build type.
type BuildMode string

// Build modes.
const (
	Debug   BuildMode = "Debug"
	Release BuildMode = "Release"
)

func onOff(b bool) string {
	if b {
		return "ON"
	}
	return "OFF"
}

// ConfigureArgs returns the cmake arguments that generate the build tree.
func ConfigureArgs(mode BuildMode, tests, staticCheck bool, src, build string) []string {
	args := []string{
		"-DBUILD_TESTING=" + onOff(tests),
		"-DCMAKE_BUILD_TYPE=" + string(mode),
	}
	if staticCheck {
		args = append(args, "-DSTATIC_CHECK=ON")
	}
	return append(args, "-S", src, "-B", build)
}

// BuildArgs returns the cmake arguments that run the build step.
func BuildArgs(build string, jobs int) []string {
	return []string{"--build", build, "-j", strconv.Itoa(jobs)}
}

// CTestArgs returns the ctest arguments.
func CTestArgs() []string {
	return []string{"-V"}
}

// ClangFormatArgs returns the clang-format arguments for files.
func ClangFormatArgs(style string, inPlace, dryRun bool, extra string, files []string) []string {
	args := []string{"-style=" + style}
	if inPlace {
		args = append(args, "-i")
	}
	if dryRun {
		args = append(args, "--dry-run", "--Werror")
	}
	args = append(args, strings.Fields(extra)...)
	return append(args, files...)
}

// CppcheckArgs returns the cppcheck arguments for files.
func CppcheckArgs(std, extra string, files []string) []string {
	args := []string{
		"--enable=warning,performance,portability",
		"--force",
		"--language=c++",
		"--std=c++" + std,
	}
	args = append(args, strings.Fields(extra)...)
	return append(args, files...)
}

// CpplintArgs returns the cpplint arguments for files.
func CpplintArgs(extra string, files []string) []string {
	args := strings.Fields(extra)
	return append(args, files...)
}

// GitInitArgs returns the git arguments that create a repository.
func GitInitArgs() []string {
	return []string{"init"}
}
