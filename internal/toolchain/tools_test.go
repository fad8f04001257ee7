package toolchain

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigureArgs(t *testing.T) {
	tests := []struct {
		name        string
		mode        BuildMode
		tests       bool
		staticCheck bool
		want        []string
	}{
		{
			name: "debug without tests",
			mode: Debug,
			want: []string{"-DBUILD_TESTING=OFF", "-DCMAKE_BUILD_TYPE=Debug", "-S", "/p", "-B", "/p/build"},
		},
		{
			name:  "release with tests",
			mode:  Release,
			tests: true,
			want:  []string{"-DBUILD_TESTING=ON", "-DCMAKE_BUILD_TYPE=Release", "-S", "/p", "-B", "/p/build"},
		},
		{
			name:        "static check",
			mode:        Release,
			tests:       true,
			staticCheck: true,
			want: []string{
				"-DBUILD_TESTING=ON", "-DCMAKE_BUILD_TYPE=Release", "-DSTATIC_CHECK=ON",
				"-S", "/p", "-B", "/p/build",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ConfigureArgs(tt.mode, tt.tests, tt.staticCheck, "/p", "/p/build")
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuildArgs(t *testing.T) {
	assert.Equal(t, []string{"--build", "/p/build", "-j", "8"}, BuildArgs("/p/build", 8))
}

func TestClangFormatArgs(t *testing.T) {
	files := []string{"a.cc", "b.h"}

	tests := []struct {
		name    string
		style   string
		inPlace bool
		dryRun  bool
		extra   string
		want    []string
	}{
		{"plain", "google", false, false, "", []string{"-style=google", "a.cc", "b.h"}},
		{"in place", "llvm", true, false, "", []string{"-style=llvm", "-i", "a.cc", "b.h"}},
		{"dry run", "file", false, true, "", []string{"-style=file", "--dry-run", "--Werror", "a.cc", "b.h"}},
		{"extra args", "google", true, false, " --verbose  --sort-includes ", []string{"-style=google", "-i", "--verbose", "--sort-includes", "a.cc", "b.h"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClangFormatArgs(tt.style, tt.inPlace, tt.dryRun, tt.extra, files))
		})
	}
}

func TestCppcheckArgs(t *testing.T) {
	got := CppcheckArgs("17", "--inline-suppr", []string{"a.cc"})
	assert.Equal(t, []string{
		"--enable=warning,performance,portability",
		"--force",
		"--language=c++",
		"--std=c++17",
		"--inline-suppr",
		"a.cc",
	}, got)
}

func TestCpplintArgs(t *testing.T) {
	assert.Equal(t, []string{"a.cc"}, CpplintArgs("", []string{"a.cc"}))
	assert.Equal(t, []string{"--quiet", "a.cc"}, CpplintArgs("--quiet", []string{"a.cc"}))
}

func TestGitInitArgs(t *testing.T) {
	assert.Equal(t, []string{"init"}, GitInitArgs())
}

func TestJobs(t *testing.T) {
	assert.Equal(t, runtime.NumCPU(), Jobs(0))
	assert.Equal(t, runtime.NumCPU(), Jobs(-1))
	assert.Equal(t, 3, Jobs(3))
}

func TestDefaultTools(t *testing.T) {
	tools := DefaultTools()
	assert.Equal(t, "cmake", tools.CMake)
	assert.Equal(t, "clang-format", tools.ClangFormat)
	assert.Equal(t, "git", tools.Git)
}
