// Package templates renders the files gojo init writes into a new C++ project.
package templates

// Kind identifies one generated file.
type Kind string

// Generated file kinds.
const (
	RootBuildDescriptor Kind = "root_cmake"
	LibBuildDescriptor  Kind = "lib_cmake"
	TestBuildDescriptor Kind = "test_cmake"
	MainSource          Kind = "main_src"
	LibSource           Kind = "lib_src"
	LibHeader           Kind = "lib_hdr"
	TestSource          Kind = "test_src"
	GitIgnore           Kind = "gitignore"
	ClangTidy           Kind = "clang_tidy"
	Readme              Kind = "readme"
)

// DefaultCMakeVersion is written to cmake_minimum_required.
const DefaultCMakeVersion = "3.28"

// Data holds the parameters substituted into templates.
type Data struct {
	// Name is the project and executable name.
	Name string

	// SrcExt and HdrExt are file suffixes without the dot.
	SrcExt string
	HdrExt string

	// Std is the C++ standard token, e.g. "20".
	Std string

	// CMakeVersion is the minimum CMake version.
	CMakeVersion string

	// Compiler is an optional CMAKE_CXX_COMPILER value.
	Compiler string

	// Description is an optional one-line project description.
	Description string

	// BuildDirName is the build directory relative to the project root.
	BuildDirName string
}

// File describes where a kind is written, relative to the project root.
type File struct {
	Kind        Kind
	Path        string
	Description string
	// Test marks files that are skipped by init --no-test.
	Test bool
}

// Layout returns the generated files in write order.
func Layout(data Data) []File {
	return []File{
		{Kind: RootBuildDescriptor, Path: "CMakeLists.txt", Description: "Root build descriptor"},
		{Kind: MainSource, Path: "src/main." + data.SrcExt, Description: "Executable entry point"},
		{Kind: LibSource, Path: "src/lib/hello_world." + data.SrcExt, Description: "Library source"},
		{Kind: LibHeader, Path: "src/lib/hello_world." + data.HdrExt, Description: "Library header"},
		{Kind: LibBuildDescriptor, Path: "src/lib/CMakeLists.txt", Description: "Library build descriptor"},
		{Kind: Readme, Path: "README.md", Description: "Project readme"},
		{Kind: ClangTidy, Path: ".clang-tidy", Description: "clang-tidy checks"},
		{Kind: GitIgnore, Path: ".gitignore", Description: "Git ignore rules"},
		{Kind: TestSource, Path: "test/hello_world_test." + data.SrcExt, Description: "Unit test", Test: true},
		{Kind: TestBuildDescriptor, Path: "test/CMakeLists.txt", Description: "Test build descriptor", Test: true},
	}
}
