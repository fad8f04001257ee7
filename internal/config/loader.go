package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/spf13/viper"

	oerrors "github.com/gojo-cpp/gojo/internal/errors"
	"github.com/gojo-cpp/gojo/internal/output"
)

// Environment variable prefix for gojo settings.
const envPrefix = "GOJO"

// Loader merges defaults, the settings file and environment variables.
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a new settings loader.
func NewLoader() *Loader {
	v := viper.New()

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	defaults := DefaultSettings()
	v.SetDefault("tools.cmake", defaults.Tools.CMake)
	v.SetDefault("tools.ctest", defaults.Tools.CTest)
	v.SetDefault("tools.clang_format", defaults.Tools.ClangFormat)
	v.SetDefault("tools.cppcheck", defaults.Tools.Cppcheck)
	v.SetDefault("tools.cpplint", defaults.Tools.Cpplint)
	v.SetDefault("tools.git", defaults.Tools.Git)
	v.SetDefault("jobs", defaults.Jobs)
	v.SetDefault("cmake_version", defaults.CMakeVersion)
	v.SetDefault("log.verbose", false)

	// GOJO_VERBOSE is the short form of GOJO_LOG_VERBOSE.
	_ = v.BindEnv("log.verbose", "GOJO_LOG_VERBOSE", "GOJO_VERBOSE")
	_ = v.BindEnv("log.timestamps", "GOJO_LOG_TIMESTAMPS")

	return &Loader{v: v}
}

// Load reads settings from configFile, or from GetConfigFile when empty.
// A missing file is not an error. Environment variables take precedence
// over file values.
func (l *Loader) Load(configFile string) (*Settings, error) {
	if configFile == "" {
		var err error
		configFile, err = GetConfigFile()
		if err != nil {
			return nil, fmt.Errorf("getting config file path: %w", err)
		}
	}

	expandedPath, err := ExpandPath(configFile)
	if err != nil {
		return nil, fmt.Errorf("expanding config path: %w", err)
	}

	l.v.SetConfigFile(expandedPath)
	l.v.SetConfigType("yaml")

	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, &oerrors.DetailError{
				Type:     "invalid settings",
				Message:  err.Error(),
				Location: expandedPath,
				Cause:    oerrors.ErrValidation,
			}
		}
		output.Debug("no settings file, using defaults", "path", expandedPath)
	}

	var s Settings
	if err := l.v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("unmarshaling settings: %w", err)
	}

	if err := s.Validate(); err != nil {
		return nil, &oerrors.DetailError{
			Type:     "invalid settings",
			Message:  err.Error(),
			Location: expandedPath,
			Cause:    oerrors.ErrValidation,
		}
	}

	return &s, nil
}

// Validate checks values that cannot be used as given.
func (s *Settings) Validate() error {
	if s.Jobs < 0 {
		return fmt.Errorf("jobs must not be negative, got %d", s.Jobs)
	}

	tools := []struct{ key, value string }{
		{"tools.cmake", s.Tools.CMake},
		{"tools.ctest", s.Tools.CTest},
		{"tools.clang_format", s.Tools.ClangFormat},
		{"tools.cppcheck", s.Tools.Cppcheck},
		{"tools.cpplint", s.Tools.Cpplint},
		{"tools.git", s.Tools.Git},
	}
	for _, tool := range tools {
		if strings.TrimSpace(tool.value) == "" {
			return fmt.Errorf("%s must not be empty", tool.key)
		}
	}
	return nil
}
