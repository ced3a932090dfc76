// Package paths resolves the data directory locations used by the
// microbiomehd CLI.
package paths

import (
	"fmt"
	"os"
	"path/filepath"
)

// CWD-relative directory names matching the microbiomeHD collection layout.
const (
	DefaultDataDirName  = "data"
	DefaultCleanDirName = "data/clean_tables"
)

// Environment variable names for directory overrides.
const (
	EnvDataDir  = "MICROBIOMEHD_DATA_DIR"
	EnvCleanDir = "MICROBIOMEHD_CLEAN_DIR"
)

// ResolveDataDir returns the base directory holding per-dataset results
// folders, following the precedence chain: flag > config value >
// MICROBIOMEHD_DATA_DIR env > $(CWD)/data.
func ResolveDataDir(flag, configValue string) (string, error) {
	return resolve(flag, configValue, EnvDataDir, DefaultDataDirName)
}

// ResolveCleanDir returns the directory holding the per-dataset clean
// tables, following the precedence chain: argument > config value >
// MICROBIOMEHD_CLEAN_DIR env > $(CWD)/data/clean_tables.
func ResolveCleanDir(arg, configValue string) (string, error) {
	return resolve(arg, configValue, EnvCleanDir, DefaultCleanDirName)
}

func resolve(flag, configValue, envVar, defaultName string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if configValue != "" {
		return filepath.Abs(configValue)
	}
	if env := os.Getenv(envVar); env != "" {
		return filepath.Abs(env)
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("resolve working directory: %w", err)
	}
	return filepath.Join(cwd, defaultName), nil
}
