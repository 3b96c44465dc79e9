// Package paths resolves the configuration and export directories.
package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

// appDirName is the per-user directory name under the platform roots.
const appDirName = "rmtable"

// DefaultExportDirName is the CWD-relative export directory used when no
// override is set.
const DefaultExportDirName = "rmtable-export"

// Environment variable names for directory overrides.
const (
	EnvConfigDir = "RMTABLE_CONFIG_DIR"
	EnvExportDir = "RMTABLE_EXPORT_DIR"
)

// platformDir holds platform-detection functions that can be overridden in tests.
var platformDir = struct {
	homeDir       func() (string, error)
	userConfigDir func() (string, error)
}{
	homeDir:       os.UserHomeDir,
	userConfigDir: os.UserConfigDir,
}

// DefaultConfigDir returns the platform-specific default configuration directory.
//
// Linux:   $XDG_CONFIG_HOME/rmtable (fallback ~/.config/rmtable)
// macOS:   ~/Library/Application Support/rmtable
// Windows: %APPDATA%/rmtable
func DefaultConfigDir() (string, error) {
	if runtime.GOOS == "linux" {
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, appDirName), nil
		}
		home, err := platformDir.homeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".config", appDirName), nil
	}
	dir, err := platformDir.userConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, appDirName), nil
}

// ResolveConfigDir returns the configuration directory following the
// precedence chain: flag > RMTABLE_CONFIG_DIR env > DefaultConfigDir().
func ResolveConfigDir(flag string) (string, error) {
	if p := firstSet(flag, os.Getenv(EnvConfigDir)); p != "" {
		return filepath.Abs(p)
	}
	return DefaultConfigDir()
}

// ResolveExportDir returns the directory that relative export paths are
// placed in, following the precedence chain:
// flag > configValue > RMTABLE_EXPORT_DIR env > $(CWD)/rmtable-export.
func ResolveExportDir(flag, configValue string) (string, error) {
	if p := firstSet(flag, configValue, os.Getenv(EnvExportDir)); p != "" {
		return filepath.Abs(p)
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(cwd, DefaultExportDirName), nil
}

// ExportPath places name inside dir unless name is already absolute.
func ExportPath(dir, name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(dir, name)
}

func firstSet(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
