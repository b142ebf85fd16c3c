// Package paths resolves the configuration directory and the fleet file location.
package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

// appDirName is the per-user directory name under the platform config root.
const appDirName = "bikerental"

// DefaultFleetFileName is looked up in the config directory when no fleet
// file is configured.
const DefaultFleetFileName = "fleet.yaml"

// EnvConfigDir overrides the configuration directory.
const EnvConfigDir = "BIKERENT_CONFIG_DIR"

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
// Linux:   $XDG_CONFIG_HOME/bikerental (fallback ~/.config/bikerental)
// macOS:   ~/Library/Application Support/bikerental
// Windows: %APPDATA%/bikerental
func DefaultConfigDir() (string, error) {
	switch runtime.GOOS {
	case "linux":
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, appDirName), nil
		}
		home, err := platformDir.homeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".config", appDirName), nil
	default:
		dir, err := platformDir.userConfigDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, appDirName), nil
	}
}

// ResolveConfigDir returns the configuration directory following the precedence
// chain: flag > BIKERENT_CONFIG_DIR env > DefaultConfigDir().
func ResolveConfigDir(flag string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if env := os.Getenv(EnvConfigDir); env != "" {
		return filepath.Abs(env)
	}
	return DefaultConfigDir()
}

// ResolveFleetPath returns the fleet file to load following the precedence
// chain: flag > config.yaml value > fleet.yaml in configDir if it exists.
// A relative config.yaml value is taken relative to configDir. An empty
// result means no fleet file is in use.
func ResolveFleetPath(flag, configYAMLValue, configDir string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if configYAMLValue != "" {
		if filepath.IsAbs(configYAMLValue) {
			return configYAMLValue, nil
		}
		return filepath.Join(configDir, configYAMLValue), nil
	}
	candidate := filepath.Join(configDir, DefaultFleetFileName)
	if _, err := os.Stat(candidate); err == nil {
		return candidate, nil
	}
	return "", nil
}
