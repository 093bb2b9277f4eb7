// Package config resolves rotawear's on-disk locations and persists the
// user settings file.
package config

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	appName      = "rotawear"
	settingsFile = "settings.yaml"
	cacheFile    = "cache.json"
)

// DefaultClosetPath is used when no closet has been configured.
const DefaultClosetPath = "~/Closet"

// ClosetPath returns the closet root from the ROTAWEAR_CLOSET env var,
// falling back to DefaultClosetPath.
func ClosetPath() string {
	if env := os.Getenv("ROTAWEAR_CLOSET"); env != "" {
		return env
	}
	return DefaultClosetPath
}

// ExpandHome expands a leading ~ to the user's home directory.
func ExpandHome(path string) string {
	if strings.HasPrefix(path, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[1:])
	}
	return path
}

// BaseDir returns the directory that holds rotawear's settings and
// cache: $XDG_CONFIG_HOME/rotawear, or the platform config dir.
func BaseDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appName), nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, appName), nil
}

// SettingsPath returns the settings file path.
func SettingsPath() (string, error) {
	dir, err := BaseDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, settingsFile), nil
}

// CachePath returns the rotation cache file path.
func CachePath() (string, error) {
	dir, err := BaseDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, cacheFile), nil
}
