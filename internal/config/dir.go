// Package config provides the persistent settings and configuration
// directory for do2org.
package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// Dir returns the do2org configuration directory.
//
// Resolution:
//   - $DO2ORG_CONFIG_HOME if set (explicit override)
//   - $XDG_CONFIG_HOME/do2org if set (respects XDG on any platform)
//   - %AppData%/do2org on Windows
//   - ~/.config/do2org on macOS and Linux
func Dir() string {
	// Explicit override
	if dir := os.Getenv("DO2ORG_CONFIG_HOME"); dir != "" {
		return dir
	}

	// XDG override (works on any platform)
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "do2org")
	}

	// Windows: use AppData
	if runtime.GOOS == "windows" {
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "do2org")
		}
	}

	// macOS and Linux: ~/.config/do2org
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "do2org")
}
