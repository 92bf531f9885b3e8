package config

import (
	"os"
	"path/filepath"
)

// DefaultPaths returns the conventional locations of the config file
// and the init script under the user's config directory. Empty strings
// are returned when the platform has no config directory; Load treats
// empty paths as absent files.
func DefaultPaths() (tomlPath, luaPath string) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", ""
	}
	dir = filepath.Join(dir, "quill")
	return filepath.Join(dir, "quill.toml"), filepath.Join(dir, "init.lua")
}
