// Package config resolves settings from viper and the environment.
package config

import (
	"os"
	"path/filepath"
	"strings"
)

// ExpandPath expands a leading ~ and $VAR references in path.
func ExpandPath(path string) string {
	if path == "" {
		return path
	}

	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}

	return os.ExpandEnv(path)
}

// DefaultDir is the directory holding the config file, database and tokens.
func DefaultDir() string {
	return ExpandPath("~/.config/impact")
}

// DatabasePath returns database.path, or impact.db under DefaultDir.
func DatabasePath() string {
	return pathOr("database.path", filepath.Join(DefaultDir(), "impact.db"))
}

// PolicyPath returns policy.path, or "" to use the built-in policy.
func PolicyPath() string {
	return pathOr("policy.path", "")
}

// TokenPath returns sheets.token_file, or sheets-token.json under DefaultDir.
func TokenPath() string {
	return pathOr("sheets.token_file", filepath.Join(DefaultDir(), "sheets-token.json"))
}
