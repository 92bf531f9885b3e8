// Package session persists small bits of editor state between runs:
// the last opened file and the active theme pair. The state lives in
// a JSON file that is updated field by field, so unknown fields left
// by other versions survive a round trip.
package session

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// Session is the state carried across editor runs.
type Session struct {
	LastFile    string
	UITheme     string
	SyntaxTheme string
}

// Load reads the session file at path. A missing or unreadable file
// yields an empty session; only a present-but-corrupt file is an
// error.
func Load(path string) (Session, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Session{}, nil
		}
		return Session{}, fmt.Errorf("reading session file %s: %w", path, err)
	}
	if !gjson.ValidBytes(data) {
		return Session{}, fmt.Errorf("session file %s is not valid JSON", path)
	}
	return Session{
		LastFile:    gjson.GetBytes(data, "last_file").String(),
		UITheme:     gjson.GetBytes(data, "ui_theme").String(),
		SyntaxTheme: gjson.GetBytes(data, "syntax_theme").String(),
	}, nil
}

// Save writes s to the session file at path, creating parent
// directories as needed. Fields this version does not know about are
// preserved.
func Save(path string, s Session) error {
	data, err := os.ReadFile(path)
	if err != nil || !gjson.ValidBytes(data) {
		data = []byte("{}")
	}

	for _, field := range []struct {
		key   string
		value string
	}{
		{"last_file", s.LastFile},
		{"ui_theme", s.UITheme},
		{"syntax_theme", s.SyntaxTheme},
	} {
		data, err = sjson.SetBytes(data, field.key, field.value)
		if err != nil {
			return fmt.Errorf("encoding session field %s: %w", field.key, err)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating session dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing session file %s: %w", path, err)
	}
	return nil
}

// DefaultPath returns the conventional session file location. Empty
// when the platform has no config directory.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "quill", "session.json")
}
