// Package filestore defines the file collaborator contracts the document
// lifecycle depends on: picking paths and reading/writing text. The core
// never touches the file system directly, which keeps lifecycle
// transitions testable with fakes.
package filestore

import "os"

// Store reads and writes document text.
type Store interface {
	// ReadText reads the full contents of a file.
	ReadText(path string) (string, error)

	// WriteText writes text to a file, replacing its contents.
	WriteText(path string, text string) error
}

// Dialog obtains paths from the user. A false second return value means
// the dialog was cancelled; cancellation is not an error.
type Dialog interface {
	// PickOpen asks for an existing file to open.
	PickOpen(startDir string) (string, bool)

	// PickSave asks for a path to save to.
	PickSave(startDir string) (string, bool)
}

// OSStore implements Store against the local file system.
type OSStore struct{}

// NewOSStore creates a file-system backed store.
func NewOSStore() *OSStore {
	return &OSStore{}
}

// ReadText implements Store.
func (s *OSStore) ReadText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// WriteText implements Store.
func (s *OSStore) WriteText(path string, text string) error {
	return os.WriteFile(path, []byte(text), 0o644)
}
