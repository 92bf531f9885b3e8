package document

import (
	"fmt"
	"strings"

	"github.com/quillpad/quill/internal/buffer"
	"github.com/quillpad/quill/internal/filestore"
)

// Document couples a buffer with a file path and a dirty flag.
// The buffer is owned exclusively by the document; all edits flow through
// Apply so the dirty flag can track them.
type Document struct {
	path  string
	dirty bool
	buf   *buffer.Buffer

	// lineEnding is what Save writes; the buffer always holds LF.
	lineEnding string

	store  filestore.Store
	dialog filestore.Dialog
}

// New creates an empty untitled document.
// A pristine document is clean: dirty only becomes true on the first edit.
func New(store filestore.Store, dialog filestore.Dialog) *Document {
	return &Document{
		buf:        buffer.New(),
		lineEnding: "\n",
		store:      store,
		dialog:     dialog,
	}
}

// SetLineEnding sets the terminator Save writes between lines.
// Anything other than "\r\n" means LF.
func (d *Document) SetLineEnding(le string) {
	if le == "\r\n" {
		d.lineEnding = "\r\n"
	} else {
		d.lineEnding = "\n"
	}
}

// Buffer returns the owned buffer. Callers must mutate it only through
// Apply.
func (d *Document) Buffer() *buffer.Buffer {
	return d.buf
}

// Path returns the file path and whether one is set.
func (d *Document) Path() (string, bool) {
	return d.path, d.path != ""
}

// Dirty returns true if the buffer differs from the last persisted
// snapshot.
func (d *Document) Dirty() bool {
	return d.dirty
}

// State returns the lifecycle state.
func (d *Document) State() State {
	switch {
	case d.dirty:
		return Modified
	case d.path == "":
		return Untitled
	default:
		return Saved
	}
}

// Apply performs a buffer action, marking the document dirty when the
// action is an edit. Returns the resulting cursor position.
func (d *Document) Apply(a buffer.Action) buffer.Position {
	pos := d.buf.Apply(a)
	if a.IsEdit() {
		d.dirty = true
	}
	return pos
}

// NewFile replaces the document with an empty untitled one.
func (d *Document) NewFile() {
	d.buf = buffer.New()
	d.path = ""
	d.dirty = false
}

// Open asks the dialog for a file and loads it. Returns false with a nil
// error when the dialog is cancelled; the document is untouched in that
// case and on read failure.
func (d *Document) Open(startDir string) (bool, error) {
	path, ok := d.dialog.PickOpen(startDir)
	if !ok {
		return false, nil
	}

	text, err := d.store.ReadText(path)
	if err != nil {
		return false, fmt.Errorf("open %s: %w", path, err)
	}

	d.buf = buffer.FromString(text)
	d.path = path
	d.dirty = false
	return true, nil
}

// OpenPath loads a specific file without a dialog, for startup arguments.
// Same transactional semantics as Open.
func (d *Document) OpenPath(path string) error {
	text, err := d.store.ReadText(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}

	d.buf = buffer.FromString(text)
	d.path = path
	d.dirty = false
	return nil
}

// Save writes the buffer to the document path, asking the dialog for one
// first if the document is untitled. Returns false with a nil error when
// the save dialog is cancelled. On write failure nothing changes: a path
// picked during this call is not kept.
func (d *Document) Save(startDir string) (bool, error) {
	path := d.path
	if path == "" {
		picked, ok := d.dialog.PickSave(startDir)
		if !ok {
			return false, nil
		}
		path = picked
	}

	text := d.buf.Text()
	if d.lineEnding != "\n" {
		text = strings.ReplaceAll(text, "\n", d.lineEnding)
	}
	if err := d.store.WriteText(path, text); err != nil {
		return false, fmt.Errorf("save %s: %w", path, err)
	}

	d.path = path
	d.dirty = false
	return true, nil
}
