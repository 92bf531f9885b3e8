package app

import (
	"fmt"
	"path/filepath"

	"github.com/quillpad/quill/internal/buffer"
	"github.com/quillpad/quill/internal/config"
	"github.com/quillpad/quill/internal/document"
	"github.com/quillpad/quill/internal/filestore"
	"github.com/quillpad/quill/internal/highlight"
	"github.com/quillpad/quill/internal/input/keymap"
)

// UIThemeNames lists the chrome themes in cycle order. The renderer
// maps names to palettes; unknown names render as the first entry.
var UIThemeNames = []string{"dark", "light"}

// Editor is the single mutable editor state. It is not safe for
// concurrent use: the event loop applies one message at a time.
type Editor struct {
	doc      *document.Document
	grammars *highlight.Registry
	provider *highlight.Provider
	keymap   *keymap.Keymap
	cfg      config.Config

	uiTheme int
	status  string
	quit    bool
}

// New builds an editor from its collaborators and settings. The keymap
// already has config overrides applied.
func New(store filestore.Store, dialog filestore.Dialog, km *keymap.Keymap, cfg config.Config) *Editor {
	e := &Editor{
		doc:      document.New(store, dialog),
		grammars: highlight.DefaultRegistry(),
		keymap:   km,
		cfg:      cfg,
	}
	if cfg.LineEnding == "crlf" {
		e.doc.SetLineEnding("\r\n")
	}
	theme := highlight.ThemeByName(cfg.SyntaxTheme)
	e.provider = highlight.NewProvider(e.grammars.ForPath(""), theme, func(i int) string {
		return e.doc.Buffer().Line(i)
	})
	for i, name := range UIThemeNames {
		if name == cfg.UITheme {
			e.uiTheme = i
		}
	}
	return e
}

// Document returns the document being edited.
func (e *Editor) Document() *document.Document {
	return e.doc
}

// Provider returns the highlight provider for the current document.
func (e *Editor) Provider() *highlight.Provider {
	return e.provider
}

// Keymap returns the active keymap.
func (e *Editor) Keymap() *keymap.Keymap {
	return e.keymap
}

// Config returns the loaded settings.
func (e *Editor) Config() config.Config {
	return e.cfg
}

// UITheme returns the active chrome theme name.
func (e *Editor) UITheme() string {
	return UIThemeNames[e.uiTheme]
}

// Status returns the transient status line message.
func (e *Editor) Status() string {
	return e.status
}

// ShouldQuit reports whether a quit command has been applied.
func (e *Editor) ShouldQuit() bool {
	return e.quit
}

// OpenInitialFile loads a file named on the command line. A failure
// becomes a status message rather than an error: the editor starts
// empty, the way it would for an unreadable session path.
func (e *Editor) OpenInitialFile(path string) {
	if err := e.doc.OpenPath(path); err != nil {
		e.status = err.Error()
		return
	}
	e.syncGrammar()
	e.status = fmt.Sprintf("Opened %s", path)
}

// Update applies a single message. Exactly one message is fully applied
// before the next; file dialogs and disk access happen inside and
// either complete or leave the document untouched.
func (e *Editor) Update(msg Message) {
	switch m := msg.(type) {
	case ActionMessage:
		e.applyAction(m.Action)
	case CommandMessage:
		e.runCommand(m.Command)
	}
}

func (e *Editor) applyAction(a buffer.Action) {
	from := e.invalidateStart(a)
	pos := e.doc.Apply(a)
	if a.IsEdit() {
		if pos.Line < from {
			from = pos.Line
		}
		e.provider.InvalidateFrom(from)
		e.status = ""
	}
}

// invalidateStart returns the first line an edit can change: the cursor
// line, or the top of the selection when one is about to be replaced.
func (e *Editor) invalidateStart(a buffer.Action) int {
	buf := e.doc.Buffer()
	from := buf.Cursor().Line
	if !a.IsEdit() {
		return from
	}
	if sel, ok := buf.Selection(); ok {
		if start := sel.Start(); start.Line < from {
			from = start.Line
		}
	}
	return from
}

func (e *Editor) runCommand(cmd keymap.Command) {
	switch cmd {
	case keymap.CommandNew:
		e.doc.NewFile()
		e.syncGrammar()
		e.status = "New file"
	case keymap.CommandOpen:
		ok, err := e.doc.Open(e.startDir())
		if err != nil {
			e.status = err.Error()
			return
		}
		if !ok {
			return
		}
		e.syncGrammar()
		path, _ := e.doc.Path()
		e.status = fmt.Sprintf("Opened %s", path)
	case keymap.CommandSave:
		ok, err := e.doc.Save(e.startDir())
		if err != nil {
			e.status = err.Error()
			return
		}
		if !ok {
			return
		}
		path, _ := e.doc.Path()
		e.status = fmt.Sprintf("Saved %s", path)
	case keymap.CommandThemeNext:
		e.uiTheme = (e.uiTheme + 1) % len(UIThemeNames)
		e.status = fmt.Sprintf("Theme: %s", e.UITheme())
	case keymap.CommandSyntaxNext:
		next := highlight.NextTheme(e.provider.Theme().Name)
		e.provider.SetTheme(next)
		e.status = fmt.Sprintf("Syntax theme: %s", next.Name)
	case keymap.CommandQuit:
		e.quit = true
	}
}

// syncGrammar points the provider at the grammar for the current path
// and drops all cached highlight state. The line source closure reads
// through the document, so a replaced buffer is picked up for free.
func (e *Editor) syncGrammar() {
	path, _ := e.doc.Path()
	e.provider.SetGrammar(e.grammars.ForPath(path))
	e.provider.InvalidateAll()
}

// startDir is where file dialogs begin: the current file's directory
// when there is one.
func (e *Editor) startDir() string {
	if path, ok := e.doc.Path(); ok {
		return filepath.Dir(path)
	}
	return ""
}
