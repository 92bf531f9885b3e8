package app

import (
	"errors"
	"testing"

	"github.com/quillpad/quill/internal/buffer"
	"github.com/quillpad/quill/internal/config"
	"github.com/quillpad/quill/internal/input/key"
	"github.com/quillpad/quill/internal/input/keymap"
)

type fakeStore struct {
	files    map[string]string
	readErr  error
	writeErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{files: make(map[string]string)}
}

func (s *fakeStore) ReadText(path string) (string, error) {
	if s.readErr != nil {
		return "", s.readErr
	}
	text, ok := s.files[path]
	if !ok {
		return "", errors.New("no such file")
	}
	return text, nil
}

func (s *fakeStore) WriteText(path string, text string) error {
	if s.writeErr != nil {
		return s.writeErr
	}
	s.files[path] = text
	return nil
}

type fakeDialog struct {
	openPath string
	openOK   bool
	savePath string
	saveOK   bool
}

func (d *fakeDialog) PickOpen(string) (string, bool) { return d.openPath, d.openOK }
func (d *fakeDialog) PickSave(string) (string, bool) { return d.savePath, d.saveOK }

func newEditor(store *fakeStore, dialog *fakeDialog) *Editor {
	return New(store, dialog, keymap.Default(), config.Default())
}

func typeString(e *Editor, s string) {
	for _, r := range s {
		e.Update(ActionMessage{Action: buffer.InsertChar{Rune: r}})
	}
}

func TestTranslateShortcut(t *testing.T) {
	km := keymap.Default()
	msg, ok := Translate(key.NewRuneEvent('s', key.ModCtrl), km)
	if !ok {
		t.Fatal("expected ctrl+s to translate")
	}
	cmd, isCmd := msg.(CommandMessage)
	if !isCmd || cmd.Command != keymap.CommandSave {
		t.Errorf("expected save command, got %#v", msg)
	}
}

func TestTranslateRune(t *testing.T) {
	msg, ok := Translate(key.NewRuneEvent('a', key.ModNone), keymap.Default())
	if !ok {
		t.Fatal("expected rune to translate")
	}
	act, isAct := msg.(ActionMessage)
	if !isAct {
		t.Fatalf("expected action message, got %#v", msg)
	}
	if ins, isIns := act.Action.(buffer.InsertChar); !isIns || ins.Rune != 'a' {
		t.Errorf("expected InsertChar 'a', got %#v", act.Action)
	}
}

func TestTranslateSpecialKeys(t *testing.T) {
	cases := []struct {
		ev   key.Event
		want buffer.Action
	}{
		{key.NewSpecialEvent(key.KeyEnter, key.ModNone), buffer.InsertNewline{}},
		{key.NewSpecialEvent(key.KeyBackspace, key.ModNone), buffer.Backspace{}},
		{key.NewSpecialEvent(key.KeyDelete, key.ModNone), buffer.Delete{}},
		{key.NewSpecialEvent(key.KeyLeft, key.ModNone), buffer.MoveCursor{Dir: buffer.Left}},
		{key.NewSpecialEvent(key.KeyEnd, key.ModNone), buffer.MoveCursor{Dir: buffer.End}},
	}
	for _, tc := range cases {
		msg, ok := Translate(tc.ev, keymap.Default())
		if !ok {
			t.Errorf("%s: expected translation", tc.ev)
			continue
		}
		act, isAct := msg.(ActionMessage)
		if !isAct || act.Action != tc.want {
			t.Errorf("%s: expected %#v, got %#v", tc.ev, tc.want, msg)
		}
	}
}

func TestTranslateUnboundChordFallsThrough(t *testing.T) {
	if _, ok := Translate(key.NewRuneEvent('x', key.ModCtrl), keymap.Default()); ok {
		t.Error("unbound chord should not translate")
	}
}

func TestTypingMarksDirtyAndRefreshesSpans(t *testing.T) {
	e := newEditor(newFakeStore(), &fakeDialog{})

	typeString(e, "hi")
	if !e.Document().Dirty() {
		t.Error("typing should mark the document dirty")
	}
	spans := e.Provider().SpansForLine(0)
	var total int
	for _, s := range spans {
		total += s.EndCol - s.StartCol
	}
	if total != len("hi") {
		t.Errorf("expected spans covering %d bytes, got %d", len("hi"), total)
	}
}

func TestMovementDoesNotDirty(t *testing.T) {
	e := newEditor(newFakeStore(), &fakeDialog{})
	e.Update(ActionMessage{Action: buffer.MoveCursor{Dir: buffer.Right}})
	if e.Document().Dirty() {
		t.Error("movement should not mark the document dirty")
	}
}

func TestNewCommandResets(t *testing.T) {
	e := newEditor(newFakeStore(), &fakeDialog{})
	typeString(e, "draft")

	e.Update(CommandMessage{Command: keymap.CommandNew})
	if e.Document().Dirty() {
		t.Error("new file should be clean")
	}
	if !e.Document().Buffer().IsEmpty() {
		t.Error("new file should be empty")
	}
	if _, ok := e.Document().Path(); ok {
		t.Error("new file should have no path")
	}
}

func TestOpenCommandPicksGrammar(t *testing.T) {
	store := newFakeStore()
	store.files["/src/main.go"] = "package main\n"
	e := newEditor(store, &fakeDialog{openPath: "/src/main.go", openOK: true})

	e.Update(CommandMessage{Command: keymap.CommandOpen})
	if path, _ := e.Document().Path(); path != "/src/main.go" {
		t.Errorf("expected path set, got %q", path)
	}
	if got := e.Provider().Grammar().Name(); got != "go" {
		t.Errorf("expected go grammar, got %q", got)
	}
	if e.Status() == "" {
		t.Error("expected a status message after open")
	}
}

func TestOpenCancelledLeavesState(t *testing.T) {
	e := newEditor(newFakeStore(), &fakeDialog{openOK: false})
	typeString(e, "keep")

	e.Update(CommandMessage{Command: keymap.CommandOpen})
	if got := e.Document().Buffer().Text(); got != "keep" {
		t.Errorf("expected buffer untouched, got %q", got)
	}
	if !e.Document().Dirty() {
		t.Error("dirty flag should survive a cancelled open")
	}
}

func TestOpenFailureSurfacesStatus(t *testing.T) {
	store := newFakeStore()
	store.readErr = errors.New("disk gone")
	e := newEditor(store, &fakeDialog{openPath: "/a.txt", openOK: true})
	typeString(e, "keep")

	e.Update(CommandMessage{Command: keymap.CommandOpen})
	if got := e.Document().Buffer().Text(); got != "keep" {
		t.Errorf("expected buffer untouched, got %q", got)
	}
	if e.Status() == "" {
		t.Error("expected an error status")
	}
}

func TestSaveCommandWritesAndCleans(t *testing.T) {
	store := newFakeStore()
	e := newEditor(store, &fakeDialog{savePath: "/out.txt", saveOK: true})
	typeString(e, "hello")

	e.Update(CommandMessage{Command: keymap.CommandSave})
	if store.files["/out.txt"] != "hello" {
		t.Errorf("expected file written, got %q", store.files["/out.txt"])
	}
	if e.Document().Dirty() {
		t.Error("saved document should be clean")
	}
}

func TestSaveFailureKeepsDirty(t *testing.T) {
	store := newFakeStore()
	store.writeErr = errors.New("read-only fs")
	e := newEditor(store, &fakeDialog{savePath: "/out.txt", saveOK: true})
	typeString(e, "hello")

	e.Update(CommandMessage{Command: keymap.CommandSave})
	if !e.Document().Dirty() {
		t.Error("failed save should leave the document dirty")
	}
	if e.Status() == "" {
		t.Error("expected an error status")
	}
}

func TestThemeCommandsCycle(t *testing.T) {
	e := newEditor(newFakeStore(), &fakeDialog{})

	before := e.UITheme()
	e.Update(CommandMessage{Command: keymap.CommandThemeNext})
	if e.UITheme() == before {
		t.Error("expected ui theme to change")
	}

	syntaxBefore := e.Provider().Theme().Name
	e.Update(CommandMessage{Command: keymap.CommandSyntaxNext})
	if e.Provider().Theme().Name == syntaxBefore {
		t.Error("expected syntax theme to change")
	}
}

func TestQuitCommand(t *testing.T) {
	e := newEditor(newFakeStore(), &fakeDialog{})
	if e.ShouldQuit() {
		t.Error("editor should not start quitting")
	}
	e.Update(CommandMessage{Command: keymap.CommandQuit})
	if !e.ShouldQuit() {
		t.Error("expected quit after command")
	}
}

func TestOpenInitialFile(t *testing.T) {
	store := newFakeStore()
	store.files["/notes.md"] = "# hi\n"
	e := newEditor(store, &fakeDialog{})

	e.OpenInitialFile("/notes.md")
	if got := e.Document().Buffer().Text(); got != "# hi\n" {
		t.Errorf("expected file content, got %q", got)
	}
	if got := e.Provider().Grammar().Name(); got != "markdown" {
		t.Errorf("expected markdown grammar, got %q", got)
	}
}

func TestOpenInitialFileMissing(t *testing.T) {
	e := newEditor(newFakeStore(), &fakeDialog{})
	e.OpenInitialFile("/gone.txt")
	if !e.Document().Buffer().IsEmpty() {
		t.Error("expected empty buffer after failed initial open")
	}
	if e.Status() == "" {
		t.Error("expected an error status")
	}
}
