package renderer

import (
	"errors"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/quillpad/quill/internal/app"
	"github.com/quillpad/quill/internal/buffer"
	"github.com/quillpad/quill/internal/config"
	"github.com/quillpad/quill/internal/input/keymap"
)

type nullStore struct{}

func (nullStore) ReadText(string) (string, error) { return "", errors.New("not found") }
func (nullStore) WriteText(string, string) error  { return nil }

type nullDialog struct{}

func (nullDialog) PickOpen(string) (string, bool) { return "", false }
func (nullDialog) PickSave(string) (string, bool) { return "", false }

func simTerminal(t *testing.T, width, height int) *Terminal {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	screen.SetSize(width, height)
	t.Cleanup(screen.Fini)
	return newTerminalWithScreen(screen)
}

func rowText(screen tcell.SimulationScreen, row, width int) string {
	runes := make([]rune, 0, width)
	for x := 0; x < width; x++ {
		mainc, _, _, _ := screen.GetContent(x, row)
		runes = append(runes, mainc)
	}
	return string(runes)
}

func TestDrawFrame(t *testing.T) {
	term := simTerminal(t, 40, 10)
	e := app.New(nullStore{}, nullDialog{}, keymap.Default(), config.Default())
	for _, r := range "hello" {
		e.Update(app.ActionMessage{Action: buffer.InsertChar{Rune: r}})
	}
	v := NewView(4)

	term.Draw(e, v)

	screen := term.screen.(tcell.SimulationScreen)
	if got := rowText(screen, 0, 5); got != "hello" {
		t.Errorf("expected first row %q, got %q", "hello", got)
	}
	status := rowText(screen, 9, 40)
	if !strings.Contains(status, "[untitled]") {
		t.Errorf("expected status line to name the file, got %q", status)
	}
	if !strings.Contains(status, "+") {
		t.Errorf("expected dirty marker in status line, got %q", status)
	}
}

func TestDrawScrollsCursorIntoView(t *testing.T) {
	term := simTerminal(t, 40, 5)
	e := app.New(nullStore{}, nullDialog{}, keymap.Default(), config.Default())
	for i := 0; i < 10; i++ {
		e.Update(app.ActionMessage{Action: buffer.InsertChar{Rune: 'x'}})
		e.Update(app.ActionMessage{Action: buffer.InsertNewline{}})
	}
	v := NewView(4)

	term.Draw(e, v)

	// Cursor is on line 10; text area is 4 rows tall.
	if v.TopLine != 7 {
		t.Errorf("expected top line 7, got %d", v.TopLine)
	}
}
