package renderer

import (
	"path/filepath"
	"strings"

	"github.com/quillpad/quill/internal/input/key"
)

// Terminal implements the file dialogs as a path prompt on the bottom
// screen row. Enter accepts, Escape cancels; an empty path cancels too.

// PickOpen prompts for a file to open.
func (t *Terminal) PickOpen(startDir string) (string, bool) {
	return t.prompt("Open file: ", startDir)
}

// PickSave prompts for a path to save to.
func (t *Terminal) PickSave(startDir string) (string, bool) {
	return t.prompt("Save as: ", startDir)
}

func (t *Terminal) prompt(label, startDir string) (string, bool) {
	input := []rune{}
	if startDir != "" && startDir != "." {
		input = []rune(startDir + string(filepath.Separator))
	}

	for {
		t.drawPrompt(label, string(input))

		switch in := t.Poll().(type) {
		case ClosedInput:
			return "", false
		case PasteInput:
			text := strings.Map(func(r rune) rune {
				if r == '\n' || r == '\r' {
					return -1
				}
				return r
			}, in.Text)
			input = append(input, []rune(text)...)
		case KeyInput:
			ev := in.Event
			switch {
			case ev.Key == key.KeyEscape:
				return "", false
			case ev.Key == key.KeyEnter:
				path := strings.TrimSpace(string(input))
				if path == "" {
					return "", false
				}
				return path, true
			case ev.Key == key.KeyBackspace:
				if len(input) > 0 {
					input = input[:len(input)-1]
				}
			case ev.IsChar() && !ev.IsModified():
				input = append(input, ev.Rune)
			}
		}
	}
}

func (t *Terminal) drawPrompt(label, input string) {
	width, height := t.screen.Size()
	if height < 1 {
		return
	}
	row := height - 1
	for x := 0; x < width; x++ {
		t.screen.SetContent(x, row, ' ', nil, t.promptStyle)
	}
	text := label + input
	putString(t.screen, 0, row, text, t.promptStyle, width)
	cx := len([]rune(text))
	if cx >= width {
		cx = width - 1
	}
	t.screen.ShowCursor(cx, row)
	t.screen.Show()
}
