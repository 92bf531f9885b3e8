package renderer

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/quillpad/quill/internal/app"
	"github.com/quillpad/quill/internal/buffer"
	"github.com/quillpad/quill/internal/document"
	"github.com/quillpad/quill/internal/highlight"
)

// Draw renders one full frame: text area, cursor, and status line.
func (t *Terminal) Draw(e *app.Editor, v *View) {
	width, height := t.screen.Size()
	if width < 1 || height < 1 {
		return
	}
	textHeight := height - 1
	if textHeight < 1 {
		textHeight = height
	}

	buf := e.Document().Buffer()
	theme := e.Provider().Theme()
	ui := UIThemeByName(e.UITheme())
	t.promptStyle = tcell.StyleDefault.
		Background(tcellColor(ui.PromptBg)).
		Foreground(tcellColor(ui.PromptFg))

	cursor := buf.Cursor()
	if v.follow {
		v.EnsureVisible(cursor.Line, textHeight)
	}

	base := tcell.StyleDefault.
		Background(tcellColor(theme.Background)).
		Foreground(tcellColor(theme.Foreground))
	selStyle := base.Background(tcellColor(theme.Selection))
	// The cursor line gets the theme's line highlight, derived by
	// blending when the theme leaves it at the background color.
	lineHL := theme.LineHighlight
	if lineHL == theme.Background {
		lineHL = theme.Background.BlendRgb(theme.Foreground, 0.06)
	}
	cursorLineStyle := base.Background(tcellColor(lineHL))

	for row := 0; row < textHeight; row++ {
		rowBase := base
		if v.TopLine+row == cursor.Line {
			rowBase = cursorLineStyle
		}
		t.drawTextRow(e, v, row, width, rowBase, selStyle)
	}

	if cursor.Line >= v.TopLine && cursor.Line < v.TopLine+textHeight {
		x := v.ColumnX(buf.Line(cursor.Line), cursor.Column)
		if x < width {
			t.screen.ShowCursor(x, cursor.Line-v.TopLine)
		} else {
			t.screen.HideCursor()
		}
	} else {
		t.screen.HideCursor()
	}

	if height > 1 {
		t.drawStatusLine(e, v, width, height-1, ui)
	}
	t.screen.Show()
}

func (t *Terminal) drawTextRow(e *app.Editor, v *View, row, width int, base, selStyle tcell.Style) {
	buf := e.Document().Buffer()
	lineIdx := v.TopLine + row

	for x := 0; x < width; x++ {
		t.screen.SetContent(x, row, ' ', nil, base)
	}
	if lineIdx >= buf.LineCount() {
		return
	}

	line := buf.Line(lineIdx)
	spans := e.Provider().SpansForLine(lineIdx)
	sel, hasSel := buf.Selection()

	x := 0
	byteIdx := 0
	si := 0
	for col, r := range []rune(line) {
		if x >= width {
			break
		}
		for si < len(spans) && byteIdx >= spans[si].EndCol {
			si++
		}
		style := base
		if si < len(spans) {
			style = spanStyle(spans[si].Style, base)
		}
		if hasSel && sel.Contains(buffer.Position{Line: lineIdx, Column: col}) {
			style = selStyle
		}

		w := v.runeWidth(r, x)
		if r == '\t' {
			for i := 0; i < w && x < width; i++ {
				t.screen.SetContent(x, row, ' ', nil, style)
				x++
			}
		} else {
			t.screen.SetContent(x, row, r, nil, style)
			x += w
		}
		byteIdx += len(string(r))
	}
}

func spanStyle(s highlight.Style, base tcell.Style) tcell.Style {
	style := base.Foreground(tcellColor(s.Foreground))
	if s.Bold {
		style = style.Bold(true)
	}
	if s.Italic {
		style = style.Italic(true)
	}
	if s.Underline {
		style = style.Underline(true)
	}
	return style
}

func (t *Terminal) drawStatusLine(e *app.Editor, v *View, width, row int, ui UITheme) {
	doc := e.Document()
	buf := doc.Buffer()
	cursor := buf.Cursor()

	name := "[untitled]"
	if path, ok := doc.Path(); ok {
		name = path
	}
	mark := ""
	if doc.State() == document.Modified {
		mark = " +"
	}
	left := fmt.Sprintf(" %s%s", name, mark)
	if msg := e.Status(); msg != "" {
		left += "  " + msg
	}
	right := fmt.Sprintf("%s  %s  %d:%d ",
		e.Provider().Grammar().Name(),
		e.Provider().Theme().Name,
		cursor.Line+1, cursor.Column+1)

	style := tcell.StyleDefault.
		Background(tcellColor(ui.StatusBg)).
		Foreground(tcellColor(ui.StatusFg))

	for x := 0; x < width; x++ {
		t.screen.SetContent(x, row, ' ', nil, style)
	}
	putString(t.screen, 0, row, left, style, width)
	rx := width - len([]rune(right))
	if rx > len([]rune(left)) {
		putString(t.screen, rx, row, right, style.Foreground(tcellColor(ui.AccentFg)), width)
	}
}

func putString(screen tcell.Screen, x, y int, s string, style tcell.Style, width int) {
	for _, r := range s {
		if x >= width {
			return
		}
		screen.SetContent(x, y, r, nil, style)
		x++
	}
}

// PositionAt maps a screen coordinate to the buffer position under it.
func (v *View) PositionAt(buf *buffer.Buffer, x, y int) buffer.Position {
	line := v.TopLine + y
	if line >= buf.LineCount() {
		line = buf.LineCount() - 1
	}
	if line < 0 {
		line = 0
	}
	return buffer.Position{Line: line, Column: v.ColumnAt(buf.Line(line), x)}
}
