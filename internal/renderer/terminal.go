package renderer

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/quillpad/quill/internal/input/key"
)

// Input is one translated terminal event.
type Input interface {
	isInput()
}

// KeyInput is a key press.
type KeyInput struct {
	Event key.Event
}

// PasteInput is the full text of one bracketed paste.
type PasteInput struct {
	Text string
}

// MouseInput is a left-button press or drag at screen coordinates.
type MouseInput struct {
	X, Y int
	Drag bool
}

// ScrollInput is a mouse wheel movement in lines.
type ScrollInput struct {
	Lines int
}

// ResizeInput reports a terminal size change.
type ResizeInput struct {
	Width, Height int
}

// ClosedInput reports that the screen is gone and no more events will
// arrive.
type ClosedInput struct{}

func (KeyInput) isInput()    {}
func (PasteInput) isInput()  {}
func (MouseInput) isInput()  {}
func (ScrollInput) isInput() {}
func (ResizeInput) isInput() {}
func (ClosedInput) isInput() {}

// Terminal wraps a tcell screen: drawing on one side, input
// translation on the other. Not safe for concurrent use; the event
// loop owns it.
type Terminal struct {
	screen tcell.Screen

	pasting  bool
	pasteBuf strings.Builder
	dragging bool

	// promptStyle is refreshed each frame so prompts match the active
	// chrome theme.
	promptStyle tcell.Style
}

// NewTerminal creates and initializes the terminal screen.
func NewTerminal() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.EnableMouse()
	screen.EnablePaste()
	return &Terminal{screen: screen}, nil
}

// newTerminalWithScreen wires an existing screen, for simulation tests.
func newTerminalWithScreen(screen tcell.Screen) *Terminal {
	return &Terminal{screen: screen}
}

// Close restores the terminal.
func (t *Terminal) Close() {
	t.screen.Fini()
}

// Size returns the screen dimensions.
func (t *Terminal) Size() (int, int) {
	return t.screen.Size()
}

// Poll blocks for the next meaningful input. Events with no meaning
// here (focus changes, unmapped keys, mouse release) are swallowed and
// polling continues. During a bracketed paste all key events are
// collected into a single PasteInput.
func (t *Terminal) Poll() Input {
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return ClosedInput{}
		}
		if in, ok := t.translate(ev); ok {
			return in
		}
	}
}

func (t *Terminal) translate(ev tcell.Event) (Input, bool) {
	switch e := ev.(type) {
	case *tcell.EventPaste:
		if e.Start() {
			t.pasting = true
			t.pasteBuf.Reset()
			return nil, false
		}
		t.pasting = false
		text := t.pasteBuf.String()
		t.pasteBuf.Reset()
		if text == "" {
			return nil, false
		}
		return PasteInput{Text: text}, true

	case *tcell.EventKey:
		kev := translateKey(e)
		if t.pasting {
			t.collectPasteKey(kev)
			return nil, false
		}
		if kev.Key == key.KeyNone {
			return nil, false
		}
		return KeyInput{Event: kev}, true

	case *tcell.EventMouse:
		return t.translateMouse(e)

	case *tcell.EventResize:
		w, h := e.Size()
		t.screen.Sync()
		return ResizeInput{Width: w, Height: h}, true
	}
	return nil, false
}

func (t *Terminal) collectPasteKey(kev key.Event) {
	switch kev.Key {
	case key.KeyRune:
		t.pasteBuf.WriteRune(kev.Rune)
	case key.KeyEnter:
		t.pasteBuf.WriteByte('\n')
	case key.KeyTab:
		t.pasteBuf.WriteByte('\t')
	}
}

func (t *Terminal) translateMouse(e *tcell.EventMouse) (Input, bool) {
	x, y := e.Position()
	buttons := e.Buttons()

	switch {
	case buttons&tcell.WheelUp != 0:
		return ScrollInput{Lines: -3}, true
	case buttons&tcell.WheelDown != 0:
		return ScrollInput{Lines: 3}, true
	case buttons&tcell.Button1 != 0:
		drag := t.dragging
		t.dragging = true
		return MouseInput{X: x, Y: y, Drag: drag}, true
	default:
		t.dragging = false
		return nil, false
	}
}

// translateKey maps a tcell key event to a logical key event. tcell
// folds ctrl+letter into dedicated key codes; those come back out as
// the letter with the ctrl modifier set, so the keymap sees "ctrl+s"
// regardless of how the terminal reported it.
func translateKey(e *tcell.EventKey) key.Event {
	mods := translateMods(e.Modifiers())

	k := e.Key()
	if k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
		r := rune('a' + k - tcell.KeyCtrlA)
		return key.NewRuneEvent(r, mods|key.ModCtrl)
	}

	switch k {
	case tcell.KeyRune:
		return key.NewRuneEvent(e.Rune(), mods)
	case tcell.KeyEscape:
		return key.NewSpecialEvent(key.KeyEscape, mods)
	case tcell.KeyEnter:
		return key.NewSpecialEvent(key.KeyEnter, mods)
	case tcell.KeyTab:
		return key.NewSpecialEvent(key.KeyTab, mods)
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return key.NewSpecialEvent(key.KeyBackspace, mods)
	case tcell.KeyDelete:
		return key.NewSpecialEvent(key.KeyDelete, mods)
	case tcell.KeyHome:
		return key.NewSpecialEvent(key.KeyHome, mods)
	case tcell.KeyEnd:
		return key.NewSpecialEvent(key.KeyEnd, mods)
	case tcell.KeyPgUp:
		return key.NewSpecialEvent(key.KeyPageUp, mods)
	case tcell.KeyPgDn:
		return key.NewSpecialEvent(key.KeyPageDown, mods)
	case tcell.KeyUp:
		return key.NewSpecialEvent(key.KeyUp, mods)
	case tcell.KeyDown:
		return key.NewSpecialEvent(key.KeyDown, mods)
	case tcell.KeyLeft:
		return key.NewSpecialEvent(key.KeyLeft, mods)
	case tcell.KeyRight:
		return key.NewSpecialEvent(key.KeyRight, mods)
	}
	return key.NewSpecialEvent(key.KeyNone, mods)
}

func translateMods(m tcell.ModMask) key.Modifier {
	var mods key.Modifier
	if m&tcell.ModShift != 0 {
		mods |= key.ModShift
	}
	if m&tcell.ModCtrl != 0 {
		mods |= key.ModCtrl
	}
	if m&tcell.ModAlt != 0 {
		mods |= key.ModAlt
	}
	if m&tcell.ModMeta != 0 {
		mods |= key.ModMeta
	}
	return mods
}

// tcellColor converts a theme color to a tcell true color.
func tcellColor(c colorful.Color) tcell.Color {
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
