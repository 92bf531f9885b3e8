package app

import (
	"github.com/quillpad/quill/internal/buffer"
	"github.com/quillpad/quill/internal/input/key"
	"github.com/quillpad/quill/internal/input/keymap"
)

// Message is one step of the update loop: either a buffer action or an
// editor command.
type Message interface {
	isMessage()
}

// ActionMessage carries a buffer action (typing, movement, deletion).
type ActionMessage struct {
	Action buffer.Action
}

// CommandMessage carries an editor command resolved from a shortcut.
type CommandMessage struct {
	Command keymap.Command
}

func (ActionMessage) isMessage()  {}
func (CommandMessage) isMessage() {}

// Translate turns a key event into a Message. Shortcuts are resolved
// first; everything else maps to a buffer action where one exists.
// Events with no meaning here (bare modifiers, unbound chords, paging
// keys handled by the viewport) return false and fall through.
func Translate(ev key.Event, km *keymap.Keymap) (Message, bool) {
	if cmd, ok := km.Resolve(ev); ok {
		return CommandMessage{Command: cmd}, true
	}
	if ev.IsModified() {
		return nil, false
	}

	switch ev.Key {
	case key.KeyRune:
		return ActionMessage{Action: buffer.InsertChar{Rune: ev.Rune}}, true
	case key.KeyEnter:
		return ActionMessage{Action: buffer.InsertNewline{}}, true
	case key.KeyTab:
		return ActionMessage{Action: buffer.InsertChar{Rune: '\t'}}, true
	case key.KeyBackspace:
		return ActionMessage{Action: buffer.Backspace{}}, true
	case key.KeyDelete:
		return ActionMessage{Action: buffer.Delete{}}, true
	case key.KeyLeft:
		return ActionMessage{Action: buffer.MoveCursor{Dir: buffer.Left}}, true
	case key.KeyRight:
		return ActionMessage{Action: buffer.MoveCursor{Dir: buffer.Right}}, true
	case key.KeyUp:
		return ActionMessage{Action: buffer.MoveCursor{Dir: buffer.Up}}, true
	case key.KeyDown:
		return ActionMessage{Action: buffer.MoveCursor{Dir: buffer.Down}}, true
	case key.KeyHome:
		return ActionMessage{Action: buffer.MoveCursor{Dir: buffer.Home}}, true
	case key.KeyEnd:
		return ActionMessage{Action: buffer.MoveCursor{Dir: buffer.End}}, true
	}
	return nil, false
}
