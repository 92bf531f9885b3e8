package keymap

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/quillpad/quill/internal/input/key"
)

// Binding maps a primary-modifier chord to a command.
type Binding struct {
	// Rune is the character key, lowercased.
	Rune rune

	// Command is the command the chord triggers.
	Command Command

	// Description documents the binding.
	Description string
}

// Keymap resolves key events to commands. Only chords using the platform
// primary modifier with a single character key are routed; every other
// event falls through to text input. Keymap is immutable after Build and
// safe for concurrent reads.
type Keymap struct {
	bindings map[rune]Binding
}

// Default returns the stock bindings.
func Default() *Keymap {
	return Build(
		Binding{Rune: 's', Command: CommandSave, Description: "Save document"},
		Binding{Rune: 'o', Command: CommandOpen, Description: "Open file"},
		Binding{Rune: 'n', Command: CommandNew, Description: "New document"},
		Binding{Rune: 't', Command: CommandThemeNext, Description: "Next UI theme"},
		Binding{Rune: 'y', Command: CommandSyntaxNext, Description: "Next syntax theme"},
		Binding{Rune: 'q', Command: CommandQuit, Description: "Quit"},
	)
}

// Build creates a keymap from bindings. Later bindings for the same rune
// override earlier ones.
func Build(bindings ...Binding) *Keymap {
	m := make(map[rune]Binding, len(bindings))
	for _, b := range bindings {
		b.Rune = unicode.ToLower(b.Rune)
		m[b.Rune] = b
	}
	return &Keymap{bindings: m}
}

// Resolve maps a key event to a command. The second return value is false
// when the event should fall through to ordinary text handling.
func (k *Keymap) Resolve(ev key.Event) (Command, bool) {
	if !ev.IsRune() || !ev.Modifiers.HasPrimary() {
		return CommandNone, false
	}
	// Alt-modified chords are not ours to swallow.
	if ev.Modifiers.HasAlt() {
		return CommandNone, false
	}

	b, ok := k.bindings[unicode.ToLower(ev.Rune)]
	if !ok {
		return CommandNone, false
	}
	return b.Command, true
}

// Bindings returns the bindings sorted by rune, for display.
func (k *Keymap) Bindings() []Binding {
	out := make([]Binding, 0, len(k.bindings))
	for _, b := range k.bindings {
		out = append(out, b)
	}
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j].Rune < out[j-1].Rune; j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out
}

// WithOverrides returns a copy of the keymap with user overrides applied.
// Overrides map command names like "file.save" to chord strings like
// "ctrl+w". Chords must be primary-modifier plus one character. A
// rebound command loses its stock chord.
func (k *Keymap) WithOverrides(overrides map[string]string) (*Keymap, error) {
	extra := make([]Binding, 0, len(overrides))
	rebound := make(map[Command]bool, len(overrides))
	for name, chord := range overrides {
		cmd, ok := CommandFromName(name)
		if !ok {
			return nil, fmt.Errorf("keymap: unknown command %q", name)
		}
		r, err := parseChord(chord)
		if err != nil {
			return nil, err
		}
		extra = append(extra, Binding{Rune: r, Command: cmd, Description: name})
		rebound[cmd] = true
	}

	merged := make([]Binding, 0, len(k.bindings)+len(extra))
	for _, b := range k.bindings {
		if !rebound[b.Command] {
			merged = append(merged, b)
		}
	}
	merged = append(merged, extra...)

	return Build(merged...), nil
}

// parseChord parses "ctrl+s" / "cmd+o" style chord strings.
func parseChord(chord string) (rune, error) {
	parts := strings.Split(strings.ToLower(strings.TrimSpace(chord)), "+")
	if len(parts) != 2 {
		return 0, fmt.Errorf("keymap: invalid chord %q", chord)
	}

	switch parts[0] {
	case "ctrl", "control", "cmd", "command", "meta", "primary":
	default:
		return 0, fmt.Errorf("keymap: unsupported modifier %q in chord %q", parts[0], chord)
	}

	runes := []rune(parts[1])
	if len(runes) != 1 {
		return 0, fmt.Errorf("keymap: chord %q must use a single character key", chord)
	}
	return runes[0], nil
}
