// Package keymap routes key events to editor commands. Routing is a pure
// lookup: a chord either resolves to a lifecycle command or falls through
// so the event can be treated as ordinary text input.
package keymap
