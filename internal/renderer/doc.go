// Package renderer draws the editor into a terminal with tcell and
// translates terminal input into key events, paste text, and mouse
// gestures. It owns the viewport scroll state and the status line, and
// implements the file dialogs as status-line prompts.
package renderer
