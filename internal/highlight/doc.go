// Package highlight turns buffer lines into styled spans for rendering.
// A Grammar tokenizes one line at a time, carrying lexer state across
// lines for multi-line constructs; a Theme maps token types to styles; a
// Provider caches per-line results so only changed lines are re-lexed.
// Grammar and theme are independent axes: changing the theme never
// re-runs the lexer.
package highlight
