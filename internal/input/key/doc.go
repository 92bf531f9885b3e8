// Package key defines logical keyboard event types shared by the input
// router and the rendering backend. Events carry a key identifier, the
// rune for character keys, and the active modifier set.
package key
