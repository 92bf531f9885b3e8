// Package buffer implements the editable text model: an ordered sequence of
// lines, a cursor, and an optional selection. All mutation happens through
// Apply, which takes a single Action and is total over valid buffer states.
package buffer
