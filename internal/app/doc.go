// Package app holds the editor state and its update loop. Input events
// become Messages; Update applies exactly one message at a time to the
// document, the highlighter, and the theme state. All file and dialog
// access stays behind the filestore interfaces, so the update path is
// deterministic and testable with fakes.
package app
