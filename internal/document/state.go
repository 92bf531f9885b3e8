package document

// State classifies the document lifecycle.
type State uint8

const (
	// Untitled: no path, no unsaved changes.
	Untitled State = iota

	// Saved: path set, buffer matches the last persisted snapshot.
	Saved

	// Modified: unsaved changes, with or without a path.
	Modified
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case Untitled:
		return "untitled"
	case Saved:
		return "saved"
	case Modified:
		return "modified"
	default:
		return "unknown"
	}
}
