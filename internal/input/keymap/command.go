package keymap

// Command is a document-lifecycle or editor-level operation, distinct
// from in-buffer edit actions.
type Command uint8

const (
	// CommandNone means the event did not resolve to a command.
	CommandNone Command = iota

	// CommandNew replaces the document with an empty untitled one.
	CommandNew

	// CommandOpen picks a file and loads it.
	CommandOpen

	// CommandSave writes the document to its path, asking for one first
	// if the document is untitled.
	CommandSave

	// CommandThemeNext cycles the UI color theme.
	CommandThemeNext

	// CommandSyntaxNext cycles the syntax highlighting theme.
	CommandSyntaxNext

	// CommandQuit exits the editor.
	CommandQuit
)

// String returns the command name.
func (c Command) String() string {
	switch c {
	case CommandNew:
		return "file.new"
	case CommandOpen:
		return "file.open"
	case CommandSave:
		return "file.save"
	case CommandThemeNext:
		return "theme.next"
	case CommandSyntaxNext:
		return "theme.syntaxNext"
	case CommandQuit:
		return "editor.quit"
	default:
		return "none"
	}
}

// commandNames maps config identifiers to commands, for user overrides.
var commandNames = map[string]Command{
	"file.new":         CommandNew,
	"file.open":        CommandOpen,
	"file.save":        CommandSave,
	"theme.next":       CommandThemeNext,
	"theme.syntaxNext": CommandSyntaxNext,
	"editor.quit":      CommandQuit,
}

// CommandFromName returns the command for a config identifier.
func CommandFromName(name string) (Command, bool) {
	c, ok := commandNames[name]
	return c, ok
}
