// Package main is the entry point for the quill editor.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/quillpad/quill/internal/app"
	"github.com/quillpad/quill/internal/buffer"
	"github.com/quillpad/quill/internal/config"
	"github.com/quillpad/quill/internal/filestore"
	"github.com/quillpad/quill/internal/input/key"
	"github.com/quillpad/quill/internal/input/keymap"
	"github.com/quillpad/quill/internal/renderer"
	"github.com/quillpad/quill/internal/session"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

type options struct {
	configPath  string
	scriptPath  string
	sessionPath string
	noSession   bool
	file        string
}

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	cfg, err := config.Load(opts.configPath, opts.scriptPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	var sess session.Session
	if !opts.noSession {
		sess, err = session.Load(opts.sessionPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		}
	}
	if sess.UITheme != "" {
		cfg.UITheme = sess.UITheme
	}
	if sess.SyntaxTheme != "" {
		cfg.SyntaxTheme = sess.SyntaxTheme
	}

	km, err := keymap.Default().WithOverrides(cfg.Keys)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	term, err := renderer.NewTerminal()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create terminal: %v\n", err)
		return 1
	}
	defer term.Close()

	editor := app.New(filestore.NewOSStore(), term, km, cfg)
	switch {
	case opts.file != "":
		editor.OpenInitialFile(opts.file)
	case sess.LastFile != "":
		editor.OpenInitialFile(sess.LastFile)
	}

	view := renderer.NewView(cfg.TabWidth)
	loop(editor, term, view)

	if !opts.noSession {
		last, _ := editor.Document().Path()
		err := session.Save(opts.sessionPath, session.Session{
			LastFile:    last,
			UITheme:     editor.UITheme(),
			SyntaxTheme: editor.Provider().Theme().Name,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		}
	}
	return 0
}

// loop drives the editor: draw a frame, wait for input, apply it.
// Exactly one message is applied per iteration.
func loop(editor *app.Editor, term *renderer.Terminal, view *renderer.View) {
	for !editor.ShouldQuit() {
		term.Draw(editor, view)

		switch in := term.Poll().(type) {
		case renderer.KeyInput:
			if in.Event.Key == key.KeyPageUp || in.Event.Key == key.KeyPageDown {
				_, height := term.Size()
				page := height - 1
				if in.Event.Key == key.KeyPageUp {
					page = -page
				}
				view.Scroll(page, editor.Document().Buffer().LineCount(), height-1)
				continue
			}
			if msg, ok := app.Translate(in.Event, editor.Keymap()); ok {
				view.Follow()
				editor.Update(msg)
			}
		case renderer.PasteInput:
			view.Follow()
			editor.Update(app.ActionMessage{Action: buffer.Paste{Text: in.Text}})
		case renderer.MouseInput:
			pos := view.PositionAt(editor.Document().Buffer(), in.X, in.Y)
			view.Follow()
			if in.Drag {
				editor.Update(app.ActionMessage{Action: buffer.SelectTo{Pos: pos}})
			} else {
				editor.Update(app.ActionMessage{Action: buffer.MoveTo{Pos: pos}})
			}
		case renderer.ScrollInput:
			_, height := term.Size()
			view.Scroll(in.Lines, editor.Document().Buffer().LineCount(), height-1)
		case renderer.ResizeInput:
			// Redrawn at the top of the loop.
		case renderer.ClosedInput:
			return
		}
	}
}

func parseFlags() options {
	var opts options
	var showVersion bool

	defaultTOML, defaultLua := config.DefaultPaths()
	flag.StringVar(&opts.configPath, "config", defaultTOML, "Path to configuration file")
	flag.StringVar(&opts.configPath, "c", defaultTOML, "Path to configuration file (shorthand)")
	flag.StringVar(&opts.scriptPath, "init", defaultLua, "Path to init script")
	flag.StringVar(&opts.sessionPath, "session", session.DefaultPath(), "Path to session file")
	flag.BoolVar(&opts.noSession, "no-session", false, "Do not load or save the session")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Quill - plain text editor\n\n")
		fmt.Fprintf(os.Stderr, "Usage: quill [options] [file]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  quill                 Open with empty buffer\n")
		fmt.Fprintf(os.Stderr, "  quill notes.md        Open a file\n")
		fmt.Fprintf(os.Stderr, "  quill -no-session     Start fresh, remember nothing\n")
	}

	flag.Parse()

	if showVersion {
		fmt.Printf("Quill %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		os.Exit(0)
	}

	if args := flag.Args(); len(args) > 0 {
		if abs, err := filepath.Abs(args[0]); err == nil {
			opts.file = abs
		} else {
			opts.file = args[0]
		}
	}
	return opts
}
