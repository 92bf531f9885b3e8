package highlight

import (
	"path/filepath"
	"sort"
	"strings"
)

// Registry maps file extensions to grammars.
type Registry struct {
	byExtension map[string]*Grammar
	byName      map[string]*Grammar
	plain       *Grammar
}

// NewRegistry creates a registry containing only the plain-text grammar.
func NewRegistry() *Registry {
	plain := PlainGrammar()
	r := &Registry{
		byExtension: make(map[string]*Grammar),
		byName:      map[string]*Grammar{plain.Name(): plain},
		plain:       plain,
	}
	return r
}

// DefaultRegistry returns a registry with all built-in grammars.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(GoGrammar())
	r.Register(CGrammar())
	r.Register(PythonGrammar())
	r.Register(RustGrammar())
	r.Register(MarkdownGrammar())
	return r
}

// Register adds a grammar to the registry.
func (r *Registry) Register(g *Grammar) {
	r.byName[g.Name()] = g
	for _, ext := range g.Extensions() {
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		r.byExtension[ext] = g
	}
}

// ForPath returns the grammar for a file path, derived from its extension.
// An empty path or an unknown extension selects the plain-text grammar.
func (r *Registry) ForPath(path string) *Grammar {
	if path == "" {
		return r.plain
	}
	return r.ForExtension(filepath.Ext(path))
}

// ForExtension returns the grammar for a file extension, falling back to
// plain text.
func (r *Registry) ForExtension(ext string) *Grammar {
	if ext == "" {
		return r.plain
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	if g, ok := r.byExtension[strings.ToLower(ext)]; ok {
		return g
	}
	return r.plain
}

// ByName returns a grammar by language name.
func (r *Registry) ByName(name string) (*Grammar, bool) {
	g, ok := r.byName[name]
	return g, ok
}

// Languages returns all registered language names, sorted.
func (r *Registry) Languages() []string {
	names := make([]string, 0, len(r.byName))
	for name := range r.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// PlainGrammar returns the fallback grammar: no rules, everything is text.
func PlainGrammar() *Grammar {
	return NewGrammar("text", ".txt")
}

// GoGrammar returns a grammar for Go.
func GoGrammar() *Grammar {
	g := NewGrammar("go", ".go")

	g.AddMultiLine("/*", "*/", TokenComment, StateBlockComment)
	g.AddMultiLine("`", "`", TokenString, StateStringBacktick)

	g.AddRule(`//.*$`, TokenComment)
	g.AddRule(`"(?:[^"\\]|\\.)*"`, TokenString)
	g.AddRule(`'(?:[^'\\]|\\.)'`, TokenString)
	g.AddRule(`\b0[xX][0-9a-fA-F]+\b`, TokenNumber)
	g.AddRule(`\b\d+\.?\d*(?:[eE][+-]?\d+)?\b`, TokenNumber)

	g.AddKeywords(TokenKeyword,
		"if", "else", "for", "range", "switch", "case", "default",
		"break", "continue", "return", "goto", "fallthrough", "select",
		"func", "var", "const", "type", "struct", "interface", "map", "chan",
		"package", "import", "defer", "go")
	g.AddKeywords(TokenConstant, "true", "false", "nil", "iota")
	g.AddKeywords(TokenTypeName,
		"int", "int8", "int16", "int32", "int64",
		"uint", "uint8", "uint16", "uint32", "uint64", "uintptr",
		"float32", "float64", "complex64", "complex128",
		"bool", "byte", "rune", "string", "error", "any")
	g.AddKeywords(TokenBuiltin,
		"make", "new", "len", "cap", "append", "copy", "delete",
		"close", "panic", "recover", "print", "println", "min", "max", "clear")

	return g
}

// CGrammar returns a grammar for C and C++.
func CGrammar() *Grammar {
	g := NewGrammar("c", ".c", ".h", ".cpp", ".hpp", ".cc")

	g.AddMultiLine("/*", "*/", TokenComment, StateBlockComment)

	g.AddRule(`//.*$`, TokenComment)
	g.AddRule(`"(?:[^"\\]|\\.)*"`, TokenString)
	g.AddRule(`'(?:[^'\\]|\\.)'`, TokenString)
	g.AddRule(`^\s*#\s*\w+`, TokenMeta)
	g.AddRule(`\b0[xX][0-9a-fA-F]+\b`, TokenNumber)
	g.AddRule(`\b\d+\.?\d*(?:[eE][+-]?\d+)?[fFlLuU]*\b`, TokenNumber)

	g.AddKeywords(TokenKeyword,
		"if", "else", "for", "while", "do", "switch", "case", "default",
		"break", "continue", "return", "goto", "sizeof", "typedef",
		"struct", "union", "enum", "static", "extern", "register",
		"volatile", "inline", "class", "namespace", "template", "public",
		"private", "protected", "new", "delete", "this", "virtual")
	g.AddKeywords(TokenConstant, "NULL", "true", "false", "nullptr")
	g.AddKeywords(TokenTypeName,
		"int", "long", "double", "float", "char", "unsigned", "signed",
		"void", "short", "auto", "const", "bool", "size_t")

	return g
}

// PythonGrammar returns a grammar for Python.
func PythonGrammar() *Grammar {
	g := NewGrammar("python", ".py", ".pyw", ".pyi")

	g.AddMultiLine(`"""`, `"""`, TokenString, StateStringDouble)
	g.AddMultiLine(`'''`, `'''`, TokenString, StateStringSingle)

	g.AddRule(`#.*$`, TokenComment)
	g.AddRule(`"(?:[^"\\]|\\.)*"`, TokenString)
	g.AddRule(`'(?:[^'\\]|\\.)*'`, TokenString)
	g.AddRule(`\b0[xX][0-9a-fA-F]+\b`, TokenNumber)
	g.AddRule(`\b\d+\.?\d*(?:[eE][+-]?\d+)?j?\b`, TokenNumber)
	g.AddRule(`@\w+`, TokenMeta)

	g.AddKeywords(TokenKeyword,
		"if", "elif", "else", "for", "while", "break", "continue",
		"return", "try", "except", "finally", "raise", "with", "as",
		"match", "case", "def", "class", "lambda", "async", "await",
		"import", "from", "global", "nonlocal", "pass", "yield",
		"assert", "del", "in", "is", "not", "and", "or")
	g.AddKeywords(TokenConstant, "True", "False", "None")
	g.AddKeywords(TokenTypeName,
		"int", "float", "str", "bool", "list", "dict", "set", "tuple",
		"bytes", "object", "type")
	g.AddKeywords(TokenBuiltin,
		"print", "len", "range", "enumerate", "zip", "map", "filter",
		"open", "input", "isinstance", "sorted", "sum", "min", "max",
		"abs", "all", "any", "super")

	return g
}

// RustGrammar returns a grammar for Rust.
func RustGrammar() *Grammar {
	g := NewGrammar("rust", ".rs")

	g.AddMultiLine("/*", "*/", TokenComment, StateBlockComment)

	g.AddRule(`//.*$`, TokenComment)
	g.AddRule(`"(?:[^"\\]|\\.)*"`, TokenString)
	g.AddRule(`#!?\[.*?\]`, TokenMeta)
	g.AddRule(`\b0[xX][0-9a-fA-F_]+\b`, TokenNumber)
	g.AddRule(`\b\d[\d_]*\.?[\d_]*(?:[eE][+-]?[\d_]+)?(?:f32|f64|i\d+|u\d+|isize|usize)?\b`, TokenNumber)

	g.AddKeywords(TokenKeyword,
		"if", "else", "match", "for", "while", "loop", "break", "continue",
		"return", "yield", "fn", "let", "mut", "const", "static", "struct",
		"enum", "trait", "impl", "type", "mod", "use", "crate", "super",
		"self", "pub", "where", "as", "async", "await", "dyn", "move",
		"ref", "unsafe", "extern")
	g.AddKeywords(TokenConstant, "true", "false", "None", "Some", "Ok", "Err")
	g.AddKeywords(TokenTypeName,
		"i8", "i16", "i32", "i64", "i128", "isize",
		"u8", "u16", "u32", "u64", "u128", "usize",
		"f32", "f64", "bool", "char", "str", "String",
		"Vec", "Box", "Option", "Result", "Self")
	g.AddKeywords(TokenBuiltin,
		"println", "print", "format", "panic", "assert", "todo",
		"unimplemented", "unreachable")

	return g
}

// MarkdownGrammar returns a grammar for Markdown.
func MarkdownGrammar() *Grammar {
	g := NewGrammar("markdown", ".md", ".markdown")

	// Order matters: more specific patterns first.
	g.AddRule(`^#{1,6}\s+.*$`, TokenHeading)
	g.AddRule("^```.*$", TokenCode)
	g.AddRule("`[^`]+`", TokenCode)
	g.AddRule(`\*\*[^*]+\*\*`, TokenBold)
	g.AddRule(`__[^_]+__`, TokenBold)
	g.AddRule(`\*[^*]+\*`, TokenItalic)
	g.AddRule(`_[^_]+_`, TokenItalic)
	g.AddRule(`^>\s+.*$`, TokenQuote)
	g.AddRule(`^\s*[-*+]\s+`, TokenListMark)
	g.AddRule(`^\s*\d+\.\s+`, TokenListMark)
	g.AddRule(`\[[^\]]+\]\([^)]+\)`, TokenLink)

	return g
}
