package highlight

// TokenType represents the semantic type of a token.
type TokenType uint8

// Token types for syntax highlighting.
const (
	TokenText TokenType = iota

	TokenComment
	TokenString
	TokenNumber
	TokenKeyword
	TokenTypeName
	TokenConstant
	TokenBuiltin
	TokenMeta

	// Markup (for markdown and friends)
	TokenHeading
	TokenBold
	TokenItalic
	TokenCode
	TokenQuote
	TokenListMark
	TokenLink
)

// String returns the string representation of a token type.
func (t TokenType) String() string {
	if int(t) < len(tokenTypeNames) {
		return tokenTypeNames[t]
	}
	return "unknown"
}

var tokenTypeNames = []string{
	TokenText:     "text",
	TokenComment:  "comment",
	TokenString:   "string",
	TokenNumber:   "number",
	TokenKeyword:  "keyword",
	TokenTypeName: "type",
	TokenConstant: "constant",
	TokenBuiltin:  "builtin",
	TokenMeta:     "meta",
	TokenHeading:  "markup.heading",
	TokenBold:     "markup.bold",
	TokenItalic:   "markup.italic",
	TokenCode:     "markup.code",
	TokenQuote:    "markup.quote",
	TokenListMark: "markup.list",
	TokenLink:     "markup.link",
}

// Token is a typed sub-range of a single line.
// StartCol and EndCol are byte offsets within the line, EndCol exclusive.
type Token struct {
	Type     TokenType
	StartCol int
	EndCol   int
}

// Len returns the length of the token in bytes.
func (t Token) Len() int {
	return t.EndCol - t.StartCol
}

// LexerState carries lexer context across line boundaries, for
// constructs like block comments and raw strings.
type LexerState uint8

// Lexer states.
const (
	StateNormal LexerState = iota
	StateBlockComment
	StateStringBacktick
	StateStringDouble
	StateStringSingle
)
