package highlight

import (
	"regexp"
	"sort"
	"strings"
	"unicode"
)

// Rule is a single-line highlighting rule.
type Rule struct {
	// Pattern is the regex to match.
	Pattern *regexp.Regexp

	// TokenType is the type assigned to matches.
	TokenType TokenType
}

// multiLineRule describes a construct that may span lines.
type multiLineRule struct {
	start     string
	end       string
	tokenType TokenType
	state     LexerState
}

// Grammar is a regex and keyword based lexer for one language.
// Grammars are built once at startup and read-only afterwards;
// HighlightLine is deterministic for identical (line, prevState) inputs.
type Grammar struct {
	name       string
	extensions []string
	rules      []Rule
	keywords   map[string]TokenType
	// multiLine rules are ordered; earlier rules win when both match.
	multiLine []multiLineRule
}

// NewGrammar creates an empty grammar for a language.
func NewGrammar(name string, extensions ...string) *Grammar {
	return &Grammar{
		name:       name,
		extensions: extensions,
		keywords:   make(map[string]TokenType),
	}
}

// Name returns the language name.
func (g *Grammar) Name() string {
	return g.name
}

// Extensions returns the file extensions this grammar handles.
func (g *Grammar) Extensions() []string {
	return g.extensions
}

// AddRule adds a single-line regex rule.
func (g *Grammar) AddRule(pattern string, tokenType TokenType) *Grammar {
	g.rules = append(g.rules, Rule{
		Pattern:   regexp.MustCompile(pattern),
		TokenType: tokenType,
	})
	return g
}

// AddKeywords adds keywords with a specific token type.
func (g *Grammar) AddKeywords(tokenType TokenType, keywords ...string) *Grammar {
	for _, kw := range keywords {
		g.keywords[kw] = tokenType
	}
	return g
}

// AddMultiLine adds a multi-line construct rule.
func (g *Grammar) AddMultiLine(start, end string, tokenType TokenType, state LexerState) *Grammar {
	g.multiLine = append(g.multiLine, multiLineRule{
		start:     start,
		end:       end,
		tokenType: tokenType,
		state:     state,
	})
	return g
}

// HighlightLine tokenizes a single line. prevState is the lexer state at
// the end of the previous line. Returns the tokens sorted by start column
// and the state at the end of this line.
func (g *Grammar) HighlightLine(line string, prevState LexerState) ([]Token, LexerState) {
	if prevState != StateNormal {
		endIdx, found := g.findMultiLineEnd(line, prevState)
		if !found {
			// Entire line is inside the construct.
			return []Token{{
				Type:     g.tokenTypeForState(prevState),
				StartCol: 0,
				EndCol:   len(line),
			}}, prevState
		}

		tokens := []Token{{
			Type:     g.tokenTypeForState(prevState),
			StartCol: 0,
			EndCol:   endIdx,
		}}
		rest, state := g.highlightNormal(line[endIdx:])
		for i := range rest {
			rest[i].StartCol += endIdx
			rest[i].EndCol += endIdx
		}
		return append(tokens, rest...), state
	}

	return g.highlightNormal(line)
}

// highlightNormal tokenizes a line starting in the normal state.
func (g *Grammar) highlightNormal(line string) ([]Token, LexerState) {
	tokens := make([]Token, 0, 8)
	covered := make([]bool, len(line))
	state := StateNormal

	for _, rule := range g.multiLine {
		idx := strings.Index(line, rule.start)
		if idx < 0 || g.isCovered(covered, idx, idx+len(rule.start)) {
			continue
		}
		endIdx := strings.Index(line[idx+len(rule.start):], rule.end)
		if endIdx >= 0 {
			endPos := idx + len(rule.start) + endIdx + len(rule.end)
			tokens = append(tokens, Token{Type: rule.tokenType, StartCol: idx, EndCol: endPos})
			g.markCovered(covered, idx, endPos)
		} else {
			tokens = append(tokens, Token{Type: rule.tokenType, StartCol: idx, EndCol: len(line)})
			g.markCovered(covered, idx, len(line))
			state = rule.state
		}
	}

	for _, rule := range g.rules {
		for _, match := range rule.Pattern.FindAllStringIndex(line, -1) {
			start, end := match[0], match[1]
			if end > start && !g.isCovered(covered, start, end) {
				tokens = append(tokens, Token{Type: rule.TokenType, StartCol: start, EndCol: end})
				g.markCovered(covered, start, end)
			}
		}
	}

	tokens = append(tokens, g.findKeywords(line, covered)...)

	sort.Slice(tokens, func(i, j int) bool {
		return tokens[i].StartCol < tokens[j].StartCol
	})

	return tokens, state
}

// findMultiLineEnd finds the end of the construct prevState belongs to.
func (g *Grammar) findMultiLineEnd(line string, state LexerState) (int, bool) {
	for _, rule := range g.multiLine {
		if rule.state == state {
			idx := strings.Index(line, rule.end)
			if idx >= 0 {
				return idx + len(rule.end), true
			}
			return 0, false
		}
	}
	return 0, false
}

// tokenTypeForState returns the token type for a continuation state.
func (g *Grammar) tokenTypeForState(state LexerState) TokenType {
	for _, rule := range g.multiLine {
		if rule.state == state {
			return rule.tokenType
		}
	}
	return TokenText
}

// findKeywords scans uncovered identifiers and emits tokens for those
// registered as keywords.
func (g *Grammar) findKeywords(line string, covered []bool) []Token {
	var tokens []Token

	i := 0
	for i < len(line) {
		if covered[i] {
			i++
			continue
		}

		r := rune(line[i])
		if !unicode.IsLetter(r) && r != '_' {
			i++
			continue
		}

		start := i
		for i < len(line) {
			r = rune(line[i])
			if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
				break
			}
			i++
		}

		if tokenType, ok := g.keywords[line[start:i]]; ok && !g.isCovered(covered, start, i) {
			tokens = append(tokens, Token{Type: tokenType, StartCol: start, EndCol: i})
			g.markCovered(covered, start, i)
		}
	}

	return tokens
}

func (g *Grammar) isCovered(covered []bool, start, end int) bool {
	for i := start; i < end && i < len(covered); i++ {
		if covered[i] {
			return true
		}
	}
	return false
}

func (g *Grammar) markCovered(covered []bool, start, end int) {
	if start < 0 {
		start = 0
	}
	for i := start; i < end && i < len(covered); i++ {
		covered[i] = true
	}
}
