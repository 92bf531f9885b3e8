package highlight

// Span is a styled sub-range of a single line.
// StartCol and EndCol are byte offsets within the line, EndCol exclusive.
// Spans are ephemeral: recomputed on demand, never persisted.
type Span struct {
	StartCol int
	EndCol   int
	Type     TokenType
	Style    Style
}

// LineSource retrieves line content by line number.
type LineSource func(line int) string

// Provider produces styled spans for buffer lines, caching per-line
// results so only changed lines are re-lexed. The cache is keyed on the
// line's text plus the lexer state entering the line, so edits invalidate
// exactly the lines whose highlighting can change. Theme changes only
// re-map token styles; the token cache survives them.
type Provider struct {
	grammar *Grammar
	theme   *Theme
	source  LineSource

	// lineCache holds tokens per line, validated against the line text.
	lineCache map[int]*cachedLine

	// stateCache holds lexer states at line ends.
	stateCache map[int]LexerState

	maxCacheSize int
}

// cachedLine holds cached tokenization for one line.
type cachedLine struct {
	text   string
	tokens []Token
	state  LexerState
}

// NewProvider creates a provider for the given grammar and theme.
func NewProvider(grammar *Grammar, theme *Theme, source LineSource) *Provider {
	if grammar == nil {
		grammar = PlainGrammar()
	}
	if theme == nil {
		theme = Base16MochaTheme()
	}
	return &Provider{
		grammar:      grammar,
		theme:        theme,
		source:       source,
		lineCache:    make(map[int]*cachedLine),
		stateCache:   make(map[int]LexerState),
		maxCacheSize: 4096,
	}
}

// Grammar returns the active grammar.
func (p *Provider) Grammar() *Grammar {
	return p.grammar
}

// Theme returns the active theme.
func (p *Provider) Theme() *Theme {
	return p.theme
}

// SetGrammar switches the active grammar and clears the token cache.
func (p *Provider) SetGrammar(g *Grammar) {
	if g == nil || g == p.grammar {
		return
	}
	p.grammar = g
	p.clearCache()
}

// SetTheme switches the active theme. Cached tokens stay valid; only the
// token-to-style mapping changes.
func (p *Provider) SetTheme(t *Theme) {
	if t != nil {
		p.theme = t
	}
}

// SetSource sets the line content source and clears the cache.
func (p *Provider) SetSource(source LineSource) {
	p.source = source
	p.clearCache()
}

// SpansForLine returns an ordered, non-overlapping span sequence covering
// the whole line. Gaps between tokens are filled with the default text
// style. Identical (text, grammar, theme) inputs always produce identical
// spans.
func (p *Provider) SpansForLine(line int) []Span {
	if p.source == nil {
		return nil
	}

	text := p.source(line)
	tokens := p.tokensForLine(line, text)

	spans := make([]Span, 0, len(tokens)*2+1)
	col := 0
	for _, tok := range tokens {
		if tok.StartCol > col {
			spans = append(spans, Span{
				StartCol: col,
				EndCol:   tok.StartCol,
				Type:     TokenText,
				Style:    p.theme.StyleForToken(TokenText),
			})
		}
		spans = append(spans, Span{
			StartCol: tok.StartCol,
			EndCol:   tok.EndCol,
			Type:     tok.Type,
			Style:    p.theme.StyleForToken(tok.Type),
		})
		col = tok.EndCol
	}
	if col < len(text) {
		spans = append(spans, Span{
			StartCol: col,
			EndCol:   len(text),
			Type:     TokenText,
			Style:    p.theme.StyleForToken(TokenText),
		})
	}

	return spans
}

// InvalidateFrom drops cached results for startLine and everything after
// it. A change can alter the lexer state entering every later line, so
// invalidation always extends to the end. The caches are walked
// separately: computeStateUpTo stores states for lines that were never
// individually tokenized, so stateCache can hold keys lineCache lacks.
func (p *Provider) InvalidateFrom(startLine int) {
	for line := range p.lineCache {
		if line >= startLine {
			delete(p.lineCache, line)
		}
	}
	for line := range p.stateCache {
		if line >= startLine {
			delete(p.stateCache, line)
		}
	}
}

// InvalidateAll clears all cached highlighting.
func (p *Provider) InvalidateAll() {
	p.clearCache()
}

// tokensForLine returns tokens for a line, consulting the cache first.
func (p *Provider) tokensForLine(line int, text string) []Token {
	if cached, ok := p.lineCache[line]; ok && cached.text == text {
		return cached.tokens
	}

	prevState := StateNormal
	if line > 0 {
		if state, ok := p.stateCache[line-1]; ok {
			prevState = state
		} else {
			prevState = p.computeStateUpTo(line - 1)
		}
	}

	tokens, endState := p.grammar.HighlightLine(text, prevState)
	p.cacheResult(line, text, tokens, endState)
	return tokens
}

// computeStateUpTo computes and caches lexer states through targetLine.
func (p *Provider) computeStateUpTo(targetLine int) LexerState {
	startLine := 0
	state := StateNormal
	for line := targetLine; line > 0; line-- {
		if s, ok := p.stateCache[line-1]; ok {
			startLine = line
			state = s
			break
		}
	}

	for line := startLine; line <= targetLine; line++ {
		_, state = p.grammar.HighlightLine(p.source(line), state)
		p.stateCache[line] = state
	}
	return state
}

// cacheResult stores one line's tokenization, evicting when full.
func (p *Provider) cacheResult(line int, text string, tokens []Token, state LexerState) {
	if len(p.lineCache) >= p.maxCacheSize {
		p.evict()
	}
	p.lineCache[line] = &cachedLine{text: text, tokens: tokens, state: state}
	p.stateCache[line] = state
}

// evict removes roughly a quarter of the cache.
func (p *Provider) evict() {
	toRemove := len(p.lineCache) / 4
	if toRemove < 16 {
		toRemove = 16
	}
	removed := 0
	for line := range p.lineCache {
		delete(p.lineCache, line)
		delete(p.stateCache, line)
		removed++
		if removed >= toRemove {
			break
		}
	}
}

func (p *Provider) clearCache() {
	p.lineCache = make(map[int]*cachedLine)
	p.stateCache = make(map[int]LexerState)
}
