package highlight

import (
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Style describes how a token is drawn.
type Style struct {
	Foreground colorful.Color
	Bold       bool
	Italic     bool
	Underline  bool
}

// Theme maps token types to styles for one syntax color scheme.
// Themes are independent of grammars: switching themes re-maps styles
// without re-running any lexer.
type Theme struct {
	// Name is the display name of the theme.
	Name string

	// Background is the editor background color.
	Background colorful.Color

	// Foreground is the default text color.
	Foreground colorful.Color

	// Selection is the selection highlight color.
	Selection colorful.Color

	// LineHighlight is the current line background.
	LineHighlight colorful.Color

	// TokenStyles maps token types to their styles.
	TokenStyles map[TokenType]Style
}

// StyleForToken returns the style for a token type, falling back to the
// theme foreground.
func (t *Theme) StyleForToken(tokenType TokenType) Style {
	if style, ok := t.TokenStyles[tokenType]; ok {
		return style
	}
	return Style{Foreground: t.Foreground}
}

// hex parses a hex color literal. Theme definitions are compile-time
// constants, so a malformed literal simply yields black.
func hex(s string) colorful.Color {
	c, _ := colorful.Hex(s)
	return c
}

// Base16MochaTheme returns the default dark syntax theme.
func Base16MochaTheme() *Theme {
	bg := hex("#3b3228")
	fg := hex("#d0c8c6")
	return &Theme{
		Name:          "Base16 Mocha",
		Background:    bg,
		Foreground:    fg,
		Selection:     bg.BlendRgb(hex("#f4bc87"), 0.25),
		LineHighlight: bg.BlendRgb(fg, 0.06),
		TokenStyles: map[TokenType]Style{
			TokenComment:  {Foreground: hex("#7e705a"), Italic: true},
			TokenString:   {Foreground: hex("#beb55b")},
			TokenNumber:   {Foreground: hex("#f4bc87")},
			TokenKeyword:  {Foreground: hex("#a89bb9"), Bold: true},
			TokenTypeName: {Foreground: hex("#f4bc87")},
			TokenConstant: {Foreground: hex("#cb6077")},
			TokenBuiltin:  {Foreground: hex("#8ab3b5")},
			TokenMeta:     {Foreground: hex("#a89bb9")},
			TokenHeading:  {Foreground: hex("#cb6077"), Bold: true},
			TokenBold:     {Foreground: fg, Bold: true},
			TokenItalic:   {Foreground: fg, Italic: true},
			TokenCode:     {Foreground: hex("#beb55b")},
			TokenQuote:    {Foreground: hex("#7e705a"), Italic: true},
			TokenListMark: {Foreground: hex("#8ab3b5")},
			TokenLink:     {Foreground: hex("#8ab3b5"), Underline: true},
		},
	}
}

// MonokaiTheme returns a Monokai-inspired syntax theme.
func MonokaiTheme() *Theme {
	bg := hex("#272822")
	fg := hex("#f8f8f2")
	return &Theme{
		Name:          "Monokai",
		Background:    bg,
		Foreground:    fg,
		Selection:     hex("#49483e"),
		LineHighlight: hex("#3e3d32"),
		TokenStyles: map[TokenType]Style{
			TokenComment:  {Foreground: hex("#75715e"), Italic: true},
			TokenString:   {Foreground: hex("#e6db74")},
			TokenNumber:   {Foreground: hex("#ae81ff")},
			TokenKeyword:  {Foreground: hex("#f92672"), Bold: true},
			TokenTypeName: {Foreground: hex("#66d9ef"), Italic: true},
			TokenConstant: {Foreground: hex("#ae81ff")},
			TokenBuiltin:  {Foreground: hex("#66d9ef")},
			TokenMeta:     {Foreground: hex("#a6e22e")},
			TokenHeading:  {Foreground: hex("#f92672"), Bold: true},
			TokenBold:     {Foreground: fg, Bold: true},
			TokenItalic:   {Foreground: fg, Italic: true},
			TokenCode:     {Foreground: hex("#e6db74")},
			TokenQuote:    {Foreground: hex("#75715e"), Italic: true},
			TokenListMark: {Foreground: hex("#66d9ef")},
			TokenLink:     {Foreground: hex("#66d9ef"), Underline: true},
		},
	}
}

// DraculaTheme returns a Dracula-inspired syntax theme.
func DraculaTheme() *Theme {
	bg := hex("#282a36")
	fg := hex("#f8f8f2")
	return &Theme{
		Name:          "Dracula",
		Background:    bg,
		Foreground:    fg,
		Selection:     hex("#44475a"),
		LineHighlight: hex("#44475a"),
		TokenStyles: map[TokenType]Style{
			TokenComment:  {Foreground: hex("#6272a4"), Italic: true},
			TokenString:   {Foreground: hex("#f1fa8c")},
			TokenNumber:   {Foreground: hex("#bd93f9")},
			TokenKeyword:  {Foreground: hex("#ff79c6"), Bold: true},
			TokenTypeName: {Foreground: hex("#8be9fd"), Italic: true},
			TokenConstant: {Foreground: hex("#bd93f9")},
			TokenBuiltin:  {Foreground: hex("#8be9fd")},
			TokenMeta:     {Foreground: hex("#50fa7b")},
			TokenHeading:  {Foreground: hex("#ff79c6"), Bold: true},
			TokenBold:     {Foreground: fg, Bold: true},
			TokenItalic:   {Foreground: fg, Italic: true},
			TokenCode:     {Foreground: hex("#f1fa8c")},
			TokenQuote:    {Foreground: hex("#6272a4"), Italic: true},
			TokenListMark: {Foreground: hex("#8be9fd")},
			TokenLink:     {Foreground: hex("#8be9fd"), Underline: true},
		},
	}
}

// SolarizedLightTheme returns a Solarized Light syntax theme.
func SolarizedLightTheme() *Theme {
	bg := hex("#fdf6e3")
	fg := hex("#657b83")
	return &Theme{
		Name:          "Solarized Light",
		Background:    bg,
		Foreground:    fg,
		Selection:     hex("#eee8d5"),
		LineHighlight: bg.BlendRgb(fg, 0.05),
		TokenStyles: map[TokenType]Style{
			TokenComment:  {Foreground: hex("#93a1a1"), Italic: true},
			TokenString:   {Foreground: hex("#2aa198")},
			TokenNumber:   {Foreground: hex("#d33682")},
			TokenKeyword:  {Foreground: hex("#859900"), Bold: true},
			TokenTypeName: {Foreground: hex("#b58900")},
			TokenConstant: {Foreground: hex("#cb4b16")},
			TokenBuiltin:  {Foreground: hex("#268bd2")},
			TokenMeta:     {Foreground: hex("#6c71c4")},
			TokenHeading:  {Foreground: hex("#cb4b16"), Bold: true},
			TokenBold:     {Foreground: fg, Bold: true},
			TokenItalic:   {Foreground: fg, Italic: true},
			TokenCode:     {Foreground: hex("#2aa198")},
			TokenQuote:    {Foreground: hex("#93a1a1"), Italic: true},
			TokenListMark: {Foreground: hex("#268bd2")},
			TokenLink:     {Foreground: hex("#268bd2"), Underline: true},
		},
	}
}

// Themes returns all built-in syntax themes, in cycle order.
func Themes() []*Theme {
	return []*Theme{
		Base16MochaTheme(),
		MonokaiTheme(),
		DraculaTheme(),
		SolarizedLightTheme(),
	}
}

// ThemeByName returns the named syntax theme. Matching ignores case
// and treats spaces and hyphens as equal, so the config slug
// "base16-mocha" finds "Base16 Mocha". Unknown names yield the first
// theme.
func ThemeByName(name string) *Theme {
	want := slugify(name)
	themes := Themes()
	for _, t := range themes {
		if slugify(t.Name) == want {
			return t
		}
	}
	return themes[0]
}

func slugify(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), " ", "-")
}

// NextTheme returns the theme following the named one, wrapping around.
// Unknown names yield the first theme.
func NextTheme(name string) *Theme {
	themes := Themes()
	for i, t := range themes {
		if t.Name == name {
			return themes[(i+1)%len(themes)]
		}
	}
	return themes[0]
}

// ThemeNames returns the built-in theme names in cycle order.
func ThemeNames() []string {
	themes := Themes()
	names := make([]string, len(themes))
	for i, t := range themes {
		names[i] = t.Name
	}
	return names
}
