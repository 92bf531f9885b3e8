package highlight

import (
	"reflect"
	"testing"
)

func sliceSource(lines []string) LineSource {
	return func(i int) string {
		if i < 0 || i >= len(lines) {
			return ""
		}
		return lines[i]
	}
}

func TestSpansCoverLine(t *testing.T) {
	lines := []string{`func main() { println("hi") }`}
	p := NewProvider(GoGrammar(), MonokaiTheme(), sliceSource(lines))

	spans := p.SpansForLine(0)

	if len(spans) == 0 {
		t.Fatal("expected spans")
	}
	if spans[0].StartCol != 0 {
		t.Errorf("first span should start at 0, got %d", spans[0].StartCol)
	}
	if last := spans[len(spans)-1]; last.EndCol != len(lines[0]) {
		t.Errorf("last span should end at %d, got %d", len(lines[0]), last.EndCol)
	}
	for i := 1; i < len(spans); i++ {
		if spans[i].StartCol != spans[i-1].EndCol {
			t.Errorf("spans not contiguous at %d: %+v then %+v", i, spans[i-1], spans[i])
		}
	}
}

func TestSpansIdempotent(t *testing.T) {
	lines := []string{`x := "s" // c`}
	p := NewProvider(GoGrammar(), DraculaTheme(), sliceSource(lines))

	first := p.SpansForLine(0)
	second := p.SpansForLine(0)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("span sequences differ:\n%+v\n%+v", first, second)
	}
}

func TestProviderReusesCacheForUnchangedLines(t *testing.T) {
	calls := 0
	lines := []string{"func a() {}", "func b() {}"}
	p := NewProvider(GoGrammar(), MonokaiTheme(), func(i int) string {
		calls++
		return lines[i]
	})

	p.SpansForLine(0)
	p.SpansForLine(1)
	before := calls

	// Same text: lexing is cached, only the source lookup happens.
	p.SpansForLine(0)
	if calls != before+1 {
		t.Errorf("expected one source call, got %d", calls-before)
	}
}

func TestProviderInvalidateFrom(t *testing.T) {
	lines := []string{"one", "two", "three"}
	p := NewProvider(GoGrammar(), MonokaiTheme(), sliceSource(lines))
	for i := range lines {
		p.SpansForLine(i)
	}

	p.InvalidateFrom(1)

	if _, ok := p.lineCache[0]; !ok {
		t.Error("line 0 should stay cached")
	}
	if _, ok := p.lineCache[1]; ok {
		t.Error("line 1 should be invalidated")
	}
	if _, ok := p.lineCache[2]; ok {
		t.Error("line 2 should be invalidated")
	}
}

func TestInvalidateFromDropsComputedStates(t *testing.T) {
	// Jumping straight to a later line caches entry states for its
	// predecessors without caching their tokens. An edit above must
	// invalidate those too, or the line is lexed with a stale state.
	lines := []string{"a()", "b()", "c()", "d()", "e()"}
	p := NewProvider(GoGrammar(), MonokaiTheme(), sliceSource(lines))

	p.SpansForLine(4)

	lines[0] = "/*"
	p.InvalidateFrom(0)

	spans := p.SpansForLine(4)
	if len(spans) != 1 || spans[0].Type != TokenComment {
		t.Errorf("expected line 4 inside the comment, got %+v", spans)
	}

	fresh := NewProvider(GoGrammar(), MonokaiTheme(), sliceSource(lines))
	if got := fresh.SpansForLine(4); !reflect.DeepEqual(spans, got) {
		t.Errorf("cached provider diverges from fresh one:\n%+v\n%+v", spans, got)
	}
}

func TestProviderStateFlowsAcrossLines(t *testing.T) {
	lines := []string{"/* open", "inside", "done */ func f() {}"}
	p := NewProvider(GoGrammar(), MonokaiTheme(), sliceSource(lines))

	// Ask for the last line first; the provider must compute the states
	// of the preceding lines.
	spans := p.SpansForLine(2)

	if spans[0].Type != TokenComment {
		t.Errorf("expected leading comment span, got %s", spans[0].Type)
	}
	found := false
	for _, s := range spans {
		if s.Type == TokenKeyword {
			found = true
		}
	}
	if !found {
		t.Error("expected keyword span after comment close")
	}
}

func TestSetThemeKeepsTokenCache(t *testing.T) {
	lines := []string{"func main() {}"}
	p := NewProvider(GoGrammar(), MonokaiTheme(), sliceSource(lines))
	p.SpansForLine(0)

	p.SetTheme(DraculaTheme())

	if len(p.lineCache) == 0 {
		t.Error("theme change should not clear the token cache")
	}
	spans := p.SpansForLine(0)
	want := DraculaTheme().StyleForToken(TokenKeyword)
	if spans[0].Style != want {
		t.Errorf("expected restyled span, got %+v", spans[0].Style)
	}
}

func TestSetGrammarClearsCache(t *testing.T) {
	lines := []string{"func main() {}"}
	p := NewProvider(GoGrammar(), MonokaiTheme(), sliceSource(lines))
	p.SpansForLine(0)

	p.SetGrammar(PlainGrammar())

	if len(p.lineCache) != 0 {
		t.Error("grammar change should clear the token cache")
	}
	spans := p.SpansForLine(0)
	if len(spans) != 1 || spans[0].Type != TokenText {
		t.Errorf("expected a single text span under the plain grammar, got %+v", spans)
	}
}

func TestNextThemeCycles(t *testing.T) {
	names := ThemeNames()

	seen := map[string]bool{}
	name := names[0]
	for range names {
		seen[name] = true
		name = NextTheme(name).Name
	}

	if name != names[0] {
		t.Errorf("cycle should wrap to %q, got %q", names[0], name)
	}
	if len(seen) != len(names) {
		t.Errorf("cycle visited %d themes, want %d", len(seen), len(names))
	}
}

func TestThemeByName(t *testing.T) {
	if th := ThemeByName("Monokai"); th.Name != "Monokai" {
		t.Errorf("expected Monokai, got %q", th.Name)
	}
	if th := ThemeByName("base16-mocha"); th.Name != "Base16 Mocha" {
		t.Errorf("expected slug to match Base16 Mocha, got %q", th.Name)
	}
	if th := ThemeByName("nope"); th.Name != "Base16 Mocha" {
		t.Errorf("expected fallback to first theme, got %q", th.Name)
	}
}
