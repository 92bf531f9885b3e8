package keymap

import (
	"testing"

	"github.com/quillpad/quill/internal/input/key"
)

func TestDefaultShortcuts(t *testing.T) {
	km := Default()

	tests := []struct {
		ev   key.Event
		want Command
	}{
		{key.NewRuneEvent('s', key.ModCtrl), CommandSave},
		{key.NewRuneEvent('o', key.ModCtrl), CommandOpen},
		{key.NewRuneEvent('n', key.ModCtrl), CommandNew},
		{key.NewRuneEvent('s', key.ModMeta), CommandSave},
		{key.NewRuneEvent('S', key.ModCtrl | key.ModShift), CommandSave},
	}

	for _, tt := range tests {
		got, ok := km.Resolve(tt.ev)
		if !ok {
			t.Errorf("%s: expected a command", tt.ev)
			continue
		}
		if got != tt.want {
			t.Errorf("%s: expected %s, got %s", tt.ev, tt.want, got)
		}
	}
}

func TestResolveFallsThrough(t *testing.T) {
	km := Default()

	fallthroughs := []key.Event{
		key.NewRuneEvent('s', key.ModNone),           // plain typing
		key.NewRuneEvent('x', key.ModCtrl),           // unbound chord
		key.NewRuneEvent('s', key.ModCtrl|key.ModAlt), // Alt chords are not ours
		key.NewSpecialEvent(key.KeyEnter, key.ModCtrl),
		key.NewSpecialEvent(key.KeyLeft, key.ModNone),
	}

	for _, ev := range fallthroughs {
		if cmd, ok := km.Resolve(ev); ok {
			t.Errorf("%s: expected fall-through, got %s", ev, cmd)
		}
	}
}

func TestResolveIsPure(t *testing.T) {
	km := Default()
	ev := key.NewRuneEvent('o', key.ModCtrl)

	first, _ := km.Resolve(ev)
	second, _ := km.Resolve(ev)

	if first != second {
		t.Errorf("resolve should be deterministic: %s vs %s", first, second)
	}
}

func TestWithOverrides(t *testing.T) {
	km, err := Default().WithOverrides(map[string]string{
		"file.save": "ctrl+w",
	})
	if err != nil {
		t.Fatalf("overrides failed: %v", err)
	}

	if cmd, ok := km.Resolve(key.NewRuneEvent('w', key.ModCtrl)); !ok || cmd != CommandSave {
		t.Errorf("expected ctrl+w to save, got %s (%v)", cmd, ok)
	}
	// The rebound command loses its stock chord.
	if _, ok := km.Resolve(key.NewRuneEvent('s', key.ModCtrl)); ok {
		t.Error("expected ctrl+s to be unbound after rebinding save")
	}
	// Untouched bindings survive.
	if cmd, _ := km.Resolve(key.NewRuneEvent('o', key.ModCtrl)); cmd != CommandOpen {
		t.Errorf("stock binding lost: %s", cmd)
	}
}

func TestWithOverridesRejectsBadInput(t *testing.T) {
	if _, err := Default().WithOverrides(map[string]string{"file.save": "shift+s"}); err == nil {
		t.Error("expected error for non-primary modifier")
	}
	if _, err := Default().WithOverrides(map[string]string{"file.unknown": "ctrl+s"}); err == nil {
		t.Error("expected error for unknown command")
	}
	if _, err := Default().WithOverrides(map[string]string{"file.save": "ctrl+ss"}); err == nil {
		t.Error("expected error for multi-character key")
	}
}
