package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.UITheme != "dark" {
		t.Errorf("expected ui theme %q, got %q", "dark", cfg.UITheme)
	}
	if cfg.SyntaxTheme != "base16-mocha" {
		t.Errorf("expected syntax theme %q, got %q", "base16-mocha", cfg.SyntaxTheme)
	}
	if cfg.TabWidth != 4 {
		t.Errorf("expected tab width 4, got %d", cfg.TabWidth)
	}
}

func TestLoadMissingFiles(t *testing.T) {
	dir := t.TempDir()
	cfg, err := Load(filepath.Join(dir, "none.toml"), filepath.Join(dir, "none.lua"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.UITheme != "dark" || cfg.SyntaxTheme != "base16-mocha" || cfg.TabWidth != 4 {
		t.Errorf("missing files should yield defaults, got %+v", cfg)
	}
}

func TestLoadTOMLOverlay(t *testing.T) {
	toml := writeTemp(t, "quill.toml", `
ui_theme = "light"
tab_width = 8

[keys]
"file.save" = "ctrl+w"
`)
	cfg, err := Load(toml, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.UITheme != "light" {
		t.Errorf("expected ui theme %q, got %q", "light", cfg.UITheme)
	}
	if cfg.SyntaxTheme != "base16-mocha" {
		t.Errorf("unset key should keep default, got %q", cfg.SyntaxTheme)
	}
	if cfg.TabWidth != 8 {
		t.Errorf("expected tab width 8, got %d", cfg.TabWidth)
	}
	if cfg.Keys["file.save"] != "ctrl+w" {
		t.Errorf("expected key override, got %v", cfg.Keys)
	}
}

func TestLoadTOMLMalformed(t *testing.T) {
	toml := writeTemp(t, "quill.toml", "ui_theme = [broken")
	_, err := Load(toml, "")
	if err == nil {
		t.Fatal("expected parse error")
	}
	if !strings.Contains(err.Error(), "parsing config file") {
		t.Errorf("unexpected error text: %v", err)
	}
}

func TestLoadScriptOverridesTOML(t *testing.T) {
	toml := writeTemp(t, "quill.toml", `ui_theme = "light"`)
	script := writeTemp(t, "init.lua", `
config.ui_theme = "dark"
config.tab_width = 2
config.keys["file.quit"] = "ctrl+d"
`)
	cfg, err := Load(toml, script)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.UITheme != "dark" {
		t.Errorf("script should win over file, got %q", cfg.UITheme)
	}
	if cfg.TabWidth != 2 {
		t.Errorf("expected tab width 2, got %d", cfg.TabWidth)
	}
	if cfg.Keys["file.quit"] != "ctrl+d" {
		t.Errorf("expected script key override, got %v", cfg.Keys)
	}
}

func TestLoadScriptReadsCurrentValues(t *testing.T) {
	toml := writeTemp(t, "quill.toml", `tab_width = 8`)
	script := writeTemp(t, "init.lua", `config.tab_width = config.tab_width * 2`)
	cfg, err := Load(toml, script)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.TabWidth != 16 {
		t.Errorf("expected tab width 16, got %d", cfg.TabWidth)
	}
}

func TestLoadScriptBadType(t *testing.T) {
	script := writeTemp(t, "init.lua", `config.tab_width = "wide"`)
	_, err := Load("", script)
	if err == nil {
		t.Fatal("expected type error")
	}
	if !strings.Contains(err.Error(), "tab_width must be a number") {
		t.Errorf("unexpected error text: %v", err)
	}
}

func TestLoadScriptError(t *testing.T) {
	script := writeTemp(t, "init.lua", `error("boom")`)
	_, err := Load("", script)
	if err == nil {
		t.Fatal("expected script error")
	}
}

func TestLoadScriptSandboxed(t *testing.T) {
	script := writeTemp(t, "init.lua", `
if os ~= nil or io ~= nil or loadfile ~= nil then
	error("sandbox leak")
end
`)
	if _, err := Load("", script); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestNormalizeClampsTabWidth(t *testing.T) {
	toml := writeTemp(t, "quill.toml", `tab_width = 0`)
	cfg, err := Load(toml, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.TabWidth != 1 {
		t.Errorf("expected tab width clamped to 1, got %d", cfg.TabWidth)
	}
}

func TestNormalizeLineEnding(t *testing.T) {
	toml := writeTemp(t, "quill.toml", `line_ending = "crlf"`)
	cfg, err := Load(toml, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.LineEnding != "crlf" {
		t.Errorf("expected crlf, got %q", cfg.LineEnding)
	}

	toml = writeTemp(t, "quill.toml", `line_ending = "cr"`)
	cfg, err = Load(toml, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.LineEnding != "lf" {
		t.Errorf("unknown line ending should normalize to lf, got %q", cfg.LineEnding)
	}
}
