package config

// Config holds user-tunable editor settings.
type Config struct {
	// UITheme names the chrome theme (status bar, gutter).
	UITheme string `toml:"ui_theme"`
	// SyntaxTheme names the token color theme.
	SyntaxTheme string `toml:"syntax_theme"`
	// TabWidth is the display width of a tab stop, in columns.
	TabWidth int `toml:"tab_width"`
	// LineEnding is "lf" or "crlf" and controls how files are written.
	// Buffers always hold LF internally.
	LineEnding string `toml:"line_ending"`
	// Keys maps command names ("file.save") to chords ("ctrl+s").
	// Entries override the default keymap; unknown commands are rejected
	// at load time.
	Keys map[string]string `toml:"keys"`
}

// Default returns the compiled-in settings.
func Default() Config {
	return Config{
		UITheme:     "dark",
		SyntaxTheme: "base16-mocha",
		TabWidth:    4,
		LineEnding:  "lf",
		Keys:        map[string]string{},
	}
}

// Load builds a Config by layering the TOML file at tomlPath and the
// Lua script at luaPath over the defaults. A missing file contributes
// nothing; a malformed one is an error.
func Load(tomlPath, luaPath string) (Config, error) {
	cfg := Default()
	if err := cfg.applyTOML(tomlPath); err != nil {
		return Config{}, err
	}
	if err := cfg.applyScript(luaPath); err != nil {
		return Config{}, err
	}
	cfg.normalize()
	return cfg, nil
}

func (c *Config) normalize() {
	if c.TabWidth < 1 {
		c.TabWidth = 1
	}
	if c.TabWidth > 16 {
		c.TabWidth = 16
	}
	if c.LineEnding != "crlf" {
		c.LineEnding = "lf"
	}
	if c.Keys == nil {
		c.Keys = map[string]string{}
	}
}
