package renderer

import "github.com/lucasb-eyer/go-colorful"

// UITheme colors the editor chrome: the status line and prompts. Text
// area colors come from the syntax theme.
type UITheme struct {
	Name     string
	StatusBg colorful.Color
	StatusFg colorful.Color
	AccentFg colorful.Color
	PromptBg colorful.Color
	PromptFg colorful.Color
}

func hex(s string) colorful.Color {
	c, _ := colorful.Hex(s)
	return c
}

// DarkUITheme is the default chrome.
func DarkUITheme() UITheme {
	return UITheme{
		Name:     "dark",
		StatusBg: hex("#2b2b2b"),
		StatusFg: hex("#d0d0d0"),
		AccentFg: hex("#f7c95c"),
		PromptBg: hex("#1f1f1f"),
		PromptFg: hex("#e8e8e8"),
	}
}

// LightUITheme is the light chrome.
func LightUITheme() UITheme {
	return UITheme{
		Name:     "light",
		StatusBg: hex("#d8d4cc"),
		StatusFg: hex("#3a3632"),
		AccentFg: hex("#8a5a00"),
		PromptBg: hex("#e8e4dc"),
		PromptFg: hex("#2a2620"),
	}
}

// UIThemeByName maps a chrome theme name to its palette. Unknown names
// render dark.
func UIThemeByName(name string) UITheme {
	if name == "light" {
		return LightUITheme()
	}
	return DarkUITheme()
}
