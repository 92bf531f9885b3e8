package config

import (
	"fmt"
	"os"

	lua "github.com/yuin/gopher-lua"
)

// applyScript runs the Lua script at path and overlays any fields it
// changed on the `config` global table. A missing script is not an
// error. The interpreter is sandboxed: no file loading, no os/io.
func (c *Config) applyScript(path string) error {
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading init script %s: %w", path, err)
	}

	L := lua.NewState()
	defer L.Close()
	sandbox(L)

	L.SetGlobal("config", c.toLua(L))

	if err := L.DoFile(path); err != nil {
		return fmt.Errorf("running init script %s: %w", path, err)
	}

	return c.fromLua(L.GetGlobal("config"))
}

// sandbox strips the capabilities an init script has no business
// using. The script only reads and mutates the config table.
func sandbox(L *lua.LState) {
	for _, name := range []string{"dofile", "loadfile", "load", "loadstring", "require", "os", "io", "debug"} {
		L.SetGlobal(name, lua.LNil)
	}
	if pkg, ok := L.GetGlobal("package").(*lua.LTable); ok {
		pkg.RawSetString("path", lua.LString(""))
		pkg.RawSetString("cpath", lua.LString(""))
		pkg.RawSetString("loadlib", lua.LNil)
	}
}

func (c *Config) toLua(L *lua.LState) *lua.LTable {
	tbl := L.NewTable()
	tbl.RawSetString("ui_theme", lua.LString(c.UITheme))
	tbl.RawSetString("syntax_theme", lua.LString(c.SyntaxTheme))
	tbl.RawSetString("tab_width", lua.LNumber(c.TabWidth))
	tbl.RawSetString("line_ending", lua.LString(c.LineEnding))
	keys := L.NewTable()
	for cmd, chord := range c.Keys {
		keys.RawSetString(cmd, lua.LString(chord))
	}
	tbl.RawSetString("keys", keys)
	return tbl
}

func (c *Config) fromLua(lv lua.LValue) error {
	tbl, ok := lv.(*lua.LTable)
	if !ok {
		return fmt.Errorf("init script replaced config with %s", lv.Type())
	}

	var err error
	tbl.ForEach(func(k, v lua.LValue) {
		key, isStr := k.(lua.LString)
		if !isStr || err != nil {
			return
		}
		switch string(key) {
		case "ui_theme":
			err = setString(&c.UITheme, string(key), v)
		case "syntax_theme":
			err = setString(&c.SyntaxTheme, string(key), v)
		case "tab_width":
			err = setInt(&c.TabWidth, string(key), v)
		case "line_ending":
			err = setString(&c.LineEnding, string(key), v)
		case "keys":
			err = setKeys(&c.Keys, v)
		}
	})
	return err
}

func setString(dst *string, field string, v lua.LValue) error {
	s, ok := v.(lua.LString)
	if !ok {
		return fmt.Errorf("config.%s must be a string, got %s", field, v.Type())
	}
	*dst = string(s)
	return nil
}

func setInt(dst *int, field string, v lua.LValue) error {
	n, ok := v.(lua.LNumber)
	if !ok {
		return fmt.Errorf("config.%s must be a number, got %s", field, v.Type())
	}
	*dst = int(n)
	return nil
}

func setKeys(dst *map[string]string, v lua.LValue) error {
	tbl, ok := v.(*lua.LTable)
	if !ok {
		return fmt.Errorf("config.keys must be a table, got %s", v.Type())
	}
	keys := map[string]string{}
	var err error
	tbl.ForEach(func(k, val lua.LValue) {
		if err != nil {
			return
		}
		cmd, cmdOK := k.(lua.LString)
		chord, chordOK := val.(lua.LString)
		if !cmdOK || !chordOK {
			err = fmt.Errorf("config.keys entries must be string to string")
			return
		}
		keys[string(cmd)] = string(chord)
	})
	if err != nil {
		return err
	}
	*dst = keys
	return nil
}
