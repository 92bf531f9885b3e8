// Package config loads editor settings. Settings are layered: compiled
// defaults, then an optional TOML file, then an optional init.lua
// evaluated in a sandboxed interpreter. Later layers win per field.
package config
