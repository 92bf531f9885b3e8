package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// applyTOML overlays the TOML file at path onto c. A missing file is
// not an error. Only keys present in the file are overlaid; absent
// keys keep their prior values.
func (c *Config) applyTOML(path string) error {
	if path == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading config file %s: %w", path, err)
	}

	// Decode into a copy of the current values so unset keys fall
	// through to the layer below.
	overlay := *c
	overlay.Keys = cloneKeys(c.Keys)
	if err := toml.Unmarshal(data, &overlay); err != nil {
		return fmt.Errorf("parsing config file %s: %w", path, err)
	}
	*c = overlay
	return nil
}

func cloneKeys(src map[string]string) map[string]string {
	dst := make(map[string]string, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}
