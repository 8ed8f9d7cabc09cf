package cli

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// configFile is the optional per-project config file, looked up in the
// working directory.
const configFile = ".jsoncanvas.toml"

// Config holds CLI defaults that can be set once per project instead of
// repeated as flags. Flags always override config values.
type Config struct {
	// Indent is the number of spaces fmt uses per indentation level.
	Indent int `toml:"indent"`
	// Strict makes validate treat duplicate ids as failures, not warnings.
	Strict bool `toml:"strict"`
}

// defaultConfig returns the settings used when no config file exists.
func defaultConfig() Config {
	return Config{Indent: 2}
}

// loadConfig reads path (or the default config file when path is empty)
// and overlays it on the defaults. A missing default file is not an
// error; a missing explicit --config path is.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()

	explicit := path != ""
	if !explicit {
		path = configFile
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.Indent < 0 {
		return cfg, fmt.Errorf("config %s: indent must not be negative", path)
	}
	return cfg, nil
}
