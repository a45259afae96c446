package main

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config is the optional parc.toml configuration file.
type Config struct {
	Verbose int         `toml:"verbose"`
	Trace   bool        `toml:"trace"`
	Watch   WatchConfig `toml:"watch"`
}

// WatchConfig tunes the watch subcommand.
type WatchConfig struct {
	DebounceMS int `toml:"debounce_ms"`
}

func defaultConfig() Config {
	return Config{
		Watch: WatchConfig{DebounceMS: 100},
	}
}

// loadConfig reads the given config file. With an empty path it falls
// back to parc.toml in the current directory, which may be absent.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()

	explicit := path != ""
	if path == "" {
		path = "parc.toml"
	}
	if _, err := os.Stat(path); err != nil {
		if explicit {
			return cfg, fmt.Errorf("read config: %w", err)
		}
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}
