package main

import (
	"github.com/BurntSushi/toml"
)

// Config holds run-mode defaults, overridable by command-line flags.
type Config struct {
	Verbose  bool `toml:"verbose"`
	Color    bool `toml:"color"`
	MaxSteps int  `toml:"max_steps"`
}

// LoadConfig reads a TOML config file; an empty path yields the defaults.
func LoadConfig(path string) (conf *Config, err error) {
	conf = &Config{Color: true}
	if len(path) == 0 {
		return
	}

	_, err = toml.DecodeFile(path, conf)
	return
}
