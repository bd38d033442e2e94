/*
File   : cloudy/config/config.go
Package: config
*/

// Package config loads the REPL/CLI's presentation settings from an
// optional YAML file, generalising the teacher's Repl struct literal
// into something a user can override without recompiling.
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds every banner/prompt/color/history setting the REPL and
// CLI need. Zero value is meaningless; use Default() or Load().
type Config struct {
	Banner  string `yaml:"banner"`
	Version string `yaml:"version"`
	Author  string `yaml:"author"`
	Line    string `yaml:"line"`
	License string `yaml:"license"`
	Prompt  string `yaml:"prompt"`
	Color   bool   `yaml:"color"`
	History string `yaml:"history"`
}

const line = "----------------------------------------------------------------"

const banner = `
   ________                __
  / ____/ /___  __  ______/ /_  __
 / /   / / __ \/ / / / __  / / / /
/ /___/ / /_/ / /_/ / /_/ / /_/ /
\____/_/\____/\__,_/\__,_/\__, /
                         /____/
`

// Default returns the built-in settings used when no config file is
// present, matching the teacher's literal Repl field values in shape.
func Default() *Config {
	return &Config{
		Banner:  banner,
		Version: "v1.0.0",
		Author:  "the Cloudy project",
		Line:    line,
		License: "MIT",
		Prompt:  "cloudy >>> ",
		Color:   true,
		History: "/tmp/.cloudy_history",
	}
}

// Load reads path as YAML, starting from Default() and overwriting
// whichever fields the file sets — so a config file may specify only a
// prompt, say, and inherit the rest. A missing path is not an error:
// Load silently falls back to Default().
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
