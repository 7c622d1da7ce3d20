// Package config loads shell configuration from a TOML file with
// environment variable overrides.
//
// A missing configuration file is not an error; the shell runs with
// defaults. Environment variables prefixed LINESH_ take precedence over
// file values.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Environment variables recognized by the loader.
const (
	envPrompt   = "LINESH_PROMPT"
	envLogLevel = "LINESH_LOG_LEVEL"
	envLogPath  = "LINESH_LOG_PATH"
	envRCPath   = "LINESH_RC"
)

// Config holds all shell settings.
type Config struct {
	Prompt  PromptConfig      `toml:"prompt"`
	Log     LogConfig         `toml:"log"`
	RC      RCConfig          `toml:"rc"`
	Aliases map[string]string `toml:"aliases"`
}

// PromptConfig controls the prompt's text and styling.
type PromptConfig struct {
	// Text is the prompt string, without styling.
	Text string `toml:"text"`

	// Color is an ANSI color name: black, red, green, yellow, blue,
	// magenta, cyan, or white. Empty disables coloring.
	Color string `toml:"color"`

	// Bold renders the prompt in bold.
	Bold bool `toml:"bold"`
}

// LogConfig controls diagnostic logging.
type LogConfig struct {
	// Level is the minimum level to log (debug, info, warn, error).
	Level string `toml:"level"`

	// Path is the log file. Empty logs to stderr.
	Path string `toml:"path"`
}

// RCConfig points at the optional Lua startup script.
type RCConfig struct {
	// Path is the rc file location. Empty uses DefaultRCPath.
	Path string `toml:"path"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Prompt: PromptConfig{
			Text:  "linesh> ",
			Color: "blue",
			Bold:  true,
		},
		Log: LogConfig{
			Level: "info",
		},
		Aliases: make(map[string]string),
	}
}

// DefaultPath returns the standard configuration file location.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "linesh", "linesh.toml")
}

// DefaultRCPath returns the standard rc file location.
func DefaultRCPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "linesh", "rc.lua")
}

// Load reads the configuration file at path, falling back to defaults
// when the file does not exist, then applies environment overrides.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// Not an error; run with defaults.
		case err != nil:
			return cfg, fmt.Errorf("reading config file %s: %w", path, err)
		default:
			if err := toml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("parsing config file %s: %w", path, err)
			}
		}
	}

	cfg.applyEnv()

	if cfg.Aliases == nil {
		cfg.Aliases = make(map[string]string)
	}
	return cfg, nil
}

// applyEnv overlays LINESH_* environment variables onto the config.
func (c *Config) applyEnv() {
	if v, ok := os.LookupEnv(envPrompt); ok {
		c.Prompt.Text = v
	}
	if v, ok := os.LookupEnv(envLogLevel); ok {
		c.Log.Level = v
	}
	if v, ok := os.LookupEnv(envLogPath); ok {
		c.Log.Path = v
	}
	if v, ok := os.LookupEnv(envRCPath); ok {
		c.RC.Path = v
	}
}

// ansiColors maps color names to ANSI SGR codes.
var ansiColors = map[string]string{
	"black":   "30",
	"red":     "31",
	"green":   "32",
	"yellow":  "33",
	"blue":    "34",
	"magenta": "35",
	"cyan":    "36",
	"white":   "37",
}

// Render returns the prompt text wrapped in its ANSI styling.
func (p PromptConfig) Render() string {
	code, ok := ansiColors[p.Color]
	if !ok && !p.Bold {
		return p.Text
	}

	attrs := ""
	if p.Bold {
		attrs = "1"
	}
	if ok {
		if attrs != "" {
			attrs += ";"
		}
		attrs += code
	}
	return "\x1b[" + attrs + "m" + p.Text + "\x1b[0m"
}
