package config

import (
	"fmt"
	"strings"
)

// Config holds the user settings for a greenscreen session.
// Field names use mapstructure tags for viper and yaml tags for config init.
type Config struct {
	StartScreen string `mapstructure:"start_screen" yaml:"start_screen"`   // First screen shown
	ScreensDir  string `mapstructure:"screens_dir" yaml:"screens_dir"`     // Extra definitions, override built-ins
	Theme       string `mapstructure:"theme" yaml:"theme"`                 // green, amber or white
	Clock       bool   `mapstructure:"clock" yaml:"clock"`                 // Show and tick the header clock
	LogLevel    string `mapstructure:"log_level" yaml:"log_level"`         // Empty disables logging
	LogFile     string `mapstructure:"log_file" yaml:"log_file,omitempty"` // Defaults to greenscreen.log in the config dir
}

// Setting keys.
const (
	KeyStartScreen = "start_screen"
	KeyScreensDir  = "screens_dir"
	KeyTheme       = "theme"
	KeyClock       = "clock"
	KeyLogLevel    = "log_level"
	KeyLogFile     = "log_file"
)

// DefaultStartScreen is the screen shown when none is configured.
const DefaultStartScreen = "SS6T-6"

// Themes lists the phosphor colours the terminal can draw with.
var Themes = []string{"green", "amber", "white"}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		StartScreen: DefaultStartScreen,
		Theme:       "green",
		Clock:       true,
	}
}

// Validate checks settings that viper cannot type check.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.StartScreen) == "" {
		return fmt.Errorf("start_screen must not be empty")
	}

	known := false
	for _, t := range Themes {
		if c.Theme == t {
			known = true
			break
		}
	}
	if !known {
		return fmt.Errorf("unknown theme %q (expected one of %s)", c.Theme, strings.Join(Themes, ", "))
	}

	return nil
}
