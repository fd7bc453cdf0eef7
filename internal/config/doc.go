// Package config resolves the settings for a greenscreen session.
//
// Settings are layered with viper. From lowest to highest precedence:
//
//  1. Built-in defaults (see Default)
//  2. config.yaml in the configuration directory
//  3. GREENSCREEN_* environment variables (GREENSCREEN_START_SCREEN, ...)
//  4. Command line flags that were set explicitly
//
// # Configuration File Location
//
//   - Linux: $XDG_CONFIG_HOME/greenscreen/config.yaml or $HOME/.config/greenscreen/config.yaml
//   - macOS: $HOME/.config/greenscreen/config.yaml
//   - Windows: %LOCALAPPDATA%\greenscreen\config.yaml
//
// The log file defaults to greenscreen.log in the same directory.
//
// # Usage Example
//
//	cfg, err := config.Load("", cmd.Flags())
//	if err != nil {
//	    return err
//	}
//	cat, err := catalog.NewDefault(cfg.ScreensDir)
//
// WriteDefault creates a commented starter file. Writes go to a temporary
// file that is renamed into place.
package config
