// Greenscreen is a 3270-style green screen terminal.
//
// It shows 80x24 screens from a catalog of YAML definitions, lets the
// operator fill in input fields and moves between screens with the PF keys.
// The built-in catalog ships with the binary; --screens-dir adds or
// replaces screens from a directory.
//
// Usage:
//
//	greenscreen [command] [flags]
//
// Running without arguments opens the terminal on the start screen.
// See 'greenscreen --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/muurk/greenscreen/internal/catalog"
	"github.com/muurk/greenscreen/internal/config"
	"github.com/muurk/greenscreen/internal/logging"
	"github.com/muurk/greenscreen/internal/navigator"
	"github.com/muurk/greenscreen/internal/terminal"
	"github.com/muurk/greenscreen/internal/version"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// Global flags
var (
	configPath string
)

var rootCmd = &cobra.Command{
	Use:   "greenscreen",
	Short: "3270-style green screen terminal",
	Long: `A block-mode terminal emulator for 80x24 green screen applications.

Screens come from a catalog of YAML definitions. Type into the input
fields, press ENTER to submit and use the PF keys (F1-F12, or Alt+F1-F12
for PF13-PF24) to move between screens. ESC is PF3 (END).

If no command is specified, the terminal opens on the start screen.`,
	Version:       version.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runTerminal,
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SetVersionTemplate("greenscreen {{.Version}}\n")

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configPath, "config", "", "Config file (default <config dir>/greenscreen/config.yaml)")
	pf.String("screens-dir", "", "Directory of extra screen definitions")
	pf.String("log-level", "", "Log level (debug, info, warn, error); logging is off when empty")
	pf.String("log-file", "", "Log file (default <config dir>/greenscreen/greenscreen.log when logging is on)")

	rootCmd.Flags().String("start", config.DefaultStartScreen, "Screen to open on")
	rootCmd.Flags().String("theme", "green", "Phosphor colour (green, amber, white)")
	rootCmd.Flags().Bool("clock", true, "Tick the header clock")

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "greenscreen %s\n", version.Get())
	},
}

// setup loads the configuration and starts logging. Every command goes
// through it so flags, environment and config file apply uniformly.
func setup(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(configPath, cmd.Flags())
	if err != nil {
		return nil, err
	}
	if err := logging.Initialize(cfg.LogLevel, cfg.LogFile); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runTerminal(cmd *cobra.Command, args []string) error {
	cfg, err := setup(cmd)
	if err != nil {
		return err
	}
	defer logging.Sync()

	cat, err := catalog.NewDefault(cfg.ScreensDir)
	if err != nil {
		return err
	}

	nav := navigator.New(cat)
	logging.Info("terminal starting",
		zap.String("session", nav.Session()),
		zap.String("start", cfg.StartScreen),
		zap.Int("screens", cat.Len()))

	return terminal.Run(nav, terminal.Options{
		StartScreen: cfg.StartScreen,
		Theme:       cfg.Theme,
		Clock:       cfg.Clock,
	})
}
