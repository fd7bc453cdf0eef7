package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/muurk/greenscreen/internal/catalog"
	"github.com/muurk/greenscreen/internal/config"
	"github.com/muurk/greenscreen/internal/screen"
	"github.com/muurk/greenscreen/internal/terminal"
	"github.com/muurk/greenscreen/internal/ui"
)

// Command flags
var (
	showPlain   bool
	configForce bool
)

func init() {
	rootCmd.AddCommand(screensCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(configCmd)

	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)
}

// screensCmd lists the catalog
var screensCmd = &cobra.Command{
	Use:   "screens",
	Short: "List the screens in the catalog",
	Long: `List every screen in the catalog: the built-in screens plus any
definitions loaded from --screens-dir.`,
	Example: `  # Built-in screens
  greenscreen screens

  # Including local definitions
  greenscreen screens --screens-dir ./screens`,
	Args: cobra.NoArgs,
	RunE: runScreens,
}

func runScreens(cmd *cobra.Command, args []string) error {
	cfg, err := setup(cmd)
	if err != nil {
		return err
	}

	cat, err := catalog.NewDefault(cfg.ScreensDir)
	if err != nil {
		return err
	}

	p := ui.NewPrinter(cmd.OutOrStdout())
	p.PrintHeader("Screen Catalog", cmd.CommandPath(), ui.Detail{Key: "Source", Value: source(cfg.ScreensDir)})

	rows := make([][]string, 0, cat.Len())
	for _, id := range cat.IDs() {
		s, err := cat.Lookup(id)
		if err != nil {
			continue
		}
		rows = append(rows, []string{s.ID, s.Title, fieldCount(s), pfKeyList(s)})
	}
	p.PrintTable([]string{"ID", "TITLE", "FIELDS", "PF KEYS"}, rows)
	return nil
}

// fieldCount renders "inputs/total".
func fieldCount(s *screen.Screen) string {
	inputs := 0
	for i := range s.Fields {
		if s.Fields[i].Type.Editable() {
			inputs++
		}
	}
	return fmt.Sprintf("%d/%d", inputs, len(s.Fields))
}

func pfKeyList(s *screen.Screen) string {
	keys := make([]string, 0, len(s.Footer.PFKeys))
	for _, k := range s.Footer.PFKeys {
		keys = append(keys, strconv.Itoa(k.Key))
	}
	return strings.Join(keys, " ")
}

// showCmd prints one screen image
var showCmd = &cobra.Command{
	Use:   "show <screen-id>",
	Short: "Print a screen as the terminal would draw it",
	Long: `Draw a screen from the catalog on the 80x24 grid and print it.

Fields show their initial values. The header date and time are the current
ones unless the screen fixes them.`,
	Example: `  # Framed image
  greenscreen show SS6T-6

  # Raw 24 lines, e.g. for diffing
  greenscreen show MENU-01 --plain`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func init() {
	showCmd.Flags().BoolVar(&showPlain, "plain", false, "Print the 24 lines without a frame")
}

func runShow(cmd *cobra.Command, args []string) error {
	cfg, err := setup(cmd)
	if err != nil {
		return err
	}

	cat, err := catalog.NewDefault(cfg.ScreensDir)
	if err != nil {
		return err
	}

	s, err := cat.Lookup(args[0])
	if errors.Is(err, catalog.ErrScreenNotFound) {
		s, err = cat.Lookup(strings.ToUpper(args[0]))
	}
	if err != nil {
		return fmt.Errorf("%w (see 'greenscreen screens')", err)
	}

	lines := terminal.Draw(s, terminal.Layout{Now: time.Now()}).Lines()

	p := ui.NewPrinter(cmd.OutOrStdout())
	if showPlain {
		p.Print(strings.Join(lines, "\n") + "\n")
		return nil
	}
	p.PrintDisplay(lines)
	return nil
}

// validateCmd checks screen definitions
var validateCmd = &cobra.Command{
	Use:   "validate [dir]",
	Short: "Check screen definitions",
	Long: `Parse and validate screen definitions without opening the terminal.

With a directory argument the YAML files in it are checked; without one the
built-in screens and --screens-dir are checked. Navigation targets are
resolved against the built-in catalog plus the checked screens, and
unknown targets are reported as warnings.`,
	Example: `  # Built-in catalog
  greenscreen validate

  # Local definitions
  greenscreen validate ./screens`,
	Args: cobra.MaximumNArgs(1),
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg, err := setup(cmd)
	if err != nil {
		return err
	}

	dir := cfg.ScreensDir
	if len(args) == 1 {
		dir = args[0]
	}

	p := ui.NewPrinter(cmd.OutOrStdout())
	p.PrintHeader("Validate Screens", cmd.CommandPath(), ui.Detail{Key: "Source", Value: source(dir)})

	cat := catalog.New()
	count, err := cat.LoadDefaults()
	if err == nil && dir != "" {
		count, err = cat.LoadDir(dir)
	}
	if err != nil {
		p.PrintError("Definitions rejected", err, []string{
			"Each file holds one screen or a list of screens",
			"Fields must fit the 80x24 grid without overlapping",
			"PF keys are numbered 1-24 and may appear once per screen",
			"Actions are HELP, END, NEXT, PREVIOUS, EXIT, navigate:<id> or a custom tag",
		})
		return errors.New("validation failed")
	}

	if err := cat.CheckTargets(); err != nil {
		var details []ui.Detail
		for _, e := range unwrapAll(err) {
			details = append(details, ui.Detail{Key: "Target", Value: e.Error()})
		}
		p.PrintWarning(fmt.Sprintf("%d screens valid, with unresolved targets", count), details...)
		return nil
	}

	p.PrintSuccess(fmt.Sprintf("%d screens valid", count),
		ui.Detail{Key: "Screens", Value: strconv.Itoa(count)},
		ui.Detail{Key: "Catalog", Value: strconv.Itoa(cat.Len())},
	)
	return nil
}

func unwrapAll(err error) []error {
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		return joined.Unwrap()
	}
	return []error{err}
}

func source(dir string) string {
	if dir == "" {
		return "built-in"
	}
	return "built-in + " + dir
}

// configCmd groups config file helpers
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the config file",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file",
	Long: `Write a config file holding the default settings.

The file goes to --config when given, otherwise to the per-user config
directory. An existing file is kept unless --force is set.`,
	Args: cobra.NoArgs,
	RunE: runConfigInit,
}

func init() {
	configInitCmd.Flags().BoolVar(&configForce, "force", false, "Overwrite an existing config file")
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	p := ui.NewPrinter(cmd.OutOrStdout())

	path, err := config.WriteDefault(configPath, configForce)
	if errors.Is(err, config.ErrConfigExists) {
		p.PrintWarning("Config file already exists",
			ui.Detail{Key: "Path", Value: path},
			ui.Detail{Key: "Hint", Value: "use --force to overwrite"},
		)
		return nil
	}
	if err != nil {
		p.PrintError("Could not write config file", err, nil)
		return err
	}

	p.PrintSuccess("Config file written", ui.Detail{Key: "Path", Value: path})
	return nil
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file location",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := configPath
		if path == "" {
			var err error
			if path, err = config.GetConfigPath(); err != nil {
				return err
			}
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}
