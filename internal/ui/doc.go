// Package ui renders the output of the greenscreen CLI subcommands.
//
// Unlike the interactive terminal, these components follow a "print once and
// exit" pattern: a command header, a listing or screen image, and a success
// or failure box.
//
// # Components
//
//   - Header: command banner showing the operation and its parameters
//   - Table: column listing used by "greenscreen screens"
//   - Display: framed 80x24 screen image used by "greenscreen show"
//   - Result: success, failure and warning boxes
//
// Example:
//
//	p := ui.NewPrinter(cmd.OutOrStdout())
//	p.PrintHeader("Validate Screens", "greenscreen validate", ui.Detail{Key: "Source", Value: dir})
//	if err != nil {
//	    p.PrintError("Definitions rejected", err, []string{"Check field positions"})
//	    return err
//	}
//	p.PrintSuccess("Definitions valid", ui.Detail{Key: "Screens", Value: "6"})
//
// Widths come from the terminal on stdout, clamped between MinTerminalWidth
// and MaxContentWidth. Logging stays silent unless GREENSCREEN_LOG_LEVEL is
// set, so the output is not interleaved with log lines.
package ui
