package controller

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// NewUI creates a UI based on whether interactive mode is enabled.
// When interactive is true, it returns a TUI (Bubble Tea).
// When interactive is false, it returns a SimpleUI (plain text).
func NewUI(cmd *cobra.Command, interactive bool) UI {
	if interactive {
		return NewTUI(cmd.OutOrStdout(), WithInput(cmd.InOrStdin()))
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether w is an interactive terminal.
// Returns false if the output is redirected to a file, a pipe or a buffer.
func IsTTY(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}

	fd := file.Fd()

	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
