// Package controller provides the presentation layer: report rendering and
// the interactive deletion prompt. The engine itself never prints.
package controller

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	m "dartshake.dev/pkg/dartshake/internal/model"
)

// UI is the boundary the engine's results are handed to. Implementations can
// be plain text or interactive.
type UI interface {
	// DisplayFilesReport renders the unused-file report.
	DisplayFilesReport(report m.FilesReport) error

	// DisplayKeysReport renders the unused-translation-keys report.
	DisplayKeysReport(report m.KeysReport) error

	// DisplayDepsReport renders the unused-dependencies report.
	DisplayDepsReport(report m.DepsReport) error

	// ConfirmDeletion asks the user whether count files should be deleted.
	ConfirmDeletion(count int) (bool, error)

	// DisplayCleanResult renders the outcome of a deletion batch.
	DisplayCleanResult(result m.CleanResult) error
}

// IsTTY reports whether the writer is an interactive terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return term.IsTerminal(int(f.Fd()))
}

// consoleUI renders everything through SimpleUI but upgrades the deletion
// prompt to the TUI when attached to a terminal.
type consoleUI struct {
	*SimpleUI

	tui *TUI
	tty bool
}

// NewUI builds the default UI for a cobra command.
func NewUI(cmd *cobra.Command, tty bool) UI {
	return &consoleUI{
		SimpleUI: NewSimpleUI(cmd),
		tui:      NewTUI(cmd.OutOrStdout()),
		tty:      tty,
	}
}

func (u *consoleUI) ConfirmDeletion(count int) (bool, error) {
	if u.tty {
		return u.tui.ConfirmDeletion(count)
	}

	return u.SimpleUI.ConfirmDeletion(count)
}
