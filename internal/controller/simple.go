package controller

import (
	"bufio"
	"bytes"
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "dartshake.dev/pkg/dartshake/internal/model"
)

// SimpleUI implements UI using cobra Command's output, rendering reports as
// plain tables. Suitable for pipes and CI.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayFilesReport prints the unused files as a table with a summary footer.
func (s *SimpleUI) DisplayFilesReport(report m.FilesReport) error {
	if len(report.Unused) == 0 {
		s.printf("No unused files. %d files scanned, %d reachable.\n", report.TotalFiles, report.Reachable)
		return nil
	}

	rows := make([][]string, 0, len(report.Unused))
	for _, path := range report.Unused {
		rows = append(rows, []string{path})
	}

	s.printf("\n%s", renderTable(
		[]string{"Unused File"},
		rows,
		[]string{fmt.Sprintf("Total %d of %d", len(report.Unused), report.TotalFiles)},
	))

	return nil
}

// DisplayKeysReport prints the unused translation keys.
func (s *SimpleUI) DisplayKeysReport(report m.KeysReport) error {
	if len(report.Unused) == 0 {
		s.printf("No unused translation keys. %d keys in %d translation files.\n",
			report.DeclaredKeys, report.TranslationFiles)
		return nil
	}

	rows := make([][]string, 0, len(report.Unused))
	for _, key := range report.Unused {
		rows = append(rows, []string{key})
	}

	s.printf("\n%s", renderTable(
		[]string{"Unused Key"},
		rows,
		[]string{fmt.Sprintf("Total %d of %d", len(report.Unused), report.DeclaredKeys)},
	))

	return nil
}

// DisplayDepsReport prints the unused manifest dependencies.
func (s *SimpleUI) DisplayDepsReport(report m.DepsReport) error {
	if len(report.Unused) == 0 {
		s.printf("No unused dependencies. %d declared.\n", report.Declared)
		return nil
	}

	rows := make([][]string, 0, len(report.Unused))
	for _, dep := range report.Unused {
		rows = append(rows, []string{dep})
	}

	s.printf("\n%s", renderTable(
		[]string{"Unused Dependency"},
		rows,
		[]string{fmt.Sprintf("Total %d of %d", len(report.Unused), report.Declared)},
	))

	return nil
}

// ConfirmDeletion asks for confirmation on the command's input stream.
func (s *SimpleUI) ConfirmDeletion(count int) (bool, error) {
	s.printf("Delete %d file(s)? [y/N]: ", count)

	reader := bufio.NewReader(s.cmd.InOrStdin())

	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return false, nil
	}

	answer := strings.ToLower(strings.TrimSpace(line))

	return answer == "y" || answer == "yes", nil
}

// DisplayCleanResult prints per-file failures and the aggregate count.
func (s *SimpleUI) DisplayCleanResult(result m.CleanResult) error {
	for _, outcome := range result.Outcomes {
		if outcome.Err != nil {
			s.printf("failed: %s (%v)\n", outcome.Path, outcome.Err)
		}
	}

	s.printf("Deleted %d file(s), %d failed.\n", result.Deleted, result.Failed)

	return nil
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func renderTable(header []string, rows [][]string, footer []string) string {
	var buf bytes.Buffer

	table := tablewriter.NewWriter(&buf)
	table.SetHeader(header)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT})

	for _, row := range rows {
		table.Append(row)
	}

	if len(footer) > 0 {
		table.SetFooter(footer)
	}

	table.Render()

	return buf.String()
}
