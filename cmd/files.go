package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"dartshake.dev/pkg/dartshake/internal/domain"
	m "dartshake.dev/pkg/dartshake/internal/model"
)

const filesLongDescription = `Analyze the project's import graph and report every source file under lib
that is not reachable from any entry point (main.dart, or the Flutter default
lib/main.dart).

"part of" files are reported only when their parent file is unused as well;
they are stitched into the parent by the toolchain without an import edge.`

// filesCmd represents the files command.
var filesCmd = newFilesCmd()

func newFilesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "files",
		Short: "Report unused source files",
		Long:  filesLongDescription,
		RunE: func(_ *cobra.Command, _ []string) error {
			report, _, err := analyzeProject()
			if err != nil {
				return err
			}

			return ui.DisplayFilesReport(report)
		},
	}
}

func init() {
	rootCmd.AddCommand(filesCmd)
}

// analyzeProject runs the full engine once and persists the report. It
// returns both the project-relative report and the canonical unused paths so
// the clean command can feed the latter to the deletion boundary.
func analyzeProject() (m.FilesReport, []m.Path, error) {
	cfg, err := runConfigFromFlags()
	if err != nil {
		return m.FilesReport{}, nil, err
	}

	workflow := domain.NewWorkflow(fsAdapter, dartAdapter, pubspecAdapter, cfg)

	analysis, err := workflow.Analyze()
	if err != nil {
		return m.FilesReport{}, nil, fmt.Errorf("analyze project: %w", err)
	}

	report := workflow.Report(analysis)

	if err := reportStore.SaveFilesReport(reportsDir(cfg), report); err != nil {
		slog.Warn("failed to save report", "error", err)
	}

	return report, analysis.Unused, nil
}
