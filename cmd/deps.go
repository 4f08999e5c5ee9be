package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"dartshake.dev/pkg/dartshake/internal/domain"
)

const depsLongDescription = `Compare the packages declared under dependencies in pubspec.yaml with the
package: imports actually present in the source tree and report the ones that
are never imported. SDK-provided packages (sdk: flutter) are always kept.`

// depsCmd represents the deps command.
var depsCmd = newDepsCmd()

func newDepsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "deps",
		Short: "Report unused pubspec dependencies",
		Long:  depsLongDescription,
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := runConfigFromFlags()
			if err != nil {
				return err
			}

			scanner := domain.NewDepsScanner(fsAdapter, dartAdapter, pubspecAdapter, cfg)

			report, err := scanner.Scan()
			if err != nil {
				return fmt.Errorf("scan dependencies: %w", err)
			}

			if err := reportStore.SaveDepsReport(reportsDir(cfg), report); err != nil {
				slog.Warn("failed to save report", "error", err)
			}

			return ui.DisplayDepsReport(report)
		},
	}
}

func init() {
	rootCmd.AddCommand(depsCmd)
}
