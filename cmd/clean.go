package cmd

import (
	"github.com/spf13/cobra"

	"dartshake.dev/pkg/dartshake/internal/domain"
)

const cleanLongDescription = `Run the unused-file analysis, show the result and delete the reported files
after confirmation. Deletion is file-by-file: a failed delete is reported and
the rest of the batch continues.`

var cleanYesFlag bool

// cleanCmd represents the clean command.
var cleanCmd = newCleanCmd()

func newCleanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Delete unused source files",
		Long:  cleanLongDescription,
		RunE: func(_ *cobra.Command, _ []string) error {
			report, unused, err := analyzeProject()
			if err != nil {
				return err
			}

			if err := ui.DisplayFilesReport(report); err != nil {
				return err
			}

			if len(unused) == 0 {
				return nil
			}

			if !cleanYesFlag {
				confirmed, err := ui.ConfirmDeletion(len(unused))
				if err != nil {
					return err
				}

				if !confirmed {
					return nil
				}
			}

			cleaner := domain.NewCleaner(fsAdapter)
			result := cleaner.Delete(unused)

			return ui.DisplayCleanResult(result)
		},
	}

	cmd.Flags().BoolVarP(&cleanYesFlag, yesFlagName, "y", false, "delete without asking for confirmation")

	return cmd
}

func init() {
	rootCmd.AddCommand(cleanCmd)
}
