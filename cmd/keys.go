package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"dartshake.dev/pkg/dartshake/internal/domain"
)

const keysLongDescription = `Scan the project's translation files (assets/translations/*.json and
lib/l10n/*.arb by default) and report keys that never appear as a string
literal in any Dart source file.

Keys assembled at runtime from fragments cannot be detected and may be
reported as unused; review before removing.`

var keysTranslationsFlag []string

// keysCmd represents the keys command.
var keysCmd = newKeysCmd()

func newKeysCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keys",
		Short: "Report unused translation keys",
		Long:  keysLongDescription,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := runConfigFromFlags()
			if err != nil {
				return err
			}

			if globs := viper.GetStringSlice(translationsConfigKey); len(globs) > 0 {
				cfg.TranslationGlobs = globs
			}

			scanner := domain.NewKeysScanner(fsAdapter, cfg)

			report, err := scanner.Scan(cmd.Context())
			if err != nil {
				return fmt.Errorf("scan translation keys: %w", err)
			}

			if err := reportStore.SaveKeysReport(reportsDir(cfg), report); err != nil {
				slog.Warn("failed to save report", "error", err)
			}

			return ui.DisplayKeysReport(report)
		},
	}

	cmd.Flags().StringArrayVarP(
		&keysTranslationsFlag, translationsFlagName, "t",
		viper.GetStringSlice(translationsConfigKey),
		"translation file glob relative to the project root (can be repeated)",
	)
	bindFlagToConfig(cmd.Flags().Lookup(translationsFlagName), translationsConfigKey)

	return cmd
}

func init() {
	rootCmd.AddCommand(keysCmd)
}
