// Package cmd provides the root command and CLI setup for dartshake.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"dartshake.dev/pkg/dartshake/internal/adapter"
	"dartshake.dev/pkg/dartshake/internal/controller"
	"dartshake.dev/pkg/dartshake/internal/domain"
	m "dartshake.dev/pkg/dartshake/internal/model"
)

var fsAdapter adapter.SourceFSAdapter
var dartAdapter adapter.DartFileAdapter
var pubspecAdapter adapter.PubspecAdapter
var reportStore adapter.ReportStore
var ui controller.UI

// projectFlag points at the Dart/Flutter project root to analyze.
var projectFlag string

// reportsOutputDirFlag is a root-level flag shared by commands that write reports.
var reportsOutputDirFlag string

// excludePatterns filters inventory files for all commands.
var excludePatterns []string

// verboseFlag raises the log level to debug.
var verboseFlag bool

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	dartAdapter = adapter.NewLocalDartFileAdapter()
	pubspecAdapter = adapter.NewLocalPubspecAdapter(fsAdapter)
	reportStore = adapter.NewReportStore()
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
}

const rootLongDescription = `dartshake analyzes a Dart or Flutter project and reports source files that
are not reachable from any program entry point, so they can be reviewed and
removed. It can also report unused translation keys and unused pubspec
dependencies.

The project root must contain pubspec.yaml and a lib directory.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = baseRootCmd()

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dartshake",
		Short: "Find unused files in Dart/Flutter projects",
		Long:  rootLongDescription,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(viper.GetString(logFilenameKey), verboseFlag)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVarP(
		&projectFlag, projectFlagName, "C",
		viper.GetString(projectFlagName),
		"path to the project root (must contain pubspec.yaml)",
	)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(projectFlagName), projectFlagName)

	cmd.PersistentFlags().StringVarP(
		&reportsOutputDirFlag, outputFlagName, "o",
		viper.GetString(outputFlagName),
		"output directory for analysis reports",
	)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(outputFlagName), outputFlagName)

	cmd.PersistentFlags().StringArrayVarP(
		&excludePatterns, excludeFlagName, "x",
		viper.GetStringSlice(excludeConfigKey),
		"exclude files matching regex (can be repeated)",
	)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(excludeFlagName), excludeConfigKey)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", false, "enable debug logging")
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// runConfigFromFlags builds the immutable per-run configuration from the
// resolved flag/config values.
func runConfigFromFlags() (domain.RunConfig, error) {
	project := viper.GetString(projectFlagName)
	if project == "" {
		project = "."
	}

	return domain.NewRunConfig(fsAdapter, m.Path(project), viper.GetStringSlice(excludeConfigKey))
}

func reportsDir(cfg domain.RunConfig) m.Path {
	dir := viper.GetString(outputFlagName)
	if dir == "" {
		dir = defaultReportsDir
	}

	if filepath.IsAbs(dir) {
		return m.Path(dir)
	}

	return fsAdapter.JoinPath(string(cfg.ProjectRoot), dir)
}
