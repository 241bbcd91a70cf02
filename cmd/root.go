// Package cmd provides the root command and CLI setup for notes.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/kelcheone/notes/internal/adapter"
	"github.com/kelcheone/notes/internal/controller"
	"github.com/kelcheone/notes/internal/domain"
)

var reportStore adapter.ReportStore
var orchestrator domain.Orchestrator
var runner domain.Runner
var workflow domain.Workflow
var ui controller.UI

// reportsOutputDirFlag is a root-level flag shared by commands that read/write reports.
var reportsOutputDirFlag string

// noSaveFlag disables writing a report after a run.
var noSaveFlag bool

var verboseFlag bool
var logFileFlag string

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	reportStore = adapter.NewReportStore()
	orchestrator = domain.NewOrchestrator()
	runner = domain.NewRunner(orchestrator)
	workflow = domain.NewWorkflow(
		reportStore,
		ui,
		runner,
	)
}

const lessonSelectorsHelp = `Lessons can be selected by ID or name:
  - notes run            run every lesson
  - notes run 3          run the third draft
  - notes run strings 2  run several lessons`

const rootLongDescription = `Notes runs the drafts of a language-basics learning file as lessons:
string copies and mutation through pointers, struct methods, enums carrying
data, pattern matching and optional values. Each run prints what the
exercises compute and is kept as a YAML report.

` + lessonSelectorsHelp

const runLongDescription = `Run the exercises of the given lessons (default: all lessons).

` + lessonSelectorsHelp

const listLongDescription = `List lessons with their exercise counts and topics.

` + lessonSelectorsHelp

// rootCmd represents the base command when called without any subcommands.
var rootCmd = baseRootCmd()

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "notes",
		Short: "Language basics lesson runner",
		Long:  rootLongDescription,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))
			warnConfigLoadError(cmd, configLoadErr)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

func newRootCmd() *cobra.Command {
	cmd := baseRootCmd()
	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().
		StringVarP(
			&reportsOutputDirFlag, outputFlagName, "o",
			viper.GetString(outputFlagName),
			"output directory for run reports",
		)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(outputFlagName), outputFlagName)

	cmd.PersistentFlags().BoolVar(&noSaveFlag, noSaveFlagName, viper.GetBool(noSaveFlagName), "do not write a report after a run")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(noSaveFlagName), noSaveFlagName)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "log at debug level")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)

	cmd.PersistentFlags().StringVar(&logFileFlag, logFileFlagName, viper.GetString(logFilenameKey), "log file path")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(logFileFlagName), logFilenameKey)
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
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		stop()
		os.Exit(1)
	}
}
