// Package cmd provides the root command and CLI setup for repkg.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"repkg.dev/repkg/internal/adapter"
	"repkg.dev/repkg/internal/controller"
	"repkg.dev/repkg/internal/domain"
)

var fsAdapter adapter.SourceFSAdapter
var planStore adapter.PlanStore
var relocator *domain.Relocator
var rewriter *domain.Rewriter
var workflow domain.Workflow
var ui controller.UI

// planFileFlag selects the migration plan applied by all commands.
var planFileFlag string

// rootDirFlag overrides the tree root declared in the plan.
var rootDirFlag string

// verboseFlag switches file logging to debug level.
var verboseFlag bool

// logFileFlag overrides the log file location.
var logFileFlag string

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	ui = controller.NewSimpleUI(rootCmd, controller.IsTTY(os.Stdout))
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	planStore = adapter.NewYAMLPlanStore()
	relocator = domain.NewRelocator(fsAdapter)
	rewriter = domain.NewRewriter(fsAdapter)
	workflow = domain.NewWorkflow(planStore, ui, relocator, rewriter)
}

const rootLongDescription = `Repkg reorganizes a source tree according to a migration plan: it relocates
files into a new directory layout, rewrites their namespace declarations to
match the new location, and rewrites qualified import references across the
whole tree.

A run is best effort: missing sources and per-file I/O errors are reported
and counted, but never abort the batch. There is no rollback and no
verification that the result compiles.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repkg",
		Short: "Plan-driven source tree reorganization",
		Long:  rootLongDescription,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(viper.GetString(logFileFlagName), viper.GetBool(verboseFlagName))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().
		StringVarP(
			&planFileFlag, planFlagName, "p",
			viper.GetString(planFlagName),
			"migration plan file",
		)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(planFlagName), planFlagName)

	cmd.PersistentFlags().
		StringVarP(
			&rootDirFlag, rootFlagName, "r",
			viper.GetString(rootFlagName),
			"tree root (overrides the plan's root)",
		)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(rootFlagName), rootFlagName)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "log at debug level")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), verboseFlagName)

	cmd.PersistentFlags().StringVar(&logFileFlag, logFileFlagName, viper.GetString(logFilenameKey), "log file location")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(logFileFlagName), logFileFlagName)
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
