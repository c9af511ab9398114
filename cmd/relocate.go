package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"repkg.dev/repkg/internal/domain"
	m "repkg.dev/repkg/internal/model"
)

// relocateCmd represents the relocate command.
var relocateCmd = newRelocateCmd()

func newRelocateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "relocate",
		Short: "Move files to their new layout and rewrite declarations",
		Long: `Apply the plan's move table, creating destination directories as needed,
then rewrite the namespace declaration of every source file under the
plan's rewrite roots to match its new directory.

Sources are copied, not deleted. Missing sources are warnings; copy and
rewrite failures are reported per file and the run always completes with
summary counts.`,
		Args: cobra.ExactArgs(0),
		RunE: func(_ *cobra.Command, _ []string) error {
			return workflow.Relocate(context.Background(), domain.RelocateArgs{
				Plan: m.Path(viper.GetString(planFlagName)),
				Root: m.Path(viper.GetString(rootFlagName)),
			})
		},
	}
}

func init() {
	rootCmd.AddCommand(relocateCmd)
}
