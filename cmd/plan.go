package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"repkg.dev/repkg/internal/domain"
	m "repkg.dev/repkg/internal/model"
)

// planCmd represents the plan command.
var planCmd = newPlanCmd()

func newPlanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "plan",
		Short: "Validate the migration plan and print its tables",
		Long: `Load the migration plan, validate it, and print the move and import
tables along with duplicate-destination warnings. Nothing on disk is
touched.`,
		Args: cobra.ExactArgs(0),
		RunE: func(_ *cobra.Command, _ []string) error {
			return workflow.ShowPlan(context.Background(), domain.PlanArgs{
				Plan: m.Path(viper.GetString(planFlagName)),
			})
		},
	}
}

func init() {
	rootCmd.AddCommand(planCmd)
}
