package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"repkg.dev/repkg/internal/domain"
	m "repkg.dev/repkg/internal/model"
)

// rewriteCmd represents the rewrite command.
var rewriteCmd = newRewriteCmd()

func newRewriteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rewrite",
		Short: "Rewrite qualified import references across the tree",
		Long: `Scan every source file under the root and apply the plan's import table,
replacing each old qualified reference with its new form, in both the
exact and the wildcard spelling. Files are written back only when their
content changed, so running the command twice is a no-op the second time.`,
		Args: cobra.ExactArgs(0),
		RunE: func(_ *cobra.Command, _ []string) error {
			return workflow.RewriteImports(context.Background(), domain.RewriteArgs{
				Plan: m.Path(viper.GetString(planFlagName)),
				Root: m.Path(viper.GetString(rootFlagName)),
			})
		},
	}
}

func init() {
	rootCmd.AddCommand(rewriteCmd)
}
