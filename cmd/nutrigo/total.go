package nutrigo

import (
	"database/sql"
	"fmt"

	"github.com/ozc/nutrigo/internal/service"
	"github.com/spf13/cobra"
)

var totalServings int

var totalCmd = &cobra.Command{
	Use:   "total <text>...",
	Short: "Aggregate nutrition across ingredient lines",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			ingredients, skipped := service.ResolveAll(sqldb, service.DefaultUnitTable(), args)
			out := cmd.OutOrStdout()
			printSkipped(cmd.ErrOrStderr(), skipped)

			total := service.TotalNutrition(ingredients)
			printTotals(out, fmt.Sprintf("Total (%d ingredients):", len(ingredients)), total)

			if totalServings != 1 {
				perServing, err := service.ServingNutrition(total, totalServings)
				if err != nil {
					return err
				}
				printTotals(out, fmt.Sprintf("Per serving (of %d):", totalServings), perServing)
			}
			return nil
		})
	},
}

func init() {
	totalCmd.Flags().IntVar(&totalServings, "servings", 1, "Number of servings to divide totals by")
	rootCmd.AddCommand(totalCmd)
}
