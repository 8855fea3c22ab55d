package nutrigo

import (
	"database/sql"
	"fmt"

	"github.com/ozc/nutrigo/internal/service"
	"github.com/spf13/cobra"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve <text>",
	Short: "Resolve one ingredient line to weight and nutrients",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			ing, err := service.ResolveIngredient(sqldb, service.DefaultUnitTable(), args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s\n", ing)
			for _, key := range service.ReportedKeys() {
				v, ok := ing.AmountOf(key)
				if !ok {
					fmt.Fprintf(out, "  %-8s %10s\n", key, "-")
					continue
				}
				fmt.Fprintf(out, "  %-8s %10.2f\n", key, v)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(resolveCmd)
}
