package nutrigo

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var dbPath string

var rootCmd = &cobra.Command{
	Use:   "nutrigo",
	Short: "nutrigo turns ingredient text into nutrition facts",
	Long:  "nutrigo resolves free-text ingredient lines (\"100 g of chicken breast\") against a local food catalog and aggregates recipe nutrition totals and per-serving values.",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Path to SQLite database")
}
