package nutrigo

import (
	"database/sql"
	"fmt"
	"os"

	"github.com/ozc/nutrigo/internal/service"
	"github.com/spf13/cobra"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Import and export the food catalog",
}

var catalogExportCmd = &cobra.Command{
	Use:   "export <file>",
	Short: "Export the catalog to a JSON file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			f, err := os.Create(args[0])
			if err != nil {
				return fmt.Errorf("create export file: %w", err)
			}
			defer f.Close()
			if err := service.ExportCatalog(sqldb, f); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported catalog to %s\n", args[0])
			return nil
		})
	},
}

var catalogImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import a JSON catalog file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("open import file: %w", err)
			}
			defer f.Close()
			n, err := service.ImportCatalog(sqldb, f)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d foods\n", n)
			return nil
		})
	},
}

func init() {
	catalogCmd.AddCommand(catalogExportCmd, catalogImportCmd)
	rootCmd.AddCommand(catalogCmd)
}
