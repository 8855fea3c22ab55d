package nutrigo

import (
	"database/sql"
	"fmt"

	"github.com/ozc/nutrigo/internal/service"
	"github.com/spf13/cobra"
)

var recipeCmd = &cobra.Command{
	Use:   "recipe",
	Short: "Manage recipes of raw ingredient lines",
}

var (
	recipeName     string
	recipeServings int
	recipeNotes    string
)

var recipeAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a recipe",
	RunE: func(cmd *cobra.Command, args []string) error {
		in := service.RecipeInput{
			Name:     recipeName,
			Servings: recipeServings,
			Notes:    recipeNotes,
		}
		return withDB(func(sqldb *sql.DB) error {
			id, err := service.CreateRecipe(sqldb, in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created recipe %d\n", id)
			return nil
		})
	},
}

var recipeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recipes",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			recipes, err := service.ListRecipes(sqldb)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ID\tNAME\tSERVINGS")
			for _, r := range recipes {
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%d\n", r.ID, r.Name, r.Servings)
			}
			return nil
		})
	},
}

var recipeShowCmd = &cobra.Command{
	Use:   "show <id|name>",
	Short: "Show a recipe and its ingredient lines",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			r, err := service.ResolveRecipe(sqldb, args[0])
			if err != nil {
				return err
			}
			lines, err := service.ListRecipeLines(sqldb, args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "ID: %d\nName: %s\nServings: %d\nNotes: %s\n", r.ID, r.Name, r.Servings, r.Notes)
			for _, l := range lines {
				fmt.Fprintf(out, "  %d. %s (line %d)\n", l.Position, l.RawText, l.ID)
			}
			return nil
		})
	},
}

var recipeDeleteCmd = &cobra.Command{
	Use:   "delete <id|name>",
	Short: "Delete a recipe",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			if err := service.DeleteRecipe(sqldb, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted recipe %q\n", args[0])
			return nil
		})
	},
}

var recipeLineCmd = &cobra.Command{
	Use:   "line",
	Short: "Manage recipe ingredient lines",
}

var recipeLineAddCmd = &cobra.Command{
	Use:   "add <recipe> <text>",
	Short: "Append an ingredient line to a recipe",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			id, err := service.AddRecipeLine(sqldb, args[0], args[1])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added line %d\n", id)
			return nil
		})
	},
}

var recipeLineRemoveCmd = &cobra.Command{
	Use:   "remove <line-id>",
	Short: "Remove an ingredient line",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseInt64Arg("line id", args[0])
		if err != nil {
			return err
		}
		return withDB(func(sqldb *sql.DB) error {
			if err := service.RemoveRecipeLine(sqldb, id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed line %d\n", id)
			return nil
		})
	},
}

var recipeNutritionCmd = &cobra.Command{
	Use:   "nutrition <id|name>",
	Short: "Resolve a recipe's lines and report totals per serving",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			report, err := service.RecipeNutrition(sqldb, service.DefaultUnitTable(), args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			printSkipped(cmd.ErrOrStderr(), report.Skipped)
			for _, ing := range report.Ingredients {
				fmt.Fprintf(out, "%s\n", ing)
			}
			printTotals(out, "Total:", report.Total)
			printTotals(out, fmt.Sprintf("Per serving (of %d):", report.Recipe.Servings), report.PerServing)
			return nil
		})
	},
}

func init() {
	recipeAddCmd.Flags().StringVar(&recipeName, "name", "", "Recipe name")
	recipeAddCmd.Flags().IntVar(&recipeServings, "servings", 1, "Servings the recipe yields")
	recipeAddCmd.Flags().StringVar(&recipeNotes, "notes", "", "Notes")
	_ = recipeAddCmd.MarkFlagRequired("name")

	recipeLineCmd.AddCommand(recipeLineAddCmd, recipeLineRemoveCmd)
	recipeCmd.AddCommand(recipeAddCmd, recipeListCmd, recipeShowCmd, recipeDeleteCmd, recipeLineCmd, recipeNutritionCmd)
	rootCmd.AddCommand(recipeCmd)
}
