package nutrigo

import (
	"database/sql"
	"fmt"

	"github.com/ozc/nutrigo/internal/service"
	"github.com/spf13/cobra"
)

var foodCmd = &cobra.Command{
	Use:   "food",
	Short: "Manage the local food catalog",
}

var foodAddCmd = &cobra.Command{
	Use:   "add <description>",
	Short: "Add a food to the catalog",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			id, err := service.CreateFood(sqldb, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created food %d\n", id)
			return nil
		})
	},
}

var foodListCmd = &cobra.Command{
	Use:   "list",
	Short: "List catalog foods",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			foods, err := service.ListFoods(sqldb)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ID\tDESCRIPTION")
			for _, f := range foods {
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\n", f.ID, f.Description)
			}
			return nil
		})
	},
}

var foodShowCmd = &cobra.Command{
	Use:   "show <id|description>",
	Short: "Show a food with its weights and nutrients",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			food, err := service.ResolveFood(sqldb, args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "ID: %d\nDescription: %s\n", food.ID, food.Description)
			for _, w := range food.Weights {
				fmt.Fprintf(out, "  weight %d: %.2f %s = %.2f g\n", w.Seq, w.Amount, w.Description, w.WeightG)
			}
			for _, n := range food.Nutrition {
				fmt.Fprintf(out, "  nutrient %s: %.2f per 100 g\n", n.Tagname, n.ValuePer100G)
			}
			return nil
		})
	},
}

var foodDeleteCmd = &cobra.Command{
	Use:   "delete <id|description>",
	Short: "Delete a food",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			if err := service.DeleteFood(sqldb, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted food %q\n", args[0])
			return nil
		})
	},
}

var (
	weightSeq    int
	weightAmount float64
	weightDesc   string
	weightGrams  float64
)

var foodWeightAddCmd = &cobra.Command{
	Use:   "weight <id|description>",
	Short: "Attach a weight entry to a food",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		in := service.FoodWeightInput{
			Seq:         weightSeq,
			Amount:      weightAmount,
			Description: weightDesc,
			WeightG:     weightGrams,
		}
		return withDB(func(sqldb *sql.DB) error {
			id, err := service.AddFoodWeight(sqldb, args[0], in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added weight entry %d\n", id)
			return nil
		})
	},
}

var nutrientValue float64

var foodNutrientSetCmd = &cobra.Command{
	Use:   "nutrient <id|description> <tagname>",
	Short: "Set a per-100g nutrient value by tagname",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			if err := service.SetFoodNutrient(sqldb, args[0], args[1], nutrientValue); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Set %s for food %q\n", args[1], args[0])
			return nil
		})
	},
}

func init() {
	foodWeightAddCmd.Flags().IntVar(&weightSeq, "seq", 0, "Sequence number (0 appends)")
	foodWeightAddCmd.Flags().Float64Var(&weightAmount, "amount", 1, "Reference amount")
	foodWeightAddCmd.Flags().StringVar(&weightDesc, "desc", "", "Measurement description, e.g. slice")
	foodWeightAddCmd.Flags().Float64Var(&weightGrams, "grams", 0, "Weight in grams of the reference amount")
	_ = foodWeightAddCmd.MarkFlagRequired("desc")
	_ = foodWeightAddCmd.MarkFlagRequired("grams")

	foodNutrientSetCmd.Flags().Float64Var(&nutrientValue, "value", 0, "Nutrient value per 100 g")
	_ = foodNutrientSetCmd.MarkFlagRequired("value")

	foodCmd.AddCommand(foodAddCmd, foodListCmd, foodShowCmd, foodDeleteCmd, foodWeightAddCmd, foodNutrientSetCmd)
	rootCmd.AddCommand(foodCmd)
}
