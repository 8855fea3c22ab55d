package service

import (
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	"github.com/ozc/nutrigo/internal/model"
)

type RecipeInput struct {
	Name     string
	Servings int
	Notes    string
}

func CreateRecipe(db *sql.DB, in RecipeInput) (int64, error) {
	if strings.TrimSpace(in.Name) == "" {
		return 0, fmt.Errorf("recipe name is required")
	}
	if in.Servings <= 0 {
		return 0, fmt.Errorf("recipe servings must be > 0")
	}
	res, err := db.Exec(`
INSERT INTO recipes(name, servings, notes) VALUES(?, ?, ?)
`, strings.TrimSpace(in.Name), in.Servings, in.Notes)
	if err != nil {
		return 0, fmt.Errorf("create recipe: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("resolve recipe id: %w", err)
	}
	return id, nil
}

func ListRecipes(db *sql.DB) ([]model.Recipe, error) {
	rows, err := db.Query(`
SELECT id, name, servings, COALESCE(notes, ''), created_at, updated_at
FROM recipes ORDER BY id ASC
`)
	if err != nil {
		return nil, fmt.Errorf("list recipes: %w", err)
	}
	defer rows.Close()
	recipes := make([]model.Recipe, 0)
	for rows.Next() {
		var r model.Recipe
		if err := rows.Scan(&r.ID, &r.Name, &r.Servings, &r.Notes, &r.CreatedAt, &r.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan recipe: %w", err)
		}
		recipes = append(recipes, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate recipes: %w", err)
	}
	return recipes, nil
}

// ResolveRecipe loads a recipe by numeric id or name.
func ResolveRecipe(db *sql.DB, identifier string) (model.Recipe, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" {
		return model.Recipe{}, fmt.Errorf("recipe id or name is required")
	}
	query := `
SELECT id, name, servings, COALESCE(notes, ''), created_at, updated_at
FROM recipes WHERE `
	var row *sql.Row
	if id, err := strconv.ParseInt(identifier, 10, 64); err == nil && id > 0 {
		row = db.QueryRow(query+`id = ?`, id)
	} else {
		row = db.QueryRow(query+`name = ?`, identifier)
	}
	var r model.Recipe
	err := row.Scan(&r.ID, &r.Name, &r.Servings, &r.Notes, &r.CreatedAt, &r.UpdatedAt)
	if err == sql.ErrNoRows {
		return model.Recipe{}, fmt.Errorf("recipe %q not found", identifier)
	}
	if err != nil {
		return model.Recipe{}, fmt.Errorf("lookup recipe %q: %w", identifier, err)
	}
	return r, nil
}

func DeleteRecipe(db *sql.DB, identifier string) error {
	recipe, err := ResolveRecipe(db, identifier)
	if err != nil {
		return err
	}
	if _, err := db.Exec(`DELETE FROM recipes WHERE id = ?`, recipe.ID); err != nil {
		return fmt.Errorf("delete recipe %d: %w", recipe.ID, err)
	}
	return nil
}

// AddRecipeLine appends one raw ingredient line to a recipe. Lines are kept
// as entered; resolution happens on demand in RecipeNutrition.
func AddRecipeLine(db *sql.DB, identifier, rawText string) (int64, error) {
	recipe, err := ResolveRecipe(db, identifier)
	if err != nil {
		return 0, err
	}
	rawText = strings.TrimSpace(rawText)
	if rawText == "" {
		return 0, fmt.Errorf("ingredient text is required")
	}
	var position int
	if err := db.QueryRow(`SELECT COALESCE(MAX(position), 0) + 1 FROM recipe_lines WHERE recipe_id = ?`, recipe.ID).Scan(&position); err != nil {
		return 0, fmt.Errorf("next line position: %w", err)
	}
	res, err := db.Exec(`
INSERT INTO recipe_lines(recipe_id, position, raw_text) VALUES(?, ?, ?)
`, recipe.ID, position, rawText)
	if err != nil {
		return 0, fmt.Errorf("add recipe line: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("resolve recipe line id: %w", err)
	}
	return id, nil
}

func ListRecipeLines(db *sql.DB, identifier string) ([]model.RecipeLine, error) {
	recipe, err := ResolveRecipe(db, identifier)
	if err != nil {
		return nil, err
	}
	rows, err := db.Query(`
SELECT id, recipe_id, position, raw_text
FROM recipe_lines WHERE recipe_id = ? ORDER BY position ASC
`, recipe.ID)
	if err != nil {
		return nil, fmt.Errorf("list recipe lines: %w", err)
	}
	defer rows.Close()
	lines := make([]model.RecipeLine, 0)
	for rows.Next() {
		var l model.RecipeLine
		if err := rows.Scan(&l.ID, &l.RecipeID, &l.Position, &l.RawText); err != nil {
			return nil, fmt.Errorf("scan recipe line: %w", err)
		}
		lines = append(lines, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate recipe lines: %w", err)
	}
	return lines, nil
}

func RemoveRecipeLine(db *sql.DB, lineID int64) error {
	if lineID <= 0 {
		return fmt.Errorf("line id must be > 0")
	}
	res, err := db.Exec(`DELETE FROM recipe_lines WHERE id = ?`, lineID)
	if err != nil {
		return fmt.Errorf("remove recipe line %d: %w", lineID, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("read rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("recipe line %d not found", lineID)
	}
	return nil
}

// RecipeReport is a recipe's nutrition resolved from its raw lines: the
// resolved ingredients, any lines that could not be resolved, and the
// aggregated totals with per-serving values.
type RecipeReport struct {
	Recipe      model.Recipe
	Ingredients []*Ingredient
	Skipped     []ResolveFailure
	Total       Totals
	PerServing  Totals
}

// RecipeNutrition resolves every line of a recipe through the ingredient
// pipeline and aggregates the results. Unresolvable lines are reported, not
// fatal, so an incomplete catalog still yields totals for the rest.
func RecipeNutrition(db *sql.DB, units UnitTable, identifier string) (RecipeReport, error) {
	recipe, err := ResolveRecipe(db, identifier)
	if err != nil {
		return RecipeReport{}, err
	}
	lines, err := ListRecipeLines(db, strconv.FormatInt(recipe.ID, 10))
	if err != nil {
		return RecipeReport{}, err
	}
	texts := make([]string, len(lines))
	for i, l := range lines {
		texts[i] = l.RawText
	}

	ingredients, skipped := ResolveAll(db, units, texts)
	total := TotalNutrition(ingredients)
	perServing, err := ServingNutrition(total, recipe.Servings)
	if err != nil {
		return RecipeReport{}, err
	}

	return RecipeReport{
		Recipe:      recipe,
		Ingredients: ingredients,
		Skipped:     skipped,
		Total:       total,
		PerServing:  perServing,
	}, nil
}
