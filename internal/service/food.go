package service

import (
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	"github.com/ozc/nutrigo/internal/model"
	"github.com/ozc/nutrigo/internal/search"
)

// CreateFood adds a catalog food by description and returns its id.
func CreateFood(db *sql.DB, description string) (int64, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return 0, fmt.Errorf("food description is required")
	}
	res, err := db.Exec(`INSERT INTO foods(description) VALUES(?)`, description)
	if err != nil {
		return 0, fmt.Errorf("create food: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("resolve food id: %w", err)
	}
	return id, nil
}

// ListFoods returns the catalog without weight or nutrition rows loaded.
func ListFoods(db *sql.DB) ([]model.Food, error) {
	rows, err := db.Query(`SELECT id, description, created_at FROM foods ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("list foods: %w", err)
	}
	defer rows.Close()
	foods := make([]model.Food, 0)
	for rows.Next() {
		var f model.Food
		if err := rows.Scan(&f.ID, &f.Description, &f.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan food: %w", err)
		}
		foods = append(foods, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate foods: %w", err)
	}
	return foods, nil
}

// ResolveFood loads a food by numeric id or exact description.
func ResolveFood(db *sql.DB, identifier string) (*model.Food, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" {
		return nil, fmt.Errorf("food id or description is required")
	}
	if id, err := strconv.ParseInt(identifier, 10, 64); err == nil && id > 0 {
		return search.FoodByID(db, id)
	}
	var id int64
	err := db.QueryRow(`SELECT id FROM foods WHERE description = ?`, identifier).Scan(&id)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("food %q not found", identifier)
	}
	if err != nil {
		return nil, fmt.Errorf("lookup food %q: %w", identifier, err)
	}
	return search.FoodByID(db, id)
}

// FoodWeightInput describes one weight entry to attach to a food. A zero
// Seq means append after the food's current highest sequence.
type FoodWeightInput struct {
	Seq         int
	Amount      float64
	Description string
	WeightG     float64
	NumDataPts  *int
	StdDev      *float64
}

func AddFoodWeight(db *sql.DB, foodIdentifier string, in FoodWeightInput) (int64, error) {
	food, err := ResolveFood(db, foodIdentifier)
	if err != nil {
		return 0, err
	}
	if strings.TrimSpace(in.Description) == "" {
		return 0, fmt.Errorf("weight description is required")
	}
	if err := validatePositiveFloat("reference amount", in.Amount); err != nil {
		return 0, err
	}
	if err := validatePositiveFloat("weight grams", in.WeightG); err != nil {
		return 0, err
	}
	seq := in.Seq
	if seq <= 0 {
		if err := db.QueryRow(`SELECT COALESCE(MAX(seq), 0) + 1 FROM food_weights WHERE food_id = ?`, food.ID).Scan(&seq); err != nil {
			return 0, fmt.Errorf("next weight seq: %w", err)
		}
	}
	res, err := db.Exec(`
INSERT INTO food_weights(food_id, seq, amount, description, weight_g, num_data_pts, std_dev)
VALUES(?, ?, ?, ?, ?, ?, ?)
`, food.ID, seq, in.Amount, strings.TrimSpace(in.Description), in.WeightG, in.NumDataPts, in.StdDev)
	if err != nil {
		return 0, fmt.Errorf("add food weight: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("resolve food weight id: %w", err)
	}
	return id, nil
}

// SetFoodNutrient upserts one per-100g nutrient value, keyed by tagname.
func SetFoodNutrient(db *sql.DB, foodIdentifier, tagname string, valuePer100G float64) error {
	food, err := ResolveFood(db, foodIdentifier)
	if err != nil {
		return err
	}
	tagname = strings.ToUpper(strings.TrimSpace(tagname))
	if tagname == "" {
		return fmt.Errorf("nutrient tagname is required")
	}
	if err := validateNonNegativeFloat("nutrient value", valuePer100G); err != nil {
		return err
	}
	_, err = db.Exec(`
INSERT INTO food_nutrition(food_id, tagname, value_per_100g)
VALUES(?, ?, ?)
ON CONFLICT(food_id, tagname) DO UPDATE SET value_per_100g = excluded.value_per_100g
`, food.ID, tagname, valuePer100G)
	if err != nil {
		return fmt.Errorf("set food nutrient %s: %w", tagname, err)
	}
	return nil
}

func DeleteFood(db *sql.DB, foodIdentifier string) error {
	food, err := ResolveFood(db, foodIdentifier)
	if err != nil {
		return err
	}
	if _, err := db.Exec(`DELETE FROM foods WHERE id = ?`, food.ID); err != nil {
		return fmt.Errorf("delete food %d: %w", food.ID, err)
	}
	return nil
}
