package search_test

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/ozc/nutrigo/internal/db"
	"github.com/ozc/nutrigo/internal/model"
	"github.com/ozc/nutrigo/internal/search"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nutrigo.db")
	sqldb, err := db.Open(path)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { sqldb.Close() })
	if err := db.ApplyMigrations(sqldb); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	return sqldb
}

func insertFood(t *testing.T, sqldb *sql.DB, description string) int64 {
	t.Helper()
	res, err := sqldb.Exec(`INSERT INTO foods(description) VALUES(?)`, description)
	if err != nil {
		t.Fatalf("insert food: %v", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		t.Fatalf("food id: %v", err)
	}
	return id
}

func insertWeight(t *testing.T, sqldb *sql.DB, foodID int64, seq int, amount float64, desc string, grams float64) {
	t.Helper()
	if _, err := sqldb.Exec(`
INSERT INTO food_weights(food_id, seq, amount, description, weight_g) VALUES(?, ?, ?, ?, ?)
`, foodID, seq, amount, desc, grams); err != nil {
		t.Fatalf("insert weight: %v", err)
	}
}

func TestMatchOneFoodPicksBestOverlap(t *testing.T) {
	sqldb := newTestDB(t)
	insertFood(t, sqldb, "Bread, white, commercially prepared")
	chickenID := insertFood(t, sqldb, "Chicken, broilers or fryers, breast, meat and skin, raw")

	food, err := search.MatchOneFood(sqldb, "chicken breast")
	if err != nil {
		t.Fatalf("match food: %v", err)
	}
	if food == nil || food.ID != chickenID {
		t.Fatalf("expected chicken food, got %+v", food)
	}
}

func TestMatchOneFoodNoMatchReturnsNil(t *testing.T) {
	sqldb := newTestDB(t)
	insertFood(t, sqldb, "Bread, white, commercially prepared")

	food, err := search.MatchOneFood(sqldb, "unobtainium")
	if err != nil {
		t.Fatalf("match food: %v", err)
	}
	if food != nil {
		t.Fatalf("expected nil for unmatched name, got %+v", food)
	}
}

func TestMatchOneFoodLoadsWeightsAndNutrition(t *testing.T) {
	sqldb := newTestDB(t)
	id := insertFood(t, sqldb, "Bread, white, commercially prepared")
	insertWeight(t, sqldb, id, 1, 1, "slice", 28)
	if _, err := sqldb.Exec(`
INSERT INTO food_nutrition(food_id, tagname, value_per_100g) VALUES(?, 'ENERC_KCAL', 266)
`, id); err != nil {
		t.Fatalf("insert nutrition: %v", err)
	}

	food, err := search.MatchOneFood(sqldb, "bread")
	if err != nil {
		t.Fatalf("match food: %v", err)
	}
	if food == nil {
		t.Fatalf("expected a match")
	}
	if len(food.Weights) != 1 || food.Weights[0].Description != "slice" {
		t.Fatalf("expected slice weight loaded, got %+v", food.Weights)
	}
	if len(food.Nutrition) != 1 || food.Nutrition[0].Tagname != "ENERC_KCAL" {
		t.Fatalf("expected nutrition loaded, got %+v", food.Nutrition)
	}
}

func TestMatchOneWeightEmptyMeasurementPicksFirstSeq(t *testing.T) {
	t.Parallel()
	food := &model.Food{Weights: []model.FoodWeight{
		{Seq: 2, Amount: 1, Description: "cup", WeightG: 240},
		{Seq: 1, Amount: 1, Description: "slice", WeightG: 28},
	}}
	w := search.MatchOneWeight(food, "")
	if w == nil || w.Seq != 1 {
		t.Fatalf("expected first entry by seq, got %+v", w)
	}
}

func TestMatchOneWeightByDescription(t *testing.T) {
	t.Parallel()
	food := &model.Food{Weights: []model.FoodWeight{
		{Seq: 1, Amount: 1, Description: "cup, mashed", WeightG: 230},
		{Seq: 2, Amount: 1, Description: "slice", WeightG: 28},
	}}
	w := search.MatchOneWeight(food, "slice")
	if w == nil || w.Seq != 2 {
		t.Fatalf("expected slice entry, got %+v", w)
	}
}

func TestMatchOneWeightNoMatchReturnsNil(t *testing.T) {
	t.Parallel()
	food := &model.Food{Weights: []model.FoodWeight{
		{Seq: 1, Amount: 1, Description: "cup, pureed", WeightG: 230},
	}}
	if w := search.MatchOneWeight(food, "slice"); w != nil {
		t.Fatalf("expected nil for unmatched measurement, got %+v", w)
	}
}
