package service_test

import (
	"database/sql"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/ozc/nutrigo/internal/db"
	"github.com/ozc/nutrigo/internal/service"
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

func seedChicken(t *testing.T, sqldb *sql.DB) {
	t.Helper()
	id, err := service.CreateFood(sqldb, "Chicken, broilers or fryers, breast, meat and skin, raw")
	if err != nil {
		t.Fatalf("seed chicken: %v", err)
	}
	for tag, value := range map[string]float64{
		"ENERC_KCAL": 172.0,
		"PROCNT":     20.85,
		"FAT":        9.25,
	} {
		if err := service.SetFoodNutrient(sqldb, strconv.FormatInt(id, 10), tag, value); err != nil {
			t.Fatalf("seed chicken nutrient %s: %v", tag, err)
		}
	}
}

func seedBread(t *testing.T, sqldb *sql.DB) {
	t.Helper()
	id, err := service.CreateFood(sqldb, "Bread, white, commercially prepared")
	if err != nil {
		t.Fatalf("seed bread: %v", err)
	}
	idStr := strconv.FormatInt(id, 10)
	if _, err := service.AddFoodWeight(sqldb, idStr, service.FoodWeightInput{
		Seq: 1, Amount: 1, Description: "slice", WeightG: 28.0,
	}); err != nil {
		t.Fatalf("seed bread weight: %v", err)
	}
	if err := service.SetFoodNutrient(sqldb, idStr, "ENERC_KCAL", 266); err != nil {
		t.Fatalf("seed bread nutrient: %v", err)
	}
}
