package service_test

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/ozc/nutrigo/internal/service"
)

const testCatalogJSON = `{
  "foods": [
    {
      "description": "Bread, whole-wheat, commercially prepared",
      "weights": [
        {"seq": 1, "amount": 1, "description": "slice", "weight_g": 32}
      ],
      "nutrition": [
        {"tagname": "ENERC_KCAL", "value_per_100g": 252},
        {"tagname": "FIBTG", "value_per_100g": 6}
      ]
    }
  ]
}`

func TestImportCatalogThenResolve(t *testing.T) {
	sqldb := newTestDB(t)

	n, err := service.ImportCatalog(sqldb, strings.NewReader(testCatalogJSON))
	if err != nil {
		t.Fatalf("import catalog: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected 1 imported food, got %d", n)
	}

	ing, err := service.ResolveIngredient(sqldb, service.DefaultUnitTable(), "2 slices of whole-wheat bread")
	if err != nil {
		t.Fatalf("resolve imported food: %v", err)
	}
	if math.Abs(ing.WeightG-64.0) > 1e-9 {
		t.Fatalf("expected 64 g, got %.2f", ing.WeightG)
	}
	if v, ok := ing.AmountOf(service.Fiber); !ok || math.Abs(v-3.84) > 1e-9 {
		t.Fatalf("expected fiber 3.84, got %.4f (ok=%v)", v, ok)
	}
}

func TestImportCatalogReplacesExistingRows(t *testing.T) {
	sqldb := newTestDB(t)

	if _, err := service.ImportCatalog(sqldb, strings.NewReader(testCatalogJSON)); err != nil {
		t.Fatalf("first import: %v", err)
	}
	// second import of the same doc must replace, not duplicate
	if _, err := service.ImportCatalog(sqldb, strings.NewReader(testCatalogJSON)); err != nil {
		t.Fatalf("second import: %v", err)
	}

	food, err := service.ResolveFood(sqldb, "Bread, whole-wheat, commercially prepared")
	if err != nil {
		t.Fatalf("resolve food: %v", err)
	}
	if len(food.Weights) != 1 || len(food.Nutrition) != 2 {
		t.Fatalf("expected 1 weight and 2 nutrition rows, got %d/%d", len(food.Weights), len(food.Nutrition))
	}
}

func TestImportCatalogFailureLeavesNothing(t *testing.T) {
	sqldb := newTestDB(t)

	// second food carries an invalid weight; the first must not survive
	const badCatalogJSON = `{
  "foods": [
    {
      "description": "Rice, white, long-grain, cooked",
      "nutrition": [{"tagname": "ENERC_KCAL", "value_per_100g": 130}]
    },
    {
      "description": "Cheese, cheddar",
      "weights": [{"seq": 1, "amount": 1, "description": "slice", "weight_g": -5}]
    }
  ]
}`
	if _, err := service.ImportCatalog(sqldb, strings.NewReader(badCatalogJSON)); err == nil {
		t.Fatalf("expected error for invalid weight")
	}

	foods, err := service.ListFoods(sqldb)
	if err != nil {
		t.Fatalf("list foods: %v", err)
	}
	if len(foods) != 0 {
		t.Fatalf("expected empty catalog after failed import, got %d foods", len(foods))
	}
}

func TestExportCatalogRoundTrip(t *testing.T) {
	sqldb := newTestDB(t)
	seedBread(t, sqldb)

	var buf bytes.Buffer
	if err := service.ExportCatalog(sqldb, &buf); err != nil {
		t.Fatalf("export catalog: %v", err)
	}
	if !strings.Contains(buf.String(), "Bread, white, commercially prepared") {
		t.Fatalf("expected exported doc to contain the seeded food, got %s", buf.String())
	}

	fresh := newTestDB(t)
	if _, err := service.ImportCatalog(fresh, &buf); err != nil {
		t.Fatalf("import exported doc: %v", err)
	}
	ing, err := service.ResolveIngredient(fresh, service.DefaultUnitTable(), "2 slices of bread")
	if err != nil {
		t.Fatalf("resolve after round trip: %v", err)
	}
	if math.Abs(ing.WeightG-56.0) > 1e-9 {
		t.Fatalf("expected 56 g, got %.2f", ing.WeightG)
	}
}
