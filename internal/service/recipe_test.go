package service_test

import (
	"math"
	"testing"

	"github.com/ozc/nutrigo/internal/service"
)

func TestCreateRecipeValidatesInput(t *testing.T) {
	sqldb := newTestDB(t)
	if _, err := service.CreateRecipe(sqldb, service.RecipeInput{Name: "", Servings: 1}); err == nil {
		t.Fatalf("expected error for empty name")
	}
	if _, err := service.CreateRecipe(sqldb, service.RecipeInput{Name: "toast", Servings: 0}); err == nil {
		t.Fatalf("expected error for zero servings")
	}
}

func TestRecipeLinesRoundTrip(t *testing.T) {
	sqldb := newTestDB(t)
	id, err := service.CreateRecipe(sqldb, service.RecipeInput{Name: "chicken sandwich", Servings: 2})
	if err != nil {
		t.Fatalf("create recipe: %v", err)
	}
	if id <= 0 {
		t.Fatalf("expected positive recipe id, got %d", id)
	}

	if _, err := service.AddRecipeLine(sqldb, "chicken sandwich", "100 g of chicken breast"); err != nil {
		t.Fatalf("add line: %v", err)
	}
	lineID, err := service.AddRecipeLine(sqldb, "chicken sandwich", "2 slices of bread")
	if err != nil {
		t.Fatalf("add line: %v", err)
	}

	lines, err := service.ListRecipeLines(sqldb, "chicken sandwich")
	if err != nil {
		t.Fatalf("list lines: %v", err)
	}
	if len(lines) != 2 || lines[0].Position != 1 || lines[1].Position != 2 {
		t.Fatalf("expected 2 ordered lines, got %+v", lines)
	}

	if err := service.RemoveRecipeLine(sqldb, lineID); err != nil {
		t.Fatalf("remove line: %v", err)
	}
	lines, err = service.ListRecipeLines(sqldb, "chicken sandwich")
	if err != nil {
		t.Fatalf("list lines: %v", err)
	}
	if len(lines) != 1 {
		t.Fatalf("expected 1 line after removal, got %d", len(lines))
	}
}

func TestRecipeNutritionAggregatesResolvedLines(t *testing.T) {
	sqldb := newTestDB(t)
	seedChicken(t, sqldb)
	seedBread(t, sqldb)

	if _, err := service.CreateRecipe(sqldb, service.RecipeInput{Name: "chicken sandwich", Servings: 2}); err != nil {
		t.Fatalf("create recipe: %v", err)
	}
	for _, line := range []string{
		"100 g of chicken breast", // 172 kcal
		"2 slices of bread",       // 56 g at 266 kcal/100g = 148.96 kcal
		"1 cup of unobtainium",    // unresolvable
	} {
		if _, err := service.AddRecipeLine(sqldb, "chicken sandwich", line); err != nil {
			t.Fatalf("add line %q: %v", line, err)
		}
	}

	report, err := service.RecipeNutrition(sqldb, service.DefaultUnitTable(), "chicken sandwich")
	if err != nil {
		t.Fatalf("recipe nutrition: %v", err)
	}
	if len(report.Ingredients) != 2 {
		t.Fatalf("expected 2 resolved ingredients, got %d", len(report.Ingredients))
	}
	if len(report.Skipped) != 1 {
		t.Fatalf("expected 1 skipped line, got %d", len(report.Skipped))
	}

	wantTotal := 172.0 + 148.96
	if got := report.Total[service.Energy].Amount; math.Abs(got-wantTotal) > 1e-9 {
		t.Fatalf("expected total energy %.2f, got %.2f", wantTotal, got)
	}
	if got := report.PerServing[service.Energy].Amount; math.Abs(got-wantTotal/2) > 1e-9 {
		t.Fatalf("expected per-serving energy %.2f, got %.2f", wantTotal/2, got)
	}
}

func TestRecipeNutritionUnknownRecipe(t *testing.T) {
	sqldb := newTestDB(t)
	if _, err := service.RecipeNutrition(sqldb, service.DefaultUnitTable(), "no such recipe"); err == nil {
		t.Fatalf("expected error for unknown recipe")
	}
}
