package service_test

import (
	"errors"
	"testing"

	"github.com/ozc/nutrigo/internal/service"
)

func TestResolveAllKeepsOrderAndPartialSuccesses(t *testing.T) {
	sqldb := newTestDB(t)
	seedChicken(t, sqldb)
	seedBread(t, sqldb)

	texts := []string{
		"100 g of chicken breast",
		"1 slice of unobtainium",
		"2 slices of bread",
	}
	ingredients, failures := service.ResolveAll(sqldb, service.DefaultUnitTable(), texts)

	if len(ingredients) != 2 {
		t.Fatalf("expected 2 resolved ingredients, got %d", len(ingredients))
	}
	if ingredients[0].RawText != texts[0] || ingredients[1].RawText != texts[2] {
		t.Fatalf("expected input order preserved, got %q then %q", ingredients[0].RawText, ingredients[1].RawText)
	}

	if len(failures) != 1 {
		t.Fatalf("expected 1 failure, got %d", len(failures))
	}
	if failures[0].Text != texts[1] {
		t.Fatalf("expected failure for %q, got %q", texts[1], failures[0].Text)
	}
	var resErr *service.ResolutionError
	if !errors.As(failures[0].Err, &resErr) || resErr.Kind != service.ErrFoodNotFound {
		t.Fatalf("expected food_not_found failure, got %v", failures[0].Err)
	}
}

func TestResolveAllEmptyInput(t *testing.T) {
	sqldb := newTestDB(t)
	ingredients, failures := service.ResolveAll(sqldb, service.DefaultUnitTable(), nil)
	if len(ingredients) != 0 || len(failures) != 0 {
		t.Fatalf("expected no results for empty input, got %d/%d", len(ingredients), len(failures))
	}
}
