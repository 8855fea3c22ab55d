package service

import (
	"database/sql"
	"fmt"

	"github.com/ozc/nutrigo/internal/model"
	"github.com/ozc/nutrigo/internal/parse"
	"github.com/ozc/nutrigo/internal/search"
)

// Ingredient is one fully resolved ingredient line: the parsed fields, the
// catalog food they matched, and the weight in grams derived from either an
// explicit unit or a food-specific weight entry. It is immutable after
// ResolveIngredient returns it.
type Ingredient struct {
	RawText     string
	Amount      float64
	Unit        string
	Measurement string
	Name        string
	Food        *model.Food
	WeightG     float64
}

// ResolveIngredient runs the full parse -> match -> weigh pipeline for one
// free-text line, e.g. "100 g of chicken breast". Each stage short-circuits:
// on failure the returned error is a *ResolutionError carrying the raw text
// and no ingredient escapes.
func ResolveIngredient(db *sql.DB, units UnitTable, text string) (*Ingredient, error) {
	parsed, err := parse.Parse(text)
	if err != nil {
		return nil, resolutionErr(ErrUnparsableText, text, "unparsable ingredient text: %v", err)
	}

	food, err := search.MatchOneFood(db, parsed.Name)
	if err != nil {
		return nil, fmt.Errorf("match food for %q: %w", text, err)
	}
	if food == nil {
		return nil, resolutionErr(ErrFoodNotFound, text, "no catalog food matches %q", parsed.Name)
	}

	weight, err := resolveWeight(units, parsed, food, text)
	if err != nil {
		return nil, err
	}

	return &Ingredient{
		RawText:     text,
		Amount:      parsed.Amount,
		Unit:        parsed.Unit,
		Measurement: parsed.Measurement,
		Name:        parsed.Name,
		Food:        food,
		WeightG:     weight,
	}, nil
}

// resolveWeight derives grams from exactly one of two rules: explicit unit
// conversion when a unit was parsed, otherwise proportional scaling against
// the best-matching weight entry ("2 slices" x "1 slice = 28 g" -> 56 g).
func resolveWeight(units UnitTable, p parse.Parsed, food *model.Food, text string) (float64, error) {
	if p.Unit != "" {
		grams, ok := units.GramsPer(p.Unit)
		if !ok {
			return 0, resolutionErr(ErrUnknownUnit, text, "unknown unit %q", p.Unit)
		}
		return p.Amount * grams, nil
	}

	if len(food.Weights) == 0 {
		return 0, resolutionErr(ErrNoWeightData, text, "food %q has no weight entries", food.Description)
	}
	entry := search.MatchOneWeight(food, p.Measurement)
	if entry == nil {
		return 0, resolutionErr(ErrNoMatchingWeightEntry, text, "no weight entry of %q matches measurement %q", food.Description, p.Measurement)
	}
	return entry.WeightG * (p.Amount / entry.Amount), nil
}

// AmountOf returns the ingredient's amount of one nutrient, scaled from the
// food's per-100g value to the resolved weight. The second return value is
// false when the food carries no data for that nutrient, which is distinct
// from a zero amount.
func (ing *Ingredient) AmountOf(key NutrientKey) (float64, bool) {
	tag, ok := tagnameByKey[key]
	if !ok {
		return 0, false
	}
	return ing.AmountOfTagname(tag)
}

// AmountOfTagname is AmountOf for callers holding a raw INFOODS tagname.
func (ing *Ingredient) AmountOfTagname(tagname string) (float64, bool) {
	for _, n := range ing.Food.Nutrition {
		if n.Tagname == tagname {
			return n.ValuePer100G / 100 * ing.WeightG, true
		}
	}
	return 0, false
}

func (ing *Ingredient) String() string {
	return fmt.Sprintf("%.2f g of %s", ing.WeightG, ing.Food.Description)
}
