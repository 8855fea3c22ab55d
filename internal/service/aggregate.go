package service

import "math"

// NutrientValue pairs a rounded amount with its display unit.
type NutrientValue struct {
	Amount float64
	Unit   string
}

// Totals maps each reported nutrient key to its aggregated value.
type Totals map[NutrientKey]NutrientValue

// TotalNutrition sums every reported nutrient across the ingredients and
// rounds to two decimals. An ingredient with no data for a nutrient
// contributes zero to that nutrient's sum, so one incomplete food never
// blocks totals for the rest.
func TotalNutrition(ingredients []*Ingredient) Totals {
	totals := make(Totals, len(reportedKeys))
	for _, key := range reportedKeys {
		sum := 0.0
		for _, ing := range ingredients {
			if v, ok := ing.AmountOf(key); ok {
				sum += v
			}
		}
		totals[key] = NutrientValue{Amount: round2(sum), Unit: unitByKey[key]}
	}
	return totals
}

// ServingNutrition divides every total by the serving count, rounding to two
// decimals and keeping units unchanged. Servings must be positive.
func ServingNutrition(totals Totals, servings int) (Totals, error) {
	if servings <= 0 {
		return nil, resolutionErr(ErrInvalidServings, "", "servings must be > 0, got %d", servings)
	}
	out := make(Totals, len(totals))
	for key, v := range totals {
		out[key] = NutrientValue{Amount: round2(v.Amount / float64(servings)), Unit: v.Unit}
	}
	return out, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
