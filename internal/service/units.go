package service

import "strings"

// UnitTable maps a unit symbol to its weight in grams. It is plain
// configuration: callers pass it into resolution explicitly rather than
// reading shared package state.
type UnitTable map[string]float64

// GramsPer returns the gram weight of one unit, case-insensitively.
func (t UnitTable) GramsPer(unit string) (float64, bool) {
	g, ok := t[strings.ToLower(strings.TrimSpace(unit))]
	return g, ok
}

// DefaultUnitTable covers every symbol the ingredient parser emits. Volume
// units carry water-density gram equivalents, matching the reference data
// the catalog's per-100g values are calibrated against.
func DefaultUnitTable() UnitTable {
	return UnitTable{
		// mass
		"mg":  0.001,
		"g":   1,
		"kg":  1000,
		"oz":  28.349523125,
		"lb":  453.59237,
		"lbs": 453.59237,

		// volume at 1 g/ml
		"ml":    1,
		"l":     1000,
		"tsp":   4.92892159375,
		"tbsp":  14.78676478125,
		"cup":   236.5882365,
		"fl-oz": 29.5735295625,

		// kitchen approximations
		"pinch": 0.36,
		"dash":  0.6,
	}
}
