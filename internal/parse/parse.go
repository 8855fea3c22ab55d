// Package parse extracts the structured fields of a free-text ingredient
// description, e.g. "100 g of chicken breast" or "2 slices of bread".
package parse

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// Parsed is the structured form of one ingredient line. Unit and
// Measurement may both be empty; when Unit is set it takes precedence
// during weight resolution.
type Parsed struct {
	Amount      float64
	Unit        string
	Measurement string
	Name        string
}

// unitVocabulary lists the unit symbols the parser emits. The resolver's
// unit table must cover every symbol here.
var unitVocabulary = map[string]struct{}{
	"mg": {}, "g": {}, "kg": {},
	"oz": {}, "lb": {}, "lbs": {},
	"ml": {}, "l": {},
	"tsp": {}, "tbsp": {},
	"cup": {}, "cups": {},
	"fl-oz": {},
	"pinch": {}, "dash": {},
}

var measurementVocabulary = map[string]struct{}{
	"slice": {}, "stick": {}, "piece": {}, "clove": {},
	"can": {}, "jar": {}, "packet": {}, "batch": {},
	"serving": {}, "scoop": {}, "fillet": {}, "leaf": {},
	"head": {}, "bunch": {}, "handful": {}, "strip": {},
	"wedge": {}, "half": {}, "quarter": {}, "unit": {},
	"small": {}, "medium": {}, "large": {}, "whole": {},
}

// Parse splits an ingredient line into amount, unit, measurement, and name.
// The amount defaults to 1 when the line starts with no number. An error is
// returned only when no food name remains after the quantity part.
func Parse(text string) (Parsed, error) {
	fields := strings.Fields(strings.ToLower(strings.TrimSpace(text)))
	if len(fields) == 0 {
		return Parsed{}, fmt.Errorf("empty ingredient text")
	}

	p := Parsed{Amount: 1}

	// Leading amount, including glued forms like "100g".
	if amount, rest, ok := splitAmount(fields[0]); ok {
		p.Amount = amount
		fields = fields[1:]
		if rest != "" {
			fields = append([]string{rest}, fields...)
		}
	}

	if len(fields) > 0 {
		if _, ok := unitVocabulary[fields[0]]; ok {
			p.Unit = canonicalUnit(fields[0])
			fields = fields[1:]
		} else if m, ok := measurementWord(fields[0]); ok {
			p.Measurement = m
			fields = fields[1:]
		}
	}

	if len(fields) > 0 && fields[0] == "of" {
		fields = fields[1:]
	}

	p.Name = strings.Join(fields, " ")
	if p.Name == "" {
		return Parsed{}, fmt.Errorf("no food name in %q", text)
	}
	return p, nil
}

// splitAmount reads a leading number off a token. It accepts integers,
// decimals, and simple fractions ("1/2"), and splits glued unit suffixes
// ("100g" -> 100, "g").
func splitAmount(token string) (amount float64, rest string, ok bool) {
	cut := len(token)
	for i, r := range token {
		if !unicode.IsDigit(r) && r != '.' && r != '/' {
			cut = i
			break
		}
	}
	if cut == 0 {
		return 0, "", false
	}
	numeric, rest := token[:cut], token[cut:]

	if num, den, found := strings.Cut(numeric, "/"); found {
		n, errN := strconv.ParseFloat(num, 64)
		d, errD := strconv.ParseFloat(den, 64)
		if errN != nil || errD != nil || d == 0 {
			return 0, "", false
		}
		return n / d, rest, true
	}

	v, err := strconv.ParseFloat(numeric, 64)
	if err != nil {
		return 0, "", false
	}
	return v, rest, true
}

func canonicalUnit(u string) string {
	switch u {
	case "lbs":
		return "lb"
	case "cups":
		return "cup"
	}
	return u
}

// measurementWord reports whether a token is a known measurement,
// tolerating plural forms ("slices" -> "slice").
func measurementWord(token string) (string, bool) {
	if _, ok := measurementVocabulary[token]; ok {
		return token, true
	}
	singular := strings.TrimSuffix(token, "s")
	if singular != token {
		if _, ok := measurementVocabulary[singular]; ok {
			return singular, true
		}
	}
	return "", false
}

// UnitSymbols returns the canonical unit symbols the parser can emit.
func UnitSymbols() []string {
	seen := map[string]struct{}{}
	out := make([]string, 0, len(unitVocabulary))
	for u := range unitVocabulary {
		c := canonicalUnit(u)
		if _, dup := seen[c]; dup {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	return out
}
