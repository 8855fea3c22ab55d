package service

import (
	"database/sql"
	"sync"
)

// ResolveFailure records one ingredient line that could not be resolved.
type ResolveFailure struct {
	Text string
	Err  error
}

// ResolveAll resolves many ingredient lines concurrently. Lines are
// independent and every resolved ingredient is immutable, so resolution
// fans out across goroutines; resolved ingredients come back in input
// order. Failed lines are returned separately so callers can aggregate the
// partial successes.
func ResolveAll(db *sql.DB, units UnitTable, texts []string) ([]*Ingredient, []ResolveFailure) {
	results := make([]*Ingredient, len(texts))
	errs := make([]error, len(texts))

	var wg sync.WaitGroup
	for i, text := range texts {
		wg.Add(1)
		go func(i int, text string) {
			defer wg.Done()
			results[i], errs[i] = ResolveIngredient(db, units, text)
		}(i, text)
	}
	wg.Wait()

	resolved := make([]*Ingredient, 0, len(texts))
	failures := make([]ResolveFailure, 0)
	for i := range texts {
		if errs[i] != nil {
			failures = append(failures, ResolveFailure{Text: texts[i], Err: errs[i]})
			continue
		}
		resolved = append(resolved, results[i])
	}
	return resolved, failures
}
