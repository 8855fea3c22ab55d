// Package search matches parsed ingredient names against the local food
// catalog and selects weight entries for natural-language measurements.
package search

import (
	"database/sql"
	"fmt"
	"regexp"
	"strings"

	"github.com/ozc/nutrigo/internal/model"
)

var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// MatchOneFood returns the best-matching catalog food for a parsed name,
// with its weight and nutrition rows loaded, or nil when nothing in the
// catalog matches.
func MatchOneFood(db *sql.DB, name string) (*model.Food, error) {
	queryTokens := tokenize(name)
	if len(queryTokens) == 0 {
		return nil, nil
	}

	rows, err := db.Query(`SELECT id, description FROM foods`)
	if err != nil {
		return nil, fmt.Errorf("list foods: %w", err)
	}
	defer rows.Close()

	var (
		bestID    int64
		bestScore int
		bestLen   int
	)
	for rows.Next() {
		var id int64
		var desc string
		if err := rows.Scan(&id, &desc); err != nil {
			return nil, fmt.Errorf("scan food: %w", err)
		}
		descTokens := tokenize(desc)
		score := matchScore(queryTokens, descTokens)
		if score == 0 {
			continue
		}
		// Prefer higher scores; among equals, shorter descriptions then
		// lower IDs keep the selection deterministic.
		if score > bestScore || (score == bestScore && (len(descTokens) < bestLen || (len(descTokens) == bestLen && id < bestID))) {
			bestID, bestScore, bestLen = id, score, len(descTokens)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate foods: %w", err)
	}
	if bestScore == 0 {
		return nil, nil
	}
	return FoodByID(db, bestID)
}

// MatchOneWeight selects the weight entry whose description best matches the
// requested measurement. An empty measurement selects the first entry by
// sequence. Returns nil when the measurement matches no entry.
func MatchOneWeight(food *model.Food, measurement string) *model.FoodWeight {
	if food == nil || len(food.Weights) == 0 {
		return nil
	}

	if strings.TrimSpace(measurement) == "" {
		best := &food.Weights[0]
		for i := range food.Weights {
			if food.Weights[i].Seq < best.Seq {
				best = &food.Weights[i]
			}
		}
		return best
	}

	want := tokenize(measurement)
	var selected *model.FoodWeight
	bestScore := 0
	for i := range food.Weights {
		w := &food.Weights[i]
		score := matchScore(want, tokenize(w.Description))
		if score > bestScore || (score == bestScore && score > 0 && w.Seq < selected.Seq) {
			selected, bestScore = w, score
		}
	}
	return selected
}

// FoodByID loads a food with its weight entries (ordered by sequence) and
// nutrition rows.
func FoodByID(db *sql.DB, id int64) (*model.Food, error) {
	food := &model.Food{ID: id}
	err := db.QueryRow(`SELECT description, created_at FROM foods WHERE id = ?`, id).
		Scan(&food.Description, &food.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("food %d not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("load food %d: %w", id, err)
	}

	rows, err := db.Query(`
SELECT id, seq, amount, description, weight_g, num_data_pts, std_dev
FROM food_weights
WHERE food_id = ?
ORDER BY seq ASC
`, id)
	if err != nil {
		return nil, fmt.Errorf("load food weights: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		w := model.FoodWeight{FoodID: id}
		if err := rows.Scan(&w.ID, &w.Seq, &w.Amount, &w.Description, &w.WeightG, &w.NumDataPts, &w.StdDev); err != nil {
			return nil, fmt.Errorf("scan food weight: %w", err)
		}
		food.Weights = append(food.Weights, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate food weights: %w", err)
	}

	nrows, err := db.Query(`
SELECT id, tagname, value_per_100g
FROM food_nutrition
WHERE food_id = ?
ORDER BY tagname ASC
`, id)
	if err != nil {
		return nil, fmt.Errorf("load food nutrition: %w", err)
	}
	defer nrows.Close()
	for nrows.Next() {
		n := model.FoodNutrition{FoodID: id}
		if err := nrows.Scan(&n.ID, &n.Tagname, &n.ValuePer100G); err != nil {
			return nil, fmt.Errorf("scan food nutrition: %w", err)
		}
		food.Nutrition = append(food.Nutrition, n)
	}
	if err := nrows.Err(); err != nil {
		return nil, fmt.Errorf("iterate food nutrition: %w", err)
	}

	return food, nil
}

// matchScore counts how well query tokens are covered by candidate tokens:
// 2 per exact token, 1 per prefix hit. Zero means no overlap at all.
func matchScore(query, candidate []string) int {
	set := make(map[string]struct{}, len(candidate))
	for _, t := range candidate {
		set[t] = struct{}{}
	}
	score := 0
	for _, q := range query {
		if _, ok := set[q]; ok {
			score += 2
			continue
		}
		for _, c := range candidate {
			if strings.HasPrefix(c, q) || strings.HasPrefix(q, c) {
				score++
				break
			}
		}
	}
	return score
}

func tokenize(s string) []string {
	s = nonAlnum.ReplaceAllString(strings.ToLower(strings.TrimSpace(s)), " ")
	fields := strings.Fields(s)
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		// tolerate trivial plurals so "slices" still hits "slice"
		if len(f) > 3 && strings.HasSuffix(f, "s") && !strings.HasSuffix(f, "ss") {
			f = strings.TrimSuffix(f, "s")
		}
		out = append(out, f)
	}
	return out
}
