package service

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/ozc/nutrigo/internal/search"
)

type catalogExport struct {
	Foods []catalogFood `json:"foods"`
}

type catalogFood struct {
	Description string            `json:"description"`
	Weights     []catalogWeight   `json:"weights,omitempty"`
	Nutrition   []catalogNutrient `json:"nutrition,omitempty"`
}

type catalogWeight struct {
	Seq         int      `json:"seq"`
	Amount      float64  `json:"amount"`
	Description string   `json:"description"`
	WeightG     float64  `json:"weight_g"`
	NumDataPts  *int     `json:"num_data_pts,omitempty"`
	StdDev      *float64 `json:"std_dev,omitempty"`
}

type catalogNutrient struct {
	Tagname      string  `json:"tagname"`
	ValuePer100G float64 `json:"value_per_100g"`
}

// ExportCatalog writes the whole food catalog as JSON.
func ExportCatalog(db *sql.DB, w io.Writer) error {
	foods, err := ListFoods(db)
	if err != nil {
		return err
	}
	doc := catalogExport{Foods: make([]catalogFood, 0, len(foods))}
	for _, f := range foods {
		full, err := search.FoodByID(db, f.ID)
		if err != nil {
			return err
		}
		cf := catalogFood{Description: full.Description}
		for _, fw := range full.Weights {
			cf.Weights = append(cf.Weights, catalogWeight{
				Seq:         fw.Seq,
				Amount:      fw.Amount,
				Description: fw.Description,
				WeightG:     fw.WeightG,
				NumDataPts:  fw.NumDataPts,
				StdDev:      fw.StdDev,
			})
		}
		for _, n := range full.Nutrition {
			cf.Nutrition = append(cf.Nutrition, catalogNutrient{
				Tagname:      n.Tagname,
				ValuePer100G: n.ValuePer100G,
			})
		}
		doc.Foods = append(doc.Foods, cf)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode catalog: %w", err)
	}
	return nil
}

// ImportCatalog reads a JSON catalog and upserts it: foods are matched by
// description, and their weight and nutrition rows are replaced by the
// imported ones. The whole import runs in one transaction, so a failure
// anywhere leaves the catalog untouched. Returns the number of foods
// imported.
func ImportCatalog(db *sql.DB, r io.Reader) (int, error) {
	var doc catalogExport
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return 0, fmt.Errorf("decode catalog: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return 0, fmt.Errorf("begin catalog import tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	imported := 0
	for _, cf := range doc.Foods {
		if strings.TrimSpace(cf.Description) == "" {
			return 0, fmt.Errorf("catalog food with empty description")
		}
		var foodID int64
		err := tx.QueryRow(`SELECT id FROM foods WHERE description = ?`, cf.Description).Scan(&foodID)
		if err == sql.ErrNoRows {
			res, err := tx.Exec(`INSERT INTO foods(description) VALUES(?)`, cf.Description)
			if err != nil {
				return 0, fmt.Errorf("import food %q: %w", cf.Description, err)
			}
			if foodID, err = res.LastInsertId(); err != nil {
				return 0, fmt.Errorf("resolve imported food id: %w", err)
			}
		} else if err != nil {
			return 0, fmt.Errorf("lookup food %q: %w", cf.Description, err)
		}

		if _, err := tx.Exec(`DELETE FROM food_weights WHERE food_id = ?`, foodID); err != nil {
			return 0, fmt.Errorf("clear weights for %q: %w", cf.Description, err)
		}
		if _, err := tx.Exec(`DELETE FROM food_nutrition WHERE food_id = ?`, foodID); err != nil {
			return 0, fmt.Errorf("clear nutrition for %q: %w", cf.Description, err)
		}

		nextSeq := 1
		for _, w := range cf.Weights {
			if err := validateCatalogWeight(cf.Description, w); err != nil {
				return 0, err
			}
			seq := w.Seq
			if seq <= 0 {
				seq = nextSeq
			}
			if _, err := tx.Exec(`
INSERT INTO food_weights(food_id, seq, amount, description, weight_g, num_data_pts, std_dev)
VALUES(?, ?, ?, ?, ?, ?, ?)
`, foodID, seq, w.Amount, strings.TrimSpace(w.Description), w.WeightG, w.NumDataPts, w.StdDev); err != nil {
				return 0, fmt.Errorf("import weight for %q: %w", cf.Description, err)
			}
			nextSeq = seq + 1
		}
		for _, n := range cf.Nutrition {
			tagname := strings.ToUpper(strings.TrimSpace(n.Tagname))
			if tagname == "" {
				return 0, fmt.Errorf("food %q: nutrient tagname is required", cf.Description)
			}
			if err := validateNonNegativeFloat("nutrient value", n.ValuePer100G); err != nil {
				return 0, fmt.Errorf("food %q: %w", cf.Description, err)
			}
			if _, err := tx.Exec(`
INSERT INTO food_nutrition(food_id, tagname, value_per_100g)
VALUES(?, ?, ?)
ON CONFLICT(food_id, tagname) DO UPDATE SET value_per_100g = excluded.value_per_100g
`, foodID, tagname, n.ValuePer100G); err != nil {
				return 0, fmt.Errorf("import nutrient for %q: %w", cf.Description, err)
			}
		}
		imported++
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit catalog import: %w", err)
	}
	return imported, nil
}

func validateCatalogWeight(food string, w catalogWeight) error {
	if strings.TrimSpace(w.Description) == "" {
		return fmt.Errorf("food %q: weight description is required", food)
	}
	if err := validatePositiveFloat("reference amount", w.Amount); err != nil {
		return fmt.Errorf("food %q: %w", food, err)
	}
	if err := validatePositiveFloat("weight grams", w.WeightG); err != nil {
		return fmt.Errorf("food %q: %w", food, err)
	}
	return nil
}
