package model

import "time"

// Food is one catalog entry, identified by its long description.
// Weights and Nutrition are loaded alongside the food by the search layer;
// the resolution pipeline never mutates them.
type Food struct {
	ID          int64
	Description string
	CreatedAt   time.Time
	Weights     []FoodWeight
	Nutrition   []FoodNutrition
}

// FoodWeight states that Amount units described as Description weigh
// WeightG grams, e.g. "1 slice = 28.0 g".
type FoodWeight struct {
	ID          int64
	FoodID      int64
	Seq         int
	Amount      float64
	Description string
	WeightG     float64
	NumDataPts  *int
	StdDev      *float64
}

// FoodNutrition holds one nutrient value per 100 g of the food,
// keyed by its INFOODS tagname. At most one row per tagname per food.
type FoodNutrition struct {
	ID           int64
	FoodID       int64
	Tagname      string
	ValuePer100G float64
}

type Recipe struct {
	ID        int64
	Name      string
	Servings  int
	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type RecipeLine struct {
	ID       int64
	RecipeID int64
	Position int
	RawText  string
}
