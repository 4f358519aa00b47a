// ABOUTME: Typed response and request models for the MacroFactor API.
// ABOUTME: Covers profile, goals, nutrition, food log, weight, steps, and food search.
package api

import "fmt"

// Profile describes the authenticated user's account.
type Profile struct {
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	Sex      string  `json:"sex,omitempty"`
	Birthday string  `json:"birthday,omitempty"`
	HeightCM float64 `json:"height_cm,omitempty"`
	Units    string  `json:"units,omitempty"`
}

// Goals holds current calorie/macro targets. Weekly slices are indexed
// Monday=0 through Sunday=6.
type Goals struct {
	TDEE         *float64  `json:"tdee,omitempty"`
	ProgramStyle string    `json:"program_style,omitempty"`
	ProgramType  string    `json:"program_type,omitempty"`
	Calories     []float64 `json:"calories"`
	Protein      []float64 `json:"protein"`
	Carbs        []float64 `json:"carbs"`
	Fat          []float64 `json:"fat"`
}

// NutritionDay is one day's nutrition summary. Nil fields mean the service
// has no data for that field on that day.
type NutritionDay struct {
	Date     string   `json:"date"`
	Calories *float64 `json:"calories,omitempty"`
	Protein  *float64 `json:"protein,omitempty"`
	Carbs    *float64 `json:"carbs,omitempty"`
	Fat      *float64 `json:"fat,omitempty"`
	Sugar    *float64 `json:"sugar,omitempty"`
	Fiber    *float64 `json:"fiber,omitempty"`
}

// FoodEntry is one logged food on a given day.
type FoodEntry struct {
	EntryID     string  `json:"entry_id"`
	Name        string  `json:"name"`
	Brand       string  `json:"brand,omitempty"`
	Hour        int     `json:"hour"`
	Minute      int     `json:"minute"`
	Calories    float64 `json:"calories"`
	Protein     float64 `json:"protein"`
	Carbs       float64 `json:"carbs"`
	Fat         float64 `json:"fat"`
	WeightGrams float64 `json:"weight_grams,omitempty"`
}

// WeightEntry is one scale reading.
type WeightEntry struct {
	Date    string   `json:"date"`
	Weight  float64  `json:"weight"`
	BodyFat *float64 `json:"body_fat,omitempty"`
}

// StepEntry is one day's step count.
type StepEntry struct {
	Date  string `json:"date"`
	Steps int    `json:"steps"`
}

// FoodServing is one serving option for a searched food.
type FoodServing struct {
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	GramWeight  float64 `json:"gram_weight"`
}

// SearchFoodResult is one candidate from a food database search.
// Nutrition fields are normalized per 100g.
type SearchFoodResult struct {
	FoodID          string        `json:"food_id"`
	Name            string        `json:"name"`
	Brand           string        `json:"brand,omitempty"`
	Branded         bool          `json:"branded"`
	CaloriesPer100g float64       `json:"calories_per_100g"`
	ProteinPer100g  float64       `json:"protein_per_100g"`
	CarbsPer100g    float64       `json:"carbs_per_100g"`
	FatPer100g      float64       `json:"fat_per_100g"`
	DefaultServing  *FoodServing  `json:"default_serving,omitempty"`
	Servings        []FoodServing `json:"servings,omitempty"`
}

// Serving resolves a 1-based serving index against this food.
// Index 1 means the default serving, falling back to the first listed
// serving, falling back to a plain 100g serving. Higher indexes address
// the servings list directly.
func (r *SearchFoodResult) Serving(index int) (FoodServing, error) {
	if index == 1 {
		if r.DefaultServing != nil {
			return *r.DefaultServing, nil
		}
		if len(r.Servings) > 0 {
			return r.Servings[0], nil
		}
		return FoodServing{Description: "100g", Amount: 1, GramWeight: 100}, nil
	}
	if index < 1 || index > len(r.Servings) {
		return FoodServing{}, fmt.Errorf("invalid serving index %d: food has %d servings", index, len(r.Servings))
	}
	return r.Servings[index-1], nil
}
