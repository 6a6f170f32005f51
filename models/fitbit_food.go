// ABOUTME: This file defines the Fitbit food log API entities
// ABOUTME: Shapes mirror the /foods/log/date/{date}.json response body

package models

// FoodResponse represents the Fitbit food log response for a single date
type FoodResponse struct {
	Foods   []Food      `json:"foods"`
	Goals   FoodGoals   `json:"goals"`
	Summary FoodSummary `json:"summary"`
}

// Food represents a single logged food entry
type Food struct {
	IsFavorite        bool              `json:"isFavorite"`
	LogDate           string            `json:"logDate"`
	LogID             int64             `json:"logId"`
	LoggedFood        LoggedFood        `json:"loggedFood"`
	NutritionalValues NutritionalValues `json:"nutritionalValues"`
}

// LoggedFood describes the food item attached to a log entry
type LoggedFood struct {
	AccessLevel string   `json:"accessLevel"`
	Amount      float64  `json:"amount"`
	Brand       string   `json:"brand"`
	Calories    int      `json:"calories"`
	FoodID      int64    `json:"foodId"`
	Locale      string   `json:"locale"`
	MealTypeID  int      `json:"mealTypeId"`
	Name        string   `json:"name"`
	Unit        FoodUnit `json:"unit"`
	Units       []int64  `json:"units"`
}

// FoodUnit is the measurement unit of a logged food
type FoodUnit struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Plural string `json:"plural"`
}

// NutritionalValues holds the per-entry nutritional breakdown
type NutritionalValues struct {
	Calories int     `json:"calories"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Fiber    float64 `json:"fiber"`
	Protein  float64 `json:"protein"`
	Sodium   float64 `json:"sodium"`
}

// FoodGoals holds the daily nutrition goals
type FoodGoals struct {
	Calories int `json:"calories"`
}

// FoodSummary aggregates the nutrition totals for the date
type FoodSummary struct {
	Calories float64 `json:"calories"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Fiber    float64 `json:"fiber"`
	Protein  float64 `json:"protein"`
	Sodium   float64 `json:"sodium"`
	Water    float64 `json:"water"`
}
