// internal/domain/meal_plan.go
package domain

import (
	"github.com/google/uuid"
)

// MealPlan is a diet recommendation for a fitness goal.
type MealPlan struct {
	ID            uuid.UUID   `json:"id"`
	Name          string      `json:"name"`
	TargetGoal    FitnessGoal `json:"targetGoal"`
	CalorieTarget int         `json:"calorieTarget"`
	ProteinTarget int         `json:"proteinTarget"` // grams
	CarbTarget    int         `json:"carbTarget"`    // grams
	FatTarget     int         `json:"fatTarget"`     // grams
	Meals         []Meal      `json:"meals"`
}

// Meal is a named group of foods eaten together, e.g. "Breakfast" or "Post-Workout".
type Meal struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Time  string    `json:"time"`
	Foods []Food    `json:"foods"`
}

type Food struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	ServingSize string    `json:"servingSize"`
	Calories    int       `json:"calories"`
	Protein     int       `json:"protein"`
	Carbs       int       `json:"carbs"`
	Fat         int       `json:"fat"`
}

func (m Meal) TotalCalories() int {
	total := 0
	for _, f := range m.Foods {
		total += f.Calories
	}
	return total
}

func (m Meal) TotalProtein() int {
	total := 0
	for _, f := range m.Foods {
		total += f.Protein
	}
	return total
}

func (m Meal) TotalCarbs() int {
	total := 0
	for _, f := range m.Foods {
		total += f.Carbs
	}
	return total
}

func (m Meal) TotalFat() int {
	total := 0
	for _, f := range m.Foods {
		total += f.Fat
	}
	return total
}
