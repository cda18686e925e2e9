package domain

import (
	"github.com/google/uuid"
)

// FitnessGoal is what the trainee is working towards. It drives workout and diet recommendations.
type FitnessGoal string

const (
	GoalWeightLoss   FitnessGoal = "Weight Loss"
	GoalStrengthGain FitnessGoal = "Strength Gain"
	GoalEndurance    FitnessGoal = "Endurance"
	GoalFlexibility  FitnessGoal = "Flexibility"
)

// DefaultPowerLevel is the power level of a freshly created trainee.
const DefaultPowerLevel = 100

// Valid reports whether g is one of the known goals.
func (g FitnessGoal) Valid() bool {
	switch g {
	case GoalWeightLoss, GoalStrengthGain, GoalEndurance, GoalFlexibility:
		return true
	}
	return false
}

// Profile holds identity and body metrics of the trainee.
type Profile struct {
	ID       uuid.UUID   `json:"id"`
	Name     string      `json:"name"`
	HeightCm *float64    `json:"heightCm,omitempty"` // nil when not provided
	WeightKg *float64    `json:"weightKg,omitempty"` // nil when not provided
	Goal     FitnessGoal `json:"goal"`
}

// UserState is the progression aggregate of the trainee.
// PowerLevel only grows: each completed session adds reward + streak bonus.
type UserState struct {
	PowerLevel        int `json:"powerLevel"`
	WorkoutsCompleted int `json:"workoutsCompleted"`
	StreakDays        int `json:"streakDays"`
}

// NewUserState returns the state of a trainee who has never trained.
func NewUserState() UserState {
	return UserState{PowerLevel: DefaultPowerLevel}
}
