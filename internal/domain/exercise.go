// internal/domain/exercise.go
package domain

import (
	"github.com/google/uuid"
)

// MuscleGroup targeted by an exercise.
type MuscleGroup string

const (
	MuscleChest     MuscleGroup = "Chest"
	MuscleBack      MuscleGroup = "Back"
	MuscleLegs      MuscleGroup = "Legs"
	MuscleShoulders MuscleGroup = "Shoulders"
	MuscleArms      MuscleGroup = "Arms"
	MuscleCore      MuscleGroup = "Core"
	MuscleFullBody  MuscleGroup = "Full Body"
)

// Exercise represents a single exercise inside a workout.
type Exercise struct {
	ID           uuid.UUID     `json:"id"`
	Name         string        `json:"name"`
	Sets         int           `json:"sets"`
	Reps         int           `json:"reps"`
	WeightKg     *float64      `json:"weightKg,omitempty"` // nil for bodyweight exercises
	RestSeconds  int           `json:"restSeconds"`
	Instructions string        `json:"instructions,omitempty"`
	MuscleGroups []MuscleGroup `json:"muscleGroups,omitempty"`
}
