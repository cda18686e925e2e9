package domain

import (
	"github.com/google/uuid"
)

// Difficulty of a workout, a closed set.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "Beginner"
	DifficultyIntermediate Difficulty = "Intermediate"
	DifficultyAdvanced     Difficulty = "Advanced"
	DifficultyExtreme      Difficulty = "Extreme" // 100x gravity
)

// WorkoutType groups workouts for recommendations.
type WorkoutType string

const (
	WorkoutStrength    WorkoutType = "Strength"
	WorkoutCardio      WorkoutType = "Cardio"
	WorkoutFlexibility WorkoutType = "Flexibility"
	WorkoutMixed       WorkoutType = "Mixed"
)

// Workout is an immutable catalog entry: an ordered list of exercises done in one session.
type Workout struct {
	ID              uuid.UUID   `json:"id"`
	Name            string      `json:"name"`
	Type            WorkoutType `json:"type"`
	Exercises       []Exercise  `json:"exercises"`
	DurationMinutes int         `json:"durationMinutes"` // nominal, used for the reward
	Difficulty      Difficulty  `json:"difficulty"`
}
