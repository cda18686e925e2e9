package domain

import (
	"time"

	"github.com/google/uuid"
)

// WorkoutLog records one completed session. Logs are append-only and never mutated.
type WorkoutLog struct {
	ID              uuid.UUID     `json:"id"`
	WorkoutID       uuid.UUID     `json:"workoutId"`
	WorkoutName     string        `json:"workoutName"`
	CompletedAt     time.Time     `json:"completedAt"`
	DurationMinutes int           `json:"durationMinutes"` // measured, display only
	Reward          int           `json:"reward"`
	StreakBonus     int           `json:"streakBonus"`
	PowerGained     int           `json:"powerGained"` // Reward + StreakBonus
	Exercises       []ExerciseLog `json:"exercises"`
}

// ExerciseLog is a snapshot of an exercise as it was completed.
type ExerciseLog struct {
	ID           uuid.UUID `json:"id"`
	ExerciseID   uuid.UUID `json:"exerciseId"`
	ExerciseName string    `json:"exerciseName"`
	Sets         int       `json:"sets"`
	Reps         int       `json:"reps"`
	WeightKg     *float64  `json:"weightKg,omitempty"`
}

// SnapshotExercise captures ex for a workout log.
func SnapshotExercise(ex Exercise) ExerciseLog {
	var weight *float64
	if ex.WeightKg != nil {
		w := *ex.WeightKg
		weight = &w
	}
	return ExerciseLog{
		ID:           uuid.New(),
		ExerciseID:   ex.ID,
		ExerciseName: ex.Name,
		Sets:         ex.Sets,
		Reps:         ex.Reps,
		WeightKg:     weight,
	}
}
