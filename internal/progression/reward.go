package progression

import "saiyan/training-app/internal/domain"

const (
	// durationStepMinutes of nominal workout time earn durationStepReward extra power.
	durationStepMinutes = 10
	durationStepReward  = 20
)

// BaseReward returns the fixed power reward for a difficulty.
// Unknown difficulties earn nothing.
func BaseReward(d domain.Difficulty) int {
	switch d {
	case domain.DifficultyBeginner:
		return 50
	case domain.DifficultyIntermediate:
		return 100
	case domain.DifficultyAdvanced:
		return 200
	case domain.DifficultyExtreme:
		return 500
	default:
		return 0
	}
}

// TotalReward is the power a completed workout is worth, before streak bonus.
// It uses the nominal duration, never the measured one.
func TotalReward(w domain.Workout) int {
	steps := 0
	if w.DurationMinutes > 0 {
		steps = w.DurationMinutes / durationStepMinutes
	}
	return BaseReward(w.Difficulty) + steps*durationStepReward
}
