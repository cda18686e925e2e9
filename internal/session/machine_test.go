package session_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"saiyan/training-app/internal/domain"
	"saiyan/training-app/internal/session"
)

func threeExerciseWorkout() domain.Workout {
	return domain.Workout{
		ID:              uuid.New(),
		Name:            "Hyperbolic Time Chamber HIIT",
		DurationMinutes: 30,
		Difficulty:      domain.DifficultyAdvanced,
		Exercises: []domain.Exercise{
			{ID: uuid.New(), Name: "Kaioken Sprint", Sets: 5, Reps: 1, RestSeconds: 3},
			{ID: uuid.New(), Name: "Spirit Bomb Squats", Sets: 4, Reps: 15, RestSeconds: 2},
			{ID: uuid.New(), Name: "Instant Transmission Lunges", Sets: 3, Reps: 12, RestSeconds: 60},
		},
	}
}

func TestNewMachine_RejectsEmptyWorkout(t *testing.T) {
	m, err := session.NewMachine(domain.Workout{Name: "empty"})
	require.ErrorIs(t, err, session.ErrInvalidWorkout)
	assert.Nil(t, m)
}

func TestMachine_CompleteExerciseWalk(t *testing.T) {
	m, err := session.NewMachine(threeExerciseWorkout())
	require.NoError(t, err)
	assert.Equal(t, session.State{Phase: session.PhaseInProgress, ExerciseIndex: 0}, m.State())

	require.NoError(t, m.CompleteExercise())
	assert.Equal(t, session.State{Phase: session.PhaseResting, ExerciseIndex: 0, RemainingRest: 3}, m.State())
	require.NoError(t, m.SkipRest())
	assert.Equal(t, session.State{Phase: session.PhaseInProgress, ExerciseIndex: 1}, m.State())

	require.NoError(t, m.CompleteExercise())
	assert.Equal(t, session.State{Phase: session.PhaseResting, ExerciseIndex: 1, RemainingRest: 2}, m.State())
	require.NoError(t, m.SkipRest())
	assert.Equal(t, session.State{Phase: session.PhaseInProgress, ExerciseIndex: 2}, m.State())

	// the last exercise has no rest
	require.NoError(t, m.CompleteExercise())
	assert.Equal(t, session.PhaseComplete, m.State().Phase)
	assert.True(t, m.Done())

	logs := m.CompletedExercises()
	require.Len(t, logs, 3)
	assert.Equal(t, "Kaioken Sprint", logs[0].ExerciseName)
	assert.Equal(t, "Instant Transmission Lunges", logs[2].ExerciseName)
}

func TestMachine_TickCountdown(t *testing.T) {
	m, err := session.NewMachine(threeExerciseWorkout())
	require.NoError(t, err)
	require.NoError(t, m.CompleteExercise())

	m.Tick()
	assert.Equal(t, "Resting(0, 2)", m.State().String())
	m.Tick()
	m.Tick()
	assert.Equal(t, "Resting(0, 0)", m.State().String())
	m.Tick()
	assert.Equal(t, "InProgress(1)", m.State().String())

	// ticks while exercising do nothing
	m.Tick()
	assert.Equal(t, "InProgress(1)", m.State().String())
}

func TestMachine_SkipRestEqualsCountdown(t *testing.T) {
	for r := 1; r <= 5; r++ {
		w := threeExerciseWorkout()
		w.Exercises[0].RestSeconds = r

		skipped, err := session.NewMachine(w)
		require.NoError(t, err)
		require.NoError(t, skipped.CompleteExercise())
		require.NoError(t, skipped.SkipRest())

		counted, err := session.NewMachine(w)
		require.NoError(t, err)
		require.NoError(t, counted.CompleteExercise())
		for i := 0; i <= r; i++ {
			counted.Tick()
		}

		assert.Equal(t, skipped.State(), counted.State(), "rest %d", r)
	}
}

func TestMachine_ZeroRestAdvancesOnNextTick(t *testing.T) {
	w := threeExerciseWorkout()
	w.Exercises[0].RestSeconds = 0
	m, err := session.NewMachine(w)
	require.NoError(t, err)

	require.NoError(t, m.CompleteExercise())
	assert.Equal(t, session.State{Phase: session.PhaseResting}, m.State())
	m.Tick()
	assert.Equal(t, session.State{Phase: session.PhaseInProgress, ExerciseIndex: 1}, m.State())
}

func TestMachine_InvalidTransitions(t *testing.T) {
	m, err := session.NewMachine(threeExerciseWorkout())
	require.NoError(t, err)

	require.ErrorIs(t, m.SkipRest(), session.ErrInvalidState)

	require.NoError(t, m.CompleteExercise())
	require.ErrorIs(t, m.CompleteExercise(), session.ErrInvalidState)
}

func TestMachine_LateTicksAfterComplete(t *testing.T) {
	w := threeExerciseWorkout()
	w.Exercises = w.Exercises[:1]
	m, err := session.NewMachine(w)
	require.NoError(t, err)

	m.TickElapsed()
	require.NoError(t, m.CompleteExercise())
	require.True(t, m.Done())

	m.Tick()
	m.TickElapsed()
	assert.True(t, m.Done())
	assert.Equal(t, 1, m.ElapsedMinutes())
	require.ErrorIs(t, m.CompleteExercise(), session.ErrInvalidState)
	require.ErrorIs(t, m.SkipRest(), session.ErrInvalidState)
	assert.Len(t, m.CompletedExercises(), 1)
}

func TestMachine_ElapsedIndependentOfPhase(t *testing.T) {
	m, err := session.NewMachine(threeExerciseWorkout())
	require.NoError(t, err)

	m.TickElapsed()
	require.NoError(t, m.CompleteExercise())
	m.TickElapsed()
	m.Tick()
	m.TickElapsed()

	assert.Equal(t, 3, m.ElapsedMinutes())
	assert.Equal(t, "Resting(0, 2)", m.State().String())
}
