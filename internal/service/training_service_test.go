package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"saiyan/training-app/internal/domain"
	"saiyan/training-app/internal/metrics"
	"saiyan/training-app/internal/progression"
	"saiyan/training-app/internal/repository/memory"
	"saiyan/training-app/internal/service"
	"saiyan/training-app/internal/session"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var (
	completedAt = time.Date(2025, time.March, 10, 18, 30, 0, 0, time.UTC)
	// timers that never fire during a test
	idleIntervals = session.Intervals{Rest: time.Hour, Elapsed: time.Hour}
)

type fixture struct {
	svc     service.TrainingService
	catalog memory.Catalog
	metrics *metrics.Manager
}

func newFixture(t *testing.T, intervals session.Intervals) *fixture {
	t.Helper()
	catalog := memory.SampleCatalog()
	profile := domain.Profile{ID: uuid.New(), Name: "Goku", Goal: domain.GoalStrengthGain}
	m := metrics.NewTestManager()
	engine := progression.NewEngine(
		progression.WithClock(func() time.Time { return completedAt }),
		progression.WithLocation(time.UTC),
	)
	svc := service.NewTrainingService(
		memory.NewProfileRepository(profile),
		memory.NewCatalogRepository(catalog),
		memory.NewLogRepository(),
		engine,
		intervals,
		domain.NewUserState(),
		m,
	)
	t.Cleanup(svc.Close)
	return &fixture{svc: svc, catalog: catalog, metrics: m}
}

func (f *fixture) workout(name string) domain.Workout {
	for _, w := range f.catalog.Workouts {
		if w.Name == name {
			return w
		}
	}
	panic("unknown sample workout " + name)
}

func TestTrainingService_CompleteSingleExerciseWorkout(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, idleIntervals)
	flex := f.workout("Namekian Flexibility")

	view, err := f.svc.StartSession(ctx, flex.ID)
	require.NoError(t, err)
	assert.Equal(t, "InProgress(0)", view.State.String())
	require.NotNil(t, view.CurrentExercise)
	assert.Empty(t, view.NextExerciseName)

	view, err = f.svc.CompleteExercise(ctx)
	require.NoError(t, err)
	assert.Equal(t, session.PhaseComplete, view.State.Phase)
	require.NotNil(t, view.Result)

	entry := view.Result.Log
	assert.Equal(t, flex.ID, entry.WorkoutID)
	assert.Equal(t, 90, entry.Reward)
	assert.Equal(t, 0, entry.StreakBonus)
	assert.Equal(t, 90, entry.PowerGained)
	assert.Equal(t, completedAt, entry.CompletedAt)
	assert.Len(t, entry.Exercises, 1)
	assert.Equal(t, domain.UserState{PowerLevel: 190, WorkoutsCompleted: 1, StreakDays: 1}, view.Result.Stats)
	assert.False(t, view.Result.TierUp)

	_, err = f.svc.Session(ctx)
	assert.ErrorIs(t, err, service.ErrNoActiveSession)

	history, err := f.svc.History(ctx)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, entry.ID, history[0].ID)

	overview, err := f.svc.Overview(ctx)
	require.NoError(t, err)
	assert.Equal(t, 190, overview.Stats.PowerLevel)
	assert.Equal(t, 190, overview.Progress.PowerLevel)
	assert.Equal(t, "Goku", overview.Profile.Name)

	assert.Equal(t, float64(1), testutil.ToFloat64(f.metrics.CounterSessionsStarted))
	assert.Equal(t, float64(1), testutil.ToFloat64(f.metrics.CounterWorkoutsCompleted.WithLabelValues(string(domain.DifficultyBeginner))))
	assert.Equal(t, float64(90), testutil.ToFloat64(f.metrics.CounterPowerGained))
	assert.Equal(t, float64(190), testutil.ToFloat64(f.metrics.GaugePowerLevel))
}

func TestTrainingService_SameDaySessionsContinueStreak(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, idleIntervals)
	flex := f.workout("Namekian Flexibility")

	for i := 0; i < 2; i++ {
		_, err := f.svc.StartSession(ctx, flex.ID)
		require.NoError(t, err)
		_, err = f.svc.CompleteExercise(ctx)
		require.NoError(t, err)
	}

	overview, err := f.svc.Overview(ctx)
	require.NoError(t, err)
	// 100 + 90 + (90 + 20 streak bonus)
	assert.Equal(t, domain.UserState{PowerLevel: 300, WorkoutsCompleted: 2, StreakDays: 2}, overview.Stats)
	assert.Equal(t, float64(20), testutil.ToFloat64(f.metrics.CounterStreakBonus))
}

func TestTrainingService_StartSessionErrors(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, idleIntervals)

	_, err := f.svc.StartSession(ctx, uuid.New())
	assert.ErrorIs(t, err, service.ErrWorkoutNotFound)

	strength := f.workout("Super Saiyan Strength")
	_, err = f.svc.StartSession(ctx, strength.ID)
	require.NoError(t, err)

	_, err = f.svc.StartSession(ctx, strength.ID)
	assert.ErrorIs(t, err, service.ErrSessionInProgress)
}

func TestTrainingService_TriggersWithoutSession(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, idleIntervals)

	_, err := f.svc.Session(ctx)
	assert.ErrorIs(t, err, service.ErrNoActiveSession)
	_, err = f.svc.CompleteExercise(ctx)
	assert.ErrorIs(t, err, service.ErrNoActiveSession)
	_, err = f.svc.SkipRest(ctx)
	assert.ErrorIs(t, err, service.ErrNoActiveSession)
	assert.ErrorIs(t, f.svc.AbortSession(ctx), service.ErrNoActiveSession)
}

func TestTrainingService_SkipRestWalksThroughWorkout(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, idleIntervals)
	strength := f.workout("Super Saiyan Strength")

	_, err := f.svc.StartSession(ctx, strength.ID)
	require.NoError(t, err)

	_, err = f.svc.SkipRest(ctx)
	assert.ErrorIs(t, err, session.ErrInvalidState)

	view, err := f.svc.CompleteExercise(ctx)
	require.NoError(t, err)
	assert.Equal(t, session.PhaseResting, view.State.Phase)
	assert.Equal(t, strength.Exercises[0].RestSeconds, view.State.RemainingRest)
	assert.Equal(t, strength.Exercises[1].Name, view.NextExerciseName)

	_, err = f.svc.CompleteExercise(ctx)
	assert.ErrorIs(t, err, session.ErrInvalidState)

	view, err = f.svc.SkipRest(ctx)
	require.NoError(t, err)
	assert.Equal(t, "InProgress(1)", view.State.String())
	assert.Equal(t, 1, view.ExercisesCompleted)

	_, err = f.svc.CompleteExercise(ctx)
	require.NoError(t, err)
	_, err = f.svc.SkipRest(ctx)
	require.NoError(t, err)
	view, err = f.svc.CompleteExercise(ctx)
	require.NoError(t, err)
	require.NotNil(t, view.Result)
	assert.Equal(t, 180, view.Result.Log.Reward)
	assert.Len(t, view.Result.Log.Exercises, 3)
}

func TestTrainingService_AbortCreditsNothing(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, idleIntervals)
	strength := f.workout("Super Saiyan Strength")

	_, err := f.svc.StartSession(ctx, strength.ID)
	require.NoError(t, err)
	_, err = f.svc.CompleteExercise(ctx)
	require.NoError(t, err)

	require.NoError(t, f.svc.AbortSession(ctx))

	overview, err := f.svc.Overview(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.NewUserState(), overview.Stats)
	history, err := f.svc.History(ctx)
	require.NoError(t, err)
	assert.Empty(t, history)
	assert.Equal(t, float64(1), testutil.ToFloat64(f.metrics.CounterSessionsAborted))

	// a fresh session can start right away
	_, err = f.svc.StartSession(ctx, strength.ID)
	require.NoError(t, err)
}

func TestTrainingService_RestCountdownDrivenByTimer(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, session.Intervals{Rest: time.Millisecond, Elapsed: time.Hour})
	strength := f.workout("Super Saiyan Strength")

	_, err := f.svc.StartSession(ctx, strength.ID)
	require.NoError(t, err)
	_, err = f.svc.CompleteExercise(ctx)
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		view, err := f.svc.Session(ctx)
		return err == nil && view.State == session.State{Phase: session.PhaseInProgress, ExerciseIndex: 1}
	}, 5*time.Second, 5*time.Millisecond)
}

func TestTrainingService_ElapsedTimeCountsTowardsLog(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, session.Intervals{Rest: time.Hour, Elapsed: time.Millisecond})
	flex := f.workout("Namekian Flexibility")

	_, err := f.svc.StartSession(ctx, flex.ID)
	require.NoError(t, err)
	require.Eventually(t, func() bool {
		view, err := f.svc.Session(ctx)
		return err == nil && view.ElapsedMinutes >= 3
	}, 5*time.Second, 5*time.Millisecond)

	view, err := f.svc.CompleteExercise(ctx)
	require.NoError(t, err)
	require.NotNil(t, view.Result)
	assert.GreaterOrEqual(t, view.Result.Log.DurationMinutes, 3)
	// the reward is based on the planned duration, not the measured one
	assert.Equal(t, 90, view.Result.Log.Reward)
}

func TestTrainingService_UpdateProfileAndRecommendations(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, idleIntervals)

	recommended, err := f.svc.RecommendedWorkouts(ctx)
	require.NoError(t, err)
	require.Len(t, recommended, 1)
	assert.Equal(t, "Super Saiyan Strength", recommended[0].Name)

	goal := domain.GoalFlexibility
	height := 175.0
	profile, err := f.svc.UpdateProfile(ctx, service.ProfileUpdate{Goal: &goal, HeightCm: &height})
	require.NoError(t, err)
	assert.Equal(t, domain.GoalFlexibility, profile.Goal)
	require.NotNil(t, profile.HeightCm)
	assert.Equal(t, 175.0, *profile.HeightCm)
	assert.Equal(t, "Goku", profile.Name)

	recommended, err = f.svc.RecommendedWorkouts(ctx)
	require.NoError(t, err)
	require.Len(t, recommended, 1)
	assert.Equal(t, "Namekian Flexibility", recommended[0].Name)
}

func TestTrainingService_UpdateProfileValidation(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, idleIntervals)

	empty := ""
	badGoal := domain.FitnessGoal("Flying")
	negative := -1.0
	for name, update := range map[string]service.ProfileUpdate{
		"empty name":      {Name: &empty},
		"unknown goal":    {Goal: &badGoal},
		"negative height": {HeightCm: &negative},
		"negative weight": {WeightKg: &negative},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := f.svc.UpdateProfile(ctx, update)
			assert.ErrorIs(t, err, service.ErrValidationFailed)
		})
	}

	overview, err := f.svc.Overview(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.GoalStrengthGain, overview.Profile.Goal)
}

func TestWorkoutTypeForGoal(t *testing.T) {
	assert.Equal(t, domain.WorkoutCardio, service.WorkoutTypeForGoal(domain.GoalWeightLoss))
	assert.Equal(t, domain.WorkoutCardio, service.WorkoutTypeForGoal(domain.GoalEndurance))
	assert.Equal(t, domain.WorkoutFlexibility, service.WorkoutTypeForGoal(domain.GoalFlexibility))
	assert.Equal(t, domain.WorkoutStrength, service.WorkoutTypeForGoal(domain.GoalStrengthGain))
}
