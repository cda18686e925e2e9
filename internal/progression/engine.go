package progression

import (
	"time"

	"github.com/google/uuid"

	"saiyan/training-app/internal/domain"
)

// Performance is what the trainee actually did during a session.
type Performance struct {
	DurationMinutes int                  // measured elapsed time
	Exercises       []domain.ExerciseLog // one snapshot per completed exercise
}

// Engine turns a completed workout into new user state and a log entry.
type Engine struct {
	now func() time.Time
	loc *time.Location
}

type Option func(*Engine)

// WithClock overrides the completion time source.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// WithLocation sets the timezone calendar days are counted in.
func WithLocation(loc *time.Location) Option {
	return func(e *Engine) { e.loc = loc }
}

func NewEngine(opts ...Option) *Engine {
	e := &Engine{now: time.Now, loc: time.Local}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// CompleteWorkout credits user for workout. prior is not modified; the caller appends the
// returned log. A workout without exercises is accepted and logged with no snapshots.
func (e *Engine) CompleteWorkout(workout domain.Workout, prior []domain.WorkoutLog, user domain.UserState, perf Performance) (domain.UserState, domain.WorkoutLog) {
	completedAt := e.now()

	reward := TotalReward(workout)
	streak := UpdateStreak(prior, completedAt, user.StreakDays, e.loc)
	gained := reward + streak.Bonus

	updated := user
	updated.PowerLevel += gained
	updated.WorkoutsCompleted++
	updated.StreakDays = streak.Days

	exercises := make([]domain.ExerciseLog, len(perf.Exercises))
	copy(exercises, perf.Exercises)

	log := domain.WorkoutLog{
		ID:              uuid.New(),
		WorkoutID:       workout.ID,
		WorkoutName:     workout.Name,
		CompletedAt:     completedAt,
		DurationMinutes: perf.DurationMinutes,
		Reward:          reward,
		StreakBonus:     streak.Bonus,
		PowerGained:     gained,
		Exercises:       exercises,
	}
	return updated, log
}
