package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"saiyan/training-app/internal/domain"
	"saiyan/training-app/internal/metrics"
	"saiyan/training-app/internal/progression"
	"saiyan/training-app/internal/repository"
	"saiyan/training-app/internal/session"
)

// --- Error Definitions ---
var (
	ErrWorkoutNotFound   = errors.New("workout not found")
	ErrNoActiveSession   = errors.New("no workout session in progress")
	ErrSessionInProgress = errors.New("a workout session is already in progress")
	ErrValidationFailed  = errors.New("validation failed")
)

// Overview is everything the dashboard shows about the trainee.
type Overview struct {
	Profile  domain.Profile       `json:"profile"`
	Stats    domain.UserState     `json:"stats"`
	Progress progression.Progress `json:"progress"`
}

// ProfileUpdate changes only the non-nil fields.
type ProfileUpdate struct {
	Name     *string
	HeightCm *float64
	WeightKg *float64
	Goal     *domain.FitnessGoal
}

// SessionView is a snapshot of the live session for the display layer.
type SessionView struct {
	WorkoutID          uuid.UUID        `json:"workoutId"`
	WorkoutName        string           `json:"workoutName"`
	State              session.State    `json:"state"`
	TotalExercises     int              `json:"totalExercises"`
	CurrentExercise    *domain.Exercise `json:"currentExercise,omitempty"`
	NextExerciseName   string           `json:"nextExerciseName,omitempty"`
	ExercisesCompleted int              `json:"exercisesCompleted"`
	ElapsedMinutes     int              `json:"elapsedMinutes"`
	Result             *Completion      `json:"result,omitempty"` // set once, on the call that completed the session
}

// Completion is the outcome of a finished session.
type Completion struct {
	Log            domain.WorkoutLog          `json:"log"`
	Stats          domain.UserState           `json:"stats"`
	Transformation progression.Transformation `json:"transformation"`
	TierUp         bool                       `json:"tierUp"`
}

type TrainingService interface {
	Overview(ctx context.Context) (*Overview, error)
	UpdateProfile(ctx context.Context, update ProfileUpdate) (*domain.Profile, error)

	ListWorkouts(ctx context.Context) ([]domain.Workout, error)
	RecommendedWorkouts(ctx context.Context) ([]domain.Workout, error)
	GetWorkout(ctx context.Context, id uuid.UUID) (*domain.Workout, error)
	History(ctx context.Context) ([]domain.WorkoutLog, error)

	// Live session
	StartSession(ctx context.Context, workoutID uuid.UUID) (*SessionView, error)
	Session(ctx context.Context) (*SessionView, error)
	CompleteExercise(ctx context.Context) (*SessionView, error)
	SkipRest(ctx context.Context) (*SessionView, error)
	AbortSession(ctx context.Context) error

	// Close aborts any running session and stops its timers.
	Close()
}

// --- Service Implementation ---

type activeSession struct {
	gen       uint64
	machine   *session.Machine
	scheduler *session.Scheduler
}

// trainingService owns the single trainee's UserState. Every mutation, timer
// ticks included, goes through mu.
type trainingService struct {
	profileRepo repository.ProfileRepository
	catalogRepo repository.CatalogRepository
	logRepo     repository.LogRepository
	engine      *progression.Engine
	intervals   session.Intervals
	metrics     *metrics.Manager

	mu      sync.Mutex
	state   domain.UserState
	active  *activeSession
	lastGen uint64
}

// NewTrainingService creates the service with the trainee starting at initial.
func NewTrainingService(
	profileRepo repository.ProfileRepository,
	catalogRepo repository.CatalogRepository,
	logRepo repository.LogRepository,
	engine *progression.Engine,
	intervals session.Intervals,
	initial domain.UserState,
	metricsManager *metrics.Manager,
) TrainingService {
	metricsManager.GaugePowerLevel.Set(float64(initial.PowerLevel))
	metricsManager.GaugeStreakDays.Set(float64(initial.StreakDays))
	return &trainingService{
		profileRepo: profileRepo,
		catalogRepo: catalogRepo,
		logRepo:     logRepo,
		engine:      engine,
		intervals:   intervals,
		metrics:     metricsManager,
		state:       initial,
	}
}

// === Trainee ===

func (s *trainingService) Overview(ctx context.Context) (*Overview, error) {
	profile, err := s.profileRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	s.mu.Lock()
	state := s.state
	s.mu.Unlock()

	return &Overview{
		Profile:  *profile,
		Stats:    state,
		Progress: progression.ProgressOf(state.PowerLevel),
	}, nil
}

func (s *trainingService) UpdateProfile(ctx context.Context, update ProfileUpdate) (*domain.Profile, error) {
	profile, err := s.profileRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}

	if update.Name != nil {
		if *update.Name == "" {
			return nil, fmt.Errorf("name cannot be empty: %w", ErrValidationFailed)
		}
		profile.Name = *update.Name
	}
	if update.HeightCm != nil {
		if *update.HeightCm <= 0 {
			return nil, fmt.Errorf("height must be positive: %w", ErrValidationFailed)
		}
		profile.HeightCm = update.HeightCm
	}
	if update.WeightKg != nil {
		if *update.WeightKg <= 0 {
			return nil, fmt.Errorf("weight must be positive: %w", ErrValidationFailed)
		}
		profile.WeightKg = update.WeightKg
	}
	if update.Goal != nil {
		if !update.Goal.Valid() {
			return nil, fmt.Errorf("unknown goal %q: %w", *update.Goal, ErrValidationFailed)
		}
		profile.Goal = *update.Goal
	}

	if err := s.profileRepo.Update(ctx, profile); err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}
	log.WithField("goal", profile.Goal).Debug("profile updated")
	return profile, nil
}

// === Catalog ===

func (s *trainingService) ListWorkouts(ctx context.Context) ([]domain.Workout, error) {
	return s.catalogRepo.ListWorkouts(ctx)
}

// RecommendedWorkouts filters the catalog by the workout type that serves the trainee's goal.
func (s *trainingService) RecommendedWorkouts(ctx context.Context) ([]domain.Workout, error) {
	profile, err := s.profileRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	workouts, err := s.catalogRepo.ListWorkouts(ctx)
	if err != nil {
		return nil, err
	}
	want := WorkoutTypeForGoal(profile.Goal)
	recommended := make([]domain.Workout, 0, len(workouts))
	for _, w := range workouts {
		if w.Type == want {
			recommended = append(recommended, w)
		}
	}
	return recommended, nil
}

// WorkoutTypeForGoal maps a goal to the workouts recommended for it.
func WorkoutTypeForGoal(goal domain.FitnessGoal) domain.WorkoutType {
	switch goal {
	case domain.GoalWeightLoss, domain.GoalEndurance:
		return domain.WorkoutCardio
	case domain.GoalFlexibility:
		return domain.WorkoutFlexibility
	default:
		return domain.WorkoutStrength
	}
}

func (s *trainingService) GetWorkout(ctx context.Context, id uuid.UUID) (*domain.Workout, error) {
	workout, err := s.catalogRepo.GetWorkout(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrWorkoutNotFound
		}
		return nil, err
	}
	return workout, nil
}

func (s *trainingService) History(ctx context.Context) ([]domain.WorkoutLog, error) {
	return s.logRepo.List(ctx)
}

// === Live session ===

func (s *trainingService) StartSession(ctx context.Context, workoutID uuid.UUID) (*SessionView, error) {
	workout, err := s.GetWorkout(ctx, workoutID)
	if err != nil {
		return nil, err
	}
	machine, err := session.NewMachine(*workout)
	if err != nil {
		return nil, fmt.Errorf("start %q: %w", workout.Name, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.active != nil {
		return nil, ErrSessionInProgress
	}

	s.lastGen++
	active := &activeSession{gen: s.lastGen, machine: machine}
	active.scheduler = session.StartScheduler(context.Background(), s.intervals, sessionTicker{svc: s, gen: active.gen})
	s.active = active
	s.metrics.CounterSessionsStarted.Inc()

	log.WithFields(log.Fields{
		"workout":   workout.Name,
		"exercises": len(workout.Exercises),
	}).Info("workout session started")
	return viewOf(machine, nil), nil
}

func (s *trainingService) Session(_ context.Context) (*SessionView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.active == nil {
		return nil, ErrNoActiveSession
	}
	return viewOf(s.active.machine, nil), nil
}

func (s *trainingService) CompleteExercise(ctx context.Context) (*SessionView, error) {
	return s.transition(ctx, (*session.Machine).CompleteExercise)
}

func (s *trainingService) SkipRest(ctx context.Context) (*SessionView, error) {
	return s.transition(ctx, (*session.Machine).SkipRest)
}

// transition applies a user trigger and finishes the session if it reached Complete.
// The scheduler is stopped after mu is released because its callbacks take mu.
func (s *trainingService) transition(ctx context.Context, trigger func(*session.Machine) error) (*SessionView, error) {
	s.mu.Lock()
	if s.active == nil {
		s.mu.Unlock()
		return nil, ErrNoActiveSession
	}
	active := s.active
	if err := trigger(active.machine); err != nil {
		s.mu.Unlock()
		return nil, err
	}
	log.WithField("state", active.machine.State().String()).Debug("session transition")

	if !active.machine.Done() {
		view := viewOf(active.machine, nil)
		s.mu.Unlock()
		return view, nil
	}

	result, err := s.finishLocked(ctx, active)
	view := viewOf(active.machine, result)
	s.mu.Unlock()

	active.scheduler.Stop()
	if err != nil {
		return nil, err
	}
	return view, nil
}

func (s *trainingService) AbortSession(_ context.Context) error {
	s.mu.Lock()
	active := s.active
	if active == nil {
		s.mu.Unlock()
		return ErrNoActiveSession
	}
	s.active = nil
	s.mu.Unlock()

	active.scheduler.Stop()
	s.metrics.CounterSessionsAborted.Inc()
	log.WithFields(log.Fields{
		"workout":   active.machine.Workout().Name,
		"completed": len(active.machine.CompletedExercises()),
	}).Info("workout session aborted, nothing credited")
	return nil
}

func (s *trainingService) Close() {
	if err := s.AbortSession(context.Background()); err != nil && !errors.Is(err, ErrNoActiveSession) {
		log.Errorf("close training service: %s", err)
	}
}

// finishLocked credits the completed session and detaches it. The session is
// detached even on failure so a broken session cannot block the next one.
func (s *trainingService) finishLocked(ctx context.Context, active *activeSession) (*Completion, error) {
	s.active = nil

	prior, err := s.logRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("load workout history: %w", err)
	}

	machine := active.machine
	workout := machine.Workout()
	before := progression.TierOf(s.state.PowerLevel)
	updated, entry := s.engine.CompleteWorkout(workout, prior, s.state, progression.Performance{
		DurationMinutes: machine.ElapsedMinutes(),
		Exercises:       machine.CompletedExercises(),
	})
	if err := s.logRepo.Append(ctx, entry); err != nil {
		return nil, fmt.Errorf("append workout log: %w", err)
	}
	s.state = updated

	after := progression.TierOf(updated.PowerLevel)
	s.metrics.CounterWorkoutsCompleted.WithLabelValues(string(workout.Difficulty)).Inc()
	s.metrics.CounterPowerGained.Add(float64(entry.PowerGained))
	s.metrics.CounterStreakBonus.Add(float64(entry.StreakBonus))
	s.metrics.GaugePowerLevel.Set(float64(updated.PowerLevel))
	s.metrics.GaugeStreakDays.Set(float64(updated.StreakDays))

	log.WithFields(log.Fields{
		"workout":      workout.Name,
		"power_gained": entry.PowerGained,
		"streak_bonus": entry.StreakBonus,
		"power_level":  updated.PowerLevel,
		"streak_days":  updated.StreakDays,
	}).Info("workout completed")
	if after.Tier > before.Tier {
		log.WithField("transformation", after.Label).Info("transformation unlocked")
	}

	return &Completion{
		Log:            entry,
		Stats:          updated,
		Transformation: after,
		TierUp:         after.Tier > before.Tier,
	}, nil
}

// sessionTicker routes scheduler ticks to the session it was started for.
type sessionTicker struct {
	svc *trainingService
	gen uint64
}

func (t sessionTicker) TickRest()    { t.svc.tick(t.gen, (*session.Machine).Tick) }
func (t sessionTicker) TickElapsed() { t.svc.tick(t.gen, (*session.Machine).TickElapsed) }

// tick never completes a session: only CompleteExercise on the last exercise does.
func (s *trainingService) tick(gen uint64, fn func(*session.Machine)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	// late tick from an aborted or finished session
	if s.active == nil || s.active.gen != gen {
		return
	}
	fn(s.active.machine)
}

func viewOf(m *session.Machine, result *Completion) *SessionView {
	w := m.Workout()
	st := m.State()
	view := &SessionView{
		WorkoutID:          w.ID,
		WorkoutName:        w.Name,
		State:              st,
		TotalExercises:     len(w.Exercises),
		ExercisesCompleted: len(m.CompletedExercises()),
		ElapsedMinutes:     m.ElapsedMinutes(),
		Result:             result,
	}
	if st.Phase == session.PhaseComplete {
		return view
	}
	current := w.Exercises[st.ExerciseIndex]
	view.CurrentExercise = &current
	if st.ExerciseIndex+1 < len(w.Exercises) {
		view.NextExerciseName = w.Exercises[st.ExerciseIndex+1].Name
	}
	return view
}
