package session

import (
	"errors"
	"fmt"

	"saiyan/training-app/internal/domain"
)

var (
	ErrInvalidWorkout = errors.New("workout has no exercises")
	ErrInvalidState   = errors.New("transition not allowed in current state")
)

// Phase of a live workout session.
type Phase string

const (
	PhaseInProgress Phase = "in_progress"
	PhaseResting    Phase = "resting"
	PhaseComplete   Phase = "complete"
)

// State is a snapshot of the machine. ExerciseIndex is meaningless once Complete,
// RemainingRest only while Resting.
type State struct {
	Phase         Phase `json:"phase"`
	ExerciseIndex int   `json:"exerciseIndex"`
	RemainingRest int   `json:"remainingRest"`
}

func (s State) String() string {
	switch s.Phase {
	case PhaseInProgress:
		return fmt.Sprintf("InProgress(%d)", s.ExerciseIndex)
	case PhaseResting:
		return fmt.Sprintf("Resting(%d, %d)", s.ExerciseIndex, s.RemainingRest)
	default:
		return "Complete"
	}
}

// Machine drives one workout through its exercises and rest intervals.
// It holds no timers: the caller feeds it Tick and TickElapsed. Not safe for
// concurrent use.
type Machine struct {
	workout        domain.Workout
	state          State
	elapsedMinutes int
	completed      []domain.ExerciseLog
}

// NewMachine starts a session at InProgress(0).
func NewMachine(workout domain.Workout) (*Machine, error) {
	if len(workout.Exercises) == 0 {
		return nil, ErrInvalidWorkout
	}
	return &Machine{
		workout: workout,
		state:   State{Phase: PhaseInProgress},
	}, nil
}

func (m *Machine) Workout() domain.Workout {
	return m.workout
}

func (m *Machine) State() State {
	return m.state
}

func (m *Machine) Done() bool {
	return m.state.Phase == PhaseComplete
}

// ElapsedMinutes is the coarse session time counted by TickElapsed.
func (m *Machine) ElapsedMinutes() int {
	return m.elapsedMinutes
}

// CompletedExercises returns snapshots of the exercises finished so far, in order.
func (m *Machine) CompletedExercises() []domain.ExerciseLog {
	out := make([]domain.ExerciseLog, len(m.completed))
	copy(out, m.completed)
	return out
}

// CompleteExercise finishes the current exercise. The last exercise completes the
// session, any other starts its rest countdown.
func (m *Machine) CompleteExercise() error {
	if m.state.Phase != PhaseInProgress {
		return fmt.Errorf("complete exercise in %s: %w", m.state, ErrInvalidState)
	}

	i := m.state.ExerciseIndex
	ex := m.workout.Exercises[i]
	m.completed = append(m.completed, domain.SnapshotExercise(ex))

	if m.isLast(i) {
		m.state = State{Phase: PhaseComplete}
		return nil
	}
	m.state = State{
		Phase:         PhaseResting,
		ExerciseIndex: i,
		RemainingRest: max(ex.RestSeconds, 0),
	}
	return nil
}

// SkipRest ends the current rest immediately, as if the countdown reached zero.
func (m *Machine) SkipRest() error {
	if m.state.Phase != PhaseResting {
		return fmt.Errorf("skip rest in %s: %w", m.state, ErrInvalidState)
	}
	m.advance()
	return nil
}

// Tick is one second of rest countdown. Outside of Resting it does nothing,
// so ticks arriving after the session completed are dropped.
func (m *Machine) Tick() {
	if m.state.Phase != PhaseResting {
		return
	}
	if m.state.RemainingRest > 0 {
		m.state.RemainingRest--
		return
	}
	m.advance()
}

// TickElapsed adds one minute of session time unless the session is complete.
func (m *Machine) TickElapsed() {
	if m.Done() {
		return
	}
	m.elapsedMinutes++
}

func (m *Machine) advance() {
	i := m.state.ExerciseIndex
	if m.isLast(i) {
		m.state = State{Phase: PhaseComplete}
		return
	}
	m.state = State{Phase: PhaseInProgress, ExerciseIndex: i + 1}
}

func (m *Machine) isLast(i int) bool {
	return i >= len(m.workout.Exercises)-1
}
