package repository

import (
	"context"

	"github.com/google/uuid"

	"saiyan/training-app/internal/domain"
)

// Error constants for repository layer
var (
	ErrNotFound     = RepositoryError("not found")
	ErrUpdateFailed = RepositoryError("update failed")
	ErrDuplicateID  = RepositoryError("duplicate id")
)

// RepositoryError helps distinguish repository errors
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// CatalogRepository provides the read-only reference data: workouts, meal plans and rivals.
type CatalogRepository interface {
	ListWorkouts(ctx context.Context) ([]domain.Workout, error)
	GetWorkout(ctx context.Context, id uuid.UUID) (*domain.Workout, error)
	ListMealPlans(ctx context.Context) ([]domain.MealPlan, error)
	ListRivals(ctx context.Context) ([]domain.Rival, error)
}

// ProfileRepository holds the trainee's identity, body metrics and goal.
type ProfileRepository interface {
	Get(ctx context.Context) (*domain.Profile, error)
	Update(ctx context.Context, profile *domain.Profile) error
}

// LogRepository is the append-only workout history, oldest first.
type LogRepository interface {
	Append(ctx context.Context, log domain.WorkoutLog) error
	List(ctx context.Context) ([]domain.WorkoutLog, error)
}
