package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"saiyan/training-app/internal/domain"
	"saiyan/training-app/internal/repository"
)

// catalogRepository implements repository.CatalogRepository over fixed slices.
type catalogRepository struct {
	mu        sync.RWMutex
	workouts  []domain.Workout
	mealPlans []domain.MealPlan
	rivals    []domain.Rival
}

// NewCatalogRepository serves the given catalog. Use SampleCatalog for the built-in data.
func NewCatalogRepository(c Catalog) repository.CatalogRepository {
	return &catalogRepository{
		workouts:  c.Workouts,
		mealPlans: c.MealPlans,
		rivals:    c.Rivals,
	}
}

func (r *catalogRepository) ListWorkouts(_ context.Context) ([]domain.Workout, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Workout, len(r.workouts))
	copy(out, r.workouts)
	return out, nil
}

func (r *catalogRepository) GetWorkout(_ context.Context, id uuid.UUID) (*domain.Workout, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, w := range r.workouts {
		if w.ID == id {
			found := w
			return &found, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *catalogRepository) ListMealPlans(_ context.Context) ([]domain.MealPlan, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.MealPlan, len(r.mealPlans))
	copy(out, r.mealPlans)
	return out, nil
}

func (r *catalogRepository) ListRivals(_ context.Context) ([]domain.Rival, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Rival, len(r.rivals))
	copy(out, r.rivals)
	return out, nil
}
