package service

import (
	"context"
	"errors"
	"fmt"

	"saiyan/training-app/internal/domain"
	"saiyan/training-app/internal/repository"
)

var ErrMealPlanNotFound = errors.New("no meal plan available")

type DietService interface {
	ListMealPlans(ctx context.Context) ([]domain.MealPlan, error)
	// RecommendedMealPlan picks the plan matching the trainee's goal.
	RecommendedMealPlan(ctx context.Context) (*domain.MealPlan, error)
}

type dietService struct {
	profileRepo repository.ProfileRepository
	catalogRepo repository.CatalogRepository
}

func NewDietService(profileRepo repository.ProfileRepository, catalogRepo repository.CatalogRepository) DietService {
	return &dietService{
		profileRepo: profileRepo,
		catalogRepo: catalogRepo,
	}
}

func (s *dietService) ListMealPlans(ctx context.Context) ([]domain.MealPlan, error) {
	return s.catalogRepo.ListMealPlans(ctx)
}

func (s *dietService) RecommendedMealPlan(ctx context.Context) (*domain.MealPlan, error) {
	profile, err := s.profileRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	plans, err := s.catalogRepo.ListMealPlans(ctx)
	if err != nil {
		return nil, err
	}
	return PickMealPlan(plans, profile.Goal)
}

// PickMealPlan returns the first plan targeting goal, falling back to the first plan.
func PickMealPlan(plans []domain.MealPlan, goal domain.FitnessGoal) (*domain.MealPlan, error) {
	if len(plans) == 0 {
		return nil, ErrMealPlanNotFound
	}
	for i := range plans {
		if plans[i].TargetGoal == goal {
			plan := plans[i]
			return &plan, nil
		}
	}
	plan := plans[0]
	return &plan, nil
}
