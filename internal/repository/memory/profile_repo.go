package memory

import (
	"context"
	"errors"
	"sync"

	"saiyan/training-app/internal/domain"
	"saiyan/training-app/internal/repository"
)

type profileRepository struct {
	mu      sync.RWMutex
	profile domain.Profile
}

// NewProfileRepository holds a single trainee profile in memory.
func NewProfileRepository(initial domain.Profile) repository.ProfileRepository {
	return &profileRepository{profile: clone(initial)}
}

func (r *profileRepository) Get(_ context.Context) (*domain.Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p := clone(r.profile)
	return &p, nil
}

func (r *profileRepository) Update(_ context.Context, profile *domain.Profile) error {
	if profile == nil {
		return errors.New("profile is required for update")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if profile.ID != r.profile.ID {
		return repository.ErrNotFound
	}
	r.profile = clone(*profile)
	return nil
}

func clone(p domain.Profile) domain.Profile {
	if p.HeightCm != nil {
		h := *p.HeightCm
		p.HeightCm = &h
	}
	if p.WeightKg != nil {
		w := *p.WeightKg
		p.WeightKg = &w
	}
	return p
}
