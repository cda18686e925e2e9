package memory

import (
	"context"
	"sync"

	"saiyan/training-app/internal/domain"
	"saiyan/training-app/internal/repository"
)

// logRepository keeps the workout history for the lifetime of the process.
type logRepository struct {
	mu   sync.RWMutex
	logs []domain.WorkoutLog
	ids  map[string]struct{}
}

func NewLogRepository() repository.LogRepository {
	return &logRepository{ids: make(map[string]struct{})}
}

func (r *logRepository) Append(_ context.Context, log domain.WorkoutLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := log.ID.String()
	if _, exists := r.ids[key]; exists {
		return repository.ErrDuplicateID
	}
	r.ids[key] = struct{}{}
	r.logs = append(r.logs, log)
	return nil
}

func (r *logRepository) List(_ context.Context) ([]domain.WorkoutLog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.WorkoutLog, len(r.logs))
	copy(out, r.logs)
	return out, nil
}
