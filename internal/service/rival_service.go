package service

import (
	"context"
	"slices"

	"saiyan/training-app/internal/domain"
	"saiyan/training-app/internal/repository"
)

// RivalBoard compares a power level against the rival roster.
type RivalBoard struct {
	PowerLevel          int            `json:"powerLevel"`
	StrongestDefeatable *domain.Rival  `json:"strongestDefeatable,omitempty"`
	NextChallenge       *domain.Rival  `json:"nextChallenge,omitempty"` // weakest rival still out of reach
	Defeatable          []domain.Rival `json:"defeatable"`              // strongest first
	Rivals              []domain.Rival `json:"rivals"`                  // weakest first
}

type RivalService interface {
	Board(ctx context.Context, powerLevel int) (*RivalBoard, error)
}

type rivalService struct {
	catalogRepo repository.CatalogRepository
}

func NewRivalService(catalogRepo repository.CatalogRepository) RivalService {
	return &rivalService{catalogRepo: catalogRepo}
}

func (s *rivalService) Board(ctx context.Context, powerLevel int) (*RivalBoard, error) {
	rivals, err := s.catalogRepo.ListRivals(ctx)
	if err != nil {
		return nil, err
	}
	return NewRivalBoard(rivals, powerLevel), nil
}

// NewRivalBoard builds the board without touching rivals.
func NewRivalBoard(rivals []domain.Rival, powerLevel int) *RivalBoard {
	sorted := slices.Clone(rivals)
	slices.SortStableFunc(sorted, func(a, b domain.Rival) int {
		return a.PowerLevel - b.PowerLevel
	})

	board := &RivalBoard{
		PowerLevel: powerLevel,
		Defeatable: []domain.Rival{},
		Rivals:     sorted,
	}
	for i := len(sorted) - 1; i >= 0; i-- {
		if sorted[i].CanBeat(powerLevel) {
			board.Defeatable = append(board.Defeatable, sorted[i])
		}
	}
	if len(board.Defeatable) > 0 {
		strongest := board.Defeatable[0]
		board.StrongestDefeatable = &strongest
	}
	for _, r := range sorted {
		if !r.CanBeat(powerLevel) {
			next := r
			board.NextChallenge = &next
			break
		}
	}
	return board
}
