package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"saiyan/training-app/internal/domain"
	"saiyan/training-app/internal/repository/memory"
	"saiyan/training-app/internal/service"
)

func rivals() []domain.Rival {
	return []domain.Rival{
		{Name: "Cell", PowerLevel: 900},
		{Name: "Krillin", PowerLevel: 75},
		{Name: "Yamcha", PowerLevel: 180},
		{Name: "Videl", PowerLevel: 300},
	}
}

func TestNewRivalBoard(t *testing.T) {
	board := service.NewRivalBoard(rivals(), 300)

	require.NotNil(t, board.StrongestDefeatable)
	assert.Equal(t, "Videl", board.StrongestDefeatable.Name, "ties go to the trainee")
	require.NotNil(t, board.NextChallenge)
	assert.Equal(t, "Cell", board.NextChallenge.Name)

	names := make([]string, 0, len(board.Defeatable))
	for _, r := range board.Defeatable {
		names = append(names, r.Name)
	}
	assert.Equal(t, []string{"Videl", "Yamcha", "Krillin"}, names)
	assert.Equal(t, "Krillin", board.Rivals[0].Name)
}

func TestNewRivalBoard_Extremes(t *testing.T) {
	weak := service.NewRivalBoard(rivals(), 10)
	assert.Nil(t, weak.StrongestDefeatable)
	assert.Empty(t, weak.Defeatable)
	require.NotNil(t, weak.NextChallenge)
	assert.Equal(t, "Krillin", weak.NextChallenge.Name)

	strong := service.NewRivalBoard(rivals(), 1_000_000)
	assert.Nil(t, strong.NextChallenge)
	assert.Len(t, strong.Defeatable, 4)
	assert.Equal(t, "Cell", strong.StrongestDefeatable.Name)
}

func TestNewRivalBoard_DoesNotReorderInput(t *testing.T) {
	in := rivals()
	service.NewRivalBoard(in, 200)
	assert.Equal(t, rivals(), in)
}

func TestRivalService_Board(t *testing.T) {
	svc := service.NewRivalService(memory.NewCatalogRepository(memory.SampleCatalog()))

	board, err := svc.Board(context.Background(), domain.DefaultPowerLevel)
	require.NoError(t, err)
	require.NotNil(t, board.StrongestDefeatable)
	assert.Equal(t, "Krillin (DBZ)", board.StrongestDefeatable.Name)
	require.NotNil(t, board.NextChallenge)
	assert.Equal(t, "Chi-Chi", board.NextChallenge.Name)
}
