package mongo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"saiyan/training-app/internal/repository/memory"
)

func TestWorkoutDocument_RoundTrip(t *testing.T) {
	for _, w := range memory.SampleCatalog().Workouts {
		got, err := newWorkoutDocument(w).toDomain()
		require.NoError(t, err)
		assert.Equal(t, w, got)
	}
}

func TestMealPlanDocument_RoundTrip(t *testing.T) {
	for _, p := range memory.SampleCatalog().MealPlans {
		got, err := newMealPlanDocument(p).toDomain()
		require.NoError(t, err)
		assert.Equal(t, p, got)
	}
}

func TestRivalDocument_BadID(t *testing.T) {
	_, err := rivalDocument{ID: "not-a-uuid", Name: "Raditz"}.toDomain()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rival id")
}
