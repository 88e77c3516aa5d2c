package repositories

import (
	"testing"

	"granja-app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurrentPopulationEmptyFarm(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)
	repo := NewFlockRepository(db)

	entry, err := repo.CurrentPopulation()
	require.NoError(t, err)
	assert.Zero(t, entry.BirdCount)
}

func TestCurrentPopulationIsNewestEntry(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)
	repo := NewFlockRepository(db)

	require.NoError(t, repo.RecordPopulation(&models.FlockPopulation{
		Date: "2026-08-01", Time: "08:00:00", BirdCount: 500,
	}))
	require.NoError(t, repo.RecordPopulation(&models.FlockPopulation{
		Date: "2026-08-10", Time: "08:00:00", BirdCount: 488, Culled: 12,
	}))

	entry, err := repo.CurrentPopulation()
	require.NoError(t, err)
	assert.Equal(t, 488, entry.BirdCount)
	assert.Equal(t, 12, entry.Culled)
}

func TestFeedConsumptionTotalIsRecomputed(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)
	repo := NewFlockRepository(db)

	entry := models.FeedConsumption{
		Date:         "2026-08-10",
		PerBirdGrams: 110,
		BirdCount:    488,
		TotalGrams:   1, // must be overwritten
	}
	require.NoError(t, repo.RecordFeedConsumption(&entry))
	assert.Equal(t, 53680.0, entry.TotalGrams)

	history, err := repo.ConsumptionHistory("2026-08-01", "2026-08-31")
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, 53680.0, history[0].TotalGrams)
}
