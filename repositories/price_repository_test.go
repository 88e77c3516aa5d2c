package repositories

import (
	"testing"

	"granja-app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreatePriceKeepsSingleActiveRow(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)
	repo := NewPriceRepository(db)

	// the seeder already planted one active row
	for _, date := range []string{"2026-08-10", "2026-08-20"} {
		require.NoError(t, repo.CreatePrice(&models.EggPrice{
			EffectiveDate: date,
			PriceAA:       450,
		}))
	}

	var active int64
	require.NoError(t, db.Model(&models.EggPrice{}).Where("active = ?", true).Count(&active).Error)
	assert.Equal(t, int64(1), active)

	price, err := repo.ActivePrice()
	require.NoError(t, err)
	assert.Equal(t, "2026-08-20", price.EffectiveDate)
}

func TestActivePriceIgnoresInactiveRows(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)
	repo := NewPriceRepository(db)

	require.NoError(t, repo.CreatePrice(&models.EggPrice{
		EffectiveDate: "2026-08-10",
		PriceC:        310,
		PriceAA:       460,
	}))

	price, err := repo.ActivePrice()
	require.NoError(t, err)
	assert.True(t, price.Active)
	assert.Equal(t, 460.0, price.PriceAA)
}

func TestPriceHistoryLimit(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)
	repo := NewPriceRepository(db)

	// dates past any seeded row so ordering is deterministic
	dates := []string{"2030-08-01", "2030-08-02", "2030-08-03"}
	for _, d := range dates {
		require.NoError(t, repo.CreatePrice(&models.EggPrice{EffectiveDate: d}))
	}

	prices, err := repo.History(2)
	require.NoError(t, err)
	require.Len(t, prices, 2)
	assert.Equal(t, "2030-08-03", prices[0].EffectiveDate)
	assert.Equal(t, "2030-08-02", prices[1].EffectiveDate)
}
