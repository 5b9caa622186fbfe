package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRepositoryDisabled(t *testing.T) {
	repo := NewRepository(nil, zap.NewNop())
	require.NotNil(t, repo)

	assert.False(t, repo.Enabled())

	t.Run("EnsureSchema", func(t *testing.T) {
		assert.ErrorIs(t, repo.EnsureSchema(), ErrDisabled)
	})

	t.Run("SaveCalculation", func(t *testing.T) {
		err := repo.SaveCalculation(&Calculation{ChatID: 1, Material: "сталь"})
		assert.ErrorIs(t, err, ErrDisabled)
	})

	t.Run("RecentCalculations", func(t *testing.T) {
		calcs, err := repo.RecentCalculations(1, 5)
		assert.ErrorIs(t, err, ErrDisabled)
		assert.Nil(t, calcs)
	})
}
