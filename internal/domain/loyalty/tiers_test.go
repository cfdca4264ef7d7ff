package loyalty

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTiers_Contiguous(t *testing.T) {
	for i := 1; i < len(Tiers); i++ {
		prev, cur := Tiers[i-1], Tiers[i]
		assert.Equal(t, prev.MaxPoints+1, cur.MinPoints, "gap between %s and %s", prev.Titulo, cur.Titulo)
		assert.Equal(t, prev.Level+1, cur.Level)
	}
	assert.True(t, Tiers[len(Tiers)-1].Unbounded())
}

func TestResolve(t *testing.T) {
	t.Run("mid tier", func(t *testing.T) {
		p := Resolve(1500)

		assert.Equal(t, "Pro Gamer", p.Tier.Titulo)
		assert.Equal(t, 5, p.Tier.Level)
		require.NotNil(t, p.NextTier)
		assert.Equal(t, "Elite Player", p.NextTier.Titulo)
		assert.Equal(t, 500, p.PointsToNext)
		assert.InDelta(t, 50.0, p.ProgressPercent, 0.001)
	})

	t.Run("zero points is the lowest tier", func(t *testing.T) {
		p := Resolve(0)

		assert.Equal(t, "Rookie Gamer", p.Tier.Titulo)
		require.NotNil(t, p.NextTier)
		assert.Equal(t, 100, p.PointsToNext)
		assert.InDelta(t, 0.0, p.ProgressPercent, 0.001)
	})

	t.Run("boundary lands in the upper tier", func(t *testing.T) {
		p := Resolve(100)

		assert.Equal(t, "Casual Player", p.Tier.Titulo)
		assert.Equal(t, 150, p.PointsToNext)
	})

	t.Run("top tier has no next", func(t *testing.T) {
		p := Resolve(12000)

		assert.Equal(t, "Master Gamer", p.Tier.Titulo)
		assert.Nil(t, p.NextTier)
		assert.Equal(t, 0, p.PointsToNext)
		assert.InDelta(t, 100.0, p.ProgressPercent, 0.001)
	})
}

func TestPointsForPurchase(t *testing.T) {
	tests := []struct {
		total int64
		want  int
	}{
		{0, 0},
		{999, 0},
		{1000, 1},
		{16000, 16},
		{50990, 50},
		{-500, 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, PointsForPurchase(tt.total), "total %d", tt.total)
	}
}
