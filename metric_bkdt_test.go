package bkdtree

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMetricBKDT_NearestNeighborAcrossBaseAndSlot(t *testing.T) {
	// MetricBKDT(block=2), insert (0,0),(5,5),(1,1),(4,4); query (0.5, 0.5).
	mb, err := NewMetricBKDT[testPoint](2, 2)
	require.NoError(t, err)
	ctx := context.Background()
	for _, v := range []testPoint{tp(0, 0), tp(5, 5), tp(1, 1), tp(4, 4)} {
		require.NoError(t, mb.Insert(ctx, v))
	}

	res := mb.NearestNeighbor(ctx, tp(0.5, 0.5))
	require.True(t, res.Found)
	require.Equal(t, 0.5, res.SquaredDist)
}

func TestMetricBKDT_NearestNeighborMatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	mb, err := NewMetricBKDT[testPoint](2, 8)
	require.NoError(t, err)
	ctx := context.Background()

	var inserted []testPoint
	for i := 0; i < 120; i++ {
		v := tp(rng.Float64()*50, rng.Float64()*50)
		require.NoError(t, mb.Insert(ctx, v))
		inserted = append(inserted, v)
	}

	for q := 0; q < 20; q++ {
		query := tp(rng.Float64()*50, rng.Float64()*50)
		res := mb.NearestNeighbor(ctx, query)

		best := squaredDist(query, inserted[0])
		for _, v := range inserted[1:] {
			if d := squaredDist(query, v); d < best {
				best = d
			}
		}
		require.Equal(t, best, res.SquaredDist, "query %v", query)
	}
}
