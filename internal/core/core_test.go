package core

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// point is a minimal D-dimensional integer point used only to exercise the
// core recursion; it has no relation to any type a caller of the public
// packages would define.
type point []int

func cmpPoint(a, b point, d int) int {
	return a[d] - b[d]
}

func coordPoint(v point, d int) float64 {
	return float64(v[d])
}

func pt(vs ...int) point { return point(vs) }

func TestBuildAndForEachEqual_Duplicates(t *testing.T) {
	// D=1, KDT of [5,3,3,3,1,4,3]: get(3) yields 4 items.
	items := []point{pt(5), pt(3), pt(3), pt(3), pt(1), pt(4), pt(3)}
	tr := Build(1, items, cmpPoint)

	var got []point
	tr.ForEachEqual(pt(3), func(v point) bool {
		got = append(got, v)
		return false
	})
	require.Len(t, got, 4)

	require.False(t, tr.ContainsEqual(pt(6)))
}

func TestForEachRange_Inclusive(t *testing.T) {
	items := []point{pt(5), pt(3), pt(3), pt(3), pt(1), pt(4), pt(3)}
	tr := Build(1, items, cmpPoint)

	lo, hi := pt(3), pt(4)
	count := 0
	tr.ForEachRange(&lo, &hi, true, func(point) bool {
		count++
		return false
	})
	require.Equal(t, 5, count)
}

func TestForEachRange_VerticalLine(t *testing.T) {
	items := []point{pt(0, 0), pt(0, 1), pt(0, 2), pt(0, 3), pt(0, 4)}
	tr := Build(2, items, cmpPoint)

	lo, hi := pt(0, 1), pt(0, 3)
	count := 0
	tr.ForEachRange(&lo, &hi, true, func(point) bool {
		count++
		return false
	})
	require.Equal(t, 3, count)
}

func TestForEachRange_EmptyWhenLoAboveHi(t *testing.T) {
	items := []point{pt(0, 0), pt(1, 1)}
	tr := Build(2, items, cmpPoint)

	lo, hi := pt(5, 5), pt(1, 1)
	count := 0
	canceled := tr.ForEachRange(&lo, &hi, true, func(point) bool {
		count++
		return false
	})
	require.False(t, canceled)
	require.Equal(t, 0, count)
}

func TestForEachEqual_CancelStopsTraversal(t *testing.T) {
	items := []point{pt(1), pt(1), pt(1), pt(1)}
	tr := Build(1, items, cmpPoint)

	visited := 0
	canceled := tr.ForEachEqual(pt(1), func(point) bool {
		visited++
		return visited == 2
	})
	require.True(t, canceled)
	require.Equal(t, 2, visited)
}

func TestNearestNeighbor_Basic(t *testing.T) {
	items := []point{pt(0, 0), pt(10, 10), pt(3, 4)}
	tr := Build(2, items, cmpPoint)

	res := tr.NearestNeighbor(pt(1, 1), coordPoint)
	require.True(t, res.Found)
	require.Equal(t, 2.0, res.SqDist)
	require.Equal(t, point{0, 0}, res.Neighbor)
}

func TestNearestNeighbor_MatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	n := 200
	items := make([]point, n)
	for i := range items {
		items[i] = pt(rng.Intn(1000), rng.Intn(1000))
	}
	tr := Build(2, append([]point(nil), items...), cmpPoint)

	for q := 0; q < 20; q++ {
		query := pt(rng.Intn(1000), rng.Intn(1000))
		res := tr.NearestNeighbor(query, coordPoint)

		best := SquaredDistance(2, query, items[0], coordPoint)
		for _, v := range items[1:] {
			if sq := SquaredDistance(2, query, v, coordPoint); sq < best {
				best = sq
			}
		}
		require.Equal(t, best, res.SqDist, "query %v", query)
	}
}

func TestBuild_RoundTripMultiset(t *testing.T) {
	items := []point{pt(5), pt(3), pt(3), pt(1), pt(4), pt(3), pt(2)}
	orig := append([]point(nil), items...)
	tr := Build(1, append([]point(nil), items...), cmpPoint)

	var got []point
	tr.ForEachRange(nil, nil, true, func(v point) bool {
		got = append(got, v)
		return false
	})

	require.Len(t, got, len(orig))
	counts := map[int]int{}
	for _, v := range orig {
		counts[v[0]]++
	}
	for _, v := range got {
		counts[v[0]]--
	}
	for k, c := range counts {
		require.Zerof(t, c, "multiset mismatch for value %d", k)
	}
}
