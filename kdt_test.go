package bkdtree

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewKDT_RejectsInvalidDimension(t *testing.T) {
	_, err := NewKDT[testPoint](context.Background(), 0, []testPoint{tp(1)})
	var dimErr *ErrInvalidDimension
	require.True(t, errors.As(err, &dimErr), "got error %v, want *ErrInvalidDimension", err)
}

func TestNewKDT_RejectsEmpty(t *testing.T) {
	_, err := NewKDT[testPoint](context.Background(), 1, nil)
	require.ErrorIs(t, err, ErrEmptyConstruction)
}

func TestKDT_DuplicatesAndRange(t *testing.T) {
	// D=1, KDT of [5,3,3,3,1,4,3].
	items := []testPoint{tp(5), tp(3), tp(3), tp(3), tp(1), tp(4), tp(3)}
	kdt, err := NewKDT[testPoint](context.Background(), 1, items)
	require.NoError(t, err)

	count := 0
	for range kdt.Get(tp(3)) {
		count++
	}
	require.Equal(t, 4, count, "get(3) yield count")

	require.False(t, kdt.Contains(tp(6)))

	lo, hi := tp(3), tp(4)
	rangeCount := 0
	kdt.ForEachRange(context.Background(), func(testPoint) bool {
		rangeCount++
		return false
	}, &lo, &hi, true)
	require.Equal(t, 5, rangeCount, "range [3,4] yield count")
}

func TestKDT_VerticalLineRange(t *testing.T) {
	items := []testPoint{tp(0, 0), tp(0, 1), tp(0, 2), tp(0, 3), tp(0, 4)}
	kdt, err := NewKDT[testPoint](context.Background(), 2, items)
	require.NoError(t, err)

	lo, hi := tp(0, 1), tp(0, 3)
	count := 0
	kdt.ForEachRange(context.Background(), func(testPoint) bool {
		count++
		return false
	}, &lo, &hi, true)
	require.Equal(t, 3, count)
}

func TestKDT_GetAllRoundTrip(t *testing.T) {
	items := []testPoint{tp(5), tp(3), tp(1), tp(4), tp(2)}
	kdt, err := NewKDT[testPoint](context.Background(), 1, items)
	require.NoError(t, err)
	require.Equal(t, len(items), kdt.Count())

	seen := map[float64]int{}
	for v := range kdt.GetAll() {
		seen[v[0]]++
	}
	for _, v := range items {
		seen[v[0]]--
	}
	for k, c := range seen {
		require.Zerof(t, c, "multiset mismatch for %v", k)
	}
}

func TestKDT_ForEachCancel(t *testing.T) {
	items := []testPoint{tp(1), tp(2), tp(3), tp(4), tp(5)}
	kdt, err := NewKDT[testPoint](context.Background(), 1, items)
	require.NoError(t, err)

	visited := 0
	canceled := kdt.ForEach(context.Background(), func(testPoint) bool {
		visited++
		return visited == 2
	})
	require.True(t, canceled, "expected ForEach to report cancellation")
	require.Equal(t, 2, visited)
}
