package bitset

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBitSetSetGet(t *testing.T) {
	b := New(200)
	require.Equal(t, 200, b.Len())
	for _, i := range []int{0, 1, 63, 64, 65, 127, 128, 199} {
		require.False(t, b.Get(i), "bit %d set before any Set call", i)
	}

	b.Set(64, true)
	b.Set(199, true)

	for i := 0; i < 200; i++ {
		want := i == 64 || i == 199
		require.Equal(t, want, b.Get(i), "Get(%d)", i)
	}

	b.Set(64, false)
	require.False(t, b.Get(64), "bit 64 still set after clearing")
}

func TestBitSetSwap(t *testing.T) {
	b := New(4)
	b.Set(0, true)
	b.Swap(0, 3)
	require.False(t, b.Get(0))
	require.True(t, b.Get(3))

	b.Swap(1, 1)
	require.False(t, b.Get(1), "Swap(i,i) should be a no-op")
}
