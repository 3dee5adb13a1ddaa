package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBitReverse64(t *testing.T) {
	require.Equal(t, uint64(0), BitReverse64(0, 4))
	require.Equal(t, uint64(8), BitReverse64(1, 4))
	require.Equal(t, uint64(12), BitReverse64(3, 4))
	require.Equal(t, uint64(15), BitReverse64(15, 4))
}

func TestAllDistinct(t *testing.T) {
	require.True(t, AllDistinct([]uint64{1, 2, 3}))
	require.False(t, AllDistinct([]uint64{1, 2, 1}))
	require.True(t, AllDistinct([]uint64{}))
}

func TestGCD(t *testing.T) {
	require.Equal(t, 6, GCD(12, 18))
	require.Equal(t, 1, GCD(17, 4))
	require.Equal(t, 0, GCD(5, 0))
}

func TestRotateSlice(t *testing.T) {
	s := []int{0, 1, 2, 3, 4}
	require.Equal(t, []int{2, 3, 4, 0, 1}, RotateSlice(s, 2))
	require.Equal(t, []int{0, 1, 2, 3, 4}, RotateSlice(s, 0))

	sout := make([]int, 5)
	RotateSliceAllocFree(s, 2, sout)
	require.Equal(t, []int{2, 3, 4, 0, 1}, sout)
}
