package bignum

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDivRound(t *testing.T) {

	out := new(big.Int)

	for _, tt := range []struct {
		a, b, want int64
	}{
		{7, 2, 4},
		{-7, 2, -4},
		{7, -2, -4},
		{6, 3, 2},
		{5, 4, 1},
	} {
		DivRound(big.NewInt(tt.a), big.NewInt(tt.b), out)
		require.Equal(t, tt.want, out.Int64())
	}
}

func TestStats(t *testing.T) {

	values := make([]big.Int, 9)
	for i := range values {
		values[i].SetInt64(int64(i + 1))
	}

	// mean = 5, std = sqrt(7.5)
	stats := Stats(values, 64)
	require.InDelta(t, 1.4534, stats[0], 1e-3)
	require.InDelta(t, 5.0, stats[1], 1e-12)
}
