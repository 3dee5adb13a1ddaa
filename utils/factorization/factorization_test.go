package factorization

import (
	"math/big"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetFactors(t *testing.T) {

	for _, tt := range []struct {
		m       int64
		factors []int64
	}{
		{2 * 3 * 5 * 7, []int64{2, 3, 5, 7}},
		{1 << 16, []int64{2}},
		{65537, []int64{65537}},
		{104729 * 104729, []int64{104729}},
		{999983 * 2, []int64{2, 999983}},
	} {
		factors := GetFactors(big.NewInt(tt.m))

		have := make([]int64, len(factors))
		for i := range factors {
			have[i] = factors[i].Int64()
		}
		sort.Slice(have, func(i, j int) bool { return have[i] < have[j] })

		require.Equal(t, tt.factors, have)
	}
}

func TestGetFactorPollardRho(t *testing.T) {

	n := new(big.Int).Mul(big.NewInt(104729), big.NewInt(999983))

	factor := GetFactorPollardRho(n)

	require.True(t, new(big.Int).Mod(n, factor).Sign() == 0)
	require.True(t, factor.Cmp(big.NewInt(1)) > 0)
	require.True(t, factor.Cmp(n) < 0)
}
