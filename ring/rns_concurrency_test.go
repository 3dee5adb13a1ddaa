package ring

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zugzwang/rlwe/utils/sampling"
)

func TestForEachLimb(t *testing.T) {

	params := testParameters[0]

	ringQ, err := NewRNSRing(1<<params.logN, params.qi)
	require.NoError(t, err)

	sampler := NewUniformSampler(sampling.NewSource([32]byte{}), ringQ.ModuliChain())

	for _, workers := range []int{1, 4} {

		t.Run(testString(fmt.Sprintf("ForEachLimb/workers=%d", workers), ringQ), func(t *testing.T) {

			p1 := sampler.ReadNew(ringQ.N())

			p2Want := ringQ.NewRNSPoly()
			ringQ.NTT(p1, p2Want)

			p2Test := ringQ.NewRNSPoly()
			require.NoError(t, ringQ.ForEachLimb(workers, func(i int, s *Ring) error {
				s.NTT(p1.At(i), p2Test.At(i))
				return nil
			}))

			require.True(t, ringQ.Equal(p2Want, p2Test))
		})
	}

	t.Run(testString("ForEachLimb/Error", ringQ), func(t *testing.T) {
		err := ringQ.ForEachLimb(4, func(i int, s *Ring) error {
			if i == 1 {
				return ErrIndexOutOfRange
			}
			return nil
		})
		require.ErrorIs(t, err, ErrIndexOutOfRange)
	})
}
