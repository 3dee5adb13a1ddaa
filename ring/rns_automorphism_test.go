package ring

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zugzwang/rlwe/utils/sampling"
)

func TestAutomorphism(t *testing.T) {

	params := testParameters[0]

	ringQ, err := NewRNSRing(1<<params.logN, params.qi)
	require.NoError(t, err)

	sampler := NewUniformSampler(sampling.NewSource([32]byte{}), ringQ.ModuliChain())

	t.Run(testString("AutomorphismNTTIndex", ringQ), func(t *testing.T) {
		_, err := AutomorphismNTTIndex(ringQ.N(), ringQ.NthRoot(), 4)
		require.ErrorIs(t, err, ErrIndexOutOfRange)
	})

	t.Run(testString("Automorphism", ringQ), func(t *testing.T) {

		galEl := uint64(GaloisGen)

		p1 := sampler.ReadNew(ringQ.N())

		// Coefficient domain
		p2Want := ringQ.NewRNSPoly()
		ringQ.Automorphism(p1, galEl, p2Want)

		// NTT domain
		p2Test := ringQ.NewRNSPoly()
		buff := ringQ.NewRNSPoly()
		ringQ.NTT(p1, buff)
		ringQ.AutomorphismNTT(buff, galEl, p2Test)
		ringQ.INTT(p2Test, p2Test)

		require.True(t, ringQ.Equal(p2Want, p2Test))
	})

	t.Run("Automorphism/Monomial", func(t *testing.T) {

		ringQ, err := NewRNSRing(16, []uint64{97})
		require.NoError(t, err)

		// X -> X^{17} = -X, so every zero coefficient crosses the
		// negative wraparound and must stay canonical.
		p1 := ringQ.NewMonomialXi(1)
		p2 := ringQ.NewRNSPoly()
		ringQ.Automorphism(p1, 17, p2)

		for j, s := range ringQ {
			for i := range p2.At(j) {
				require.Less(t, p2.At(j)[i], s.Modulus)
			}
		}

		want := ringQ.NewMonomialXi(17)
		require.True(t, ringQ.Equal(p2, want))
	})

	t.Run(testString("Automorphism/Identity", ringQ), func(t *testing.T) {

		p1 := sampler.ReadNew(ringQ.N())

		p2 := ringQ.NewRNSPoly()
		ringQ.Automorphism(p1, 1, p2)

		require.True(t, ringQ.Equal(p1, p2))
	})

	t.Run(testString("Automorphism/Composition", ringQ), func(t *testing.T) {

		// X -> X^5 followed by X -> X^5 is X -> X^25.
		p1 := sampler.ReadNew(ringQ.N())

		p2 := ringQ.NewRNSPoly()
		p3 := ringQ.NewRNSPoly()
		ringQ.Automorphism(p1, 5, p2)
		ringQ.Automorphism(p2, 5, p3)

		want := ringQ.NewRNSPoly()
		ringQ.Automorphism(p1, 25, want)

		require.True(t, ringQ.Equal(p3, want))
	})
}
