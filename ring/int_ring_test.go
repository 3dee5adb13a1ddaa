package ring

import (
	"fmt"
	"math/big"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

var cmpBigInt = cmp.Comparer(func(x, y big.Int) bool {
	return x.Cmp(&y) == 0
})

func newIntPoly(coeffs ...int64) (p IntPoly) {
	p = NewIntPoly(len(coeffs))
	for i := range coeffs {
		p[i].SetInt64(coeffs[i])
	}
	return
}

func testStringIntRing(opname string, r *IntRing) string {
	if r.Modulus == nil {
		return fmt.Sprintf("%s/N=%d/Z", opname, r.N)
	}
	return fmt.Sprintf("%s/N=%d/mod=%s", opname, r.N, r.Modulus.String())
}

func TestIntRing(t *testing.T) {

	ringZ, err := NewIntRing(4, nil)
	require.NoError(t, err)

	ringZ17, err := NewIntRing(4, big.NewInt(17))
	require.NoError(t, err)

	testNewIntRing(t)
	testIntRingFolding(ringZ, t)
	testIntRingFolding(ringZ17, t)
	testIntRingAxioms(ringZ17, t)
	testIntRingWraparound(ringZ, t)
	testIntRingWraparound(ringZ17, t)
	testIntRingMultByMonomial(ringZ17, t)
	testIntRingDegenerate(t)
	testIntRingInverseScalar(t)
	testIntRingRNSConversion(t)
	testIntRingAgainstNTT(t)
}

func testNewIntRing(t *testing.T) {
	t.Run("NewIntRing", func(t *testing.T) {

		r, err := NewIntRing(0, nil)
		require.Nil(t, r)
		require.Error(t, err)

		r, err = NewIntRing(3, nil) // Non power of two degree
		require.Nil(t, r)
		require.Error(t, err)

		r, err = NewIntRing(4, big.NewInt(1))
		require.Nil(t, r)
		require.ErrorIs(t, err, ErrInvalidModulus)

		r, err = NewIntRing(1, nil) // Degenerate degree: Z itself
		require.NotNil(t, r)
		require.NoError(t, err)

		r, err = NewIntRing(4, big.NewInt(17))
		require.NotNil(t, r)
		require.NoError(t, err)
	})
}

func testIntRingFolding(r *IntRing, t *testing.T) {

	t.Run(testStringIntRing("SetCoefficients/Folding", r), func(t *testing.T) {

		// Coefficient i contributes to slot i mod N with sign (-1)^{floor(i/N)}.
		for _, tt := range []struct {
			coeffs IntPoly
			want   IntPoly
		}{
			{newIntPoly(1, 2, 3, 4, 5, 6, 7, 8), newIntPoly(-4, -4, -4, -4)},
			{newIntPoly(0, 1, 2, 3, -1), newIntPoly(1, 1, 2, 3)},
			{newIntPoly(0, 1, 2, 3, 0, 0, 0, 0, 1, 1, 1, 1), newIntPoly(1, 2, 3, 4)},
			{newIntPoly(42, 42, 42, 42, 42, 42, 42, 42), newIntPoly(0, 0, 0, 0)},
			{newIntPoly(0, 1, 2, 3, 0, 0, 0, 0, 1, 1, 1, 1, 1, 1), newIntPoly(0, 1, 3, 4)},
		} {
			p := r.NewIntPoly()
			r.SetCoefficients(tt.coeffs, p)
			r.Reduce(tt.want, tt.want)
			require.Empty(t, cmp.Diff(tt.want, p, cmpBigInt))
		}
	})
}

func testIntRingAxioms(r *IntRing, t *testing.T) {

	t.Run(testStringIntRing("Axioms", r), func(t *testing.T) {

		a := newIntPoly(3, 14, 15, 9)
		b := newIntPoly(2, 6, 5, 3)
		c := newIntPoly(5, 8, 9, 7)

		r.Reduce(a, a)
		r.Reduce(b, b)
		r.Reduce(c, c)

		lhs := r.NewIntPoly()
		rhs := r.NewIntPoly()
		tmp := r.NewIntPoly()

		// a*b = b*a
		r.MulPolyNaive(a, b, lhs)
		r.MulPolyNaive(b, a, rhs)
		require.True(t, r.Equal(lhs, rhs))

		// (a*b)*c = a*(b*c)
		r.MulPolyNaive(a, b, tmp)
		r.MulPolyNaive(tmp, c, lhs)
		r.MulPolyNaive(b, c, tmp)
		r.MulPolyNaive(a, tmp, rhs)
		require.True(t, r.Equal(lhs, rhs))

		// a*(b+c) = a*b + a*c
		r.Add(b, c, tmp)
		r.MulPolyNaive(a, tmp, lhs)
		r.MulPolyNaive(a, b, tmp)
		r.MulPolyNaive(a, c, rhs)
		r.Add(tmp, rhs, rhs)
		require.True(t, r.Equal(lhs, rhs))

		// a + (-a) = 0
		r.Neg(a, tmp)
		r.Add(a, tmp, tmp)
		require.True(t, r.Equal(tmp, r.NewIntPoly()))

		// a * 1 = a
		one := r.NewIntPoly()
		one[0].SetInt64(1)
		r.MulPolyNaive(a, one, lhs)
		require.True(t, r.Equal(lhs, a))
	})
}

func TestIntRingEqualNonMutating(t *testing.T) {

	r, err := NewIntRing(4, big.NewInt(17))
	require.NoError(t, err)

	p1 := newIntPoly(-1, 0, 0, 0)
	p2 := newIntPoly(16, 0, 0, 0)

	require.True(t, r.Equal(p1, p2))

	// The operands must keep their non-canonical representation.
	require.Equal(t, int64(-1), p1[0].Int64())
	require.Equal(t, int64(16), p2[0].Int64())
}

func testIntRingWraparound(r *IntRing, t *testing.T) {

	t.Run(testStringIntRing("MulPolyNaive/Wraparound", r), func(t *testing.T) {

		N := r.N

		// X^{N-1} * X = -1
		p1 := r.NewIntPoly()
		p1[N-1].SetInt64(1)

		p2 := r.NewIntPoly()
		p2[1].SetInt64(1)

		p3 := r.NewIntPoly()
		r.MulPolyNaive(p1, p2, p3)

		want := r.NewIntPoly()
		want[0].SetInt64(-1)
		r.Reduce(want, want)

		require.True(t, r.Equal(p3, want))

		// X^{3} * X^{3} = X^{6} = -X^{2} for N = 4
		if N == 4 {
			r.MulPolyNaive(p1, p1, p3)
			want = newIntPoly(0, 0, -1, 0)
			r.Reduce(want, want)
			require.True(t, r.Equal(p3, want))
		}
	})
}

func testIntRingMultByMonomial(r *IntRing, t *testing.T) {

	t.Run(testStringIntRing("MultByMonomial", r), func(t *testing.T) {

		N := r.N

		p := newIntPoly(1, 2, 3, 4)
		r.Reduce(p, p)

		// X^{k} * X^{-k} = 1
		p2 := r.NewIntPoly()
		r.MultByMonomial(p, 3, p2)
		r.MultByMonomial(p2, -3, p2)
		require.True(t, r.Equal(p, p2))

		// X^{2N} = 1
		r.MultByMonomial(p, 2*N, p2)
		require.True(t, r.Equal(p, p2))

		// X^{N} = -1
		r.MultByMonomial(p, N, p2)
		want := r.NewIntPoly()
		r.Neg(p, want)
		require.True(t, r.Equal(p2, want))
	})
}

func testIntRingDegenerate(t *testing.T) {

	t.Run("Degenerate/N=1", func(t *testing.T) {

		r, err := NewIntRing(1, nil)
		require.NoError(t, err)

		p1 := newIntPoly(7)
		p2 := newIntPoly(-3)
		p3 := r.NewIntPoly()

		// Multiplication collapses to integer multiplication.
		r.MulPolyNaive(p1, p2, p3)
		require.True(t, r.Equal(p3, newIntPoly(-21)))

		// X = -1
		r.MultByMonomial(p1, 1, p3)
		require.True(t, r.Equal(p3, newIntPoly(-7)))
	})
}

func TestIntPolyAt(t *testing.T) {

	p := newIntPoly(1, 2, 3, 4)

	c, err := p.At(2)
	require.NoError(t, err)
	require.Equal(t, int64(3), c.Int64())

	_, err = p.At(-1)
	require.ErrorIs(t, err, ErrIndexOutOfRange)

	_, err = p.At(4)
	require.ErrorIs(t, err, ErrIndexOutOfRange)

	require.NoError(t, p.SetAt(0, big.NewInt(9)))
	require.Equal(t, int64(9), p[0].Int64())

	require.ErrorIs(t, p.SetAt(4, big.NewInt(9)), ErrIndexOutOfRange)
}

func TestRingInverseScalar(t *testing.T) {

	r, err := NewRing(16, 17, 1)
	require.NoError(t, err)

	inv, err := r.InverseScalar(5)
	require.NoError(t, err)
	require.Equal(t, uint64(7), inv) // 5 * 7 = 35 = 1 mod 17

	_, err = r.InverseScalar(0)
	require.ErrorIs(t, err, ErrNotInvertible)

	// Prime power: units of Z_{3^3} are the integers coprime to 3.
	r, err = NewRing(16, 3, 3)
	require.NoError(t, err)

	inv, err = r.InverseScalar(2)
	require.NoError(t, err)
	require.Equal(t, uint64(14), inv) // 2 * 14 = 28 = 1 mod 27

	_, err = r.InverseScalar(6)
	require.ErrorIs(t, err, ErrNotInvertible)
}

func testIntRingInverseScalar(t *testing.T) {

	t.Run("InverseScalar", func(t *testing.T) {

		out := new(big.Int)

		r17, err := NewIntRing(4, big.NewInt(17))
		require.NoError(t, err)

		require.NoError(t, r17.InverseScalar(big.NewInt(5), out))
		require.Equal(t, int64(7), out.Int64()) // 5 * 7 = 35 = 1 mod 17

		r16, err := NewIntRing(4, big.NewInt(16))
		require.NoError(t, err)

		require.ErrorIs(t, r16.InverseScalar(big.NewInt(4), out), ErrNotInvertible)
		require.NoError(t, r16.InverseScalar(big.NewInt(3), out))
		require.Equal(t, int64(11), out.Int64()) // 3 * 11 = 33 = 1 mod 16

		rZ, err := NewIntRing(4, nil)
		require.NoError(t, err)

		require.NoError(t, rZ.InverseScalar(big.NewInt(-1), out))
		require.Equal(t, int64(-1), out.Int64())
		require.ErrorIs(t, rZ.InverseScalar(big.NewInt(2), out), ErrNotInvertible)
	})
}

func testIntRingRNSConversion(t *testing.T) {

	t.Run("RNSConversion", func(t *testing.T) {

		params := testParameters[0]

		ringQ, err := NewRNSRing(1<<params.logN, params.qi)
		require.NoError(t, err)

		r, err := NewIntRing(ringQ.N(), ringQ.Modulus())
		require.NoError(t, err)

		p := r.NewIntPoly()
		for i := range p {
			p[i].SetInt64(int64(i) - int64(r.N)/2)
		}
		r.Reduce(p, p)

		pRNS := ringQ.NewRNSPoly()
		require.NoError(t, r.ToRNSPoly(ringQ, p, pRNS))

		pBack := r.NewIntPoly()
		require.NoError(t, r.FromRNSPoly(ringQ, pRNS, pBack))

		require.True(t, r.Equal(p, pBack))

		// Degree mismatch
		rHalf, err := NewIntRing(r.N>>1, ringQ.Modulus())
		require.NoError(t, err)
		require.ErrorIs(t, rHalf.ToRNSPoly(ringQ, rHalf.NewIntPoly(), pRNS), ErrIncompatibleRings)
		require.ErrorIs(t, rHalf.FromRNSPoly(ringQ, pRNS, rHalf.NewIntPoly()), ErrIncompatibleRings)

		// Limb count mismatch
		require.ErrorIs(t, r.ToRNSPoly(ringQ.AtLevel(ringQ.Level()-1), p, pRNS), ErrModulusMismatch)

		// Modulus mismatch
		rWrong, err := NewIntRing(r.N, new(big.Int).Add(ringQ.Modulus(), big.NewInt(2)))
		require.NoError(t, err)
		require.ErrorIs(t, rWrong.ToRNSPoly(ringQ, rWrong.NewIntPoly(), pRNS), ErrModulusMismatch)
		require.ErrorIs(t, rWrong.FromRNSPoly(ringQ, pRNS, rWrong.NewIntPoly()), ErrModulusMismatch)
	})
}

func TestSetCoefficientsFolded(t *testing.T) {

	N := 16
	q := uint64(97)

	r, err := NewRing(N, q, 1)
	require.NoError(t, err)

	rInt, err := NewIntRing(N, new(big.Int).SetUint64(q))
	require.NoError(t, err)

	coeffs := make([]uint64, 3*N+5)
	coeffsBig := make(IntPoly, len(coeffs))
	for i := range coeffs {
		coeffs[i] = uint64(13 * i)
		coeffsBig[i].SetUint64(coeffs[i])
	}

	p := make(Poly, N)
	r.SetCoefficientsFolded(coeffs, p)

	pBig := rInt.NewIntPoly()
	rInt.SetCoefficients(coeffsBig, pBig)

	for i := 0; i < N; i++ {
		require.Equal(t, pBig[i].Uint64(), p[i])
	}
}

func testIntRingAgainstNTT(t *testing.T) {

	t.Run("MulPolyNaive/AgainstNTT", func(t *testing.T) {

		N := 16
		q := uint64(97) // 97 = 1 mod 32

		ringQ, err := NewRNSRing(N, []uint64{q})
		require.NoError(t, err)

		r, err := NewIntRing(N, new(big.Int).SetUint64(q))
		require.NoError(t, err)

		p1 := r.NewIntPoly()
		p2 := r.NewIntPoly()
		for i := 0; i < N; i++ {
			p1[i].SetInt64(int64((7*i + 3) % 97))
			p2[i].SetInt64(int64((5*i + 11) % 97))
		}

		p3 := r.NewIntPoly()
		r.MulPolyNaive(p1, p2, p3)

		p1RNS := ringQ.NewRNSPoly()
		p2RNS := ringQ.NewRNSPoly()
		require.NoError(t, r.ToRNSPoly(ringQ, p1, p1RNS))
		require.NoError(t, r.ToRNSPoly(ringQ, p2, p2RNS))

		ringQ.NTT(p1RNS, p1RNS)
		ringQ.NTT(p2RNS, p2RNS)
		ringQ.MForm(p1RNS, p1RNS)
		ringQ.MulCoeffsMontgomery(p1RNS, p2RNS, p1RNS)
		ringQ.INTT(p1RNS, p1RNS)

		p3NTT := r.NewIntPoly()
		require.NoError(t, r.FromRNSPoly(ringQ, p1RNS, p3NTT))

		require.True(t, r.Equal(p3, p3NTT))
	})
}
