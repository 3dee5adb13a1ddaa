package ring

import (
	"fmt"
	"math/bits"
	"unsafe"

	"github.com/zugzwang/rlwe/utils"
)

// AutomorphismNTTIndex computes the look-up table for the automorphism X^{i} -> X^{i*galEl} mod X^{N}+1
// of a polynomial in the NTT domain. galEl must be an odd integer, i.e. an element of Z_{2N}^*.
func AutomorphismNTTIndex(N int, NthRoot, galEl uint64) (index []uint64, err error) {

	if galEl&1 == 0 {
		return nil, fmt.Errorf("%w: galEl must be odd", ErrIndexOutOfRange)
	}

	var mask, tmp1, tmp2 uint64
	logNthRoot := int(bits.Len64(NthRoot>>1) - 1)
	mask = NthRoot - 1
	index = make([]uint64, N)

	for i := uint64(0); i < uint64(N); i++ {
		tmp1 = 2*utils.BitReverse64(i, logNthRoot) + 1
		tmp2 = ((galEl * tmp1 & mask) - 1) >> 1
		index[i] = utils.BitReverse64(tmp2, logNthRoot)
	}

	return
}

// Automorphism applies the automorphism X^{i} -> X^{i*galEl} mod X^{N}+1 on p1 and
// writes the result on p2. The method is not in place, p1 and p2 cannot be the
// same polynomial. Inputs are expected to not be in the NTT domain.
func (r RNSRing) Automorphism(p1 RNSPoly, galEl uint64, p2 RNSPoly) {

	var mask, index, indexRaw, logN, tmp uint64

	N := uint64(r.N())

	mask = N - 1

	logN = uint64(bits.Len64(mask))

	for i := uint64(0); i < N; i++ {

		indexRaw = i * galEl

		index = indexRaw & mask

		tmp = (indexRaw >> logN) & 1

		for j, s := range r {
			// X^{i} -> (-1)^{(i*galEl)/N} * X^{i*galEl mod N}
			// CRed keeps a negated zero coefficient canonical.
			p2.At(j)[index] = CRed(p1.At(j)[i]*(tmp^1)|(s.Modulus-p1.At(j)[i])*tmp, s.Modulus)
		}
	}
}

// AutomorphismNTT applies the automorphism X^{i} -> X^{i*galEl} mod X^{N}+1 on p1 and
// writes the result on p2. The method is not in place, p1 and p2 cannot be the
// same polynomial. Inputs are expected to be in the NTT domain.
func (r RNSRing) AutomorphismNTT(p1 RNSPoly, galEl uint64, p2 RNSPoly) {
	index, err := AutomorphismNTTIndex(r.N(), r.NthRoot(), galEl)
	// Sanity check
	if err != nil {
		panic(err)
	}
	r.AutomorphismNTTWithIndex(p1, index, p2)
}

// AutomorphismNTTWithIndex applies the automorphism X^{i} -> X^{i*galEl} mod X^{N}+1 on p1 and
// writes the result on p2, using the precomputed look-up table generated with [AutomorphismNTTIndex].
// The method is not in place, p1 and p2 cannot be the same polynomial.
// Inputs are expected to be in the NTT domain.
func (r RNSRing) AutomorphismNTTWithIndex(p1 RNSPoly, index []uint64, p2 RNSPoly) {

	level := r.Level()

	N := r.N()

	for j := 0; j < N; j = j + 8 {

		/* #nosec G103 -- behavior and consequences well understood, access within bounds */
		x := (*[8]uint64)(unsafe.Pointer(&index[j]))

		for i := 0; i < level+1; i++ {

			/* #nosec G103 -- behavior and consequences well understood, access within bounds */
			z := (*[8]uint64)(unsafe.Pointer(&p2.At(i)[j]))

			y := p1.At(i)

			z[0] = y[x[0]]
			z[1] = y[x[1]]
			z[2] = y[x[2]]
			z[3] = y[x[3]]
			z[4] = y[x[4]]
			z[5] = y[x[5]]
			z[6] = y[x[6]]
			z[7] = y[x[7]]
		}
	}
}

// AutomorphismNTTWithIndexThenAddLazy applies the automorphism X^{i} -> X^{i*galEl} mod X^{N}+1 on p1
// and adds the result on p2 without modular reduction, using the precomputed look-up table generated
// with [AutomorphismNTTIndex]. The method is not in place, p1 and p2 cannot be the same polynomial.
// Inputs are expected to be in the NTT domain.
func (r RNSRing) AutomorphismNTTWithIndexThenAddLazy(p1 RNSPoly, index []uint64, p2 RNSPoly) {

	level := r.Level()

	N := r.N()

	for j := 0; j < N; j = j + 8 {

		/* #nosec G103 -- behavior and consequences well understood, access within bounds */
		x := (*[8]uint64)(unsafe.Pointer(&index[j]))

		for i := 0; i < level+1; i++ {

			/* #nosec G103 -- behavior and consequences well understood, access within bounds */
			z := (*[8]uint64)(unsafe.Pointer(&p2.At(i)[j]))

			y := p1.At(i)

			z[0] += y[x[0]]
			z[1] += y[x[1]]
			z[2] += y[x[2]]
			z[3] += y[x[3]]
			z[4] += y[x[4]]
			z[5] += y[x[5]]
			z[6] += y[x[6]]
			z[7] += y[x[7]]
		}
	}
}
