package ring

import (
	"fmt"
	"math/big"
)

// IntPoly is the structure that contains the coefficients of a polynomial
// with arbitrary precision coefficients.
type IntPoly []big.Int

// NewIntPoly creates a new polynomial with N coefficients set to zero.
func NewIntPoly(N int) IntPoly {
	return make(IntPoly, N)
}

// N returns the number of coefficients of the polynomial.
func (p IntPoly) N() int {
	return len(p)
}

// At returns a pointer to the i-th coefficient of the polynomial.
// An error wrapping [ErrIndexOutOfRange] is returned when i is out of bounds.
func (p IntPoly) At(i int) (*big.Int, error) {
	if i < 0 || i >= len(p) {
		return nil, fmt.Errorf("%w: index %d for a polynomial of degree %d", ErrIndexOutOfRange, i, len(p))
	}
	return &p[i], nil
}

// SetAt sets the i-th coefficient of the polynomial to c.
// An error wrapping [ErrIndexOutOfRange] is returned when i is out of bounds.
func (p IntPoly) SetAt(i int, c *big.Int) error {
	if i < 0 || i >= len(p) {
		return fmt.Errorf("%w: index %d for a polynomial of degree %d", ErrIndexOutOfRange, i, len(p))
	}
	p[i].Set(c)
	return nil
}

// IntRing is the negacyclic ring Z[X]/(X^N + 1) with arbitrary precision
// coefficients, either over the integers (nil modulus) or modulo an
// arbitrary modulus larger than 1.
//
// The ring accepts any power of two degree, including the degenerate
// degree 1, for which X = -1 and elements are plain (modular) integers.
// Multiplication is carried out with a naive negacyclic convolution, so
// the ring also serves as a reference for the NTT-accelerated [RNSRing].
type IntRing struct {
	// Ring degree
	N int

	// Modulus of the coefficients. A nil value instantiates
	// the ring over the integers.
	Modulus *big.Int
}

// NewIntRing creates a new [IntRing] with degree N and the given modulus.
// N must be a power of two. Modulus must be nil (characteristic zero) or
// an integer greater than 1.
func NewIntRing(N int, Modulus *big.Int) (r *IntRing, err error) {

	if N < 1 || N&(N-1) != 0 {
		return nil, fmt.Errorf("invalid ring degree: must be a power of 2 but is %d", N)
	}

	if Modulus != nil && Modulus.Cmp(new(big.Int).SetUint64(1)) <= 0 {
		return nil, fmt.Errorf("%w: Modulus must be nil or greater than 1", ErrInvalidModulus)
	}

	r = &IntRing{N: N}

	if Modulus != nil {
		r.Modulus = new(big.Int).Set(Modulus)
	}

	return
}

// NewIntPoly creates a new polynomial of degree N with all coefficients
// set to zero.
func (r IntRing) NewIntPoly() IntPoly {
	return NewIntPoly(r.N)
}

// SetCoefficients sets the coefficients of p from coeffs.
// If len(coeffs) is larger than the ring degree, the extra coefficients
// are folded back using X^N = -1: the coefficient of X^{i} is added to
// the coefficient of X^{i mod N} with the sign (-1)^{floor(i/N)}.
func (r IntRing) SetCoefficients(coeffs []big.Int, p IntPoly) {

	N := r.N

	for i := range p {
		p[i].SetInt64(0)
	}

	for i := range coeffs {
		if (i/N)&1 == 0 {
			p[i%N].Add(&p[i%N], &coeffs[i])
		} else {
			p[i%N].Sub(&p[i%N], &coeffs[i])
		}
	}

	r.Reduce(p, p)
}

// Reduce maps the coefficients of p1 to [0, Modulus-1] and writes the
// result on p2. The method is a no-op over the integers.
func (r IntRing) Reduce(p1, p2 IntPoly) {

	r.sanityCheck(p1, p2)

	if r.Modulus == nil {
		if &p1[0] != &p2[0] {
			for i := range p2 {
				p2[i].Set(&p1[i])
			}
		}
		return
	}

	for i := range p2 {
		p2[i].Mod(&p1[i], r.Modulus)
	}
}

// Add evaluates p3 = p1 + p2.
func (r IntRing) Add(p1, p2, p3 IntPoly) {
	r.sanityCheck(p1, p2, p3)
	for i := range p3 {
		p3[i].Add(&p1[i], &p2[i])
	}
	r.Reduce(p3, p3)
}

// Sub evaluates p3 = p1 - p2.
func (r IntRing) Sub(p1, p2, p3 IntPoly) {
	r.sanityCheck(p1, p2, p3)
	for i := range p3 {
		p3[i].Sub(&p1[i], &p2[i])
	}
	r.Reduce(p3, p3)
}

// Neg evaluates p2 = -p1.
func (r IntRing) Neg(p1, p2 IntPoly) {
	r.sanityCheck(p1, p2)
	for i := range p2 {
		p2[i].Neg(&p1[i])
	}
	r.Reduce(p2, p2)
}

// MulScalar evaluates p2 = p1 * scalar.
func (r IntRing) MulScalar(p1 IntPoly, scalar *big.Int, p2 IntPoly) {
	r.sanityCheck(p1, p2)
	for i := range p2 {
		p2[i].Mul(&p1[i], scalar)
	}
	r.Reduce(p2, p2)
}

// MulPolyNaive multiplies p1 by p2 with a naive negacyclic convolution
// and returns the result on p3. p3 cannot alias p1 or p2.
func (r IntRing) MulPolyNaive(p1, p2, p3 IntPoly) {

	r.sanityCheck(p1, p2, p3)

	N := r.N

	tmp := new(big.Int)

	for i := range p3 {
		p3[i].SetInt64(0)
	}

	for i := 0; i < N; i++ {

		// X^{i} * X^{j} = -X^{i+j-N} for i+j >= N
		for j := 0; j < N-i; j++ {
			p3[i+j].Add(&p3[i+j], tmp.Mul(&p1[i], &p2[j]))
		}

		for j := N - i; j < N; j++ {
			p3[i+j-N].Sub(&p3[i+j-N], tmp.Mul(&p1[i], &p2[j]))
		}
	}

	r.Reduce(p3, p3)
}

// MultByMonomial evaluates p2 = p1 * X^{k}, for any integer k.
func (r IntRing) MultByMonomial(p1 IntPoly, k int, p2 IntPoly) {

	r.sanityCheck(p1, p2)

	N := r.N

	k &= (N << 1) - 1

	buff := make(IntPoly, N)

	for i := 0; i < N; i++ {

		j := (i + k) & ((N << 1) - 1)

		if j < N {
			buff[j].Set(&p1[i])
		} else {
			buff[j-N].Neg(&p1[i])
		}
	}

	for i := range p2 {
		p2[i].Set(&buff[i])
	}

	r.Reduce(p2, p2)
}

// InverseScalar sets out to the multiplicative inverse of scalar for the
// ring modulus. An error wrapping [ErrNotInvertible] is returned when
// scalar has no inverse, in particular always over the integers unless
// scalar is a unit.
func (r IntRing) InverseScalar(scalar, out *big.Int) (err error) {

	if r.Modulus == nil {
		if scalar.CmpAbs(new(big.Int).SetUint64(1)) == 0 {
			out.Set(scalar)
			return
		}
		return fmt.Errorf("%w: %s is not a unit of Z", ErrNotInvertible, scalar.String())
	}

	if new(big.Int).ModInverse(scalar, r.Modulus) == nil {
		return fmt.Errorf("%w: gcd(%s, %s) != 1", ErrNotInvertible, scalar.String(), r.Modulus.String())
	}

	out.ModInverse(scalar, r.Modulus)

	return
}

// Equal checks if p1 = p2 in the given ring. The operands are compared
// after canonical reduction and are left unmodified.
func (r IntRing) Equal(p1, p2 IntPoly) bool {

	if len(p1) != len(p2) {
		return false
	}

	t1 := r.NewIntPoly()
	t2 := r.NewIntPoly()

	r.Reduce(p1, t1)
	r.Reduce(p2, t2)

	for i := range t1 {
		if t1[i].Cmp(&t2[i]) != 0 {
			return false
		}
	}

	return true
}

// ToRNSPoly decomposes p into the RNS basis of rns and writes the result
// on pOut. An error wrapping [ErrIncompatibleRings] is returned when the
// ring degrees do not match, and an error wrapping [ErrModulusMismatch]
// when the ring modulus is set and does not match the RNS modulus.
func (r IntRing) ToRNSPoly(rns RNSRing, p IntPoly, pOut RNSPoly) (err error) {

	if r.N != rns.N() {
		return fmt.Errorf("%w: ring degree %d != %d", ErrIncompatibleRings, r.N, rns.N())
	}

	if pOut.Level() != rns.Level() {
		return fmt.Errorf("%w: receiver has %d limbs but the RNS basis has %d", ErrModulusMismatch, pOut.Level()+1, rns.Level()+1)
	}

	if r.Modulus != nil && r.Modulus.Cmp(rns.Modulus()) != 0 {
		return fmt.Errorf("%w: ring modulus differs from the RNS modulus", ErrModulusMismatch)
	}

	rns.SetCoefficientsBigint(p, pOut)

	return
}

// FromRNSPoly reconstructs p from the RNS basis of rns and writes the
// result on pOut. An error wrapping [ErrIncompatibleRings] is returned
// when the ring degrees do not match, and an error wrapping
// [ErrModulusMismatch] when the ring modulus is set and does not match
// the RNS modulus.
func (r IntRing) FromRNSPoly(rns RNSRing, p RNSPoly, pOut IntPoly) (err error) {

	if r.N != rns.N() {
		return fmt.Errorf("%w: ring degree %d != %d", ErrIncompatibleRings, r.N, rns.N())
	}

	if p.Level() != rns.Level() {
		return fmt.Errorf("%w: operand has %d limbs but the RNS basis has %d", ErrModulusMismatch, p.Level()+1, rns.Level()+1)
	}

	if r.Modulus != nil && r.Modulus.Cmp(rns.Modulus()) != 0 {
		return fmt.Errorf("%w: ring modulus differs from the RNS modulus", ErrModulusMismatch)
	}

	for i := range pOut {
		pOut[i].SetInt64(0)
	}

	rns.PolyToBigint(p, 1, pOut)

	return
}

func (r IntRing) sanityCheck(polys ...IntPoly) {
	for i := range polys {
		if len(polys[i]) != r.N {
			panic(fmt.Errorf("%w: polynomial degree %d != ring degree %d", ErrLengthMismatch, len(polys[i]), r.N))
		}
	}
}
