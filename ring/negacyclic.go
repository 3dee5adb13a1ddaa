package ring

// MulPolyNaive multiplies p1 by p2 with a naive negacyclic convolution and
// returns the result on p3. Since only modular reduction is required, the
// method works for any modulus, including moduli that do not support the NTT.
// Inputs are expected to be in the standard domain.
func (r Ring) MulPolyNaive(p1, p2, p3 Poly) {

	p1Copy := *p1.Clone()
	p2Copy := *p2.Clone()

	MFormVec(p1Copy, p1Copy, r.Modulus, r.BRedConstant)

	r.MulPolyNaiveMontgomery(p1Copy, p2Copy, p3)
}

// MulPolyNaiveMontgomery multiplies p1 by p2 with a naive negacyclic
// convolution and returns the result on p3.
// The coefficients of p1 are expected to be in the Montgomery domain.
func (r Ring) MulPolyNaiveMontgomery(p1, p2, p3 Poly) {

	N := r.N
	qi := r.Modulus
	MRedConstant := r.MRedConstant

	p3.Zero()

	for i := 0; i < N; i++ {

		// X^{i} * X^{j} = -X^{i+j-N} for i+j >= N
		for j := 0; j < i; j++ {
			p3[j] = CRed(p3[j]+(qi-MRed(p1[i], p2[N-i+j], qi, MRedConstant)), qi)
		}

		for j := i; j < N; j++ {
			p3[j] = CRed(p3[j]+MRed(p1[i], p2[j-i], qi, MRedConstant), qi)
		}
	}
}

// MulPolyNaive multiplies p1 by p2 with a naive negacyclic convolution and
// returns the result on p3. The method is the reference implementation
// against which the NTT-based multiplication is tested, and the fallback
// for moduli that do not support the NTT.
func (r RNSRing) MulPolyNaive(p1, p2, p3 RNSPoly) {
	for i, s := range r {
		s.MulPolyNaive(p1.At(i), p2.At(i), p3.At(i))
	}
}

// MulPolyNaiveMontgomery multiplies p1 by p2 with a naive negacyclic
// convolution and returns the result on p3.
// The coefficients of p1 are expected to be in the Montgomery domain.
func (r RNSRing) MulPolyNaiveMontgomery(p1, p2, p3 RNSPoly) {
	for i, s := range r {
		s.MulPolyNaiveMontgomery(p1.At(i), p2.At(i), p3.At(i))
	}
}
