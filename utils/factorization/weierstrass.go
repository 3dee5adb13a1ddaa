package factorization

import (
	"math/big"

	"github.com/zugzwang/rlwe/utils/sampling"
)

// Weierstrass is an elliptic curve y^2 = x^3 + ax + b mod N.
type Weierstrass struct {
	A, B, N *big.Int
}

// Point represents an elliptic curve point in standard coordinates.
// The point (0, 1) is used as the point at infinity.
type Point struct {
	X, Y *big.Int
}

// infinity returns the point at infinity.
func infinity() Point {
	return Point{X: new(big.Int), Y: new(big.Int).SetUint64(1)}
}

// isInfinity returns true if P is the point at infinity.
func (p Point) isInfinity() bool {
	return p.X.Sign() == 0 && p.Y.Cmp(oneBig) == 0
}

var oneBig = new(big.Int).SetUint64(1)

// Add adds two points with respect to the underlying curve. The
// arithmetic is carried modulo the composite N, so the slope
// denominator might not be invertible; in that case Add returns
// gcd(denominator, N), which is a non-trivial factor of N whenever
// it differs from N. This failure case is what the ECM factorization
// exploits.
// This method does not check if the points lie on the curve.
func (w *Weierstrass) Add(P, Q Point) (R Point, factor *big.Int) {

	N := w.N

	if P.isInfinity() {
		return Point{new(big.Int).Set(Q.X), new(big.Int).Set(Q.Y)}, nil
	}

	if Q.isInfinity() {
		return Point{new(big.Int).Set(P.X), new(big.Int).Set(P.Y)}, nil
	}

	xP, yP := P.X, P.Y
	xQ, yQ := Q.X, Q.Y

	tmp := new(big.Int)

	// P = -Q
	if xP.Cmp(xQ) == 0 && yP.Cmp(tmp.Sub(N, yQ)) == 0 {
		return infinity(), nil
	}

	den := new(big.Int) // slope denominator
	S := new(big.Int)   // slope numerator

	if xP.Cmp(xQ) != 0 {
		// S = (yQ-yP)/(xQ-xP)
		S.Sub(yQ, yP)
		den.Sub(xQ, xP)
	} else {
		// S = (3*(xP^2) + a)/(2*yP)
		S.Mul(xP, xP)
		S.Mod(S, N)
		S.Mul(S, threeBig)
		S.Add(S, w.A)
		den.Add(yP, yP)
	}

	den.Mod(den, N)

	if tmp.GCD(nil, nil, den, N).Cmp(oneBig) != 0 {
		return infinity(), tmp
	}

	den.ModInverse(den, N)
	S.Mul(S, den)
	S.Mod(S, N)

	xR, yR := new(big.Int), new(big.Int)

	// s^2 - xP - xQ
	xR.Mul(S, S)
	xR.Mod(xR, N)
	xR.Sub(xR, xP)
	xR.Sub(xR, xQ)
	xR.Mod(xR, N)

	// s*(xP-xR)-yP
	yR.Sub(xP, xR)
	yR.Mul(yR, S)
	yR.Mod(yR, N)
	yR.Sub(yR, yP)
	yR.Mod(yR, N)

	return Point{X: xR, Y: yR}, nil
}

var threeBig = new(big.Int).SetUint64(3)

// ScalarMul computes k*P with a double-and-add chain, propagating the
// non-invertible denominator factor of Add when one is hit.
func (w *Weierstrass) ScalarMul(P Point, k uint64) (R Point, factor *big.Int) {

	R = infinity()

	for ; k > 0; k >>= 1 {

		if k&1 == 1 {
			if R, factor = w.Add(R, P); factor != nil {
				return
			}
		}

		if P, factor = w.Add(P, P); factor != nil {
			return
		}
	}

	return
}

// NewRandomWeierstrassCurve generates a new random Weierstrass curve modulo N,
// along with a random point that lies on the curve.
func NewRandomWeierstrassCurve(N *big.Int) (Weierstrass, Point) {

	var A, B, xG, yG *big.Int
	for {

		// Select random values for A, xG and yG
		A = sampling.RandInt(N)
		xG = sampling.RandInt(N)
		yG = sampling.RandInt(N)

		// Deduces B from Y^2 = X^3 + A * X + B evaluated at point (xG, yG)
		yGpow2 := new(big.Int).Mul(yG, yG)
		yGpow2.Mod(yGpow2, N)

		xGpow3 := new(big.Int).Mul(xG, xG)
		xGpow3.Mod(xGpow3, N)
		xGpow3.Add(xGpow3, A)
		xGpow3.Mul(xGpow3, xG)
		xGpow3.Mod(xGpow3, N)

		B = new(big.Int).Sub(yGpow2, xGpow3) // B = yG^2 - xG*(xG^2 + A)
		B.Mod(B, N)

		// Checks that 4A^3 + 27B^2 != 0 and is invertible mod N
		fourACube := new(big.Int).Mul(A, A)
		fourACube.Mod(fourACube, N)
		fourACube.Mul(fourACube, A)
		fourACube.Mod(fourACube, N)
		fourACube.Mul(fourACube, new(big.Int).SetUint64(4))

		twentySevenBSquare := new(big.Int).Mul(B, B)
		twentySevenBSquare.Mod(twentySevenBSquare, N)
		twentySevenBSquare.Mul(twentySevenBSquare, new(big.Int).SetUint64(27))
		twentySevenBSquare.Mod(twentySevenBSquare, N)

		discriminant := new(big.Int).Add(fourACube, twentySevenBSquare)
		discriminant.Mod(discriminant, N)

		if discriminant.Sign() != 0 && new(big.Int).GCD(nil, nil, N, discriminant).Cmp(oneBig) == 0 {
			return Weierstrass{
				A: A,
				B: B,
				N: N,
			}, Point{X: xG, Y: yG}
		}
	}
}
