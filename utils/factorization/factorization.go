// Package factorization implements integer factorization with Pollard's rho
// algorithm and Lenstra's elliptic curve method.
package factorization

import (
	"math/big"
	"sort"
)

// ecmB1 is the stage-1 smoothness bound of the elliptic curve method.
const ecmB1 = 1 << 12

// ecmThresholdBits is the size in bits above which a composite is handed
// to the elliptic curve method instead of Pollard's rho.
const ecmThresholdBits = 48

var smallPrimes = []uint64{
	2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47, 53, 59, 61,
	67, 71, 73, 79, 83, 89, 97, 101, 103, 107, 109, 113, 127, 131, 137,
	139, 149, 151, 157, 163, 167, 173, 179, 181, 191, 193, 197, 199,
}

// GetFactors returns the list of distinct prime factors of m, in
// increasing order. The multiplicities are not returned.
func GetFactors(m *big.Int) (factors []*big.Int) {

	n := new(big.Int).Abs(m)

	if n.Cmp(oneBig) <= 0 {
		return nil
	}

	distinct := map[string]*big.Int{}

	tmp := new(big.Int)
	for _, p := range smallPrimes {
		pBig := new(big.Int).SetUint64(p)
		if tmp.Mod(n, pBig).Sign() == 0 {
			distinct[pBig.String()] = pBig
			for tmp.Mod(n, pBig).Sign() == 0 {
				n.Quo(n, pBig)
			}
		}
	}

	composites := []*big.Int{}
	if n.Cmp(oneBig) > 0 {
		composites = append(composites, n)
	}

	for len(composites) > 0 {

		c := composites[len(composites)-1]
		composites = composites[:len(composites)-1]

		if c.ProbablyPrime(0) {
			distinct[c.String()] = c
			continue
		}

		var f *big.Int
		if c.BitLen() > ecmThresholdBits {
			f = GetFactorECM(c)
		} else {
			f = GetFactorPollardRho(c)
		}

		composites = append(composites, f, new(big.Int).Quo(c, f))
	}

	factors = make([]*big.Int, 0, len(distinct))
	for _, f := range distinct {
		factors = append(factors, f)
	}

	sort.Slice(factors, func(i, j int) bool {
		return factors[i].Cmp(factors[j]) < 0
	})

	return
}

// GetFactorPollardRho returns a non-trivial factor of the composite n
// using Pollard's rho algorithm with Floyd's cycle detection.
func GetFactorPollardRho(n *big.Int) (factor *big.Int) {

	two := new(big.Int).SetUint64(2)

	if new(big.Int).Mod(n, two).Sign() == 0 {
		return two
	}

	g := func(x, c, n *big.Int) *big.Int {
		y := new(big.Int).Mul(x, x)
		y.Add(y, c)
		y.Mod(y, n)
		return y
	}

	for c := uint64(1); ; c++ {

		cBig := new(big.Int).SetUint64(c)
		x := new(big.Int).SetUint64(2)
		y := new(big.Int).SetUint64(2)
		d := new(big.Int).SetUint64(1)
		diff := new(big.Int)

		for d.Cmp(oneBig) == 0 {
			x = g(x, cBig, n)
			y = g(g(y, cBig, n), cBig, n)
			diff.Sub(x, y)
			diff.Abs(diff)
			d.GCD(nil, nil, diff, n)
		}

		if d.Cmp(n) != 0 {
			return d
		}
	}
}

// GetFactorECM returns a non-trivial factor of the composite n using
// stage 1 of Lenstra's elliptic curve method: multiplies a random point
// of a random curve by every prime power below the smoothness bound and
// waits for the group law to hit a non-invertible denominator.
func GetFactorECM(n *big.Int) (factor *big.Int) {

	for {

		w, p := NewRandomWeierstrassCurve(n)

		for _, q := range sievePrimes(ecmB1) {

			// Largest power of q below the bound
			k := q
			for k <= ecmB1/q {
				k *= q
			}

			if p, factor = w.ScalarMul(p, k); factor != nil {
				if factor.Cmp(n) != 0 {
					return factor
				}
				// gcd = n, the whole group order was hit: new curve
				break
			}
		}
	}
}

func sievePrimes(bound uint64) (primes []uint64) {
	composite := make([]bool, bound+1)
	for i := uint64(2); i <= bound; i++ {
		if !composite[i] {
			primes = append(primes, i)
			for j := i * i; j <= bound; j += i {
				composite[j] = true
			}
		}
	}
	return
}
