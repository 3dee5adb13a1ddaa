package ring

import (
	"fmt"
	"math/big"
	"math/bits"
)

// IsPrime applies the Baillie-PSW, i.e. 64 Miller-Rabin tests with
// base 2 and one Lucas test, to the input. The input is prime with
// overwhelming probability if the test returns true.
func IsPrime(x uint64) bool {
	return new(big.Int).SetUint64(x).ProbablyPrime(0)
}

// NTTFriendlyPrimesGenerator is a struct used to generate NTT-friendly
// primes, i.e. primes that are congruent to 1 mod NthRoot, with
// NthRoot a power of two. Primes are sampled around 2^BitSize, either
// above (upstream), below (downstream) or alternating between the
// closest candidates on both sides.
type NTTFriendlyPrimesGenerator struct {
	BitSize, NthRoot     uint64
	NextPrime, PrevPrime uint64
	// A cursor is disabled once its candidates leave the
	// bit-size window (2^(BitSize-1), 2^(BitSize+1)).
	CheckNextPrime, CheckPrevPrime bool
}

// NewNTTFriendlyPrimesGenerator instantiates a new [NTTFriendlyPrimesGenerator].
// The generator enumerates the primes of the form 2^BitSize + 1 + k*NthRoot
// for increasing and decreasing k.
func NewNTTFriendlyPrimesGenerator(BitSize, NthRoot uint64) NTTFriendlyPrimesGenerator {

	// 2^BitSize = 0 mod NthRoot, hence 2^BitSize+1 is the central candidate
	center := uint64(1)<<BitSize + 1

	return NTTFriendlyPrimesGenerator{
		BitSize:        BitSize,
		NthRoot:        NthRoot,
		NextPrime:      center,
		PrevPrime:      center,
		CheckNextPrime: true,
		CheckPrevPrime: true,
	}
}

// NextUpstreamPrime returns the next prime of the form 2^BitSize + 1 + k*NthRoot
// above the current upstream cursor.
func (n *NTTFriendlyPrimesGenerator) NextUpstreamPrime() (uint64, error) {
	for {

		if !n.CheckNextPrime {
			return 0, fmt.Errorf("cannot NextUpstreamPrime: the list of primes above 2^%d congruent to 1 mod %d is exhausted", n.BitSize, n.NthRoot)
		}

		n.NextPrime += n.NthRoot

		if bits.Len64(n.NextPrime) > int(n.BitSize)+1 {
			n.CheckNextPrime = false
			continue
		}

		if IsPrime(n.NextPrime) {
			return n.NextPrime, nil
		}
	}
}

// NextDownstreamPrime returns the next prime of the form 2^BitSize + 1 - k*NthRoot
// below the current downstream cursor.
func (n *NTTFriendlyPrimesGenerator) NextDownstreamPrime() (uint64, error) {
	for {

		if !n.CheckPrevPrime {
			return 0, fmt.Errorf("cannot NextDownstreamPrime: the list of primes below 2^%d congruent to 1 mod %d is exhausted", n.BitSize, n.NthRoot)
		}

		if n.PrevPrime < n.NthRoot+1 {
			n.CheckPrevPrime = false
			continue
		}

		n.PrevPrime -= n.NthRoot

		if bits.Len64(n.PrevPrime) < int(n.BitSize) {
			n.CheckPrevPrime = false
			continue
		}

		if IsPrime(n.PrevPrime) {
			return n.PrevPrime, nil
		}
	}
}

// NextAlternatingPrime returns the next prime of the form 2^BitSize + 1 +/- k*NthRoot,
// alternating between the upstream and downstream cursors, whichever is the
// closest to 2^BitSize.
func (n *NTTFriendlyPrimesGenerator) NextAlternatingPrime() (uint64, error) {

	center := uint64(1)<<n.BitSize + 1

	switch {
	case n.CheckNextPrime && n.CheckPrevPrime:
		if n.NextPrime-center <= center-n.PrevPrime {
			return n.NextUpstreamPrime()
		}
		return n.NextDownstreamPrime()
	case n.CheckNextPrime:
		return n.NextUpstreamPrime()
	case n.CheckPrevPrime:
		return n.NextDownstreamPrime()
	default:
		return 0, fmt.Errorf("cannot NextAlternatingPrime: the list of primes around 2^%d congruent to 1 mod %d is exhausted", n.BitSize, n.NthRoot)
	}
}

// NextUpstreamPrimes returns the next k primes of the form 2^BitSize + 1 + k*NthRoot
// above the current upstream cursor, in increasing order.
func (n *NTTFriendlyPrimesGenerator) NextUpstreamPrimes(k int) (primes []uint64, err error) {
	primes = make([]uint64, k)
	for i := range primes {
		if primes[i], err = n.NextUpstreamPrime(); err != nil {
			return primes, err
		}
	}
	return
}

// NextDownstreamPrimes returns the next k primes of the form 2^BitSize + 1 - k*NthRoot
// below the current downstream cursor, in decreasing order.
func (n *NTTFriendlyPrimesGenerator) NextDownstreamPrimes(k int) (primes []uint64, err error) {
	primes = make([]uint64, k)
	for i := range primes {
		if primes[i], err = n.NextDownstreamPrime(); err != nil {
			return primes, err
		}
	}
	return
}

// NextAlternatingPrimes returns the next k primes of the form 2^BitSize + 1 +/- k*NthRoot,
// alternating between the upstream and downstream cursors.
func (n *NTTFriendlyPrimesGenerator) NextAlternatingPrimes(k int) (primes []uint64, err error) {
	primes = make([]uint64, k)
	for i := range primes {
		if primes[i], err = n.NextAlternatingPrime(); err != nil {
			return primes, err
		}
	}
	return
}
