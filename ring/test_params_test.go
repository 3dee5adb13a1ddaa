package ring

// Parameters regroups the ring degree and moduli chains used
// for the tests and the benchmarks.
type Parameters struct {
	logN int
	qi   []uint64
	pi   []uint64
}

var testParameters []Parameters

// Qi60 and Pi60 are NTT-friendly 60-bit primes for ring degrees up to 2^12.
var Qi60, Pi60 []uint64

func init() {

	g := NewNTTFriendlyPrimesGenerator(60, uint64(1)<<13)

	var err error
	if Qi60, err = g.NextAlternatingPrimes(8); err != nil {
		panic(err)
	}
	if Pi60, err = g.NextAlternatingPrimes(8); err != nil {
		panic(err)
	}

	for _, logN := range []int{9, 10} {

		NthRoot := uint64(2) << logN

		qg := NewNTTFriendlyPrimesGenerator(55, NthRoot)
		pg := NewNTTFriendlyPrimesGenerator(60, NthRoot)

		qi, err := qg.NextAlternatingPrimes(6)
		if err != nil {
			panic(err)
		}

		pi, err := pg.NextAlternatingPrimes(3)
		if err != nil {
			panic(err)
		}

		testParameters = append(testParameters, Parameters{logN: logN, qi: qi, pi: pi})
	}
}
