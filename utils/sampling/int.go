package sampling

import (
	"crypto/rand"
	"math/big"
)

// RandInt samples a uniform big.Int in [0, max-1] from crypto/rand.
func RandInt(max *big.Int) (n *big.Int) {
	var err error
	if n, err = rand.Int(rand.Reader, max); err != nil {
		// Sanity check, this error should not happen.
		panic(err)
	}
	return
}
