package ring

import (
	"github.com/zugzwang/rlwe/utils/concurrency"
)

// ForEachLimb applies f on each limb of the ring, distributing the calls
// over at most workers goroutines and returning the first error, if any.
// With workers < 2 the calls are sequential. The ring tables are read-only,
// so the same ring can back any number of concurrent calls.
func (r RNSRing) ForEachLimb(workers int, f func(i int, s *Ring) error) (err error) {

	if workers < 2 {
		for i := range r {
			if err = f(i, r[i]); err != nil {
				return
			}
		}
		return
	}

	m := concurrency.NewRessourceManager(make([]struct{}, workers))

	for i := range r {
		m.Run(func(struct{}) error {
			return f(i, r[i])
		})
	}

	return m.Wait()
}
