package ring

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInterpolation(t *testing.T) {

	T := uint64(65537)

	itp, err := NewInterpolator(8, T)
	require.NoError(t, err)

	t.Run("Interpolate", func(t *testing.T) {

		// (X - 2) * (X - 3) = X^2 - 5X + 6
		coeffs := itp.Interpolate([]uint64{2, 3})

		require.Equal(t, Poly{6, T - 5, 1}, coeffs)
	})

	t.Run("Lagrange", func(t *testing.T) {

		// P(X) = X^2 through (1, 1), (2, 4), (3, 9)
		coeffs, err := itp.Lagrange([]uint64{1, 2, 3}, []uint64{1, 4, 9})
		require.NoError(t, err)

		require.Equal(t, []uint64{0, 0, 1}, coeffs)
	})

	t.Run("NonNTTFriendly", func(t *testing.T) {
		_, err := NewInterpolator(8, 13) // 13 != 1 mod 32
		require.ErrorIs(t, err, ErrNoPrimitiveRoot)
	})
}
