package bignum

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

const prec = uint(128)

func toFloat64(x *big.Float) float64 {
	f, _ := x.Float64()
	return f
}

func TestFloat(t *testing.T) {

	t.Run("Pi", func(t *testing.T) {
		require.InDelta(t, math.Pi, toFloat64(Pi(prec)), 1e-15)
	})

	t.Run("Log2", func(t *testing.T) {
		require.InDelta(t, math.Ln2, toFloat64(Log2(prec)), 1e-15)
	})

	t.Run("Exp", func(t *testing.T) {
		require.InDelta(t, math.E, toFloat64(Exp(NewFloat(1.0, prec))), 1e-12)
	})

	t.Run("Log", func(t *testing.T) {
		x := NewFloat(2.5, prec)
		require.InDelta(t, 2.5, toFloat64(Exp(Log(x))), 1e-12)
	})

	t.Run("Pow", func(t *testing.T) {
		require.InDelta(t, 1024.0, toFloat64(Pow(NewFloat(2.0, prec), NewFloat(10.0, prec))), 1e-9)
	})

	t.Run("Cos", func(t *testing.T) {
		require.InDelta(t, 1.0, toFloat64(Cos(NewFloat(0.0, prec))), 1e-12)

		third := new(big.Float).Quo(Pi(prec), NewFloat(3.0, prec))
		require.InDelta(t, 0.5, toFloat64(Cos(third)), 1e-12)
	})

	t.Run("Sin", func(t *testing.T) {
		half := new(big.Float).Quo(Pi(prec), NewFloat(2.0, prec))
		require.InDelta(t, 1.0, toFloat64(Sin(half)), 1e-12)
	})

	t.Run("TanH", func(t *testing.T) {
		require.InDelta(t, math.Tanh(0.75), toFloat64(TanH(NewFloat(0.75, prec))), 1e-12)
	})

	t.Run("SinH", func(t *testing.T) {
		require.InDelta(t, math.Sinh(0.75), toFloat64(SinH(NewFloat(0.75, prec))), 1e-12)
	})

	t.Run("Round", func(t *testing.T) {
		require.Equal(t, 3.0, toFloat64(Round(NewFloat(2.5, prec))))
		require.Equal(t, -3.0, toFloat64(Round(NewFloat(-2.5, prec))))
	})

	t.Run("Sign", func(t *testing.T) {
		require.Equal(t, -1.0, toFloat64(Sign(NewFloat(-0.5, prec))))
		require.Equal(t, 0.0, toFloat64(Sign(NewFloat(0.0, prec))))
		require.Equal(t, 1.0, toFloat64(Sign(NewFloat(0.5, prec))))
	})
}
