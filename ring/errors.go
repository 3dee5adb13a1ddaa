package ring

import "errors"

// Sentinel errors returned by the ring constructors and operations.
// Errors returned by this package wrap one of these sentinels, so
// callers can discriminate with [errors.Is].
var (
	// ErrInvalidModulus is returned when a modulus does not satisfy the
	// requirements of the ring being instantiated (zero, one, composite
	// where a prime is required, or too large for the reduction constants).
	ErrInvalidModulus = errors.New("invalid modulus")

	// ErrNoPrimitiveRoot is returned when the modulus admits no primitive
	// 2N-th root of unity, i.e. the modulus is not congruent to 1 mod 2N.
	ErrNoPrimitiveRoot = errors.New("no primitive root")

	// ErrLengthMismatch is returned when the coefficient slices of two
	// operands have different lengths.
	ErrLengthMismatch = errors.New("length mismatch")

	// ErrIndexOutOfRange is returned when a coefficient or limb index
	// falls outside of the valid range.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrNotInvertible is returned when an element has no multiplicative
	// inverse for the given modulus.
	ErrNotInvertible = errors.New("element is not invertible")

	// ErrIncompatibleRings is returned when an operation mixes operands
	// attached to rings with different degrees or moduli.
	ErrIncompatibleRings = errors.New("incompatible rings")

	// ErrModulusMismatch is returned when an RNS operation receives
	// operands whose moduli chains disagree.
	ErrModulusMismatch = errors.New("modulus mismatch")
)
