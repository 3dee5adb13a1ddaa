package utils

// Pointy returns a pointer to a copy of the input variable.
func Pointy[T any](x T) *T {
	return &x
}
