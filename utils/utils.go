// Package utils implements various helper functions.
package utils

import (
	"math/bits"
	"reflect"
)

// BitReverse64 returns the bit-reverse value of the input value, within a context of 2^bitLen.
func BitReverse64[T1, T2 uint64 | int64 | uint | int | uint32 | int32](index T1, bitLen T2) uint64 {
	return bits.Reverse64(uint64(index)) >> (64 - uint64(bitLen))
}

// HammingWeight64 returns the Hamming weight of the input value.
func HammingWeight64(x uint64) uint64 {
	x -= (x >> 1) & 0x5555555555555555
	x = (x & 0x3333333333333333) + ((x >> 2) & 0x3333333333333333)
	x = (x + (x >> 4)) & 0x0f0f0f0f0f0f0f0f
	return ((x * 0x0101010101010101) & 0xffffffffffffffff) >> 56
}

// AllDistinct returns true if all elements in s are distinct, and false otherwise.
func AllDistinct[V comparable](s []V) bool {
	m := make(map[V]struct{}, len(s))
	for _, si := range s {
		if _, exists := m[si]; exists {
			return false
		}
		m[si] = struct{}{}
	}
	return true
}

// GCD computes the greatest common divisor between a and b.
func GCD(a, b int) int {
	if a == 0 || b == 0 {
		return 0
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// IsNil returns true either if the value of x is nil or if x is
// a non-nil interface wrapping a nil pointer.
func IsNil(x any) bool {
	if x == nil {
		return true
	}
	switch reflect.TypeOf(x).Kind() {
	case reflect.Ptr, reflect.Map, reflect.Chan, reflect.Slice, reflect.Func, reflect.Interface:
		return reflect.ValueOf(x).IsNil()
	default:
		return false
	}
}
