package buffer

import (
	"encoding/binary"
	"fmt"
	"unsafe"
)

// ReadAsUint64 casts &T to an *uint64 and reads it from r.
// User must ensure that T can be stored in an uint64.
func ReadAsUint64[T any](r Reader, c *T) (n int64, err error) {
	/* #nosec G103 -- behavior and consequences well understood, pointer type cast */
	return ReadUint64(r, (*uint64)(unsafe.Pointer(c)))
}

// ReadAsUint32 casts &T to an *uint32 and reads it from r.
// User must ensure that T can be stored in an uint32.
func ReadAsUint32[T any](r Reader, c *T) (n int64, err error) {
	/* #nosec G103 -- behavior and consequences well understood, pointer type cast */
	return ReadUint32(r, (*uint32)(unsafe.Pointer(c)))
}

// ReadAsUint16 casts &T to an *uint16 and reads it from r.
// User must ensure that T can be stored in an uint16.
func ReadAsUint16[T any](r Reader, c *T) (n int64, err error) {
	/* #nosec G103 -- behavior and consequences well understood, pointer type cast */
	return ReadUint16(r, (*uint16)(unsafe.Pointer(c)))
}

// ReadAsUint8 casts &T to an *uint8 and reads it from r.
// User must ensure that T can be stored in an uint8.
func ReadAsUint8[T any](r Reader, c *T) (n int64, err error) {
	/* #nosec G103 -- behavior and consequences well understood, pointer type cast */
	return ReadUint8(r, (*uint8)(unsafe.Pointer(c)))
}

// ReadAsUint64Slice casts &[]T into *[]uint64 and reads it from r.
// User must ensure that T can be stored in an uint64.
func ReadAsUint64Slice[T any](r Reader, c []T) (n int64, err error) {
	/* #nosec G103 -- behavior and consequences well understood, pointer type cast */
	return ReadUint64Slice(r, *(*[]uint64)(unsafe.Pointer(&c)))
}

// ReadAsUint32Slice casts &[]T into *[]uint32 and reads it from r.
// User must ensure that T can be stored in an uint32.
func ReadAsUint32Slice[T any](r Reader, c []T) (n int64, err error) {
	/* #nosec G103 -- behavior and consequences well understood, pointer type cast */
	return ReadUint32Slice(r, *(*[]uint32)(unsafe.Pointer(&c)))
}

// ReadAsUint16Slice casts &[]T into *[]uint16 and reads it from r.
// User must ensure that T can be stored in an uint16.
func ReadAsUint16Slice[T any](r Reader, c []T) (n int64, err error) {
	/* #nosec G103 -- behavior and consequences well understood, pointer type cast */
	return ReadUint16Slice(r, *(*[]uint16)(unsafe.Pointer(&c)))
}

// ReadAsUint8Slice casts &[]T into *[]uint8 and reads it from r.
// User must ensure that T can be stored in an uint8.
func ReadAsUint8Slice[T any](r Reader, c []T) (n int64, err error) {
	/* #nosec G103 -- behavior and consequences well understood, pointer type cast */
	return ReadUint8Slice(r, *(*[]uint8)(unsafe.Pointer(&c)))
}

// EqualAsUint64Slice casts two []T into []uint64 and compares them.
// User must ensure that T can be stored in an uint64.
func EqualAsUint64Slice[T any](a, b []T) bool {
	/* #nosec G103 -- behavior and consequences well understood, pointer type cast */
	return equalSlice(*(*[]uint64)(unsafe.Pointer(&a)), *(*[]uint64)(unsafe.Pointer(&b)))
}

// EqualAsUint32Slice casts two []T into []uint32 and compares them.
// User must ensure that T can be stored in an uint32.
func EqualAsUint32Slice[T any](a, b []T) bool {
	/* #nosec G103 -- behavior and consequences well understood, pointer type cast */
	return equalSlice(*(*[]uint32)(unsafe.Pointer(&a)), *(*[]uint32)(unsafe.Pointer(&b)))
}

// EqualAsUint16Slice casts two []T into []uint16 and compares them.
// User must ensure that T can be stored in an uint16.
func EqualAsUint16Slice[T any](a, b []T) bool {
	/* #nosec G103 -- behavior and consequences well understood, pointer type cast */
	return equalSlice(*(*[]uint16)(unsafe.Pointer(&a)), *(*[]uint16)(unsafe.Pointer(&b)))
}

// EqualAsUint8Slice casts two []T into []uint8 and compares them.
// User must ensure that T can be stored in an uint8.
func EqualAsUint8Slice[T any](a, b []T) bool {
	/* #nosec G103 -- behavior and consequences well understood, pointer type cast */
	return equalSlice(*(*[]uint8)(unsafe.Pointer(&a)), *(*[]uint8)(unsafe.Pointer(&b)))
}

func equalSlice[T comparable](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Read reads len(c) bytes from r into c.
func Read(r Reader, c []byte) (n int64, err error) {
	nint, err := r.Read(c)
	return int64(nint), err
}

// ReadUint8 reads a byte from r into c.
func ReadUint8(r Reader, c *uint8) (n int64, err error) {

	if c == nil {
		return 0, fmt.Errorf("cannot ReadUint8: c is nil")
	}

	var bb = [1]byte{}

	var nint int
	if nint, err = r.Read(bb[:]); err != nil {
		return int64(nint), err
	}

	*c = bb[0]

	return int64(nint), nil
}

// ReadUint8Slice reads a slice of bytes from r into c.
func ReadUint8Slice(r Reader, c []uint8) (n int64, err error) {
	nint, err := r.Read(c)
	return int64(nint), err
}

// ReadUint16 reads a uint16 from r into c.
func ReadUint16(r Reader, c *uint16) (n int64, err error) {

	if c == nil {
		return 0, fmt.Errorf("cannot ReadUint16: c is nil")
	}

	var bb = [2]byte{}

	var nint int
	if nint, err = r.Read(bb[:]); err != nil {
		return int64(nint), err
	}

	*c = binary.LittleEndian.Uint16(bb[:])

	return int64(nint), nil
}

// ReadUint16Slice reads a slice of uint16 from r into c.
func ReadUint16Slice(r Reader, c []uint16) (n int64, err error) {

	// c is empty, return
	if len(c) == 0 {
		return
	}

	var slice []byte

	// Avoid EOF
	size := r.Size()
	if len(c)<<1 < size {
		size = len(c) << 1
	}

	if slice, err = r.Peek(size); err != nil {
		return
	}

	buffered := len(slice) >> 1

	// If the slice to write on is equal or smaller than the amount peeked
	if N := len(c); N <= buffered {

		for i, j := 0, 0; i < N; i, j = i+1, j+2 {
			c[i] = binary.LittleEndian.Uint16(slice[j:])
		}

		nint, err := r.Discard(N << 1) // Discards what was read
		return int64(nint), err
	}

	// Decodes the maximum
	for i, j := 0, 0; i < buffered; i, j = i+1, j+2 {
		c[i] = binary.LittleEndian.Uint16(slice[j:])
	}

	// Discard what was peeked
	var inc int
	if inc, err = r.Discard(len(slice)); err != nil {
		return n + int64(inc), err
	}

	n += int64(inc)

	// Recurses on the remaining slice to fill
	var inc64 int64
	if inc64, err = ReadUint16Slice(r, c[buffered:]); err != nil {
		return n + inc64, err
	}

	return n + inc64, nil
}

// ReadUint32 reads a uint32 from r into c.
func ReadUint32(r Reader, c *uint32) (n int64, err error) {

	if c == nil {
		return 0, fmt.Errorf("cannot ReadUint32: c is nil")
	}

	var bb = [4]byte{}

	var nint int
	if nint, err = r.Read(bb[:]); err != nil {
		return int64(nint), err
	}

	*c = binary.LittleEndian.Uint32(bb[:])

	return int64(nint), nil
}

// ReadUint32Slice reads a slice of uint32 from r into c.
func ReadUint32Slice(r Reader, c []uint32) (n int64, err error) {

	// c is empty, return
	if len(c) == 0 {
		return
	}

	var slice []byte

	// Avoid EOF
	size := r.Size()
	if len(c)<<2 < size {
		size = len(c) << 2
	}

	if slice, err = r.Peek(size); err != nil {
		return
	}

	buffered := len(slice) >> 2

	// If the slice to write on is equal or smaller than the amount peeked
	if N := len(c); N <= buffered {

		for i, j := 0, 0; i < N; i, j = i+1, j+4 {
			c[i] = binary.LittleEndian.Uint32(slice[j:])
		}

		nint, err := r.Discard(N << 2) // Discards what was read
		return int64(nint), err
	}

	// Decodes the maximum
	for i, j := 0, 0; i < buffered; i, j = i+1, j+4 {
		c[i] = binary.LittleEndian.Uint32(slice[j:])
	}

	// Discard what was peeked
	var inc int
	if inc, err = r.Discard(len(slice)); err != nil {
		return n + int64(inc), err
	}

	n += int64(inc)

	// Recurses on the remaining slice to fill
	var inc64 int64
	if inc64, err = ReadUint32Slice(r, c[buffered:]); err != nil {
		return n + inc64, err
	}

	return n + inc64, nil
}

// ReadUint64 reads a uint64 from r into c.
func ReadUint64(r Reader, c *uint64) (n int64, err error) {

	if c == nil {
		return 0, fmt.Errorf("cannot ReadUint64: c is nil")
	}

	var bb = [8]byte{}

	var nint int
	if nint, err = r.Read(bb[:]); err != nil {
		return int64(nint), err
	}

	*c = binary.LittleEndian.Uint64(bb[:])

	return int64(nint), nil
}

// ReadUint64Slice reads a slice of uint64 from r into c.
func ReadUint64Slice(r Reader, c []uint64) (n int64, err error) {

	// c is empty, return
	if len(c) == 0 {
		return
	}

	var slice []byte

	// Avoid EOF
	size := r.Size()
	if len(c)<<3 < size {
		size = len(c) << 3
	}

	if slice, err = r.Peek(size); err != nil {
		return
	}

	buffered := len(slice) >> 3

	// If the slice to write on is equal or smaller than the amount peeked
	if N := len(c); N <= buffered {

		for i, j := 0, 0; i < N; i, j = i+1, j+8 {
			c[i] = binary.LittleEndian.Uint64(slice[j:])
		}

		nint, err := r.Discard(N << 3) // Discards what was read
		return int64(nint), err
	}

	// Decodes the maximum
	for i, j := 0, 0; i < buffered; i, j = i+1, j+8 {
		c[i] = binary.LittleEndian.Uint64(slice[j:])
	}

	// Discard what was peeked
	var inc int
	if inc, err = r.Discard(len(slice)); err != nil {
		return n + int64(inc), err
	}

	n += int64(inc)

	// Recurses on the remaining slice to fill
	var inc64 int64
	if inc64, err = ReadUint64Slice(r, c[buffered:]); err != nil {
		return n + inc64, err
	}

	return n + inc64, nil
}
