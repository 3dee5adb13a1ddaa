package structs

import (
	"bufio"
	"fmt"
	"io"

	"golang.org/x/exp/constraints"

	"github.com/zugzwang/rlwe/utils"
	"github.com/zugzwang/rlwe/utils/buffer"
)

// Map is a struct wrapping a map with integer keys and components of type T.
// See [Vector] for the accepted component types.
type Map[K constraints.Integer, T any] map[K]*T

// Clone returns a deep copy of the object.
// This method requires that T implements Cloner.
func (m Map[K, T]) Clone() (mcpy Map[K, T]) {

	var t T
	if _, isClonable := any(&t).(Cloner[T]); !isClonable {
		panic(fmt.Errorf("map component of type %T does not comply to %T", t, new(Cloner[T])))
	}

	mcpy = make(Map[K, T], len(m))
	for key := range m {
		mcpy[key] = any(m[key]).(Cloner[T]).Clone()
	}

	return
}

// BinarySize returns the serialized size of the object in bytes.
// This method requires that T implements BinarySizer.
func (m Map[K, T]) BinarySize() (size int) {

	var t T
	if _, isSizable := any(t).(BinarySizer); !isSizable {
		panic(fmt.Errorf("map component of type %T does not comply to %T", t, new(BinarySizer)))
	}

	size += 8
	for key := range m {
		size += 8 + any(m[key]).(BinarySizer).BinarySize()
	}

	return
}

// WriteTo writes the object on an io.Writer. It implements the io.WriterTo
// interface, and will write exactly object.BinarySize() bytes on w.
// Entries are written in the increasing order of their keys.
//
// This method requires that T implements io.WriterTo.
//
// Unless w implements the buffer.Writer interface (see utils/buffer/writer.go),
// it will be wrapped into a bufio.Writer. Since this requires allocations, it
// is preferable to pass a buffer.Writer directly:
//
//   - When writing multiple times to a io.Writer, it is preferable to first wrap the
//     io.Writer in a pre-allocated bufio.Writer.
//   - When writing to a pre-allocated var b []byte, it is preferable to pass
//     buffer.NewBuffer(b) as w (see utils/buffer/buffer.go).
func (m Map[K, T]) WriteTo(w io.Writer) (n int64, err error) {

	switch w := w.(type) {
	case buffer.Writer:

		var inc int64
		if inc, err = buffer.WriteAsUint64[int](w, len(m)); err != nil {
			return inc, fmt.Errorf("buffer.WriteAsUint64[int]: %w", err)
		}

		n += inc

		if _, isWritable := any(new(T)).(io.WriterTo); !isWritable {
			var t T
			return n, fmt.Errorf("map component of type %T does not comply to %T", t, new(io.WriterTo))
		}

		for _, key := range utils.GetSortedKeys(m) {

			if inc, err = buffer.WriteAsUint64[K](w, key); err != nil {
				return n + inc, fmt.Errorf("buffer.WriteAsUint64[%T]: %w", key, err)
			}

			n += inc

			if inc, err = any(m[key]).(io.WriterTo).WriteTo(w); err != nil {
				var t T
				return n + inc, fmt.Errorf("%T.WriteTo: %w", t, err)
			}

			n += inc
		}

		return n, w.Flush()

	default:
		return m.WriteTo(bufio.NewWriter(w))
	}
}

// ReadFrom reads on the object from an io.Writer. It implements the
// io.ReaderFrom interface.
//
// This method requires that T implements io.ReaderFrom.
//
// Unless r implements the buffer.Reader interface (see utils/buffer/reader.go),
// it will be wrapped into a bufio.Reader. Since this requires allocation, it
// is preferable to pass a buffer.Reader directly:
//
//   - When reading multiple values from a io.Reader, it is preferable to first
//     first wrap io.Reader in a pre-allocated bufio.Reader.
//   - When reading from a var b []byte, it is preferable to pass a buffer.NewBuffer(b)
//     as w (see utils/buffer/buffer.go).
func (m *Map[K, T]) ReadFrom(r io.Reader) (n int64, err error) {

	switch r := r.(type) {
	case buffer.Reader:

		var inc int64

		var size int

		if inc, err = buffer.ReadAsUint64[int](r, &size); err != nil {
			return inc, fmt.Errorf("buffer.ReadAsUint64[int]: %w", err)
		}

		n += inc

		if *m == nil {
			*m = make(Map[K, T], size)
		}

		if _, isReadable := any(new(T)).(io.ReaderFrom); !isReadable {
			var t T
			return n, fmt.Errorf("map component of type %T does not comply to %T", t, new(io.ReaderFrom))
		}

		for i := 0; i < size; i++ {

			var key K
			if inc, err = buffer.ReadAsUint64[K](r, &key); err != nil {
				return n + inc, fmt.Errorf("buffer.ReadAsUint64[%T]: %w", key, err)
			}

			n += inc

			entry := new(T)

			if inc, err = any(entry).(io.ReaderFrom).ReadFrom(r); err != nil {
				var t T
				return n + inc, fmt.Errorf("%T.ReadFrom: %w", t, err)
			}

			n += inc

			(*m)[key] = entry
		}

		return n, nil

	default:
		return m.ReadFrom(bufio.NewReader(r))
	}
}

// MarshalBinary encodes the object into a binary form on a newly allocated slice of bytes.
// This method requires that T implements io.WriterTo.
func (m Map[K, T]) MarshalBinary() (p []byte, err error) {
	buf := buffer.NewBufferSize(m.BinarySize())
	_, err = m.WriteTo(buf)
	return buf.Bytes(), err
}

// UnmarshalBinary decodes a slice of bytes generated by
// MarshalBinary or WriteTo on the object.
// This method requires that T implements io.ReaderFrom.
func (m *Map[K, T]) UnmarshalBinary(p []byte) (err error) {
	_, err = m.ReadFrom(buffer.NewBuffer(p))
	return
}

// Equal performs a deep equal.
// This method requires that T implements Equatable.
func (m Map[K, T]) Equal(other Map[K, T]) (isEqual bool) {

	if len(m) != len(other) {
		return false
	}

	var t T
	if _, isEquatable := any(t).(Equatable[T]); !isEquatable {
		panic(fmt.Errorf("map component of type %T does not comply to %T", t, new(Equatable[T])))
	}

	for key := range m {

		entry, ok := other[key]

		if !ok {
			return false
		}

		if !any(m[key]).(Equatable[T]).Equal(entry) {
			return false
		}
	}

	return true
}
