package buffer

import (
	"encoding"
	"io"
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"
)

// Serializer is the interface that all serializable types of this
// library implement.
type Serializer interface {
	io.WriterTo
	io.ReaderFrom
	encoding.BinaryMarshaler
	encoding.BinaryUnmarshaler
	BinarySize() int
}

// RequireSerializerCorrect checks that the Serializer implementation
// of the input object is correct:
//   - MarshalBinary writes exactly BinarySize() bytes.
//   - WriteTo reports exactly BinarySize() written bytes.
//   - UnmarshalBinary and ReadFrom reconstruct an object equal to the input.
func RequireSerializerCorrect(t *testing.T, x Serializer) {

	size := x.BinarySize()

	p, err := x.MarshalBinary()
	require.NoError(t, err)
	require.Equal(t, size, len(p))

	y := reflect.New(reflect.TypeOf(x).Elem()).Interface().(Serializer)
	require.NoError(t, y.UnmarshalBinary(p))
	require.Equal(t, x, y)

	buf := NewBufferSize(size)
	n, err := x.WriteTo(buf)
	require.NoError(t, err)
	require.Equal(t, int64(size), n)

	z := reflect.New(reflect.TypeOf(x).Elem()).Interface().(Serializer)
	n, err = z.ReadFrom(NewBuffer(buf.Bytes()))
	require.NoError(t, err)
	require.Equal(t, int64(size), n)
	require.Equal(t, x, z)
}
