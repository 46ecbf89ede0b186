package cursor

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReaderScalarRoundTrip(t *testing.T) {
	w := NewWriter()
	w.WriteUint8(0xAB)
	w.WriteInt8(-5)
	w.WriteUint16(0xBEEF)
	w.WriteInt16(-1234)
	w.WriteUint32(0xDEADBEEF)
	w.WriteInt32(-1)
	w.WriteUint64(0xFFFFFFFFFFFFFFFF)
	w.WriteInt64(math.MaxInt64)
	w.WriteFloat32(float32(1.5))
	w.WriteFloat64(2.5)
	w.WriteBool(true)
	w.WriteBool(false)

	r := NewReader(w.Bytes())

	u8, err := r.Uint8()
	require.NoError(t, err)
	require.Equal(t, uint8(0xAB), u8)

	i8, err := r.Int8()
	require.NoError(t, err)
	require.Equal(t, int8(-5), i8)

	u16, err := r.Uint16()
	require.NoError(t, err)
	require.Equal(t, uint16(0xBEEF), u16)

	i16, err := r.Int16()
	require.NoError(t, err)
	require.Equal(t, int16(-1234), i16)

	u32, err := r.Uint32()
	require.NoError(t, err)
	require.Equal(t, uint32(0xDEADBEEF), u32)

	i32, err := r.Int32()
	require.NoError(t, err)
	require.Equal(t, int32(-1), i32)

	u64, err := r.Uint64()
	require.NoError(t, err)
	require.Equal(t, uint64(0xFFFFFFFFFFFFFFFF), u64)

	i64, err := r.Int64()
	require.NoError(t, err)
	require.Equal(t, int64(math.MaxInt64), i64)

	f32, err := r.Float32()
	require.NoError(t, err)
	require.Equal(t, float32(1.5), f32)

	f64, err := r.Float64()
	require.NoError(t, err)
	require.Equal(t, 2.5, f64)

	b1, err := r.Bool()
	require.NoError(t, err)
	require.True(t, b1)

	b2, err := r.Bool()
	require.NoError(t, err)
	require.False(t, b2)

	require.Zero(t, r.Len())
}

func TestFloat32NegativeZeroBitExact(t *testing.T) {
	w := NewWriter()
	w.WriteFloat32(math.Float32frombits(0x80000000))

	r := NewReader(w.Bytes())
	f, err := r.Float32()
	require.NoError(t, err)
	require.Equal(t, uint32(0x80000000), math.Float32bits(f))
}

func TestFloat64NaNBitsPreserved(t *testing.T) {
	bits := uint64(0x7FF8000000000001)
	w := NewWriter()
	w.WriteFloat64(math.Float64frombits(bits))

	r := NewReader(w.Bytes())
	f, err := r.Float64()
	require.NoError(t, err)
	require.Equal(t, bits, math.Float64bits(f))
}

func TestStringASCIIRoundTripsAsUTF8(t *testing.T) {
	w := NewWriter()
	w.WriteString("Hello")
	buf := w.Bytes()

	// positive length prefix: len("Hello")+1 for trailing NUL
	require.Equal(t, int32(6), int32(buf[0])|int32(buf[1])<<8|int32(buf[2])<<16|int32(buf[3])<<24)

	r := NewReader(buf)
	s, err := r.String()
	require.NoError(t, err)
	require.Equal(t, "Hello", s)
}

func TestStringNonASCIIRoundTripsAsUTF16(t *testing.T) {
	w := NewWriter()
	w.WriteString("café")
	buf := w.Bytes()

	length := int32(buf[0]) | int32(buf[1])<<8 | int32(buf[2])<<16 | int32(buf[3])<<24
	require.Less(t, length, int32(0))

	r := NewReader(buf)
	s, err := r.String()
	require.NoError(t, err)
	require.Equal(t, "café", s)
}

func TestStringEmpty(t *testing.T) {
	w := NewWriter()
	w.WriteString("")
	r := NewReader(w.Bytes())
	s, err := r.String()
	require.NoError(t, err)
	require.Equal(t, "", s)
}

func TestGUIDRoundTrip(t *testing.T) {
	var g [16]byte
	for i := range g {
		g[i] = byte(i)
	}
	w := NewWriter()
	w.WriteGUID(g)

	r := NewReader(w.Bytes())
	got, err := r.GUID()
	require.NoError(t, err)
	require.Equal(t, g, got)
}

func TestUnexpectedEndOfStream(t *testing.T) {
	r := NewReader([]byte{0x01, 0x02})
	_, err := r.Uint32()
	require.Error(t, err)
	var target ErrUnexpectedEndOfStream
	require.ErrorAs(t, err, &target)
}

func TestMalformedBool(t *testing.T) {
	r := NewReader([]byte{0x02})
	_, err := r.Bool()
	require.Error(t, err)
	var target ErrMalformedBool
	require.ErrorAs(t, err, &target)
}

func TestPatchUint32(t *testing.T) {
	w := NewWriter()
	off := w.Reserve(4)
	w.WriteBytes([]byte("payload"))
	w.PatchUint32(off, uint32(len("payload")))

	r := NewReader(w.Bytes())
	n, err := r.Uint32()
	require.NoError(t, err)
	require.Equal(t, uint32(len("payload")), n)
}
