package lexkey

import (
	"io"
	"math"

	"github.com/lexkey-project/lexkey/internal"
)

// float32Codec is the Codec for float32.
//
// The order of the encoded values is:
//
//	-NaN
//	-Infinity
//	-x, for normal negative numbers x
//	-s, for subnormal negative numbers s
//	-0.0
//	+0.0
//	+s, for subnormal positive numbers s
//	+x, for normal positive numbers x
//	+Infinity
//	+NaN
//
// No distinction is made between quiet and signaling NaNs.
//
// The rest of this comment contains details about IEEE 754 and how this
// encoding works. Feel free to skip it!
//
// IEEE 754 defines the represented value as:
//
//	+/-1 * mantissa * 2^exponent
//
// where the binary format, high bit to low, is:
//
//	sign     - 1 bit,  0 := positive, 1 := negative
//	exponent - 8 bits, 0x00 := zero or subnormal, 0xFF := infinity or NaN
//	mantissa - 23 bits
//
// IEEE 754 comparison disagrees with Codec's semantics in three ways:
// -0.0 and +0.0 compare equal, NaN compares unordered with everything
// including itself, and there are many distinct NaN bit patterns. All of
// those bit patterns are encoded by this Codec and become comparable.
//
// By design, a float's bits read as a signed-magnitude integer (not the
// usual two's complement) already sort correctly. So to produce the
// correct unsigned lexicographic order we only need to:
//
//	flip the high bit, if the sign bit is 0 (positive)
//	flip all the bits, if the sign bit is 1 (negative)
type float32Codec struct{}

const (
	highBit32 uint32 = 0x8000_0000
	allBits32 uint32 = 0xFFFF_FFFF
	highBit64 uint64 = 0x8000_0000_0000_0000
	allBits64 uint64 = 0xFFFF_FFFF_FFFF_FFFF
)

func encodeFloat32Bits(bits uint32) uint32 {
	if bits&highBit32 == 0 {
		return bits ^ highBit32
	}
	return bits ^ allBits32
}

func decodeFloat32Bits(bits uint32) uint32 {
	if bits&highBit32 == 0 {
		return bits ^ allBits32
	}
	return bits ^ highBit32
}

func (float32Codec) Append(buf []byte, value float32) []byte {
	bits := encodeFloat32Bits(math.Float32bits(value))
	return internal.AppendUint(buf, uint64(bits), uint32Size)
}

func (float32Codec) Put(buf []byte, value float32) []byte {
	bits := encodeFloat32Bits(math.Float32bits(value))
	internal.PutUint(buf, uint64(bits), uint32Size)
	return buf[uint32Size:]
}

func (float32Codec) Get(buf []byte) (float32, []byte) {
	bits := decodeFloat32Bits(uint32(internal.GetUint(buf, uint32Size)))
	// math.Float32frombits already returns a true float32; the explicit
	// conversion below is a no-op on platforms with a native float32, but
	// documents the narrowing step some hosts (those exposing only a
	// 64-bit float type) must perform to keep P1 (round-trip) exact.
	return float32(math.Float32frombits(bits)), buf[uint32Size:]
}

func (float32Codec) Write(w io.Writer, value float32) error {
	bits := encodeFloat32Bits(math.Float32bits(value))
	return internal.WriteUint(w, uint64(bits), uint32Size)
}

func (float32Codec) Read(r io.Reader) (float32, error) {
	raw, err := internal.ReadUint(r, uint32Size)
	if err != nil {
		return 0, err
	}
	bits := decodeFloat32Bits(uint32(raw))
	return float32(math.Float32frombits(bits)), nil
}

func (float32Codec) Size() int { return uint32Size }

// float64Codec is the Codec for float64, and has the same general
// behavior as float32Codec. The IEEE 754 format differs only in width:
// 1 sign bit, 11 exponent bits, 52 mantissa bits.
type float64Codec struct{}

func encodeFloat64Bits(bits uint64) uint64 {
	if bits&highBit64 == 0 {
		return bits ^ highBit64
	}
	return bits ^ allBits64
}

func decodeFloat64Bits(bits uint64) uint64 {
	if bits&highBit64 == 0 {
		return bits ^ allBits64
	}
	return bits ^ highBit64
}

func (float64Codec) Append(buf []byte, value float64) []byte {
	bits := encodeFloat64Bits(math.Float64bits(value))
	return internal.AppendUint(buf, bits, uint64Size)
}

func (float64Codec) Put(buf []byte, value float64) []byte {
	bits := encodeFloat64Bits(math.Float64bits(value))
	internal.PutUint(buf, bits, uint64Size)
	return buf[uint64Size:]
}

func (float64Codec) Get(buf []byte) (float64, []byte) {
	bits := decodeFloat64Bits(internal.GetUint(buf, uint64Size))
	return math.Float64frombits(bits), buf[uint64Size:]
}

func (float64Codec) Write(w io.Writer, value float64) error {
	bits := encodeFloat64Bits(math.Float64bits(value))
	return internal.WriteUint(w, bits, uint64Size)
}

func (float64Codec) Read(r io.Reader) (float64, error) {
	raw, err := internal.ReadUint(r, uint64Size)
	if err != nil {
		return 0, err
	}
	bits := decodeFloat64Bits(raw)
	return math.Float64frombits(bits), nil
}

func (float64Codec) Size() int { return uint64Size }
