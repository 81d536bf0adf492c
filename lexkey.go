/*
Package lexkey defines order-preserving binary encodings for a closed set
of scalar key types: bool, uint32, uint64, int32, int64, float32, float64,
and caller-defined ordinal enumerations.

The defining property of every Codec in this package is that unsigned
lexicographic (byte-wise) comparison of two encoded values agrees with the
natural ordering of the values themselves. This makes these Codecs the
building blocks for keys in any storage engine that only knows how to
compare raw byte strings: B-trees, LSM trees, embedded databases, or
external merge-sort keys.

Each Codec is an immutable value safe for concurrent use. Append, Put and
Get allocate nothing beyond growing the buffer passed to Append; Write and
Read allocate a small scratch buffer on each call, and so does Get on a
Codec returned by [Negate].
A Codec always encodes to the same fixed number of bytes for its type
(see [Codec.Size]), so composite keys can be built by simply concatenating
the encodings of their parts in a fixed, declared order; order preservation
of the composite follows directly from order preservation of each part.

This package does not attempt to be a general-purpose serializer. It has
no support for variable-width integers, strings, slices, maps, pointers,
or arbitrary-precision numbers: those require escaping or prefix-freedom
schemes that are out of scope here. See the package-level tests for the
exact boundary and ordering guarantees each Codec makes.

These Codec-returning functions do not require specifying a type parameter:
  - [Bool]
  - [Uint32], [Uint64]
  - [Int32], [Int64]
  - [Float32], [Float64]
  - [Ordinal]

These require specifying a type parameter, for encoding a named type whose
underlying type is one of the above:
  - [CastBool]
  - [CastUint32], [CastUint64]
  - [CastInt32], [CastInt64]
  - [CastFloat32], [CastFloat64]

[Negate] reverses the order of any Codec in this package.
*/
package lexkey

import "io"

// Codec defines a fixed-width, order-preserving binary encoding for
// values of type T.
//
// Append, Put, and Write must all produce the same encoded bytes for the
// same value. Get and Read must be able to decode encodings produced by
// any of Append, Put, or Write, and must consume exactly Size() bytes
// doing so.
//
// All Codecs provided by this package are safe for concurrent use.
type Codec[T any] interface {
	// Append encodes value and appends the encoded bytes to buf, returning
	// the extended buffer.
	Append(buf []byte, value T) []byte

	// Put encodes value into buf, returning buf following what was
	// written. Put panics if buf is shorter than Size().
	Put(buf []byte, value T) []byte

	// Get decodes a value of type T from the front of buf, returning the
	// value and buf following the encoded value. Get panics if buf is
	// shorter than Size().
	Get(buf []byte) (T, []byte)

	// Write encodes value and writes the encoded bytes to w.
	Write(w io.Writer, value T) error

	// Read decodes a value of type T by reading exactly Size() bytes
	// from r.
	Read(r io.Reader) (T, error)

	// Size returns the fixed number of bytes this Codec always encodes
	// to, independent of value.
	Size() int
}

// Codec instances for the common use cases. There is a corresponding
// exported function for each of these.
var (
	stdBool    Codec[bool]    = boolCodec{}
	stdUint32  Codec[uint32]  = uintCodec[uint32]{width: uint32Size}
	stdUint64  Codec[uint64]  = uintCodec[uint64]{width: uint64Size}
	stdInt32   Codec[int32]   = intCodec[int32]{width: uint32Size, signBit: signBit32}
	stdInt64   Codec[int64]   = intCodec[int64]{width: uint64Size, signBit: signBit64}
	stdFloat32 Codec[float32] = float32Codec{}
	stdFloat64 Codec[float64] = float64Codec{}
)

// Bool returns a Codec for the bool type. The encoded order is false,
// then true. Size is 1.
func Bool() Codec[bool] { return stdBool }

// Uint32 returns a Codec for the uint32 type, encoded big-endian. Size is 4.
func Uint32() Codec[uint32] { return stdUint32 }

// Uint64 returns a Codec for the uint64 type, encoded big-endian. Size is 8.
func Uint64() Codec[uint64] { return stdUint64 }

// Int32 returns a Codec for the int32 type, encoded by flipping the sign
// bit and writing big-endian. Size is 4.
func Int32() Codec[int32] { return stdInt32 }

// Int64 returns a Codec for the int64 type, encoded by flipping the sign
// bit and writing big-endian. Size is 8.
func Int64() Codec[int64] { return stdInt64 }

// Float32 returns a Codec for the float32 type. Size is 4.
//
// The order of encoded values is:
//
//	-NaN, -Inf, negative finite numbers, -0.0, +0.0, positive finite numbers, +Inf, +NaN
//
// No distinction is made between quiet and signaling NaNs, and NaN payload
// bits are not preserved in any specified order; only non-NaN round trips
// are guaranteed.
func Float32() Codec[float32] { return stdFloat32 }

// Float64 returns a Codec for the float64 type. Other than operating on
// float64, this behaves exactly as [Float32] does.
func Float64() Codec[float64] { return stdFloat64 }
