package lexkey

import (
	"io"

	"github.com/lexkey-project/lexkey/internal"
)

// Sign bit masks used by the exported int32/int64 Codecs; equivalent to
// the minimum representable value of each width interpreted as unsigned.
const (
	signBit32 uint64 = 1 << 31
	signBit64 uint64 = 1 << 63
)

// intCodec is the Codec for int32 and int64.
//
// It encodes a value by flipping the sign bit and writing big-endian,
// which can be seen to preserve order from this signed -> encoded table:
//
//	0x8000_0000 -> 0x0000_0000  most negative
//	0xFFFF_FFFF -> 0x7FFF_FFFF  -1
//	0x0000_0000 -> 0x8000_0000  0
//	0x0000_0001 -> 0x8000_0001  1
//	0x7FFF_FFFF -> 0xFFFF_FFFF  most positive
type intCodec[T ~int32 | ~int64] struct {
	width   int
	signBit uint64
}

func (c intCodec[T]) encode(value T) uint64 {
	return c.signBit ^ uint64(value)
}

func (c intCodec[T]) decode(bits uint64) T {
	return T(c.signBit ^ bits)
}

func (c intCodec[T]) Append(buf []byte, value T) []byte {
	return internal.AppendUint(buf, c.encode(value), c.width)
}

func (c intCodec[T]) Put(buf []byte, value T) []byte {
	internal.PutUint(buf, c.encode(value), c.width)
	return buf[c.width:]
}

func (c intCodec[T]) Get(buf []byte) (T, []byte) {
	return c.decode(internal.GetUint(buf, c.width)), buf[c.width:]
}

func (c intCodec[T]) Write(w io.Writer, value T) error {
	return internal.WriteUint(w, c.encode(value), c.width)
}

func (c intCodec[T]) Read(r io.Reader) (T, error) {
	bits, err := internal.ReadUint(r, c.width)
	if err != nil {
		return 0, err
	}
	return c.decode(bits), nil
}

func (c intCodec[T]) Size() int { return c.width }
