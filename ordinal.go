package lexkey

import (
	"fmt"
	"io"
	"math"

	"github.com/lexkey-project/lexkey/internal"
)

const ordinalSize = 2

// ordinalCodec is the Codec for a caller-declared, ordered enumeration.
//
// It encodes a variant as the 2-byte big-endian index of that variant
// within the table it was constructed with, so the encoded order is
// exactly the declared order of the table. A table may hold at most
// 1<<16 variants, since the index must fit in 2 bytes.
type ordinalCodec[T comparable] struct {
	variants []T
	index    map[T]int
}

// Ordinal returns a Codec for a closed, ordered enumeration of variants.
// The encoded order of variants is the order they are given here.
//
// Ordinal panics if variants contains a duplicate value, or more than
// 1<<16 values (the 2-byte index cannot address that many).
//
// Encoding a value not present in variants panics, since by construction
// no well-typed instance of the enumeration this Codec models can fail
// to be one of variants. Decoding an index at or beyond len(variants)
// returns (or, for Get, panics with) a [CorruptKeyError]: unlike an
// invalid encode input, a corrupt or truncated key is an expected,
// recoverable failure mode for a decoder.
func Ordinal[T comparable](variants ...T) Codec[T] {
	if len(variants) > math.MaxUint16+1 {
		panic("lexkey: too many ordinal variants for a 2-byte index")
	}
	index := make(map[T]int, len(variants))
	for i, v := range variants {
		if _, dup := index[v]; dup {
			panic(duplicateVariantError{v})
		}
		index[v] = i
	}
	table := make([]T, len(variants))
	copy(table, variants)
	return ordinalCodec[T]{variants: table, index: index}
}

func (c ordinalCodec[T]) ordinalOf(value T) int {
	i, ok := c.index[value]
	if !ok {
		panic(fmt.Sprintf("lexkey: %v is not a declared ordinal variant", value))
	}
	return i
}

func (c ordinalCodec[T]) Append(buf []byte, value T) []byte {
	return internal.AppendUint(buf, uint64(c.ordinalOf(value)), ordinalSize)
}

func (c ordinalCodec[T]) Put(buf []byte, value T) []byte {
	internal.PutUint(buf, uint64(c.ordinalOf(value)), ordinalSize)
	return buf[ordinalSize:]
}

func (c ordinalCodec[T]) Get(buf []byte) (T, []byte) {
	i := int(internal.GetUint(buf, ordinalSize))
	if i >= len(c.variants) {
		panic(CorruptKeyError{Index: i, Count: len(c.variants)})
	}
	return c.variants[i], buf[ordinalSize:]
}

func (c ordinalCodec[T]) Write(w io.Writer, value T) error {
	return internal.WriteUint(w, uint64(c.ordinalOf(value)), ordinalSize)
}

func (c ordinalCodec[T]) Read(r io.Reader) (T, error) {
	raw, err := internal.ReadUint(r, ordinalSize)
	if err != nil {
		var zero T
		return zero, err
	}
	i := int(raw)
	if i >= len(c.variants) {
		var zero T
		return zero, CorruptKeyError{Index: i, Count: len(c.variants)}
	}
	return c.variants[i], nil
}

func (c ordinalCodec[T]) Size() int { return ordinalSize }
