package lexkey

import (
	"io"

	"github.com/lexkey-project/lexkey/internal"
)

const (
	uint32Size = 4
	uint64Size = 8
)

// uintCodec is the Codec for uint32 and uint64, identity-encoded
// big-endian. Unsigned lexicographic byte comparison is equivalent to
// unsigned numeric comparison by construction, so no bit transform is
// needed.
type uintCodec[T ~uint32 | ~uint64] struct {
	width int
}

func (c uintCodec[T]) Append(buf []byte, value T) []byte {
	return internal.AppendUint(buf, uint64(value), c.width)
}

func (c uintCodec[T]) Put(buf []byte, value T) []byte {
	internal.PutUint(buf, uint64(value), c.width)
	return buf[c.width:]
}

func (c uintCodec[T]) Get(buf []byte) (T, []byte) {
	return T(internal.GetUint(buf, c.width)), buf[c.width:]
}

func (c uintCodec[T]) Write(w io.Writer, value T) error {
	return internal.WriteUint(w, uint64(value), c.width)
}

func (c uintCodec[T]) Read(r io.Reader) (T, error) {
	value, err := internal.ReadUint(r, c.width)
	return T(value), err
}

func (c uintCodec[T]) Size() int { return c.width }
