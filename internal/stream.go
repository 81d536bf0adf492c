// Package internal holds the raw big-endian fixed-width stream primitive
// shared by the integer, float and ordinal Codecs in the lexkey package.
//
// Every Codec in lexkey encodes to a constant number of bytes, so the only
// shared machinery they need is a way to move N bytes MSB-first between a
// uint64 accumulator and a buffer or stream, for N in {1, 2, 4, 8}. This
// package is that machinery; it is intentionally small. AppendUint, PutUint
// and GetUint allocate nothing beyond growing the buffer given to
// AppendUint; WriteUint and ReadUint each allocate their scratch buffer,
// since it is handed to an io.Writer or io.Reader.
package internal

import (
	"encoding/binary"
	"io"
)

// AppendUint appends the low width bytes of value to buf, most significant
// byte first, and returns the extended buffer. width must be 1, 2, 4, or 8.
func AppendUint(buf []byte, value uint64, width int) []byte {
	switch width {
	case 1:
		return append(buf, byte(value))
	case 2:
		return binary.BigEndian.AppendUint16(buf, uint16(value))
	case 4:
		return binary.BigEndian.AppendUint32(buf, uint32(value))
	case 8:
		return binary.BigEndian.AppendUint64(buf, value)
	default:
		panic("lexkey/internal: unsupported width")
	}
}

// PutUint writes the low width bytes of value into buf, most significant
// byte first. PutUint panics if buf is too small. width must be 1, 2, 4, or 8.
func PutUint(buf []byte, value uint64, width int) {
	switch width {
	case 1:
		buf[0] = byte(value)
	case 2:
		binary.BigEndian.PutUint16(buf, uint16(value))
	case 4:
		binary.BigEndian.PutUint32(buf, uint32(value))
	case 8:
		binary.BigEndian.PutUint64(buf, value)
	default:
		panic("lexkey/internal: unsupported width")
	}
}

// GetUint reads width bytes from the front of buf, most significant byte
// first, zero-extending into a uint64. GetUint panics if buf is too short.
// width must be 1, 2, 4, or 8.
func GetUint(buf []byte, width int) uint64 {
	switch width {
	case 1:
		return uint64(buf[0])
	case 2:
		return uint64(binary.BigEndian.Uint16(buf))
	case 4:
		return uint64(binary.BigEndian.Uint32(buf))
	case 8:
		return binary.BigEndian.Uint64(buf)
	default:
		panic("lexkey/internal: unsupported width")
	}
}

// WriteUint writes the low width bytes of value to w, most significant byte
// first. width must be 1, 2, 4, or 8.
func WriteUint(w io.Writer, value uint64, width int) error {
	var scratch [8]byte
	PutUint(scratch[:width], value, width)
	_, err := w.Write(scratch[:width])
	return err
}

// ReadUint reads width bytes from r, most significant byte first, and
// zero-extends them into a uint64. A short read is reported as io.EOF if
// zero bytes were read, and io.ErrUnexpectedEOF otherwise. width must be
// 1, 2, 4, or 8.
func ReadUint(r io.Reader, width int) (uint64, error) {
	var scratch [8]byte
	if _, err := io.ReadFull(r, scratch[:width]); err != nil {
		return 0, err
	}
	return GetUint(scratch[:width], width), nil
}
