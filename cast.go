package lexkey

import "io"

// Codecs for named types with one of this package's seven underlying
// kinds (every Codec here except the ordinal one). These merely delegate to the Codec for the underlying type and
// cast the result.

// CastBool returns a Codec for a type with an underlying type of bool.
// Other than the underlying type, this is the same as [Bool].
func CastBool[T ~bool]() Codec[T] { return castBool[T]{} }

// CastUint32 returns a Codec for a type with an underlying type of
// uint32. Other than the underlying type, this is the same as [Uint32].
func CastUint32[T ~uint32]() Codec[T] { return castUint32[T]{} }

// CastUint64 returns a Codec for a type with an underlying type of
// uint64. Other than the underlying type, this is the same as [Uint64].
func CastUint64[T ~uint64]() Codec[T] { return castUint64[T]{} }

// CastInt32 returns a Codec for a type with an underlying type of int32.
// Other than the underlying type, this is the same as [Int32].
func CastInt32[T ~int32]() Codec[T] { return castInt32[T]{} }

// CastInt64 returns a Codec for a type with an underlying type of int64.
// Other than the underlying type, this is the same as [Int64].
func CastInt64[T ~int64]() Codec[T] { return castInt64[T]{} }

// CastFloat32 returns a Codec for a type with an underlying type of
// float32. Other than the underlying type, this is the same as [Float32].
func CastFloat32[T ~float32]() Codec[T] { return castFloat32[T]{} }

// CastFloat64 returns a Codec for a type with an underlying type of
// float64. Other than the underlying type, this is the same as [Float64].
func CastFloat64[T ~float64]() Codec[T] { return castFloat64[T]{} }

type castBool[T ~bool] struct{}

func (castBool[T]) Append(buf []byte, value T) []byte { return stdBool.Append(buf, bool(value)) }
func (castBool[T]) Put(buf []byte, value T) []byte { return stdBool.Put(buf, bool(value)) }
func (castBool[T]) Get(buf []byte) (T, []byte) {
	value, rest := stdBool.Get(buf)
	return T(value), rest
}
func (castBool[T]) Write(w io.Writer, value T) error { return stdBool.Write(w, bool(value)) }
func (castBool[T]) Read(r io.Reader) (T, error) {
	value, err := stdBool.Read(r)
	return T(value), err
}
func (castBool[T]) Size() int { return stdBool.Size() }

type castUint32[T ~uint32] struct{}

func (castUint32[T]) Append(buf []byte, value T) []byte { return stdUint32.Append(buf, uint32(value)) }
func (castUint32[T]) Put(buf []byte, value T) []byte { return stdUint32.Put(buf, uint32(value)) }
func (castUint32[T]) Get(buf []byte) (T, []byte) {
	value, rest := stdUint32.Get(buf)
	return T(value), rest
}
func (castUint32[T]) Write(w io.Writer, value T) error { return stdUint32.Write(w, uint32(value)) }
func (castUint32[T]) Read(r io.Reader) (T, error) {
	value, err := stdUint32.Read(r)
	return T(value), err
}
func (castUint32[T]) Size() int { return stdUint32.Size() }

type castUint64[T ~uint64] struct{}

func (castUint64[T]) Append(buf []byte, value T) []byte { return stdUint64.Append(buf, uint64(value)) }
func (castUint64[T]) Put(buf []byte, value T) []byte { return stdUint64.Put(buf, uint64(value)) }
func (castUint64[T]) Get(buf []byte) (T, []byte) {
	value, rest := stdUint64.Get(buf)
	return T(value), rest
}
func (castUint64[T]) Write(w io.Writer, value T) error { return stdUint64.Write(w, uint64(value)) }
func (castUint64[T]) Read(r io.Reader) (T, error) {
	value, err := stdUint64.Read(r)
	return T(value), err
}
func (castUint64[T]) Size() int { return stdUint64.Size() }

type castInt32[T ~int32] struct{}

func (castInt32[T]) Append(buf []byte, value T) []byte { return stdInt32.Append(buf, int32(value)) }
func (castInt32[T]) Put(buf []byte, value T) []byte { return stdInt32.Put(buf, int32(value)) }
func (castInt32[T]) Get(buf []byte) (T, []byte) {
	value, rest := stdInt32.Get(buf)
	return T(value), rest
}
func (castInt32[T]) Write(w io.Writer, value T) error { return stdInt32.Write(w, int32(value)) }
func (castInt32[T]) Read(r io.Reader) (T, error) {
	value, err := stdInt32.Read(r)
	return T(value), err
}
func (castInt32[T]) Size() int { return stdInt32.Size() }

type castInt64[T ~int64] struct{}

func (castInt64[T]) Append(buf []byte, value T) []byte { return stdInt64.Append(buf, int64(value)) }
func (castInt64[T]) Put(buf []byte, value T) []byte { return stdInt64.Put(buf, int64(value)) }
func (castInt64[T]) Get(buf []byte) (T, []byte) {
	value, rest := stdInt64.Get(buf)
	return T(value), rest
}
func (castInt64[T]) Write(w io.Writer, value T) error { return stdInt64.Write(w, int64(value)) }
func (castInt64[T]) Read(r io.Reader) (T, error) {
	value, err := stdInt64.Read(r)
	return T(value), err
}
func (castInt64[T]) Size() int { return stdInt64.Size() }

type castFloat32[T ~float32] struct{}

func (castFloat32[T]) Append(buf []byte, value T) []byte {
	return stdFloat32.Append(buf, float32(value))
}
func (castFloat32[T]) Put(buf []byte, value T) []byte { return stdFloat32.Put(buf, float32(value)) }
func (castFloat32[T]) Get(buf []byte) (T, []byte) {
	value, rest := stdFloat32.Get(buf)
	return T(value), rest
}
func (castFloat32[T]) Write(w io.Writer, value T) error { return stdFloat32.Write(w, float32(value)) }
func (castFloat32[T]) Read(r io.Reader) (T, error) {
	value, err := stdFloat32.Read(r)
	return T(value), err
}
func (castFloat32[T]) Size() int { return stdFloat32.Size() }

type castFloat64[T ~float64] struct{}

func (castFloat64[T]) Append(buf []byte, value T) []byte {
	return stdFloat64.Append(buf, float64(value))
}
func (castFloat64[T]) Put(buf []byte, value T) []byte { return stdFloat64.Put(buf, float64(value)) }
func (castFloat64[T]) Get(buf []byte) (T, []byte) {
	value, rest := stdFloat64.Get(buf)
	return T(value), rest
}
func (castFloat64[T]) Write(w io.Writer, value T) error { return stdFloat64.Write(w, float64(value)) }
func (castFloat64[T]) Read(r io.Reader) (T, error) {
	value, err := stdFloat64.Read(r)
	return T(value), err
}
func (castFloat64[T]) Size() int { return stdFloat64.Size() }
