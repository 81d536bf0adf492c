package lexkey

import "fmt"

// CorruptKeyError is returned by Ordinal Codec's Read, and is the value
// recovered from its Get, when a decoded ordinal index falls outside the
// bounds of the Codec's variant table. This is the only error kind any
// Codec in this package can produce on its own; all other failures are
// propagated unchanged from the caller's io.Reader or io.Writer.
type CorruptKeyError struct {
	Index int
	Count int
}

func (e CorruptKeyError) Error() string {
	return fmt.Sprintf("lexkey: ordinal index %d out of range [0, %d)", e.Index, e.Count)
}

// duplicateVariantError is a construction-time error, not a decode error:
// it reports a caller mistake in the variant table passed to Ordinal,
// not a failure of any particular encode or decode call.
type duplicateVariantError struct {
	value any
}

func (e duplicateVariantError) Error() string {
	return fmt.Sprintf("lexkey: duplicate ordinal variant %v", e.value)
}
