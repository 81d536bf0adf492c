package lexkey_test

import (
	"bytes"
	"testing"

	"github.com/lexkey-project/lexkey"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBool(t *testing.T) {
	t.Parallel()
	testCodec(t, lexkey.Bool(), []testCase[bool]{
		{"false", false, []byte{0x00}},
		{"true", true, []byte{0x01}},
	})
	testOrderPreserving(t, lexkey.Bool(), []bool{false, true})
}

func TestCastBool(t *testing.T) {
	t.Parallel()
	type flag bool
	testCodec(t, lexkey.CastBool[flag](), []testCase[flag]{
		{"false", false, []byte{0x00}},
		{"true", true, []byte{0x01}},
	})
}

// The encoder only ever emits 0x00 or 0x01, but the decoder accepts any
// non-zero byte as true; round-trip holds without byte-for-byte fidelity.
func TestBoolDecodesNonCanonicalTrue(t *testing.T) {
	t.Parallel()
	codec := lexkey.Bool()
	got, rest := codec.Get([]byte{0xFF})
	assert.True(t, got)
	assert.Empty(t, rest)

	got, err := codec.Read(bytes.NewReader([]byte{0xFF}))
	require.NoError(t, err)
	assert.True(t, got)
}
