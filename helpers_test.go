package lexkey_test

// This file contains things that help in writing Codec tests; it has no
// tests of its own.

import (
	"bytes"
	"testing"

	"github.com/lexkey-project/lexkey"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase[T any] struct {
	name  string
	value T
	data  []byte
}

func encoderFor[T any](codec lexkey.Codec[T]) func(value T) []byte {
	return func(value T) []byte {
		return codec.Append(nil, value)
	}
}

// testCodec checks Append/Put/Write produce tt.data, and Get/Read both
// decode tt.data back to tt.value while consuming exactly codec.Size()
// bytes, for every test case.
//
//nolint:thelper
func testCodec[T any](t *testing.T, codec lexkey.Codec[T], tests []testCase[T]) {
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.data, codec.Append(nil, tt.value), "Append")
			assert.Len(t, tt.data, codec.Size(), "Size")

			header := []byte{0xAA, 0xBB, 0xCC}
			appended := codec.Append(append([]byte{}, header...), tt.value)
			assert.Equal(t, header, appended[:len(header)], "Append preserves prefix")
			assert.Equal(t, tt.data, appended[len(header):], "Append after prefix")

			buf := make([]byte, codec.Size())
			rest := codec.Put(buf, tt.value)
			assert.Equal(t, tt.data, buf, "Put")
			assert.Empty(t, rest, "Put return slice")

			var w bytes.Buffer
			require.NoError(t, codec.Write(&w, tt.value))
			assert.Equal(t, tt.data, w.Bytes(), "Write")

			got, rest := codec.Get(tt.data)
			assert.Equal(t, tt.value, got, "Get value")
			assert.Empty(t, rest, "Get return slice")

			r := bytes.NewReader(tt.data)
			got, err := codec.Read(r)
			require.NoError(t, err, "Read")
			assert.Equal(t, tt.value, got, "Read value")
			assert.Zero(t, r.Len(), "Read framing")
		})
	}
}

// testOrderPreserving checks that for every pair in ascending, the relative
// order of the values agrees with the relative order of their encodings.
// ascending must already be sorted into ascending value order.
func testOrderPreserving[T any](t *testing.T, codec lexkey.Codec[T], ascending []T) {
	t.Helper()
	encode := encoderFor(codec)
	var encoded [][]byte
	for _, v := range ascending {
		encoded = append(encoded, encode(v))
	}
	assert.IsIncreasing(t, encoded)
}
