package internal_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/lexkey-project/lexkey/internal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendPutGetRoundTrip(t *testing.T) {
	t.Parallel()
	for _, width := range []int{1, 2, 4, 8} {
		width := width
		t.Run(string(rune('0'+width)), func(t *testing.T) {
			t.Parallel()
			var value uint64 = 0x0102030405060708
			mask := uint64(1)<<(width*8) - 1
			if width == 8 {
				mask = ^uint64(0)
			}
			value &= mask

			appended := internal.AppendUint(nil, value, width)
			assert.Len(t, appended, width)
			assert.Equal(t, value, internal.GetUint(appended, width))

			buf := make([]byte, width)
			internal.PutUint(buf, value, width)
			assert.Equal(t, appended, buf)
		})
	}
}

func TestWriteReadRoundTrip(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	require.NoError(t, internal.WriteUint(&buf, 0xABCD, 2))
	got, err := internal.ReadUint(&buf, 2)
	require.NoError(t, err)
	assert.Equal(t, uint64(0xABCD), got)
}

func TestReadShort(t *testing.T) {
	t.Parallel()
	_, err := internal.ReadUint(bytes.NewReader(nil), 4)
	require.ErrorIs(t, err, io.EOF)

	_, err = internal.ReadUint(bytes.NewReader([]byte{1, 2}), 4)
	require.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestPutPanicsOnShortBuffer(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() {
		internal.PutUint(make([]byte, 1), 0x0102, 2)
	})
}
