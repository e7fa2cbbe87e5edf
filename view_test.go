package memregion

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func seeded(n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(i)
	}
	return b
}

func TestViewOf(t *testing.T) {
	src := seeded(8)
	v := ViewOf(src)
	require.False(t, v.Empty())
	require.Equal(t, 8, v.Size())
	require.Equal(t, src, v.Bytes())

	empty := ViewOf(nil)
	require.True(t, empty.Empty())
	require.Equal(t, 0, empty.Size())
}

func TestViewBytesEmpty(t *testing.T) {
	require.NotNil(t, ViewOf(nil).Bytes())
	require.Empty(t, ViewOf(nil).Bytes())
	require.Equal(t, []byte{}, ViewOf(seeded(8)).SubView(3, 0).Bytes())
}

func TestViewBytesIsCopy(t *testing.T) {
	src := seeded(4)
	v := ViewOf(src)
	out := v.Bytes()
	out[0] = 0xFF
	require.Equal(t, byte(0), src[0])
}

func TestViewAt(t *testing.T) {
	v := ViewOf(seeded(4))
	require.Equal(t, byte(2), v.At(2))
	require.Panics(t, func() { v.At(4) })
	require.Panics(t, func() { v.At(-1) })
}

func TestSubViewAllRanges(t *testing.T) {
	src := seeded(16)
	v := ViewOf(src)
	for off := 0; off <= len(src); off++ {
		for length := 0; off+length <= len(src); length++ {
			sub := v.SubView(off, length)
			require.Equal(t, length, sub.Size())
			require.Equal(t, src[off:off+length], sub.Bytes())
		}
	}
}

func TestSubViewOutOfRange(t *testing.T) {
	v := ViewOf(seeded(8))
	require.Panics(t, func() { v.SubView(4, 5) })
	require.Panics(t, func() { v.SubView(9, 0) })
	require.Panics(t, func() { v.SubView(-1, 2) })
	require.Panics(t, func() { v.SubView(0, -1) })
}

func TestSubViewFrom(t *testing.T) {
	src := seeded(8)
	v := ViewOf(src)
	require.Equal(t, src[5:], v.SubViewFrom(5).Bytes())
	require.True(t, v.SubViewFrom(8).Empty())
	require.Panics(t, func() { v.SubViewFrom(9) })
}

func TestSliceEqualsSubView(t *testing.T) {
	src := seeded(16)
	v := ViewOf(src)
	for begin := 0; begin <= len(src); begin++ {
		for end := begin; end <= len(src); end++ {
			require.Equal(t, v.SubView(begin, end-begin).Bytes(), v.Slice(begin, end).Bytes())
		}
	}
	require.Panics(t, func() { v.Slice(4, 3) })
	require.Panics(t, func() { v.Slice(0, 17) })
}

func TestViewOfSlice(t *testing.T) {
	words := []uint32{1, 2, 3}
	v := ViewOfSlice(words)
	require.Equal(t, 12, v.Size())
	require.Equal(t, uint32(2), As[uint32](v, 4))

	require.True(t, ViewOfSlice([]uint64(nil)).Empty())
}

func TestViewString(t *testing.T) {
	v := ViewOf([]byte("payload"))
	require.Equal(t, "payload", v.String())
}
