package blobwire

import (
	"bytes"
	"encoding/binary"
	"hash/crc32"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rawbytedev/memregion"
	"github.com/rawbytedev/memregion/internal/common"
)

func testRegion(t *testing.T, n int) *memregion.Buffer {
	t.Helper()
	b, err := memregion.Alloc(n)
	require.NoError(t, err)
	sp := b.Span()
	for i := 0; i < n; i++ {
		sp.Set(i, byte(i%7))
	}
	return b
}

// reseal recomputes the trailing CRC after a frame was tampered with.
func reseal(frame []byte) {
	crc := crc32.ChecksumIEEE(frame[:len(frame)-crcSize])
	binary.LittleEndian.PutUint32(frame[len(frame)-crcSize:], crc)
}

func TestRoundTrip(t *testing.T) {
	src := testRegion(t, 256)
	enc, err := NewEncoder(Options{})
	require.NoError(t, err)
	dec, err := NewDecoder()
	require.NoError(t, err)

	frame, err := enc.Encode(src)
	require.NoError(t, err)

	out, err := dec.Decode(frame)
	require.NoError(t, err)
	require.Equal(t, src.Size(), out.Size())
	require.Equal(t, src.Bytes(), out.Bytes())
}

func TestRoundTripCompressed(t *testing.T) {
	src := testRegion(t, 4096)
	enc, err := NewEncoder(Options{Compress: true})
	require.NoError(t, err)
	dec, err := NewDecoder()
	require.NoError(t, err)

	frame, err := enc.Encode(src)
	require.NoError(t, err)
	require.Less(t, len(frame), src.Size())

	out, err := dec.Decode(frame)
	require.NoError(t, err)
	require.Equal(t, src.Bytes(), out.Bytes())
}

func TestEmptyRegionRoundTrip(t *testing.T) {
	enc, err := NewEncoder(Options{})
	require.NoError(t, err)
	dec, err := NewDecoder()
	require.NoError(t, err)

	frame, err := enc.Encode(memregion.ViewOf(nil))
	require.NoError(t, err)
	out, err := dec.Decode(frame)
	require.NoError(t, err)
	require.True(t, out.Empty())
}

func TestEncoderReusesOutput(t *testing.T) {
	enc, err := NewEncoder(Options{})
	require.NoError(t, err)
	first, err := enc.Encode(memregion.ViewOf([]byte{1, 2, 3}))
	require.NoError(t, err)
	kept := bytes.Clone(first)
	_, err = enc.Encode(memregion.ViewOf([]byte{9, 9, 9}))
	require.NoError(t, err)
	// first now aliases the reused buffer and no longer matches
	require.NotEqual(t, kept, first)
}

func TestChecksumRejected(t *testing.T) {
	enc, _ := NewEncoder(Options{})
	dec, _ := NewDecoder()
	frame, err := enc.Encode(memregion.ViewOf(seq(64)))
	require.NoError(t, err)

	bad := bytes.Clone(frame)
	bad[headerSize+2] ^= 0x01
	_, err = dec.Decode(bad)
	require.ErrorIs(t, err, ErrChecksum)
}

func TestBadMagic(t *testing.T) {
	enc, _ := NewEncoder(Options{})
	dec, _ := NewDecoder()
	frame, err := enc.Encode(memregion.ViewOf(seq(8)))
	require.NoError(t, err)

	bad := bytes.Clone(frame)
	bad[0] ^= 0xFF
	reseal(bad)
	_, err = dec.Decode(bad)
	require.ErrorIs(t, err, ErrBadMagic)
}

func TestVersionRejected(t *testing.T) {
	enc, _ := NewEncoder(Options{})
	dec, _ := NewDecoder()
	frame, err := enc.Encode(memregion.ViewOf(seq(8)))
	require.NoError(t, err)

	bad := bytes.Clone(frame)
	binary.LittleEndian.PutUint16(bad[4:], VersionV1+1)
	reseal(bad)
	_, err = dec.Decode(bad)
	require.ErrorIs(t, err, ErrVersion)
}

func TestOversizeRejected(t *testing.T) {
	dec, _ := NewDecoder()

	// hand-built frame claiming a payload far beyond any real region
	var hdr [headerSize]byte
	binary.LittleEndian.PutUint32(hdr[0:], MagicV1)
	binary.LittleEndian.PutUint16(hdr[4:], VersionV1)
	frame := append([]byte{}, hdr[:]...)
	frame = common.WriteVarUintTo(frame, uint64(math.MaxInt32)+1)
	frame = append(frame, 0, 0, 0, 0)
	reseal(frame)

	_, err := dec.Decode(frame)
	require.ErrorIs(t, err, ErrOversize)
}

func TestShortFrame(t *testing.T) {
	dec, _ := NewDecoder()
	_, err := dec.Decode([]byte{1, 2, 3})
	require.ErrorIs(t, err, ErrShortFrame)
}

func TestTruncatedPayload(t *testing.T) {
	enc, _ := NewEncoder(Options{})
	dec, _ := NewDecoder()
	frame, err := enc.Encode(memregion.ViewOf(seq(64)))
	require.NoError(t, err)

	// drop payload bytes but keep a valid CRC
	bad := bytes.Clone(frame[:len(frame)-crcSize-16])
	bad = append(bad, 0, 0, 0, 0)
	reseal(bad)
	_, err = dec.Decode(bad)
	require.ErrorIs(t, err, ErrTruncated)
}

func seq(n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(i)
	}
	return b
}
