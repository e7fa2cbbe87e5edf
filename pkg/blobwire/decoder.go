package blobwire

import (
	"encoding/binary"
	"errors"
	"fmt"
	"hash/crc32"
	"math"

	"github.com/klauspost/compress/zstd"

	"github.com/rawbytedev/memregion"
	"github.com/rawbytedev/memregion/internal/common"
)

var (
	ErrShortFrame = errors.New("frame too short")
	ErrBadMagic   = errors.New("bad magic")
	ErrVersion    = errors.New("unsupported version")
	ErrChecksum   = errors.New("checksum mismatch")
	ErrTruncated  = errors.New("truncated payload")
	ErrOversize   = errors.New("payload size limit exceeded")
)

// Decoder parses frames back into owning Buffers.
type Decoder struct {
	zdec *zstd.Decoder
}

func NewDecoder() (*Decoder, error) {
	zr, err := zstd.NewReader(nil)
	if err != nil {
		return nil, err
	}
	return &Decoder{zdec: zr}, nil
}

// Decode verifies and unpacks one frame, returning a Buffer that owns
// a fresh copy of the payload.
func (d *Decoder) Decode(frame []byte) (*memregion.Buffer, error) {
	if len(frame) < headerSize+1+crcSize {
		return nil, ErrShortFrame
	}
	body := frame[:len(frame)-crcSize]
	want := binary.LittleEndian.Uint32(frame[len(frame)-crcSize:])
	if crc32.ChecksumIEEE(body) != want {
		return nil, ErrChecksum
	}

	v := memregion.ViewOf(body)
	hdr := memregion.ArrayView[byte](v, 0, headerSize)
	if binary.LittleEndian.Uint32(hdr[0:]) != MagicV1 {
		return nil, ErrBadMagic
	}
	if ver := binary.LittleEndian.Uint16(hdr[4:]); ver != VersionV1 {
		return nil, fmt.Errorf("%w: %d", ErrVersion, ver)
	}
	flags := binary.LittleEndian.Uint16(hdr[6:])

	rawSize, n := common.ReadVarUint(body[headerSize:])
	if n == 0 {
		return nil, ErrTruncated
	}
	if rawSize > math.MaxInt32 {
		return nil, fmt.Errorf("%w: %d bytes", ErrOversize, rawSize)
	}
	payload := v.SubViewFrom(headerSize + n)

	if flags&FlagZstd != 0 {
		raw, err := d.zdec.DecodeAll(
			memregion.ArrayView[byte](payload, 0, payload.Size()),
			make([]byte, 0, rawSize),
		)
		if err != nil {
			return nil, fmt.Errorf("decompress: %w", err)
		}
		if uint64(len(raw)) != rawSize {
			return nil, ErrTruncated
		}
		return memregion.Own(raw), nil
	}

	if uint64(payload.Size()) != rawSize {
		return nil, ErrTruncated
	}
	buf, err := memregion.Alloc(payload.Size())
	if err != nil {
		return nil, err
	}
	buf.Span().CopyFrom(payload)
	return buf, nil
}
