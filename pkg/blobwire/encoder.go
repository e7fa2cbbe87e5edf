package blobwire

import (
	"encoding/binary"
	"hash/crc32"

	"github.com/klauspost/compress/zstd"

	"github.com/rawbytedev/memregion"
	"github.com/rawbytedev/memregion/internal/common"
)

// Encoder builds frames. The output buffer is reused across Encode
// calls, so each call invalidates the previous result.
type Encoder struct {
	opts Options
	zenc *zstd.Encoder
	comp []byte
	out  []byte
}

func NewEncoder(opts Options) (*Encoder, error) {
	e := &Encoder{opts: opts}
	if opts.Compress {
		zw, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedBetterCompression))
		if err != nil {
			return nil, err
		}
		e.zenc = zw
	}
	return e, nil
}

// Encode frames the contents of r.
func (e *Encoder) Encode(r memregion.Region) ([]byte, error) {
	payload := memregion.ArrayView[byte](r, 0, r.Size())

	flags := uint16(0)
	body := payload
	if e.zenc != nil {
		flags |= FlagZstd
		e.comp = e.zenc.EncodeAll(payload, e.comp[:0])
		body = e.comp
	}

	need := headerSize + 10 + len(body) + crcSize
	if cap(e.out) < need {
		e.out = make([]byte, 0, need)
	} else {
		e.out = e.out[:0]
	}

	var hdr [headerSize]byte
	binary.LittleEndian.PutUint32(hdr[0:], MagicV1)
	binary.LittleEndian.PutUint16(hdr[4:], VersionV1)
	binary.LittleEndian.PutUint16(hdr[6:], flags)
	e.out = append(e.out, hdr[:]...)
	e.out = common.WriteVarUintTo(e.out, uint64(len(payload)))
	e.out = append(e.out, body...)

	// CRC over header+size+body
	crc := crc32.ChecksumIEEE(e.out)
	e.out = append(e.out, 0, 0, 0, 0)
	binary.LittleEndian.PutUint32(e.out[len(e.out)-crcSize:], crc)
	return e.out, nil
}
