// Package blobwire frames memory regions for interchange across files
// and sockets. A frame is a fixed header, a varint raw size, the
// payload (optionally zstd-compressed) and a trailing CRC32 over
// everything before it. All integer fields are little-endian.
package blobwire

const (
	MagicV1   = 0x3147524D // "MRG1" little-endian
	VersionV1 = 1

	// FlagZstd marks a zstd-compressed payload.
	FlagZstd = 0x0001

	headerSize = 8 // magic u32 + version u16 + flags u16
	crcSize    = 4
)

// Options controls how an Encoder builds frames.
type Options struct {
	// Compress encodes payloads with zstd and sets FlagZstd.
	Compress bool
}
