// Package common holds the low-level byte helpers shared by the wire
// and allocator packages.
package common

// WriteVarUintTo appends varint-encoded x to dst using a small stack
// scratch.
func WriteVarUintTo(dst []byte, x uint64) []byte {
	var scratch [10]byte
	i := 0
	for x >= 0x80 {
		scratch[i] = byte(x) | 0x80
		x >>= 7
		i++
	}
	scratch[i] = byte(x)
	i++
	return append(dst, scratch[:i]...)
}

// ReadVarUint decodes a varint from b returning value and bytes
// consumed. A zero consumed count means b was truncated.
func ReadVarUint(b []byte) (uint64, int) {
	var x uint64
	var s uint
	for i, c := range b {
		x |= uint64(c&0x7F) << s
		if c&0x80 == 0 {
			return x, i + 1
		}
		s += 7
	}
	return 0, 0
}

// Align rounds n up to the next multiple of pow2, which must be a
// power of two.
func Align(n, pow2 int) int {
	return (n + pow2 - 1) &^ (pow2 - 1)
}
