package memregion

import (
	"unsafe"

	"github.com/rawbytedev/memregion/contract"
)

// Fixed restricts typed access to fixed-width, trivially-copyable
// element types. Anything with pointers, padding or invariants is a
// compile error rather than a documented hazard.
type Fixed interface {
	~bool |
		~int8 | ~int16 | ~int32 | ~int64 |
		~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

func sizeOf[T Fixed]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

// bytesOf aliases a fixed-width element slice as raw bytes without
// copying.
func bytesOf[T Fixed](elems []T) []byte {
	if len(elems) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&elems[0])), len(elems)*sizeOf[T]())
}

// As reads the bytes at off as one native-endian T. The region does
// not have to be aligned for T.
func As[T Fixed](r Region, off int) T {
	b := r.raw()
	width := sizeOf[T]()
	contract.Checkf(off >= 0 && off <= len(b)-width,
		"offset+width <= Size()", "offset %d width %d size %d", off, width, len(b))
	return *(*T)(unsafe.Pointer(&b[off]))
}

// ArrayView aliases count contiguous T elements starting at off,
// without copying. The result is read-only by contract: writing
// through it is misuse, exactly like writing through a dangling
// window.
func ArrayView[T Fixed](r Region, off, count int) []T {
	return alias[T](r.raw(), off, count)
}

// ArraySpan aliases count contiguous writable T elements starting at
// off.
func ArraySpan[T Fixed](r Mutable, off, count int) []T {
	return alias[T](r.rawMut(), off, count)
}

// Ref returns a writable pointer to the T at off.
func Ref[T Fixed](r Mutable, off int) *T {
	b := r.rawMut()
	width := sizeOf[T]()
	contract.Checkf(off >= 0 && off <= len(b)-width,
		"offset+width <= Size()", "offset %d width %d size %d", off, width, len(b))
	return (*T)(unsafe.Pointer(&b[off]))
}

// Put writes one native-endian T at off.
func Put[T Fixed](r Mutable, off int, v T) {
	*Ref[T](r, off) = v
}

func alias[T Fixed](b []byte, off, count int) []T {
	width := sizeOf[T]()
	contract.Checkf(off >= 0 && count >= 0 && off <= len(b) && count <= (len(b)-off)/width,
		"offset+count*width <= Size()", "offset %d count %d width %d size %d", off, count, width, len(b))
	if count == 0 {
		return nil
	}
	return unsafe.Slice((*T)(unsafe.Pointer(&b[off])), count)
}
