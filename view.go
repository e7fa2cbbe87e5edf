package memregion

import "github.com/rawbytedev/memregion/contract"

// View is a read-only, non-owning window over a byte region.
// The zero value is an empty View.
type View struct {
	data []byte
}

// ViewOf returns a View over data. The View aliases data; it stays
// valid only as long as data does.
func ViewOf(data []byte) View {
	return View{data: data}
}

// ViewOfSlice returns a View over the raw bytes of a fixed-width
// element slice, without copying.
func ViewOfSlice[T Fixed](elems []T) View {
	return View{data: bytesOf(elems)}
}

func (v View) raw() []byte { return v.data }

func (v View) Empty() bool { return len(v.data) == 0 }

// Size returns the length of the region in bytes.
func (v View) Size() int { return len(v.data) }

// At returns the byte at off.
func (v View) At(off int) byte {
	contract.Checkf(off >= 0 && off < len(v.data),
		"offset < Size()", "offset %d size %d", off, len(v.data))
	return v.data[off]
}

// Bytes returns a copy of the region's contents. The copy keeps the
// View read-only: callers can never reach the backing storage through
// it.
func (v View) Bytes() []byte {
	out := make([]byte, len(v.data))
	copy(out, v.data)
	return out
}

func (v View) String() string { return string(v.data) }

// SubView returns a View over length bytes starting at off. The range
// must lie within the source region.
func (v View) SubView(off, length int) View {
	contract.Checkf(off >= 0 && length >= 0 && off <= len(v.data) && length <= len(v.data)-off,
		"offset+length <= Size()", "offset %d length %d size %d", off, length, len(v.data))
	return View{data: v.data[off : off+length : off+length]}
}

// SubViewFrom returns a View over the bytes from off to the end.
func (v View) SubViewFrom(off int) View {
	contract.Checkf(off >= 0 && off <= len(v.data),
		"offset <= Size()", "offset %d size %d", off, len(v.data))
	return View{data: v.data[off:len(v.data):len(v.data)]}
}

// Slice returns a View over [begin, end), the half-open index form of
// SubView.
func (v View) Slice(begin, end int) View {
	contract.Checkf(begin >= 0 && end >= begin && end <= len(v.data),
		"begin <= end <= Size()", "begin %d end %d size %d", begin, end, len(v.data))
	return v.SubView(begin, end-begin)
}
