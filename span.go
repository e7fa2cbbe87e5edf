package memregion

import "github.com/rawbytedev/memregion/contract"

// Span is a writable, non-owning window over a byte region. It has the
// same lifetime caveats as View. A Span narrows to a View via AsView;
// the reverse direction does not exist.
type Span struct {
	data []byte
}

// SpanOf returns a Span over data. Writes through the Span land in
// data.
func SpanOf(data []byte) Span {
	return Span{data: data}
}

// SpanOfSlice returns a Span over the raw bytes of a fixed-width
// element slice, without copying.
func SpanOfSlice[T Fixed](elems []T) Span {
	return Span{data: bytesOf(elems)}
}

func (s Span) raw() []byte    { return s.data }
func (s Span) rawMut() []byte { return s.data }

func (s Span) Empty() bool { return len(s.data) == 0 }

// Size returns the length of the region in bytes.
func (s Span) Size() int { return len(s.data) }

// AsView narrows the Span to a read-only View over the same region.
func (s Span) AsView() View { return View{data: s.data} }

// At returns the byte at off.
func (s Span) At(off int) byte {
	contract.Checkf(off >= 0 && off < len(s.data),
		"offset < Size()", "offset %d size %d", off, len(s.data))
	return s.data[off]
}

// Set writes b at off.
func (s Span) Set(off int, b byte) {
	contract.Checkf(off >= 0 && off < len(s.data),
		"offset < Size()", "offset %d size %d", off, len(s.data))
	s.data[off] = b
}

// Bytes returns the writable backing slice. Unlike View.Bytes it does
// not copy; that asymmetry is the read/write capability split.
func (s Span) Bytes() []byte { return s.data }

// BytesFrom returns the writable bytes from off to the end.
func (s Span) BytesFrom(off int) []byte {
	contract.Checkf(off >= 0 && off <= len(s.data),
		"offset <= Size()", "offset %d size %d", off, len(s.data))
	return s.data[off:len(s.data):len(s.data)]
}

// Fill sets every byte of the region to b.
func (s Span) Fill(b byte) {
	for i := range s.data {
		s.data[i] = b
	}
}

// CopyFrom copies bytes from r into the Span, stopping at the shorter
// of the two, and returns the number of bytes copied.
func (s Span) CopyFrom(r Region) int {
	return copy(s.data, r.raw())
}

// SubSpan returns a Span over length bytes starting at off.
func (s Span) SubSpan(off, length int) Span {
	contract.Checkf(off >= 0 && length >= 0 && off <= len(s.data) && length <= len(s.data)-off,
		"offset+length <= Size()", "offset %d length %d size %d", off, length, len(s.data))
	return Span{data: s.data[off : off+length : off+length]}
}

// SubSpanFrom returns a Span over the bytes from off to the end.
func (s Span) SubSpanFrom(off int) Span {
	contract.Checkf(off >= 0 && off <= len(s.data),
		"offset <= Size()", "offset %d size %d", off, len(s.data))
	return Span{data: s.data[off:len(s.data):len(s.data)]}
}

// Slice returns a Span over [begin, end).
func (s Span) Slice(begin, end int) Span {
	contract.Checkf(begin >= 0 && end >= begin && end <= len(s.data),
		"begin <= end <= Size()", "begin %d end %d size %d", begin, end, len(s.data))
	return s.SubSpan(begin, end-begin)
}
