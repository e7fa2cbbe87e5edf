package memregion

import (
	"errors"
	"fmt"

	"github.com/rawbytedev/memregion/contract"
)

// ErrAllocation reports that the platform allocator could not satisfy
// an Alloc or Clone request.
var ErrAllocation = errors.New("memregion: allocation failed")

// Buffer owns a byte region and releases it exactly once. Handles are
// not meant to be duplicated: the noCopy field makes go vet flag value
// copies, ownership moves only through Move and Release, and deep
// duplication is only available through the explicit Clone.
//
// Every View/Span accessor is available over a Buffer's own storage:
// read-only through View, writable through Span, plus the direct
// delegates below.
type Buffer struct {
	noCopy noCopy

	data []byte
}

type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Alloc returns a Buffer owning size bytes of zeroed storage. A
// request the allocator cannot satisfy surfaces as ErrAllocation
// rather than a crash.
func Alloc(size int) (buf *Buffer, err error) {
	contract.Checkf(size >= 0, "size >= 0", "size %d", size)
	defer func() {
		if recover() != nil {
			buf, err = nil, fmt.Errorf("%w: %d bytes", ErrAllocation, size)
		}
	}()
	return &Buffer{data: make([]byte, size)}, nil
}

// Own returns a Buffer taking ownership of an externally allocated
// region. The caller must not use data afterward.
func Own(data []byte) *Buffer {
	return &Buffer{data: data}
}

// OwnSlice takes ownership of a fixed-width element slice. The stored
// form is raw bytes; elems must not be used afterward.
func OwnSlice[T Fixed](elems []T) *Buffer {
	return &Buffer{data: bytesOf(elems)}
}

func (b *Buffer) raw() []byte    { return b.data }
func (b *Buffer) rawMut() []byte { return b.data }

func (b *Buffer) Empty() bool { return len(b.data) == 0 }

// Size returns the owned region's length in bytes.
func (b *Buffer) Size() int { return len(b.data) }

// Reset drops the owned storage and leaves the Buffer empty. Calling
// it on an empty Buffer is a no-op, so double Reset is safe.
func (b *Buffer) Reset() {
	b.data = nil
}

// Release hands the raw region to the caller and leaves the Buffer
// empty without freeing. The caller is the owner from then on.
func (b *Buffer) Release() []byte {
	data := b.data
	b.data = nil
	return data
}

// Clear zeroes every owned byte in place. No-op when empty.
func (b *Buffer) Clear() {
	clear(b.data)
}

// Clone allocates a new Buffer of equal size and copies the contents.
// The result shares no storage with b; this is the only way to obtain
// two independent regions with equal contents.
func (b *Buffer) Clone() (*Buffer, error) {
	if b.Empty() {
		return &Buffer{}, nil
	}
	dup, err := Alloc(len(b.data))
	if err != nil {
		return nil, err
	}
	copy(dup.data, b.data)
	return dup, nil
}

// Move transfers ownership of the storage to a fresh handle and
// leaves b empty.
func (b *Buffer) Move() *Buffer {
	data := b.data
	b.data = nil
	return &Buffer{data: data}
}

// View returns a read-only window over the owned storage.
func (b *Buffer) View() View { return View{data: b.data} }

// Span returns a writable window over the owned storage.
func (b *Buffer) Span() Span { return Span{data: b.data} }

func (b *Buffer) At(off int) byte      { return b.View().At(off) }
func (b *Buffer) Set(off int, by byte) { b.Span().Set(off, by) }

// Bytes returns the writable backing slice; the Buffer keeps
// ownership.
func (b *Buffer) Bytes() []byte { return b.data }

func (b *Buffer) SubView(off, length int) View  { return b.View().SubView(off, length) }
func (b *Buffer) SubViewFrom(off int) View      { return b.View().SubViewFrom(off) }
func (b *Buffer) SubSpan(off, length int) Span  { return b.Span().SubSpan(off, length) }
func (b *Buffer) SubSpanFrom(off int) Span      { return b.Span().SubSpanFrom(off) }
func (b *Buffer) Slice(begin, end int) View     { return b.View().Slice(begin, end) }
func (b *Buffer) SliceSpan(begin, end int) Span { return b.Span().Slice(begin, end) }
