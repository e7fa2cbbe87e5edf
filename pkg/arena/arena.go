// Package arena bump-allocates writable Spans out of a single owned
// Buffer. Allocations are 8-byte aligned; Reset reclaims everything at
// once. An Arena is not safe for concurrent use.
package arena

import (
	"errors"

	"github.com/rawbytedev/memregion"
	"github.com/rawbytedev/memregion/contract"
	"github.com/rawbytedev/memregion/internal/common"
)

// ErrArenaFull reports that the remaining capacity cannot satisfy an
// allocation.
var ErrArenaFull = errors.New("arena full")

const alignment = 8

type Arena struct {
	buf *memregion.Buffer
	off int
}

// New returns an Arena owning size bytes of backing storage.
func New(size int) (*Arena, error) {
	buf, err := memregion.Alloc(size)
	if err != nil {
		return nil, err
	}
	return &Arena{buf: buf}, nil
}

// Alloc hands out a writable Span of n bytes. The Span stays valid
// until Reset.
func (a *Arena) Alloc(n int) (memregion.Span, error) {
	contract.Checkf(n >= 0, "n >= 0", "n %d", n)
	start := common.Align(a.off, alignment)
	if start+n > a.buf.Size() {
		return memregion.Span{}, ErrArenaFull
	}
	a.off = start + n
	return a.buf.SubSpan(start, n), nil
}

// Reset reclaims every allocation at once. Spans handed out before the
// call alias storage the Arena will reuse.
func (a *Arena) Reset() {
	a.off = 0
}

// Used returns the bytes consumed so far, including alignment padding.
func (a *Arena) Used() int { return a.off }

// Cap returns the total backing capacity.
func (a *Arena) Cap() int { return a.buf.Size() }
