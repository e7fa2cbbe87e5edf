// Package memregion interprets raw byte regions as typed data without
// manual offset arithmetic. It provides three handles over a region:
// View (read-only, non-owning), Span (writable, non-owning) and Buffer
// (owning). Views and Spans are weak windows: they carry no lifetime
// guarantee and dangle if the backing storage is released.
package memregion

// Region is the read capability shared by View, Span and *Buffer.
// Only types in this package satisfy it.
type Region interface {
	Empty() bool
	Size() int

	raw() []byte
}

// Mutable is the write capability, satisfied by Span and *Buffer.
// View does not implement it and there is no conversion path from a
// View to any Mutable: code that received read access cannot forge
// write access.
type Mutable interface {
	Region

	rawMut() []byte
}

var (
	_ Region = View{}
	_ Region = Span{}
	_ Region = (*Buffer)(nil)

	_ Mutable = Span{}
	_ Mutable = (*Buffer)(nil)
)
