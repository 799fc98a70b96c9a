package source

import "errors"

var (
	// ErrShortRead marks a read that crossed the end of the data. The
	// returned slice holds whatever bytes were available; callers must
	// treat the missing tail as unavailable, never as zeros.
	ErrShortRead = errors.New("short read")

	// ErrInvalidOffset marks a read at a negative offset.
	ErrInvalidOffset = errors.New("invalid offset")
)

// Source is addressable byte storage. The view core only ever asks for a
// size and a bounded read; everything else (editing, persistence) belongs
// to the concrete implementation.
type Source interface {
	Size() int64

	// Read returns count bytes starting at off. If fewer than count bytes
	// remain, it returns the available prefix together with ErrShortRead.
	Read(off int64, count int) ([]byte, error)
}
