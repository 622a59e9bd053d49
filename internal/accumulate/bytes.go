// Package accumulate provides the append-only buffers that assemble
// streamed response data: a growable byte buffer for bodies and an
// ordered line sequence for headers.
package accumulate

import "errors"

// ErrReleased is returned when appending to an accumulator whose
// storage has already been released.
var ErrReleased = errors.New("accumulate: accumulator released")

// Bytes is an append-only byte buffer for response bodies. The backing
// array always holds one terminator NUL byte past the logical length,
// so Bytes() content can be handed to terminator-sensitive consumers
// without copying.
//
// Growth is exact: every append allocates a backing array sized to the
// new content plus the terminator. Memory held is therefore bounded by
// exactly what was received, at the cost of a reallocation per chunk.
type Bytes struct {
	buf      []byte // content plus trailing NUL, len(buf) == n+1
	n        int
	released bool
}

// NewBytes returns an empty accumulator holding just the terminator.
func NewBytes() *Bytes {
	return &Bytes{buf: make([]byte, 1)}
}

// Append copies chunk onto the end of the buffer and re-terminates it.
// The chunk may contain NUL bytes anywhere; only len(chunk) bytes are
// consumed, never a terminator scan. Returns the number of bytes
// consumed. An empty chunk is a successful no-op.
func (b *Bytes) Append(chunk []byte) (int, error) {
	if b.released {
		return 0, ErrReleased
	}
	if len(chunk) == 0 {
		return 0, nil
	}

	grown := make([]byte, b.n+len(chunk)+1)
	copy(grown, b.buf[:b.n])
	copy(grown[b.n:], chunk)
	b.buf = grown
	b.n += len(chunk)
	return len(chunk), nil
}

// Bytes returns the accumulated content without the terminator. The
// returned slice aliases the internal buffer and is valid until the
// next Append or Release.
func (b *Bytes) Bytes() []byte {
	if b.released {
		return nil
	}
	return b.buf[:b.n]
}

// Terminated returns the content including the trailing NUL byte.
func (b *Bytes) Terminated() []byte {
	if b.released {
		return nil
	}
	return b.buf[:b.n+1]
}

// Len reports the logical content length, excluding the terminator.
func (b *Bytes) Len() int {
	return b.n
}

// Release drops the backing storage. Further appends fail with
// ErrReleased.
func (b *Bytes) Release() {
	b.buf = nil
	b.n = 0
	b.released = true
}
