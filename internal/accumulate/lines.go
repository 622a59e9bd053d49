package accumulate

// crlf is the bare line some header streams emit to mark the end of
// the header block. It is a sentinel, not data, and is never stored.
const crlf = "\r\n"

// Lines is an append-only ordered sequence of owned strings, used for
// both the headers a caller asked to send and the headers a response
// delivered. Insertion order is preserved and duplicates are allowed.
//
// The index grows one slot per append, mirroring the exact-growth
// policy of Bytes.
type Lines struct {
	lines    []string
	released bool
}

// NewLines returns an empty sequence.
func NewLines() *Lines {
	return &Lines{lines: make([]string, 0)}
}

// AppendLine copies raw into an owned string and appends it. A chunk
// equal to exactly CR LF is the end-of-headers sentinel and is dropped
// without mutating the sequence.
func (l *Lines) AppendLine(raw []byte) error {
	if l.released {
		return ErrReleased
	}
	if len(raw) == 2 && string(raw) == crlf {
		return nil
	}

	grown := make([]string, len(l.lines)+1)
	copy(grown, l.lines)
	grown[len(l.lines)] = string(raw)
	l.lines = grown
	return nil
}

// Count reports the number of stored lines.
func (l *Lines) Count() int {
	return len(l.lines)
}

// Get returns the i-th line in append order.
func (l *Lines) Get(i int) (string, bool) {
	if i < 0 || i >= len(l.lines) {
		return "", false
	}
	return l.lines[i], true
}

// All returns a copy of the stored lines in append order.
func (l *Lines) All() []string {
	out := make([]string, len(l.lines))
	copy(out, l.lines)
	return out
}

// Release drops the stored lines. Further appends fail with
// ErrReleased.
func (l *Lines) Release() {
	l.lines = nil
	l.released = true
}
