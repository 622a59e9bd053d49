package requests

import (
	"errors"
	"fmt"
)

var (
	// ErrExchangeClosed is returned when using an exchange after Close.
	// Closed exchanges cannot be revived; allocate a new one.
	ErrExchangeClosed = errors.New("requests: exchange is closed")

	// ErrExchangeBusy is returned when starting a request on an
	// exchange that already has one in flight. An exchange stranded in
	// flight by a transport failure must be Reset before reuse.
	ErrExchangeBusy = errors.New("requests: exchange already in flight")

	// ErrOddPairList is returned by EncodeForm when the flat key/value
	// list has an odd number of elements.
	ErrOddPairList = errors.New("requests: key/value list has odd length")

	// ErrInvalidHeader is returned when an outgoing header string is
	// not of the form "Name: value" or carries CR/LF bytes.
	ErrInvalidHeader = errors.New("requests: invalid header line")
)

// TransportError wraps a failure reported by the transport while
// executing an exchange. The underlying cause is surfaced verbatim and
// reachable through errors.Unwrap.
type TransportError struct {
	Method string
	URL    string
	Cause  error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Method, e.URL, e.Cause)
}

func (e *TransportError) Unwrap() error {
	return e.Cause
}
