// Package transport defines the narrow capability the request core
// consumes to perform network I/O, and provides the default
// implementation built on net/http.
//
// A Handle is configured with named options, executed once, and
// released. The handle streams response data back through sinks: the
// header sink receives one raw header line per call (terminated by a
// bare CRLF sentinel line), the body sink receives zero or more
// partial body chunks in arrival order.
package transport

import "errors"

// SinkFunc consumes one raw chunk of streamed data. It reports the
// number of bytes it accepted; accepting fewer than len(chunk) bytes
// aborts the exchange.
type SinkFunc func(chunk []byte) (int, error)

// Option names a configurable aspect of a Handle.
type Option int

const (
	// OptURL sets the request URL (string).
	OptURL Option = iota + 1
	// OptBodySink sets the response body sink (SinkFunc).
	OptBodySink
	// OptHeaderSink sets the response header-line sink (SinkFunc).
	OptHeaderSink
	// OptUserAgent sets the outgoing User-Agent (string).
	OptUserAgent
	// OptHeaders sets outgoing header lines of the form "Name: value"
	// ([]string).
	OptHeaders
	// OptMethod sets a custom request verb (string), overriding OptPost.
	OptMethod
	// OptPost selects a native POST request (bool).
	OptPost
	// OptBody sets the outgoing request payload ([]byte).
	OptBody
	// OptDeadline sets the overall time budget for Execute
	// (time.Duration). Zero means no limit.
	OptDeadline
)

var (
	// ErrUnknownOption is returned for an Option the handle does not
	// recognize.
	ErrUnknownOption = errors.New("transport: unknown option")

	// ErrOptionValue is returned when an option value has the wrong
	// type.
	ErrOptionValue = errors.New("transport: invalid option value")

	// ErrHandleReleased is returned when a released handle is used.
	ErrHandleReleased = errors.New("transport: handle released")

	// ErrNoURL is returned by Execute when no URL was configured.
	ErrNoURL = errors.New("transport: no URL configured")
)

// Handle is one configured network exchange. Handles are single-use
// and not safe for concurrent use.
type Handle interface {
	// SetOption configures one named aspect of the exchange.
	SetOption(opt Option, value any) error

	// Execute performs the exchange synchronously, feeding the
	// configured sinks as data arrives. It returns the numeric HTTP
	// status code on transport success, or 0 and an error when the
	// exchange could not be completed.
	Execute() (int, error)

	// Escape percent-encodes s.
	Escape(s string) (string, error)

	// Release frees per-call resources. It is idempotent; the handle
	// must not be used afterwards.
	Release()
}

// Engine produces handles. Implementations own connection handling,
// TLS, and DNS; the request core never sees any of that.
type Engine interface {
	NewHandle() Handle
}
