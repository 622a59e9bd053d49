package requests

import (
	"github.com/requestskit/requests/internal/accumulate"
)

// Outcome classifies a completed exchange from its HTTP status code,
// independently of transport-level success.
type Outcome int

const (
	// OutcomeUnknown means no request has completed on the exchange.
	OutcomeUnknown Outcome = iota
	// OutcomeOK means the status code was in [100, 399].
	OutcomeOK
	// OutcomeFailed means the status code was >= 400, or 0 (no
	// response received).
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeOK:
		return "ok"
	case OutcomeFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// classify maps a status code to an outcome. Status 0 (no response)
// and genuine HTTP error statuses share OutcomeFailed.
func classify(status int) Outcome {
	if status >= 400 || status == 0 {
		return OutcomeFailed
	}
	return OutcomeOK
}

type exchangeState int

const (
	stateReady exchangeState = iota
	stateInFlight
	stateClosed
)

// Exchange records one logical request/response cycle: the URL and
// status of the request, the accumulated response body, the headers
// the caller asked to send, and the headers the remote side returned.
//
// An Exchange may be reused for any number of sequential requests;
// call Reset between them to release the previous cycle's storage.
// An Exchange is exclusively owned by one caller at a time — use one
// Exchange per concurrent request.
type Exchange struct {
	url             string
	statusCode      int
	outcome         Outcome
	body            *accumulate.Bytes
	sentHeaders     *accumulate.Lines
	receivedHeaders *accumulate.Lines
	state           exchangeState
}

// NewExchange returns a ready Exchange with empty accumulators.
func NewExchange() *Exchange {
	ex := &Exchange{}
	ex.allocate()
	return ex
}

func (ex *Exchange) allocate() {
	ex.url = ""
	ex.statusCode = 0
	ex.outcome = OutcomeUnknown
	ex.body = accumulate.NewBytes()
	ex.sentHeaders = accumulate.NewLines()
	ex.receivedHeaders = accumulate.NewLines()
	ex.state = stateReady
}

// Reset releases the previous cycle's storage and returns the Exchange
// to its ready state. It is safe to call before every request, and is
// the required recovery step for an exchange stranded in flight by a
// transport failure.
func (ex *Exchange) Reset() error {
	if ex.state == stateClosed {
		return ErrExchangeClosed
	}
	ex.release()
	ex.allocate()
	return nil
}

// Close releases all owned storage. The Exchange cannot be used
// afterwards. Close is idempotent.
func (ex *Exchange) Close() error {
	if ex.state == stateClosed {
		return nil
	}
	ex.release()
	ex.state = stateClosed
	return nil
}

func (ex *Exchange) release() {
	ex.body.Release()
	ex.sentHeaders.Release()
	ex.receivedHeaders.Release()
}

// begin fences the exchange against interleaved reuse for the duration
// of one request.
func (ex *Exchange) begin() error {
	switch ex.state {
	case stateClosed:
		return ErrExchangeClosed
	case stateInFlight:
		return ErrExchangeBusy
	}
	ex.state = stateInFlight
	return nil
}

// finish records the response status, classifies the outcome, and
// returns the exchange to the ready state.
func (ex *Exchange) finish(status int) {
	ex.statusCode = status
	ex.outcome = classify(status)
	ex.state = stateReady
}

// URL returns the URL of the most recent request.
func (ex *Exchange) URL() string {
	return ex.url
}

// StatusCode returns the HTTP status of the most recent completed
// request, or 0 if none has completed.
func (ex *Exchange) StatusCode() int {
	return ex.statusCode
}

// Outcome reports the success/failure classification of the most
// recent completed request. It is OutcomeUnknown until a request
// completes.
func (ex *Exchange) Outcome() Outcome {
	return ex.outcome
}

// OK reports whether the most recent completed request had a status
// in [100, 399].
func (ex *Exchange) OK() bool {
	return ex.outcome == OutcomeOK
}

// Body returns the accumulated response body. The slice is valid until
// the next Reset or Close.
func (ex *Exchange) Body() []byte {
	return ex.body.Bytes()
}

// BodyString returns the accumulated response body as a string.
func (ex *Exchange) BodyString() string {
	return string(ex.body.Bytes())
}

// BodySize returns the accumulated response body length in bytes.
func (ex *Exchange) BodySize() int {
	return ex.body.Len()
}

// SentHeaders returns the headers the caller asked to send with the
// most recent request, in the order they were supplied.
func (ex *Exchange) SentHeaders() []string {
	return ex.sentHeaders.All()
}

// ReceivedHeaders returns the raw header lines the transport delivered
// for the most recent request, in arrival order. The end-of-headers
// sentinel line is never included.
func (ex *Exchange) ReceivedHeaders() []string {
	return ex.receivedHeaders.All()
}
