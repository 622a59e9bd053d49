// Package requests is a minimal, embeddable HTTP client core. It
// issues GET/POST/PUT requests through a narrow transport capability,
// accumulates the streamed response body and headers into a reusable
// Exchange record, and classifies each outcome from the status code.
//
// Basic usage:
//
//	engine := requests.New()
//	ex := requests.NewExchange()
//	defer ex.Close()
//
//	if err := engine.Get(ex, "https://example.com"); err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(ex.StatusCode(), ex.BodyString())
//
// An Exchange may be reused for sequential requests; call Reset
// between them. Callers must check both the returned error (transport
// result) and Exchange.Outcome (HTTP result) to fully characterize a
// request.
package requests

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/requestskit/requests/internal/sysinfo"
	"github.com/requestskit/requests/transport"
)

// Version is the product version carried in the default user agent.
const Version = "1.0.0"

// userAgentTag is the product tag of the default user agent; the host
// OS name and release are appended at request time.
const userAgentTag = "requests/" + Version

// Engine orchestrates exchanges against a transport. The zero-cost
// default uses the net/http transport and the host's uname data for
// the user agent; both are replaceable through options.
//
// Engines are stateless across requests and safe for concurrent use,
// provided each concurrent request has its own Exchange.
type Engine struct {
	transport transport.Engine
	sysinfo   sysinfo.Source
	userAgent string
	timeout   time.Duration
}

// New returns an Engine configured by the given options.
func New(opts ...EngineOption) *Engine {
	e := &Engine{
		transport: transport.NewNetEngine(),
		sysinfo:   sysinfo.Collect,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(e)
		}
	}
	return e
}

// Get performs a GET request, populating ex with the response.
func (e *Engine) Get(ex *Exchange, url string) error {
	return e.do(http.MethodGet, ex, url, nil, nil)
}

// Post performs a POST request carrying data as the request body.
// A nil data slice sends an explicit "Content-Length: 0" header; some
// servers reject the negative default length certain transports fall
// back to otherwise.
func (e *Engine) Post(ex *Exchange, url string, data []byte) error {
	return e.do(http.MethodPost, ex, url, data, nil)
}

// PostWithHeaders performs a POST request with additional outgoing
// headers, each of the form "Name: value". The headers are forwarded
// verbatim and recorded on the exchange in the supplied order.
func (e *Engine) PostWithHeaders(ex *Exchange, url string, data []byte, headers []string) error {
	return e.do(http.MethodPost, ex, url, data, headers)
}

// Put performs a PUT request carrying data as the request body. The
// verb goes out as a custom method string rather than a native PUT,
// since some transports refuse to attach arbitrary body data to the
// native verb.
func (e *Engine) Put(ex *Exchange, url string, data []byte) error {
	return e.do(http.MethodPut, ex, url, data, nil)
}

// PutWithHeaders performs a PUT request with additional outgoing
// headers, see PostWithHeaders.
func (e *Engine) PutWithHeaders(ex *Exchange, url string, data []byte, headers []string) error {
	return e.do(http.MethodPut, ex, url, data, headers)
}

// do runs one exchange: it fences the record, wires the accumulators
// as the transport's streaming sinks, applies method-specific options,
// executes synchronously, and classifies the result.
//
// On transport failure the error is returned as-is and the exchange
// stays in flight with status and outcome untouched; the caller must
// Reset it before reuse.
func (e *Engine) do(method string, ex *Exchange, url string, data []byte, headers []string) error {
	for _, h := range headers {
		if !validHeaderLine(h) {
			return fmt.Errorf("%w: %q", ErrInvalidHeader, h)
		}
	}

	if err := ex.begin(); err != nil {
		return err
	}
	ex.url = url

	h := e.transport.NewHandle()
	defer h.Release()

	if err := e.configure(h, method, ex, url, data, headers); err != nil {
		ex.state = stateReady
		return err
	}

	status, err := h.Execute()
	if err != nil {
		return &TransportError{Method: method, URL: url, Cause: err}
	}

	ex.finish(status)
	return nil
}

func (e *Engine) configure(h transport.Handle, method string, ex *Exchange, url string, data []byte, headers []string) error {
	if err := h.SetOption(transport.OptURL, url); err != nil {
		return err
	}

	bodySink := transport.SinkFunc(func(chunk []byte) (int, error) {
		return ex.body.Append(chunk)
	})
	if err := h.SetOption(transport.OptBodySink, bodySink); err != nil {
		return err
	}

	headerSink := transport.SinkFunc(func(chunk []byte) (int, error) {
		if err := ex.receivedHeaders.AppendLine(chunk); err != nil {
			return 0, err
		}
		return len(chunk), nil
	})
	if err := h.SetOption(transport.OptHeaderSink, headerSink); err != nil {
		return err
	}

	outgoing := headers
	switch method {
	case http.MethodGet:
		// Plain GET, no body options.
	case http.MethodPost, http.MethodPut:
		if method == http.MethodPost {
			if err := h.SetOption(transport.OptPost, true); err != nil {
				return err
			}
		} else {
			if err := h.SetOption(transport.OptMethod, http.MethodPut); err != nil {
				return err
			}
		}
		if data != nil {
			if err := h.SetOption(transport.OptBody, data); err != nil {
				return err
			}
		} else {
			// No body: pin the length explicitly so the transport
			// cannot default to an invalid negative value.
			outgoing = append([]string{"Content-Length: 0"}, headers...)
		}
	default:
		if err := h.SetOption(transport.OptMethod, method); err != nil {
			return err
		}
		if data != nil {
			if err := h.SetOption(transport.OptBody, data); err != nil {
				return err
			}
		}
	}

	if len(outgoing) > 0 {
		if err := h.SetOption(transport.OptHeaders, outgoing); err != nil {
			return err
		}
	}
	// Only the caller-supplied headers are recorded as sent; the
	// implicit Content-Length is transport plumbing.
	for _, line := range headers {
		if err := ex.sentHeaders.AppendLine([]byte(line)); err != nil {
			return err
		}
	}

	if err := h.SetOption(transport.OptUserAgent, e.buildUserAgent()); err != nil {
		return err
	}

	if e.timeout > 0 {
		if err := h.SetOption(transport.OptDeadline, e.timeout); err != nil {
			return err
		}
	}

	return nil
}

// buildUserAgent composes "requests/<version> <os>/<release>" from the
// environment source, unless an override is configured.
func (e *Engine) buildUserAgent() string {
	if e.userAgent != "" {
		return e.userAgent
	}
	info := e.sysinfo()
	return fmt.Sprintf("%s %s/%s", userAgentTag, info.Name, info.Release)
}

// validHeaderLine accepts "Name: value" strings free of CR/LF bytes.
func validHeaderLine(line string) bool {
	if strings.ContainsAny(line, "\r\n") {
		return false
	}
	name, _, found := strings.Cut(line, ":")
	return found && strings.TrimSpace(name) != ""
}
