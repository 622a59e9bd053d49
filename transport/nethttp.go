package transport

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"
)

// bodyChunkSize bounds how much response body is handed to the body
// sink per call.
const bodyChunkSize = 32 * 1024

// NetEngine is the default Engine, built on net/http. Each handle gets
// its own http.Client; redirects are never followed and no connection
// state is shared across handles.
type NetEngine struct{}

// NewNetEngine returns the default net/http-backed engine.
func NewNetEngine() *NetEngine {
	return &NetEngine{}
}

func (e *NetEngine) NewHandle() Handle {
	return &netHandle{}
}

type netHandle struct {
	url        string
	method     string
	userAgent  string
	post       bool
	headers    []string
	body       []byte
	bodySink   SinkFunc
	headerSink SinkFunc
	deadline   time.Duration
	released   bool
}

func (h *netHandle) SetOption(opt Option, value any) error {
	if h.released {
		return ErrHandleReleased
	}

	switch opt {
	case OptURL:
		return setString(&h.url, opt, value)
	case OptUserAgent:
		return setString(&h.userAgent, opt, value)
	case OptMethod:
		return setString(&h.method, opt, value)
	case OptBodySink:
		return setSink(&h.bodySink, opt, value)
	case OptHeaderSink:
		return setSink(&h.headerSink, opt, value)
	case OptHeaders:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("%w: option %d wants []string, got %T", ErrOptionValue, opt, value)
		}
		h.headers = v
		return nil
	case OptPost:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("%w: option %d wants bool, got %T", ErrOptionValue, opt, value)
		}
		h.post = v
		return nil
	case OptBody:
		v, ok := value.([]byte)
		if !ok {
			return fmt.Errorf("%w: option %d wants []byte, got %T", ErrOptionValue, opt, value)
		}
		h.body = v
		return nil
	case OptDeadline:
		v, ok := value.(time.Duration)
		if !ok {
			return fmt.Errorf("%w: option %d wants time.Duration, got %T", ErrOptionValue, opt, value)
		}
		h.deadline = v
		return nil
	default:
		return fmt.Errorf("%w: %d", ErrUnknownOption, opt)
	}
}

func setString(dst *string, opt Option, value any) error {
	v, ok := value.(string)
	if !ok {
		return fmt.Errorf("%w: option %d wants string, got %T", ErrOptionValue, opt, value)
	}
	*dst = v
	return nil
}

func setSink(dst *SinkFunc, opt Option, value any) error {
	v, ok := value.(SinkFunc)
	if !ok {
		return fmt.Errorf("%w: option %d wants SinkFunc, got %T", ErrOptionValue, opt, value)
	}
	*dst = v
	return nil
}

// Execute sends the configured request and replays the response
// through the sinks: status line first, then each header as
// "Name: value\r\n", then the bare CRLF sentinel, then body chunks.
func (h *netHandle) Execute() (int, error) {
	if h.released {
		return 0, ErrHandleReleased
	}
	if h.url == "" {
		return 0, ErrNoURL
	}

	req, err := h.buildRequest()
	if err != nil {
		return 0, err
	}

	client := &http.Client{
		Timeout: h.deadline,
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}

	resp, err := client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("transport round trip failed: %w", err)
	}
	defer resp.Body.Close()

	if err := h.replayHeaders(resp); err != nil {
		return 0, err
	}
	if err := h.replayBody(resp.Body); err != nil {
		return 0, err
	}

	return resp.StatusCode, nil
}

func (h *netHandle) buildRequest() (*http.Request, error) {
	method := http.MethodGet
	if h.post {
		method = http.MethodPost
	}
	if h.method != "" {
		method = h.method
	}

	var body io.Reader
	if h.body != nil {
		body = bytes.NewReader(h.body)
	}

	req, err := http.NewRequest(method, h.url, body)
	if err != nil {
		return nil, fmt.Errorf("transport: invalid request: %w", err)
	}

	for _, line := range h.headers {
		name, value, ok := splitHeaderLine(line)
		if !ok {
			return nil, fmt.Errorf("transport: malformed header line %q", line)
		}
		// net/http owns the Content-Length header; route an explicit
		// value through the request field instead.
		if strings.EqualFold(name, "Content-Length") {
			n, err := strconv.ParseInt(value, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("transport: malformed Content-Length %q", value)
			}
			req.ContentLength = n
			continue
		}
		req.Header.Add(name, value)
	}

	if h.userAgent != "" {
		req.Header.Set("User-Agent", h.userAgent)
	}

	return req, nil
}

// splitHeaderLine parses "Name: value". Lines carrying CR or LF are
// rejected outright; letting them through would allow header
// injection.
func splitHeaderLine(line string) (name, value string, ok bool) {
	if strings.ContainsAny(line, "\r\n") {
		return "", "", false
	}
	name, value, found := strings.Cut(line, ":")
	if !found {
		return "", "", false
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return "", "", false
	}
	return name, strings.TrimSpace(value), true
}

func (h *netHandle) replayHeaders(resp *http.Response) error {
	if h.headerSink == nil {
		return nil
	}

	if err := h.feed(h.headerSink, fmt.Sprintf("%s %s\r\n", resp.Proto, resp.Status)); err != nil {
		return err
	}

	// net/http stores headers in a map; replay them in a stable order.
	names := make([]string, 0, len(resp.Header))
	for name := range resp.Header {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		for _, value := range resp.Header[name] {
			if err := h.feed(h.headerSink, fmt.Sprintf("%s: %s\r\n", name, value)); err != nil {
				return err
			}
		}
	}

	// End-of-headers sentinel.
	return h.feed(h.headerSink, "\r\n")
}

func (h *netHandle) feed(sink SinkFunc, line string) error {
	n, err := sink([]byte(line))
	if err != nil {
		return fmt.Errorf("transport: header sink failed: %w", err)
	}
	if n != len(line) {
		return fmt.Errorf("transport: header sink consumed %d of %d bytes", n, len(line))
	}
	return nil
}

func (h *netHandle) replayBody(body io.Reader) error {
	if h.bodySink == nil {
		_, err := io.Copy(io.Discard, body)
		if err != nil {
			return fmt.Errorf("transport: draining response body failed: %w", err)
		}
		return nil
	}

	buf := make([]byte, bodyChunkSize)
	for {
		n, err := body.Read(buf)
		if n > 0 {
			consumed, sinkErr := h.bodySink(buf[:n])
			if sinkErr != nil {
				return fmt.Errorf("transport: body sink failed: %w", sinkErr)
			}
			if consumed != n {
				return fmt.Errorf("transport: body sink consumed %d of %d bytes", consumed, n)
			}
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("transport: reading response body failed: %w", err)
		}
	}
}

// Escape percent-encodes s with the standard query escaping transform.
func (h *netHandle) Escape(s string) (string, error) {
	if h.released {
		return "", ErrHandleReleased
	}
	return url.QueryEscape(s), nil
}

// Release drops per-call state. Idempotent.
func (h *netHandle) Release() {
	h.bodySink = nil
	h.headerSink = nil
	h.headers = nil
	h.body = nil
	h.released = true
}
