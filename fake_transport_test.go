package requests

import (
	"net/url"

	"github.com/requestskit/requests/transport"
)

// fakeTransport scripts transport behavior so engine tests can drive
// chunk delivery and failure paths without sockets.
type fakeTransport struct {
	status      int
	execErr     error
	headerLines []string
	bodyChunks  []string
	handles     []*fakeHandle
}

func (f *fakeTransport) NewHandle() transport.Handle {
	h := &fakeHandle{script: f, options: make(map[transport.Option]any)}
	f.handles = append(f.handles, h)
	return h
}

func (f *fakeTransport) executed() int {
	n := 0
	for _, h := range f.handles {
		if h.didExecute {
			n++
		}
	}
	return n
}

type fakeHandle struct {
	script     *fakeTransport
	options    map[transport.Option]any
	escaped    []string
	didExecute bool
	released   bool
}

func (h *fakeHandle) SetOption(opt transport.Option, value any) error {
	h.options[opt] = value
	return nil
}

func (h *fakeHandle) Execute() (int, error) {
	h.didExecute = true
	if h.script.execErr != nil {
		return 0, h.script.execErr
	}

	if sink, ok := h.options[transport.OptHeaderSink].(transport.SinkFunc); ok {
		for _, line := range h.script.headerLines {
			if _, err := sink([]byte(line)); err != nil {
				return 0, err
			}
		}
		if _, err := sink([]byte("\r\n")); err != nil {
			return 0, err
		}
	}

	if sink, ok := h.options[transport.OptBodySink].(transport.SinkFunc); ok {
		for _, chunk := range h.script.bodyChunks {
			if _, err := sink([]byte(chunk)); err != nil {
				return 0, err
			}
		}
	}

	return h.script.status, nil
}

func (h *fakeHandle) Escape(s string) (string, error) {
	h.escaped = append(h.escaped, s)
	return url.QueryEscape(s), nil
}

func (h *fakeHandle) Release() {
	h.released = true
}
