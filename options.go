package requests

import (
	"time"

	"github.com/requestskit/requests/internal/sysinfo"
	"github.com/requestskit/requests/transport"
)

// EngineOption configures an Engine at construction time.
type EngineOption func(*Engine)

// WithTransport replaces the default net/http transport.
func WithTransport(t transport.Engine) EngineOption {
	return func(e *Engine) {
		if t != nil {
			e.transport = t
		}
	}
}

// WithTimeout sets an overall time budget per request, forwarded
// opaquely to the transport. Zero means no limit.
func WithTimeout(timeout time.Duration) EngineOption {
	return func(e *Engine) {
		e.timeout = timeout
	}
}

// WithUserAgent replaces the composed default user agent entirely.
func WithUserAgent(userAgent string) EngineOption {
	return func(e *Engine) {
		e.userAgent = userAgent
	}
}

// WithSystemInfo pins the OS name and release used in the default user
// agent instead of reading them from the host.
func WithSystemInfo(name, release string) EngineOption {
	return func(e *Engine) {
		e.sysinfo = func() sysinfo.Info {
			return sysinfo.Info{Name: name, Release: release}
		}
	}
}
