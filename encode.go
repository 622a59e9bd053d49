package requests

import "strings"

// EncodeForm builds a percent-encoded query string from a flat,
// ordered list of keys and values: "k1", "v1", "k2", "v2", ...
//
// The unescaped form "k1=v1&k2=v2" is assembled in input order with no
// trailing separator, then passed whole through the transport's
// percent-encoder, so the pair separators themselves come back
// encoded. An odd-length list fails with ErrOddPairList.
func (e *Engine) EncodeForm(pairs ...string) (string, error) {
	if len(pairs)%2 != 0 {
		return "", ErrOddPairList
	}

	var form strings.Builder
	total := 0
	for _, p := range pairs {
		total += len(p)
	}
	form.Grow(total + len(pairs))

	for i := 0; i < len(pairs); i += 2 {
		if i > 0 {
			form.WriteByte('&')
		}
		form.WriteString(pairs[i])
		form.WriteByte('=')
		form.WriteString(pairs[i+1])
	}

	h := e.transport.NewHandle()
	defer h.Release()

	return h.Escape(form.String())
}
