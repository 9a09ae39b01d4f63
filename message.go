package hmacauth

import (
	"net/http"
	"net/textproto"
)

// Message is the minimal view of an HTTP request the scheme needs: the
// method, the network location, the request target, and a header lookup.
// It decouples the signer from any particular HTTP client's request
// representation; the fasthttpauth subpackage provides a second
// implementation for fasthttp.
type Message interface {
	// Method returns the HTTP method, e.g. "GET".
	Method() string

	// Host returns the destination network location (host[:port]), without
	// scheme or userinfo.
	Host() string

	// RequestURI returns the request path including the query string,
	// exactly as transmitted on the wire.
	RequestURI() string

	// Header returns the value of the named header and whether the header
	// is present on the message.
	Header(name string) (string, bool)

	// SetHeader sets the named header, replacing any existing value.
	SetHeader(name, value string)
}

// httpMessage adapts *http.Request to Message.
type httpMessage struct {
	r *http.Request
}

// WrapRequest adapts a *http.Request to the Message interface. It works for
// both outgoing (client) and incoming (server) requests.
func WrapRequest(r *http.Request) Message {
	return httpMessage{r: r}
}

func (m httpMessage) Method() string { return m.r.Method }

// Host prefers Request.Host, which net/http populates for incoming requests
// and honors on outgoing ones, falling back to the URL host.
func (m httpMessage) Host() string {
	if m.r.Host != "" {
		return m.r.Host
	}

	if m.r.URL != nil {
		return m.r.URL.Host
	}

	return ""
}

func (m httpMessage) RequestURI() string {
	if m.r.URL != nil {
		return m.r.URL.RequestURI()
	}

	return m.r.RequestURI
}

func (m httpMessage) Header(name string) (string, bool) {
	vals, ok := m.r.Header[textproto.CanonicalMIMEHeaderKey(name)]
	if !ok || len(vals) == 0 {
		return "", false
	}

	return vals[0], true
}

func (m httpMessage) SetHeader(name, value string) {
	m.r.Header.Set(name, value)
}
