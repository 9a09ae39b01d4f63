// Package fasthttpauth signs fasthttp requests with the hmacauth scheme.
//
// It adapts *fasthttp.Request to the hmacauth.Message interface, so a
// single Signer produces identical Authorization headers whether the
// request travels over net/http or fasthttp.
package fasthttpauth

import (
	"github.com/valyala/fasthttp"

	"github.com/vitalvas/hmacauth"
)

// message adapts *fasthttp.Request to hmacauth.Message.
type message struct {
	req *fasthttp.Request
}

func (m message) Method() string { return string(m.req.Header.Method()) }

func (m message) Host() string { return string(m.req.URI().Host()) }

func (m message) RequestURI() string { return string(m.req.URI().RequestURI()) }

func (m message) Header(name string) (string, bool) {
	val := m.req.Header.Peek(name)
	if val == nil {
		return "", false
	}

	return string(val), true
}

func (m message) SetHeader(name, value string) {
	m.req.Header.Set(name, value)
}

// Sign computes the Authorization header value for req, sets it on the
// request (overwriting any existing value), and returns it.
func Sign(req *fasthttp.Request, s *hmacauth.Signer) string {
	return s.Sign(message{req: req})
}
