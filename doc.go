// Package hmacauth implements shared-secret request authentication over
// HTTP. Each outgoing request is reduced to a canonical string built from
// its method, host, path plus query, a microsecond-precision UTC timestamp,
// and an opt-in set of header values. The string is signed with HMAC-SHA256
// and the base64 signature is carried in the Authorization header:
//
//	APIKey=<api-key>,Signature=<base64 mac>,Timestamp=<timestamp>
//
// A server holding the same secret can rebuild the canonical string from
// the request it received and compare signatures, so no handshake or
// session state is needed.
//
// # Signing Requests
//
// Use NewSigner with an API key and shared secret, then sign requests
// in place:
//
//	signer, err := hmacauth.NewSigner(hmacauth.SignerConfig{
//	    APIKey: "my-api-key",
//	    Secret: secret,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	err = signer.SignRequest(req)
//
// SignedHeaders opts header values into the signature. The list is sorted
// once at construction; a listed header that is absent from a request is
// skipped silently, it never fails the signing call:
//
//	signer, err := hmacauth.NewSigner(hmacauth.SignerConfig{
//	    APIKey:        "my-api-key",
//	    Secret:        secret,
//	    SignedHeaders: []string{"Content-Type", "X-Request-ID"},
//	})
//
// # Client Transport
//
// NewTransport creates an http.RoundTripper that signs every outgoing
// request. Pass an *http.Transport to configure proxy, TLS, and timeout
// settings, or nil for sensible defaults:
//
//	client := &http.Client{
//	    Transport: hmacauth.NewTransport(nil, signer),
//	}
//
//	resp, err := client.Get("https://api.example.com/resource")
//
// # Verifying Requests
//
// Use VerifyRequest, or wrap handlers with Middleware:
//
//	keys, err := hmacauth.LoadKeyset("keys.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	mw, err := hmacauth.Middleware(hmacauth.MiddlewareConfig{
//	    Verify: hmacauth.VerifyConfig{
//	        Keys:   keys.Locator(),
//	        MaxAge: 5 * time.Minute,
//	    },
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	handler = mw(handler)
//
// # Other HTTP Stacks
//
// The signer only needs a Message view of a request (method, host,
// request URI, header lookup), so it is not tied to net/http. The
// fasthttpauth subpackage adapts fasthttp requests; any other request
// representation can implement Message directly.
package hmacauth
