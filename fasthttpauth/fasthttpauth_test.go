package fasthttpauth

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"

	"github.com/vitalvas/hmacauth"
)

func testClock() time.Time {
	return time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
}

func TestSign(t *testing.T) {
	signer, err := hmacauth.NewSigner(hmacauth.SignerConfig{
		APIKey:        "k1",
		Secret:        []byte("s3cr3t"),
		SignedHeaders: []string{"X-Foo", "X-Bar"},
		Now:           testClock,
	})
	require.NoError(t, err)

	t.Run("sets the authorization header", func(t *testing.T) {
		req := fasthttp.AcquireRequest()
		defer fasthttp.ReleaseRequest(req)

		req.Header.SetMethod("GET")
		req.SetRequestURI("http://example.com/v1/things?x=1")

		got := Sign(req, signer)
		assert.Equal(t, got, string(req.Header.Peek("Authorization")))

		auth, err := hmacauth.ParseAuthorization(got)
		require.NoError(t, err)
		assert.Equal(t, "k1", auth.APIKey)
	})

	t.Run("matches the net/http signer byte for byte", func(t *testing.T) {
		freq := fasthttp.AcquireRequest()
		defer fasthttp.ReleaseRequest(freq)

		freq.Header.SetMethod("POST")
		freq.SetRequestURI("http://example.com/v1/things?x=1")
		freq.Header.Set("X-Foo", "v1")
		freq.Header.Set("X-Bar", "v2")

		got := Sign(freq, signer)

		hreq := httptest.NewRequest("POST", "http://example.com/v1/things?x=1", nil)
		hreq.Header.Set("X-Foo", "v1")
		hreq.Header.Set("X-Bar", "v2")
		require.NoError(t, signer.SignRequest(hreq))

		assert.Equal(t, hreq.Header.Get("Authorization"), got)
	})

	t.Run("absent allow-listed headers are skipped", func(t *testing.T) {
		freq := fasthttp.AcquireRequest()
		defer fasthttp.ReleaseRequest(freq)

		freq.Header.SetMethod("GET")
		freq.SetRequestURI("http://example.com/")

		got := Sign(freq, signer)

		hreq := httptest.NewRequest("GET", "http://example.com/", nil)
		require.NoError(t, signer.SignRequest(hreq))

		assert.Equal(t, hreq.Header.Get("Authorization"), got)
	})

	t.Run("verifies on the net/http server side", func(t *testing.T) {
		freq := fasthttp.AcquireRequest()
		defer fasthttp.ReleaseRequest(freq)

		freq.Header.SetMethod("GET")
		freq.SetRequestURI("http://example.com/v1/things?x=1")
		freq.Header.Set("X-Foo", "v1")

		Sign(freq, signer)

		hreq := httptest.NewRequest("GET", "http://example.com/v1/things?x=1", nil)
		hreq.Header.Set("X-Foo", "v1")
		hreq.Header.Set("Authorization", string(freq.Header.Peek("Authorization")))

		err := hmacauth.VerifyRequest(hreq, hmacauth.VerifyConfig{
			Keys:          hmacauth.Keyset{"k1": hmacauth.Secret("s3cr3t")}.Locator(),
			SignedHeaders: []string{"X-Foo", "X-Bar"},
			Now:           testClock,
		})
		assert.NoError(t, err)
	})
}
