package hmacauth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransport(t *testing.T) {
	signer, err := NewSigner(SignerConfig{
		APIKey:        "k1",
		Secret:        []byte("s3cr3t"),
		SignedHeaders: []string{"X-Request-ID"},
	})
	require.NoError(t, err)

	verifyCfg := VerifyConfig{
		Keys:          testKeys.Locator(),
		SignedHeaders: []string{"X-Request-ID"},
		MaxAge:        time.Minute,
	}

	t.Run("server verifies transport-signed requests", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if err := VerifyRequest(r, verifyCfg); err != nil {
				http.Error(w, err.Error(), http.StatusUnauthorized)
				return
			}
			w.WriteHeader(http.StatusOK)
		}))
		defer srv.Close()

		client := &http.Client{Transport: NewTransport(nil, signer)}

		req, err := http.NewRequest("GET", srv.URL+"/v1/things?x=1", nil)
		require.NoError(t, err)
		req.Header.Set("X-Request-ID", GenerateAPIKey())

		resp, err := client.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("original request is not mutated", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))
		defer srv.Close()

		client := &http.Client{Transport: NewTransport(nil, signer)}

		req, err := http.NewRequest("GET", srv.URL+"/", nil)
		require.NoError(t, err)

		resp, err := client.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Empty(t, req.Header.Get("Authorization"))
	})

	t.Run("custom base transport is used", func(t *testing.T) {
		var sawAuth string

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sawAuth = r.Header.Get("Authorization")
			w.WriteHeader(http.StatusOK)
		}))
		defer srv.Close()

		base := &http.Transport{MaxIdleConns: 1}
		client := &http.Client{Transport: NewTransport(base, signer)}

		resp, err := client.Get(srv.URL + "/")
		require.NoError(t, err)
		defer resp.Body.Close()

		auth, err := ParseAuthorization(sawAuth)
		require.NoError(t, err)
		assert.Equal(t, "k1", auth.APIKey)
	})
}
