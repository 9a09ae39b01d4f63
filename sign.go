package hmacauth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"net/http"
	"slices"
	"time"
)

// SignerConfig configures a Signer.
type SignerConfig struct {
	// APIKey identifies the credential to the verifying server. Required.
	APIKey string

	// Secret is the shared HMAC secret. It is opaque binary (embedded zero
	// bytes are fine) and is copied at construction. Required.
	Secret []byte

	// SignedHeaders lists the names of headers whose values participate in
	// the signature. The list is sorted at construction, so the supplied
	// order does not affect signatures. Headers absent from a request at
	// signing time are skipped silently.
	SignedHeaders []string

	// Now returns the current time for timestamp generation. Defaults to
	// time.Now. Tests can supply a fixed clock for deterministic output.
	Now func() time.Time
}

// Signer computes request signatures and attaches them as Authorization
// headers. A Signer is immutable after construction and safe for concurrent
// use, though a single request must not be signed from multiple goroutines
// at once.
type Signer struct {
	apiKey  string
	secret  []byte
	headers []string
	now     func() time.Time
}

// NewSigner creates a Signer from cfg. The secret and header list are
// copied; the header list is stored sorted.
func NewSigner(cfg SignerConfig) (*Signer, error) {
	if cfg.APIKey == "" {
		return nil, ErrNoAPIKey
	}

	if len(cfg.Secret) == 0 {
		return nil, ErrNoSecret
	}

	secret := make([]byte, len(cfg.Secret))
	copy(secret, cfg.Secret)

	headers := slices.Clone(cfg.SignedHeaders)
	slices.Sort(headers)

	now := cfg.Now
	if now == nil {
		now = time.Now
	}

	return &Signer{
		apiKey:  cfg.APIKey,
		secret:  secret,
		headers: headers,
		now:     now,
	}, nil
}

// Sign computes the Authorization header value for msg, sets it on the
// message (overwriting any existing value), and returns it. Each call
// generates a fresh timestamp, so signing the same message twice yields
// different signatures.
func (s *Signer) Sign(msg Message) string {
	timestamp := formatTimestamp(s.now())
	base := stringToSign(msg, s.headers, timestamp)
	sig := computeHMAC(s.secret, []byte(base))

	value := formatAuthorization(s.apiKey, base64.StdEncoding.EncodeToString(sig), timestamp)
	msg.SetHeader("Authorization", value)

	return value
}

// SignRequest signs r in place by setting its Authorization header. Headers
// on the allow-list must already be set on r; an allow-listed header that is
// not yet set is simply left out of the signature.
func (s *Signer) SignRequest(r *http.Request) error {
	if r == nil {
		return ErrNilRequest
	}

	s.Sign(WrapRequest(r))

	return nil
}

func computeHMAC(key, message []byte) []byte {
	h := hmac.New(sha256.New, key)
	h.Write(message)

	return h.Sum(nil)
}
