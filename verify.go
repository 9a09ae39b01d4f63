package hmacauth

import (
	"crypto/hmac"
	"encoding/base64"
	"net/http"
	"slices"
	"time"
)

// clockSkewAllowance bounds how far in the future a signature timestamp may
// lie; some client clocks run slightly ahead of the server's.
const clockSkewAllowance = 10 * time.Second

// KeyLocator returns the shared secret for an API key, or nil when the key
// is unknown.
type KeyLocator func(apiKey string) []byte

// VerifyConfig configures request signature verification.
type VerifyConfig struct {
	// Keys looks up the shared secret for an API key. Required.
	Keys KeyLocator

	// SignedHeaders lists the header names that participate in the
	// signature. It must cover the same set the signing side was configured
	// with; it is sorted before use. Headers absent from the request are
	// skipped, mirroring the signing side.
	SignedHeaders []string

	// MaxAge is the maximum acceptable age of a signature. When zero,
	// signatures never expire.
	MaxAge time.Duration

	// Now returns the current time for freshness checks. Defaults to
	// time.Now.
	Now func() time.Time
}

// VerifyRequest verifies the Authorization header on r: it parses the
// header, checks the timestamp, rebuilds the string-to-sign from the request
// using the timestamp the client signed, and compares signatures in constant
// time.
func VerifyRequest(r *http.Request, cfg VerifyConfig) error {
	if cfg.Keys == nil {
		return ErrNoKeyLocator
	}

	auth, err := ParseAuthorization(r.Header.Get("Authorization"))
	if err != nil {
		return err
	}

	now := cfg.Now
	if now == nil {
		now = time.Now
	}

	if err := checkTimestamp(auth.Timestamp, now(), cfg.MaxAge); err != nil {
		return err
	}

	secret := cfg.Keys(auth.APIKey)
	if secret == nil {
		return ErrUnknownAPIKey
	}

	headers := slices.Clone(cfg.SignedHeaders)
	slices.Sort(headers)

	base := stringToSign(WrapRequest(r), headers, auth.RawTimestamp)
	expected := computeHMAC(secret, []byte(base))

	sig, err := base64.StdEncoding.DecodeString(auth.Signature)
	if err != nil {
		return ErrSignatureInvalid
	}

	if !hmac.Equal(expected, sig) {
		return ErrSignatureInvalid
	}

	return nil
}

// checkTimestamp rejects timestamps further than clockSkewAllowance in the
// future and, when maxAge is non-zero, timestamps older than maxAge.
func checkTimestamp(ts, now time.Time, maxAge time.Duration) error {
	age := now.Sub(ts)

	if age < -clockSkewAllowance {
		return ErrTimestampOutOfRange
	}

	if maxAge != 0 && age > maxAge {
		return ErrSignatureExpired
	}

	return nil
}
