package hmacauth

import "errors"

// Signing errors.
var (
	// ErrNoAPIKey is returned when SignerConfig has an empty APIKey.
	ErrNoAPIKey = errors.New("hmacauth: api key must not be empty")

	// ErrNoSecret is returned when SignerConfig has a nil or empty Secret.
	ErrNoSecret = errors.New("hmacauth: secret key must not be empty")

	// ErrNilRequest is returned when SignRequest is called with a nil request.
	ErrNilRequest = errors.New("hmacauth: request must not be nil")
)

// Authorization header errors.
var (
	// ErrNoAuthorization is returned when the Authorization header is absent
	// or empty.
	ErrNoAuthorization = errors.New("hmacauth: authorization header not supplied")

	// ErrMalformedHeader is returned when the Authorization header cannot be
	// split into key=value parameters.
	ErrMalformedHeader = errors.New("hmacauth: malformed authorization header")

	// ErrUnknownParameter is returned when the Authorization header carries a
	// parameter other than APIKey, Signature, or Timestamp.
	ErrUnknownParameter = errors.New("hmacauth: unknown parameter in authorization header")

	// ErrRepeatedParameter is returned when a parameter appears more than
	// once in the Authorization header.
	ErrRepeatedParameter = errors.New("hmacauth: repeated parameter in authorization header")

	// ErrMissingParameter is returned when the Authorization header lacks one
	// of its three required parameters.
	ErrMissingParameter = errors.New("hmacauth: missing parameter in authorization header")

	// ErrInvalidTimestamp is returned when the Timestamp parameter does not
	// parse as RFC 3339.
	ErrInvalidTimestamp = errors.New("hmacauth: invalid timestamp, RFC 3339 required")
)

// Verification errors.
var (
	// ErrNoKeyLocator is returned when VerifyConfig has no Keys locator
	// configured.
	ErrNoKeyLocator = errors.New("hmacauth: key locator must not be nil")

	// ErrUnknownAPIKey is returned when the key locator has no secret for
	// the request's API key.
	ErrUnknownAPIKey = errors.New("hmacauth: unknown api key")

	// ErrTimestampOutOfRange is returned when the signature timestamp lies
	// too far in the future.
	ErrTimestampOutOfRange = errors.New("hmacauth: timestamp out of range")

	// ErrSignatureExpired is returned when the signature is older than the
	// configured maximum age.
	ErrSignatureExpired = errors.New("hmacauth: signature expired")

	// ErrSignatureInvalid is returned when signature verification fails.
	ErrSignatureInvalid = errors.New("hmacauth: signature verification failed")
)
